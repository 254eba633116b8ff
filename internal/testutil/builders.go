package testutil

import (
	"github.com/aws/aws-lambda-go/cfn"
	"github.com/brendan.keane/cfnresponse/internal/config"
	"github.com/brendan.keane/cfnresponse/internal/response"
)

// DetailsBuilder provides a fluent interface for building response details
type DetailsBuilder struct {
	details *response.Details
}

// NewDetailsBuilder starts from a SUCCESS response for FakePhysicalResourceID
func NewDetailsBuilder() *DetailsBuilder {
	return &DetailsBuilder{
		details: &response.Details{
			Status:             cfn.StatusSuccess,
			PhysicalResourceID: FakePhysicalResourceID,
		},
	}
}

// Failed switches the status to FAILED
func (b *DetailsBuilder) Failed() *DetailsBuilder {
	b.details.Status = cfn.StatusFailed
	return b
}

// WithReason sets a text reason
func (b *DetailsBuilder) WithReason(reason string) *DetailsBuilder {
	b.details.Reason = response.Text(reason)
	return b
}

// WithErrorReason sets an error reason
func (b *DetailsBuilder) WithErrorReason(err error) *DetailsBuilder {
	b.details.Reason = response.FromError(err)
	return b
}

// WithPhysicalID sets the physical resource id
func (b *DetailsBuilder) WithPhysicalID(id string) *DetailsBuilder {
	b.details.PhysicalResourceID = id
	return b
}

// WithData sets the data payload
func (b *DetailsBuilder) WithData(data any) *DetailsBuilder {
	b.details.Data = data
	return b
}

// WithNoEcho masks the data in console output
func (b *DetailsBuilder) WithNoEcho() *DetailsBuilder {
	b.details.NoEcho = true
	return b
}

// Build returns the built details
func (b *DetailsBuilder) Build() *response.Details {
	return b.details
}

// ConfigFor returns a JSON-format configuration at level
func ConfigFor(level config.LogLevel) config.Config {
	return config.Config{LogLevel: level, LogFormat: config.FormatJSON}
}
