package http

import (
	"github.com/brendan.keane/cfnresponse/internal/logger"
	cfnhttp "github.com/brendan.keane/cfnresponse/pkg/http"
)

// ClientFactory centralizes Deliverer creation with dependency injection support
type ClientFactory struct {
	httpClient HTTPClientProvider
}

// NewClientFactory creates a factory that delivers through httpClient.
// A nil client selects the package default, which also understands lambda:// URLs.
func NewClientFactory(httpClient HTTPClientProvider) *ClientFactory {
	if httpClient == nil {
		httpClient = cfnhttp.DefaultClient
	}
	return &ClientFactory{httpClient: httpClient}
}

// CreateDeliverer creates a Deliverer logging through log
func (f *ClientFactory) CreateDeliverer(log *logger.Tiered) Deliverer {
	component := log.With(logger.ForComponent(log.Logger(), "delivery"))
	return NewDelivererWithDependencies(
		component,
		f.httpClient,
		NewResponseHandler(component),
	)
}

// HTTPClient returns the client deliveries go through
func (f *ClientFactory) HTTPClient() HTTPClientProvider {
	return f.httpClient
}
