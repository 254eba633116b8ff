// Command echo-resource is a minimal custom resource. It reports its
// ResourceProperties back as Data, and fails when the Fail property is set.
package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/brendan.keane/cfnresponse/pkg/cfnresponse"
)

func main() {
	lambda.Start(cfnresponse.Wrap(echo))
}

func echo(ctx context.Context, event cfnresponse.Event) (string, map[string]interface{}, error) {
	if reason, ok := event.ResourceProperties["Fail"]; ok {
		return "", nil, fmt.Errorf("failing on request: %v", reason)
	}

	data := make(map[string]interface{}, len(event.ResourceProperties))
	for k, v := range event.ResourceProperties {
		if k == "ServiceToken" {
			continue
		}
		data[k] = v
	}

	return "echo-" + event.LogicalResourceID, data, nil
}
