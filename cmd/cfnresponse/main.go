package main

import (
	"os"

	"github.com/brendan.keane/cfnresponse/internal/cli"
	"github.com/brendan.keane/cfnresponse/internal/errors"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		errors.PresentError(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cfnresponse",
		Short: "Answer CloudFormation custom resource requests",
		Long: `cfnresponse sends the response a CloudFormation custom resource handler owes
its stack. It PUTs SUCCESS or FAILED to the presigned ResponseURL of an event,
including lambda://<function>/<path> URLs for receivers running as Lambdas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.NewSendCommand(cli.NewSendHandler(nil, os.Stdin)))
	return rootCmd
}
