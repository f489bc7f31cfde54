package cmd

import (
	"context"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/relloyd/mtgpipe/actions"
	"github.com/relloyd/mtgpipe/config"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/stats"
)

// startLambda hands control to the Lambda runtime. Each invocation runs one import.
func startLambda(log logger.Logger, cfg *config.Config) {
	log.Info("Starting in Lambda mode...")
	lambda.Start(newLambdaHandler(log, cfg, actions.RunImport))
}

type importFunc func(ctx context.Context, log logger.Logger, cfg *actions.ImportConfig) (stats.Stats, error)

// newLambdaHandler returns a handler that runs an import and returns its stats.
func newLambdaHandler(log logger.Logger, cfg *config.Config, fn importFunc) func(ctx context.Context) (stats.Stats, error) {
	return func(ctx context.Context) (stats.Stats, error) {
		c := *cfg // copy so each invocation gets fresh collaborators.
		return fn(ctx, log, &actions.ImportConfig{Config: &c})
	}
}
