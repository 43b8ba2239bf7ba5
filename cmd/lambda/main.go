// Command lambda runs the add operation as an AWS Lambda function behind
// API Gateway.
package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"github.com/deppfellow/adder/internal/config"
	"github.com/deppfellow/adder/internal/lambda"
	"github.com/deppfellow/adder/internal/logger"
	"github.com/deppfellow/adder/internal/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		bootstrap := logger.NewLogger("info", true)
		bootstrap.Fatal().Err(err).Msg("failed to load config")
	}

	// Lambda ships stdout to CloudWatch, which wants one JSON object per line.
	cfg.Observability.Logging.Format = "json"
	log := logger.NewLoggerWithService(cfg.Observability, nil)

	h := lambda.NewHandler(log, service.NewAddService())
	awslambda.Start(h.Handle)
}
