// Package lambda adapts the add operation to AWS Lambda behind an API
// Gateway proxy integration. It answers with the same status codes and
// JSON bodies as the HTTP server.
package lambda

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/rs/zerolog"

	"github.com/deppfellow/adder/internal/errs"
	"github.com/deppfellow/adder/internal/service"
)

// Handler serves API Gateway proxy events.
type Handler struct {
	logger     zerolog.Logger
	addService *service.AddService
}

// NewHandler constructs a Handler.
func NewHandler(logger zerolog.Logger, addService *service.AddService) *Handler {
	return &Handler{
		logger:     logger,
		addService: addService,
	}
}

// Handle reads the operands "a" and "b" from the path parameters, or from
// the query string when the route has none, and returns their sum.
//
// Client faults are reported in the response; the returned error is only
// non-nil if the response body cannot be encoded.
func (h *Handler) Handle(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	a, b := operands(req)

	logger := h.logger.With().
		Str("request_id", req.RequestContext.RequestID).
		Str("method", req.HTTPMethod).
		Str("path", req.Path).
		Logger()
	ctx = logger.WithContext(ctx)

	sum, err := h.addService.Add(ctx, a, b)
	if err != nil {
		httpErr := errs.FromCalc(err)

		logger.Warn().
			Err(err).
			Int("status", httpErr.Status).
			Str("error_code", httpErr.Code).
			Msg(httpErr.Message)

		return respond(httpErr.Status, httpErr.Response())
	}

	logger.Info().Int("status", http.StatusOK).Msg("API")

	return respond(http.StatusOK, sum)
}

// operands prefers path parameters; query string values are used only for
// names the path does not carry.
func operands(req events.APIGatewayProxyRequest) (string, string) {
	return param(req, "a"), param(req, "b")
}

func param(req events.APIGatewayProxyRequest, name string) string {
	if v, ok := req.PathParameters[name]; ok {
		return v
	}
	return req.QueryStringParameters[name]
}

func respond(status int, body interface{}) (events.APIGatewayProxyResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return events.APIGatewayProxyResponse{}, err
	}

	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers: map[string]string{
			"Content-Type": "application/json",
		},
		Body: string(payload),
	}, nil
}
