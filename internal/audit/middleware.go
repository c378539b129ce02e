// Package audit records one transaction-log row for every inbound HTTP
// request, whatever its outcome.
package audit

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/sahils38/gripinvest-winter-internship/internal/audit/domain"
	"github.com/sahils38/gripinvest-winter-internship/internal/auth/service"
	"github.com/sahils38/gripinvest-winter-internship/pkg/constant"
)

// RequestLogger wraps the whole request-handling span. It opportunistically
// resolves an email from any bearer token, delegates, then records method,
// path and resulting status. A handler error is recorded with its message
// and a 500 sentinel (or the *fiber.Error code) and still propagates.
// Failures while persisting the record itself are swallowed: auditing must
// never alter the client-visible response.
func RequestLogger(recorder domain.Recorder, tokens service.TokenGenerator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var email *string
		if header := c.Get(fiber.HeaderAuthorization); strings.HasPrefix(header, constant.BearerScheme+" ") {
			raw := strings.TrimSpace(strings.TrimPrefix(header, constant.BearerScheme+" "))
			if subject, err := tokens.Verify(raw); err == nil {
				email = &subject
			}
		}

		// Captured before delegation; the path can be rewritten downstream.
		endpoint := c.Path()
		method := c.Method()

		err := c.Next()

		statusCode := c.Response().StatusCode()
		var errorMessage *string
		if err != nil {
			msg := err.Error()
			errorMessage = &msg
			statusCode = fiber.StatusInternalServerError

			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				statusCode = fiberErr.Code
			}
		}

		_ = recorder.Record(c.UserContext(), &domain.TransactionLog{
			Email:        email,
			Endpoint:     endpoint,
			HTTPMethod:   method,
			StatusCode:   statusCode,
			ErrorMessage: errorMessage,
		})

		return err
	}
}
