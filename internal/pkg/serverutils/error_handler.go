package serverutils

import (
	"errors"

	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/i18n"
	"chatlog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps an error kind to its HTTP status.
func StatusFor(kind apperror.Kind) int {
	switch kind {
	case apperror.KindValidation,
		apperror.KindMalformedRequest,
		apperror.KindDuplicateEmail,
		apperror.KindDuplicateUsername,
		apperror.KindInvalidCredentials:
		return fiber.StatusBadRequest
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorHandlerMiddleware turns errors returned by handlers into localized
// JSON bodies. Causes of 5xx responses are logged and never sent to clients.
func ErrorHandlerMiddleware(tr *i18n.Translator, log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		kind := apperror.KindOf(err)

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			switch fiberErr.Code {
			case fiber.StatusNotFound:
				kind = apperror.KindNotFound
			case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusRequestEntityTooLarge:
				kind = apperror.KindMalformedRequest
			}
		}

		status := StatusFor(kind)
		if status >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Request failed", map[string]interface{}{
				"method":     ctx.Method(),
				"path":       ctx.Path(),
				"request_id": RequestID(ctx),
				"error":      err,
			})
		}

		locale := Locale(ctx, tr)
		return ctx.Status(status).JSON(ErrorResponse(kind, tr.Message(locale, kind), apperror.FieldsOf(err)))
	}
}
