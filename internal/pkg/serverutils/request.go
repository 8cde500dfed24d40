package serverutils

import (
	"time"

	"chatlog-be/internal/pkg/apperror"
	"chatlog-be/internal/pkg/i18n"
	"chatlog-be/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

const (
	localsLocale    = "locale"
	localsRequestID = "requestid"
)

// ParseJSON decodes the request body into out. Anything other than a JSON
// body is reported as apperror.ErrMalformedRequest.
func ParseJSON(ctx *fiber.Ctx, op string, out interface{}) error {
	if !ctx.Is("json") {
		return apperror.New(apperror.KindMalformedRequest, op)
	}
	if err := ctx.BodyParser(out); err != nil {
		return apperror.Wrap(apperror.KindMalformedRequest, op, err)
	}
	return nil
}

// Locale picks the best supported locale from Accept-Language.
func Locale(ctx *fiber.Ctx, tr *i18n.Translator) string {
	if locale, ok := ctx.Locals(localsLocale).(string); ok && locale != "" {
		return locale
	}
	if locale := ctx.AcceptsLanguages(tr.Locales()...); locale != "" {
		return locale
	}
	return tr.DefaultLocale()
}

// LocaleMiddleware resolves the locale once and stores it both in Locals and
// in the user context so services can localize validation messages.
func LocaleMiddleware(tr *i18n.Translator) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		locale := Locale(ctx, tr)
		ctx.Locals(localsLocale, locale)
		ctx.SetUserContext(i18n.WithLocale(ctx.UserContext(), locale))
		return ctx.Next()
	}
}

func RequestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(localsRequestID).(string)
	return id
}

// RequestLogger logs one line per request after the response is written.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		details := map[string]interface{}{
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
			"request_id": RequestID(ctx),
		}
		if status >= fiber.StatusInternalServerError {
			log.Warn("HTTP", "Request completed", details)
		} else {
			log.Info("HTTP", "Request completed", details)
		}
		return err
	}
}
