package serverutils

import (
	"context"
	"time"

	"chatlog-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

const localsUserID = "user_id"

type SessionResolver interface {
	Resolve(ctx context.Context, token string) (int64, error)
}

// SessionCookie describes how the session token travels to the browser.
type SessionCookie struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

func (c SessionCookie) Set(ctx *fiber.Ctx, token string) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		Secure:   c.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c SessionCookie) Clear(ctx *fiber.Ctx) {
	ctx.Cookie(&fiber.Cookie{
		Name:     c.Name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		Secure:   c.Secure,
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
}

func (c SessionCookie) Token(ctx *fiber.Ctx) string {
	return ctx.Cookies(c.Name)
}

// RequireSession rejects the request with apperror.ErrUnauthenticated unless
// the session cookie resolves to a user. The user id is then available via UserID.
func RequireSession(sessions SessionResolver, cookie SessionCookie) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := sessions.Resolve(ctx.UserContext(), cookie.Token(ctx))
		if err != nil {
			return err
		}
		ctx.Locals(localsUserID, userId)
		return ctx.Next()
	}
}

// RequireSessionPage is RequireSession for HTML pages: anonymous visitors are
// redirected to loginPath instead of receiving JSON.
func RequireSessionPage(sessions SessionResolver, cookie SessionCookie, loginPath string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		userId, err := sessions.Resolve(ctx.UserContext(), cookie.Token(ctx))
		if err != nil {
			if apperror.KindOf(err) == apperror.KindUnauthenticated {
				return ctx.Redirect(loginPath, fiber.StatusFound)
			}
			return err
		}
		ctx.Locals(localsUserID, userId)
		return ctx.Next()
	}
}

// HasSession reports whether the request carries a live session. Store
// errors count as no session.
func HasSession(ctx *fiber.Ctx, sessions SessionResolver, cookie SessionCookie) bool {
	_, err := sessions.Resolve(ctx.UserContext(), cookie.Token(ctx))
	return err == nil
}

func UserID(ctx *fiber.Ctx) int64 {
	id, _ := ctx.Locals(localsUserID).(int64)
	return id
}
