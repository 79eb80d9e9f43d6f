package auth

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"github.com/iftekharanwar/RareCare/internal/domain"
)

const sessionKey = "portal_session"

// SessionReader exposes the current session.
type SessionReader interface {
	Session(ctx context.Context) domain.Session
}

// SessionLoader stores the current session on the request for the role gates.
func SessionLoader(sessions SessionReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess := sessions.Session(c.UserContext())
		c.Locals(sessionKey, sess)
		return c.Next()
	}
}

// SessionFromContext retrieves the session loaded by SessionLoader.
func SessionFromContext(c *fiber.Ctx) (domain.Session, bool) {
	val := c.Locals(sessionKey)
	if val == nil {
		return domain.Session{}, false
	}
	sess, ok := val.(domain.Session)
	return sess, ok
}
