package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iftekharanwar/RareCare/internal/domain"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// RequireAuthenticated ensures a portal is open.
func RequireAuthenticated() fiber.Handler {
	return func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok || !sess.Authenticated() {
			return apperrors.NewNotAuthenticated()
		}
		return c.Next()
	}
}

// RequireRole ensures the open portal belongs to one of the allowed roles.
// action names the gated feature in the error.
func RequireRole(action string, allowed ...domain.Role) fiber.Handler {
	allowedSet := make(map[domain.Role]struct{}, len(allowed))
	for _, role := range allowed {
		allowedSet[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		sess, ok := SessionFromContext(c)
		if !ok || !sess.Authenticated() {
			return apperrors.NewNotAuthenticated()
		}
		if len(allowedSet) == 0 {
			return c.Next()
		}
		if _, exists := allowedSet[sess.Role]; !exists {
			return apperrors.NewUnsupportedAction(string(sess.Role), action)
		}
		return c.Next()
	}
}
