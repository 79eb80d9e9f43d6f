package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iftekharanwar/RareCare/internal/domain"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

type fixedSession domain.Session

func (f fixedSession) Session(context.Context) domain.Session { return domain.Session(f) }

func newGatedApp(sess domain.Session, gate fiber.Handler) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			de := apperrors.ToDomainError(err)
			return c.Status(de.HTTPStatus).SendString(de.Code)
		},
	})
	app.Get("/gated", SessionLoader(fixedSession(sess)), gate, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func TestRoleGates(t *testing.T) {
	patient := domain.Session{Role: domain.RolePatient}
	doctor := domain.Session{Role: domain.RoleDoctor}
	anonymous := domain.Session{Role: domain.RoleUnauthenticated}

	tests := []struct {
		name       string
		sess       domain.Session
		gate       fiber.Handler
		wantStatus int
	}{
		{name: "authenticated passes", sess: doctor, gate: RequireAuthenticated(), wantStatus: http.StatusOK},
		{name: "anonymous blocked", sess: anonymous, gate: RequireAuthenticated(), wantStatus: http.StatusUnauthorized},
		{name: "allowed role passes", sess: patient, gate: RequireRole("submit-case", domain.RolePatient), wantStatus: http.StatusOK},
		{name: "other role blocked", sess: doctor, gate: RequireRole("submit-case", domain.RolePatient), wantStatus: http.StatusConflict},
		{name: "anonymous blocked by role gate", sess: anonymous, gate: RequireRole("submit-case", domain.RolePatient), wantStatus: http.StatusUnauthorized},
		{name: "empty allow list admits any portal", sess: doctor, gate: RequireRole("anything"), wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := newGatedApp(tt.sess, tt.gate).Test(httptest.NewRequest(http.MethodGet, "/gated", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
		})
	}
}

func TestSessionFromContextWithoutLoader(t *testing.T) {
	app := fiber.New()
	var found bool
	app.Get("/", func(c *fiber.Ctx) error {
		_, found = SessionFromContext(c)
		return c.SendStatus(http.StatusNoContent)
	})
	_, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	assert.False(t, found)
}
