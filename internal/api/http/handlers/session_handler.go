package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iftekharanwar/RareCare/internal/api/dto"
	"github.com/iftekharanwar/RareCare/internal/domain"
	"github.com/iftekharanwar/RareCare/internal/service"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// SessionHandler exposes login and logout.
type SessionHandler struct {
	sessions *service.SessionService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(sessions *service.SessionService) *SessionHandler {
	return &SessionHandler{sessions: sessions}
}

// Get handles GET /session.
func (h *SessionHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": sessionResponse(h.sessions.Session(c.UserContext()))})
}

// Login handles POST /session/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateRequest(&req); err != nil {
		return err
	}

	state, err := h.sessions.Login(c.UserContext(), req.Role, domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portalResponse(state)})
}

// Logout handles POST /session/logout. It succeeds even when nobody is logged in.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	ended := h.sessions.Logout(c.UserContext())
	return c.JSON(fiber.Map{"data": fiber.Map{
		"ended":   ended,
		"session": sessionResponse(h.sessions.Session(c.UserContext())),
	}})
}
