package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/iftekharanwar/RareCare/internal/api/dto"
	"github.com/iftekharanwar/RareCare/internal/service"
	apperrors "github.com/iftekharanwar/RareCare/pkg/errorutil"
)

// PortalHandler exposes tab, search and case-submission actions.
type PortalHandler struct {
	sessions *service.SessionService
}

// NewPortalHandler constructs handler.
func NewPortalHandler(sessions *service.SessionService) *PortalHandler {
	return &PortalHandler{sessions: sessions}
}

// Get handles GET /portal.
func (h *PortalHandler) Get(c *fiber.Ctx) error {
	state, err := h.sessions.Portal(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portalResponse(state)})
}

// SelectTab handles PUT /portal/tab.
func (h *PortalHandler) SelectTab(c *fiber.Ctx) error {
	var req dto.SelectTabRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validateRequest(&req); err != nil {
		return err
	}
	state, err := h.sessions.SelectTab(c.UserContext(), req.Tab)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portalResponse(state)})
}

// Search handles PUT /portal/search.
func (h *PortalHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	state, err := h.sessions.SetSearchTerm(c.UserContext(), req.Term)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portalResponse(state)})
}

// Listing handles GET /portal/listing.
func (h *PortalHandler) Listing(c *fiber.Ctx) error {
	listing, err := h.sessions.Listing(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": listing, "count": len(listing)})
}

// UpdateDraft handles PUT /portal/draft.
func (h *PortalHandler) UpdateDraft(c *fiber.Ctx) error {
	var req dto.CaseDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	state, err := h.sessions.UpdateDraft(c.UserContext(), draftInput(req))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": portalResponse(state)})
}

// SubmitCase handles POST /portal/cases. An empty body submits the stored draft.
func (h *PortalHandler) SubmitCase(c *fiber.Ctx) error {
	var input *service.CaseDraftInput
	if len(c.Body()) > 0 {
		var req dto.CaseDraftRequest
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
		in := draftInput(req)
		input = &in
	}

	id, state, err := h.sessions.SubmitCase(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": dto.SubmitCaseResponse{
		SubmissionID: id,
		Portal:       portalResponse(state),
	}})
}
