package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/iftekharanwar/RareCare/internal/api/http/handlers"
	"github.com/iftekharanwar/RareCare/internal/auth"
	"github.com/iftekharanwar/RareCare/internal/domain"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health   *handlers.HealthHandler
	Session  *handlers.SessionHandler
	Portal   *handlers.PortalHandler
	Sessions auth.SessionReader
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/metrics", cfg.Health.Metrics)

	sessionGroup := app.Group("/session")
	sessionGroup.Get("", cfg.Session.Get)
	sessionGroup.Post("/login", cfg.Session.Login)
	sessionGroup.Post("/logout", cfg.Session.Logout)

	portalGroup := app.Group("/portal", auth.SessionLoader(cfg.Sessions), auth.RequireAuthenticated())
	portalGroup.Get("", cfg.Portal.Get)
	portalGroup.Put("/tab", cfg.Portal.SelectTab)
	portalGroup.Put("/search", cfg.Portal.Search)
	portalGroup.Get("/listing", cfg.Portal.Listing)

	patientOnly := auth.RequireRole("submit-case", domain.RolePatient)
	portalGroup.Put("/draft", patientOnly, cfg.Portal.UpdateDraft)
	portalGroup.Post("/cases", patientOnly, cfg.Portal.SubmitCase)
}
