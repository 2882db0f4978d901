package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"solidguide/internal/http/middleware"
	"solidguide/internal/service"
)

// RegisterRoutes attaches HTTP routes to the provided Fiber app. Handlers are
// constructed here; business logic stays in the service layer.
func RegisterRoutes(app *fiber.App, db *sql.DB, guideSvc service.GuideService) {
	// The guide page itself. Revalidated on every request so publishes and
	// preview edits show up immediately.
	app.Get("/guide", middleware.NoCache(), ServeGuide(guideSvc))

	// Verification without persistence, for editors and CI.
	app.Post("/checks", CheckGuide(guideSvc))

	// Revision registry.
	app.Get("/revisions", ListRevisions(guideSvc))
	app.Post("/revisions", PublishRevision(guideSvc))
	app.Get("/revisions/:id", GetRevision(guideSvc))
	app.Get("/revisions/:id/source", GetSourceURL(guideSvc))
	app.Delete("/revisions/:id", DeleteRevision(guideSvc))

	// Probes.
	app.Get("/health", HealthCheck(db))
	app.Get("/healthz", LivenessProbe())
}
