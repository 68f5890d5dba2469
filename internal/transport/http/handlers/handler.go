// Package handlers exposes the sample queries over HTTP.
package handlers

import (
	"github.com/als904204/go-querydsl/internal/repository"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the read-only query endpoints.
type Handler struct {
	log   *zap.SugaredLogger
	store *repository.Store
}

// New creates a Handler backed by the store.
func New(log *zap.SugaredLogger, store *repository.Store) *Handler {
	return &Handler{log: log, store: store}
}

// Register mounts the routes on the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	app.Get("/members", h.ListMembers)
	app.Get("/members/:username", h.GetMember)
	app.Get("/teams", h.ListTeams)
	app.Get("/teams/stats", h.TeamStats)
	app.Get("/teams/:name/members", h.TeamMembers)
	app.Get("/products", h.ListProducts)
}
