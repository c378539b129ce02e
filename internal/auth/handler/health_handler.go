package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// Pinger is satisfied by pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// Check is the liveness probe; it exercises the database, not just the process.
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	if err := h.db.Ping(c.UserContext()); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"service": "ok",
			"db":      "unavailable",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"service": "ok",
		"db":      "ok",
	})
}
