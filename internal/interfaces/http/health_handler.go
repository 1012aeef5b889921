package http

import (
	"context"

	"github.com/gofiber/fiber/v2"
)

// AlegraPinger verifica conectividad con Alegra.
type AlegraPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler estado del servicio. La conectividad con Alegra se reporta
// como degradación, nunca tumba el health check.
type HealthHandler struct {
	alegra  AlegraPinger
	version string
}

// NewHealthHandler construye el handler de health.
func NewHealthHandler(alegra AlegraPinger, version string) *HealthHandler {
	return &HealthHandler{alegra: alegra, version: version}
}

// Health godoc
// @Summary      Estado del servicio
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	status := "ok"
	alegraStatus := "ok"
	if h.alegra != nil {
		if err := h.alegra.Ping(c.Context()); err != nil {
			status = "degraded"
			alegraStatus = err.Error()
		}
	}
	return c.JSON(fiber.Map{
		"status":  status,
		"version": h.version,
		"alegra":  alegraStatus,
	})
}
