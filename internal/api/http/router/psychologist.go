package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/turnos-app/turnos_backend/internal/api/http/handler"
)

func (r *Router) registerPsychologistRoutes(api fiber.Router, ph *handler.PsychologistHandler) {
	psychs := api.Group("/psychologists")

	psychs.Get("/", ph.List)

	p := psychs.Group("/:id")
	p.Get("/", ph.GetByID)
	p.Get("/slots", ph.ListSlots)
}
