package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/turnos-app/turnos_backend/internal/api/http/handler"
)

func (r *Router) registerSessionRoutes(api fiber.Router, sh *handler.SessionHandler) {
	// Slot availability probe used by the booking form before submitting.
	api.Get("/slots/:id/availability", sh.CheckAvailability)

	sessions := api.Group("/sessions")

	sessions.Get("/", sh.List)
	sessions.Post("/", sh.Book)

	s := sessions.Group("/:id")
	s.Get("/", sh.GetByID)
	s.Delete("/", sh.Cancel)
	s.Post("/reschedule", sh.Reschedule)
}
