package handler

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/service/directory"
)

type PsychologistHandler struct {
	svc directory.Service
}

func NewPsychologistHandler(svc directory.Service) *PsychologistHandler {
	return &PsychologistHandler{svc: svc}
}

func mapDirectoryError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, directory.ErrNotFound):
		return notFound(c, err.Error())
	default:
		return internalError(c)
	}
}

// GET /psychologists
func (h *PsychologistHandler) List(c fiber.Ctx) error {
	var q struct {
		Specialty    string `query:"specialty"`
		Modality     string `query:"modality"`
		Availability string `query:"availability"`
	}
	_ = c.Bind().Query(&q)

	req := directory.ListRequest{Specialty: q.Specialty}

	if q.Modality != "" {
		m := model.Modality(q.Modality)
		if !m.Valid() {
			return badRequest(c, "invalid modality")
		}
		req.Modality = m
	}
	if q.Availability != "" {
		a := directory.Availability(q.Availability)
		if !a.Valid() {
			return badRequest(c, "invalid availability")
		}
		req.Availability = a
	}

	profiles, err := h.svc.ListPsychologists(c.Context(), req)
	if err != nil {
		return mapDirectoryError(c, err)
	}

	return ok(c, profiles)
}

// GET /psychologists/:id
func (h *PsychologistHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid psychologist id")
	}

	profile, err := h.svc.GetPsychologist(c.Context(), id)
	if err != nil {
		return mapDirectoryError(c, err)
	}

	return ok(c, profile)
}

// GET /psychologists/:id/slots
func (h *PsychologistHandler) ListSlots(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid psychologist id")
	}

	from := time.Now()
	if raw := c.Query("from"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return badRequest(c, "invalid from timestamp")
		}
		from = t
	}

	slots, err := h.svc.ListSlots(c.Context(), id, from)
	if err != nil {
		return mapDirectoryError(c, err)
	}

	return ok(c, slots)
}
