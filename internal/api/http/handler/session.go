package handler

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/service/booking"
)

type SessionHandler struct {
	svc booking.Service
}

func NewSessionHandler(svc booking.Service) *SessionHandler {
	return &SessionHandler{svc: svc}
}

func mapBookingError(c fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, booking.ErrInvalidEmail):
		return badRequest(c, err.Error())
	case errors.Is(err, booking.ErrSlotNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSessionNotFound):
		return notFound(c, err.Error())
	case errors.Is(err, booking.ErrSlotNotAvailable):
		return conflict(c, err.Error())
	case errors.Is(err, booking.ErrNotCancellable):
		return conflict(c, err.Error())
	default:
		return internalError(c)
	}
}

// POST /sessions
func (h *SessionHandler) Book(c fiber.Ctx) error {
	var body struct {
		TimeSlotID   string `json:"time_slot_id"`
		PatientName  string `json:"patient_name"`
		PatientDNI   string `json:"patient_dni"`
		PatientEmail string `json:"patient_email"`
		Specialty    string `json:"specialty"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}
	if body.PatientName == "" || body.PatientDNI == "" || body.PatientEmail == "" {
		return badRequest(c, "patient_name, patient_dni and patient_email are required")
	}

	slotID, err := uuid.Parse(body.TimeSlotID)
	if err != nil {
		return badRequest(c, "invalid time_slot_id")
	}

	sess, err := h.svc.Book(c.Context(), booking.BookRequest{
		TimeSlotID:   slotID,
		PatientName:  body.PatientName,
		PatientDNI:   body.PatientDNI,
		PatientEmail: body.PatientEmail,
		Specialty:    body.Specialty,
	})
	if err != nil {
		return mapBookingError(c, err)
	}

	return created(c, sess)
}

// GET /sessions
func (h *SessionHandler) List(c fiber.Ctx) error {
	var q struct {
		DNI   string `query:"dni"`
		Email string `query:"email"`
	}
	_ = c.Bind().Query(&q)

	if q.DNI == "" || q.Email == "" {
		return badRequest(c, "dni and email are required")
	}

	sessions, err := h.svc.FindByPatient(c.Context(), q.DNI, q.Email)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, sessions)
}

// GET /sessions/:id
func (h *SessionHandler) GetByID(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	sess, err := h.svc.GetSession(c.Context(), id)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, sess)
}

// DELETE /sessions/:id
func (h *SessionHandler) Cancel(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	if err := h.svc.Cancel(c.Context(), id); err != nil {
		return mapBookingError(c, err)
	}

	return noContent(c)
}

// POST /sessions/:id/reschedule
func (h *SessionHandler) Reschedule(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid session id")
	}

	var body struct {
		NewTimeSlotID string `json:"new_time_slot_id"`
	}
	if err := c.Bind().JSON(&body); err != nil {
		return badRequest(c, "invalid request body")
	}

	newSlotID, err := uuid.Parse(body.NewTimeSlotID)
	if err != nil {
		return badRequest(c, "invalid new_time_slot_id")
	}

	sess, err := h.svc.Reschedule(c.Context(), id, newSlotID)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, sess)
}

// GET /slots/:id/availability
func (h *SessionHandler) CheckAvailability(c fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "invalid slot id")
	}

	available, err := h.svc.CheckAvailability(c.Context(), id)
	if err != nil {
		return mapBookingError(c, err)
	}

	return ok(c, fiber.Map{"available": available})
}
