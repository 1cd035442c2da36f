// Package store defines the persistence contract for slots, sessions and
// psychologist profiles. The booking service is written against these
// interfaces; backends live in entstore (Postgres) and memstore (in-memory).
package store

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
)

// SlotStore is point lookup and occupancy mutation of time slots.
type SlotStore interface {
	GetSlot(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error)

	// MarkBooked flips the slot from free to booked and records the occupant
	// in a single conditional write. It returns ErrSlotTaken when the slot is
	// already booked and ErrSlotNotFound when it does not exist. The
	// compare-and-swap is what makes two racing bookings resolve to exactly
	// one winner, even across server instances.
	MarkBooked(ctx context.Context, id uuid.UUID, occupant string) error

	// MarkFree clears the occupancy flag and the occupant reference.
	MarkFree(ctx context.Context, id uuid.UUID) error

	// ListUpcomingSlots returns every slot of the psychologist starting at or
	// after from, booked or not, ascending by start time.
	ListUpcomingSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error)
}

// SessionStore is durable storage of session rows. Cross-entity consistency
// is the booking service's job, not this layer's.
type SessionStore interface {
	CreateSession(ctx context.Context, draft model.SessionDraft) (*model.Session, error)
	GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error)
	DeleteSession(ctx context.Context, id uuid.UUID) error

	// FindSessionsByPatient matches DNI exactly and email case-insensitively,
	// descending by start time.
	FindSessionsByPatient(ctx context.Context, dni, email string) ([]*model.Session, error)
}

// PsychologistStore is read access to provider profiles.
type PsychologistStore interface {
	ListPsychologists(ctx context.Context) ([]*model.Psychologist, error)
	GetPsychologist(ctx context.Context, id uuid.UUID) (*model.Psychologist, error)
}

// Store is the full persistence surface plus a transactional boundary.
type Store interface {
	SlotStore
	SessionStore
	PsychologistStore

	// InTx runs fn against a transactional view of the store: every write fn
	// performs commits atomically, or none does when fn returns an error.
	// Calling InTx on a store that is already transactional joins the open
	// transaction.
	InTx(ctx context.Context, fn func(tx Store) error) error
}
