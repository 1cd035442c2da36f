// Package directory serves the read-only psychologist listings consumed by
// the browsing UI: profile + upcoming calendar, filterable by specialty,
// modality and availability bucket. It never mutates anything.
package directory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store"
)

// highAvailabilityThreshold splits the availability buckets: a psychologist
// with more than this many free future slots counts as "high".
const highAvailabilityThreshold = 5

type Availability string

const (
	AvailabilityAll  Availability = "all"
	AvailabilityHigh Availability = "high"
	AvailabilityLow  Availability = "low"
)

func (a Availability) Valid() bool {
	return a == AvailabilityAll || a == AvailabilityHigh || a == AvailabilityLow
}

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type ListRequest struct {
	// Specialty filters by exact match against the specialty set. Empty means
	// no specialty filter.
	Specialty string
	// Modality restricts to psychologists offering it; when set it also
	// restricts which slots count toward the availability bucket. Empty means
	// no modality filter.
	Modality model.Modality
	// Availability buckets by the number of free future slots.
	Availability Availability
}

// Profile is a psychologist plus their upcoming calendar, booked slots
// included (the calendar renders them as taken).
type Profile struct {
	model.Psychologist
	Availability []*model.TimeSlot `json:"availability"`
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	ListPsychologists(ctx context.Context, req ListRequest) ([]*Profile, error)
	GetPsychologist(ctx context.Context, id uuid.UUID) (*Profile, error)
	ListSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type directoryService struct {
	db  store.Store
	now func() time.Time
}

func New(db store.Store) Service {
	return &directoryService{db: db, now: time.Now}
}

func (s *directoryService) ListPsychologists(ctx context.Context, req ListRequest) ([]*Profile, error) {
	if req.Availability == "" {
		req.Availability = AvailabilityAll
	}

	psychs, err := s.db.ListPsychologists(ctx)
	if err != nil {
		return nil, fmt.Errorf("list psychologists: %w", err)
	}

	now := s.now()
	out := make([]*Profile, 0, len(psychs))
	for _, p := range psychs {
		if req.Specialty != "" && !p.HasSpecialty(req.Specialty) {
			continue
		}
		if req.Modality != "" && !p.Offers(req.Modality) {
			continue
		}

		slots, err := s.db.ListUpcomingSlots(ctx, p.ID, now)
		if err != nil {
			return nil, fmt.Errorf("list slots for %s: %w", p.ID, err)
		}

		if req.Availability != AvailabilityAll {
			free := countFree(slots, req.Modality)
			if req.Availability == AvailabilityHigh && free <= highAvailabilityThreshold {
				continue
			}
			if req.Availability == AvailabilityLow && free > highAvailabilityThreshold {
				continue
			}
		}

		out = append(out, &Profile{Psychologist: *p, Availability: slots})
	}
	return out, nil
}

func (s *directoryService) GetPsychologist(ctx context.Context, id uuid.UUID) (*Profile, error) {
	p, err := s.db.GetPsychologist(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrPsychologistNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get psychologist: %w", err)
	}

	slots, err := s.db.ListUpcomingSlots(ctx, id, s.now())
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return &Profile{Psychologist: *p, Availability: slots}, nil
}

func (s *directoryService) ListSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error) {
	if _, err := s.db.GetPsychologist(ctx, psychologistID); err != nil {
		if errors.Is(err, store.ErrPsychologistNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get psychologist: %w", err)
	}

	slots, err := s.db.ListUpcomingSlots(ctx, psychologistID, from)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	return slots, nil
}

func countFree(slots []*model.TimeSlot, modality model.Modality) int {
	n := 0
	for _, slot := range slots {
		if slot.IsBooked {
			continue
		}
		if modality != "" && slot.Modality != modality {
			continue
		}
		n++
	}
	return n
}
