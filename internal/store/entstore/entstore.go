// Package entstore implements store.Store on the ent client (PostgreSQL).
//
// The occupancy compare-and-swap is a conditional UPDATE on the slot row, so
// two racing bookings resolve to one winner at the database even across
// server instances; InTx spans the session insert and the slot flip.
package entstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/repo"
	entpsych "github.com/turnos-app/turnos_backend/internal/repo/psychologist"
	entsession "github.com/turnos-app/turnos_backend/internal/repo/session"
	entslot "github.com/turnos-app/turnos_backend/internal/repo/timeslot"
	"github.com/turnos-app/turnos_backend/internal/store"
)

// Store implements store.Store. A Store built by New runs every call on its
// own connection; the Stores handed to InTx callbacks share one transaction.
type Store struct {
	client *repo.Client
	inTx   bool
}

func New(client *repo.Client) *Store {
	return &Store{client: client}
}

// ---------------------------------------------------------------------------
// Slots
// ---------------------------------------------------------------------------

func (s *Store) GetSlot(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	slot, err := s.client.TimeSlot.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, store.ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	return toSlot(slot), nil
}

func (s *Store) MarkBooked(ctx context.Context, id uuid.UUID, occupant string) error {
	n, err := s.client.TimeSlot.Update().
		Where(
			entslot.ID(id),
			entslot.IsBooked(false),
		).
		SetIsBooked(true).
		SetBookedBy(occupant).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark slot booked: %w", err)
	}
	if n == 0 {
		// The conditional update matched nothing: either the slot is gone or
		// someone else holds it.
		exists, err := s.client.TimeSlot.Query().Where(entslot.ID(id)).Exist(ctx)
		if err != nil {
			return fmt.Errorf("check slot: %w", err)
		}
		if !exists {
			return store.ErrSlotNotFound
		}
		return store.ErrSlotTaken
	}
	return nil
}

func (s *Store) MarkFree(ctx context.Context, id uuid.UUID) error {
	n, err := s.client.TimeSlot.Update().
		Where(entslot.ID(id)).
		SetIsBooked(false).
		ClearBookedBy().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("mark slot free: %w", err)
	}
	if n == 0 {
		return store.ErrSlotNotFound
	}
	return nil
}

func (s *Store) ListUpcomingSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error) {
	slots, err := s.client.TimeSlot.Query().
		Where(
			entslot.PsychologistID(psychologistID),
			entslot.StartTimeGTE(from),
		).
		Order(entslot.ByStartTime()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	out := make([]*model.TimeSlot, len(slots))
	for i, slot := range slots {
		out[i] = toSlot(slot)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Sessions
// ---------------------------------------------------------------------------

func (s *Store) CreateSession(ctx context.Context, draft model.SessionDraft) (*model.Session, error) {
	sess, err := s.client.Session.Create().
		SetPsychologistID(draft.PsychologistID).
		SetTimeSlotID(draft.TimeSlotID).
		SetPatientName(draft.PatientName).
		SetPatientDni(draft.PatientDNI).
		SetPatientEmail(draft.PatientEmail).
		SetStartTime(draft.StartTime).
		SetEndTime(draft.EndTime).
		SetSpecialty(draft.Specialty).
		SetModality(entsession.Modality(draft.Modality)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return toSession(sess), nil
}

func (s *Store) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	sess, err := s.client.Session.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, store.ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return toSession(sess), nil
}

func (s *Store) DeleteSession(ctx context.Context, id uuid.UUID) error {
	err := s.client.Session.DeleteOneID(id).Exec(ctx)
	if err != nil {
		if repo.IsNotFound(err) {
			return store.ErrSessionNotFound
		}
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

func (s *Store) FindSessionsByPatient(ctx context.Context, dni, email string) ([]*model.Session, error) {
	sessions, err := s.client.Session.Query().
		Where(
			entsession.PatientDni(dni),
			entsession.PatientEmail(strings.ToLower(email)),
		).
		Order(entsession.ByStartTime(sql.OrderDesc())).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	out := make([]*model.Session, len(sessions))
	for i, sess := range sessions {
		out[i] = toSession(sess)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Psychologists
// ---------------------------------------------------------------------------

func (s *Store) ListPsychologists(ctx context.Context) ([]*model.Psychologist, error) {
	psychs, err := s.client.Psychologist.Query().
		Order(entpsych.ByCreatedAt()).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list psychologists: %w", err)
	}
	out := make([]*model.Psychologist, len(psychs))
	for i, p := range psychs {
		out[i] = toPsychologist(p)
	}
	return out, nil
}

func (s *Store) GetPsychologist(ctx context.Context, id uuid.UUID) (*model.Psychologist, error) {
	p, err := s.client.Psychologist.Get(ctx, id)
	if err != nil {
		if repo.IsNotFound(err) {
			return nil, store.ErrPsychologistNotFound
		}
		return nil, fmt.Errorf("get psychologist: %w", err)
	}
	return toPsychologist(p), nil
}

// ---------------------------------------------------------------------------
// Transactions
// ---------------------------------------------------------------------------

func (s *Store) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	if s.inTx {
		return fn(s)
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if v := recover(); v != nil {
			_ = tx.Rollback()
			panic(v)
		}
	}()

	if err := fn(&Store{client: tx.Client(), inTx: true}); err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback failed: %v)", err, rerr)
		}
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}
