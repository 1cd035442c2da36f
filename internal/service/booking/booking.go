// Package booking implements the slot-booking protocol: it is the only
// component that creates, cancels or moves sessions, and the sole writer of
// slot occupancy.
package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store"
	"github.com/turnos-app/turnos_backend/pkg/email"
)

// ---------------------------------------------------------------------------
// DTOs
// ---------------------------------------------------------------------------

type BookRequest struct {
	TimeSlotID   uuid.UUID
	PatientName  string
	PatientDNI   string
	PatientEmail string
	Specialty    string
}

// ---------------------------------------------------------------------------
// Interface
// ---------------------------------------------------------------------------

type Service interface {
	// Book reserves the slot for the patient and creates the session record.
	// The occupancy flip and the session insert are a single transaction.
	Book(ctx context.Context, req BookRequest) (*model.Session, error)

	// Cancel deletes a scheduled session and frees its slot atomically.
	// Cancelled sessions are not retrievable afterwards.
	Cancel(ctx context.Context, sessionID uuid.UUID) error

	// Reschedule moves a scheduled session to another slot. Cancel and rebook
	// run in one transaction: when the target slot is taken, the whole
	// operation rolls back and the original booking stays intact.
	Reschedule(ctx context.Context, sessionID, newSlotID uuid.UUID) (*model.Session, error)

	// CheckAvailability reports whether the slot can currently be booked.
	// A missing slot is simply not available.
	CheckAvailability(ctx context.Context, slotID uuid.UUID) (bool, error)

	GetSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, error)

	// FindByPatient looks up sessions by the DNI + email identity pair. There
	// is no account system: this string match is the ownership contract.
	FindByPatient(ctx context.Context, dni, patientEmail string) ([]*model.Session, error)
}

// ---------------------------------------------------------------------------
// Implementation
// ---------------------------------------------------------------------------

type bookingService struct {
	db     store.Store
	mailer *email.Client
}

// New builds the booking service. mailer may be nil; notifications are then
// skipped.
func New(db store.Store, mailer *email.Client) Service {
	return &bookingService{db: db, mailer: mailer}
}

func (s *bookingService) Book(ctx context.Context, req BookRequest) (*model.Session, error) {
	patientEmail, err := normalizeEmail(req.PatientEmail)
	if err != nil {
		return nil, ErrInvalidEmail
	}

	slot, err := s.db.GetSlot(ctx, req.TimeSlotID)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return nil, ErrSlotNotFound
		}
		return nil, fmt.Errorf("get slot: %w", err)
	}
	if slot.IsBooked {
		return nil, ErrSlotNotAvailable
	}

	var sess *model.Session
	err = s.db.InTx(ctx, func(tx store.Store) error {
		// MarkBooked is a compare-and-swap: a booking that raced us between
		// the check above and this write loses here, not at commit time.
		if err := tx.MarkBooked(ctx, slot.ID, patientEmail); err != nil {
			switch {
			case errors.Is(err, store.ErrSlotTaken):
				return ErrSlotNotAvailable
			case errors.Is(err, store.ErrSlotNotFound):
				return ErrSlotNotFound
			}
			return fmt.Errorf("mark slot booked: %w", err)
		}

		created, err := tx.CreateSession(ctx, model.SessionDraft{
			PsychologistID: slot.PsychologistID,
			TimeSlotID:     slot.ID,
			PatientName:    req.PatientName,
			PatientDNI:     req.PatientDNI,
			PatientEmail:   patientEmail,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			Specialty:      req.Specialty,
			Modality:       slot.Modality,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		sess = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyBooked(sess)
	return sess, nil
}

func (s *bookingService) Cancel(ctx context.Context, sessionID uuid.UUID) error {
	sess, err := s.db.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return ErrSessionNotFound
		}
		return fmt.Errorf("get session: %w", err)
	}
	if sess.Status != model.SessionScheduled {
		return ErrNotCancellable
	}

	err = s.db.InTx(ctx, func(tx store.Store) error {
		if err := tx.DeleteSession(ctx, sess.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if err := tx.MarkFree(ctx, sess.TimeSlotID); err != nil {
			return fmt.Errorf("free slot: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	s.notifyCancelled(sess)
	return nil
}

func (s *bookingService) Reschedule(ctx context.Context, sessionID, newSlotID uuid.UUID) (*model.Session, error) {
	sess, err := s.db.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.Status != model.SessionScheduled {
		return nil, ErrNotCancellable
	}

	var moved *model.Session
	err = s.db.InTx(ctx, func(tx store.Store) error {
		if err := tx.DeleteSession(ctx, sess.ID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
		if err := tx.MarkFree(ctx, sess.TimeSlotID); err != nil {
			return fmt.Errorf("free old slot: %w", err)
		}

		slot, err := tx.GetSlot(ctx, newSlotID)
		if err != nil {
			if errors.Is(err, store.ErrSlotNotFound) {
				return ErrSlotNotFound
			}
			return fmt.Errorf("get new slot: %w", err)
		}
		if err := tx.MarkBooked(ctx, slot.ID, sess.PatientEmail); err != nil {
			if errors.Is(err, store.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("mark new slot booked: %w", err)
		}

		created, err := tx.CreateSession(ctx, model.SessionDraft{
			PsychologistID: slot.PsychologistID,
			TimeSlotID:     slot.ID,
			PatientName:    sess.PatientName,
			PatientDNI:     sess.PatientDNI,
			PatientEmail:   sess.PatientEmail,
			StartTime:      slot.StartTime,
			EndTime:        slot.EndTime,
			Specialty:      sess.Specialty,
			Modality:       slot.Modality,
		})
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		moved = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.notifyBooked(moved)
	return moved, nil
}

func (s *bookingService) CheckAvailability(ctx context.Context, slotID uuid.UUID) (bool, error) {
	slot, err := s.db.GetSlot(ctx, slotID)
	if err != nil {
		if errors.Is(err, store.ErrSlotNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("get slot: %w", err)
	}
	return !slot.IsBooked, nil
}

func (s *bookingService) GetSession(ctx context.Context, sessionID uuid.UUID) (*model.Session, error) {
	sess, err := s.db.GetSession(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sess, nil
}

func (s *bookingService) FindByPatient(ctx context.Context, dni, patientEmail string) ([]*model.Session, error) {
	sessions, err := s.db.FindSessionsByPatient(ctx, dni, strings.ToLower(strings.TrimSpace(patientEmail)))
	if err != nil {
		return nil, fmt.Errorf("find sessions: %w", err)
	}
	return sessions, nil
}

// normalizeEmail validates the address syntactically and lowercases it.
// Addresses with a display name ("Juana <j@mail>") are rejected: the form
// field carries a bare address.
func normalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", fmt.Errorf("invalid email %q", raw)
	}
	return strings.ToLower(trimmed), nil
}

func (s *bookingService) notifyBooked(sess *model.Session) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.Send(ctx, email.BookingConfirmation(sess.PatientEmail, sess.PatientName, sess.StartTime, sess.EndTime, string(sess.Modality))); err != nil {
			slog.Warn("booking confirmation email failed", "session_id", sess.ID, "error", err)
		}
	}()
}

func (s *bookingService) notifyCancelled(sess *model.Session) {
	if s.mailer == nil || !s.mailer.Enabled() {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := s.mailer.Send(ctx, email.CancellationNotice(sess.PatientEmail, sess.PatientName, sess.StartTime)); err != nil {
			slog.Warn("cancellation email failed", "session_id", sess.ID, "error", err)
		}
	}()
}
