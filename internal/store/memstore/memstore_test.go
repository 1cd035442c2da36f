package memstore

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store"
)

func addFreeSlot(m *Memstore, psychID uuid.UUID, start time.Time) uuid.UUID {
	id := uuid.Must(uuid.NewV7())
	m.AddSlot(model.TimeSlot{
		ID:             id,
		PsychologistID: psychID,
		StartTime:      start,
		EndTime:        start.Add(50 * time.Minute),
		Modality:       model.ModalityOnline,
	})
	return id
}

func TestMarkBooked_CAS(t *testing.T) {
	m := New()
	ctx := context.Background()
	psychID := uuid.Must(uuid.NewV7())
	slotID := addFreeSlot(m, psychID, time.Now().Add(time.Hour))

	if err := m.MarkBooked(ctx, slotID, "juana@example.com"); err != nil {
		t.Fatalf("MarkBooked on free slot failed: %v", err)
	}

	// Second flip loses.
	if err := m.MarkBooked(ctx, slotID, "pedro@example.com"); !errors.Is(err, store.ErrSlotTaken) {
		t.Errorf("MarkBooked on booked slot = %v, want ErrSlotTaken", err)
	}

	// The loser must not overwrite the occupant.
	slot, err := m.GetSlot(ctx, slotID)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if slot.BookedBy == nil || *slot.BookedBy != "juana@example.com" {
		t.Errorf("BookedBy = %v, want the first occupant", slot.BookedBy)
	}

	if err := m.MarkBooked(ctx, uuid.Must(uuid.NewV7()), "x@example.com"); !errors.Is(err, store.ErrSlotNotFound) {
		t.Errorf("MarkBooked on unknown slot = %v, want ErrSlotNotFound", err)
	}
}

func TestMarkFree_ClearsOccupant(t *testing.T) {
	m := New()
	ctx := context.Background()
	slotID := addFreeSlot(m, uuid.Must(uuid.NewV7()), time.Now().Add(time.Hour))

	if err := m.MarkBooked(ctx, slotID, "juana@example.com"); err != nil {
		t.Fatalf("MarkBooked failed: %v", err)
	}
	if err := m.MarkFree(ctx, slotID); err != nil {
		t.Fatalf("MarkFree failed: %v", err)
	}

	slot, _ := m.GetSlot(ctx, slotID)
	if slot.IsBooked {
		t.Error("slot should be free")
	}
	if slot.BookedBy != nil {
		t.Errorf("BookedBy = %q, want nil when free", *slot.BookedBy)
	}
}

func TestGetSlot_ReturnsCopy(t *testing.T) {
	m := New()
	ctx := context.Background()
	slotID := addFreeSlot(m, uuid.Must(uuid.NewV7()), time.Now().Add(time.Hour))

	slot, _ := m.GetSlot(ctx, slotID)
	slot.IsBooked = true // mutate the caller's copy

	again, _ := m.GetSlot(ctx, slotID)
	if again.IsBooked {
		t.Error("mutating a returned slot must not affect the store")
	}
}

func TestListUpcomingSlots_OrderAndBound(t *testing.T) {
	m := New()
	ctx := context.Background()
	psychID := uuid.Must(uuid.NewV7())

	now := time.Now().Truncate(time.Hour)
	// Insert out of order, with one in the past.
	addFreeSlot(m, psychID, now.Add(3*time.Hour))
	addFreeSlot(m, psychID, now.Add(-2*time.Hour))
	addFreeSlot(m, psychID, now.Add(1*time.Hour))
	addFreeSlot(m, psychID, now.Add(2*time.Hour))

	// Some other psychologist's slot never shows up.
	addFreeSlot(m, uuid.Must(uuid.NewV7()), now.Add(1*time.Hour))

	slots, err := m.ListUpcomingSlots(ctx, psychID, now)
	if err != nil {
		t.Fatalf("ListUpcomingSlots failed: %v", err)
	}
	if len(slots) != 3 {
		t.Fatalf("got %d slots, want 3 (past slot excluded)", len(slots))
	}
	for i := 1; i < len(slots); i++ {
		if slots[i].StartTime.Before(slots[i-1].StartTime) {
			t.Fatal("slots should be ordered by start time ascending")
		}
	}
}

func TestFindSessionsByPatient(t *testing.T) {
	m := New()
	ctx := context.Background()
	psychID := uuid.Must(uuid.NewV7())

	now := time.Now().Truncate(time.Hour)
	for i := 0; i < 3; i++ {
		if _, err := m.CreateSession(ctx, model.SessionDraft{
			PsychologistID: psychID,
			TimeSlotID:     uuid.Must(uuid.NewV7()),
			PatientName:    "Juana Pérez",
			PatientDNI:     "30123456",
			PatientEmail:   "juana@example.com",
			StartTime:      now.Add(time.Duration(i) * time.Hour),
			EndTime:        now.Add(time.Duration(i)*time.Hour + 50*time.Minute),
			Modality:       model.ModalityOnline,
		}); err != nil {
			t.Fatalf("CreateSession failed: %v", err)
		}
	}
	// Same DNI, different email: a different identity.
	if _, err := m.CreateSession(ctx, model.SessionDraft{
		PatientDNI:   "30123456",
		PatientEmail: "otra@example.com",
		StartTime:    now,
		EndTime:      now.Add(50 * time.Minute),
		Modality:     model.ModalityOnline,
	}); err != nil {
		t.Fatalf("CreateSession failed: %v", err)
	}

	tests := []struct {
		name  string
		dni   string
		email string
		want  int
	}{
		{"exact", "30123456", "juana@example.com", 3},
		{"email case folded", "30123456", "Juana@Example.COM", 3},
		{"wrong dni", "99999999", "juana@example.com", 0},
		{"wrong email", "30123456", "nadie@example.com", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.FindSessionsByPatient(ctx, tt.dni, tt.email)
			if err != nil {
				t.Fatalf("FindSessionsByPatient failed: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("got %d sessions, want %d", len(got), tt.want)
			}
			for i := 1; i < len(got); i++ {
				if got[i].StartTime.After(got[i-1].StartTime) {
					t.Fatal("sessions should be ordered by start time descending")
				}
			}
		})
	}
}

func TestInTx_RollbackRestoresState(t *testing.T) {
	m := New()
	ctx := context.Background()
	slotID := addFreeSlot(m, uuid.Must(uuid.NewV7()), time.Now().Add(time.Hour))

	boom := fmt.Errorf("boom")
	err := m.InTx(ctx, func(tx store.Store) error {
		if err := tx.MarkBooked(ctx, slotID, "juana@example.com"); err != nil {
			return err
		}
		if _, err := tx.CreateSession(ctx, model.SessionDraft{
			TimeSlotID:   slotID,
			PatientDNI:   "30123456",
			PatientEmail: "juana@example.com",
		}); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx error = %v, want the callback's error", err)
	}

	slot, _ := m.GetSlot(ctx, slotID)
	if slot.IsBooked {
		t.Error("slot booking should roll back")
	}
	sessions, _ := m.FindSessionsByPatient(ctx, "30123456", "juana@example.com")
	if len(sessions) != 0 {
		t.Errorf("session creation should roll back, found %d", len(sessions))
	}
}

func TestInTx_CommitKeepsState(t *testing.T) {
	m := New()
	ctx := context.Background()
	slotID := addFreeSlot(m, uuid.Must(uuid.NewV7()), time.Now().Add(time.Hour))

	err := m.InTx(ctx, func(tx store.Store) error {
		return tx.MarkBooked(ctx, slotID, "juana@example.com")
	})
	if err != nil {
		t.Fatalf("InTx failed: %v", err)
	}

	slot, _ := m.GetSlot(ctx, slotID)
	if !slot.IsBooked {
		t.Error("committed booking lost")
	}
}

func TestInTx_NestedJoins(t *testing.T) {
	m := New()
	ctx := context.Background()
	slotID := addFreeSlot(m, uuid.Must(uuid.NewV7()), time.Now().Add(time.Hour))

	boom := fmt.Errorf("boom")
	err := m.InTx(ctx, func(tx store.Store) error {
		// A nested InTx runs in the same transaction; an error from the inner
		// callback unwinds the whole thing.
		return tx.InTx(ctx, func(inner store.Store) error {
			if err := inner.MarkBooked(ctx, slotID, "juana@example.com"); err != nil {
				return err
			}
			return boom
		})
	})
	if !errors.Is(err, boom) {
		t.Fatalf("InTx error = %v, want inner error", err)
	}

	slot, _ := m.GetSlot(ctx, slotID)
	if slot.IsBooked {
		t.Error("nested transaction work should roll back with the outer one")
	}
}
