package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store/memstore"
)

func newSlot(psychID uuid.UUID, start time.Time, m model.Modality) model.TimeSlot {
	return model.TimeSlot{
		ID:             uuid.Must(uuid.NewV7()),
		PsychologistID: psychID,
		StartTime:      start,
		EndTime:        start.Add(50 * time.Minute),
		Modality:       m,
	}
}

// fixture returns a store with one psychologist and two free slots.
func fixture(t *testing.T) (*memstore.Memstore, Service, model.TimeSlot, model.TimeSlot) {
	t.Helper()

	db := memstore.New()
	psychID := uuid.Must(uuid.NewV7())
	db.AddPsychologist(model.Psychologist{
		ID:          psychID,
		Name:        "Dra. María González",
		Specialties: []string{"Ansiedad"},
		Modalities:  []model.Modality{model.ModalityOnline, model.ModalityInPerson},
	})

	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	slotA := newSlot(psychID, base, model.ModalityOnline)
	slotB := newSlot(psychID, base.Add(time.Hour), model.ModalityInPerson)
	db.AddSlot(slotA)
	db.AddSlot(slotB)

	return db, New(db, nil), slotA, slotB
}

func book(t *testing.T, svc Service, slotID uuid.UUID) *model.Session {
	t.Helper()

	sess, err := svc.Book(context.Background(), BookRequest{
		TimeSlotID:   slotID,
		PatientName:  "Juana Pérez",
		PatientDNI:   "30123456",
		PatientEmail: "juana@example.com",
		Specialty:    "Ansiedad",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	return sess
}

func TestBook_Success(t *testing.T) {
	db, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	if sess.TimeSlotID != slotA.ID {
		t.Errorf("session slot = %s, want %s", sess.TimeSlotID, slotA.ID)
	}
	if sess.PsychologistID != slotA.PsychologistID {
		t.Errorf("session psychologist = %s, want %s", sess.PsychologistID, slotA.PsychologistID)
	}
	if !sess.StartTime.Equal(slotA.StartTime) || !sess.EndTime.Equal(slotA.EndTime) {
		t.Errorf("session interval = [%v, %v], want slot interval [%v, %v]",
			sess.StartTime, sess.EndTime, slotA.StartTime, slotA.EndTime)
	}
	if sess.Modality != slotA.Modality {
		t.Errorf("session modality = %s, want %s", sess.Modality, slotA.Modality)
	}
	if sess.Status != model.SessionScheduled {
		t.Errorf("session status = %s, want %s", sess.Status, model.SessionScheduled)
	}

	got, err := db.GetSlot(ctx, slotA.ID)
	if err != nil {
		t.Fatalf("GetSlot failed: %v", err)
	}
	if !got.IsBooked {
		t.Error("slot should be booked after Book")
	}
	if got.BookedBy == nil || *got.BookedBy != "juana@example.com" {
		t.Errorf("slot BookedBy = %v, want juana@example.com", got.BookedBy)
	}
}

func TestBook_EmailNormalized(t *testing.T) {
	db, svc, slotA, _ := fixture(t)

	sess, err := svc.Book(context.Background(), BookRequest{
		TimeSlotID:   slotA.ID,
		PatientName:  "Juana Pérez",
		PatientDNI:   "30123456",
		PatientEmail: "  Juana@Example.COM ",
	})
	if err != nil {
		t.Fatalf("Book failed: %v", err)
	}
	if sess.PatientEmail != "juana@example.com" {
		t.Errorf("PatientEmail = %q, want lowercased trimmed form", sess.PatientEmail)
	}

	got, _ := db.GetSlot(context.Background(), slotA.ID)
	if got.BookedBy == nil || *got.BookedBy != "juana@example.com" {
		t.Errorf("slot BookedBy = %v, want normalized email", got.BookedBy)
	}
}

func TestBook_InvalidEmail(t *testing.T) {
	_, svc, slotA, _ := fixture(t)

	tests := []struct {
		name  string
		email string
	}{
		{"empty", ""},
		{"no at sign", "juana.example.com"},
		{"spaces inside", "juana perez@example.com"},
		{"display name form", "Juana <juana@example.com>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Book(context.Background(), BookRequest{
				TimeSlotID:   slotA.ID,
				PatientName:  "Juana",
				PatientDNI:   "30123456",
				PatientEmail: tt.email,
			})
			if !errors.Is(err, ErrInvalidEmail) {
				t.Errorf("Book(%q) error = %v, want ErrInvalidEmail", tt.email, err)
			}
		})
	}
}

func TestBook_SlotNotFound(t *testing.T) {
	_, svc, _, _ := fixture(t)

	_, err := svc.Book(context.Background(), BookRequest{
		TimeSlotID:   uuid.Must(uuid.NewV7()),
		PatientName:  "Juana",
		PatientDNI:   "30123456",
		PatientEmail: "juana@example.com",
	})
	if !errors.Is(err, ErrSlotNotFound) {
		t.Errorf("error = %v, want ErrSlotNotFound", err)
	}
}

func TestBook_SlotAlreadyBooked(t *testing.T) {
	db, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	book(t, svc, slotA.ID)

	_, err := svc.Book(ctx, BookRequest{
		TimeSlotID:   slotA.ID,
		PatientName:  "Pedro Gómez",
		PatientDNI:   "28999888",
		PatientEmail: "pedro@example.com",
	})
	if !errors.Is(err, ErrSlotNotAvailable) {
		t.Fatalf("error = %v, want ErrSlotNotAvailable", err)
	}

	// The losing attempt must not disturb the winner's booking.
	got, _ := db.GetSlot(ctx, slotA.ID)
	if got.BookedBy == nil || *got.BookedBy != "juana@example.com" {
		t.Errorf("slot BookedBy = %v, want the original occupant", got.BookedBy)
	}
	sessions, _ := db.FindSessionsByPatient(ctx, "28999888", "pedro@example.com")
	if len(sessions) != 0 {
		t.Errorf("loser has %d sessions, want 0", len(sessions))
	}
}

func TestBook_ConcurrentSingleWinner(t *testing.T) {
	db, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	const attempts = 32

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Book(ctx, BookRequest{
				TimeSlotID:   slotA.ID,
				PatientName:  "Paciente",
				PatientDNI:   "11111111",
				PatientEmail: "paciente@example.com",
			})
		}(i)
	}
	wg.Wait()

	wins := 0
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		case errors.Is(err, ErrSlotNotAvailable):
		default:
			t.Errorf("unexpected error: %v", err)
		}
	}
	if wins != 1 {
		t.Fatalf("got %d successful bookings for one slot, want exactly 1", wins)
	}

	sessions, _ := db.FindSessionsByPatient(ctx, "11111111", "paciente@example.com")
	if len(sessions) != 1 {
		t.Errorf("got %d sessions, want 1", len(sessions))
	}
}

func TestCancel_Success(t *testing.T) {
	db, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	if err := svc.Cancel(ctx, sess.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	got, _ := db.GetSlot(ctx, slotA.ID)
	if got.IsBooked {
		t.Error("slot should be free after cancel")
	}
	if got.BookedBy != nil {
		t.Errorf("slot BookedBy = %q, want nil", *got.BookedBy)
	}

	if _, err := svc.GetSession(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("GetSession after cancel = %v, want ErrSessionNotFound", err)
	}
}

func TestCancel_Twice(t *testing.T) {
	_, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	if err := svc.Cancel(ctx, sess.ID); err != nil {
		t.Fatalf("first Cancel failed: %v", err)
	}
	if err := svc.Cancel(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("second Cancel = %v, want ErrSessionNotFound", err)
	}
}

func TestCancel_FreedSlotIsBookableAgain(t *testing.T) {
	_, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)
	if err := svc.Cancel(ctx, sess.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}

	if _, err := svc.Book(ctx, BookRequest{
		TimeSlotID:   slotA.ID,
		PatientName:  "Pedro Gómez",
		PatientDNI:   "28999888",
		PatientEmail: "pedro@example.com",
	}); err != nil {
		t.Errorf("rebooking a freed slot failed: %v", err)
	}
}

func TestReschedule_Success(t *testing.T) {
	db, svc, slotA, slotB := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	moved, err := svc.Reschedule(ctx, sess.ID, slotB.ID)
	if err != nil {
		t.Fatalf("Reschedule failed: %v", err)
	}

	if moved.TimeSlotID != slotB.ID {
		t.Errorf("moved session slot = %s, want %s", moved.TimeSlotID, slotB.ID)
	}
	if moved.PatientDNI != sess.PatientDNI || moved.PatientEmail != sess.PatientEmail {
		t.Error("patient identity must carry over to the new session")
	}
	if moved.Modality != slotB.Modality {
		t.Errorf("moved session modality = %s, want the new slot's %s", moved.Modality, slotB.Modality)
	}

	oldSlot, _ := db.GetSlot(ctx, slotA.ID)
	if oldSlot.IsBooked {
		t.Error("old slot should be free after reschedule")
	}
	newSlot, _ := db.GetSlot(ctx, slotB.ID)
	if !newSlot.IsBooked {
		t.Error("new slot should be booked after reschedule")
	}

	if _, err := svc.GetSession(ctx, sess.ID); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("old session lookup = %v, want ErrSessionNotFound", err)
	}
}

func TestReschedule_TargetTaken(t *testing.T) {
	db, svc, slotA, slotB := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	// Another patient grabs the target slot first.
	other, err := svc.Book(ctx, BookRequest{
		TimeSlotID:   slotB.ID,
		PatientName:  "Pedro Gómez",
		PatientDNI:   "28999888",
		PatientEmail: "pedro@example.com",
	})
	if err != nil {
		t.Fatalf("competing Book failed: %v", err)
	}

	if _, err := svc.Reschedule(ctx, sess.ID, slotB.ID); !errors.Is(err, ErrSlotNotAvailable) {
		t.Fatalf("Reschedule = %v, want ErrSlotNotAvailable", err)
	}

	// The whole move rolls back: the original booking is intact.
	got, err := svc.GetSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("original session lost after failed reschedule: %v", err)
	}
	if got.TimeSlotID != slotA.ID {
		t.Errorf("original session slot = %s, want %s", got.TimeSlotID, slotA.ID)
	}
	oldSlot, _ := db.GetSlot(ctx, slotA.ID)
	if !oldSlot.IsBooked {
		t.Error("old slot must stay booked after failed reschedule")
	}

	// And the competitor keeps theirs.
	if _, err := svc.GetSession(ctx, other.ID); err != nil {
		t.Errorf("competitor's session lookup failed: %v", err)
	}
}

func TestReschedule_TargetNotFound(t *testing.T) {
	db, svc, slotA, _ := fixture(t)
	ctx := context.Background()

	sess := book(t, svc, slotA.ID)

	if _, err := svc.Reschedule(ctx, sess.ID, uuid.Must(uuid.NewV7())); !errors.Is(err, ErrSlotNotFound) {
		t.Fatalf("Reschedule = %v, want ErrSlotNotFound", err)
	}

	if _, err := svc.GetSession(ctx, sess.ID); err != nil {
		t.Errorf("original session lost after failed reschedule: %v", err)
	}
	oldSlot, _ := db.GetSlot(ctx, slotA.ID)
	if !oldSlot.IsBooked {
		t.Error("old slot must stay booked after failed reschedule")
	}
}

func TestReschedule_SessionNotFound(t *testing.T) {
	_, svc, _, slotB := fixture(t)

	_, err := svc.Reschedule(context.Background(), uuid.Must(uuid.NewV7()), slotB.ID)
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("error = %v, want ErrSessionNotFound", err)
	}
}

func TestCheckAvailability(t *testing.T) {
	_, svc, slotA, slotB := fixture(t)
	ctx := context.Background()

	book(t, svc, slotA.ID)

	tests := []struct {
		name   string
		slotID uuid.UUID
		want   bool
	}{
		{"booked slot", slotA.ID, false},
		{"free slot", slotB.ID, true},
		{"unknown slot", uuid.Must(uuid.NewV7()), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.CheckAvailability(ctx, tt.slotID)
			if err != nil {
				t.Fatalf("CheckAvailability failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("CheckAvailability = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFindByPatient(t *testing.T) {
	_, svc, slotA, slotB := fixture(t)
	ctx := context.Background()

	book(t, svc, slotA.ID) // juana@example.com / 30123456
	if _, err := svc.Book(ctx, BookRequest{
		TimeSlotID:   slotB.ID,
		PatientName:  "Juana Pérez",
		PatientDNI:   "30123456",
		PatientEmail: "juana@example.com",
	}); err != nil {
		t.Fatalf("second Book failed: %v", err)
	}

	// Email match is case-insensitive; DNI is exact.
	sessions, err := svc.FindByPatient(ctx, "30123456", "JUANA@EXAMPLE.COM")
	if err != nil {
		t.Fatalf("FindByPatient failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("got %d sessions, want 2", len(sessions))
	}

	// Newest first.
	if sessions[0].StartTime.Before(sessions[1].StartTime) {
		t.Error("sessions should be ordered by start time descending")
	}

	// Both parts of the identity pair must match.
	none, err := svc.FindByPatient(ctx, "99999999", "juana@example.com")
	if err != nil {
		t.Fatalf("FindByPatient failed: %v", err)
	}
	if len(none) != 0 {
		t.Errorf("wrong DNI returned %d sessions, want 0", len(none))
	}
}
