package directory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store/memstore"
)

// addPsych inserts a psychologist with freeSlots free and bookedSlots booked
// upcoming slots, all in the given modality.
func addPsych(db *memstore.Memstore, name string, specialties []string, modalities []model.Modality, freeSlots, bookedSlots int) uuid.UUID {
	id := uuid.Must(uuid.NewV7())
	db.AddPsychologist(model.Psychologist{
		ID:          id,
		Name:        name,
		Specialties: specialties,
		Modalities:  modalities,
	})

	occupant := "paciente@example.com"
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	for i := 0; i < freeSlots+bookedSlots; i++ {
		start := base.Add(time.Duration(i) * time.Hour)
		slot := model.TimeSlot{
			ID:             uuid.Must(uuid.NewV7()),
			PsychologistID: id,
			StartTime:      start,
			EndTime:        start.Add(50 * time.Minute),
			Modality:       modalities[0],
		}
		if i >= freeSlots {
			slot.IsBooked = true
			slot.BookedBy = &occupant
		}
		db.AddSlot(slot)
	}
	return id
}

func TestListPsychologists_NoFilter(t *testing.T) {
	db := memstore.New()
	addPsych(db, "Dra. María González", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 3, 1)
	addPsych(db, "Dr. Carlos Mendoza", []string{"Terapia de pareja"}, []model.Modality{model.ModalityInPerson}, 7, 0)

	svc := New(db)
	profiles, err := svc.ListPsychologists(context.Background(), ListRequest{})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(profiles) != 2 {
		t.Fatalf("got %d profiles, want 2", len(profiles))
	}

	// Booked slots stay in the calendar; the UI renders them as taken.
	if len(profiles[0].Availability) != 4 {
		t.Errorf("first profile has %d slots, want 4 (booked ones included)", len(profiles[0].Availability))
	}
}

func TestListPsychologists_SpecialtyFilter(t *testing.T) {
	db := memstore.New()
	addPsych(db, "Dra. María González", []string{"Ansiedad", "Depresión"}, []model.Modality{model.ModalityOnline}, 2, 0)
	addPsych(db, "Dr. Carlos Mendoza", []string{"Terapia de pareja"}, []model.Modality{model.ModalityInPerson}, 2, 0)

	svc := New(db)
	profiles, err := svc.ListPsychologists(context.Background(), ListRequest{Specialty: "Depresión"})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Dra. María González" {
		t.Errorf("specialty filter returned wrong set: %+v", profiles)
	}
}

func TestListPsychologists_ModalityFilter(t *testing.T) {
	db := memstore.New()
	addPsych(db, "Dra. María González", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline, model.ModalityInPerson}, 2, 0)
	addPsych(db, "Dra. Ana Rodríguez", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 2, 0)

	svc := New(db)
	profiles, err := svc.ListPsychologists(context.Background(), ListRequest{Modality: model.ModalityInPerson})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(profiles) != 1 || profiles[0].Name != "Dra. María González" {
		t.Errorf("modality filter returned wrong set: %+v", profiles)
	}
}

func TestListPsychologists_AvailabilityBuckets(t *testing.T) {
	db := memstore.New()
	// 6 free upcoming slots: strictly above the threshold, so "high".
	addPsych(db, "Alta", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 6, 0)
	// 5 free: at the threshold, so "low".
	addPsych(db, "Al límite", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 5, 3)
	// 2 free: "low".
	addPsych(db, "Baja", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 2, 0)

	svc := New(db)
	ctx := context.Background()

	high, err := svc.ListPsychologists(ctx, ListRequest{Availability: AvailabilityHigh})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(high) != 1 || high[0].Name != "Alta" {
		t.Errorf("high bucket = %+v, want only Alta", names(high))
	}

	low, err := svc.ListPsychologists(ctx, ListRequest{Availability: AvailabilityLow})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(low) != 2 {
		t.Errorf("low bucket = %v, want Al límite and Baja", names(low))
	}
}

func TestListPsychologists_ModalityRestrictsAvailabilityCount(t *testing.T) {
	db := memstore.New()
	id := uuid.Must(uuid.NewV7())
	db.AddPsychologist(model.Psychologist{
		ID:         id,
		Name:       "Mixta",
		Modalities: []model.Modality{model.ModalityOnline, model.ModalityInPerson},
	})

	// 6 free online slots and 6 free in-person slots. Filtered to in-person,
	// only those count toward the bucket.
	base := time.Now().Add(24 * time.Hour).Truncate(time.Hour)
	for i := 0; i < 12; i++ {
		m := model.ModalityOnline
		if i >= 6 {
			m = model.ModalityInPerson
		}
		start := base.Add(time.Duration(i) * time.Hour)
		db.AddSlot(model.TimeSlot{
			ID:             uuid.Must(uuid.NewV7()),
			PsychologistID: id,
			StartTime:      start,
			EndTime:        start.Add(50 * time.Minute),
			Modality:       m,
		})
	}

	svc := New(db)
	high, err := svc.ListPsychologists(context.Background(), ListRequest{
		Modality:     model.ModalityInPerson,
		Availability: AvailabilityHigh,
	})
	if err != nil {
		t.Fatalf("ListPsychologists failed: %v", err)
	}
	if len(high) != 1 {
		t.Errorf("got %d profiles, want 1 (6 in-person free slots is high)", len(high))
	}
}

func TestGetPsychologist(t *testing.T) {
	db := memstore.New()
	id := addPsych(db, "Dra. María González", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 2, 1)

	svc := New(db)
	profile, err := svc.GetPsychologist(context.Background(), id)
	if err != nil {
		t.Fatalf("GetPsychologist failed: %v", err)
	}
	if profile.Name != "Dra. María González" {
		t.Errorf("name = %q", profile.Name)
	}
	if len(profile.Availability) != 3 {
		t.Errorf("got %d slots, want 3", len(profile.Availability))
	}

	if _, err := svc.GetPsychologist(context.Background(), uuid.Must(uuid.NewV7())); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id error = %v, want ErrNotFound", err)
	}
}

func TestListSlots(t *testing.T) {
	db := memstore.New()
	id := addPsych(db, "Dra. María González", []string{"Ansiedad"}, []model.Modality{model.ModalityOnline}, 4, 0)

	svc := New(db)
	ctx := context.Background()

	all, err := svc.ListSlots(ctx, id, time.Now())
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d slots, want 4", len(all))
	}

	// The from bound excludes earlier slots.
	later, err := svc.ListSlots(ctx, id, all[1].StartTime)
	if err != nil {
		t.Fatalf("ListSlots failed: %v", err)
	}
	if len(later) != 3 {
		t.Errorf("got %d slots from the second onward, want 3", len(later))
	}

	if _, err := svc.ListSlots(ctx, uuid.Must(uuid.NewV7()), time.Now()); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown psychologist error = %v, want ErrNotFound", err)
	}
}

func names(profiles []*Profile) []string {
	out := make([]string, len(profiles))
	for i, p := range profiles {
		out[i] = p.Name
	}
	return out
}
