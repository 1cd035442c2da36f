package seed

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestProfiles(t *testing.T) {
	profiles := Profiles()
	if len(profiles) != 3 {
		t.Fatalf("got %d profiles, want 3", len(profiles))
	}
	for _, p := range profiles {
		if p.Name == "" || len(p.Specialties) == 0 || len(p.Modalities) == 0 {
			t.Errorf("profile %q is missing fields", p.Name)
		}
		for _, m := range p.Modalities {
			if !m.Valid() {
				t.Errorf("profile %q has invalid modality %q", p.Name, m)
			}
		}
	}
}

func TestGenerateSlots(t *testing.T) {
	r := testRand()
	psychID := uuid.Must(uuid.NewV7())
	modalities := []model.Modality{model.ModalityOnline, model.ModalityInPerson}
	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	slots := GenerateSlots(r, psychID, modalities, from, DefaultDays)
	if len(slots) == 0 {
		t.Fatal("no slots generated")
	}

	perDay := map[string]int{}
	startsPerDay := map[string]map[time.Time]bool{}

	for _, s := range slots {
		if s.PsychologistID != psychID {
			t.Fatalf("slot has psychologist %s, want %s", s.PsychologistID, psychID)
		}
		if wd := s.StartTime.Weekday(); wd == time.Saturday || wd == time.Sunday {
			t.Errorf("slot on a weekend: %v", s.StartTime)
		}
		if h := s.StartTime.Hour(); h < 9 || h > 16 {
			t.Errorf("slot starts at hour %d, want 9..16", h)
		}
		if d := s.EndTime.Sub(s.StartTime); d != 50*time.Minute {
			t.Errorf("slot duration = %v, want 50m", d)
		}
		if s.IsBooked || s.BookedBy != nil {
			t.Error("seeded slots must all be free")
		}

		valid := false
		for _, m := range modalities {
			if s.Modality == m {
				valid = true
			}
		}
		if !valid {
			t.Errorf("slot modality %q not in the psychologist's set", s.Modality)
		}

		day := s.StartTime.Format("2006-01-02")
		perDay[day]++
		if startsPerDay[day] == nil {
			startsPerDay[day] = map[time.Time]bool{}
		}
		if startsPerDay[day][s.StartTime] {
			t.Errorf("duplicate start time %v", s.StartTime)
		}
		startsPerDay[day][s.StartTime] = true
	}

	for day, n := range perDay {
		if n < 4 || n > 6 {
			t.Errorf("day %s has %d slots, want 4..6", day, n)
		}
	}

	// 30 days starting Tue Sep 1 2026 span 22 weekdays.
	if len(perDay) != 22 {
		t.Errorf("slots span %d days, want 22 weekdays", len(perDay))
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	psychID := uuid.Must(uuid.NewV7())
	modalities := []model.Modality{model.ModalityOnline}
	from := time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC)

	a := GenerateSlots(testRand(), psychID, modalities, from, 7)
	b := GenerateSlots(testRand(), psychID, modalities, from, 7)

	if len(a) != len(b) {
		t.Fatalf("runs differ in length: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if !a[i].StartTime.Equal(b[i].StartTime) || a[i].Modality != b[i].Modality {
			t.Fatalf("runs diverge at slot %d", i)
		}
	}
}
