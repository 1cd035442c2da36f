// Package seed provisions the demo dataset: three psychologist profiles and a
// month of bookable slots each. All seeded slots start out free; occupancy is
// owned exclusively by the booking protocol.
package seed

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/repo"
	entslot "github.com/turnos-app/turnos_backend/internal/repo/timeslot"
)

const (
	// DefaultDays is the length of the seeded calendar window.
	DefaultDays = 30

	minSlotsPerDay = 4
	maxSlotsPerDay = 6

	firstHour = 9
	lastHour  = 16

	sessionMinutes = 50
)

// Profiles returns the built-in psychologist profiles. IDs are assigned at
// insert time.
func Profiles() []model.Psychologist {
	return []model.Psychologist{
		{
			Name:        "Dra. María González",
			Specialties: []string{"Ansiedad", "Depresión", "Autoestima"},
			Modalities:  []model.Modality{model.ModalityOnline, model.ModalityInPerson},
			Avatar:      "https://images.unsplash.com/photo-1559839734-2b71ea197ec2?w=400&h=400&fit=crop&crop=face",
			Rating:      4.8,
			Experience:  8,
			Bio:         "Especialista en terapia cognitivo-conductual con enfoque en ansiedad y depresión. Más de 8 años ayudando a personas a mejorar su bienestar emocional.",
		},
		{
			Name:        "Dr. Carlos Mendoza",
			Specialties: []string{"Terapia de pareja", "Estrés laboral"},
			Modalities:  []model.Modality{model.ModalityInPerson},
			Avatar:      "https://images.unsplash.com/photo-1612349317150-e413f6a5b16d?w=400&h=400&fit=crop&crop=face",
			Rating:      4.9,
			Experience:  12,
			Bio:         "Psicólogo especializado en terapia sistémica y de pareja. Ayudo a las parejas a mejorar su comunicación y resolver conflictos.",
		},
		{
			Name:        "Dra. Ana Rodríguez",
			Specialties: []string{"Trastornos alimentarios", "Autoestima", "Ansiedad"},
			Modalities:  []model.Modality{model.ModalityOnline},
			Avatar:      "https://images.unsplash.com/photo-1594824388853-2c5e2a99c1cf?w=400&h=400&fit=crop&crop=face",
			Rating:      4.7,
			Experience:  6,
			Bio:         "Especialista en trastornos de la conducta alimentaria y trabajo con la autoestima. Enfoque integral y empático.",
		},
	}
}

// GenerateSlots builds the slot calendar for one psychologist: weekdays only,
// 4 to 6 slots per day at distinct whole hours between 09:00 and 16:00, each
// 50 minutes long, modality drawn from the psychologist's set. Every generated
// slot is free.
func GenerateSlots(r *rand.Rand, psychologistID uuid.UUID, modalities []model.Modality, from time.Time, days int) []*model.TimeSlot {
	var slots []*model.TimeSlot

	day := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	for i := 0; i < days; i++ {
		date := day.AddDate(0, 0, i)

		if wd := date.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}

		perDay := minSlotsPerDay + r.IntN(maxSlotsPerDay-minSlotsPerDay+1)

		// Distinct hours so a day never carries two overlapping slots.
		hours := r.Perm(lastHour - firstHour + 1)[:perDay]
		for _, h := range hours {
			start := date.Add(time.Duration(firstHour+h) * time.Hour)
			slots = append(slots, &model.TimeSlot{
				ID:             uuid.Must(uuid.NewV7()),
				PsychologistID: psychologistID,
				StartTime:      start,
				EndTime:        start.Add(sessionMinutes * time.Minute),
				Modality:       modalities[r.IntN(len(modalities))],
				IsBooked:       false,
			})
		}
	}

	return slots
}

// Apply wipes the existing dataset and inserts the demo profiles with a fresh
// calendar starting today.
func Apply(ctx context.Context, client *repo.Client, r *rand.Rand) error {
	// Clean existing data; sessions first, they reference slots.
	if _, err := client.Session.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete sessions: %w", err)
	}
	if _, err := client.TimeSlot.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete time slots: %w", err)
	}
	if _, err := client.Psychologist.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete psychologists: %w", err)
	}

	now := time.Now()
	for _, p := range Profiles() {
		modalities := make([]string, len(p.Modalities))
		for i, m := range p.Modalities {
			modalities[i] = string(m)
		}

		created, err := client.Psychologist.Create().
			SetName(p.Name).
			SetSpecialties(p.Specialties).
			SetModalities(modalities).
			SetAvatar(p.Avatar).
			SetRating(p.Rating).
			SetExperience(p.Experience).
			SetBio(p.Bio).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create psychologist %q: %w", p.Name, err)
		}

		slots := GenerateSlots(r, created.ID, p.Modalities, now, DefaultDays)

		bulk := make([]*repo.TimeSlotCreate, len(slots))
		for i, s := range slots {
			bulk[i] = client.TimeSlot.Create().
				SetPsychologistID(created.ID).
				SetStartTime(s.StartTime).
				SetEndTime(s.EndTime).
				SetModality(entslot.Modality(s.Modality)).
				SetIsBooked(false)
		}
		if _, err := client.TimeSlot.CreateBulk(bulk...).Save(ctx); err != nil {
			return fmt.Errorf("create slots for %q: %w", p.Name, err)
		}
	}

	return nil
}
