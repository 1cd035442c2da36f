// Package model holds the domain types shared by the store layer and the
// services. Both store backends (Postgres via ent, in-memory) map to these.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Modality is the delivery channel of a session.
type Modality string

const (
	ModalityOnline   Modality = "online"
	ModalityInPerson Modality = "in_person"
)

// Valid reports whether m is one of the known modalities.
func (m Modality) Valid() bool {
	return m == ModalityOnline || m == ModalityInPerson
}

// SessionStatus is the lifecycle state of a booked session.
// A cancellation deletes the session row, so "cancelled" never appears in
// storage; it exists for presentation-side modeling. Nothing transitions a
// session to "completed" yet.
type SessionStatus string

const (
	SessionScheduled SessionStatus = "scheduled"
	SessionCompleted SessionStatus = "completed"
	SessionCancelled SessionStatus = "cancelled"
)

// Psychologist is a read-mostly provider profile. It is created by the seeder
// and never mutated by the booking protocol.
type Psychologist struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Specialties []string   `json:"specialties"`
	Modalities  []Modality `json:"modalities"`
	Avatar      string     `json:"avatar"`
	Rating      float64    `json:"rating"`
	Experience  int        `json:"experience"`
	Bio         string     `json:"bio"`
}

// Offers reports whether the psychologist works in the given modality.
func (p *Psychologist) Offers(m Modality) bool {
	for _, offered := range p.Modalities {
		if offered == m {
			return true
		}
	}
	return false
}

// HasSpecialty reports whether the specialty is in the psychologist's set.
func (p *Psychologist) HasSpecialty(specialty string) bool {
	for _, s := range p.Specialties {
		if s == specialty {
			return true
		}
	}
	return false
}

// TimeSlot is a bookable interval offered by a psychologist.
// Invariant: IsBooked == false implies BookedBy == nil.
type TimeSlot struct {
	ID             uuid.UUID `json:"id"`
	PsychologistID uuid.UUID `json:"psychologist_id"`
	StartTime      time.Time `json:"start_time"`
	EndTime        time.Time `json:"end_time"`
	Modality       Modality  `json:"modality"`
	IsBooked       bool      `json:"is_booked"`
	BookedBy       *string   `json:"booked_by,omitempty"`
}

// Session is a confirmed booking of a slot by a patient. The slot interval and
// modality are copied in at booking time, so the record stands on its own even
// if slot rows age out of query windows.
type Session struct {
	ID             uuid.UUID     `json:"id"`
	PsychologistID uuid.UUID     `json:"psychologist_id"`
	TimeSlotID     uuid.UUID     `json:"time_slot_id"`
	PatientName    string        `json:"patient_name"`
	PatientDNI     string        `json:"patient_dni"`
	PatientEmail   string        `json:"patient_email"`
	StartTime      time.Time     `json:"start_time"`
	EndTime        time.Time     `json:"end_time"`
	Specialty      string        `json:"specialty"`
	Modality       Modality      `json:"modality"`
	Status         SessionStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// SessionDraft is the input for creating a session row. The store assigns the
// id and created_at.
type SessionDraft struct {
	PsychologistID uuid.UUID
	TimeSlotID     uuid.UUID
	PatientName    string
	PatientDNI     string
	PatientEmail   string
	StartTime      time.Time
	EndTime        time.Time
	Specialty      string
	Modality       Modality
}
