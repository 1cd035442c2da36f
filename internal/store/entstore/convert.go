package entstore

import (
	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/repo"
)

func toSlot(e *repo.TimeSlot) *model.TimeSlot {
	return &model.TimeSlot{
		ID:             e.ID,
		PsychologistID: e.PsychologistID,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Modality:       model.Modality(e.Modality),
		IsBooked:       e.IsBooked,
		BookedBy:       e.BookedBy,
	}
}

func toSession(e *repo.Session) *model.Session {
	return &model.Session{
		ID:             e.ID,
		PsychologistID: e.PsychologistID,
		TimeSlotID:     e.TimeSlotID,
		PatientName:    e.PatientName,
		PatientDNI:     e.PatientDni,
		PatientEmail:   e.PatientEmail,
		StartTime:      e.StartTime,
		EndTime:        e.EndTime,
		Specialty:      e.Specialty,
		Modality:       model.Modality(e.Modality),
		Status:         model.SessionStatus(e.Status),
		CreatedAt:      e.CreatedAt,
	}
}

func toPsychologist(e *repo.Psychologist) *model.Psychologist {
	modalities := make([]model.Modality, len(e.Modalities))
	for i, m := range e.Modalities {
		modalities[i] = model.Modality(m)
	}
	return &model.Psychologist{
		ID:          e.ID,
		Name:        e.Name,
		Specialties: e.Specialties,
		Modalities:  modalities,
		Avatar:      e.Avatar,
		Rating:      e.Rating,
		Experience:  e.Experience,
		Bio:         e.Bio,
	}
}
