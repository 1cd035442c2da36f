package memstore

import (
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store"
)

// state is the unguarded data; Memstore/txView add locking around it.
// Accessors hand out copies so callers cannot mutate stored rows.
type state struct {
	psychologists []*model.Psychologist
	slots         map[uuid.UUID]*model.TimeSlot
	sessions      map[uuid.UUID]*model.Session
}

func newState() *state {
	return &state{
		slots:    make(map[uuid.UUID]*model.TimeSlot),
		sessions: make(map[uuid.UUID]*model.Session),
	}
}

func (s *state) clone() *state {
	c := newState()
	c.psychologists = make([]*model.Psychologist, len(s.psychologists))
	for i, p := range s.psychologists {
		c.psychologists[i] = copyPsychologist(p)
	}
	for id, slot := range s.slots {
		c.slots[id] = copySlot(slot)
	}
	for id, sess := range s.sessions {
		c.sessions[id] = copySession(sess)
	}
	return c
}

func (s *state) addPsychologist(p model.Psychologist) {
	s.psychologists = append(s.psychologists, copyPsychologist(&p))
}

func (s *state) addSlot(slot model.TimeSlot) {
	s.slots[slot.ID] = copySlot(&slot)
}

func (s *state) getSlot(id uuid.UUID) (*model.TimeSlot, error) {
	slot, ok := s.slots[id]
	if !ok {
		return nil, store.ErrSlotNotFound
	}
	return copySlot(slot), nil
}

func (s *state) markBooked(id uuid.UUID, occupant string) error {
	slot, ok := s.slots[id]
	if !ok {
		return store.ErrSlotNotFound
	}
	if slot.IsBooked {
		return store.ErrSlotTaken
	}
	slot.IsBooked = true
	slot.BookedBy = &occupant
	return nil
}

func (s *state) markFree(id uuid.UUID) error {
	slot, ok := s.slots[id]
	if !ok {
		return store.ErrSlotNotFound
	}
	slot.IsBooked = false
	slot.BookedBy = nil
	return nil
}

func (s *state) listUpcomingSlots(psychologistID uuid.UUID, from time.Time) []*model.TimeSlot {
	var out []*model.TimeSlot
	for _, slot := range s.slots {
		if slot.PsychologistID == psychologistID && !slot.StartTime.Before(from) {
			out = append(out, copySlot(slot))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.Before(out[j].StartTime)
	})
	return out
}

func (s *state) createSession(draft model.SessionDraft) *model.Session {
	sess := &model.Session{
		ID:             uuid.Must(uuid.NewV7()),
		PsychologistID: draft.PsychologistID,
		TimeSlotID:     draft.TimeSlotID,
		PatientName:    draft.PatientName,
		PatientDNI:     draft.PatientDNI,
		PatientEmail:   draft.PatientEmail,
		StartTime:      draft.StartTime,
		EndTime:        draft.EndTime,
		Specialty:      draft.Specialty,
		Modality:       draft.Modality,
		Status:         model.SessionScheduled,
		CreatedAt:      time.Now(),
	}
	s.sessions[sess.ID] = sess
	return copySession(sess)
}

func (s *state) getSession(id uuid.UUID) (*model.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, store.ErrSessionNotFound
	}
	return copySession(sess), nil
}

func (s *state) deleteSession(id uuid.UUID) error {
	if _, ok := s.sessions[id]; !ok {
		return store.ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

func (s *state) findSessionsByPatient(dni, email string) []*model.Session {
	var out []*model.Session
	for _, sess := range s.sessions {
		if sess.PatientDNI == dni && strings.EqualFold(sess.PatientEmail, email) {
			out = append(out, copySession(sess))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StartTime.After(out[j].StartTime)
	})
	return out
}

func (s *state) listPsychologists() []*model.Psychologist {
	out := make([]*model.Psychologist, len(s.psychologists))
	for i, p := range s.psychologists {
		out[i] = copyPsychologist(p)
	}
	return out
}

func (s *state) getPsychologist(id uuid.UUID) (*model.Psychologist, error) {
	for _, p := range s.psychologists {
		if p.ID == id {
			return copyPsychologist(p), nil
		}
	}
	return nil, store.ErrPsychologistNotFound
}

func copyPsychologist(p *model.Psychologist) *model.Psychologist {
	c := *p
	c.Specialties = append([]string(nil), p.Specialties...)
	c.Modalities = append([]model.Modality(nil), p.Modalities...)
	return &c
}

func copySlot(slot *model.TimeSlot) *model.TimeSlot {
	c := *slot
	if slot.BookedBy != nil {
		occupant := *slot.BookedBy
		c.BookedBy = &occupant
	}
	return &c
}

func copySession(sess *model.Session) *model.Session {
	c := *sess
	return &c
}
