// Package memstore is an in-memory implementation of store.Store. It backs
// the unit tests and the demo mode: one authoritative copy of the data, every
// mutation behind a single mutex, transactions via snapshot and restore.
//
// It intentionally replaces the process-wide mutable arrays of the mock-data
// era: callers only ever see copies, so no second layer can mutate slot
// occupancy behind the store's back.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/turnos-app/turnos_backend/internal/model"
	"github.com/turnos-app/turnos_backend/internal/store"
)

// Memstore implements store.Store. The zero value is not usable; call New.
type Memstore struct {
	mu sync.Mutex
	st *state
}

func New() *Memstore {
	return &Memstore{st: newState()}
}

// AddPsychologist inserts a profile. Intended for seeding and tests.
func (m *Memstore) AddPsychologist(p model.Psychologist) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.addPsychologist(p)
}

// AddSlot inserts a slot. Intended for seeding and tests.
func (m *Memstore) AddSlot(s model.TimeSlot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.st.addSlot(s)
}

func (m *Memstore) GetSlot(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.getSlot(id)
}

func (m *Memstore) MarkBooked(ctx context.Context, id uuid.UUID, occupant string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.markBooked(id, occupant)
}

func (m *Memstore) MarkFree(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.markFree(id)
}

func (m *Memstore) ListUpcomingSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.listUpcomingSlots(psychologistID, from), nil
}

func (m *Memstore) CreateSession(ctx context.Context, draft model.SessionDraft) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.createSession(draft), nil
}

func (m *Memstore) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.getSession(id)
}

func (m *Memstore) DeleteSession(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.deleteSession(id)
}

func (m *Memstore) FindSessionsByPatient(ctx context.Context, dni, email string) ([]*model.Session, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.findSessionsByPatient(dni, email), nil
}

func (m *Memstore) ListPsychologists(ctx context.Context) ([]*model.Psychologist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.listPsychologists(), nil
}

func (m *Memstore) GetPsychologist(ctx context.Context, id uuid.UUID) (*model.Psychologist, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.st.getPsychologist(id)
}

// InTx holds the store lock for the whole transaction, so concurrent
// transactions serialize. On error the pre-transaction snapshot is restored,
// giving all-or-nothing semantics.
func (m *Memstore) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	snap := m.st.clone()
	if err := fn(&txView{st: m.st}); err != nil {
		m.st = snap
		return err
	}
	return nil
}

// txView is the in-transaction view: same state, no locking (the Memstore
// mutex is already held by InTx).
type txView struct {
	st *state
}

func (t *txView) GetSlot(ctx context.Context, id uuid.UUID) (*model.TimeSlot, error) {
	return t.st.getSlot(id)
}

func (t *txView) MarkBooked(ctx context.Context, id uuid.UUID, occupant string) error {
	return t.st.markBooked(id, occupant)
}

func (t *txView) MarkFree(ctx context.Context, id uuid.UUID) error {
	return t.st.markFree(id)
}

func (t *txView) ListUpcomingSlots(ctx context.Context, psychologistID uuid.UUID, from time.Time) ([]*model.TimeSlot, error) {
	return t.st.listUpcomingSlots(psychologistID, from), nil
}

func (t *txView) CreateSession(ctx context.Context, draft model.SessionDraft) (*model.Session, error) {
	return t.st.createSession(draft), nil
}

func (t *txView) GetSession(ctx context.Context, id uuid.UUID) (*model.Session, error) {
	return t.st.getSession(id)
}

func (t *txView) DeleteSession(ctx context.Context, id uuid.UUID) error {
	return t.st.deleteSession(id)
}

func (t *txView) FindSessionsByPatient(ctx context.Context, dni, email string) ([]*model.Session, error) {
	return t.st.findSessionsByPatient(dni, email), nil
}

func (t *txView) ListPsychologists(ctx context.Context) ([]*model.Psychologist, error) {
	return t.st.listPsychologists(), nil
}

func (t *txView) GetPsychologist(ctx context.Context, id uuid.UUID) (*model.Psychologist, error) {
	return t.st.getPsychologist(id)
}

// InTx on an open transaction joins it.
func (t *txView) InTx(ctx context.Context, fn func(tx store.Store) error) error {
	return fn(t)
}
