// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
	"github.com/turnos-app/turnos_backend/internal/repo/timeslot"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypePsychologist = "Psychologist"
	TypeSession      = "Session"
	TypeTimeSlot     = "TimeSlot"
)

// PsychologistMutation represents an operation that mutates the Psychologist nodes in the graph.
type PsychologistMutation struct {
	config
	op                Op
	typ               string
	id                *uuid.UUID
	created_at        *time.Time
	updated_at        *time.Time
	name              *string
	specialties       *[]string
	appendspecialties []string
	modalities        *[]string
	appendmodalities  []string
	avatar            *string
	rating            *float64
	addrating         *float64
	experience        *int
	addexperience     *int
	bio               *string
	clearedFields     map[string]struct{}
	done              bool
	oldValue          func(context.Context) (*Psychologist, error)
	predicates        []predicate.Psychologist
}

var _ ent.Mutation = (*PsychologistMutation)(nil)

// psychologistOption allows management of the mutation configuration using functional options.
type psychologistOption func(*PsychologistMutation)

// newPsychologistMutation creates new mutation for the Psychologist entity.
func newPsychologistMutation(c config, op Op, opts ...psychologistOption) *PsychologistMutation {
	m := &PsychologistMutation{
		config:        c,
		op:            op,
		typ:           TypePsychologist,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPsychologistID sets the ID field of the mutation.
func withPsychologistID(id uuid.UUID) psychologistOption {
	return func(m *PsychologistMutation) {
		var (
			err   error
			once  sync.Once
			value *Psychologist
		)
		m.oldValue = func(ctx context.Context) (*Psychologist, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Psychologist.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPsychologist sets the old Psychologist of the mutation.
func withPsychologist(node *Psychologist) psychologistOption {
	return func(m *PsychologistMutation) {
		m.oldValue = func(context.Context) (*Psychologist, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PsychologistMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PsychologistMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Psychologist entities.
func (m *PsychologistMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PsychologistMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PsychologistMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Psychologist.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *PsychologistMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PsychologistMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PsychologistMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PsychologistMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PsychologistMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PsychologistMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetName sets the "name" field.
func (m *PsychologistMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *PsychologistMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *PsychologistMutation) ResetName() {
	m.name = nil
}

// SetSpecialties sets the "specialties" field.
func (m *PsychologistMutation) SetSpecialties(s []string) {
	m.specialties = &s
	m.appendspecialties = nil
}

// Specialties returns the value of the "specialties" field in the mutation.
func (m *PsychologistMutation) Specialties() (r []string, exists bool) {
	v := m.specialties
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialties returns the old "specialties" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldSpecialties(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialties: %w", err)
	}
	return oldValue.Specialties, nil
}

// AppendSpecialties adds s to the "specialties" field.
func (m *PsychologistMutation) AppendSpecialties(s []string) {
	m.appendspecialties = append(m.appendspecialties, s...)
}

// AppendedSpecialties returns the list of values that were appended to the "specialties" field in this mutation.
func (m *PsychologistMutation) AppendedSpecialties() ([]string, bool) {
	if len(m.appendspecialties) == 0 {
		return nil, false
	}
	return m.appendspecialties, true
}

// ResetSpecialties resets all changes to the "specialties" field.
func (m *PsychologistMutation) ResetSpecialties() {
	m.specialties = nil
	m.appendspecialties = nil
}

// SetModalities sets the "modalities" field.
func (m *PsychologistMutation) SetModalities(s []string) {
	m.modalities = &s
	m.appendmodalities = nil
}

// Modalities returns the value of the "modalities" field in the mutation.
func (m *PsychologistMutation) Modalities() (r []string, exists bool) {
	v := m.modalities
	if v == nil {
		return
	}
	return *v, true
}

// OldModalities returns the old "modalities" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldModalities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModalities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModalities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModalities: %w", err)
	}
	return oldValue.Modalities, nil
}

// AppendModalities adds s to the "modalities" field.
func (m *PsychologistMutation) AppendModalities(s []string) {
	m.appendmodalities = append(m.appendmodalities, s...)
}

// AppendedModalities returns the list of values that were appended to the "modalities" field in this mutation.
func (m *PsychologistMutation) AppendedModalities() ([]string, bool) {
	if len(m.appendmodalities) == 0 {
		return nil, false
	}
	return m.appendmodalities, true
}

// ResetModalities resets all changes to the "modalities" field.
func (m *PsychologistMutation) ResetModalities() {
	m.modalities = nil
	m.appendmodalities = nil
}

// SetAvatar sets the "avatar" field.
func (m *PsychologistMutation) SetAvatar(s string) {
	m.avatar = &s
}

// Avatar returns the value of the "avatar" field in the mutation.
func (m *PsychologistMutation) Avatar() (r string, exists bool) {
	v := m.avatar
	if v == nil {
		return
	}
	return *v, true
}

// OldAvatar returns the old "avatar" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldAvatar(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvatar is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvatar requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvatar: %w", err)
	}
	return oldValue.Avatar, nil
}

// ResetAvatar resets all changes to the "avatar" field.
func (m *PsychologistMutation) ResetAvatar() {
	m.avatar = nil
}

// SetRating sets the "rating" field.
func (m *PsychologistMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *PsychologistMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *PsychologistMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *PsychologistMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *PsychologistMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetExperience sets the "experience" field.
func (m *PsychologistMutation) SetExperience(i int) {
	m.experience = &i
	m.addexperience = nil
}

// Experience returns the value of the "experience" field in the mutation.
func (m *PsychologistMutation) Experience() (r int, exists bool) {
	v := m.experience
	if v == nil {
		return
	}
	return *v, true
}

// OldExperience returns the old "experience" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldExperience(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExperience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExperience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExperience: %w", err)
	}
	return oldValue.Experience, nil
}

// AddExperience adds i to the "experience" field.
func (m *PsychologistMutation) AddExperience(i int) {
	if m.addexperience != nil {
		*m.addexperience += i
	} else {
		m.addexperience = &i
	}
}

// AddedExperience returns the value that was added to the "experience" field in this mutation.
func (m *PsychologistMutation) AddedExperience() (r int, exists bool) {
	v := m.addexperience
	if v == nil {
		return
	}
	return *v, true
}

// ResetExperience resets all changes to the "experience" field.
func (m *PsychologistMutation) ResetExperience() {
	m.experience = nil
	m.addexperience = nil
}

// SetBio sets the "bio" field.
func (m *PsychologistMutation) SetBio(s string) {
	m.bio = &s
}

// Bio returns the value of the "bio" field in the mutation.
func (m *PsychologistMutation) Bio() (r string, exists bool) {
	v := m.bio
	if v == nil {
		return
	}
	return *v, true
}

// OldBio returns the old "bio" field's value of the Psychologist entity.
// If the Psychologist object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PsychologistMutation) OldBio(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBio: %w", err)
	}
	return oldValue.Bio, nil
}

// ResetBio resets all changes to the "bio" field.
func (m *PsychologistMutation) ResetBio() {
	m.bio = nil
}

// Where appends a list predicates to the PsychologistMutation builder.
func (m *PsychologistMutation) Where(ps ...predicate.Psychologist) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PsychologistMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PsychologistMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Psychologist, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PsychologistMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PsychologistMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Psychologist).
func (m *PsychologistMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PsychologistMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, psychologist.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, psychologist.FieldUpdatedAt)
	}
	if m.name != nil {
		fields = append(fields, psychologist.FieldName)
	}
	if m.specialties != nil {
		fields = append(fields, psychologist.FieldSpecialties)
	}
	if m.modalities != nil {
		fields = append(fields, psychologist.FieldModalities)
	}
	if m.avatar != nil {
		fields = append(fields, psychologist.FieldAvatar)
	}
	if m.rating != nil {
		fields = append(fields, psychologist.FieldRating)
	}
	if m.experience != nil {
		fields = append(fields, psychologist.FieldExperience)
	}
	if m.bio != nil {
		fields = append(fields, psychologist.FieldBio)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PsychologistMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case psychologist.FieldCreatedAt:
		return m.CreatedAt()
	case psychologist.FieldUpdatedAt:
		return m.UpdatedAt()
	case psychologist.FieldName:
		return m.Name()
	case psychologist.FieldSpecialties:
		return m.Specialties()
	case psychologist.FieldModalities:
		return m.Modalities()
	case psychologist.FieldAvatar:
		return m.Avatar()
	case psychologist.FieldRating:
		return m.Rating()
	case psychologist.FieldExperience:
		return m.Experience()
	case psychologist.FieldBio:
		return m.Bio()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PsychologistMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case psychologist.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case psychologist.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case psychologist.FieldName:
		return m.OldName(ctx)
	case psychologist.FieldSpecialties:
		return m.OldSpecialties(ctx)
	case psychologist.FieldModalities:
		return m.OldModalities(ctx)
	case psychologist.FieldAvatar:
		return m.OldAvatar(ctx)
	case psychologist.FieldRating:
		return m.OldRating(ctx)
	case psychologist.FieldExperience:
		return m.OldExperience(ctx)
	case psychologist.FieldBio:
		return m.OldBio(ctx)
	}
	return nil, fmt.Errorf("unknown Psychologist field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistMutation) SetField(name string, value ent.Value) error {
	switch name {
	case psychologist.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case psychologist.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case psychologist.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case psychologist.FieldSpecialties:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialties(v)
		return nil
	case psychologist.FieldModalities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModalities(v)
		return nil
	case psychologist.FieldAvatar:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvatar(v)
		return nil
	case psychologist.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case psychologist.FieldExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExperience(v)
		return nil
	case psychologist.FieldBio:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBio(v)
		return nil
	}
	return fmt.Errorf("unknown Psychologist field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PsychologistMutation) AddedFields() []string {
	var fields []string
	if m.addrating != nil {
		fields = append(fields, psychologist.FieldRating)
	}
	if m.addexperience != nil {
		fields = append(fields, psychologist.FieldExperience)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PsychologistMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case psychologist.FieldRating:
		return m.AddedRating()
	case psychologist.FieldExperience:
		return m.AddedExperience()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PsychologistMutation) AddField(name string, value ent.Value) error {
	switch name {
	case psychologist.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	case psychologist.FieldExperience:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExperience(v)
		return nil
	}
	return fmt.Errorf("unknown Psychologist numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PsychologistMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PsychologistMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PsychologistMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Psychologist nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PsychologistMutation) ResetField(name string) error {
	switch name {
	case psychologist.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case psychologist.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case psychologist.FieldName:
		m.ResetName()
		return nil
	case psychologist.FieldSpecialties:
		m.ResetSpecialties()
		return nil
	case psychologist.FieldModalities:
		m.ResetModalities()
		return nil
	case psychologist.FieldAvatar:
		m.ResetAvatar()
		return nil
	case psychologist.FieldRating:
		m.ResetRating()
		return nil
	case psychologist.FieldExperience:
		m.ResetExperience()
		return nil
	case psychologist.FieldBio:
		m.ResetBio()
		return nil
	}
	return fmt.Errorf("unknown Psychologist field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PsychologistMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PsychologistMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PsychologistMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PsychologistMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PsychologistMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PsychologistMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PsychologistMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Psychologist unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PsychologistMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Psychologist edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	psychologist_id *uuid.UUID
	time_slot_id    *uuid.UUID
	patient_name    *string
	patient_dni     *string
	patient_email   *string
	start_time      *time.Time
	end_time        *time.Time
	specialty       *string
	modality        *session.Modality
	status          *session.Status
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*Session, error)
	predicates      []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id uuid.UUID) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *SessionMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist_id = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *SessionMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *SessionMutation) ResetPsychologistID() {
	m.psychologist_id = nil
}

// SetTimeSlotID sets the "time_slot_id" field.
func (m *SessionMutation) SetTimeSlotID(u uuid.UUID) {
	m.time_slot_id = &u
}

// TimeSlotID returns the value of the "time_slot_id" field in the mutation.
func (m *SessionMutation) TimeSlotID() (r uuid.UUID, exists bool) {
	v := m.time_slot_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeSlotID returns the old "time_slot_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTimeSlotID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeSlotID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeSlotID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeSlotID: %w", err)
	}
	return oldValue.TimeSlotID, nil
}

// ResetTimeSlotID resets all changes to the "time_slot_id" field.
func (m *SessionMutation) ResetTimeSlotID() {
	m.time_slot_id = nil
}

// SetPatientName sets the "patient_name" field.
func (m *SessionMutation) SetPatientName(s string) {
	m.patient_name = &s
}

// PatientName returns the value of the "patient_name" field in the mutation.
func (m *SessionMutation) PatientName() (r string, exists bool) {
	v := m.patient_name
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientName returns the old "patient_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPatientName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientName: %w", err)
	}
	return oldValue.PatientName, nil
}

// ResetPatientName resets all changes to the "patient_name" field.
func (m *SessionMutation) ResetPatientName() {
	m.patient_name = nil
}

// SetPatientDni sets the "patient_dni" field.
func (m *SessionMutation) SetPatientDni(s string) {
	m.patient_dni = &s
}

// PatientDni returns the value of the "patient_dni" field in the mutation.
func (m *SessionMutation) PatientDni() (r string, exists bool) {
	v := m.patient_dni
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientDni returns the old "patient_dni" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPatientDni(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientDni is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientDni requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientDni: %w", err)
	}
	return oldValue.PatientDni, nil
}

// ResetPatientDni resets all changes to the "patient_dni" field.
func (m *SessionMutation) ResetPatientDni() {
	m.patient_dni = nil
}

// SetPatientEmail sets the "patient_email" field.
func (m *SessionMutation) SetPatientEmail(s string) {
	m.patient_email = &s
}

// PatientEmail returns the value of the "patient_email" field in the mutation.
func (m *SessionMutation) PatientEmail() (r string, exists bool) {
	v := m.patient_email
	if v == nil {
		return
	}
	return *v, true
}

// OldPatientEmail returns the old "patient_email" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPatientEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPatientEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPatientEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPatientEmail: %w", err)
	}
	return oldValue.PatientEmail, nil
}

// ResetPatientEmail resets all changes to the "patient_email" field.
func (m *SessionMutation) ResetPatientEmail() {
	m.patient_email = nil
}

// SetStartTime sets the "start_time" field.
func (m *SessionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *SessionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *SessionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *SessionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *SessionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *SessionMutation) ResetEndTime() {
	m.end_time = nil
}

// SetSpecialty sets the "specialty" field.
func (m *SessionMutation) SetSpecialty(s string) {
	m.specialty = &s
}

// Specialty returns the value of the "specialty" field in the mutation.
func (m *SessionMutation) Specialty() (r string, exists bool) {
	v := m.specialty
	if v == nil {
		return
	}
	return *v, true
}

// OldSpecialty returns the old "specialty" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSpecialty(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSpecialty is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSpecialty requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSpecialty: %w", err)
	}
	return oldValue.Specialty, nil
}

// ResetSpecialty resets all changes to the "specialty" field.
func (m *SessionMutation) ResetSpecialty() {
	m.specialty = nil
}

// SetModality sets the "modality" field.
func (m *SessionMutation) SetModality(s session.Modality) {
	m.modality = &s
}

// Modality returns the value of the "modality" field in the mutation.
func (m *SessionMutation) Modality() (r session.Modality, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldModality(ctx context.Context) (v session.Modality, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ResetModality resets all changes to the "modality" field.
func (m *SessionMutation) ResetModality() {
	m.modality = nil
}

// SetStatus sets the "status" field.
func (m *SessionMutation) SetStatus(s session.Status) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *SessionMutation) Status() (r session.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldStatus(ctx context.Context) (v session.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *SessionMutation) ResetStatus() {
	m.status = nil
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.psychologist_id != nil {
		fields = append(fields, session.FieldPsychologistID)
	}
	if m.time_slot_id != nil {
		fields = append(fields, session.FieldTimeSlotID)
	}
	if m.patient_name != nil {
		fields = append(fields, session.FieldPatientName)
	}
	if m.patient_dni != nil {
		fields = append(fields, session.FieldPatientDni)
	}
	if m.patient_email != nil {
		fields = append(fields, session.FieldPatientEmail)
	}
	if m.start_time != nil {
		fields = append(fields, session.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, session.FieldEndTime)
	}
	if m.specialty != nil {
		fields = append(fields, session.FieldSpecialty)
	}
	if m.modality != nil {
		fields = append(fields, session.FieldModality)
	}
	if m.status != nil {
		fields = append(fields, session.FieldStatus)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldPsychologistID:
		return m.PsychologistID()
	case session.FieldTimeSlotID:
		return m.TimeSlotID()
	case session.FieldPatientName:
		return m.PatientName()
	case session.FieldPatientDni:
		return m.PatientDni()
	case session.FieldPatientEmail:
		return m.PatientEmail()
	case session.FieldStartTime:
		return m.StartTime()
	case session.FieldEndTime:
		return m.EndTime()
	case session.FieldSpecialty:
		return m.Specialty()
	case session.FieldModality:
		return m.Modality()
	case session.FieldStatus:
		return m.Status()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case session.FieldTimeSlotID:
		return m.OldTimeSlotID(ctx)
	case session.FieldPatientName:
		return m.OldPatientName(ctx)
	case session.FieldPatientDni:
		return m.OldPatientDni(ctx)
	case session.FieldPatientEmail:
		return m.OldPatientEmail(ctx)
	case session.FieldStartTime:
		return m.OldStartTime(ctx)
	case session.FieldEndTime:
		return m.OldEndTime(ctx)
	case session.FieldSpecialty:
		return m.OldSpecialty(ctx)
	case session.FieldModality:
		return m.OldModality(ctx)
	case session.FieldStatus:
		return m.OldStatus(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case session.FieldTimeSlotID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeSlotID(v)
		return nil
	case session.FieldPatientName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientName(v)
		return nil
	case session.FieldPatientDni:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientDni(v)
		return nil
	case session.FieldPatientEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPatientEmail(v)
		return nil
	case session.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case session.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case session.FieldSpecialty:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSpecialty(v)
		return nil
	case session.FieldModality:
		v, ok := value.(session.Modality)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	case session.FieldStatus:
		v, ok := value.(session.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case session.FieldTimeSlotID:
		m.ResetTimeSlotID()
		return nil
	case session.FieldPatientName:
		m.ResetPatientName()
		return nil
	case session.FieldPatientDni:
		m.ResetPatientDni()
		return nil
	case session.FieldPatientEmail:
		m.ResetPatientEmail()
		return nil
	case session.FieldStartTime:
		m.ResetStartTime()
		return nil
	case session.FieldEndTime:
		m.ResetEndTime()
		return nil
	case session.FieldSpecialty:
		m.ResetSpecialty()
		return nil
	case session.FieldModality:
		m.ResetModality()
		return nil
	case session.FieldStatus:
		m.ResetStatus()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}

// TimeSlotMutation represents an operation that mutates the TimeSlot nodes in the graph.
type TimeSlotMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	created_at      *time.Time
	updated_at      *time.Time
	psychologist_id *uuid.UUID
	start_time      *time.Time
	end_time        *time.Time
	modality        *timeslot.Modality
	is_booked       *bool
	booked_by       *string
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*TimeSlot, error)
	predicates      []predicate.TimeSlot
}

var _ ent.Mutation = (*TimeSlotMutation)(nil)

// timeslotOption allows management of the mutation configuration using functional options.
type timeslotOption func(*TimeSlotMutation)

// newTimeSlotMutation creates new mutation for the TimeSlot entity.
func newTimeSlotMutation(c config, op Op, opts ...timeslotOption) *TimeSlotMutation {
	m := &TimeSlotMutation{
		config:        c,
		op:            op,
		typ:           TypeTimeSlot,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTimeSlotID sets the ID field of the mutation.
func withTimeSlotID(id uuid.UUID) timeslotOption {
	return func(m *TimeSlotMutation) {
		var (
			err   error
			once  sync.Once
			value *TimeSlot
		)
		m.oldValue = func(ctx context.Context) (*TimeSlot, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TimeSlot.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTimeSlot sets the old TimeSlot of the mutation.
func withTimeSlot(node *TimeSlot) timeslotOption {
	return func(m *TimeSlotMutation) {
		m.oldValue = func(context.Context) (*TimeSlot, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TimeSlotMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TimeSlotMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("repo: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TimeSlot entities.
func (m *TimeSlotMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TimeSlotMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TimeSlotMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TimeSlot.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *TimeSlotMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TimeSlotMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TimeSlotMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TimeSlotMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TimeSlotMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TimeSlotMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPsychologistID sets the "psychologist_id" field.
func (m *TimeSlotMutation) SetPsychologistID(u uuid.UUID) {
	m.psychologist_id = &u
}

// PsychologistID returns the value of the "psychologist_id" field in the mutation.
func (m *TimeSlotMutation) PsychologistID() (r uuid.UUID, exists bool) {
	v := m.psychologist_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPsychologistID returns the old "psychologist_id" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldPsychologistID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPsychologistID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPsychologistID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPsychologistID: %w", err)
	}
	return oldValue.PsychologistID, nil
}

// ResetPsychologistID resets all changes to the "psychologist_id" field.
func (m *TimeSlotMutation) ResetPsychologistID() {
	m.psychologist_id = nil
}

// SetStartTime sets the "start_time" field.
func (m *TimeSlotMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TimeSlotMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TimeSlotMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TimeSlotMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TimeSlotMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldEndTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TimeSlotMutation) ResetEndTime() {
	m.end_time = nil
}

// SetModality sets the "modality" field.
func (m *TimeSlotMutation) SetModality(t timeslot.Modality) {
	m.modality = &t
}

// Modality returns the value of the "modality" field in the mutation.
func (m *TimeSlotMutation) Modality() (r timeslot.Modality, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldModality(ctx context.Context) (v timeslot.Modality, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ResetModality resets all changes to the "modality" field.
func (m *TimeSlotMutation) ResetModality() {
	m.modality = nil
}

// SetIsBooked sets the "is_booked" field.
func (m *TimeSlotMutation) SetIsBooked(b bool) {
	m.is_booked = &b
}

// IsBooked returns the value of the "is_booked" field in the mutation.
func (m *TimeSlotMutation) IsBooked() (r bool, exists bool) {
	v := m.is_booked
	if v == nil {
		return
	}
	return *v, true
}

// OldIsBooked returns the old "is_booked" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldIsBooked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsBooked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsBooked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsBooked: %w", err)
	}
	return oldValue.IsBooked, nil
}

// ResetIsBooked resets all changes to the "is_booked" field.
func (m *TimeSlotMutation) ResetIsBooked() {
	m.is_booked = nil
}

// SetBookedBy sets the "booked_by" field.
func (m *TimeSlotMutation) SetBookedBy(s string) {
	m.booked_by = &s
}

// BookedBy returns the value of the "booked_by" field in the mutation.
func (m *TimeSlotMutation) BookedBy() (r string, exists bool) {
	v := m.booked_by
	if v == nil {
		return
	}
	return *v, true
}

// OldBookedBy returns the old "booked_by" field's value of the TimeSlot entity.
// If the TimeSlot object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TimeSlotMutation) OldBookedBy(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBookedBy is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBookedBy requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBookedBy: %w", err)
	}
	return oldValue.BookedBy, nil
}

// ClearBookedBy clears the value of the "booked_by" field.
func (m *TimeSlotMutation) ClearBookedBy() {
	m.booked_by = nil
	m.clearedFields[timeslot.FieldBookedBy] = struct{}{}
}

// BookedByCleared returns if the "booked_by" field was cleared in this mutation.
func (m *TimeSlotMutation) BookedByCleared() bool {
	_, ok := m.clearedFields[timeslot.FieldBookedBy]
	return ok
}

// ResetBookedBy resets all changes to the "booked_by" field.
func (m *TimeSlotMutation) ResetBookedBy() {
	m.booked_by = nil
	delete(m.clearedFields, timeslot.FieldBookedBy)
}

// Where appends a list predicates to the TimeSlotMutation builder.
func (m *TimeSlotMutation) Where(ps ...predicate.TimeSlot) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TimeSlotMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TimeSlotMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TimeSlot, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TimeSlotMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TimeSlotMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TimeSlot).
func (m *TimeSlotMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TimeSlotMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, timeslot.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, timeslot.FieldUpdatedAt)
	}
	if m.psychologist_id != nil {
		fields = append(fields, timeslot.FieldPsychologistID)
	}
	if m.start_time != nil {
		fields = append(fields, timeslot.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, timeslot.FieldEndTime)
	}
	if m.modality != nil {
		fields = append(fields, timeslot.FieldModality)
	}
	if m.is_booked != nil {
		fields = append(fields, timeslot.FieldIsBooked)
	}
	if m.booked_by != nil {
		fields = append(fields, timeslot.FieldBookedBy)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TimeSlotMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.CreatedAt()
	case timeslot.FieldUpdatedAt:
		return m.UpdatedAt()
	case timeslot.FieldPsychologistID:
		return m.PsychologistID()
	case timeslot.FieldStartTime:
		return m.StartTime()
	case timeslot.FieldEndTime:
		return m.EndTime()
	case timeslot.FieldModality:
		return m.Modality()
	case timeslot.FieldIsBooked:
		return m.IsBooked()
	case timeslot.FieldBookedBy:
		return m.BookedBy()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TimeSlotMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case timeslot.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case timeslot.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case timeslot.FieldPsychologistID:
		return m.OldPsychologistID(ctx)
	case timeslot.FieldStartTime:
		return m.OldStartTime(ctx)
	case timeslot.FieldEndTime:
		return m.OldEndTime(ctx)
	case timeslot.FieldModality:
		return m.OldModality(ctx)
	case timeslot.FieldIsBooked:
		return m.OldIsBooked(ctx)
	case timeslot.FieldBookedBy:
		return m.OldBookedBy(ctx)
	}
	return nil, fmt.Errorf("unknown TimeSlot field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) SetField(name string, value ent.Value) error {
	switch name {
	case timeslot.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case timeslot.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case timeslot.FieldPsychologistID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPsychologistID(v)
		return nil
	case timeslot.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case timeslot.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case timeslot.FieldModality:
		v, ok := value.(timeslot.Modality)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	case timeslot.FieldIsBooked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsBooked(v)
		return nil
	case timeslot.FieldBookedBy:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBookedBy(v)
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TimeSlotMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TimeSlotMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TimeSlotMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown TimeSlot numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TimeSlotMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(timeslot.FieldBookedBy) {
		fields = append(fields, timeslot.FieldBookedBy)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TimeSlotMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TimeSlotMutation) ClearField(name string) error {
	switch name {
	case timeslot.FieldBookedBy:
		m.ClearBookedBy()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TimeSlotMutation) ResetField(name string) error {
	switch name {
	case timeslot.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case timeslot.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case timeslot.FieldPsychologistID:
		m.ResetPsychologistID()
		return nil
	case timeslot.FieldStartTime:
		m.ResetStartTime()
		return nil
	case timeslot.FieldEndTime:
		m.ResetEndTime()
		return nil
	case timeslot.FieldModality:
		m.ResetModality()
		return nil
	case timeslot.FieldIsBooked:
		m.ResetIsBooked()
		return nil
	case timeslot.FieldBookedBy:
		m.ResetBookedBy()
		return nil
	}
	return fmt.Errorf("unknown TimeSlot field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TimeSlotMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TimeSlotMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TimeSlotMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TimeSlotMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TimeSlotMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TimeSlotMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TimeSlotMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TimeSlotMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TimeSlot edge %s", name)
}
