// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
)

// SessionCreate is the builder for creating a Session entity.
type SessionCreate struct {
	config
	mutation *SessionMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *SessionCreate) SetCreatedAt(v time.Time) *SessionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *SessionCreate) SetNillableCreatedAt(v *time.Time) *SessionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPsychologistID sets the "psychologist_id" field.
func (_c *SessionCreate) SetPsychologistID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetPsychologistID(v)
	return _c
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_c *SessionCreate) SetTimeSlotID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetTimeSlotID(v)
	return _c
}

// SetPatientName sets the "patient_name" field.
func (_c *SessionCreate) SetPatientName(v string) *SessionCreate {
	_c.mutation.SetPatientName(v)
	return _c
}

// SetPatientDni sets the "patient_dni" field.
func (_c *SessionCreate) SetPatientDni(v string) *SessionCreate {
	_c.mutation.SetPatientDni(v)
	return _c
}

// SetPatientEmail sets the "patient_email" field.
func (_c *SessionCreate) SetPatientEmail(v string) *SessionCreate {
	_c.mutation.SetPatientEmail(v)
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *SessionCreate) SetStartTime(v time.Time) *SessionCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *SessionCreate) SetEndTime(v time.Time) *SessionCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetSpecialty sets the "specialty" field.
func (_c *SessionCreate) SetSpecialty(v string) *SessionCreate {
	_c.mutation.SetSpecialty(v)
	return _c
}

// SetModality sets the "modality" field.
func (_c *SessionCreate) SetModality(v session.Modality) *SessionCreate {
	_c.mutation.SetModality(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *SessionCreate) SetStatus(v session.Status) *SessionCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *SessionCreate) SetNillableStatus(v *session.Status) *SessionCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *SessionCreate) SetID(v uuid.UUID) *SessionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *SessionCreate) SetNillableID(v *uuid.UUID) *SessionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the SessionMutation object of the builder.
func (_c *SessionCreate) Mutation() *SessionMutation {
	return _c.mutation
}

// Save creates the Session in the database.
func (_c *SessionCreate) Save(ctx context.Context) (*Session, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SessionCreate) SaveX(ctx context.Context) *Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SessionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := session.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := session.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := session.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SessionCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Session.created_at"`)}
	}
	if _, ok := _c.mutation.PsychologistID(); !ok {
		return &ValidationError{Name: "psychologist_id", err: errors.New(`repo: missing required field "Session.psychologist_id"`)}
	}
	if _, ok := _c.mutation.TimeSlotID(); !ok {
		return &ValidationError{Name: "time_slot_id", err: errors.New(`repo: missing required field "Session.time_slot_id"`)}
	}
	if _, ok := _c.mutation.PatientName(); !ok {
		return &ValidationError{Name: "patient_name", err: errors.New(`repo: missing required field "Session.patient_name"`)}
	}
	if _, ok := _c.mutation.PatientDni(); !ok {
		return &ValidationError{Name: "patient_dni", err: errors.New(`repo: missing required field "Session.patient_dni"`)}
	}
	if _, ok := _c.mutation.PatientEmail(); !ok {
		return &ValidationError{Name: "patient_email", err: errors.New(`repo: missing required field "Session.patient_email"`)}
	}
	if _, ok := _c.mutation.StartTime(); !ok {
		return &ValidationError{Name: "start_time", err: errors.New(`repo: missing required field "Session.start_time"`)}
	}
	if _, ok := _c.mutation.EndTime(); !ok {
		return &ValidationError{Name: "end_time", err: errors.New(`repo: missing required field "Session.end_time"`)}
	}
	if _, ok := _c.mutation.Specialty(); !ok {
		return &ValidationError{Name: "specialty", err: errors.New(`repo: missing required field "Session.specialty"`)}
	}
	if _, ok := _c.mutation.Modality(); !ok {
		return &ValidationError{Name: "modality", err: errors.New(`repo: missing required field "Session.modality"`)}
	}
	if v, ok := _c.mutation.Modality(); ok {
		if err := session.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`repo: validator failed for field "Session.modality": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "Session.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_c *SessionCreate) sqlSave(ctx context.Context) (*Session, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *SessionCreate) createSpec() (*Session, *sqlgraph.CreateSpec) {
	var (
		_node = &Session{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(session.Table, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(session.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
		_node.PsychologistID = value
	}
	if value, ok := _c.mutation.TimeSlotID(); ok {
		_spec.SetField(session.FieldTimeSlotID, field.TypeUUID, value)
		_node.TimeSlotID = value
	}
	if value, ok := _c.mutation.PatientName(); ok {
		_spec.SetField(session.FieldPatientName, field.TypeString, value)
		_node.PatientName = value
	}
	if value, ok := _c.mutation.PatientDni(); ok {
		_spec.SetField(session.FieldPatientDni, field.TypeString, value)
		_node.PatientDni = value
	}
	if value, ok := _c.mutation.PatientEmail(); ok {
		_spec.SetField(session.FieldPatientEmail, field.TypeString, value)
		_node.PatientEmail = value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
		_node.StartTime = value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
		_node.EndTime = value
	}
	if value, ok := _c.mutation.Specialty(); ok {
		_spec.SetField(session.FieldSpecialty, field.TypeString, value)
		_node.Specialty = value
	}
	if value, ok := _c.mutation.Modality(); ok {
		_spec.SetField(session.FieldModality, field.TypeEnum, value)
		_node.Modality = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	return _node, _spec
}

// SessionCreateBulk is the builder for creating many Session entities in bulk.
type SessionCreateBulk struct {
	config
	err      error
	builders []*SessionCreate
}

// Save creates the Session entities in the database.
func (_c *SessionCreateBulk) Save(ctx context.Context) ([]*Session, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Session, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *SessionCreateBulk) SaveX(ctx context.Context) []*Session {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
