// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
	"github.com/turnos-app/turnos_backend/internal/repo/session"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdate) SetPsychologistID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_u *SessionUpdate) SetTimeSlotID(v uuid.UUID) *SessionUpdate {
	_u.mutation.SetTimeSlotID(v)
	return _u
}

// SetNillableTimeSlotID sets the "time_slot_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTimeSlotID(v *uuid.UUID) *SessionUpdate {
	if v != nil {
		_u.SetTimeSlotID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *SessionUpdate) SetPatientName(v string) *SessionUpdate {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientDni sets the "patient_dni" field.
func (_u *SessionUpdate) SetPatientDni(v string) *SessionUpdate {
	_u.mutation.SetPatientDni(v)
	return _u
}

// SetNillablePatientDni sets the "patient_dni" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientDni(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPatientDni(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *SessionUpdate) SetPatientEmail(v string) *SessionUpdate {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePatientEmail(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdate) SetStartTime(v time.Time) *SessionUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStartTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdate) SetEndTime(v time.Time) *SessionUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableEndTime(v *time.Time) *SessionUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *SessionUpdate) SetSpecialty(v string) *SessionUpdate {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSpecialty(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetModality sets the "modality" field.
func (_u *SessionUpdate) SetModality(v session.Modality) *SessionUpdate {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableModality(v *session.Modality) *SessionUpdate {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdate) SetStatus(v session.Status) *SessionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableStatus(v *session.Status) *SessionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdate) check() error {
	if v, ok := _u.mutation.Modality(); ok {
		if err := session.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`repo: validator failed for field "Session.modality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TimeSlotID(); ok {
		_spec.SetField(session.FieldTimeSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(session.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientDni(); ok {
		_spec.SetField(session.FieldPatientDni, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(session.FieldPatientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(session.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(session.FieldModality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetPsychologistID sets the "psychologist_id" field.
func (_u *SessionUpdateOne) SetPsychologistID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetPsychologistID(v)
	return _u
}

// SetNillablePsychologistID sets the "psychologist_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePsychologistID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetPsychologistID(*v)
	}
	return _u
}

// SetTimeSlotID sets the "time_slot_id" field.
func (_u *SessionUpdateOne) SetTimeSlotID(v uuid.UUID) *SessionUpdateOne {
	_u.mutation.SetTimeSlotID(v)
	return _u
}

// SetNillableTimeSlotID sets the "time_slot_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTimeSlotID(v *uuid.UUID) *SessionUpdateOne {
	if v != nil {
		_u.SetTimeSlotID(*v)
	}
	return _u
}

// SetPatientName sets the "patient_name" field.
func (_u *SessionUpdateOne) SetPatientName(v string) *SessionUpdateOne {
	_u.mutation.SetPatientName(v)
	return _u
}

// SetNillablePatientName sets the "patient_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientName(*v)
	}
	return _u
}

// SetPatientDni sets the "patient_dni" field.
func (_u *SessionUpdateOne) SetPatientDni(v string) *SessionUpdateOne {
	_u.mutation.SetPatientDni(v)
	return _u
}

// SetNillablePatientDni sets the "patient_dni" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientDni(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientDni(*v)
	}
	return _u
}

// SetPatientEmail sets the "patient_email" field.
func (_u *SessionUpdateOne) SetPatientEmail(v string) *SessionUpdateOne {
	_u.mutation.SetPatientEmail(v)
	return _u
}

// SetNillablePatientEmail sets the "patient_email" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePatientEmail(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPatientEmail(*v)
	}
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *SessionUpdateOne) SetStartTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStartTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *SessionUpdateOne) SetEndTime(v time.Time) *SessionUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableEndTime(v *time.Time) *SessionUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// SetSpecialty sets the "specialty" field.
func (_u *SessionUpdateOne) SetSpecialty(v string) *SessionUpdateOne {
	_u.mutation.SetSpecialty(v)
	return _u
}

// SetNillableSpecialty sets the "specialty" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSpecialty(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSpecialty(*v)
	}
	return _u
}

// SetModality sets the "modality" field.
func (_u *SessionUpdateOne) SetModality(v session.Modality) *SessionUpdateOne {
	_u.mutation.SetModality(v)
	return _u
}

// SetNillableModality sets the "modality" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableModality(v *session.Modality) *SessionUpdateOne {
	if v != nil {
		_u.SetModality(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *SessionUpdateOne) SetStatus(v session.Status) *SessionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableStatus(v *session.Status) *SessionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SessionUpdateOne) check() error {
	if v, ok := _u.mutation.Modality(); ok {
		if err := session.ModalityValidator(v); err != nil {
			return &ValidationError{Name: "modality", err: fmt.Errorf(`repo: validator failed for field "Session.modality": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := session.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Session.status": %w`, err)}
		}
	}
	return nil
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != session.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PsychologistID(); ok {
		_spec.SetField(session.FieldPsychologistID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.TimeSlotID(); ok {
		_spec.SetField(session.FieldTimeSlotID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.PatientName(); ok {
		_spec.SetField(session.FieldPatientName, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientDni(); ok {
		_spec.SetField(session.FieldPatientDni, field.TypeString, value)
	}
	if value, ok := _u.mutation.PatientEmail(); ok {
		_spec.SetField(session.FieldPatientEmail, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(session.FieldStartTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(session.FieldEndTime, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Specialty(); ok {
		_spec.SetField(session.FieldSpecialty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Modality(); ok {
		_spec.SetField(session.FieldModality, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(session.FieldStatus, field.TypeEnum, value)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
