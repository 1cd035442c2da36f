// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
)

// PsychologistUpdate is the builder for updating Psychologist entities.
type PsychologistUpdate struct {
	config
	hooks    []Hook
	mutation *PsychologistMutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdate) Where(ps ...predicate.Psychologist) *PsychologistUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdate) SetUpdatedAt(v time.Time) *PsychologistUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PsychologistUpdate) SetName(v string) *PsychologistUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableName(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *PsychologistUpdate) SetSpecialties(v []string) *PsychologistUpdate {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *PsychologistUpdate) AppendSpecialties(v []string) *PsychologistUpdate {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// SetModalities sets the "modalities" field.
func (_u *PsychologistUpdate) SetModalities(v []string) *PsychologistUpdate {
	_u.mutation.SetModalities(v)
	return _u
}

// AppendModalities appends value to the "modalities" field.
func (_u *PsychologistUpdate) AppendModalities(v []string) *PsychologistUpdate {
	_u.mutation.AppendModalities(v)
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *PsychologistUpdate) SetAvatar(v string) *PsychologistUpdate {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableAvatar(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *PsychologistUpdate) SetRating(v float64) *PsychologistUpdate {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableRating(v *float64) *PsychologistUpdate {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PsychologistUpdate) AddRating(v float64) *PsychologistUpdate {
	_u.mutation.AddRating(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *PsychologistUpdate) SetExperience(v int) *PsychologistUpdate {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableExperience(v *int) *PsychologistUpdate {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *PsychologistUpdate) AddExperience(v int) *PsychologistUpdate {
	_u.mutation.AddExperience(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistUpdate) SetBio(v string) *PsychologistUpdate {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistUpdate) SetNillableBio(v *string) *PsychologistUpdate {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdate) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PsychologistUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PsychologistUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PsychologistUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(psychologist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(psychologist.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologist.FieldSpecialties, value)
		})
	}
	if value, ok := _u.mutation.Modalities(); ok {
		_spec.SetField(psychologist.FieldModalities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModalities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologist.FieldModalities, value)
		})
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(psychologist.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(psychologist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(psychologist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(psychologist.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(psychologist.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PsychologistUpdateOne is the builder for updating a single Psychologist entity.
type PsychologistUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PsychologistMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PsychologistUpdateOne) SetUpdatedAt(v time.Time) *PsychologistUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *PsychologistUpdateOne) SetName(v string) *PsychologistUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableName(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetSpecialties sets the "specialties" field.
func (_u *PsychologistUpdateOne) SetSpecialties(v []string) *PsychologistUpdateOne {
	_u.mutation.SetSpecialties(v)
	return _u
}

// AppendSpecialties appends value to the "specialties" field.
func (_u *PsychologistUpdateOne) AppendSpecialties(v []string) *PsychologistUpdateOne {
	_u.mutation.AppendSpecialties(v)
	return _u
}

// SetModalities sets the "modalities" field.
func (_u *PsychologistUpdateOne) SetModalities(v []string) *PsychologistUpdateOne {
	_u.mutation.SetModalities(v)
	return _u
}

// AppendModalities appends value to the "modalities" field.
func (_u *PsychologistUpdateOne) AppendModalities(v []string) *PsychologistUpdateOne {
	_u.mutation.AppendModalities(v)
	return _u
}

// SetAvatar sets the "avatar" field.
func (_u *PsychologistUpdateOne) SetAvatar(v string) *PsychologistUpdateOne {
	_u.mutation.SetAvatar(v)
	return _u
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableAvatar(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetAvatar(*v)
	}
	return _u
}

// SetRating sets the "rating" field.
func (_u *PsychologistUpdateOne) SetRating(v float64) *PsychologistUpdateOne {
	_u.mutation.ResetRating()
	_u.mutation.SetRating(v)
	return _u
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableRating(v *float64) *PsychologistUpdateOne {
	if v != nil {
		_u.SetRating(*v)
	}
	return _u
}

// AddRating adds value to the "rating" field.
func (_u *PsychologistUpdateOne) AddRating(v float64) *PsychologistUpdateOne {
	_u.mutation.AddRating(v)
	return _u
}

// SetExperience sets the "experience" field.
func (_u *PsychologistUpdateOne) SetExperience(v int) *PsychologistUpdateOne {
	_u.mutation.ResetExperience()
	_u.mutation.SetExperience(v)
	return _u
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableExperience(v *int) *PsychologistUpdateOne {
	if v != nil {
		_u.SetExperience(*v)
	}
	return _u
}

// AddExperience adds value to the "experience" field.
func (_u *PsychologistUpdateOne) AddExperience(v int) *PsychologistUpdateOne {
	_u.mutation.AddExperience(v)
	return _u
}

// SetBio sets the "bio" field.
func (_u *PsychologistUpdateOne) SetBio(v string) *PsychologistUpdateOne {
	_u.mutation.SetBio(v)
	return _u
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_u *PsychologistUpdateOne) SetNillableBio(v *string) *PsychologistUpdateOne {
	if v != nil {
		_u.SetBio(*v)
	}
	return _u
}

// Mutation returns the PsychologistMutation object of the builder.
func (_u *PsychologistUpdateOne) Mutation() *PsychologistMutation {
	return _u.mutation
}

// Where appends a list predicates to the PsychologistUpdate builder.
func (_u *PsychologistUpdateOne) Where(ps ...predicate.Psychologist) *PsychologistUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PsychologistUpdateOne) Select(field string, fields ...string) *PsychologistUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Psychologist entity.
func (_u *PsychologistUpdateOne) Save(ctx context.Context) (*Psychologist, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PsychologistUpdateOne) SaveX(ctx context.Context) *Psychologist {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PsychologistUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PsychologistUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PsychologistUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := psychologist.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *PsychologistUpdateOne) sqlSave(ctx context.Context) (_node *Psychologist, err error) {
	_spec := sqlgraph.NewUpdateSpec(psychologist.Table, psychologist.Columns, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Psychologist.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, psychologist.FieldID)
		for _, f := range fields {
			if !psychologist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != psychologist.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(psychologist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Specialties(); ok {
		_spec.SetField(psychologist.FieldSpecialties, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSpecialties(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologist.FieldSpecialties, value)
		})
	}
	if value, ok := _u.mutation.Modalities(); ok {
		_spec.SetField(psychologist.FieldModalities, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedModalities(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, psychologist.FieldModalities, value)
		})
	}
	if value, ok := _u.mutation.Avatar(); ok {
		_spec.SetField(psychologist.FieldAvatar, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rating(); ok {
		_spec.SetField(psychologist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRating(); ok {
		_spec.AddField(psychologist.FieldRating, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Experience(); ok {
		_spec.SetField(psychologist.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedExperience(); ok {
		_spec.AddField(psychologist.FieldExperience, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
	}
	_node = &Psychologist{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{psychologist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
