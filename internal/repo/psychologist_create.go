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
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
)

// PsychologistCreate is the builder for creating a Psychologist entity.
type PsychologistCreate struct {
	config
	mutation *PsychologistMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PsychologistCreate) SetCreatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableCreatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PsychologistCreate) SetUpdatedAt(v time.Time) *PsychologistCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableUpdatedAt(v *time.Time) *PsychologistCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *PsychologistCreate) SetName(v string) *PsychologistCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetSpecialties sets the "specialties" field.
func (_c *PsychologistCreate) SetSpecialties(v []string) *PsychologistCreate {
	_c.mutation.SetSpecialties(v)
	return _c
}

// SetModalities sets the "modalities" field.
func (_c *PsychologistCreate) SetModalities(v []string) *PsychologistCreate {
	_c.mutation.SetModalities(v)
	return _c
}

// SetAvatar sets the "avatar" field.
func (_c *PsychologistCreate) SetAvatar(v string) *PsychologistCreate {
	_c.mutation.SetAvatar(v)
	return _c
}

// SetNillableAvatar sets the "avatar" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableAvatar(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetAvatar(*v)
	}
	return _c
}

// SetRating sets the "rating" field.
func (_c *PsychologistCreate) SetRating(v float64) *PsychologistCreate {
	_c.mutation.SetRating(v)
	return _c
}

// SetNillableRating sets the "rating" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableRating(v *float64) *PsychologistCreate {
	if v != nil {
		_c.SetRating(*v)
	}
	return _c
}

// SetExperience sets the "experience" field.
func (_c *PsychologistCreate) SetExperience(v int) *PsychologistCreate {
	_c.mutation.SetExperience(v)
	return _c
}

// SetNillableExperience sets the "experience" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableExperience(v *int) *PsychologistCreate {
	if v != nil {
		_c.SetExperience(*v)
	}
	return _c
}

// SetBio sets the "bio" field.
func (_c *PsychologistCreate) SetBio(v string) *PsychologistCreate {
	_c.mutation.SetBio(v)
	return _c
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableBio(v *string) *PsychologistCreate {
	if v != nil {
		_c.SetBio(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PsychologistCreate) SetID(v uuid.UUID) *PsychologistCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PsychologistCreate) SetNillableID(v *uuid.UUID) *PsychologistCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the PsychologistMutation object of the builder.
func (_c *PsychologistCreate) Mutation() *PsychologistMutation {
	return _c.mutation
}

// Save creates the Psychologist in the database.
func (_c *PsychologistCreate) Save(ctx context.Context) (*Psychologist, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PsychologistCreate) SaveX(ctx context.Context) *Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PsychologistCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := psychologist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := psychologist.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		v := psychologist.DefaultAvatar
		_c.mutation.SetAvatar(v)
	}
	if _, ok := _c.mutation.Rating(); !ok {
		v := psychologist.DefaultRating
		_c.mutation.SetRating(v)
	}
	if _, ok := _c.mutation.Experience(); !ok {
		v := psychologist.DefaultExperience
		_c.mutation.SetExperience(v)
	}
	if _, ok := _c.mutation.Bio(); !ok {
		v := psychologist.DefaultBio
		_c.mutation.SetBio(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := psychologist.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PsychologistCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Psychologist.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Psychologist.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Psychologist.name"`)}
	}
	if _, ok := _c.mutation.Specialties(); !ok {
		return &ValidationError{Name: "specialties", err: errors.New(`repo: missing required field "Psychologist.specialties"`)}
	}
	if _, ok := _c.mutation.Modalities(); !ok {
		return &ValidationError{Name: "modalities", err: errors.New(`repo: missing required field "Psychologist.modalities"`)}
	}
	if _, ok := _c.mutation.Avatar(); !ok {
		return &ValidationError{Name: "avatar", err: errors.New(`repo: missing required field "Psychologist.avatar"`)}
	}
	if _, ok := _c.mutation.Rating(); !ok {
		return &ValidationError{Name: "rating", err: errors.New(`repo: missing required field "Psychologist.rating"`)}
	}
	if _, ok := _c.mutation.Experience(); !ok {
		return &ValidationError{Name: "experience", err: errors.New(`repo: missing required field "Psychologist.experience"`)}
	}
	if _, ok := _c.mutation.Bio(); !ok {
		return &ValidationError{Name: "bio", err: errors.New(`repo: missing required field "Psychologist.bio"`)}
	}
	return nil
}

func (_c *PsychologistCreate) sqlSave(ctx context.Context) (*Psychologist, error) {
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

func (_c *PsychologistCreate) createSpec() (*Psychologist, *sqlgraph.CreateSpec) {
	var (
		_node = &Psychologist{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(psychologist.Table, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(psychologist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(psychologist.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(psychologist.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Specialties(); ok {
		_spec.SetField(psychologist.FieldSpecialties, field.TypeJSON, value)
		_node.Specialties = value
	}
	if value, ok := _c.mutation.Modalities(); ok {
		_spec.SetField(psychologist.FieldModalities, field.TypeJSON, value)
		_node.Modalities = value
	}
	if value, ok := _c.mutation.Avatar(); ok {
		_spec.SetField(psychologist.FieldAvatar, field.TypeString, value)
		_node.Avatar = value
	}
	if value, ok := _c.mutation.Rating(); ok {
		_spec.SetField(psychologist.FieldRating, field.TypeFloat64, value)
		_node.Rating = value
	}
	if value, ok := _c.mutation.Experience(); ok {
		_spec.SetField(psychologist.FieldExperience, field.TypeInt, value)
		_node.Experience = value
	}
	if value, ok := _c.mutation.Bio(); ok {
		_spec.SetField(psychologist.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	return _node, _spec
}

// PsychologistCreateBulk is the builder for creating many Psychologist entities in bulk.
type PsychologistCreateBulk struct {
	config
	err      error
	builders []*PsychologistCreate
}

// Save creates the Psychologist entities in the database.
func (_c *PsychologistCreateBulk) Save(ctx context.Context) ([]*Psychologist, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Psychologist, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PsychologistMutation)
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
func (_c *PsychologistCreateBulk) SaveX(ctx context.Context) []*Psychologist {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PsychologistCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PsychologistCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
