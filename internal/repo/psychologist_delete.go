// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/turnos-app/turnos_backend/internal/repo/predicate"
	"github.com/turnos-app/turnos_backend/internal/repo/psychologist"
)

// PsychologistDelete is the builder for deleting a Psychologist entity.
type PsychologistDelete struct {
	config
	hooks    []Hook
	mutation *PsychologistMutation
}

// Where appends a list predicates to the PsychologistDelete builder.
func (_d *PsychologistDelete) Where(ps ...predicate.Psychologist) *PsychologistDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PsychologistDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PsychologistDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PsychologistDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(psychologist.Table, sqlgraph.NewFieldSpec(psychologist.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PsychologistDeleteOne is the builder for deleting a single Psychologist entity.
type PsychologistDeleteOne struct {
	_d *PsychologistDelete
}

// Where appends a list predicates to the PsychologistDelete builder.
func (_d *PsychologistDeleteOne) Where(ps ...predicate.Psychologist) *PsychologistDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PsychologistDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{psychologist.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PsychologistDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
