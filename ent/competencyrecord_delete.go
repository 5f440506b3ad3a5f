// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/predicate"
)

// CompetencyRecordDelete is the builder for deleting a CompetencyRecord entity.
type CompetencyRecordDelete struct {
	config
	hooks    []Hook
	mutation *CompetencyRecordMutation
}

// Where appends a list predicates to the CompetencyRecordDelete builder.
func (_d *CompetencyRecordDelete) Where(ps ...predicate.CompetencyRecord) *CompetencyRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *CompetencyRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompetencyRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *CompetencyRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(competencyrecord.Table, sqlgraph.NewFieldSpec(competencyrecord.FieldID, field.TypeInt))
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

// CompetencyRecordDeleteOne is the builder for deleting a single CompetencyRecord entity.
type CompetencyRecordDeleteOne struct {
	_d *CompetencyRecordDelete
}

// Where appends a list predicates to the CompetencyRecordDelete builder.
func (_d *CompetencyRecordDeleteOne) Where(ps ...predicate.CompetencyRecord) *CompetencyRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *CompetencyRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{competencyrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *CompetencyRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
