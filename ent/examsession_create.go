// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/examsession"
)

// ExamSessionCreate is the builder for creating a ExamSession entity.
type ExamSessionCreate struct {
	config
	mutation *ExamSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *ExamSessionCreate) SetSessionID(v string) *ExamSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *ExamSessionCreate) SetUserID(v string) *ExamSessionCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetCourseID sets the "course_id" field.
func (_c *ExamSessionCreate) SetCourseID(v string) *ExamSessionCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ExamSessionCreate) SetKind(v string) *ExamSessionCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetQuestions sets the "questions" field.
func (_c *ExamSessionCreate) SetQuestions(v []string) *ExamSessionCreate {
	_c.mutation.SetQuestions(v)
	return _c
}

// SetTotal sets the "total" field.
func (_c *ExamSessionCreate) SetTotal(v int) *ExamSessionCreate {
	_c.mutation.SetTotal(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *ExamSessionCreate) SetCorrect(v int) *ExamSessionCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *ExamSessionCreate) SetStartedAt(v time.Time) *ExamSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *ExamSessionCreate) SetCompletedAt(v time.Time) *ExamSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *ExamSessionCreate) SetNillableCompletedAt(v *time.Time) *ExamSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *ExamSessionCreate) SetCompleted(v bool) *ExamSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *ExamSessionCreate) SetNillableCompleted(v *bool) *ExamSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// Mutation returns the ExamSessionMutation object of the builder.
func (_c *ExamSessionCreate) Mutation() *ExamSessionMutation {
	return _c.mutation
}

// Save creates the ExamSession in the database.
func (_c *ExamSessionCreate) Save(ctx context.Context) (*ExamSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExamSessionCreate) SaveX(ctx context.Context) *ExamSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExamSessionCreate) defaults() {
	if _, ok := _c.mutation.Completed(); !ok {
		v := examsession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExamSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "ExamSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := examsession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "ExamSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ExamSession.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := examsession.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ExamSession.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "ExamSession.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := examsession.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "ExamSession.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "ExamSession.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := examsession.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "ExamSession.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Questions(); !ok {
		return &ValidationError{Name: "questions", err: errors.New(`ent: missing required field "ExamSession.questions"`)}
	}
	if _, ok := _c.mutation.Total(); !ok {
		return &ValidationError{Name: "total", err: errors.New(`ent: missing required field "ExamSession.total"`)}
	}
	if v, ok := _c.mutation.Total(); ok {
		if err := examsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamSession.total": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "ExamSession.correct"`)}
	}
	if v, ok := _c.mutation.Correct(); ok {
		if err := examsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "ExamSession.correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "ExamSession.started_at"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "ExamSession.completed"`)}
	}
	return nil
}

func (_c *ExamSessionCreate) sqlSave(ctx context.Context) (*ExamSession, error) {
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
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExamSessionCreate) createSpec() (*ExamSession, *sqlgraph.CreateSpec) {
	var (
		_node = &ExamSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(examsession.Table, sqlgraph.NewFieldSpec(examsession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(examsession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(examsession.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(examsession.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(examsession.FieldKind, field.TypeString, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.Questions(); ok {
		_spec.SetField(examsession.FieldQuestions, field.TypeJSON, value)
		_node.Questions = value
	}
	if value, ok := _c.mutation.Total(); ok {
		_spec.SetField(examsession.FieldTotal, field.TypeInt, value)
		_node.Total = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(examsession.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(examsession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(examsession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(examsession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	return _node, _spec
}

// ExamSessionCreateBulk is the builder for creating many ExamSession entities in bulk.
type ExamSessionCreateBulk struct {
	config
	err      error
	builders []*ExamSessionCreate
}

// Save creates the ExamSession entities in the database.
func (_c *ExamSessionCreateBulk) Save(ctx context.Context) ([]*ExamSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExamSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExamSessionMutation)
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
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
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
func (_c *ExamSessionCreateBulk) SaveX(ctx context.Context) []*ExamSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExamSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExamSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
