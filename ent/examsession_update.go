// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/ent/predicate"
)

// ExamSessionUpdate is the builder for updating ExamSession entities.
type ExamSessionUpdate struct {
	config
	hooks    []Hook
	mutation *ExamSessionMutation
}

// Where appends a list predicates to the ExamSessionUpdate builder.
func (_u *ExamSessionUpdate) Where(ps ...predicate.ExamSession) *ExamSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestions sets the "questions" field.
func (_u *ExamSessionUpdate) SetQuestions(v []string) *ExamSessionUpdate {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ExamSessionUpdate) AppendQuestions(v []string) *ExamSessionUpdate {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamSessionUpdate) SetTotal(v int) *ExamSessionUpdate {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamSessionUpdate) SetNillableTotal(v *int) *ExamSessionUpdate {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamSessionUpdate) AddTotal(v int) *ExamSessionUpdate {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamSessionUpdate) SetCorrect(v int) *ExamSessionUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamSessionUpdate) SetNillableCorrect(v *int) *ExamSessionUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamSessionUpdate) AddCorrect(v int) *ExamSessionUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExamSessionUpdate) SetCompletedAt(v time.Time) *ExamSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExamSessionUpdate) SetNillableCompletedAt(v *time.Time) *ExamSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExamSessionUpdate) ClearCompletedAt() *ExamSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ExamSessionUpdate) SetCompleted(v bool) *ExamSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ExamSessionUpdate) SetNillableCompleted(v *bool) *ExamSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ExamSessionMutation object of the builder.
func (_u *ExamSessionUpdate) Mutation() *ExamSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExamSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExamSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSessionUpdate) check() error {
	if v, ok := _u.mutation.Total(); ok {
		if err := examsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamSession.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := examsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "ExamSession.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsession.Table, examsession.Columns, sqlgraph.NewFieldSpec(examsession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(examsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(examsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(examsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(examsession.FieldCompleted, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExamSessionUpdateOne is the builder for updating a single ExamSession entity.
type ExamSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExamSessionMutation
}

// SetQuestions sets the "questions" field.
func (_u *ExamSessionUpdateOne) SetQuestions(v []string) *ExamSessionUpdateOne {
	_u.mutation.SetQuestions(v)
	return _u
}

// AppendQuestions appends value to the "questions" field.
func (_u *ExamSessionUpdateOne) AppendQuestions(v []string) *ExamSessionUpdateOne {
	_u.mutation.AppendQuestions(v)
	return _u
}

// SetTotal sets the "total" field.
func (_u *ExamSessionUpdateOne) SetTotal(v int) *ExamSessionUpdateOne {
	_u.mutation.ResetTotal()
	_u.mutation.SetTotal(v)
	return _u
}

// SetNillableTotal sets the "total" field if the given value is not nil.
func (_u *ExamSessionUpdateOne) SetNillableTotal(v *int) *ExamSessionUpdateOne {
	if v != nil {
		_u.SetTotal(*v)
	}
	return _u
}

// AddTotal adds value to the "total" field.
func (_u *ExamSessionUpdateOne) AddTotal(v int) *ExamSessionUpdateOne {
	_u.mutation.AddTotal(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *ExamSessionUpdateOne) SetCorrect(v int) *ExamSessionUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *ExamSessionUpdateOne) SetNillableCorrect(v *int) *ExamSessionUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *ExamSessionUpdateOne) AddCorrect(v int) *ExamSessionUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *ExamSessionUpdateOne) SetCompletedAt(v time.Time) *ExamSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *ExamSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *ExamSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *ExamSessionUpdateOne) ClearCompletedAt() *ExamSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *ExamSessionUpdateOne) SetCompleted(v bool) *ExamSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *ExamSessionUpdateOne) SetNillableCompleted(v *bool) *ExamSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// Mutation returns the ExamSessionMutation object of the builder.
func (_u *ExamSessionUpdateOne) Mutation() *ExamSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExamSessionUpdate builder.
func (_u *ExamSessionUpdateOne) Where(ps ...predicate.ExamSession) *ExamSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExamSessionUpdateOne) Select(field string, fields ...string) *ExamSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExamSession entity.
func (_u *ExamSessionUpdateOne) Save(ctx context.Context) (*ExamSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExamSessionUpdateOne) SaveX(ctx context.Context) *ExamSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExamSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExamSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExamSessionUpdateOne) check() error {
	if v, ok := _u.mutation.Total(); ok {
		if err := examsession.TotalValidator(v); err != nil {
			return &ValidationError{Name: "total", err: fmt.Errorf(`ent: validator failed for field "ExamSession.total": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := examsession.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "ExamSession.correct": %w`, err)}
		}
	}
	return nil
}

func (_u *ExamSessionUpdateOne) sqlSave(ctx context.Context) (_node *ExamSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(examsession.Table, examsession.Columns, sqlgraph.NewFieldSpec(examsession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExamSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, examsession.FieldID)
		for _, f := range fields {
			if !examsession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != examsession.FieldID {
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
	if value, ok := _u.mutation.Questions(); ok {
		_spec.SetField(examsession.FieldQuestions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, examsession.FieldQuestions, value)
		})
	}
	if value, ok := _u.mutation.Total(); ok {
		_spec.SetField(examsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotal(); ok {
		_spec.AddField(examsession.FieldTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(examsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(examsession.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(examsession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(examsession.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(examsession.FieldCompleted, field.TypeBool, value)
	}
	_node = &ExamSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{examsession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
