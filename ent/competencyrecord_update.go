// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/predicate"
)

// CompetencyRecordUpdate is the builder for updating CompetencyRecord entities.
type CompetencyRecordUpdate struct {
	config
	hooks    []Hook
	mutation *CompetencyRecordMutation
}

// Where appends a list predicates to the CompetencyRecordUpdate builder.
func (_u *CompetencyRecordUpdate) Where(ps ...predicate.CompetencyRecord) *CompetencyRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *CompetencyRecordUpdate) SetScore(v string) *CompetencyRecordUpdate {
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompetencyRecordUpdate) SetNillableScore(v *string) *CompetencyRecordUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CompetencyRecordUpdate) SetAttempts(v int) *CompetencyRecordUpdate {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CompetencyRecordUpdate) SetNillableAttempts(v *int) *CompetencyRecordUpdate {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CompetencyRecordUpdate) AddAttempts(v int) *CompetencyRecordUpdate {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CompetencyRecordUpdate) SetCorrect(v int) *CompetencyRecordUpdate {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CompetencyRecordUpdate) SetNillableCorrect(v *int) *CompetencyRecordUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *CompetencyRecordUpdate) AddCorrect(v int) *CompetencyRecordUpdate {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *CompetencyRecordUpdate) SetIncorrect(v int) *CompetencyRecordUpdate {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *CompetencyRecordUpdate) SetNillableIncorrect(v *int) *CompetencyRecordUpdate {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *CompetencyRecordUpdate) AddIncorrect(v int) *CompetencyRecordUpdate {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *CompetencyRecordUpdate) SetLastUpdatedAt(v time.Time) *CompetencyRecordUpdate {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the CompetencyRecordMutation object of the builder.
func (_u *CompetencyRecordUpdate) Mutation() *CompetencyRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CompetencyRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetencyRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CompetencyRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetencyRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompetencyRecordUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := competencyrecord.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetencyRecordUpdate) check() error {
	if v, ok := _u.mutation.Attempts(); ok {
		if err := competencyrecord.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := competencyrecord.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Incorrect(); ok {
		if err := competencyrecord.IncorrectValidator(v); err != nil {
			return &ValidationError{Name: "incorrect", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.incorrect": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetencyRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competencyrecord.Table, competencyrecord.Columns, sqlgraph.NewFieldSpec(competencyrecord.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(competencyrecord.FieldScore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(competencyrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(competencyrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(competencyrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(competencyrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(competencyrecord.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(competencyrecord.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(competencyrecord.FieldLastUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competencyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CompetencyRecordUpdateOne is the builder for updating a single CompetencyRecord entity.
type CompetencyRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CompetencyRecordMutation
}

// SetScore sets the "score" field.
func (_u *CompetencyRecordUpdateOne) SetScore(v string) *CompetencyRecordUpdateOne {
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *CompetencyRecordUpdateOne) SetNillableScore(v *string) *CompetencyRecordUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// SetAttempts sets the "attempts" field.
func (_u *CompetencyRecordUpdateOne) SetAttempts(v int) *CompetencyRecordUpdateOne {
	_u.mutation.ResetAttempts()
	_u.mutation.SetAttempts(v)
	return _u
}

// SetNillableAttempts sets the "attempts" field if the given value is not nil.
func (_u *CompetencyRecordUpdateOne) SetNillableAttempts(v *int) *CompetencyRecordUpdateOne {
	if v != nil {
		_u.SetAttempts(*v)
	}
	return _u
}

// AddAttempts adds value to the "attempts" field.
func (_u *CompetencyRecordUpdateOne) AddAttempts(v int) *CompetencyRecordUpdateOne {
	_u.mutation.AddAttempts(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *CompetencyRecordUpdateOne) SetCorrect(v int) *CompetencyRecordUpdateOne {
	_u.mutation.ResetCorrect()
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *CompetencyRecordUpdateOne) SetNillableCorrect(v *int) *CompetencyRecordUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// AddCorrect adds value to the "correct" field.
func (_u *CompetencyRecordUpdateOne) AddCorrect(v int) *CompetencyRecordUpdateOne {
	_u.mutation.AddCorrect(v)
	return _u
}

// SetIncorrect sets the "incorrect" field.
func (_u *CompetencyRecordUpdateOne) SetIncorrect(v int) *CompetencyRecordUpdateOne {
	_u.mutation.ResetIncorrect()
	_u.mutation.SetIncorrect(v)
	return _u
}

// SetNillableIncorrect sets the "incorrect" field if the given value is not nil.
func (_u *CompetencyRecordUpdateOne) SetNillableIncorrect(v *int) *CompetencyRecordUpdateOne {
	if v != nil {
		_u.SetIncorrect(*v)
	}
	return _u
}

// AddIncorrect adds value to the "incorrect" field.
func (_u *CompetencyRecordUpdateOne) AddIncorrect(v int) *CompetencyRecordUpdateOne {
	_u.mutation.AddIncorrect(v)
	return _u
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_u *CompetencyRecordUpdateOne) SetLastUpdatedAt(v time.Time) *CompetencyRecordUpdateOne {
	_u.mutation.SetLastUpdatedAt(v)
	return _u
}

// Mutation returns the CompetencyRecordMutation object of the builder.
func (_u *CompetencyRecordUpdateOne) Mutation() *CompetencyRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the CompetencyRecordUpdate builder.
func (_u *CompetencyRecordUpdateOne) Where(ps ...predicate.CompetencyRecord) *CompetencyRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CompetencyRecordUpdateOne) Select(field string, fields ...string) *CompetencyRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CompetencyRecord entity.
func (_u *CompetencyRecordUpdateOne) Save(ctx context.Context) (*CompetencyRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CompetencyRecordUpdateOne) SaveX(ctx context.Context) *CompetencyRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CompetencyRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CompetencyRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CompetencyRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdatedAt(); !ok {
		v := competencyrecord.UpdateDefaultLastUpdatedAt()
		_u.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CompetencyRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Attempts(); ok {
		if err := competencyrecord.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.attempts": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Correct(); ok {
		if err := competencyrecord.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.correct": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Incorrect(); ok {
		if err := competencyrecord.IncorrectValidator(v); err != nil {
			return &ValidationError{Name: "incorrect", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.incorrect": %w`, err)}
		}
	}
	return nil
}

func (_u *CompetencyRecordUpdateOne) sqlSave(ctx context.Context) (_node *CompetencyRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(competencyrecord.Table, competencyrecord.Columns, sqlgraph.NewFieldSpec(competencyrecord.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CompetencyRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, competencyrecord.FieldID)
		for _, f := range fields {
			if !competencyrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != competencyrecord.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(competencyrecord.FieldScore, field.TypeString, value)
	}
	if value, ok := _u.mutation.Attempts(); ok {
		_spec.SetField(competencyrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempts(); ok {
		_spec.AddField(competencyrecord.FieldAttempts, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(competencyrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCorrect(); ok {
		_spec.AddField(competencyrecord.FieldCorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Incorrect(); ok {
		_spec.SetField(competencyrecord.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncorrect(); ok {
		_spec.AddField(competencyrecord.FieldIncorrect, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastUpdatedAt(); ok {
		_spec.SetField(competencyrecord.FieldLastUpdatedAt, field.TypeTime, value)
	}
	_node = &CompetencyRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{competencyrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
