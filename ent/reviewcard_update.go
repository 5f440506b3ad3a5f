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
	"github.com/certready/certready/ent/predicate"
	"github.com/certready/certready/ent/reviewcard"
)

// ReviewCardUpdate is the builder for updating ReviewCard entities.
type ReviewCardUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewCardMutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (_u *ReviewCardUpdate) Where(ps ...predicate.ReviewCard) *ReviewCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEasiness sets the "easiness" field.
func (_u *ReviewCardUpdate) SetEasiness(v string) *ReviewCardUpdate {
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableEasiness(v *string) *ReviewCardUpdate {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewCardUpdate) SetRepetitions(v int) *ReviewCardUpdate {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableRepetitions(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewCardUpdate) AddRepetitions(v int) *ReviewCardUpdate {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewCardUpdate) SetIntervalDays(v int) *ReviewCardUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableIntervalDays(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewCardUpdate) AddIntervalDays(v int) *ReviewCardUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewCardUpdate) SetLastReviewedAt(v time.Time) *ReviewCardUpdate {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableLastReviewedAt(v *time.Time) *ReviewCardUpdate {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewCardUpdate) SetNextReviewAt(v time.Time) *ReviewCardUpdate {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableNextReviewAt(v *time.Time) *ReviewCardUpdate {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ReviewCardUpdate) SetTotalReviews(v int) *ReviewCardUpdate {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableTotalReviews(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ReviewCardUpdate) AddTotalReviews(v int) *ReviewCardUpdate {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetSuccessfulReviews sets the "successful_reviews" field.
func (_u *ReviewCardUpdate) SetSuccessfulReviews(v int) *ReviewCardUpdate {
	_u.mutation.ResetSuccessfulReviews()
	_u.mutation.SetSuccessfulReviews(v)
	return _u
}

// SetNillableSuccessfulReviews sets the "successful_reviews" field if the given value is not nil.
func (_u *ReviewCardUpdate) SetNillableSuccessfulReviews(v *int) *ReviewCardUpdate {
	if v != nil {
		_u.SetSuccessfulReviews(*v)
	}
	return _u
}

// AddSuccessfulReviews adds value to the "successful_reviews" field.
func (_u *ReviewCardUpdate) AddSuccessfulReviews(v int) *ReviewCardUpdate {
	_u.mutation.AddSuccessfulReviews(v)
	return _u
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_u *ReviewCardUpdate) Mutation() *ReviewCardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewCardUpdate) check() error {
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := reviewcard.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulReviews(); ok {
		if err := reviewcard.SuccessfulReviewsValidator(v); err != nil {
			return &ValidationError{Name: "successful_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.successful_reviews": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(reviewcard.FieldEasiness, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(reviewcard.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewcard.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulReviews(); ok {
		_spec.SetField(reviewcard.FieldSuccessfulReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulReviews(); ok {
		_spec.AddField(reviewcard.FieldSuccessfulReviews, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewCardUpdateOne is the builder for updating a single ReviewCard entity.
type ReviewCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewCardMutation
}

// SetEasiness sets the "easiness" field.
func (_u *ReviewCardUpdateOne) SetEasiness(v string) *ReviewCardUpdateOne {
	_u.mutation.SetEasiness(v)
	return _u
}

// SetNillableEasiness sets the "easiness" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableEasiness(v *string) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetEasiness(*v)
	}
	return _u
}

// SetRepetitions sets the "repetitions" field.
func (_u *ReviewCardUpdateOne) SetRepetitions(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetRepetitions()
	_u.mutation.SetRepetitions(v)
	return _u
}

// SetNillableRepetitions sets the "repetitions" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableRepetitions(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetRepetitions(*v)
	}
	return _u
}

// AddRepetitions adds value to the "repetitions" field.
func (_u *ReviewCardUpdateOne) AddRepetitions(v int) *ReviewCardUpdateOne {
	_u.mutation.AddRepetitions(v)
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewCardUpdateOne) SetIntervalDays(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableIntervalDays(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewCardUpdateOne) AddIntervalDays(v int) *ReviewCardUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_u *ReviewCardUpdateOne) SetLastReviewedAt(v time.Time) *ReviewCardUpdateOne {
	_u.mutation.SetLastReviewedAt(v)
	return _u
}

// SetNillableLastReviewedAt sets the "last_reviewed_at" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableLastReviewedAt(v *time.Time) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetLastReviewedAt(*v)
	}
	return _u
}

// SetNextReviewAt sets the "next_review_at" field.
func (_u *ReviewCardUpdateOne) SetNextReviewAt(v time.Time) *ReviewCardUpdateOne {
	_u.mutation.SetNextReviewAt(v)
	return _u
}

// SetNillableNextReviewAt sets the "next_review_at" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableNextReviewAt(v *time.Time) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetNextReviewAt(*v)
	}
	return _u
}

// SetTotalReviews sets the "total_reviews" field.
func (_u *ReviewCardUpdateOne) SetTotalReviews(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetTotalReviews()
	_u.mutation.SetTotalReviews(v)
	return _u
}

// SetNillableTotalReviews sets the "total_reviews" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableTotalReviews(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetTotalReviews(*v)
	}
	return _u
}

// AddTotalReviews adds value to the "total_reviews" field.
func (_u *ReviewCardUpdateOne) AddTotalReviews(v int) *ReviewCardUpdateOne {
	_u.mutation.AddTotalReviews(v)
	return _u
}

// SetSuccessfulReviews sets the "successful_reviews" field.
func (_u *ReviewCardUpdateOne) SetSuccessfulReviews(v int) *ReviewCardUpdateOne {
	_u.mutation.ResetSuccessfulReviews()
	_u.mutation.SetSuccessfulReviews(v)
	return _u
}

// SetNillableSuccessfulReviews sets the "successful_reviews" field if the given value is not nil.
func (_u *ReviewCardUpdateOne) SetNillableSuccessfulReviews(v *int) *ReviewCardUpdateOne {
	if v != nil {
		_u.SetSuccessfulReviews(*v)
	}
	return _u
}

// AddSuccessfulReviews adds value to the "successful_reviews" field.
func (_u *ReviewCardUpdateOne) AddSuccessfulReviews(v int) *ReviewCardUpdateOne {
	_u.mutation.AddSuccessfulReviews(v)
	return _u
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_u *ReviewCardUpdateOne) Mutation() *ReviewCardMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewCardUpdate builder.
func (_u *ReviewCardUpdateOne) Where(ps ...predicate.ReviewCard) *ReviewCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewCardUpdateOne) Select(field string, fields ...string) *ReviewCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewCard entity.
func (_u *ReviewCardUpdateOne) Save(ctx context.Context) (*ReviewCard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewCardUpdateOne) SaveX(ctx context.Context) *ReviewCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewCardUpdateOne) check() error {
	if v, ok := _u.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IntervalDays(); ok {
		if err := reviewcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.interval_days": %w`, err)}
		}
	}
	if v, ok := _u.mutation.TotalReviews(); ok {
		if err := reviewcard.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.total_reviews": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SuccessfulReviews(); ok {
		if err := reviewcard.SuccessfulReviewsValidator(v); err != nil {
			return &ValidationError{Name: "successful_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.successful_reviews": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewCardUpdateOne) sqlSave(ctx context.Context) (_node *ReviewCard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewcard.Table, reviewcard.Columns, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewcard.FieldID)
		for _, f := range fields {
			if !reviewcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewcard.FieldID {
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
	if value, ok := _u.mutation.Easiness(); ok {
		_spec.SetField(reviewcard.FieldEasiness, field.TypeString, value)
	}
	if value, ok := _u.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRepetitions(); ok {
		_spec.AddField(reviewcard.FieldRepetitions, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewcard.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.TotalReviews(); ok {
		_spec.SetField(reviewcard.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalReviews(); ok {
		_spec.AddField(reviewcard.FieldTotalReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SuccessfulReviews(); ok {
		_spec.SetField(reviewcard.FieldSuccessfulReviews, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSuccessfulReviews(); ok {
		_spec.AddField(reviewcard.FieldSuccessfulReviews, field.TypeInt, value)
	}
	_node = &ReviewCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
