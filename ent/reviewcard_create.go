// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/reviewcard"
)

// ReviewCardCreate is the builder for creating a ReviewCard entity.
type ReviewCardCreate struct {
	config
	mutation *ReviewCardMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewCardCreate) SetUserID(v string) *ReviewCardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewCardCreate) SetQuestionID(v string) *ReviewCardCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetEasiness sets the "easiness" field.
func (_c *ReviewCardCreate) SetEasiness(v string) *ReviewCardCreate {
	_c.mutation.SetEasiness(v)
	return _c
}

// SetRepetitions sets the "repetitions" field.
func (_c *ReviewCardCreate) SetRepetitions(v int) *ReviewCardCreate {
	_c.mutation.SetRepetitions(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewCardCreate) SetIntervalDays(v int) *ReviewCardCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (_c *ReviewCardCreate) SetLastReviewedAt(v time.Time) *ReviewCardCreate {
	_c.mutation.SetLastReviewedAt(v)
	return _c
}

// SetNextReviewAt sets the "next_review_at" field.
func (_c *ReviewCardCreate) SetNextReviewAt(v time.Time) *ReviewCardCreate {
	_c.mutation.SetNextReviewAt(v)
	return _c
}

// SetTotalReviews sets the "total_reviews" field.
func (_c *ReviewCardCreate) SetTotalReviews(v int) *ReviewCardCreate {
	_c.mutation.SetTotalReviews(v)
	return _c
}

// SetSuccessfulReviews sets the "successful_reviews" field.
func (_c *ReviewCardCreate) SetSuccessfulReviews(v int) *ReviewCardCreate {
	_c.mutation.SetSuccessfulReviews(v)
	return _c
}

// Mutation returns the ReviewCardMutation object of the builder.
func (_c *ReviewCardCreate) Mutation() *ReviewCardMutation {
	return _c.mutation
}

// Save creates the ReviewCard in the database.
func (_c *ReviewCardCreate) Save(ctx context.Context) (*ReviewCard, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewCardCreate) SaveX(ctx context.Context) *ReviewCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewCardCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewCard.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReviewCard.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := reviewcard.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Easiness(); !ok {
		return &ValidationError{Name: "easiness", err: errors.New(`ent: missing required field "ReviewCard.easiness"`)}
	}
	if _, ok := _c.mutation.Repetitions(); !ok {
		return &ValidationError{Name: "repetitions", err: errors.New(`ent: missing required field "ReviewCard.repetitions"`)}
	}
	if v, ok := _c.mutation.Repetitions(); ok {
		if err := reviewcard.RepetitionsValidator(v); err != nil {
			return &ValidationError{Name: "repetitions", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.repetitions": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewCard.interval_days"`)}
	}
	if v, ok := _c.mutation.IntervalDays(); ok {
		if err := reviewcard.IntervalDaysValidator(v); err != nil {
			return &ValidationError{Name: "interval_days", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.interval_days": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastReviewedAt(); !ok {
		return &ValidationError{Name: "last_reviewed_at", err: errors.New(`ent: missing required field "ReviewCard.last_reviewed_at"`)}
	}
	if _, ok := _c.mutation.NextReviewAt(); !ok {
		return &ValidationError{Name: "next_review_at", err: errors.New(`ent: missing required field "ReviewCard.next_review_at"`)}
	}
	if _, ok := _c.mutation.TotalReviews(); !ok {
		return &ValidationError{Name: "total_reviews", err: errors.New(`ent: missing required field "ReviewCard.total_reviews"`)}
	}
	if v, ok := _c.mutation.TotalReviews(); ok {
		if err := reviewcard.TotalReviewsValidator(v); err != nil {
			return &ValidationError{Name: "total_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.total_reviews": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SuccessfulReviews(); !ok {
		return &ValidationError{Name: "successful_reviews", err: errors.New(`ent: missing required field "ReviewCard.successful_reviews"`)}
	}
	if v, ok := _c.mutation.SuccessfulReviews(); ok {
		if err := reviewcard.SuccessfulReviewsValidator(v); err != nil {
			return &ValidationError{Name: "successful_reviews", err: fmt.Errorf(`ent: validator failed for field "ReviewCard.successful_reviews": %w`, err)}
		}
	}
	return nil
}

func (_c *ReviewCardCreate) sqlSave(ctx context.Context) (*ReviewCard, error) {
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

func (_c *ReviewCardCreate) createSpec() (*ReviewCard, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewcard.Table, sqlgraph.NewFieldSpec(reviewcard.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewcard.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewcard.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Easiness(); ok {
		_spec.SetField(reviewcard.FieldEasiness, field.TypeString, value)
		_node.Easiness = value
	}
	if value, ok := _c.mutation.Repetitions(); ok {
		_spec.SetField(reviewcard.FieldRepetitions, field.TypeInt, value)
		_node.Repetitions = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewcard.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.LastReviewedAt(); ok {
		_spec.SetField(reviewcard.FieldLastReviewedAt, field.TypeTime, value)
		_node.LastReviewedAt = value
	}
	if value, ok := _c.mutation.NextReviewAt(); ok {
		_spec.SetField(reviewcard.FieldNextReviewAt, field.TypeTime, value)
		_node.NextReviewAt = value
	}
	if value, ok := _c.mutation.TotalReviews(); ok {
		_spec.SetField(reviewcard.FieldTotalReviews, field.TypeInt, value)
		_node.TotalReviews = value
	}
	if value, ok := _c.mutation.SuccessfulReviews(); ok {
		_spec.SetField(reviewcard.FieldSuccessfulReviews, field.TypeInt, value)
		_node.SuccessfulReviews = value
	}
	return _node, _spec
}

// ReviewCardCreateBulk is the builder for creating many ReviewCard entities in bulk.
type ReviewCardCreateBulk struct {
	config
	err      error
	builders []*ReviewCardCreate
}

// Save creates the ReviewCard entities in the database.
func (_c *ReviewCardCreateBulk) Save(ctx context.Context) ([]*ReviewCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewCardMutation)
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
func (_c *ReviewCardCreateBulk) SaveX(ctx context.Context) []*ReviewCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
