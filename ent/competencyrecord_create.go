// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/certready/certready/ent/competencyrecord"
)

// CompetencyRecordCreate is the builder for creating a CompetencyRecord entity.
type CompetencyRecordCreate struct {
	config
	mutation *CompetencyRecordMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *CompetencyRecordCreate) SetUserID(v string) *CompetencyRecordCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetTopicID sets the "topic_id" field.
func (_c *CompetencyRecordCreate) SetTopicID(v string) *CompetencyRecordCreate {
	_c.mutation.SetTopicID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *CompetencyRecordCreate) SetScore(v string) *CompetencyRecordCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetAttempts sets the "attempts" field.
func (_c *CompetencyRecordCreate) SetAttempts(v int) *CompetencyRecordCreate {
	_c.mutation.SetAttempts(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *CompetencyRecordCreate) SetCorrect(v int) *CompetencyRecordCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetIncorrect sets the "incorrect" field.
func (_c *CompetencyRecordCreate) SetIncorrect(v int) *CompetencyRecordCreate {
	_c.mutation.SetIncorrect(v)
	return _c
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (_c *CompetencyRecordCreate) SetLastUpdatedAt(v time.Time) *CompetencyRecordCreate {
	_c.mutation.SetLastUpdatedAt(v)
	return _c
}

// SetNillableLastUpdatedAt sets the "last_updated_at" field if the given value is not nil.
func (_c *CompetencyRecordCreate) SetNillableLastUpdatedAt(v *time.Time) *CompetencyRecordCreate {
	if v != nil {
		_c.SetLastUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the CompetencyRecordMutation object of the builder.
func (_c *CompetencyRecordCreate) Mutation() *CompetencyRecordMutation {
	return _c.mutation
}

// Save creates the CompetencyRecord in the database.
func (_c *CompetencyRecordCreate) Save(ctx context.Context) (*CompetencyRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CompetencyRecordCreate) SaveX(ctx context.Context) *CompetencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetencyRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetencyRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CompetencyRecordCreate) defaults() {
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		v := competencyrecord.DefaultLastUpdatedAt()
		_c.mutation.SetLastUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CompetencyRecordCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "CompetencyRecord.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := competencyrecord.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TopicID(); !ok {
		return &ValidationError{Name: "topic_id", err: errors.New(`ent: missing required field "CompetencyRecord.topic_id"`)}
	}
	if v, ok := _c.mutation.TopicID(); ok {
		if err := competencyrecord.TopicIDValidator(v); err != nil {
			return &ValidationError{Name: "topic_id", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.topic_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "CompetencyRecord.score"`)}
	}
	if _, ok := _c.mutation.Attempts(); !ok {
		return &ValidationError{Name: "attempts", err: errors.New(`ent: missing required field "CompetencyRecord.attempts"`)}
	}
	if v, ok := _c.mutation.Attempts(); ok {
		if err := competencyrecord.AttemptsValidator(v); err != nil {
			return &ValidationError{Name: "attempts", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.attempts": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "CompetencyRecord.correct"`)}
	}
	if v, ok := _c.mutation.Correct(); ok {
		if err := competencyrecord.CorrectValidator(v); err != nil {
			return &ValidationError{Name: "correct", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.correct": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Incorrect(); !ok {
		return &ValidationError{Name: "incorrect", err: errors.New(`ent: missing required field "CompetencyRecord.incorrect"`)}
	}
	if v, ok := _c.mutation.Incorrect(); ok {
		if err := competencyrecord.IncorrectValidator(v); err != nil {
			return &ValidationError{Name: "incorrect", err: fmt.Errorf(`ent: validator failed for field "CompetencyRecord.incorrect": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastUpdatedAt(); !ok {
		return &ValidationError{Name: "last_updated_at", err: errors.New(`ent: missing required field "CompetencyRecord.last_updated_at"`)}
	}
	return nil
}

func (_c *CompetencyRecordCreate) sqlSave(ctx context.Context) (*CompetencyRecord, error) {
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

func (_c *CompetencyRecordCreate) createSpec() (*CompetencyRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &CompetencyRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(competencyrecord.Table, sqlgraph.NewFieldSpec(competencyrecord.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(competencyrecord.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.TopicID(); ok {
		_spec.SetField(competencyrecord.FieldTopicID, field.TypeString, value)
		_node.TopicID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(competencyrecord.FieldScore, field.TypeString, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.Attempts(); ok {
		_spec.SetField(competencyrecord.FieldAttempts, field.TypeInt, value)
		_node.Attempts = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(competencyrecord.FieldCorrect, field.TypeInt, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Incorrect(); ok {
		_spec.SetField(competencyrecord.FieldIncorrect, field.TypeInt, value)
		_node.Incorrect = value
	}
	if value, ok := _c.mutation.LastUpdatedAt(); ok {
		_spec.SetField(competencyrecord.FieldLastUpdatedAt, field.TypeTime, value)
		_node.LastUpdatedAt = value
	}
	return _node, _spec
}

// CompetencyRecordCreateBulk is the builder for creating many CompetencyRecord entities in bulk.
type CompetencyRecordCreateBulk struct {
	config
	err      error
	builders []*CompetencyRecordCreate
}

// Save creates the CompetencyRecord entities in the database.
func (_c *CompetencyRecordCreateBulk) Save(ctx context.Context) ([]*CompetencyRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CompetencyRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CompetencyRecordMutation)
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
func (_c *CompetencyRecordCreateBulk) SaveX(ctx context.Context) []*CompetencyRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CompetencyRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CompetencyRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
