// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/certready/certready/ent/attemptevent"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/ent/predicate"
	"github.com/certready/certready/ent/reviewcard"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAttemptEvent     = "AttemptEvent"
	TypeCompetencyRecord = "CompetencyRecord"
	TypeExamSession      = "ExamSession"
	TypeReviewCard       = "ReviewCard"
)

// AttemptEventMutation represents an operation that mutates the AttemptEvent nodes in the graph.
type AttemptEventMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	sequence              *int64
	addsequence           *int64
	timestamp             *time.Time
	attempt_id            *string
	user_id               *string
	question_id           *string
	session_id            *string
	topic_id              *string
	correct               *bool
	competency_at_attempt *string
	difficulty_at_attempt *string
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*AttemptEvent, error)
	predicates            []predicate.AttemptEvent
}

var _ ent.Mutation = (*AttemptEventMutation)(nil)

// attempteventOption allows management of the mutation configuration using functional options.
type attempteventOption func(*AttemptEventMutation)

// newAttemptEventMutation creates new mutation for the AttemptEvent entity.
func newAttemptEventMutation(c config, op Op, opts ...attempteventOption) *AttemptEventMutation {
	m := &AttemptEventMutation{
		config:        c,
		op:            op,
		typ:           TypeAttemptEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAttemptEventID sets the ID field of the mutation.
func withAttemptEventID(id int) attempteventOption {
	return func(m *AttemptEventMutation) {
		var (
			err   error
			once  sync.Once
			value *AttemptEvent
		)
		m.oldValue = func(ctx context.Context) (*AttemptEvent, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AttemptEvent.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAttemptEvent sets the old AttemptEvent of the mutation.
func withAttemptEvent(node *AttemptEvent) attempteventOption {
	return func(m *AttemptEventMutation) {
		m.oldValue = func(context.Context) (*AttemptEvent, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AttemptEventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AttemptEventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AttemptEventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AttemptEventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AttemptEvent.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSequence sets the "sequence" field.
func (m *AttemptEventMutation) SetSequence(i int64) {
	m.sequence = &i
	m.addsequence = nil
}

// Sequence returns the value of the "sequence" field in the mutation.
func (m *AttemptEventMutation) Sequence() (r int64, exists bool) {
	v := m.sequence
	if v == nil {
		return
	}
	return *v, true
}

// OldSequence returns the old "sequence" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSequence(ctx context.Context) (v int64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSequence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSequence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSequence: %w", err)
	}
	return oldValue.Sequence, nil
}

// AddSequence adds i to the "sequence" field.
func (m *AttemptEventMutation) AddSequence(i int64) {
	if m.addsequence != nil {
		*m.addsequence += i
	} else {
		m.addsequence = &i
	}
}

// AddedSequence returns the value that was added to the "sequence" field in this mutation.
func (m *AttemptEventMutation) AddedSequence() (r int64, exists bool) {
	v := m.addsequence
	if v == nil {
		return
	}
	return *v, true
}

// ResetSequence resets all changes to the "sequence" field.
func (m *AttemptEventMutation) ResetSequence() {
	m.sequence = nil
	m.addsequence = nil
}

// SetTimestamp sets the "timestamp" field.
func (m *AttemptEventMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AttemptEventMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AttemptEventMutation) ResetTimestamp() {
	m.timestamp = nil
}

// SetAttemptID sets the "attempt_id" field.
func (m *AttemptEventMutation) SetAttemptID(s string) {
	m.attempt_id = &s
}

// AttemptID returns the value of the "attempt_id" field in the mutation.
func (m *AttemptEventMutation) AttemptID() (r string, exists bool) {
	v := m.attempt_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAttemptID returns the old "attempt_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldAttemptID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttemptID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttemptID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttemptID: %w", err)
	}
	return oldValue.AttemptID, nil
}

// ResetAttemptID resets all changes to the "attempt_id" field.
func (m *AttemptEventMutation) ResetAttemptID() {
	m.attempt_id = nil
}

// SetUserID sets the "user_id" field.
func (m *AttemptEventMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *AttemptEventMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *AttemptEventMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *AttemptEventMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *AttemptEventMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *AttemptEventMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetSessionID sets the "session_id" field.
func (m *AttemptEventMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *AttemptEventMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *AttemptEventMutation) ResetSessionID() {
	m.session_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *AttemptEventMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *AttemptEventMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *AttemptEventMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetCorrect sets the "correct" field.
func (m *AttemptEventMutation) SetCorrect(b bool) {
	m.correct = &b
}

// Correct returns the value of the "correct" field in the mutation.
func (m *AttemptEventMutation) Correct() (r bool, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCorrect(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// ResetCorrect resets all changes to the "correct" field.
func (m *AttemptEventMutation) ResetCorrect() {
	m.correct = nil
}

// SetCompetencyAtAttempt sets the "competency_at_attempt" field.
func (m *AttemptEventMutation) SetCompetencyAtAttempt(s string) {
	m.competency_at_attempt = &s
}

// CompetencyAtAttempt returns the value of the "competency_at_attempt" field in the mutation.
func (m *AttemptEventMutation) CompetencyAtAttempt() (r string, exists bool) {
	v := m.competency_at_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetencyAtAttempt returns the old "competency_at_attempt" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldCompetencyAtAttempt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetencyAtAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetencyAtAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetencyAtAttempt: %w", err)
	}
	return oldValue.CompetencyAtAttempt, nil
}

// ResetCompetencyAtAttempt resets all changes to the "competency_at_attempt" field.
func (m *AttemptEventMutation) ResetCompetencyAtAttempt() {
	m.competency_at_attempt = nil
}

// SetDifficultyAtAttempt sets the "difficulty_at_attempt" field.
func (m *AttemptEventMutation) SetDifficultyAtAttempt(s string) {
	m.difficulty_at_attempt = &s
}

// DifficultyAtAttempt returns the value of the "difficulty_at_attempt" field in the mutation.
func (m *AttemptEventMutation) DifficultyAtAttempt() (r string, exists bool) {
	v := m.difficulty_at_attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldDifficultyAtAttempt returns the old "difficulty_at_attempt" field's value of the AttemptEvent entity.
// If the AttemptEvent object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AttemptEventMutation) OldDifficultyAtAttempt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifficultyAtAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifficultyAtAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifficultyAtAttempt: %w", err)
	}
	return oldValue.DifficultyAtAttempt, nil
}

// ResetDifficultyAtAttempt resets all changes to the "difficulty_at_attempt" field.
func (m *AttemptEventMutation) ResetDifficultyAtAttempt() {
	m.difficulty_at_attempt = nil
}

// Where appends a list predicates to the AttemptEventMutation builder.
func (m *AttemptEventMutation) Where(ps ...predicate.AttemptEvent) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AttemptEventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AttemptEventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AttemptEvent, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AttemptEventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AttemptEventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AttemptEvent).
func (m *AttemptEventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AttemptEventMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.sequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	if m.timestamp != nil {
		fields = append(fields, attemptevent.FieldTimestamp)
	}
	if m.attempt_id != nil {
		fields = append(fields, attemptevent.FieldAttemptID)
	}
	if m.user_id != nil {
		fields = append(fields, attemptevent.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, attemptevent.FieldQuestionID)
	}
	if m.session_id != nil {
		fields = append(fields, attemptevent.FieldSessionID)
	}
	if m.topic_id != nil {
		fields = append(fields, attemptevent.FieldTopicID)
	}
	if m.correct != nil {
		fields = append(fields, attemptevent.FieldCorrect)
	}
	if m.competency_at_attempt != nil {
		fields = append(fields, attemptevent.FieldCompetencyAtAttempt)
	}
	if m.difficulty_at_attempt != nil {
		fields = append(fields, attemptevent.FieldDifficultyAtAttempt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AttemptEventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.Sequence()
	case attemptevent.FieldTimestamp:
		return m.Timestamp()
	case attemptevent.FieldAttemptID:
		return m.AttemptID()
	case attemptevent.FieldUserID:
		return m.UserID()
	case attemptevent.FieldQuestionID:
		return m.QuestionID()
	case attemptevent.FieldSessionID:
		return m.SessionID()
	case attemptevent.FieldTopicID:
		return m.TopicID()
	case attemptevent.FieldCorrect:
		return m.Correct()
	case attemptevent.FieldCompetencyAtAttempt:
		return m.CompetencyAtAttempt()
	case attemptevent.FieldDifficultyAtAttempt:
		return m.DifficultyAtAttempt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AttemptEventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case attemptevent.FieldSequence:
		return m.OldSequence(ctx)
	case attemptevent.FieldTimestamp:
		return m.OldTimestamp(ctx)
	case attemptevent.FieldAttemptID:
		return m.OldAttemptID(ctx)
	case attemptevent.FieldUserID:
		return m.OldUserID(ctx)
	case attemptevent.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case attemptevent.FieldSessionID:
		return m.OldSessionID(ctx)
	case attemptevent.FieldTopicID:
		return m.OldTopicID(ctx)
	case attemptevent.FieldCorrect:
		return m.OldCorrect(ctx)
	case attemptevent.FieldCompetencyAtAttempt:
		return m.OldCompetencyAtAttempt(ctx)
	case attemptevent.FieldDifficultyAtAttempt:
		return m.OldDifficultyAtAttempt(ctx)
	}
	return nil, fmt.Errorf("unknown AttemptEvent field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSequence(v)
		return nil
	case attemptevent.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	case attemptevent.FieldAttemptID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttemptID(v)
		return nil
	case attemptevent.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case attemptevent.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case attemptevent.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case attemptevent.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case attemptevent.FieldCorrect:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case attemptevent.FieldCompetencyAtAttempt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetencyAtAttempt(v)
		return nil
	case attemptevent.FieldDifficultyAtAttempt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifficultyAtAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AttemptEventMutation) AddedFields() []string {
	var fields []string
	if m.addsequence != nil {
		fields = append(fields, attemptevent.FieldSequence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AttemptEventMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case attemptevent.FieldSequence:
		return m.AddedSequence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AttemptEventMutation) AddField(name string, value ent.Value) error {
	switch name {
	case attemptevent.FieldSequence:
		v, ok := value.(int64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSequence(v)
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AttemptEventMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AttemptEventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AttemptEventMutation) ClearField(name string) error {
	return fmt.Errorf("unknown AttemptEvent nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AttemptEventMutation) ResetField(name string) error {
	switch name {
	case attemptevent.FieldSequence:
		m.ResetSequence()
		return nil
	case attemptevent.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	case attemptevent.FieldAttemptID:
		m.ResetAttemptID()
		return nil
	case attemptevent.FieldUserID:
		m.ResetUserID()
		return nil
	case attemptevent.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case attemptevent.FieldSessionID:
		m.ResetSessionID()
		return nil
	case attemptevent.FieldTopicID:
		m.ResetTopicID()
		return nil
	case attemptevent.FieldCorrect:
		m.ResetCorrect()
		return nil
	case attemptevent.FieldCompetencyAtAttempt:
		m.ResetCompetencyAtAttempt()
		return nil
	case attemptevent.FieldDifficultyAtAttempt:
		m.ResetDifficultyAtAttempt()
		return nil
	}
	return fmt.Errorf("unknown AttemptEvent field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AttemptEventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AttemptEventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AttemptEventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AttemptEventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AttemptEventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AttemptEventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AttemptEventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AttemptEventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown AttemptEvent edge %s", name)
}

// CompetencyRecordMutation represents an operation that mutates the CompetencyRecord nodes in the graph.
type CompetencyRecordMutation struct {
	config
	op              Op
	typ             string
	id              *int
	user_id         *string
	topic_id        *string
	score           *string
	attempts        *int
	addattempts     *int
	correct         *int
	addcorrect      *int
	incorrect       *int
	addincorrect    *int
	last_updated_at *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CompetencyRecord, error)
	predicates      []predicate.CompetencyRecord
}

var _ ent.Mutation = (*CompetencyRecordMutation)(nil)

// competencyrecordOption allows management of the mutation configuration using functional options.
type competencyrecordOption func(*CompetencyRecordMutation)

// newCompetencyRecordMutation creates new mutation for the CompetencyRecord entity.
func newCompetencyRecordMutation(c config, op Op, opts ...competencyrecordOption) *CompetencyRecordMutation {
	m := &CompetencyRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeCompetencyRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompetencyRecordID sets the ID field of the mutation.
func withCompetencyRecordID(id int) competencyrecordOption {
	return func(m *CompetencyRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *CompetencyRecord
		)
		m.oldValue = func(ctx context.Context) (*CompetencyRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompetencyRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompetencyRecord sets the old CompetencyRecord of the mutation.
func withCompetencyRecord(node *CompetencyRecord) competencyrecordOption {
	return func(m *CompetencyRecordMutation) {
		m.oldValue = func(context.Context) (*CompetencyRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompetencyRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompetencyRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompetencyRecordMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompetencyRecordMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompetencyRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *CompetencyRecordMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *CompetencyRecordMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *CompetencyRecordMutation) ResetUserID() {
	m.user_id = nil
}

// SetTopicID sets the "topic_id" field.
func (m *CompetencyRecordMutation) SetTopicID(s string) {
	m.topic_id = &s
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *CompetencyRecordMutation) TopicID() (r string, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldTopicID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *CompetencyRecordMutation) ResetTopicID() {
	m.topic_id = nil
}

// SetScore sets the "score" field.
func (m *CompetencyRecordMutation) SetScore(s string) {
	m.score = &s
}

// Score returns the value of the "score" field in the mutation.
func (m *CompetencyRecordMutation) Score() (r string, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldScore(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// ResetScore resets all changes to the "score" field.
func (m *CompetencyRecordMutation) ResetScore() {
	m.score = nil
}

// SetAttempts sets the "attempts" field.
func (m *CompetencyRecordMutation) SetAttempts(i int) {
	m.attempts = &i
	m.addattempts = nil
}

// Attempts returns the value of the "attempts" field in the mutation.
func (m *CompetencyRecordMutation) Attempts() (r int, exists bool) {
	v := m.attempts
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempts returns the old "attempts" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldAttempts(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempts: %w", err)
	}
	return oldValue.Attempts, nil
}

// AddAttempts adds i to the "attempts" field.
func (m *CompetencyRecordMutation) AddAttempts(i int) {
	if m.addattempts != nil {
		*m.addattempts += i
	} else {
		m.addattempts = &i
	}
}

// AddedAttempts returns the value that was added to the "attempts" field in this mutation.
func (m *CompetencyRecordMutation) AddedAttempts() (r int, exists bool) {
	v := m.addattempts
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempts resets all changes to the "attempts" field.
func (m *CompetencyRecordMutation) ResetAttempts() {
	m.attempts = nil
	m.addattempts = nil
}

// SetCorrect sets the "correct" field.
func (m *CompetencyRecordMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *CompetencyRecordMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *CompetencyRecordMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *CompetencyRecordMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *CompetencyRecordMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetIncorrect sets the "incorrect" field.
func (m *CompetencyRecordMutation) SetIncorrect(i int) {
	m.incorrect = &i
	m.addincorrect = nil
}

// Incorrect returns the value of the "incorrect" field in the mutation.
func (m *CompetencyRecordMutation) Incorrect() (r int, exists bool) {
	v := m.incorrect
	if v == nil {
		return
	}
	return *v, true
}

// OldIncorrect returns the old "incorrect" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldIncorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIncorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIncorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIncorrect: %w", err)
	}
	return oldValue.Incorrect, nil
}

// AddIncorrect adds i to the "incorrect" field.
func (m *CompetencyRecordMutation) AddIncorrect(i int) {
	if m.addincorrect != nil {
		*m.addincorrect += i
	} else {
		m.addincorrect = &i
	}
}

// AddedIncorrect returns the value that was added to the "incorrect" field in this mutation.
func (m *CompetencyRecordMutation) AddedIncorrect() (r int, exists bool) {
	v := m.addincorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetIncorrect resets all changes to the "incorrect" field.
func (m *CompetencyRecordMutation) ResetIncorrect() {
	m.incorrect = nil
	m.addincorrect = nil
}

// SetLastUpdatedAt sets the "last_updated_at" field.
func (m *CompetencyRecordMutation) SetLastUpdatedAt(t time.Time) {
	m.last_updated_at = &t
}

// LastUpdatedAt returns the value of the "last_updated_at" field in the mutation.
func (m *CompetencyRecordMutation) LastUpdatedAt() (r time.Time, exists bool) {
	v := m.last_updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastUpdatedAt returns the old "last_updated_at" field's value of the CompetencyRecord entity.
// If the CompetencyRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetencyRecordMutation) OldLastUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastUpdatedAt: %w", err)
	}
	return oldValue.LastUpdatedAt, nil
}

// ResetLastUpdatedAt resets all changes to the "last_updated_at" field.
func (m *CompetencyRecordMutation) ResetLastUpdatedAt() {
	m.last_updated_at = nil
}

// Where appends a list predicates to the CompetencyRecordMutation builder.
func (m *CompetencyRecordMutation) Where(ps ...predicate.CompetencyRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompetencyRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompetencyRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompetencyRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompetencyRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompetencyRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompetencyRecord).
func (m *CompetencyRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompetencyRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.user_id != nil {
		fields = append(fields, competencyrecord.FieldUserID)
	}
	if m.topic_id != nil {
		fields = append(fields, competencyrecord.FieldTopicID)
	}
	if m.score != nil {
		fields = append(fields, competencyrecord.FieldScore)
	}
	if m.attempts != nil {
		fields = append(fields, competencyrecord.FieldAttempts)
	}
	if m.correct != nil {
		fields = append(fields, competencyrecord.FieldCorrect)
	}
	if m.incorrect != nil {
		fields = append(fields, competencyrecord.FieldIncorrect)
	}
	if m.last_updated_at != nil {
		fields = append(fields, competencyrecord.FieldLastUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompetencyRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case competencyrecord.FieldUserID:
		return m.UserID()
	case competencyrecord.FieldTopicID:
		return m.TopicID()
	case competencyrecord.FieldScore:
		return m.Score()
	case competencyrecord.FieldAttempts:
		return m.Attempts()
	case competencyrecord.FieldCorrect:
		return m.Correct()
	case competencyrecord.FieldIncorrect:
		return m.Incorrect()
	case competencyrecord.FieldLastUpdatedAt:
		return m.LastUpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompetencyRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case competencyrecord.FieldUserID:
		return m.OldUserID(ctx)
	case competencyrecord.FieldTopicID:
		return m.OldTopicID(ctx)
	case competencyrecord.FieldScore:
		return m.OldScore(ctx)
	case competencyrecord.FieldAttempts:
		return m.OldAttempts(ctx)
	case competencyrecord.FieldCorrect:
		return m.OldCorrect(ctx)
	case competencyrecord.FieldIncorrect:
		return m.OldIncorrect(ctx)
	case competencyrecord.FieldLastUpdatedAt:
		return m.OldLastUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompetencyRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetencyRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case competencyrecord.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case competencyrecord.FieldTopicID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case competencyrecord.FieldScore:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case competencyrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempts(v)
		return nil
	case competencyrecord.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case competencyrecord.FieldIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIncorrect(v)
		return nil
	case competencyrecord.FieldLastUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompetencyRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompetencyRecordMutation) AddedFields() []string {
	var fields []string
	if m.addattempts != nil {
		fields = append(fields, competencyrecord.FieldAttempts)
	}
	if m.addcorrect != nil {
		fields = append(fields, competencyrecord.FieldCorrect)
	}
	if m.addincorrect != nil {
		fields = append(fields, competencyrecord.FieldIncorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompetencyRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case competencyrecord.FieldAttempts:
		return m.AddedAttempts()
	case competencyrecord.FieldCorrect:
		return m.AddedCorrect()
	case competencyrecord.FieldIncorrect:
		return m.AddedIncorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetencyRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case competencyrecord.FieldAttempts:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempts(v)
		return nil
	case competencyrecord.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	case competencyrecord.FieldIncorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIncorrect(v)
		return nil
	}
	return fmt.Errorf("unknown CompetencyRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompetencyRecordMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompetencyRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompetencyRecordMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CompetencyRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompetencyRecordMutation) ResetField(name string) error {
	switch name {
	case competencyrecord.FieldUserID:
		m.ResetUserID()
		return nil
	case competencyrecord.FieldTopicID:
		m.ResetTopicID()
		return nil
	case competencyrecord.FieldScore:
		m.ResetScore()
		return nil
	case competencyrecord.FieldAttempts:
		m.ResetAttempts()
		return nil
	case competencyrecord.FieldCorrect:
		m.ResetCorrect()
		return nil
	case competencyrecord.FieldIncorrect:
		m.ResetIncorrect()
		return nil
	case competencyrecord.FieldLastUpdatedAt:
		m.ResetLastUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompetencyRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompetencyRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompetencyRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompetencyRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompetencyRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompetencyRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompetencyRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompetencyRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompetencyRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompetencyRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompetencyRecord edge %s", name)
}

// ExamSessionMutation represents an operation that mutates the ExamSession nodes in the graph.
type ExamSessionMutation struct {
	config
	op              Op
	typ             string
	id              *int
	session_id      *string
	user_id         *string
	course_id       *string
	kind            *string
	questions       *[]string
	appendquestions []string
	total           *int
	addtotal        *int
	correct         *int
	addcorrect      *int
	started_at      *time.Time
	completed_at    *time.Time
	completed       *bool
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*ExamSession, error)
	predicates      []predicate.ExamSession
}

var _ ent.Mutation = (*ExamSessionMutation)(nil)

// examsessionOption allows management of the mutation configuration using functional options.
type examsessionOption func(*ExamSessionMutation)

// newExamSessionMutation creates new mutation for the ExamSession entity.
func newExamSessionMutation(c config, op Op, opts ...examsessionOption) *ExamSessionMutation {
	m := &ExamSessionMutation{
		config:        c,
		op:            op,
		typ:           TypeExamSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExamSessionID sets the ID field of the mutation.
func withExamSessionID(id int) examsessionOption {
	return func(m *ExamSessionMutation) {
		var (
			err   error
			once  sync.Once
			value *ExamSession
		)
		m.oldValue = func(ctx context.Context) (*ExamSession, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExamSession.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExamSession sets the old ExamSession of the mutation.
func withExamSession(node *ExamSession) examsessionOption {
	return func(m *ExamSessionMutation) {
		m.oldValue = func(context.Context) (*ExamSession, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExamSessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExamSessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExamSessionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExamSessionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExamSession.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSessionID sets the "session_id" field.
func (m *ExamSessionMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ExamSessionMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ExamSessionMutation) ResetSessionID() {
	m.session_id = nil
}

// SetUserID sets the "user_id" field.
func (m *ExamSessionMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExamSessionMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExamSessionMutation) ResetUserID() {
	m.user_id = nil
}

// SetCourseID sets the "course_id" field.
func (m *ExamSessionMutation) SetCourseID(s string) {
	m.course_id = &s
}

// CourseID returns the value of the "course_id" field in the mutation.
func (m *ExamSessionMutation) CourseID() (r string, exists bool) {
	v := m.course_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCourseID returns the old "course_id" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldCourseID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCourseID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCourseID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCourseID: %w", err)
	}
	return oldValue.CourseID, nil
}

// ResetCourseID resets all changes to the "course_id" field.
func (m *ExamSessionMutation) ResetCourseID() {
	m.course_id = nil
}

// SetKind sets the "kind" field.
func (m *ExamSessionMutation) SetKind(s string) {
	m.kind = &s
}

// Kind returns the value of the "kind" field in the mutation.
func (m *ExamSessionMutation) Kind() (r string, exists bool) {
	v := m.kind
	if v == nil {
		return
	}
	return *v, true
}

// OldKind returns the old "kind" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldKind(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKind is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKind requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKind: %w", err)
	}
	return oldValue.Kind, nil
}

// ResetKind resets all changes to the "kind" field.
func (m *ExamSessionMutation) ResetKind() {
	m.kind = nil
}

// SetQuestions sets the "questions" field.
func (m *ExamSessionMutation) SetQuestions(s []string) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *ExamSessionMutation) Questions() (r []string, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *ExamSessionMutation) AppendQuestions(s []string) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *ExamSessionMutation) AppendedQuestions() ([]string, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ResetQuestions resets all changes to the "questions" field.
func (m *ExamSessionMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
}

// SetTotal sets the "total" field.
func (m *ExamSessionMutation) SetTotal(i int) {
	m.total = &i
	m.addtotal = nil
}

// Total returns the value of the "total" field in the mutation.
func (m *ExamSessionMutation) Total() (r int, exists bool) {
	v := m.total
	if v == nil {
		return
	}
	return *v, true
}

// OldTotal returns the old "total" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldTotal(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotal is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotal requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotal: %w", err)
	}
	return oldValue.Total, nil
}

// AddTotal adds i to the "total" field.
func (m *ExamSessionMutation) AddTotal(i int) {
	if m.addtotal != nil {
		*m.addtotal += i
	} else {
		m.addtotal = &i
	}
}

// AddedTotal returns the value that was added to the "total" field in this mutation.
func (m *ExamSessionMutation) AddedTotal() (r int, exists bool) {
	v := m.addtotal
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotal resets all changes to the "total" field.
func (m *ExamSessionMutation) ResetTotal() {
	m.total = nil
	m.addtotal = nil
}

// SetCorrect sets the "correct" field.
func (m *ExamSessionMutation) SetCorrect(i int) {
	m.correct = &i
	m.addcorrect = nil
}

// Correct returns the value of the "correct" field in the mutation.
func (m *ExamSessionMutation) Correct() (r int, exists bool) {
	v := m.correct
	if v == nil {
		return
	}
	return *v, true
}

// OldCorrect returns the old "correct" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldCorrect(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCorrect is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCorrect requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCorrect: %w", err)
	}
	return oldValue.Correct, nil
}

// AddCorrect adds i to the "correct" field.
func (m *ExamSessionMutation) AddCorrect(i int) {
	if m.addcorrect != nil {
		*m.addcorrect += i
	} else {
		m.addcorrect = &i
	}
}

// AddedCorrect returns the value that was added to the "correct" field in this mutation.
func (m *ExamSessionMutation) AddedCorrect() (r int, exists bool) {
	v := m.addcorrect
	if v == nil {
		return
	}
	return *v, true
}

// ResetCorrect resets all changes to the "correct" field.
func (m *ExamSessionMutation) ResetCorrect() {
	m.correct = nil
	m.addcorrect = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExamSessionMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExamSessionMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExamSessionMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetCompletedAt sets the "completed_at" field.
func (m *ExamSessionMutation) SetCompletedAt(t time.Time) {
	m.completed_at = &t
}

// CompletedAt returns the value of the "completed_at" field in the mutation.
func (m *ExamSessionMutation) CompletedAt() (r time.Time, exists bool) {
	v := m.completed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCompletedAt returns the old "completed_at" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldCompletedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompletedAt: %w", err)
	}
	return oldValue.CompletedAt, nil
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (m *ExamSessionMutation) ClearCompletedAt() {
	m.completed_at = nil
	m.clearedFields[examsession.FieldCompletedAt] = struct{}{}
}

// CompletedAtCleared returns if the "completed_at" field was cleared in this mutation.
func (m *ExamSessionMutation) CompletedAtCleared() bool {
	_, ok := m.clearedFields[examsession.FieldCompletedAt]
	return ok
}

// ResetCompletedAt resets all changes to the "completed_at" field.
func (m *ExamSessionMutation) ResetCompletedAt() {
	m.completed_at = nil
	delete(m.clearedFields, examsession.FieldCompletedAt)
}

// SetCompleted sets the "completed" field.
func (m *ExamSessionMutation) SetCompleted(b bool) {
	m.completed = &b
}

// Completed returns the value of the "completed" field in the mutation.
func (m *ExamSessionMutation) Completed() (r bool, exists bool) {
	v := m.completed
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleted returns the old "completed" field's value of the ExamSession entity.
// If the ExamSession object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExamSessionMutation) OldCompleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleted: %w", err)
	}
	return oldValue.Completed, nil
}

// ResetCompleted resets all changes to the "completed" field.
func (m *ExamSessionMutation) ResetCompleted() {
	m.completed = nil
}

// Where appends a list predicates to the ExamSessionMutation builder.
func (m *ExamSessionMutation) Where(ps ...predicate.ExamSession) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExamSessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExamSessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExamSession, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExamSessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExamSessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExamSession).
func (m *ExamSessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExamSessionMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.session_id != nil {
		fields = append(fields, examsession.FieldSessionID)
	}
	if m.user_id != nil {
		fields = append(fields, examsession.FieldUserID)
	}
	if m.course_id != nil {
		fields = append(fields, examsession.FieldCourseID)
	}
	if m.kind != nil {
		fields = append(fields, examsession.FieldKind)
	}
	if m.questions != nil {
		fields = append(fields, examsession.FieldQuestions)
	}
	if m.total != nil {
		fields = append(fields, examsession.FieldTotal)
	}
	if m.correct != nil {
		fields = append(fields, examsession.FieldCorrect)
	}
	if m.started_at != nil {
		fields = append(fields, examsession.FieldStartedAt)
	}
	if m.completed_at != nil {
		fields = append(fields, examsession.FieldCompletedAt)
	}
	if m.completed != nil {
		fields = append(fields, examsession.FieldCompleted)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExamSessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case examsession.FieldSessionID:
		return m.SessionID()
	case examsession.FieldUserID:
		return m.UserID()
	case examsession.FieldCourseID:
		return m.CourseID()
	case examsession.FieldKind:
		return m.Kind()
	case examsession.FieldQuestions:
		return m.Questions()
	case examsession.FieldTotal:
		return m.Total()
	case examsession.FieldCorrect:
		return m.Correct()
	case examsession.FieldStartedAt:
		return m.StartedAt()
	case examsession.FieldCompletedAt:
		return m.CompletedAt()
	case examsession.FieldCompleted:
		return m.Completed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExamSessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case examsession.FieldSessionID:
		return m.OldSessionID(ctx)
	case examsession.FieldUserID:
		return m.OldUserID(ctx)
	case examsession.FieldCourseID:
		return m.OldCourseID(ctx)
	case examsession.FieldKind:
		return m.OldKind(ctx)
	case examsession.FieldQuestions:
		return m.OldQuestions(ctx)
	case examsession.FieldTotal:
		return m.OldTotal(ctx)
	case examsession.FieldCorrect:
		return m.OldCorrect(ctx)
	case examsession.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case examsession.FieldCompletedAt:
		return m.OldCompletedAt(ctx)
	case examsession.FieldCompleted:
		return m.OldCompleted(ctx)
	}
	return nil, fmt.Errorf("unknown ExamSession field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamSessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case examsession.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case examsession.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case examsession.FieldCourseID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCourseID(v)
		return nil
	case examsession.FieldKind:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKind(v)
		return nil
	case examsession.FieldQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case examsession.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotal(v)
		return nil
	case examsession.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCorrect(v)
		return nil
	case examsession.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case examsession.FieldCompletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompletedAt(v)
		return nil
	case examsession.FieldCompleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleted(v)
		return nil
	}
	return fmt.Errorf("unknown ExamSession field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExamSessionMutation) AddedFields() []string {
	var fields []string
	if m.addtotal != nil {
		fields = append(fields, examsession.FieldTotal)
	}
	if m.addcorrect != nil {
		fields = append(fields, examsession.FieldCorrect)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExamSessionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case examsession.FieldTotal:
		return m.AddedTotal()
	case examsession.FieldCorrect:
		return m.AddedCorrect()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExamSessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case examsession.FieldTotal:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotal(v)
		return nil
	case examsession.FieldCorrect:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCorrect(v)
		return nil
	}
	return fmt.Errorf("unknown ExamSession numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExamSessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(examsession.FieldCompletedAt) {
		fields = append(fields, examsession.FieldCompletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExamSessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExamSessionMutation) ClearField(name string) error {
	switch name {
	case examsession.FieldCompletedAt:
		m.ClearCompletedAt()
		return nil
	}
	return fmt.Errorf("unknown ExamSession nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExamSessionMutation) ResetField(name string) error {
	switch name {
	case examsession.FieldSessionID:
		m.ResetSessionID()
		return nil
	case examsession.FieldUserID:
		m.ResetUserID()
		return nil
	case examsession.FieldCourseID:
		m.ResetCourseID()
		return nil
	case examsession.FieldKind:
		m.ResetKind()
		return nil
	case examsession.FieldQuestions:
		m.ResetQuestions()
		return nil
	case examsession.FieldTotal:
		m.ResetTotal()
		return nil
	case examsession.FieldCorrect:
		m.ResetCorrect()
		return nil
	case examsession.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case examsession.FieldCompletedAt:
		m.ResetCompletedAt()
		return nil
	case examsession.FieldCompleted:
		m.ResetCompleted()
		return nil
	}
	return fmt.Errorf("unknown ExamSession field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExamSessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExamSessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExamSessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExamSessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExamSessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExamSessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExamSessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ExamSession unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExamSessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ExamSession edge %s", name)
}

// ReviewCardMutation represents an operation that mutates the ReviewCard nodes in the graph.
type ReviewCardMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	user_id               *string
	question_id           *string
	easiness              *string
	repetitions           *int
	addrepetitions        *int
	interval_days         *int
	addinterval_days      *int
	last_reviewed_at      *time.Time
	next_review_at        *time.Time
	total_reviews         *int
	addtotal_reviews      *int
	successful_reviews    *int
	addsuccessful_reviews *int
	clearedFields         map[string]struct{}
	done                  bool
	oldValue              func(context.Context) (*ReviewCard, error)
	predicates            []predicate.ReviewCard
}

var _ ent.Mutation = (*ReviewCardMutation)(nil)

// reviewcardOption allows management of the mutation configuration using functional options.
type reviewcardOption func(*ReviewCardMutation)

// newReviewCardMutation creates new mutation for the ReviewCard entity.
func newReviewCardMutation(c config, op Op, opts ...reviewcardOption) *ReviewCardMutation {
	m := &ReviewCardMutation{
		config:        c,
		op:            op,
		typ:           TypeReviewCard,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withReviewCardID sets the ID field of the mutation.
func withReviewCardID(id int) reviewcardOption {
	return func(m *ReviewCardMutation) {
		var (
			err   error
			once  sync.Once
			value *ReviewCard
		)
		m.oldValue = func(ctx context.Context) (*ReviewCard, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ReviewCard.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withReviewCard sets the old ReviewCard of the mutation.
func withReviewCard(node *ReviewCard) reviewcardOption {
	return func(m *ReviewCardMutation) {
		m.oldValue = func(context.Context) (*ReviewCard, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ReviewCardMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ReviewCardMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ReviewCardMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ReviewCardMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ReviewCard.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ReviewCardMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ReviewCardMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ReviewCardMutation) ResetUserID() {
	m.user_id = nil
}

// SetQuestionID sets the "question_id" field.
func (m *ReviewCardMutation) SetQuestionID(s string) {
	m.question_id = &s
}

// QuestionID returns the value of the "question_id" field in the mutation.
func (m *ReviewCardMutation) QuestionID() (r string, exists bool) {
	v := m.question_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestionID returns the old "question_id" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldQuestionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestionID: %w", err)
	}
	return oldValue.QuestionID, nil
}

// ResetQuestionID resets all changes to the "question_id" field.
func (m *ReviewCardMutation) ResetQuestionID() {
	m.question_id = nil
}

// SetEasiness sets the "easiness" field.
func (m *ReviewCardMutation) SetEasiness(s string) {
	m.easiness = &s
}

// Easiness returns the value of the "easiness" field in the mutation.
func (m *ReviewCardMutation) Easiness() (r string, exists bool) {
	v := m.easiness
	if v == nil {
		return
	}
	return *v, true
}

// OldEasiness returns the old "easiness" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldEasiness(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEasiness is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEasiness requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEasiness: %w", err)
	}
	return oldValue.Easiness, nil
}

// ResetEasiness resets all changes to the "easiness" field.
func (m *ReviewCardMutation) ResetEasiness() {
	m.easiness = nil
}

// SetRepetitions sets the "repetitions" field.
func (m *ReviewCardMutation) SetRepetitions(i int) {
	m.repetitions = &i
	m.addrepetitions = nil
}

// Repetitions returns the value of the "repetitions" field in the mutation.
func (m *ReviewCardMutation) Repetitions() (r int, exists bool) {
	v := m.repetitions
	if v == nil {
		return
	}
	return *v, true
}

// OldRepetitions returns the old "repetitions" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldRepetitions(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRepetitions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRepetitions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRepetitions: %w", err)
	}
	return oldValue.Repetitions, nil
}

// AddRepetitions adds i to the "repetitions" field.
func (m *ReviewCardMutation) AddRepetitions(i int) {
	if m.addrepetitions != nil {
		*m.addrepetitions += i
	} else {
		m.addrepetitions = &i
	}
}

// AddedRepetitions returns the value that was added to the "repetitions" field in this mutation.
func (m *ReviewCardMutation) AddedRepetitions() (r int, exists bool) {
	v := m.addrepetitions
	if v == nil {
		return
	}
	return *v, true
}

// ResetRepetitions resets all changes to the "repetitions" field.
func (m *ReviewCardMutation) ResetRepetitions() {
	m.repetitions = nil
	m.addrepetitions = nil
}

// SetIntervalDays sets the "interval_days" field.
func (m *ReviewCardMutation) SetIntervalDays(i int) {
	m.interval_days = &i
	m.addinterval_days = nil
}

// IntervalDays returns the value of the "interval_days" field in the mutation.
func (m *ReviewCardMutation) IntervalDays() (r int, exists bool) {
	v := m.interval_days
	if v == nil {
		return
	}
	return *v, true
}

// OldIntervalDays returns the old "interval_days" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldIntervalDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIntervalDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIntervalDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIntervalDays: %w", err)
	}
	return oldValue.IntervalDays, nil
}

// AddIntervalDays adds i to the "interval_days" field.
func (m *ReviewCardMutation) AddIntervalDays(i int) {
	if m.addinterval_days != nil {
		*m.addinterval_days += i
	} else {
		m.addinterval_days = &i
	}
}

// AddedIntervalDays returns the value that was added to the "interval_days" field in this mutation.
func (m *ReviewCardMutation) AddedIntervalDays() (r int, exists bool) {
	v := m.addinterval_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetIntervalDays resets all changes to the "interval_days" field.
func (m *ReviewCardMutation) ResetIntervalDays() {
	m.interval_days = nil
	m.addinterval_days = nil
}

// SetLastReviewedAt sets the "last_reviewed_at" field.
func (m *ReviewCardMutation) SetLastReviewedAt(t time.Time) {
	m.last_reviewed_at = &t
}

// LastReviewedAt returns the value of the "last_reviewed_at" field in the mutation.
func (m *ReviewCardMutation) LastReviewedAt() (r time.Time, exists bool) {
	v := m.last_reviewed_at
	if v == nil {
		return
	}
	return *v, true
}

// OldLastReviewedAt returns the old "last_reviewed_at" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldLastReviewedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastReviewedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastReviewedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastReviewedAt: %w", err)
	}
	return oldValue.LastReviewedAt, nil
}

// ResetLastReviewedAt resets all changes to the "last_reviewed_at" field.
func (m *ReviewCardMutation) ResetLastReviewedAt() {
	m.last_reviewed_at = nil
}

// SetNextReviewAt sets the "next_review_at" field.
func (m *ReviewCardMutation) SetNextReviewAt(t time.Time) {
	m.next_review_at = &t
}

// NextReviewAt returns the value of the "next_review_at" field in the mutation.
func (m *ReviewCardMutation) NextReviewAt() (r time.Time, exists bool) {
	v := m.next_review_at
	if v == nil {
		return
	}
	return *v, true
}

// OldNextReviewAt returns the old "next_review_at" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldNextReviewAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNextReviewAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNextReviewAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNextReviewAt: %w", err)
	}
	return oldValue.NextReviewAt, nil
}

// ResetNextReviewAt resets all changes to the "next_review_at" field.
func (m *ReviewCardMutation) ResetNextReviewAt() {
	m.next_review_at = nil
}

// SetTotalReviews sets the "total_reviews" field.
func (m *ReviewCardMutation) SetTotalReviews(i int) {
	m.total_reviews = &i
	m.addtotal_reviews = nil
}

// TotalReviews returns the value of the "total_reviews" field in the mutation.
func (m *ReviewCardMutation) TotalReviews() (r int, exists bool) {
	v := m.total_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalReviews returns the old "total_reviews" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldTotalReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalReviews: %w", err)
	}
	return oldValue.TotalReviews, nil
}

// AddTotalReviews adds i to the "total_reviews" field.
func (m *ReviewCardMutation) AddTotalReviews(i int) {
	if m.addtotal_reviews != nil {
		*m.addtotal_reviews += i
	} else {
		m.addtotal_reviews = &i
	}
}

// AddedTotalReviews returns the value that was added to the "total_reviews" field in this mutation.
func (m *ReviewCardMutation) AddedTotalReviews() (r int, exists bool) {
	v := m.addtotal_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalReviews resets all changes to the "total_reviews" field.
func (m *ReviewCardMutation) ResetTotalReviews() {
	m.total_reviews = nil
	m.addtotal_reviews = nil
}

// SetSuccessfulReviews sets the "successful_reviews" field.
func (m *ReviewCardMutation) SetSuccessfulReviews(i int) {
	m.successful_reviews = &i
	m.addsuccessful_reviews = nil
}

// SuccessfulReviews returns the value of the "successful_reviews" field in the mutation.
func (m *ReviewCardMutation) SuccessfulReviews() (r int, exists bool) {
	v := m.successful_reviews
	if v == nil {
		return
	}
	return *v, true
}

// OldSuccessfulReviews returns the old "successful_reviews" field's value of the ReviewCard entity.
// If the ReviewCard object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ReviewCardMutation) OldSuccessfulReviews(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSuccessfulReviews is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSuccessfulReviews requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSuccessfulReviews: %w", err)
	}
	return oldValue.SuccessfulReviews, nil
}

// AddSuccessfulReviews adds i to the "successful_reviews" field.
func (m *ReviewCardMutation) AddSuccessfulReviews(i int) {
	if m.addsuccessful_reviews != nil {
		*m.addsuccessful_reviews += i
	} else {
		m.addsuccessful_reviews = &i
	}
}

// AddedSuccessfulReviews returns the value that was added to the "successful_reviews" field in this mutation.
func (m *ReviewCardMutation) AddedSuccessfulReviews() (r int, exists bool) {
	v := m.addsuccessful_reviews
	if v == nil {
		return
	}
	return *v, true
}

// ResetSuccessfulReviews resets all changes to the "successful_reviews" field.
func (m *ReviewCardMutation) ResetSuccessfulReviews() {
	m.successful_reviews = nil
	m.addsuccessful_reviews = nil
}

// Where appends a list predicates to the ReviewCardMutation builder.
func (m *ReviewCardMutation) Where(ps ...predicate.ReviewCard) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ReviewCardMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ReviewCardMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ReviewCard, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ReviewCardMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ReviewCardMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ReviewCard).
func (m *ReviewCardMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ReviewCardMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, reviewcard.FieldUserID)
	}
	if m.question_id != nil {
		fields = append(fields, reviewcard.FieldQuestionID)
	}
	if m.easiness != nil {
		fields = append(fields, reviewcard.FieldEasiness)
	}
	if m.repetitions != nil {
		fields = append(fields, reviewcard.FieldRepetitions)
	}
	if m.interval_days != nil {
		fields = append(fields, reviewcard.FieldIntervalDays)
	}
	if m.last_reviewed_at != nil {
		fields = append(fields, reviewcard.FieldLastReviewedAt)
	}
	if m.next_review_at != nil {
		fields = append(fields, reviewcard.FieldNextReviewAt)
	}
	if m.total_reviews != nil {
		fields = append(fields, reviewcard.FieldTotalReviews)
	}
	if m.successful_reviews != nil {
		fields = append(fields, reviewcard.FieldSuccessfulReviews)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ReviewCardMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case reviewcard.FieldUserID:
		return m.UserID()
	case reviewcard.FieldQuestionID:
		return m.QuestionID()
	case reviewcard.FieldEasiness:
		return m.Easiness()
	case reviewcard.FieldRepetitions:
		return m.Repetitions()
	case reviewcard.FieldIntervalDays:
		return m.IntervalDays()
	case reviewcard.FieldLastReviewedAt:
		return m.LastReviewedAt()
	case reviewcard.FieldNextReviewAt:
		return m.NextReviewAt()
	case reviewcard.FieldTotalReviews:
		return m.TotalReviews()
	case reviewcard.FieldSuccessfulReviews:
		return m.SuccessfulReviews()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ReviewCardMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case reviewcard.FieldUserID:
		return m.OldUserID(ctx)
	case reviewcard.FieldQuestionID:
		return m.OldQuestionID(ctx)
	case reviewcard.FieldEasiness:
		return m.OldEasiness(ctx)
	case reviewcard.FieldRepetitions:
		return m.OldRepetitions(ctx)
	case reviewcard.FieldIntervalDays:
		return m.OldIntervalDays(ctx)
	case reviewcard.FieldLastReviewedAt:
		return m.OldLastReviewedAt(ctx)
	case reviewcard.FieldNextReviewAt:
		return m.OldNextReviewAt(ctx)
	case reviewcard.FieldTotalReviews:
		return m.OldTotalReviews(ctx)
	case reviewcard.FieldSuccessfulReviews:
		return m.OldSuccessfulReviews(ctx)
	}
	return nil, fmt.Errorf("unknown ReviewCard field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewCardMutation) SetField(name string, value ent.Value) error {
	switch name {
	case reviewcard.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case reviewcard.FieldQuestionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestionID(v)
		return nil
	case reviewcard.FieldEasiness:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEasiness(v)
		return nil
	case reviewcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRepetitions(v)
		return nil
	case reviewcard.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIntervalDays(v)
		return nil
	case reviewcard.FieldLastReviewedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastReviewedAt(v)
		return nil
	case reviewcard.FieldNextReviewAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNextReviewAt(v)
		return nil
	case reviewcard.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalReviews(v)
		return nil
	case reviewcard.FieldSuccessfulReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSuccessfulReviews(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewCard field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ReviewCardMutation) AddedFields() []string {
	var fields []string
	if m.addrepetitions != nil {
		fields = append(fields, reviewcard.FieldRepetitions)
	}
	if m.addinterval_days != nil {
		fields = append(fields, reviewcard.FieldIntervalDays)
	}
	if m.addtotal_reviews != nil {
		fields = append(fields, reviewcard.FieldTotalReviews)
	}
	if m.addsuccessful_reviews != nil {
		fields = append(fields, reviewcard.FieldSuccessfulReviews)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ReviewCardMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case reviewcard.FieldRepetitions:
		return m.AddedRepetitions()
	case reviewcard.FieldIntervalDays:
		return m.AddedIntervalDays()
	case reviewcard.FieldTotalReviews:
		return m.AddedTotalReviews()
	case reviewcard.FieldSuccessfulReviews:
		return m.AddedSuccessfulReviews()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ReviewCardMutation) AddField(name string, value ent.Value) error {
	switch name {
	case reviewcard.FieldRepetitions:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRepetitions(v)
		return nil
	case reviewcard.FieldIntervalDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIntervalDays(v)
		return nil
	case reviewcard.FieldTotalReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalReviews(v)
		return nil
	case reviewcard.FieldSuccessfulReviews:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSuccessfulReviews(v)
		return nil
	}
	return fmt.Errorf("unknown ReviewCard numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ReviewCardMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ReviewCardMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ReviewCardMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ReviewCard nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ReviewCardMutation) ResetField(name string) error {
	switch name {
	case reviewcard.FieldUserID:
		m.ResetUserID()
		return nil
	case reviewcard.FieldQuestionID:
		m.ResetQuestionID()
		return nil
	case reviewcard.FieldEasiness:
		m.ResetEasiness()
		return nil
	case reviewcard.FieldRepetitions:
		m.ResetRepetitions()
		return nil
	case reviewcard.FieldIntervalDays:
		m.ResetIntervalDays()
		return nil
	case reviewcard.FieldLastReviewedAt:
		m.ResetLastReviewedAt()
		return nil
	case reviewcard.FieldNextReviewAt:
		m.ResetNextReviewAt()
		return nil
	case reviewcard.FieldTotalReviews:
		m.ResetTotalReviews()
		return nil
	case reviewcard.FieldSuccessfulReviews:
		m.ResetSuccessfulReviews()
		return nil
	}
	return fmt.Errorf("unknown ReviewCard field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ReviewCardMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ReviewCardMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ReviewCardMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ReviewCardMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ReviewCardMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ReviewCardMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ReviewCardMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ReviewCard unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ReviewCardMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ReviewCard edge %s", name)
}
