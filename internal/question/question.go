// Package question defines the question model and the question-bank
// provider boundary the selection components consume.
package question

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/numeric"
)

// Question is a single authored exam question. Questions are immutable
// once authored; only the active flag and difficulty are edited, and that
// happens outside this engine.
type Question struct {
	ID             string           `json:"id"`
	TopicID        string           `json:"topic_id"`
	Difficulty     decimal.Decimal  `json:"difficulty"` // in [0, 1], scale 4
	Discrimination *decimal.Decimal `json:"discrimination,omitempty"` // reserved for a future two-parameter model
	Active         bool             `json:"active"`
}

// Bank is the question-bank provider boundary. Implementations return
// only what the selectors need: active questions, scoped by topic or
// course-wide.
type Bank interface {
	// ActiveByTopic returns the active questions belonging to a topic.
	ActiveByTopic(topicID string) []Question

	// ActiveByCourse returns every active question in the bank.
	ActiveByCourse() []Question

	// Get returns a question by id.
	Get(id string) (Question, bool)
}

// StaticBank is an in-memory Bank backed by a fixed slice, typically
// built from the course configuration file.
type StaticBank struct {
	byID    map[string]Question
	byTopic map[string][]Question
	ordered []Question
}

// NewStaticBank builds a bank from authored questions. Difficulty outside
// [0, 1] or a duplicate id is an authoring error and fails construction.
func NewStaticBank(questions []Question) (*StaticBank, error) {
	b := &StaticBank{
		byID:    make(map[string]Question, len(questions)),
		byTopic: make(map[string][]Question),
	}
	for _, q := range questions {
		if q.ID == "" || q.TopicID == "" {
			return nil, fmt.Errorf("question %q: missing id or topic", q.ID)
		}
		if !numeric.InUnitInterval(q.Difficulty) {
			return nil, fmt.Errorf("question %q: difficulty %s outside [0, 1]", q.ID, q.Difficulty)
		}
		if _, dup := b.byID[q.ID]; dup {
			return nil, fmt.Errorf("duplicate question id %q", q.ID)
		}
		b.byID[q.ID] = q
		b.ordered = append(b.ordered, q)
		if q.Active {
			b.byTopic[q.TopicID] = append(b.byTopic[q.TopicID], q)
		}
	}
	return b, nil
}

// ActiveByTopic implements Bank.
func (b *StaticBank) ActiveByTopic(topicID string) []Question {
	qs := b.byTopic[topicID]
	out := make([]Question, len(qs))
	copy(out, qs)
	return out
}

// ActiveByCourse implements Bank.
func (b *StaticBank) ActiveByCourse() []Question {
	var out []Question
	for _, q := range b.ordered {
		if q.Active {
			out = append(out, q)
		}
	}
	return out
}

// Get implements Bank.
func (b *StaticBank) Get(id string) (Question, bool) {
	q, ok := b.byID[id]
	return q, ok
}

// Len returns the number of questions, active or not.
func (b *StaticBank) Len() int {
	return len(b.ordered)
}
