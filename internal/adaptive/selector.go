// Package adaptive picks the next best question for a learner: practice
// questions near the weakest topic's competency, and difficulty-stratified
// diagnostic batches.
package adaptive

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/numeric"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/sampling"
)

// ErrNoQuestionAvailable signals that every fallback is exhausted. It is
// a normal condition (the learner has seen everything eligible), not a
// configuration error.
var ErrNoQuestionAvailable = errors.New("no question available")

// ErrNoCompetencyRecords is returned when the user has no initialized
// topics to select against.
var ErrNoCompetencyRecords = errors.New("no competency records for user")

// DefaultWindow is the half-width of the difficulty window around the
// weakest topic's score.
var DefaultWindow = decimal.RequireFromString("0.10")

// Selector picks practice and diagnostic questions.
type Selector struct {
	records competency.RecordRepo
	bank    question.Bank
	src     sampling.Source
	window  decimal.Decimal
}

// NewSelector creates a selector. window controls the difficulty band
// around the target; pass DefaultWindow outside tests.
func NewSelector(records competency.RecordRepo, bank question.Bank, src sampling.Source, window decimal.Decimal) *Selector {
	return &Selector{records: records, bank: bank, src: src, window: window}
}

// WeakestTopic returns the course topic with the lowest competency score
// among the user's records. Ties break on the lowest topic ordinal, then
// topic id, so the result is deterministic.
func (s *Selector) WeakestTopic(ctx context.Context, userID string, c *course.Course) (course.Topic, competency.Record, error) {
	recs, err := s.records.ListByUser(ctx, userID)
	if err != nil {
		return course.Topic{}, competency.Record{}, fmt.Errorf("list records: %w", err)
	}

	type candidate struct {
		topic course.Topic
		rec   competency.Record
	}
	var candidates []candidate
	for _, rec := range recs {
		topic, ok := c.Topic(rec.TopicID)
		if !ok {
			continue
		}
		candidates = append(candidates, candidate{topic: topic, rec: *rec})
	}
	if len(candidates) == 0 {
		return course.Topic{}, competency.Record{}, fmt.Errorf("user %s: %w", userID, ErrNoCompetencyRecords)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if c := candidates[i].rec.Score.Cmp(candidates[j].rec.Score); c != 0 {
			return c < 0
		}
		if candidates[i].topic.Ordinal != candidates[j].topic.Ordinal {
			return candidates[i].topic.Ordinal < candidates[j].topic.Ordinal
		}
		return candidates[i].topic.ID < candidates[j].topic.ID
	})
	return candidates[0].topic, candidates[0].rec, nil
}

// SelectNext picks the next practice question: uniformly at random among
// the weakest topic's active questions within the difficulty window
// centered on that topic's score. Fallbacks widen the search — first the
// whole topic, then the whole course — before reporting exhaustion.
func (s *Selector) SelectNext(ctx context.Context, userID string, c *course.Course, excluded map[string]bool) (question.Question, error) {
	topic, rec, err := s.WeakestTopic(ctx, userID, c)
	if err != nil {
		return question.Question{}, err
	}

	lo := numeric.Clamp01(rec.Score.Sub(s.window))
	hi := numeric.Clamp01(rec.Score.Add(s.window))

	topicPool := s.eligible(s.bank.ActiveByTopic(topic.ID), excluded)

	var windowed []question.Question
	for _, q := range topicPool {
		if q.Difficulty.Cmp(lo) >= 0 && q.Difficulty.Cmp(hi) <= 0 {
			windowed = append(windowed, q)
		}
	}
	if q, ok := sampling.Pick(s.src, windowed); ok {
		return q, nil
	}
	if q, ok := sampling.Pick(s.src, topicPool); ok {
		return q, nil
	}
	coursePool := s.eligible(s.bank.ActiveByCourse(), excluded)
	if q, ok := sampling.Pick(s.src, coursePool); ok {
		return q, nil
	}
	return question.Question{}, ErrNoQuestionAvailable
}

func (s *Selector) eligible(pool []question.Question, excluded map[string]bool) []question.Question {
	var out []question.Question
	for _, q := range pool {
		if !excluded[q.ID] {
			out = append(out, q)
		}
	}
	return out
}
