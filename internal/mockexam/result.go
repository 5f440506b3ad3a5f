package mockexam

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/numeric"
	"github.com/certready/certready/internal/practice"
)

// ErrSessionNotCompleted rejects scoring of an in-flight session.
var ErrSessionNotCompleted = errors.New("session not completed")

// TopicResult is one topic's slice of an exam result.
type TopicResult struct {
	TopicID  string
	Code     string
	Name     string
	Total    int
	Correct  int
	Accuracy decimal.Decimal // percent, scale 2
}

// Result is the derived analytics of a completed exam session. It is
// computed on demand, never persisted.
type Result struct {
	SessionID    string
	Total        int
	Correct      int
	Incorrect    int
	ScorePercent decimal.Decimal // scale 2
	Passed       bool
	Margin       decimal.Decimal // score - passing threshold, may be negative

	// TopicBreakdown is sorted ascending by accuracy: weakest first.
	TopicBreakdown []TopicResult
	Strongest      []TopicResult // accuracy >= strong threshold
	Weakest        []TopicResult // accuracy < weak threshold

	AvgSecondsPerQuestion decimal.Decimal
	Recommendation        string
}

// Score derives the result of a completed exam session from its ledger
// attempts. Unanswered questions count against the score.
func (a *Assembler) Score(ctx context.Context, sess *practice.Session, c *course.Course) (*Result, error) {
	if !sess.Completed {
		return nil, fmt.Errorf("session %s: %w", sess.ID, ErrSessionNotCompleted)
	}

	attempts, err := a.sessions.Attempts(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("load attempts: %w", err)
	}

	type tally struct {
		total   int
		correct int
	}
	byTopic := make(map[string]*tally)
	for _, qid := range sess.QuestionIDs {
		q, ok := a.bank.Get(qid)
		if !ok {
			return nil, fmt.Errorf("question %s missing from bank", qid)
		}
		t, ok := byTopic[q.TopicID]
		if !ok {
			t = &tally{}
			byTopic[q.TopicID] = t
		}
		t.total++
	}
	correct := 0
	for _, att := range attempts {
		if att.Correct {
			correct++
			if t := byTopic[att.TopicID]; t != nil {
				t.correct++
			}
		}
	}

	res := &Result{
		SessionID:    sess.ID,
		Total:        sess.Total,
		Correct:      correct,
		Incorrect:    sess.Total - correct,
		ScorePercent: numeric.Percent(correct, sess.Total),
	}
	res.Margin = res.ScorePercent.Sub(c.PassingScore)
	res.Passed = res.Margin.Cmp(numeric.Zero) >= 0

	for topicID, t := range byTopic {
		topic, _ := c.Topic(topicID)
		res.TopicBreakdown = append(res.TopicBreakdown, TopicResult{
			TopicID:  topicID,
			Code:     topic.Code,
			Name:     topic.Name,
			Total:    t.total,
			Correct:  t.correct,
			Accuracy: numeric.Percent(t.correct, t.total),
		})
	}
	sort.Slice(res.TopicBreakdown, func(i, j int) bool {
		if c := res.TopicBreakdown[i].Accuracy.Cmp(res.TopicBreakdown[j].Accuracy); c != 0 {
			return c < 0
		}
		return res.TopicBreakdown[i].TopicID < res.TopicBreakdown[j].TopicID
	})
	for _, tr := range res.TopicBreakdown {
		if tr.Accuracy.Cmp(a.params.StrongThreshold) >= 0 {
			res.Strongest = append(res.Strongest, tr)
		}
		if tr.Accuracy.Cmp(a.params.WeakThreshold) < 0 {
			res.Weakest = append(res.Weakest, tr)
		}
	}

	if sess.Total > 0 {
		res.AvgSecondsPerQuestion = decimal.New(int64(sess.DurationSeconds()), 0).
			DivRound(decimal.New(int64(sess.Total), 0), numeric.WeightScale)
	}

	res.Recommendation = a.recommend(res)
	return res, nil
}

// recommend picks the next-step guidance from two independent splits:
// pass/fail, and how far the score sits from the threshold.
func (a *Assembler) recommend(res *Result) string {
	weakest := "your weakest topics"
	if len(res.TopicBreakdown) > 0 {
		weakest = res.TopicBreakdown[0].Name
		if weakest == "" {
			weakest = res.TopicBreakdown[0].TopicID
		}
	}

	if !res.Passed {
		gap := res.Margin.Neg()
		if gap.Cmp(a.params.LargeGap) > 0 {
			return fmt.Sprintf(
				"You scored %s%%, more than %s points below the passing mark. Return to focused practice on %s before attempting another full exam.",
				res.ScorePercent, a.params.LargeGap, weakest)
		}
		return fmt.Sprintf(
			"You scored %s%%, within %s points of passing. Drill %s and retake a mock exam this week.",
			res.ScorePercent, a.params.LargeGap, weakest)
	}

	if res.Margin.Cmp(a.params.ComfortableMargin) >= 0 {
		return fmt.Sprintf(
			"You passed with %s%% — a comfortable margin. Keep up spaced reviews to hold your level until exam day.",
			res.ScorePercent)
	}
	return fmt.Sprintf(
		"You passed with %s%%, but the margin is thin. Shore up %s and aim for a wider buffer on the next mock.",
		res.ScorePercent, weakest)
}
