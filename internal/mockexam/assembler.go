package mockexam

import (
	"context"
	"fmt"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/practice"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/sampling"
)

// Assembler builds mock exam sessions and scores their results.
type Assembler struct {
	bank     question.Bank
	attempts practice.AttemptRepo
	sessions *practice.Service
	src      sampling.Source
	params   Params
}

// NewAssembler wires the assembler.
func NewAssembler(bank question.Bank, attempts practice.AttemptRepo, sessions *practice.Service, src sampling.Source, params Params) *Assembler {
	return &Assembler{
		bank:     bank,
		attempts: attempts,
		sessions: sessions,
		src:      src,
		params:   params,
	}
}

// Assemble builds a mock exam session of total questions: each topic's
// proportional share of unique active questions, skipping anything the
// user attempted within the recency window, globally shuffled. Assembly
// is all-or-nothing — a single short topic fails the whole exam and no
// session is created.
func (a *Assembler) Assemble(ctx context.Context, userID string, c *course.Course, total int) (*practice.Session, error) {
	dist, err := TopicDistribution(c, total)
	if err != nil {
		return nil, err
	}

	recentIDs, err := a.attempts.RecentQuestionIDs(ctx, userID, a.params.RecencyWindow)
	if err != nil {
		return nil, fmt.Errorf("recent attempts: %w", err)
	}
	recent := make(map[string]bool, len(recentIDs))
	for _, id := range recentIDs {
		recent[id] = true
	}

	// Collect per-topic pools and verify every quota is satisfiable
	// before drawing anything.
	pools := make(map[string][]question.Question, len(c.Topics))
	for _, t := range c.Topics {
		need := dist[t.ID]
		var pool []question.Question
		for _, q := range a.bank.ActiveByTopic(t.ID) {
			if !recent[q.ID] {
				pool = append(pool, q)
			}
		}
		if len(pool) < need {
			return nil, &question.InsufficientPoolError{TopicID: t.ID, Need: need, Have: len(pool)}
		}
		pools[t.ID] = pool
	}

	var selected []question.Question
	for _, t := range c.Topics {
		selected = append(selected, sampling.PickN(a.src, pools[t.ID], dist[t.ID])...)
	}
	selected = sampling.Shuffle(a.src, selected)

	ids := make([]string, len(selected))
	for i, q := range selected {
		ids[i] = q.ID
	}
	return a.sessions.StartSession(ctx, userID, c.ID, practice.KindMockExam, ids)
}
