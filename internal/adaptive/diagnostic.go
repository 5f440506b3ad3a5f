package adaptive

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/sampling"
)

// DefaultQuestionsPerTopic is the diagnostic quota per topic.
const DefaultQuestionsPerTopic = 4

// Difficulty band edges for diagnostic stratification:
// easy [0, 0.4), medium [0.4, 0.7), hard [0.7, 1.0].
var (
	bandMediumLow = decimal.RequireFromString("0.4")
	bandHardLow   = decimal.RequireFromString("0.7")
)

// SelectDiagnosticBatch draws a difficulty-stratified batch for every
// course topic: one easy, two medium, one hard question per topic (scaled
// when perTopic differs from 4), chosen at random within each band. A
// band shortfall is backfilled with random remaining questions from the
// same topic. A topic whose active pool is smaller than perTopic fails
// the whole batch; no partial batch is returned.
//
// The result is ordered by topic ordinal; order within a topic is random.
func (s *Selector) SelectDiagnosticBatch(c *course.Course, perTopic int) ([]question.Question, error) {
	if perTopic <= 0 {
		perTopic = DefaultQuestionsPerTopic
	}

	topics := make([]course.Topic, len(c.Topics))
	copy(topics, c.Topics)
	sort.Slice(topics, func(i, j int) bool { return topics[i].Ordinal < topics[j].Ordinal })

	// Validate every topic's pool before drawing anything, so a failure
	// cannot leave a half-built batch behind.
	for _, t := range topics {
		if have := len(s.bank.ActiveByTopic(t.ID)); have < perTopic {
			return nil, &question.InsufficientPoolError{TopicID: t.ID, Need: perTopic, Have: have}
		}
	}

	easyQuota := perTopic / 4
	hardQuota := perTopic / 4
	mediumQuota := perTopic - easyQuota - hardQuota

	var batch []question.Question
	for _, t := range topics {
		pool := s.bank.ActiveByTopic(t.ID)

		var easy, medium, hard []question.Question
		for _, q := range pool {
			switch {
			case q.Difficulty.Cmp(bandMediumLow) < 0:
				easy = append(easy, q)
			case q.Difficulty.Cmp(bandHardLow) < 0:
				medium = append(medium, q)
			default:
				hard = append(hard, q)
			}
		}

		chosen := make(map[string]bool, perTopic)
		var picked []question.Question
		for _, draw := range []struct {
			band  []question.Question
			quota int
		}{
			{easy, easyQuota},
			{medium, mediumQuota},
			{hard, hardQuota},
		} {
			for _, q := range sampling.PickN(s.src, draw.band, draw.quota) {
				chosen[q.ID] = true
				picked = append(picked, q)
			}
		}

		// Backfill band shortfalls from the rest of the topic's pool.
		if len(picked) < perTopic {
			var rest []question.Question
			for _, q := range pool {
				if !chosen[q.ID] {
					rest = append(rest, q)
				}
			}
			picked = append(picked, sampling.PickN(s.src, rest, perTopic-len(picked))...)
		}

		batch = append(batch, sampling.Shuffle(s.src, picked)...)
	}
	return batch, nil
}
