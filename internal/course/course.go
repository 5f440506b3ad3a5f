// Package course owns course configuration: the weighted knowledge areas
// (topics), the passing threshold, and the bundled question bank. The
// configuration layer enforces the invariants the engine assumes, most
// importantly that topic weights sum to 100%.
package course

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/numeric"
)

// weightTolerance is the slack allowed on the 100% weight-sum invariant.
var weightTolerance = decimal.RequireFromString("0.01")

// Topic is a weighted knowledge area within a course.
type Topic struct {
	ID      string          `json:"id"`
	Code    string          `json:"code"`
	Name    string          `json:"name"`
	Ordinal int             `json:"ordinal"`
	Weight  decimal.Decimal `json:"weight"` // percentage of the exam, scale 2
}

// Course is the exam being prepared for.
type Course struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	PassingScore decimal.Decimal `json:"passing_score"` // percent threshold
	Topics       []Topic         `json:"topics"`
}

// Topic returns the topic with the given id.
func (c *Course) Topic(id string) (Topic, bool) {
	for _, t := range c.Topics {
		if t.ID == id {
			return t, true
		}
	}
	return Topic{}, false
}

// Validate checks the structural invariants the engine relies on:
// at least one topic, unique ids and ordinals, weights in [0, 100]
// summing to 100.00 within tolerance, and a passing score in (0, 100].
func (c *Course) Validate() error {
	if len(c.Topics) == 0 {
		return fmt.Errorf("course %q: no topics", c.ID)
	}
	if c.PassingScore.Cmp(numeric.Zero) <= 0 || c.PassingScore.Cmp(numeric.Hundred) > 0 {
		return fmt.Errorf("course %q: passing score %s outside (0, 100]", c.ID, c.PassingScore)
	}

	ids := make(map[string]bool, len(c.Topics))
	ordinals := make(map[int]bool, len(c.Topics))
	sum := numeric.Zero
	for _, t := range c.Topics {
		if ids[t.ID] {
			return fmt.Errorf("course %q: duplicate topic id %q", c.ID, t.ID)
		}
		ids[t.ID] = true
		if ordinals[t.Ordinal] {
			return fmt.Errorf("course %q: duplicate topic ordinal %d", c.ID, t.Ordinal)
		}
		ordinals[t.Ordinal] = true

		if t.Weight.Cmp(numeric.Zero) < 0 || t.Weight.Cmp(numeric.Hundred) > 0 {
			return fmt.Errorf("topic %q: weight %s outside [0, 100]", t.ID, t.Weight)
		}
		sum = sum.Add(t.Weight)
	}

	if sum.Sub(numeric.Hundred).Abs().Cmp(weightTolerance) > 0 {
		return fmt.Errorf("course %q: topic weights sum to %s, want 100.00 ±0.01", c.ID, sum)
	}
	return nil
}
