// Package mockexam assembles full-length, topic-weight-proportional
// mock exams and scores their results.
package mockexam

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/numeric"
)

// Params are the assembler tunables.
type Params struct {
	// RecencyWindow is how many of the user's most recent attempts are
	// excluded from the question draw.
	RecencyWindow int

	// Feedback thresholds, in score percentage points.
	StrongThreshold   decimal.Decimal // per-topic accuracy for "strongest"
	WeakThreshold     decimal.Decimal // per-topic accuracy for "weakest"
	LargeGap          decimal.Decimal // failing by more than this is a large gap
	ComfortableMargin decimal.Decimal // passing by at least this is comfortable
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		RecencyWindow:     50,
		StrongThreshold:   decimal.New(80, 0),
		WeakThreshold:     decimal.New(60, 0),
		LargeGap:          decimal.New(20, 0),
		ComfortableMargin: decimal.New(10, 0),
	}
}

// TopicDistribution allocates total questions across the course topics
// proportionally to their weights: floor(weight/100 * total) per topic,
// except the smallest-weight topic, which absorbs the rounding remainder
// so the counts always sum exactly to total. A smallest-weight tie goes
// to the highest ordinal.
func TopicDistribution(c *course.Course, total int) (map[string]int, error) {
	if total <= 0 {
		return nil, fmt.Errorf("total questions %d: must be positive", total)
	}
	if len(c.Topics) == 0 {
		return nil, fmt.Errorf("course %s has no topics", c.ID)
	}

	absorber := c.Topics[0]
	for _, t := range c.Topics[1:] {
		switch cmp := t.Weight.Cmp(absorber.Weight); {
		case cmp < 0:
			absorber = t
		case cmp == 0 && t.Ordinal > absorber.Ordinal:
			absorber = t
		}
	}

	dist := make(map[string]int, len(c.Topics))
	allocated := 0
	totalDec := decimal.New(int64(total), 0)
	for _, t := range c.Topics {
		if t.ID == absorber.ID {
			continue
		}
		n := int(t.Weight.Mul(totalDec).Div(numeric.Hundred).IntPart())
		dist[t.ID] = n
		allocated += n
	}
	dist[absorber.ID] = total - allocated
	return dist, nil
}
