// Package spacedrep schedules long-term memory reviews with the SM-2
// algorithm: one card per (user, question), an easiness factor that
// grows or shrinks with recall quality, and review intervals that expand
// on success and collapse on failure.
package spacedrep

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/numeric"
)

// Card is the SM-2 state for one (user, question) pair. Cards are
// logically permanent: they keep rescheduling forever and are never
// deleted.
//
// Invariants: Easiness >= the configured floor (1.30), IntervalDays >= 1.
type Card struct {
	UserID            string
	QuestionID        string
	Easiness          decimal.Decimal // scale 2
	Repetitions       int
	IntervalDays      int
	LastReviewedAt    time.Time
	NextReviewAt      time.Time
	TotalReviews      int
	SuccessfulReviews int
}

// IsDue reports whether the card is due for review at now.
func (c *Card) IsDue(now time.Time) bool {
	return !c.NextReviewAt.After(now)
}

// SuccessRate returns successful/total reviews at score scale, and false
// when the card has never been reviewed.
func (c *Card) SuccessRate() (decimal.Decimal, bool) {
	if c.TotalReviews == 0 {
		return numeric.Zero, false
	}
	return numeric.Ratio(c.SuccessfulReviews, c.TotalReviews), true
}

// Mastered reports whether the card meets both mastery criteria: an
// easiness at or above the mastered threshold and an interval of at
// least the mastered length.
func (c *Card) Mastered(p Params) bool {
	return c.Easiness.Cmp(p.MasteredEasiness) >= 0 && c.IntervalDays >= p.MasteredIntervalDays
}
