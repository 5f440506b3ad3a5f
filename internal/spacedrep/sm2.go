package spacedrep

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Quality grades follow the SM-2 scale: 0 total blackout through 5
// perfect recall. Quality >= PassQuality counts as a pass.
const (
	MinQuality = 0
	MaxQuality = 5
)

// ErrQualityRange marks a caller contract violation; quality grades are
// never clamped.
var ErrQualityRange = errors.New("quality outside [0, 5]")

// Params are the SM-2 tunables, passed explicitly for per-course or
// per-test overrides.
type Params struct {
	InitialEasiness      decimal.Decimal
	MinEasiness          decimal.Decimal
	FirstIntervalDays    int
	SecondIntervalDays   int
	PassQuality          int
	MasteredEasiness     decimal.Decimal
	MasteredIntervalDays int
}

// DefaultParams returns the canonical SM-2 parameters.
func DefaultParams() Params {
	return Params{
		InitialEasiness:      decimal.RequireFromString("2.50"),
		MinEasiness:          decimal.RequireFromString("1.30"),
		FirstIntervalDays:    1,
		SecondIntervalDays:   6,
		PassQuality:          3,
		MasteredEasiness:     decimal.RequireFromString("2.50"),
		MasteredIntervalDays: 30,
	}
}

// EF formula constants.
var (
	efBonus     = decimal.RequireFromString("0.1")
	efLinear    = decimal.RequireFromString("0.08")
	efQuadratic = decimal.RequireFromString("0.02")
)

// NewCard creates the review card for a question's first attempt:
// initial easiness, zero repetitions, a one-day interval.
func NewCard(userID, questionID string, now time.Time, p Params) *Card {
	return &Card{
		UserID:         userID,
		QuestionID:     questionID,
		Easiness:       p.InitialEasiness,
		Repetitions:    0,
		IntervalDays:   p.FirstIntervalDays,
		LastReviewedAt: now,
		NextReviewAt:   now.AddDate(0, 0, p.FirstIntervalDays),
	}
}

// Review applies one SM-2 review to the card in place.
//
// The easiness update EF' = EF + (0.1 - (5-q)*(0.08 + (5-q)*0.02)) runs
// for every review, floored at MinEasiness with no upper cap. A pass
// (q >= PassQuality) advances the interval 1 -> 6 -> floor(prev * EF')
// by repetition count; a fail resets repetitions and the interval
// regardless of prior state.
func Review(c *Card, quality int, now time.Time, p Params) error {
	if quality < MinQuality || quality > MaxQuality {
		return fmt.Errorf("%w: %d", ErrQualityRange, quality)
	}

	miss := decimal.New(int64(MaxQuality-quality), 0)
	adjust := efBonus.Sub(miss.Mul(efLinear.Add(miss.Mul(efQuadratic))))
	c.Easiness = c.Easiness.Add(adjust)
	if c.Easiness.Cmp(p.MinEasiness) < 0 {
		c.Easiness = p.MinEasiness
	}

	if quality >= p.PassQuality {
		switch c.Repetitions {
		case 0:
			c.IntervalDays = p.FirstIntervalDays
		case 1:
			c.IntervalDays = p.SecondIntervalDays
		default:
			grown := decimal.New(int64(c.IntervalDays), 0).Mul(c.Easiness)
			c.IntervalDays = int(grown.IntPart())
		}
		c.Repetitions++
		c.SuccessfulReviews++
	} else {
		c.Repetitions = 0
		c.IntervalDays = p.FirstIntervalDays
	}

	c.NextReviewAt = now.AddDate(0, 0, c.IntervalDays)
	c.LastReviewedAt = now
	c.TotalReviews++
	return nil
}

// QualityFromCorrect collapses binary correctness onto the 6-point SM-2
// scale: 4 for correct, 2 for incorrect. This deliberately discards the
// recall nuance the algorithm was designed around; it is the documented
// behavior when only correctness is known.
func QualityFromCorrect(correct bool) int {
	if correct {
		return 4
	}
	return 2
}
