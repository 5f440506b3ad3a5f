// Package competency tracks per-user, per-topic mastery. The score is a
// pure function of the attempt history: a single-parameter update rule
// moves it toward the difficulty of correctly answered questions and away
// on misses, always clamped to [0, 1].
package competency

import (
	"time"

	"github.com/shopspring/decimal"
)

// Record is the mastery state for one (user, topic) pair.
// Invariant: Attempts == Correct + Incorrect, Score in [0, 1].
type Record struct {
	UserID        string
	TopicID       string
	Score         decimal.Decimal // scale 4
	Attempts      int
	Correct       int
	Incorrect     int
	LastUpdatedAt time.Time
}

// Status buckets a score against the course targets.
type Status string

const (
	StatusBelowTarget Status = "below_target"
	StatusOnTrack     Status = "on_track"
	StatusAboveTarget Status = "above_target"
)

// Params are the tunables of the tracker, passed in explicitly so they
// can vary per course or per test.
type Params struct {
	InitialScore         decimal.Decimal
	LearningRate         decimal.Decimal
	OnTrackThreshold     decimal.Decimal
	AboveTargetThreshold decimal.Decimal
}

// DefaultParams returns the production defaults.
func DefaultParams() Params {
	return Params{
		InitialScore:         decimal.RequireFromString("0.50"),
		LearningRate:         decimal.RequireFromString("0.1"),
		OnTrackThreshold:     decimal.RequireFromString("0.60"),
		AboveTargetThreshold: decimal.RequireFromString("0.80"),
	}
}
