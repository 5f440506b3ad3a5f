package competency

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/numeric"
)

// ErrAlreadyInitialized is returned when Initialize finds existing
// records for the (user, course) pair.
var ErrAlreadyInitialized = errors.New("competency records already initialized")

// ErrDifficultyRange marks a caller contract violation: question
// difficulty outside [0, 1] is never clamped.
var ErrDifficultyRange = errors.New("question difficulty outside [0, 1]")

// RecordRepo is the storage boundary for competency records.
// Get returns (nil, nil) when no record exists for the pair.
type RecordRepo interface {
	Get(ctx context.Context, userID, topicID string) (*Record, error)
	Put(ctx context.Context, rec *Record) error
	ListByUser(ctx context.Context, userID string) ([]*Record, error)
}

// Tracker owns competency score updates.
type Tracker struct {
	repo   RecordRepo
	params Params
	now    func() time.Time
}

// NewTracker creates a tracker over the given record storage.
func NewTracker(repo RecordRepo, params Params) *Tracker {
	return &Tracker{repo: repo, params: params, now: time.Now}
}

// Params returns the tracker's configured parameters.
func (t *Tracker) Params() Params {
	return t.params
}

// Record returns the current record for the (user, topic) pair, or nil
// when none exists yet.
func (t *Tracker) Record(ctx context.Context, userID, topicID string) (*Record, error) {
	return t.repo.Get(ctx, userID, topicID)
}

// Initialize creates one record per course topic at the initial score.
// It fails with ErrAlreadyInitialized if any record already exists for a
// topic of the course, leaving existing records untouched.
func (t *Tracker) Initialize(ctx context.Context, userID string, c *course.Course) error {
	for _, topic := range c.Topics {
		rec, err := t.repo.Get(ctx, userID, topic.ID)
		if err != nil {
			return fmt.Errorf("check existing record: %w", err)
		}
		if rec != nil {
			return fmt.Errorf("user %s, course %s: %w", userID, c.ID, ErrAlreadyInitialized)
		}
	}

	now := t.now()
	for _, topic := range c.Topics {
		rec := &Record{
			UserID:        userID,
			TopicID:       topic.ID,
			Score:         t.params.InitialScore,
			LastUpdatedAt: now,
		}
		if err := t.repo.Put(ctx, rec); err != nil {
			return fmt.Errorf("create record for topic %s: %w", topic.ID, err)
		}
	}
	return nil
}

// RecordAttempt applies one attempt to the (user, topic) record and
// returns the updated record. A missing record is created at the initial
// score first; a difficulty outside [0, 1] fails fast.
//
// Correct answers on questions harder than the current score move the
// score up more; wrong answers on questions easier than the score cost
// more. That asymmetry is the adaptive signal.
func (t *Tracker) RecordAttempt(ctx context.Context, userID, topicID string, correct bool, difficulty decimal.Decimal) (*Record, error) {
	if !numeric.InUnitInterval(difficulty) {
		return nil, fmt.Errorf("%w: %s", ErrDifficultyRange, difficulty)
	}

	rec, err := t.repo.Get(ctx, userID, topicID)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if rec == nil {
		rec = &Record{UserID: userID, TopicID: topicID, Score: t.params.InitialScore}
	}

	rec.Attempts++
	if correct {
		rec.Correct++
		delta := difficulty.Sub(rec.Score).Mul(t.params.LearningRate)
		rec.Score = rec.Score.Add(delta)
	} else {
		rec.Incorrect++
		delta := rec.Score.Sub(difficulty).Mul(t.params.LearningRate)
		rec.Score = rec.Score.Sub(delta)
	}
	rec.Score = numeric.Clamp01(rec.Score.Round(numeric.ScoreScale))
	rec.LastUpdatedAt = t.now()

	if err := t.repo.Put(ctx, rec); err != nil {
		return nil, fmt.Errorf("store record: %w", err)
	}
	return rec, nil
}

// TopicOutcome is the per-topic tally of a diagnostic batch.
type TopicOutcome struct {
	Correct int
	Total   int
}

// FinalizeDiagnostic overwrites each observed topic's score with the
// plain correct/total ratio of the diagnostic batch. Diagnostics set a
// baseline; they do not apply the incremental rule. Counters still
// accumulate the diagnostic attempts.
func (t *Tracker) FinalizeDiagnostic(ctx context.Context, userID string, outcomes map[string]TopicOutcome) error {
	now := t.now()
	for topicID, o := range outcomes {
		if o.Total <= 0 || o.Correct < 0 || o.Correct > o.Total {
			return fmt.Errorf("topic %s: invalid diagnostic outcome %d/%d", topicID, o.Correct, o.Total)
		}
		rec, err := t.repo.Get(ctx, userID, topicID)
		if err != nil {
			return fmt.Errorf("load record: %w", err)
		}
		if rec == nil {
			rec = &Record{UserID: userID, TopicID: topicID}
		}
		rec.Score = numeric.Ratio(o.Correct, o.Total)
		rec.Attempts += o.Total
		rec.Correct += o.Correct
		rec.Incorrect += o.Total - o.Correct
		rec.LastUpdatedAt = now
		if err := t.repo.Put(ctx, rec); err != nil {
			return fmt.Errorf("store record: %w", err)
		}
	}
	return nil
}

// WeightedCourseCompetency returns the topic-weight-weighted mean of the
// user's scores across the course. Topics without a record contribute the
// initial score. Returns zero when no topic carries weight.
func (t *Tracker) WeightedCourseCompetency(ctx context.Context, userID string, c *course.Course) (decimal.Decimal, error) {
	values := make([]decimal.Decimal, 0, len(c.Topics))
	weights := make([]decimal.Decimal, 0, len(c.Topics))
	for _, topic := range c.Topics {
		rec, err := t.repo.Get(ctx, userID, topic.ID)
		if err != nil {
			return numeric.Zero, fmt.Errorf("load record: %w", err)
		}
		score := t.params.InitialScore
		if rec != nil {
			score = rec.Score
		}
		values = append(values, score)
		weights = append(weights, topic.Weight.Div(numeric.Hundred))
	}
	return numeric.WeightedMean(values, weights), nil
}

// Status buckets a score: below_target (< on-track threshold), on_track,
// or above_target (>= above-target threshold).
func (t *Tracker) Status(score decimal.Decimal) Status {
	switch {
	case score.Cmp(t.params.OnTrackThreshold) < 0:
		return StatusBelowTarget
	case score.Cmp(t.params.AboveTargetThreshold) < 0:
		return StatusOnTrack
	default:
		return StatusAboveTarget
	}
}
