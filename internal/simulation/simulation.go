// Package simulation drives the whole engine with a deterministic
// simulated learner: diagnostic baseline, daily adaptive practice,
// spaced reviews and a final mock exam. The CLI subcommands run single
// stages; Run plays the full lifecycle and doubles as an integration
// harness for the tests.
package simulation

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/adaptive"
	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/mockexam"
	"github.com/certready/certready/internal/numeric"
	"github.com/certready/certready/internal/practice"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/spacedrep"
)

// Engine bundles the wired components the simulation exercises.
type Engine struct {
	Course    *course.Course
	Bank      question.Bank
	Tracker   *competency.Tracker
	Selector  *adaptive.Selector
	Scheduler *spacedrep.Scheduler
	Practice  *practice.Service
	Assembler *mockexam.Assembler
}

// Params shape the simulated learner and the run length.
type Params struct {
	UserID             string
	Seed               int64
	DiagnosticPerTopic int
	Days               int
	QuestionsPerDay    int
	ReviewLimit        int
	ExamSize           int

	// Start anchors the virtual clock. Zero means time.Now.
	Start time.Time

	// BaseAbility is the learner's mean true ability; per-topic
	// abilities are drawn around it from the seeded source.
	BaseAbility decimal.Decimal

	// LearnStep is the ability gained by answering a question,
	// capped at 0.95.
	LearnStep decimal.Decimal
}

// DefaultParams returns a two-week run for a middling learner.
func DefaultParams() Params {
	return Params{
		UserID:             "learner",
		Seed:               1,
		DiagnosticPerTopic: 4,
		Days:               14,
		QuestionsPerDay:    10,
		ReviewLimit:        20,
		ExamSize:           30,
		BaseAbility:        decimal.RequireFromString("0.45"),
		LearnStep:          decimal.RequireFromString("0.01"),
	}
}

// TopicReport is one topic's competency snapshot.
type TopicReport struct {
	Topic  course.Topic
	Score  decimal.Decimal
	Status competency.Status
}

// Report is the outcome of a full simulated run.
type Report struct {
	UserID           string
	Diagnostic       []TopicReport
	PracticeAttempts int
	Reviews          int
	Final            []TopicReport
	CourseCompetency decimal.Decimal
	Stats            *spacedrep.Stats
	Exam             *mockexam.Result
}

// Runner executes one simulated learner against the engine.
type Runner struct {
	engine  Engine
	params  Params
	rng     *rand.Rand
	ability map[string]decimal.Decimal
	now     time.Time
}

var maxAbility = decimal.RequireFromString("0.95")

// NewRunner seeds the learner. The engine's practice service is put on
// the runner's virtual clock.
func NewRunner(engine Engine, params Params) *Runner {
	start := params.Start
	if start.IsZero() {
		start = time.Now().UTC()
	}
	r := &Runner{
		engine:  engine,
		params:  params,
		rng:     rand.New(rand.NewSource(params.Seed)),
		ability: make(map[string]decimal.Decimal),
		now:     start,
	}
	engine.Practice.WithClock(func() time.Time { return r.now })

	// Per-topic true abilities: base ± up to 0.20, seeded.
	for _, topic := range engine.Course.Topics {
		jitter := decimal.New(int64(r.rng.Intn(41)-20), -2)
		r.ability[topic.ID] = numeric.Clamp01(params.BaseAbility.Add(jitter))
	}
	return r
}

// Now returns the runner's virtual clock.
func (r *Runner) Now() time.Time {
	return r.now
}

// Run plays the learner through diagnostic, daily practice with spaced
// reviews, and a closing mock exam.
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	p := r.params
	report := &Report{UserID: p.UserID}

	if err := r.engine.Tracker.Initialize(ctx, p.UserID, r.engine.Course); err != nil {
		return nil, fmt.Errorf("initialize learner: %w", err)
	}

	var err error
	report.Diagnostic, err = r.Diagnostic(ctx)
	if err != nil {
		return nil, err
	}

	for day := 0; day < p.Days; day++ {
		n, err := r.PracticeDay(ctx)
		if err != nil {
			return nil, err
		}
		report.PracticeAttempts += n

		n, err = r.Reviews(ctx)
		if err != nil {
			return nil, err
		}
		report.Reviews += n

		r.now = r.now.Add(24 * time.Hour)
	}

	report.Exam, err = r.Exam(ctx)
	if err != nil {
		return nil, err
	}

	report.Final, err = r.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	report.CourseCompetency, err = r.engine.Tracker.WeightedCourseCompetency(ctx, p.UserID, r.engine.Course)
	if err != nil {
		return nil, fmt.Errorf("course competency: %w", err)
	}
	report.Stats, err = r.engine.Scheduler.Statistics(ctx, p.UserID, r.now)
	if err != nil {
		return nil, fmt.Errorf("review statistics: %w", err)
	}
	return report, nil
}

// Diagnostic plays a stratified diagnostic session and returns the
// resulting per-topic baselines.
func (r *Runner) Diagnostic(ctx context.Context) ([]TopicReport, error) {
	batch, err := r.engine.Selector.SelectDiagnosticBatch(r.engine.Course, r.params.DiagnosticPerTopic)
	if err != nil {
		return nil, fmt.Errorf("diagnostic batch: %w", err)
	}
	ids := make([]string, len(batch))
	for i, q := range batch {
		ids[i] = q.ID
	}
	sess, err := r.engine.Practice.StartSession(ctx, r.params.UserID, r.engine.Course.ID, practice.KindDiagnostic, ids)
	if err != nil {
		return nil, fmt.Errorf("start diagnostic: %w", err)
	}
	for _, q := range batch {
		if err := r.answer(ctx, sess.ID, q); err != nil {
			return nil, err
		}
	}
	if _, err := r.engine.Practice.CompleteSession(ctx, sess.ID); err != nil {
		return nil, fmt.Errorf("complete diagnostic: %w", err)
	}
	return r.Snapshot(ctx)
}

// PracticeDay plays one adaptive practice session and returns the
// number of questions answered.
func (r *Runner) PracticeDay(ctx context.Context) (int, error) {
	sess, err := r.engine.Practice.StartSession(ctx, r.params.UserID, r.engine.Course.ID, practice.KindPractice, nil)
	if err != nil {
		return 0, fmt.Errorf("start practice: %w", err)
	}
	answered := 0
	seen := make(map[string]bool)
	for i := 0; i < r.params.QuestionsPerDay; i++ {
		q, err := r.engine.Selector.SelectNext(ctx, r.params.UserID, r.engine.Course, seen)
		if errors.Is(err, adaptive.ErrNoQuestionAvailable) {
			break
		}
		if err != nil {
			return answered, fmt.Errorf("select next: %w", err)
		}
		seen[q.ID] = true
		if err := r.answer(ctx, sess.ID, q); err != nil {
			return answered, err
		}
		answered++
	}
	if _, err := r.engine.Practice.CompleteSession(ctx, sess.ID); err != nil {
		return answered, fmt.Errorf("complete practice: %w", err)
	}
	return answered, nil
}

// Reviews answers every due card up to the review limit and returns the
// number reviewed.
func (r *Runner) Reviews(ctx context.Context) (int, error) {
	due, err := r.engine.Scheduler.DueCards(ctx, r.params.UserID, r.now, r.params.ReviewLimit)
	if err != nil {
		return 0, fmt.Errorf("due cards: %w", err)
	}
	if len(due) == 0 {
		return 0, nil
	}
	sess, err := r.engine.Practice.StartSession(ctx, r.params.UserID, r.engine.Course.ID, practice.KindReview, nil)
	if err != nil {
		return 0, fmt.Errorf("start review: %w", err)
	}
	reviewed := 0
	for _, card := range due {
		q, ok := r.engine.Bank.Get(card.QuestionID)
		if !ok {
			continue // question retired from the bank
		}
		if err := r.answer(ctx, sess.ID, q); err != nil {
			return reviewed, err
		}
		reviewed++
	}
	if _, err := r.engine.Practice.CompleteSession(ctx, sess.ID); err != nil {
		return reviewed, fmt.Errorf("complete review: %w", err)
	}
	return reviewed, nil
}

// Exam assembles, plays and scores a full mock exam.
func (r *Runner) Exam(ctx context.Context) (*mockexam.Result, error) {
	sess, err := r.engine.Assembler.Assemble(ctx, r.params.UserID, r.engine.Course, r.params.ExamSize)
	if err != nil {
		return nil, fmt.Errorf("assemble exam: %w", err)
	}
	for _, qid := range sess.QuestionIDs {
		q, ok := r.engine.Bank.Get(qid)
		if !ok {
			return nil, fmt.Errorf("question %s missing from bank", qid)
		}
		if err := r.answer(ctx, sess.ID, q); err != nil {
			return nil, err
		}
	}
	done, err := r.engine.Practice.CompleteSession(ctx, sess.ID)
	if err != nil {
		return nil, fmt.Errorf("complete exam: %w", err)
	}
	result, err := r.engine.Assembler.Score(ctx, done, r.engine.Course)
	if err != nil {
		return nil, fmt.Errorf("score exam: %w", err)
	}
	return result, nil
}

// Snapshot reads the per-topic competency state in topic order.
func (r *Runner) Snapshot(ctx context.Context) ([]TopicReport, error) {
	out := make([]TopicReport, 0, len(r.engine.Course.Topics))
	for _, topic := range r.engine.Course.Topics {
		rec, err := r.engine.Tracker.Record(ctx, r.params.UserID, topic.ID)
		if err != nil {
			return nil, fmt.Errorf("record %s: %w", topic.ID, err)
		}
		score := r.engine.Tracker.Params().InitialScore
		if rec != nil {
			score = rec.Score
		}
		out = append(out, TopicReport{
			Topic:  topic,
			Score:  score,
			Status: r.engine.Tracker.Status(score),
		})
	}
	return out, nil
}

// answer submits one simulated response and nudges the learner's
// ability: answering teaches, whatever the outcome.
func (r *Runner) answer(ctx context.Context, sessionID string, q question.Question) error {
	correct := r.answersCorrectly(q)
	_, err := r.engine.Practice.Submit(ctx, practice.SubmitInput{
		UserID:     r.params.UserID,
		QuestionID: q.ID,
		SessionID:  sessionID,
		Correct:    correct,
	})
	if err != nil {
		return fmt.Errorf("submit %s: %w", q.ID, err)
	}
	r.now = r.now.Add(90 * time.Second)

	next := r.ability[q.TopicID].Add(r.params.LearnStep)
	if next.Cmp(maxAbility) > 0 {
		next = maxAbility
	}
	r.ability[q.TopicID] = next
	return nil
}

// answersCorrectly draws the response from the seeded source: the
// success probability is 0.5 + ability - difficulty, held in
// [0.05, 0.95].
func (r *Runner) answersCorrectly(q question.Question) bool {
	p := decimal.RequireFromString("0.5").
		Add(r.ability[q.TopicID]).
		Sub(q.Difficulty)
	p = numeric.Clamp(p, decimal.RequireFromString("0.05"), maxAbility)
	return int64(r.rng.Intn(100)) < p.Mul(numeric.Hundred).IntPart()
}
