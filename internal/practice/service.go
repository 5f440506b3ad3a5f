package practice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/spacedrep"
)

// ErrDuplicateAttempt rejects a replayed (user, question, session)
// submission before it can double-apply the score and card updates,
// which are not idempotent.
var ErrDuplicateAttempt = errors.New("attempt already submitted for this question in this session")

// ErrSessionCompleted rejects submissions to a finished session.
var ErrSessionCompleted = errors.New("session already completed")

// ErrNotFound is returned for unknown questions or sessions.
var ErrNotFound = errors.New("not found")

// AttemptRepo is the append-only attempt ledger boundary.
type AttemptRepo interface {
	Append(ctx context.Context, a *Attempt) error
	Exists(ctx context.Context, userID, questionID, sessionID string) (bool, error)

	// RecentQuestionIDs returns the question ids of the user's most
	// recent attempts, newest first, capped at limit.
	RecentQuestionIDs(ctx context.Context, userID string, limit int) ([]string, error)

	BySession(ctx context.Context, sessionID string) ([]*Attempt, error)
}

// SessionRepo is the session storage boundary.
// Get returns (nil, nil) for an unknown id.
type SessionRepo interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Update(ctx context.Context, s *Session) error
}

// Service coordinates one attempt's atomic fan-out. The embedding caller
// owns the transaction boundary and serializes concurrent mutations of
// the same (user, topic) or (user, question) pair.
type Service struct {
	attempts  AttemptRepo
	sessions  SessionRepo
	tracker   *competency.Tracker
	scheduler *spacedrep.Scheduler
	bank      question.Bank
	now       func() time.Time
}

// NewService wires the pipeline.
func NewService(attempts AttemptRepo, sessions SessionRepo, tracker *competency.Tracker, scheduler *spacedrep.Scheduler, bank question.Bank) *Service {
	return &Service{
		attempts:  attempts,
		sessions:  sessions,
		tracker:   tracker,
		scheduler: scheduler,
		bank:      bank,
		now:       time.Now,
	}
}

// WithClock overrides the service clock. The simulator uses it to
// replay multi-day histories deterministically.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// SubmitInput is one answered question.
type SubmitInput struct {
	UserID     string
	QuestionID string
	SessionID  string
	Correct    bool
}

// Submit records one attempt: duplicate check, ledger append, competency
// update, SM-2 update, session counters — in that order, so a rejected
// duplicate touches nothing.
func (s *Service) Submit(ctx context.Context, in SubmitInput) (*Attempt, error) {
	q, ok := s.bank.Get(in.QuestionID)
	if !ok {
		return nil, fmt.Errorf("question %s: %w", in.QuestionID, ErrNotFound)
	}

	sess, err := s.sessions.Get(ctx, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", in.SessionID, ErrNotFound)
	}
	if sess.Completed {
		return nil, fmt.Errorf("session %s: %w", in.SessionID, ErrSessionCompleted)
	}

	dup, err := s.attempts.Exists(ctx, in.UserID, in.QuestionID, in.SessionID)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if dup {
		return nil, fmt.Errorf("user %s, question %s, session %s: %w",
			in.UserID, in.QuestionID, in.SessionID, ErrDuplicateAttempt)
	}

	// Capture competency as it stands before this attempt moves it.
	before, err := s.tracker.Record(ctx, in.UserID, q.TopicID)
	if err != nil {
		return nil, fmt.Errorf("load competency: %w", err)
	}
	competencyAt := s.tracker.Params().InitialScore
	if before != nil {
		competencyAt = before.Score
	}

	now := s.now()
	attempt := &Attempt{
		ID:                  uuid.NewString(),
		UserID:              in.UserID,
		QuestionID:          in.QuestionID,
		SessionID:           in.SessionID,
		TopicID:             q.TopicID,
		Correct:             in.Correct,
		CompetencyAtAttempt: competencyAt,
		DifficultyAtAttempt: q.Difficulty,
		CreatedAt:           now,
	}
	if err := s.attempts.Append(ctx, attempt); err != nil {
		return nil, fmt.Errorf("append attempt: %w", err)
	}

	if _, err := s.tracker.RecordAttempt(ctx, in.UserID, q.TopicID, in.Correct, q.Difficulty); err != nil {
		return nil, fmt.Errorf("update competency: %w", err)
	}

	quality := spacedrep.QualityFromCorrect(in.Correct)
	if _, err := s.scheduler.RecordReview(ctx, in.UserID, in.QuestionID, quality, now); err != nil {
		return nil, fmt.Errorf("update review card: %w", err)
	}

	// Assembled sessions carry a fixed question list; incremental kinds
	// grow theirs as questions are served.
	switch sess.Kind {
	case KindPractice, KindReview:
		if !sess.Contains(in.QuestionID) {
			sess.QuestionIDs = append(sess.QuestionIDs, in.QuestionID)
			sess.Total++
		}
	default:
		if !sess.Contains(in.QuestionID) {
			return nil, fmt.Errorf("question %s not part of session %s: %w", in.QuestionID, sess.ID, ErrNotFound)
		}
	}
	if in.Correct {
		sess.Correct++
	}
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	return attempt, nil
}

// StartSession opens a session. Assembled kinds (diagnostic, mock exam)
// pass their question list; practice and review start empty.
func (s *Service) StartSession(ctx context.Context, userID, courseID string, kind Kind, questionIDs []string) (*Session, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("invalid session kind %q", kind)
	}
	sess := &Session{
		ID:          uuid.NewString(),
		UserID:      userID,
		CourseID:    courseID,
		Kind:        kind,
		QuestionIDs: questionIDs,
		Total:       len(questionIDs),
		StartedAt:   s.now(),
	}
	if err := s.sessions.Create(ctx, sess); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return sess, nil
}

// CompleteSession marks the session finished. Completing a diagnostic
// session finalizes the competency baseline from its attempts.
func (s *Service) CompleteSession(ctx context.Context, sessionID string) (*Session, error) {
	sess, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrNotFound)
	}
	if sess.Completed {
		return nil, fmt.Errorf("session %s: %w", sessionID, ErrSessionCompleted)
	}

	sess.Completed = true
	sess.CompletedAt = s.now()
	if err := s.sessions.Update(ctx, sess); err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}

	if sess.Kind == KindDiagnostic {
		if err := s.finalizeDiagnostic(ctx, sess); err != nil {
			return nil, err
		}
	}
	return sess, nil
}

// finalizeDiagnostic groups the session's attempts per topic and sets
// the competency baseline from the plain ratios.
func (s *Service) finalizeDiagnostic(ctx context.Context, sess *Session) error {
	attempts, err := s.attempts.BySession(ctx, sess.ID)
	if err != nil {
		return fmt.Errorf("load diagnostic attempts: %w", err)
	}
	outcomes := make(map[string]competency.TopicOutcome)
	for _, a := range attempts {
		o := outcomes[a.TopicID]
		o.Total++
		if a.Correct {
			o.Correct++
		}
		outcomes[a.TopicID] = o
	}
	if len(outcomes) == 0 {
		return nil
	}
	if err := s.tracker.FinalizeDiagnostic(ctx, sess.UserID, outcomes); err != nil {
		return fmt.Errorf("finalize diagnostic: %w", err)
	}
	return nil
}

// Session returns a session by id.
func (s *Service) Session(ctx context.Context, id string) (*Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if sess == nil {
		return nil, fmt.Errorf("session %s: %w", id, ErrNotFound)
	}
	return sess, nil
}

// Attempts returns a session's ledger entries.
func (s *Service) Attempts(ctx context.Context, sessionID string) ([]*Attempt, error) {
	return s.attempts.BySession(ctx, sessionID)
}
