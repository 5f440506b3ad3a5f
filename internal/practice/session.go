// Package practice runs the attempt pipeline: each submitted attempt is
// deduplicated, appended to the immutable ledger, and fanned out to the
// competency tracker and the SM-2 scheduler in one pass. It also owns
// exam session lifecycle.
package practice

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind classifies an exam session.
type Kind string

const (
	KindDiagnostic Kind = "diagnostic"
	KindPractice   Kind = "practice"
	KindMockExam   Kind = "mock_exam"
	KindReview     Kind = "review"
)

// Valid reports whether k is one of the defined session kinds.
func (k Kind) Valid() bool {
	switch k {
	case KindDiagnostic, KindPractice, KindMockExam, KindReview:
		return true
	}
	return false
}

// Session is one assessment run. Diagnostic and mock-exam sessions are
// assembled up front with a fixed question list; practice and review
// sessions grow as questions are served. Once completed, a session is
// read-mostly.
type Session struct {
	ID          string
	UserID      string
	CourseID    string
	Kind        Kind
	QuestionIDs []string // ordered
	Total       int
	Correct     int
	StartedAt   time.Time
	CompletedAt time.Time
	Completed   bool
}

// Contains reports whether the session's question list includes id.
func (s *Session) Contains(id string) bool {
	for _, qid := range s.QuestionIDs {
		if qid == id {
			return true
		}
	}
	return false
}

// DurationSeconds returns the session length in whole seconds, zero when
// the session is not yet completed.
func (s *Session) DurationSeconds() int {
	if !s.Completed {
		return 0
	}
	return int(s.CompletedAt.Sub(s.StartedAt) / time.Second)
}

// Attempt is one immutable ledger entry: never mutated after creation.
// Competency and difficulty are captured at attempt time so later edits
// to questions or scores cannot rewrite history.
type Attempt struct {
	ID                  string
	UserID              string
	QuestionID          string
	SessionID           string
	TopicID             string
	Correct             bool
	CompetencyAtAttempt decimal.Decimal
	DifficultyAtAttempt decimal.Decimal
	CreatedAt           time.Time
}
