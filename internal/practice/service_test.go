package practice

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/spacedrep"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

// In-memory repos mirroring the store behavior.

type memAttempts struct {
	attempts []*Attempt
}

func (m *memAttempts) Append(_ context.Context, a *Attempt) error {
	cp := *a
	m.attempts = append(m.attempts, &cp)
	return nil
}

func (m *memAttempts) Exists(_ context.Context, userID, questionID, sessionID string) (bool, error) {
	for _, a := range m.attempts {
		if a.UserID == userID && a.QuestionID == questionID && a.SessionID == sessionID {
			return true, nil
		}
	}
	return false, nil
}

func (m *memAttempts) RecentQuestionIDs(_ context.Context, userID string, limit int) ([]string, error) {
	var ids []string
	for i := len(m.attempts) - 1; i >= 0 && len(ids) < limit; i-- {
		if m.attempts[i].UserID == userID {
			ids = append(ids, m.attempts[i].QuestionID)
		}
	}
	return ids, nil
}

func (m *memAttempts) BySession(_ context.Context, sessionID string) ([]*Attempt, error) {
	var out []*Attempt
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memSessions struct {
	sessions map[string]*Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*Session)}
}

func (m *memSessions) Create(_ context.Context, s *Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessions) Get(_ context.Context, id string) (*Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) Update(_ context.Context, s *Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

type memRecords struct {
	records map[string]*competency.Record
}

func newMemRecords() *memRecords {
	return &memRecords{records: make(map[string]*competency.Record)}
}

func (m *memRecords) Get(_ context.Context, userID, topicID string) (*competency.Record, error) {
	r, ok := m.records[userID+"/"+topicID]
	if !ok {
		return nil, nil
	}
	cp := *r
	return &cp, nil
}

func (m *memRecords) Put(_ context.Context, rec *competency.Record) error {
	cp := *rec
	m.records[rec.UserID+"/"+rec.TopicID] = &cp
	return nil
}

func (m *memRecords) ListByUser(_ context.Context, userID string) ([]*competency.Record, error) {
	var out []*competency.Record
	for _, r := range m.records {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memCards struct {
	cards map[string]*spacedrep.Card
}

func newMemCards() *memCards {
	return &memCards{cards: make(map[string]*spacedrep.Card)}
}

func (m *memCards) Get(_ context.Context, userID, questionID string) (*spacedrep.Card, error) {
	c, ok := m.cards[userID+"/"+questionID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCards) Put(_ context.Context, card *spacedrep.Card) error {
	cp := *card
	m.cards[card.UserID+"/"+card.QuestionID] = &cp
	return nil
}

func (m *memCards) Due(_ context.Context, userID string, now time.Time, limit int) ([]*spacedrep.Card, error) {
	var due []*spacedrep.Card
	for _, c := range m.cards {
		if c.UserID == userID && c.IsDue(now) {
			cp := *c
			due = append(due, &cp)
		}
	}
	sort.Slice(due, func(i, j int) bool { return due[i].NextReviewAt.Before(due[j].NextReviewAt) })
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (m *memCards) ListByUser(_ context.Context, userID string) ([]*spacedrep.Card, error) {
	var out []*spacedrep.Card
	for _, c := range m.cards {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

type fixture struct {
	svc      *Service
	attempts *memAttempts
	sessions *memSessions
	records  *memRecords
	cards    *memCards
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	bank, err := question.NewStaticBank([]question.Question{
		{ID: "q1", TopicID: "routing", Difficulty: dec("0.80"), Active: true},
		{ID: "q2", TopicID: "routing", Difficulty: dec("0.30"), Active: true},
		{ID: "q3", TopicID: "security", Difficulty: dec("0.50"), Active: true},
	})
	if err != nil {
		t.Fatal(err)
	}
	f := &fixture{
		attempts: &memAttempts{},
		sessions: newMemSessions(),
		records:  newMemRecords(),
		cards:    newMemCards(),
	}
	tracker := competency.NewTracker(f.records, competency.DefaultParams())
	scheduler := spacedrep.NewScheduler(f.cards, nil, spacedrep.DefaultParams())
	f.svc = NewService(f.attempts, f.sessions, tracker, scheduler, bank)
	f.svc.now = func() time.Time { return testNow }
	return f
}

func (f *fixture) startSession(t *testing.T, kind Kind, questionIDs []string) *Session {
	t.Helper()
	sess, err := f.svc.StartSession(context.Background(), "u1", "net-plus", kind, questionIDs)
	if err != nil {
		t.Fatal(err)
	}
	return sess
}

func TestSubmit_FansOutToTrackerAndScheduler(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.startSession(t, KindPractice, nil)

	attempt, err := f.svc.Submit(ctx, SubmitInput{
		UserID: "u1", QuestionID: "q1", SessionID: sess.ID, Correct: true,
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Ledger captured pre-attempt competency and the question difficulty.
	if !attempt.CompetencyAtAttempt.Equal(dec("0.50")) {
		t.Errorf("CompetencyAtAttempt = %s, want 0.50", attempt.CompetencyAtAttempt)
	}
	if !attempt.DifficultyAtAttempt.Equal(dec("0.80")) {
		t.Errorf("DifficultyAtAttempt = %s, want 0.80", attempt.DifficultyAtAttempt)
	}

	// Competency moved: 0.50 + (0.80-0.50)*0.1 = 0.53.
	rec, _ := f.records.Get(ctx, "u1", "routing")
	if rec == nil || !rec.Score.Equal(dec("0.53")) {
		t.Errorf("competency = %v, want 0.53", rec)
	}

	// Review card created.
	card, _ := f.cards.Get(ctx, "u1", "q1")
	if card == nil || !card.Easiness.Equal(dec("2.50")) {
		t.Errorf("card = %v, want fresh card at EF 2.50", card)
	}

	// Practice session grew.
	got, _ := f.sessions.Get(ctx, sess.ID)
	if got.Total != 1 || got.Correct != 1 {
		t.Errorf("session total/correct = %d/%d, want 1/1", got.Total, got.Correct)
	}
}

func TestSubmit_DuplicateRejectedBeforeAnyUpdate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.startSession(t, KindPractice, nil)

	in := SubmitInput{UserID: "u1", QuestionID: "q1", SessionID: sess.ID, Correct: true}
	if _, err := f.svc.Submit(ctx, in); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.Submit(ctx, in)
	if !errors.Is(err, ErrDuplicateAttempt) {
		t.Fatalf("err = %v, want ErrDuplicateAttempt", err)
	}

	// The replay must not double-apply: score still 0.53, one attempt.
	rec, _ := f.records.Get(ctx, "u1", "routing")
	if !rec.Score.Equal(dec("0.53")) || rec.Attempts != 1 {
		t.Errorf("replay mutated state: score=%s attempts=%d", rec.Score, rec.Attempts)
	}
	if len(f.attempts.attempts) != 1 {
		t.Errorf("ledger has %d entries, want 1", len(f.attempts.attempts))
	}
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	f := newFixture(t)
	sess := f.startSession(t, KindPractice, nil)
	_, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", QuestionID: "ghost", SessionID: sess.ID,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestSubmit_CompletedSessionRejected(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.startSession(t, KindPractice, nil)
	if _, err := f.svc.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.Submit(ctx, SubmitInput{UserID: "u1", QuestionID: "q1", SessionID: sess.ID})
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestSubmit_AssembledSessionRejectsOutsideQuestion(t *testing.T) {
	f := newFixture(t)
	sess := f.startSession(t, KindMockExam, []string{"q1", "q2"})
	_, err := f.svc.Submit(context.Background(), SubmitInput{
		UserID: "u1", QuestionID: "q3", SessionID: sess.ID, Correct: true,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound for question outside the assembled list", err)
	}
}

func TestStartSession_InvalidKind(t *testing.T) {
	f := newFixture(t)
	_, err := f.svc.StartSession(context.Background(), "u1", "net-plus", Kind("quiz"), nil)
	if err == nil {
		t.Error("invalid kind should fail")
	}
}

func TestCompleteSession_DiagnosticSetsBaseline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.startSession(t, KindDiagnostic, []string{"q1", "q2", "q3"})

	for _, in := range []SubmitInput{
		{UserID: "u1", QuestionID: "q1", SessionID: sess.ID, Correct: true},
		{UserID: "u1", QuestionID: "q2", SessionID: sess.ID, Correct: false},
		{UserID: "u1", QuestionID: "q3", SessionID: sess.ID, Correct: true},
	} {
		if _, err := f.svc.Submit(ctx, in); err != nil {
			t.Fatal(err)
		}
	}
	done, err := f.svc.CompleteSession(ctx, sess.ID)
	if err != nil {
		t.Fatalf("CompleteSession: %v", err)
	}
	if !done.Completed {
		t.Error("session should be completed")
	}

	// Diagnostic overwrote the incremental updates with plain ratios.
	rec, _ := f.records.Get(ctx, "u1", "routing")
	if !rec.Score.Equal(dec("0.5")) {
		t.Errorf("routing baseline = %s, want 0.5 (1 of 2)", rec.Score)
	}
	rec, _ = f.records.Get(ctx, "u1", "security")
	if !rec.Score.Equal(dec("1")) {
		t.Errorf("security baseline = %s, want 1 (1 of 1)", rec.Score)
	}
}

func TestCompleteSession_Twice(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	sess := f.startSession(t, KindPractice, nil)
	if _, err := f.svc.CompleteSession(ctx, sess.ID); err != nil {
		t.Fatal(err)
	}
	_, err := f.svc.CompleteSession(ctx, sess.ID)
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}
}
