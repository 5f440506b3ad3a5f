package mockexam

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/practice"
	"github.com/certready/certready/internal/question"
	"github.com/certready/certready/internal/spacedrep"
)

// Minimal in-memory repos for the assembler's boundaries.

type memAttempts struct {
	attempts []*practice.Attempt
}

func (m *memAttempts) Append(_ context.Context, a *practice.Attempt) error {
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

func (m *memAttempts) BySession(_ context.Context, sessionID string) ([]*practice.Attempt, error) {
	var out []*practice.Attempt
	for _, a := range m.attempts {
		if a.SessionID == sessionID {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

type memSessions struct {
	sessions map[string]*practice.Session
}

func newMemSessions() *memSessions {
	return &memSessions{sessions: make(map[string]*practice.Session)}
}

func (m *memSessions) Create(_ context.Context, s *practice.Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

func (m *memSessions) Get(_ context.Context, id string) (*practice.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (m *memSessions) Update(_ context.Context, s *practice.Session) error {
	cp := *s
	m.sessions[s.ID] = &cp
	return nil
}

type memRecords struct {
	records map[string]*competency.Record
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
	if m.records == nil {
		m.records = make(map[string]*competency.Record)
	}
	cp := *rec
	m.records[rec.UserID+"/"+rec.TopicID] = &cp
	return nil
}

func (m *memRecords) ListByUser(_ context.Context, _ string) ([]*competency.Record, error) {
	return nil, nil
}

type memCards struct {
	cards map[string]*spacedrep.Card
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
	if m.cards == nil {
		m.cards = make(map[string]*spacedrep.Card)
	}
	cp := *card
	m.cards[card.UserID+"/"+card.QuestionID] = &cp
	return nil
}

func (m *memCards) Due(_ context.Context, _ string, _ time.Time, _ int) ([]*spacedrep.Card, error) {
	return nil, nil
}

func (m *memCards) ListByUser(_ context.Context, _ string) ([]*spacedrep.Card, error) {
	return nil, nil
}

type fixture struct {
	asm      *Assembler
	attempts *memAttempts
	sessions *memSessions
	course   *course.Course
	bank     *question.StaticBank
}

// newFixture builds a 3-topic course (50/30/20) with questionsPerTopic
// active questions per topic.
func newFixture(t *testing.T, questionsPerTopic int, seed int64) *fixture {
	t.Helper()
	c := weightedCourse(map[string]string{"routing": "50", "switching": "30", "security": "20"})

	var qs []question.Question
	for _, topic := range c.Topics {
		for i := 0; i < questionsPerTopic; i++ {
			qs = append(qs, question.Question{
				ID:         fmt.Sprintf("%s-%02d", topic.ID, i),
				TopicID:    topic.ID,
				Difficulty: dec("0.50"),
				Active:     true,
			})
		}
	}
	bank, err := question.NewStaticBank(qs)
	if err != nil {
		t.Fatal(err)
	}

	attempts := &memAttempts{}
	sessions := newMemSessions()
	tracker := competency.NewTracker(&memRecords{}, competency.DefaultParams())
	scheduler := spacedrep.NewScheduler(&memCards{}, nil, spacedrep.DefaultParams())
	svc := practice.NewService(attempts, sessions, tracker, scheduler, bank)

	asm := NewAssembler(bank, attempts, svc, rand.New(rand.NewSource(seed)), DefaultParams())
	return &fixture{asm: asm, attempts: attempts, sessions: sessions, course: c, bank: bank}
}

func TestAssemble_ProportionalAndShuffled(t *testing.T) {
	f := newFixture(t, 10, 42)

	sess, err := f.asm.Assemble(context.Background(), "u1", f.course, 10)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if sess.Kind != practice.KindMockExam || sess.Total != 10 {
		t.Errorf("session kind/total = %s/%d, want mock_exam/10", sess.Kind, sess.Total)
	}

	counts := make(map[string]int)
	seen := make(map[string]bool)
	for _, qid := range sess.QuestionIDs {
		if seen[qid] {
			t.Errorf("question %s selected twice", qid)
		}
		seen[qid] = true
		q, _ := f.bank.Get(qid)
		counts[q.TopicID]++
	}
	if counts["routing"] != 5 || counts["switching"] != 3 || counts["security"] != 2 {
		t.Errorf("per-topic counts = %v, want 5/3/2", counts)
	}
}

func TestAssemble_ExcludesRecentAttempts(t *testing.T) {
	f := newFixture(t, 6, 7)
	ctx := context.Background()

	// The user recently saw routing-00; it must not reappear.
	f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
		UserID: "u1", QuestionID: "routing-00", SessionID: "old", TopicID: "routing",
	})

	sess, err := f.asm.Assemble(ctx, "u1", f.course, 10)
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	for _, qid := range sess.QuestionIDs {
		if qid == "routing-00" {
			t.Error("recently attempted question was selected")
		}
	}
}

func TestAssemble_InsufficientPoolCreatesNoSession(t *testing.T) {
	// security needs 2 of 10 but has only 1 eligible question.
	f := newFixture(t, 5, 9)
	ctx := context.Background()
	for i := 1; i < 5; i++ {
		f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
			UserID: "u1", QuestionID: fmt.Sprintf("security-%02d", i), SessionID: "old", TopicID: "security",
		})
	}

	_, err := f.asm.Assemble(ctx, "u1", f.course, 10)
	var poolErr *question.InsufficientPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("err = %v, want InsufficientPoolError", err)
	}
	if poolErr.TopicID != "security" || poolErr.Need != 2 || poolErr.Have != 1 {
		t.Errorf("unexpected pool error: %+v", poolErr)
	}
	if len(f.sessions.sessions) != 0 {
		t.Error("failed assembly must not create a session")
	}
}

func TestAssemble_RecencyWindowIsBounded(t *testing.T) {
	f := newFixture(t, 6, 13)
	ctx := context.Background()

	// Bury an old attempt on routing-00 beneath 50 newer attempts on
	// another question; it falls outside the window and is eligible again.
	f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
		UserID: "u1", QuestionID: "routing-00", SessionID: "old", TopicID: "routing",
	})
	for i := 0; i < 50; i++ {
		f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
			UserID: "u1", QuestionID: "switching-00", SessionID: fmt.Sprintf("s%d", i), TopicID: "switching",
		})
	}

	// routing needs 5 of its 6 questions; with routing-00 excluded it
	// would still fit, so assert eligibility directly instead: all 6
	// needed once one more recent routing attempt lands in the window.
	f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
		UserID: "u1", QuestionID: "routing-01", SessionID: "new", TopicID: "routing",
	})

	_, err := f.asm.Assemble(ctx, "u1", f.course, 10)
	if err != nil {
		t.Fatalf("Assemble: %v (routing-00 should have aged out of the window)", err)
	}
}
