package simulation

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"testing"
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

// In-memory repos: the simulation is the integration harness, so the
// fakes implement every boundary the engine touches.

type memRecords struct {
	records map[string]*competency.Record
}

func (m *memRecords) key(u, t string) string { return u + "/" + t }

func (m *memRecords) Get(_ context.Context, userID, topicID string) (*competency.Record, error) {
	r, ok := m.records[m.key(userID, topicID)]
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
	m.records[m.key(rec.UserID, rec.TopicID)] = &cp
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
	sort.Slice(out, func(i, j int) bool { return out[i].TopicID < out[j].TopicID })
	return out, nil
}

type memCards struct {
	cards map[string]*spacedrep.Card
}

func (m *memCards) key(u, q string) string { return u + "/" + q }

func (m *memCards) Get(_ context.Context, userID, questionID string) (*spacedrep.Card, error) {
	c, ok := m.cards[m.key(userID, questionID)]
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
	m.cards[m.key(card.UserID, card.QuestionID)] = &cp
	return nil
}

func (m *memCards) Due(_ context.Context, userID string, now time.Time, limit int) ([]*spacedrep.Card, error) {
	var out []*spacedrep.Card
	for _, c := range m.cards {
		if c.UserID == userID && c.IsDue(now) {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].NextReviewAt.Equal(out[j].NextReviewAt) {
			return out[i].NextReviewAt.Before(out[j].NextReviewAt)
		}
		return out[i].QuestionID < out[j].QuestionID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
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

func (m *memAttempts) ReviewDays(_ context.Context, userID string) ([]time.Time, error) {
	var days []time.Time
	seen := make(map[time.Time]bool)
	for i := len(m.attempts) - 1; i >= 0; i-- {
		a := m.attempts[i]
		if a.UserID != userID {
			continue
		}
		ts := a.CreatedAt.UTC()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days, nil
}

type memSessions struct {
	sessions map[string]*practice.Session
}

func (m *memSessions) Create(_ context.Context, s *practice.Session) error {
	if m.sessions == nil {
		m.sessions = make(map[string]*practice.Session)
	}
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

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// testEngine wires a 3-topic course with enough questions that the
// exam's recency exclusion never starves a topic.
func testEngine(t *testing.T, seed int64) Engine {
	t.Helper()
	c := &course.Course{
		ID:           "net-plus",
		Name:         "Network Certification",
		PassingScore: dec("70"),
		Topics: []course.Topic{
			{ID: "routing", Code: "1.0", Name: "Routing", Ordinal: 1, Weight: dec("50")},
			{ID: "switching", Code: "2.0", Name: "Switching", Ordinal: 2, Weight: dec("30")},
			{ID: "security", Code: "3.0", Name: "Security", Ordinal: 3, Weight: dec("20")},
		},
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("course fixture: %v", err)
	}

	var qs []question.Question
	difficulties := []string{"0.10", "0.30", "0.50", "0.70", "0.90"}
	for _, topic := range c.Topics {
		for i := 0; i < 60; i++ {
			qs = append(qs, question.Question{
				ID:         fmt.Sprintf("%s-%03d", topic.ID, i),
				TopicID:    topic.ID,
				Difficulty: dec(difficulties[i%len(difficulties)]),
				Active:     true,
			})
		}
	}
	bank, err := question.NewStaticBank(qs)
	if err != nil {
		t.Fatal(err)
	}

	records := &memRecords{}
	attempts := &memAttempts{}
	tracker := competency.NewTracker(records, competency.DefaultParams())
	scheduler := spacedrep.NewScheduler(&memCards{}, attempts, spacedrep.DefaultParams())
	svc := practice.NewService(attempts, &memSessions{}, tracker, scheduler, bank)
	src := rand.New(rand.NewSource(seed))

	return Engine{
		Course:    c,
		Bank:      bank,
		Tracker:   tracker,
		Selector:  adaptive.NewSelector(records, bank, src, adaptive.DefaultWindow),
		Scheduler: scheduler,
		Practice:  svc,
		Assembler: mockexam.NewAssembler(bank, attempts, svc, src, mockexam.DefaultParams()),
	}
}

func runParams(seed int64) Params {
	p := DefaultParams()
	p.Seed = seed
	p.Days = 5
	p.QuestionsPerDay = 8
	p.ExamSize = 20
	p.Start = time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)
	return p
}

func TestRun_FullLifecycle(t *testing.T) {
	r := NewRunner(testEngine(t, 11), runParams(11))
	report, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(report.Diagnostic) != 3 || len(report.Final) != 3 {
		t.Fatalf("topic snapshots = %d/%d, want 3/3", len(report.Diagnostic), len(report.Final))
	}
	for _, tr := range report.Diagnostic {
		if !numeric.InUnitInterval(tr.Score) {
			t.Errorf("diagnostic score %s out of [0,1] for %s", tr.Score, tr.Topic.ID)
		}
		if tr.Status == "" {
			t.Errorf("missing status for %s", tr.Topic.ID)
		}
	}
	if report.PracticeAttempts == 0 {
		t.Error("no practice attempts recorded")
	}
	if report.Reviews == 0 {
		t.Error("no spaced reviews happened over 5 days")
	}
	if !numeric.InUnitInterval(report.CourseCompetency) {
		t.Errorf("course competency %s out of [0,1]", report.CourseCompetency)
	}

	if report.Exam == nil {
		t.Fatal("no exam result")
	}
	if report.Exam.Total != 20 {
		t.Errorf("exam total = %d, want 20", report.Exam.Total)
	}
	if report.Exam.Recommendation == "" {
		t.Error("missing exam recommendation")
	}

	if report.Stats == nil || report.Stats.TotalCards == 0 {
		t.Error("expected review cards after a full run")
	}
	if report.Stats.StreakDays == 0 {
		t.Error("expected a nonzero streak after consecutive practice days")
	}
}

func TestRun_DeterministicForSeed(t *testing.T) {
	run := func() *Report {
		t.Helper()
		r := NewRunner(testEngine(t, 7), runParams(7))
		report, err := r.Run(context.Background())
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
		return report
	}

	a, b := run(), run()
	if !a.CourseCompetency.Equal(b.CourseCompetency) {
		t.Errorf("course competency differs across runs: %s vs %s", a.CourseCompetency, b.CourseCompetency)
	}
	if !a.Exam.ScorePercent.Equal(b.Exam.ScorePercent) {
		t.Errorf("exam score differs across runs: %s vs %s", a.Exam.ScorePercent, b.Exam.ScorePercent)
	}
	if a.PracticeAttempts != b.PracticeAttempts || a.Reviews != b.Reviews {
		t.Errorf("attempt counts differ: %d/%d vs %d/%d",
			a.PracticeAttempts, a.Reviews, b.PracticeAttempts, b.Reviews)
	}
}
