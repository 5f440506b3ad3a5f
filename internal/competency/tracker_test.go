package competency

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// memRepo is an in-memory RecordRepo for tests.
type memRepo struct {
	records map[string]*Record
}

func newMemRepo() *memRepo {
	return &memRepo{records: make(map[string]*Record)}
}

func key(userID, topicID string) string { return userID + "/" + topicID }

func (m *memRepo) Get(_ context.Context, userID, topicID string) (*Record, error) {
	rec, ok := m.records[key(userID, topicID)]
	if !ok {
		return nil, nil
	}
	cp := *rec
	return &cp, nil
}

func (m *memRepo) Put(_ context.Context, rec *Record) error {
	cp := *rec
	m.records[key(rec.UserID, rec.TopicID)] = &cp
	return nil
}

func (m *memRepo) ListByUser(_ context.Context, userID string) ([]*Record, error) {
	var out []*Record
	for _, rec := range m.records {
		if rec.UserID == userID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

func testCourse() *course.Course {
	return &course.Course{
		ID:           "net-plus",
		Name:         "Networking",
		PassingScore: dec("70"),
		Topics: []course.Topic{
			{ID: "routing", Ordinal: 1, Weight: dec("50")},
			{ID: "switching", Ordinal: 2, Weight: dec("30")},
			{ID: "security", Ordinal: 3, Weight: dec("20")},
		},
	}
}

func TestInitialize_CreatesRecordsAtInitialScore(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())

	if err := tr.Initialize(context.Background(), "u1", testCourse()); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	recs, _ := repo.ListByUser(context.Background(), "u1")
	if len(recs) != 3 {
		t.Fatalf("got %d records, want 3", len(recs))
	}
	for _, rec := range recs {
		if !rec.Score.Equal(dec("0.50")) {
			t.Errorf("topic %s score = %s, want 0.50", rec.TopicID, rec.Score)
		}
	}
}

func TestInitialize_GuardsAgainstReinitialization(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())
	c := testCourse()

	if err := tr.Initialize(context.Background(), "u1", c); err != nil {
		t.Fatalf("Initialize: %v", err)
	}
	err := tr.Initialize(context.Background(), "u1", c)
	if !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Initialize = %v, want ErrAlreadyInitialized", err)
	}
}

func TestRecordAttempt_CorrectOnHarderQuestion(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())

	// competency 0.50, correct at difficulty 0.80 -> 0.50 + 0.30*0.1 = 0.53
	rec, err := tr.RecordAttempt(context.Background(), "u1", "routing", true, dec("0.80"))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if !rec.Score.Equal(dec("0.53")) {
		t.Errorf("score = %s, want 0.53", rec.Score)
	}
	if rec.Attempts != 1 || rec.Correct != 1 || rec.Incorrect != 0 {
		t.Errorf("counters = %d/%d/%d, want 1/1/0", rec.Attempts, rec.Correct, rec.Incorrect)
	}
}

func TestRecordAttempt_IncorrectOnEasierQuestion(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())

	// competency 0.50, incorrect at difficulty 0.30 -> 0.50 - 0.20*0.1 = 0.48
	rec, err := tr.RecordAttempt(context.Background(), "u1", "routing", false, dec("0.30"))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	if !rec.Score.Equal(dec("0.48")) {
		t.Errorf("score = %s, want 0.48", rec.Score)
	}
}

func TestRecordAttempt_AutoCreatesMissingRecord(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())

	rec, err := tr.RecordAttempt(context.Background(), "u1", "unseen", true, dec("0.50"))
	if err != nil {
		t.Fatalf("RecordAttempt: %v", err)
	}
	// Created at 0.50 before the update; difficulty equals score, so no move.
	if !rec.Score.Equal(dec("0.50")) {
		t.Errorf("score = %s, want 0.50", rec.Score)
	}
}

func TestRecordAttempt_DifficultyContract(t *testing.T) {
	tr := NewTracker(newMemRepo(), DefaultParams())
	for _, d := range []string{"-0.1", "1.01"} {
		_, err := tr.RecordAttempt(context.Background(), "u1", "routing", true, dec(d))
		if !errors.Is(err, ErrDifficultyRange) {
			t.Errorf("difficulty %s: err = %v, want ErrDifficultyRange", d, err)
		}
	}
}

func TestRecordAttempt_InvariantsOverSequence(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())
	ctx := context.Background()

	difficulties := []string{"0", "1", "0.95", "0.05", "0.5", "1", "0", "0.33"}
	for i, d := range difficulties {
		correct := i%2 == 0
		rec, err := tr.RecordAttempt(ctx, "u1", "routing", correct, dec(d))
		if err != nil {
			t.Fatalf("attempt %d: %v", i, err)
		}
		if rec.Score.Cmp(dec("0")) < 0 || rec.Score.Cmp(dec("1")) > 0 {
			t.Fatalf("attempt %d: score %s escaped [0, 1]", i, rec.Score)
		}
		if rec.Attempts != rec.Correct+rec.Incorrect {
			t.Fatalf("attempt %d: %d != %d + %d", i, rec.Attempts, rec.Correct, rec.Incorrect)
		}
	}
}

func TestFinalizeDiagnostic_SetsBaseline(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())
	ctx := context.Background()

	err := tr.FinalizeDiagnostic(ctx, "u1", map[string]TopicOutcome{
		"routing":   {Correct: 3, Total: 4},
		"switching": {Correct: 1, Total: 4},
	})
	if err != nil {
		t.Fatalf("FinalizeDiagnostic: %v", err)
	}

	rec, _ := repo.Get(ctx, "u1", "routing")
	if !rec.Score.Equal(dec("0.75")) {
		t.Errorf("routing score = %s, want 0.75", rec.Score)
	}
	if rec.Attempts != 4 || rec.Correct != 3 || rec.Incorrect != 1 {
		t.Errorf("routing counters = %d/%d/%d", rec.Attempts, rec.Correct, rec.Incorrect)
	}
	rec, _ = repo.Get(ctx, "u1", "switching")
	if !rec.Score.Equal(dec("0.25")) {
		t.Errorf("switching score = %s, want 0.25", rec.Score)
	}
}

func TestFinalizeDiagnostic_OverwritesNotIncrements(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())
	ctx := context.Background()

	if _, err := tr.RecordAttempt(ctx, "u1", "routing", true, dec("0.9")); err != nil {
		t.Fatal(err)
	}
	err := tr.FinalizeDiagnostic(ctx, "u1", map[string]TopicOutcome{
		"routing": {Correct: 2, Total: 4},
	})
	if err != nil {
		t.Fatal(err)
	}
	rec, _ := repo.Get(ctx, "u1", "routing")
	if !rec.Score.Equal(dec("0.5")) {
		t.Errorf("score = %s, want the plain diagnostic ratio 0.5", rec.Score)
	}
}

func TestFinalizeDiagnostic_RejectsBadOutcome(t *testing.T) {
	tr := NewTracker(newMemRepo(), DefaultParams())
	err := tr.FinalizeDiagnostic(context.Background(), "u1", map[string]TopicOutcome{
		"routing": {Correct: 5, Total: 4},
	})
	if err == nil {
		t.Error("correct > total should be rejected")
	}
}

func TestWeightedCourseCompetency(t *testing.T) {
	repo := newMemRepo()
	tr := NewTracker(repo, DefaultParams())
	ctx := context.Background()
	c := testCourse()

	for topicID, score := range map[string]string{
		"routing":   "0.80",
		"switching": "0.50",
		"security":  "0.20",
	} {
		repo.Put(ctx, &Record{UserID: "u1", TopicID: topicID, Score: dec(score)})
	}

	// 0.80*0.5 + 0.50*0.3 + 0.20*0.2 = 0.59
	got, err := tr.WeightedCourseCompetency(ctx, "u1", c)
	if err != nil {
		t.Fatalf("WeightedCourseCompetency: %v", err)
	}
	if !got.Equal(dec("0.59")) {
		t.Errorf("weighted competency = %s, want 0.59", got)
	}
}

func TestWeightedCourseCompetency_ZeroWeights(t *testing.T) {
	tr := NewTracker(newMemRepo(), DefaultParams())
	c := testCourse()
	for i := range c.Topics {
		c.Topics[i].Weight = dec("0")
	}
	got, err := tr.WeightedCourseCompetency(context.Background(), "u1", c)
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsZero() {
		t.Errorf("weighted competency = %s, want 0", got)
	}
}

func TestStatus(t *testing.T) {
	tr := NewTracker(newMemRepo(), DefaultParams())
	tests := []struct {
		score string
		want  Status
	}{
		{"0", StatusBelowTarget},
		{"0.5999", StatusBelowTarget},
		{"0.60", StatusOnTrack},
		{"0.7999", StatusOnTrack},
		{"0.80", StatusAboveTarget},
		{"1", StatusAboveTarget},
	}
	for _, tt := range tests {
		if got := tr.Status(dec(tt.score)); got != tt.want {
			t.Errorf("Status(%s) = %s, want %s", tt.score, got, tt.want)
		}
	}
}
