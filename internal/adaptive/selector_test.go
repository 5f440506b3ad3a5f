package adaptive

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/question"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// memRecords is a minimal competency.RecordRepo for tests.
type memRecords struct {
	recs []*competency.Record
}

func (m *memRecords) Get(_ context.Context, userID, topicID string) (*competency.Record, error) {
	for _, r := range m.recs {
		if r.UserID == userID && r.TopicID == topicID {
			cp := *r
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *memRecords) Put(_ context.Context, rec *competency.Record) error {
	cp := *rec
	m.recs = append(m.recs, &cp)
	return nil
}

func (m *memRecords) ListByUser(_ context.Context, userID string) ([]*competency.Record, error) {
	var out []*competency.Record
	for _, r := range m.recs {
		if r.UserID == userID {
			cp := *r
			out = append(out, &cp)
		}
	}
	return out, nil
}

func record(topicID, score string) *competency.Record {
	return &competency.Record{UserID: "u1", TopicID: topicID, Score: dec(score)}
}

func testCourse() *course.Course {
	return &course.Course{
		ID:           "net-plus",
		PassingScore: dec("70"),
		Topics: []course.Topic{
			{ID: "routing", Ordinal: 1, Weight: dec("50")},
			{ID: "switching", Ordinal: 2, Weight: dec("30")},
			{ID: "security", Ordinal: 3, Weight: dec("20")},
		},
	}
}

func q(id, topicID, difficulty string) question.Question {
	return question.Question{ID: id, TopicID: topicID, Difficulty: dec(difficulty), Active: true}
}

func bankOf(t *testing.T, qs ...question.Question) *question.StaticBank {
	t.Helper()
	b, err := question.NewStaticBank(qs)
	if err != nil {
		t.Fatal(err)
	}
	return b
}

func newSelector(recs *memRecords, bank question.Bank, seed int64) *Selector {
	return NewSelector(recs, bank, rand.New(rand.NewSource(seed)), DefaultWindow)
}

func TestWeakestTopic_Minimum(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{
		record("routing", "0.70"),
		record("switching", "0.40"),
		record("security", "0.55"),
	}}
	sel := newSelector(recs, bankOf(t), 1)

	topic, rec, err := sel.WeakestTopic(context.Background(), "u1", testCourse())
	if err != nil {
		t.Fatalf("WeakestTopic: %v", err)
	}
	if topic.ID != "switching" || !rec.Score.Equal(dec("0.40")) {
		t.Errorf("weakest = %s (%s), want switching (0.40)", topic.ID, rec.Score)
	}
}

func TestWeakestTopic_TieBreaksOnOrdinal(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{
		record("security", "0.30"),
		record("switching", "0.30"),
		record("routing", "0.90"),
	}}
	sel := newSelector(recs, bankOf(t), 1)

	topic, _, err := sel.WeakestTopic(context.Background(), "u1", testCourse())
	if err != nil {
		t.Fatal(err)
	}
	if topic.ID != "switching" {
		t.Errorf("tie should break to lowest ordinal, got %s", topic.ID)
	}
}

func TestWeakestTopic_NoRecords(t *testing.T) {
	sel := newSelector(&memRecords{}, bankOf(t), 1)
	_, _, err := sel.WeakestTopic(context.Background(), "u1", testCourse())
	if !errors.Is(err, ErrNoCompetencyRecords) {
		t.Errorf("err = %v, want ErrNoCompetencyRecords", err)
	}
}

func TestSelectNext_PicksWithinWindow(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{record("switching", "0.50"), record("routing", "0.90")}}
	bank := bankOf(t,
		q("in-window", "switching", "0.55"),
		q("too-hard", "switching", "0.75"),
		q("too-easy", "switching", "0.30"),
	)
	sel := newSelector(recs, bank, 3)

	for i := 0; i < 10; i++ {
		got, err := sel.SelectNext(context.Background(), "u1", testCourse(), nil)
		if err != nil {
			t.Fatalf("SelectNext: %v", err)
		}
		if got.ID != "in-window" {
			t.Fatalf("picked %s, want the only in-window question", got.ID)
		}
	}
}

func TestSelectNext_FallbackToTopicAnyDifficulty(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{record("switching", "0.10"), record("routing", "0.90")}}
	bank := bankOf(t, q("hard-one", "switching", "0.95"))
	sel := newSelector(recs, bank, 3)

	got, err := sel.SelectNext(context.Background(), "u1", testCourse(), nil)
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if got.ID != "hard-one" {
		t.Errorf("picked %s, want hard-one via topic fallback", got.ID)
	}
}

func TestSelectNext_FallbackToCourse(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{record("switching", "0.50"), record("routing", "0.90")}}
	bank := bankOf(t, q("elsewhere", "routing", "0.40"))
	sel := newSelector(recs, bank, 3)

	got, err := sel.SelectNext(context.Background(), "u1", testCourse(), nil)
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if got.ID != "elsewhere" {
		t.Errorf("picked %s, want elsewhere via course fallback", got.ID)
	}
}

func TestSelectNext_Exhausted(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{record("switching", "0.50")}}
	bank := bankOf(t, q("seen", "switching", "0.50"))
	sel := newSelector(recs, bank, 3)

	_, err := sel.SelectNext(context.Background(), "u1", testCourse(), map[string]bool{"seen": true})
	if !errors.Is(err, ErrNoQuestionAvailable) {
		t.Errorf("err = %v, want ErrNoQuestionAvailable", err)
	}
}

func TestSelectNext_WindowClampedAtEdges(t *testing.T) {
	recs := &memRecords{recs: []*competency.Record{record("switching", "0.02")}}
	bank := bankOf(t, q("floor", "switching", "0"))
	sel := newSelector(recs, bank, 3)

	got, err := sel.SelectNext(context.Background(), "u1", testCourse(), nil)
	if err != nil {
		t.Fatalf("SelectNext: %v", err)
	}
	if got.ID != "floor" {
		t.Errorf("difficulty 0 should fall inside the clamped window, got %s", got.ID)
	}
}
