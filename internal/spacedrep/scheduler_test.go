package spacedrep

import (
	"context"
	"sort"
	"testing"
	"time"
)

// memCards is an in-memory CardRepo for tests.
type memCards struct {
	cards map[string]*Card
}

func newMemCards() *memCards {
	return &memCards{cards: make(map[string]*Card)}
}

func cardKey(userID, questionID string) string { return userID + "/" + questionID }

func (m *memCards) Get(_ context.Context, userID, questionID string) (*Card, error) {
	c, ok := m.cards[cardKey(userID, questionID)]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (m *memCards) Put(_ context.Context, card *Card) error {
	cp := *card
	m.cards[cardKey(card.UserID, card.QuestionID)] = &cp
	return nil
}

func (m *memCards) Due(_ context.Context, userID string, now time.Time, limit int) ([]*Card, error) {
	var due []*Card
	for _, c := range m.cards {
		if c.UserID == userID && c.IsDue(now) {
			cp := *c
			due = append(due, &cp)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		return due[i].NextReviewAt.Before(due[j].NextReviewAt)
	})
	if limit > 0 && len(due) > limit {
		due = due[:limit]
	}
	return due, nil
}

func (m *memCards) ListByUser(_ context.Context, userID string) ([]*Card, error) {
	var out []*Card
	for _, c := range m.cards {
		if c.UserID == userID {
			cp := *c
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fixedLog is a canned ReviewLog.
type fixedLog struct {
	days []time.Time
}

func (f *fixedLog) ReviewDays(_ context.Context, _ string) ([]time.Time, error) {
	return f.days, nil
}

func TestRecordReview_FirstSightCreatesCard(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())

	card, err := s.RecordReview(context.Background(), "u1", "q1", 5, testNow)
	if err != nil {
		t.Fatalf("RecordReview: %v", err)
	}
	// First sighting is card creation, not a graded review.
	if card.TotalReviews != 0 || card.Repetitions != 0 {
		t.Errorf("fresh card reviews/reps = %d/%d, want 0/0", card.TotalReviews, card.Repetitions)
	}
	if !card.Easiness.Equal(dec("2.50")) || card.IntervalDays != 1 {
		t.Errorf("fresh card EF/interval = %s/%d, want 2.50/1", card.Easiness, card.IntervalDays)
	}
}

func TestRecordReview_SecondSightAppliesGrade(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())
	ctx := context.Background()

	if _, err := s.RecordReview(ctx, "u1", "q1", 4, testNow); err != nil {
		t.Fatal(err)
	}
	later := testNow.AddDate(0, 0, 1)
	card, err := s.RecordReview(ctx, "u1", "q1", 5, later)
	if err != nil {
		t.Fatal(err)
	}
	if card.TotalReviews != 1 || card.Repetitions != 1 {
		t.Errorf("reviews/reps = %d/%d, want 1/1", card.TotalReviews, card.Repetitions)
	}
	if !card.Easiness.Equal(dec("2.60")) {
		t.Errorf("easiness = %s, want 2.60", card.Easiness)
	}

	stored, _ := repo.Get(ctx, "u1", "q1")
	if stored.TotalReviews != 1 {
		t.Error("review was not persisted")
	}
}

func TestRecordReview_QualityContractSurfaced(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())
	ctx := context.Background()

	if _, err := s.RecordReview(ctx, "u1", "q1", 4, testNow); err != nil {
		t.Fatal(err)
	}
	if _, err := s.RecordReview(ctx, "u1", "q1", 7, testNow); err == nil {
		t.Error("quality 7 should fail")
	}
}

func TestDueCards_OrderedMostOverdueFirst(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())
	ctx := context.Background()

	now := testNow
	for i, q := range []string{"q1", "q2", "q3"} {
		card := NewCard("u1", q, now.AddDate(0, 0, -3+i), DefaultParams())
		if err := repo.Put(ctx, card); err != nil {
			t.Fatal(err)
		}
	}
	// Not due: next review in the future.
	future := NewCard("u1", "q4", now, DefaultParams())
	if err := repo.Put(ctx, future); err != nil {
		t.Fatal(err)
	}

	due, err := s.DueCards(ctx, "u1", now, 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due cards, want 2 (capped)", len(due))
	}
	if due[0].QuestionID != "q1" || due[1].QuestionID != "q2" {
		t.Errorf("order = %s, %s; want q1, q2", due[0].QuestionID, due[1].QuestionID)
	}
}
