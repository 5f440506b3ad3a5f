package spacedrep

import (
	"context"
	"testing"
	"time"
)

func putCard(t *testing.T, repo *memCards, c *Card) {
	t.Helper()
	if err := repo.Put(context.Background(), c); err != nil {
		t.Fatal(err)
	}
}

func TestStatistics_Counts(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())
	now := testNow

	// Due yesterday.
	overdue := NewCard("u1", "q1", now.AddDate(0, 0, -2), DefaultParams())
	putCard(t, repo, overdue)

	// Due in 3 days.
	thisWeek := NewCard("u1", "q2", now, DefaultParams())
	thisWeek.NextReviewAt = now.AddDate(0, 0, 3)
	putCard(t, repo, thisWeek)

	// Due in 20 days, mastered (EF 2.50, interval 30).
	mastered := NewCard("u1", "q3", now, DefaultParams())
	mastered.IntervalDays = 30
	mastered.NextReviewAt = now.AddDate(0, 0, 20)
	putCard(t, repo, mastered)

	// High EF but short interval: not mastered.
	shortInterval := NewCard("u1", "q4", now, DefaultParams())
	shortInterval.Easiness = dec("2.80")
	shortInterval.NextReviewAt = now.AddDate(0, 0, 40)
	putCard(t, repo, shortInterval)

	stats, err := s.Statistics(context.Background(), "u1", now)
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}
	if stats.TotalCards != 4 {
		t.Errorf("TotalCards = %d, want 4", stats.TotalCards)
	}
	if stats.DueToday != 1 {
		t.Errorf("DueToday = %d, want 1", stats.DueToday)
	}
	if stats.DueThisWeek != 2 {
		t.Errorf("DueThisWeek = %d, want 2", stats.DueThisWeek)
	}
	if stats.Mastered != 1 {
		t.Errorf("Mastered = %d, want 1", stats.Mastered)
	}
}

func TestStatistics_MeanSuccessRatePerCard(t *testing.T) {
	repo := newMemCards()
	s := NewScheduler(repo, nil, DefaultParams())
	now := testNow

	a := NewCard("u1", "q1", now, DefaultParams())
	a.TotalReviews, a.SuccessfulReviews = 4, 4 // 1.00
	putCard(t, repo, a)

	b := NewCard("u1", "q2", now, DefaultParams())
	b.TotalReviews, b.SuccessfulReviews = 10, 5 // 0.50
	putCard(t, repo, b)

	// Never reviewed: excluded from the mean, not counted as zero.
	c := NewCard("u1", "q3", now, DefaultParams())
	putCard(t, repo, c)

	stats, err := s.Statistics(context.Background(), "u1", now)
	if err != nil {
		t.Fatal(err)
	}
	if !stats.MeanSuccessRate.Equal(dec("0.75")) {
		t.Errorf("MeanSuccessRate = %s, want per-card mean 0.75", stats.MeanSuccessRate)
	}
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestStreak(t *testing.T) {
	now := day("2026-03-10").Add(15 * time.Hour)
	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{"no history", nil, 0},
		{"today only", []time.Time{day("2026-03-10")}, 1},
		{"ends yesterday", []time.Time{day("2026-03-09"), day("2026-03-08")}, 2},
		{"broken two days ago", []time.Time{day("2026-03-08"), day("2026-03-07")}, 0},
		{
			"gap stops the count",
			[]time.Time{day("2026-03-10"), day("2026-03-09"), day("2026-03-06")},
			2,
		},
		{
			"duplicate days collapse",
			[]time.Time{day("2026-03-10"), day("2026-03-10"), day("2026-03-09")},
			2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := streak(tt.days, now); got != tt.want {
				t.Errorf("streak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStatistics_StreakFromLog(t *testing.T) {
	repo := newMemCards()
	log := &fixedLog{days: []time.Time{dateOf(testNow), dateOf(testNow.AddDate(0, 0, -1))}}
	s := NewScheduler(repo, log, DefaultParams())

	stats, err := s.Statistics(context.Background(), "u1", testNow)
	if err != nil {
		t.Fatal(err)
	}
	if stats.StreakDays != 2 {
		t.Errorf("StreakDays = %d, want 2", stats.StreakDays)
	}
}
