package spacedrep

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/numeric"
)

// Stats summarizes a user's review cards.
type Stats struct {
	TotalCards  int
	DueToday    int
	DueThisWeek int
	Mastered    int

	// MeanSuccessRate averages each card's own success rate across
	// cards that have been reviewed at least once (per-card mean, not a
	// pooled ratio).
	MeanSuccessRate decimal.Decimal

	// StreakDays is the number of consecutive calendar days with at
	// least one review, ending today or yesterday.
	StreakDays int
}

// Statistics computes review statistics for the user at now.
func (s *Scheduler) Statistics(ctx context.Context, userID string, now time.Time) (*Stats, error) {
	cards, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	endOfToday := endOfDay(now)
	endOfWeek := now.AddDate(0, 0, 7)

	stats := &Stats{TotalCards: len(cards)}
	var rates []decimal.Decimal
	for _, c := range cards {
		if !c.NextReviewAt.After(endOfToday) {
			stats.DueToday++
		}
		if !c.NextReviewAt.After(endOfWeek) {
			stats.DueThisWeek++
		}
		if c.Mastered(s.params) {
			stats.Mastered++
		}
		if rate, ok := c.SuccessRate(); ok {
			rates = append(rates, rate)
		}
	}
	stats.MeanSuccessRate = numeric.Mean(rates)

	if s.log != nil {
		days, err := s.log.ReviewDays(ctx, userID)
		if err != nil {
			return nil, fmt.Errorf("review days: %w", err)
		}
		stats.StreakDays = streak(days, now)
	}
	return stats, nil
}

// streak counts consecutive review days walking back from today. A
// streak survives overnight: it still counts if the latest review day is
// yesterday.
func streak(days []time.Time, now time.Time) int {
	if len(days) == 0 {
		return 0
	}

	today := dateOf(now)
	latest := dateOf(days[0])
	if latest.Before(today.AddDate(0, 0, -1)) {
		return 0
	}

	count := 1
	prev := latest
	for _, d := range days[1:] {
		day := dateOf(d)
		if day.Equal(prev) {
			continue
		}
		if day.Equal(prev.AddDate(0, 0, -1)) {
			count++
			prev = day
			continue
		}
		break
	}
	return count
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func endOfDay(t time.Time) time.Time {
	return dateOf(t).AddDate(0, 0, 1).Add(-time.Nanosecond)
}
