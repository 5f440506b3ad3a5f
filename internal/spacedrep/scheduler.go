package spacedrep

import (
	"context"
	"fmt"
	"time"
)

// CardRepo is the storage boundary for review cards.
// Get returns (nil, nil) when the card does not exist yet.
type CardRepo interface {
	Get(ctx context.Context, userID, questionID string) (*Card, error)
	Put(ctx context.Context, card *Card) error

	// Due returns cards with next_review_at <= now, most overdue first,
	// capped at limit (0 = no cap).
	Due(ctx context.Context, userID string, now time.Time, limit int) ([]*Card, error)

	ListByUser(ctx context.Context, userID string) ([]*Card, error)
}

// ReviewLog supplies the distinct days on which the user reviewed,
// newest first. The attempt ledger implements it.
type ReviewLog interface {
	ReviewDays(ctx context.Context, userID string) ([]time.Time, error)
}

// Scheduler manages SM-2 cards over durable storage.
type Scheduler struct {
	repo   CardRepo
	log    ReviewLog
	params Params
}

// NewScheduler creates a scheduler. log may be nil; Statistics then
// reports a zero streak.
func NewScheduler(repo CardRepo, log ReviewLog, params Params) *Scheduler {
	return &Scheduler{repo: repo, log: log, params: params}
}

// Params returns the scheduler's configured parameters.
func (s *Scheduler) Params() Params {
	return s.params
}

// RecordReview applies a review to the (user, question) card and
// persists it. The first sighting of a question creates the card in its
// initial state; the quality grade starts applying from the next review.
func (s *Scheduler) RecordReview(ctx context.Context, userID, questionID string, quality int, now time.Time) (*Card, error) {
	card, err := s.repo.Get(ctx, userID, questionID)
	if err != nil {
		return nil, fmt.Errorf("load card: %w", err)
	}

	if card == nil {
		card = NewCard(userID, questionID, now, s.params)
	} else if err := Review(card, quality, now, s.params); err != nil {
		return nil, err
	}

	if err := s.repo.Put(ctx, card); err != nil {
		return nil, fmt.Errorf("store card: %w", err)
	}
	return card, nil
}

// DueCards returns the user's due cards, most overdue first.
func (s *Scheduler) DueCards(ctx context.Context, userID string, now time.Time, limit int) ([]*Card, error) {
	return s.repo.Due(ctx, userID, now, limit)
}
