package store

import (
	"context"
	"fmt"
	"time"

	"github.com/certready/certready/ent"
	"github.com/certready/certready/ent/reviewcard"
	"github.com/certready/certready/internal/spacedrep"
)

// CardRepo persists review cards, one mutable row per (user, question)
// pair.
type CardRepo struct {
	client *ent.Client
}

var _ spacedrep.CardRepo = (*CardRepo)(nil)

func (r *CardRepo) Get(ctx context.Context, userID, questionID string) (*spacedrep.Card, error) {
	row, err := r.client.ReviewCard.Query().
		Where(
			reviewcard.UserID(userID),
			reviewcard.QuestionID(questionID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query review card: %w", err)
	}
	return cardFromRow(row)
}

func (r *CardRepo) Put(ctx context.Context, card *spacedrep.Card) error {
	row, err := r.client.ReviewCard.Query().
		Where(
			reviewcard.UserID(card.UserID),
			reviewcard.QuestionID(card.QuestionID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.ReviewCard.Create().
			SetUserID(card.UserID).
			SetQuestionID(card.QuestionID).
			SetEasiness(card.Easiness.String()).
			SetRepetitions(card.Repetitions).
			SetIntervalDays(card.IntervalDays).
			SetLastReviewedAt(card.LastReviewedAt).
			SetNextReviewAt(card.NextReviewAt).
			SetTotalReviews(card.TotalReviews).
			SetSuccessfulReviews(card.SuccessfulReviews).
			Save(ctx)
	case err == nil:
		_, err = row.Update().
			SetEasiness(card.Easiness.String()).
			SetRepetitions(card.Repetitions).
			SetIntervalDays(card.IntervalDays).
			SetLastReviewedAt(card.LastReviewedAt).
			SetNextReviewAt(card.NextReviewAt).
			SetTotalReviews(card.TotalReviews).
			SetSuccessfulReviews(card.SuccessfulReviews).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("put review card: %w", err)
	}
	return nil
}

func (r *CardRepo) Due(ctx context.Context, userID string, now time.Time, limit int) ([]*spacedrep.Card, error) {
	q := r.client.ReviewCard.Query().
		Where(
			reviewcard.UserID(userID),
			reviewcard.NextReviewAtLTE(now),
		).
		Order(ent.Asc(reviewcard.FieldNextReviewAt))
	if limit > 0 {
		q = q.Limit(limit)
	}
	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query due cards: %w", err)
	}
	return cardsFromRows(rows)
}

func (r *CardRepo) ListByUser(ctx context.Context, userID string) ([]*spacedrep.Card, error) {
	rows, err := r.client.ReviewCard.Query().
		Where(reviewcard.UserID(userID)).
		Order(ent.Asc(reviewcard.FieldQuestionID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list review cards: %w", err)
	}
	return cardsFromRows(rows)
}

func cardsFromRows(rows []*ent.ReviewCard) ([]*spacedrep.Card, error) {
	cards := make([]*spacedrep.Card, 0, len(rows))
	for _, row := range rows {
		card, err := cardFromRow(row)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

func cardFromRow(row *ent.ReviewCard) (*spacedrep.Card, error) {
	ef, err := parseDecimal("easiness", row.Easiness)
	if err != nil {
		return nil, err
	}
	return &spacedrep.Card{
		UserID:            row.UserID,
		QuestionID:        row.QuestionID,
		Easiness:          ef,
		Repetitions:       row.Repetitions,
		IntervalDays:      row.IntervalDays,
		LastReviewedAt:    row.LastReviewedAt,
		NextReviewAt:      row.NextReviewAt,
		TotalReviews:      row.TotalReviews,
		SuccessfulReviews: row.SuccessfulReviews,
	}, nil
}
