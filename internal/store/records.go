package store

import (
	"context"
	"fmt"

	"github.com/certready/certready/ent"
	"github.com/certready/certready/ent/competencyrecord"
	"github.com/certready/certready/internal/competency"
)

// RecordRepo persists competency records, one mutable row per
// (user, topic) pair.
type RecordRepo struct {
	client *ent.Client
}

var _ competency.RecordRepo = (*RecordRepo)(nil)

func (r *RecordRepo) Get(ctx context.Context, userID, topicID string) (*competency.Record, error) {
	row, err := r.client.CompetencyRecord.Query().
		Where(
			competencyrecord.UserID(userID),
			competencyrecord.TopicID(topicID),
		).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query competency record: %w", err)
	}
	return recordFromRow(row)
}

func (r *RecordRepo) Put(ctx context.Context, rec *competency.Record) error {
	row, err := r.client.CompetencyRecord.Query().
		Where(
			competencyrecord.UserID(rec.UserID),
			competencyrecord.TopicID(rec.TopicID),
		).
		Only(ctx)
	switch {
	case ent.IsNotFound(err):
		_, err = r.client.CompetencyRecord.Create().
			SetUserID(rec.UserID).
			SetTopicID(rec.TopicID).
			SetScore(rec.Score.String()).
			SetAttempts(rec.Attempts).
			SetCorrect(rec.Correct).
			SetIncorrect(rec.Incorrect).
			SetLastUpdatedAt(rec.LastUpdatedAt).
			Save(ctx)
	case err == nil:
		_, err = row.Update().
			SetScore(rec.Score.String()).
			SetAttempts(rec.Attempts).
			SetCorrect(rec.Correct).
			SetIncorrect(rec.Incorrect).
			SetLastUpdatedAt(rec.LastUpdatedAt).
			Save(ctx)
	}
	if err != nil {
		return fmt.Errorf("put competency record: %w", err)
	}
	return nil
}

func (r *RecordRepo) ListByUser(ctx context.Context, userID string) ([]*competency.Record, error) {
	rows, err := r.client.CompetencyRecord.Query().
		Where(competencyrecord.UserID(userID)).
		Order(ent.Asc(competencyrecord.FieldTopicID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list competency records: %w", err)
	}
	recs := make([]*competency.Record, 0, len(rows))
	for _, row := range rows {
		rec, err := recordFromRow(row)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func recordFromRow(row *ent.CompetencyRecord) (*competency.Record, error) {
	score, err := parseDecimal("score", row.Score)
	if err != nil {
		return nil, err
	}
	return &competency.Record{
		UserID:        row.UserID,
		TopicID:       row.TopicID,
		Score:         score,
		Attempts:      row.Attempts,
		Correct:       row.Correct,
		Incorrect:     row.Incorrect,
		LastUpdatedAt: row.LastUpdatedAt,
	}, nil
}
