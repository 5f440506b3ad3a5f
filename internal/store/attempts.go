package store

import (
	"context"
	"fmt"
	"time"

	"github.com/certready/certready/ent"
	"github.com/certready/certready/ent/attemptevent"
	"github.com/certready/certready/internal/practice"
)

// AttemptRepo is the append-only attempt ledger. Every row carries a
// global sequence number; rows are never updated or deleted.
type AttemptRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

var _ practice.AttemptRepo = (*AttemptRepo)(nil)

func (r *AttemptRepo) Append(ctx context.Context, a *practice.Attempt) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.AttemptEvent.Create().
		SetSequence(seqNum).
		SetAttemptID(a.ID).
		SetUserID(a.UserID).
		SetQuestionID(a.QuestionID).
		SetSessionID(a.SessionID).
		SetTopicID(a.TopicID).
		SetCorrect(a.Correct).
		SetCompetencyAtAttempt(a.CompetencyAtAttempt.String()).
		SetDifficultyAtAttempt(a.DifficultyAtAttempt.String())
	if !a.CreatedAt.IsZero() {
		builder = builder.SetTimestamp(a.CreatedAt)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("append attempt: %w", err)
	}
	return nil
}

func (r *AttemptRepo) Exists(ctx context.Context, userID, questionID, sessionID string) (bool, error) {
	n, err := r.client.AttemptEvent.Query().
		Where(
			attemptevent.UserID(userID),
			attemptevent.QuestionID(questionID),
			attemptevent.SessionID(sessionID),
		).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count attempts: %w", err)
	}
	return n > 0, nil
}

func (r *AttemptRepo) RecentQuestionIDs(ctx context.Context, userID string, limit int) ([]string, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Limit(limit).
		Select(attemptevent.FieldQuestionID).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent attempts: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.QuestionID)
	}
	return ids, nil
}

func (r *AttemptRepo) BySession(ctx context.Context, sessionID string) ([]*practice.Attempt, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.SessionID(sessionID)).
		Order(ent.Asc(attemptevent.FieldSequence)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query session attempts: %w", err)
	}
	attempts := make([]*practice.Attempt, 0, len(rows))
	for _, row := range rows {
		a, err := attemptFromRow(row)
		if err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// ReviewDays returns the distinct UTC days on which the user answered
// at least one question, newest first.
func (r *AttemptRepo) ReviewDays(ctx context.Context, userID string) ([]time.Time, error) {
	rows, err := r.client.AttemptEvent.Query().
		Where(attemptevent.UserID(userID)).
		Order(ent.Desc(attemptevent.FieldSequence)).
		Select(attemptevent.FieldTimestamp).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query attempt days: %w", err)
	}

	var days []time.Time
	seen := make(map[time.Time]bool)
	for _, row := range rows {
		ts := row.Timestamp.UTC()
		day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
		if !seen[day] {
			seen[day] = true
			days = append(days, day)
		}
	}
	return days, nil
}

func attemptFromRow(row *ent.AttemptEvent) (*practice.Attempt, error) {
	comp, err := parseDecimal("competency_at_attempt", row.CompetencyAtAttempt)
	if err != nil {
		return nil, err
	}
	diff, err := parseDecimal("difficulty_at_attempt", row.DifficultyAtAttempt)
	if err != nil {
		return nil, err
	}
	return &practice.Attempt{
		ID:                  row.AttemptID,
		UserID:              row.UserID,
		QuestionID:          row.QuestionID,
		SessionID:           row.SessionID,
		TopicID:             row.TopicID,
		Correct:             row.Correct,
		CompetencyAtAttempt: comp,
		DifficultyAtAttempt: diff,
		CreatedAt:           row.Timestamp,
	}, nil
}
