package store

import (
	"context"
	"fmt"

	"github.com/certready/certready/ent"
	"github.com/certready/certready/ent/examsession"
	"github.com/certready/certready/internal/practice"
)

// SessionRepo persists practice and exam sessions.
type SessionRepo struct {
	client *ent.Client
}

var _ practice.SessionRepo = (*SessionRepo)(nil)

func (r *SessionRepo) Create(ctx context.Context, s *practice.Session) error {
	builder := r.client.ExamSession.Create().
		SetSessionID(s.ID).
		SetUserID(s.UserID).
		SetCourseID(s.CourseID).
		SetKind(string(s.Kind)).
		SetQuestions(append([]string(nil), s.QuestionIDs...)).
		SetTotal(s.Total).
		SetCorrect(s.Correct).
		SetStartedAt(s.StartedAt).
		SetCompleted(s.Completed)
	if !s.CompletedAt.IsZero() {
		builder = builder.SetCompletedAt(s.CompletedAt)
	}
	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*practice.Session, error) {
	row, err := r.client.ExamSession.Query().
		Where(examsession.SessionID(id)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *SessionRepo) Update(ctx context.Context, s *practice.Session) error {
	n, err := r.client.ExamSession.Update().
		Where(examsession.SessionID(s.ID)).
		SetQuestions(append([]string(nil), s.QuestionIDs...)).
		SetTotal(s.Total).
		SetCorrect(s.Correct).
		SetCompletedAt(s.CompletedAt).
		SetCompleted(s.Completed).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("update session %s: %w", s.ID, practice.ErrNotFound)
	}
	return nil
}

func sessionFromRow(row *ent.ExamSession) *practice.Session {
	return &practice.Session{
		ID:          row.SessionID,
		UserID:      row.UserID,
		CourseID:    row.CourseID,
		Kind:        practice.Kind(row.Kind),
		QuestionIDs: append([]string(nil), row.Questions...),
		Total:       row.Total,
		Correct:     row.Correct,
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
		Completed:   row.Completed,
	}
}
