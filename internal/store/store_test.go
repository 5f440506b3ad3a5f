package store

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/competency"
	"github.com/certready/certready/internal/practice"
	"github.com/certready/certready/internal/spacedrep"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestRecordRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Records()
	ctx := context.Background()

	got, err := repo.Get(ctx, "u1", "routing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil record before Put")
	}

	rec := &competency.Record{
		UserID:        "u1",
		TopicID:       "routing",
		Score:         decimal.RequireFromString("0.5300"),
		Attempts:      3,
		Correct:       2,
		Incorrect:     1,
		LastUpdatedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, err = repo.Get(ctx, "u1", "routing")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected record after Put")
	}
	if !got.Score.Equal(rec.Score) || got.Attempts != 3 || got.Correct != 2 || got.Incorrect != 1 {
		t.Errorf("round trip mismatch: %+v", got)
	}

	// Put again is an update, not a second row.
	rec.Score = decimal.RequireFromString("0.6100")
	rec.Attempts = 4
	if err := repo.Put(ctx, rec); err != nil {
		t.Fatalf("second Put: %v", err)
	}
	recs, err := repo.ListByUser(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(recs) != 1 {
		t.Fatalf("got %d records, want 1", len(recs))
	}
	if !recs[0].Score.Equal(decimal.RequireFromString("0.61")) {
		t.Errorf("score after update = %s, want 0.61", recs[0].Score)
	}
}

func TestCardRoundTripAndDue(t *testing.T) {
	s := openTestStore(t)
	repo := s.Cards()
	ctx := context.Background()
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	got, err := repo.Get(ctx, "u1", "q1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil card before Put")
	}

	cards := []*spacedrep.Card{
		{
			UserID: "u1", QuestionID: "q1",
			Easiness: decimal.RequireFromString("2.50"), Repetitions: 1, IntervalDays: 1,
			LastReviewedAt: now.AddDate(0, 0, -3), NextReviewAt: now.AddDate(0, 0, -2),
			TotalReviews: 1, SuccessfulReviews: 1,
		},
		{
			UserID: "u1", QuestionID: "q2",
			Easiness: decimal.RequireFromString("2.60"), Repetitions: 2, IntervalDays: 6,
			LastReviewedAt: now.AddDate(0, 0, -1), NextReviewAt: now.AddDate(0, 0, -1),
			TotalReviews: 2, SuccessfulReviews: 2,
		},
		{
			UserID: "u1", QuestionID: "q3",
			Easiness: decimal.RequireFromString("2.50"), Repetitions: 1, IntervalDays: 1,
			LastReviewedAt: now, NextReviewAt: now.AddDate(0, 0, 5),
			TotalReviews: 1, SuccessfulReviews: 0,
		},
	}
	for _, c := range cards {
		if err := repo.Put(ctx, c); err != nil {
			t.Fatalf("Put %s: %v", c.QuestionID, err)
		}
	}

	due, err := repo.Due(ctx, "u1", now, 0)
	if err != nil {
		t.Fatalf("Due: %v", err)
	}
	if len(due) != 2 {
		t.Fatalf("got %d due cards, want 2", len(due))
	}
	// Most overdue first.
	if due[0].QuestionID != "q1" || due[1].QuestionID != "q2" {
		t.Errorf("due order = %s, %s, want q1, q2", due[0].QuestionID, due[1].QuestionID)
	}

	due, err = repo.Due(ctx, "u1", now, 1)
	if err != nil {
		t.Fatalf("Due with limit: %v", err)
	}
	if len(due) != 1 || due[0].QuestionID != "q1" {
		t.Errorf("capped due = %v, want just q1", due)
	}

	if !due[0].Easiness.Equal(decimal.RequireFromString("2.5")) {
		t.Errorf("easiness = %s, want 2.50", due[0].Easiness)
	}
}

func TestAttemptLedger(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	for i, a := range []*practice.Attempt{
		{ID: "a1", UserID: "u1", QuestionID: "q1", SessionID: "s1", TopicID: "routing", Correct: true},
		{ID: "a2", UserID: "u1", QuestionID: "q2", SessionID: "s1", TopicID: "routing", Correct: false},
		{ID: "a3", UserID: "u1", QuestionID: "q3", SessionID: "s2", TopicID: "security", Correct: true},
		{ID: "a4", UserID: "u2", QuestionID: "q1", SessionID: "s3", TopicID: "routing", Correct: true},
	} {
		a.CompetencyAtAttempt = decimal.RequireFromString("0.5000")
		a.DifficultyAtAttempt = decimal.RequireFromString("0.8000")
		a.CreatedAt = base.AddDate(0, 0, i)
		if err := repo.Append(ctx, a); err != nil {
			t.Fatalf("Append %s: %v", a.ID, err)
		}
	}

	ok, err := repo.Exists(ctx, "u1", "q1", "s1")
	if err != nil || !ok {
		t.Errorf("Exists(u1,q1,s1) = %v, %v, want true", ok, err)
	}
	ok, err = repo.Exists(ctx, "u1", "q1", "s2")
	if err != nil || ok {
		t.Errorf("Exists(u1,q1,s2) = %v, %v, want false", ok, err)
	}

	// Newest first, scoped to the user.
	recent, err := repo.RecentQuestionIDs(ctx, "u1", 2)
	if err != nil {
		t.Fatalf("RecentQuestionIDs: %v", err)
	}
	if len(recent) != 2 || recent[0] != "q3" || recent[1] != "q2" {
		t.Errorf("recent = %v, want [q3 q2]", recent)
	}

	bySession, err := repo.BySession(ctx, "s1")
	if err != nil {
		t.Fatalf("BySession: %v", err)
	}
	if len(bySession) != 2 || bySession[0].ID != "a1" || bySession[1].ID != "a2" {
		t.Errorf("session attempts = %v, want a1 then a2", bySession)
	}
	if !bySession[0].DifficultyAtAttempt.Equal(decimal.RequireFromString("0.8")) {
		t.Errorf("difficulty = %s, want 0.8000", bySession[0].DifficultyAtAttempt)
	}

	days, err := repo.ReviewDays(ctx, "u1")
	if err != nil {
		t.Fatalf("ReviewDays: %v", err)
	}
	if len(days) != 3 {
		t.Fatalf("got %d review days, want 3", len(days))
	}
	if !days[0].After(days[1]) || !days[1].After(days[2]) {
		t.Errorf("review days not newest first: %v", days)
	}
}

func TestAttemptAppendRejectsDuplicate(t *testing.T) {
	s := openTestStore(t)
	repo := s.Attempts()
	ctx := context.Background()

	a := &practice.Attempt{
		ID: "a1", UserID: "u1", QuestionID: "q1", SessionID: "s1", TopicID: "routing",
		Correct:             true,
		CompetencyAtAttempt: decimal.RequireFromString("0.5000"),
		DifficultyAtAttempt: decimal.RequireFromString("0.8000"),
	}
	if err := repo.Append(ctx, a); err != nil {
		t.Fatalf("Append: %v", err)
	}
	a.ID = "a2"
	if err := repo.Append(ctx, a); err == nil {
		t.Error("expected unique constraint violation on duplicate (user, question, session)")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Sessions()
	ctx := context.Background()
	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

	got, err := repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil session before Create")
	}

	sess := &practice.Session{
		ID: "s1", UserID: "u1", CourseID: "net-plus",
		Kind:        practice.KindMockExam,
		QuestionIDs: []string{"q3", "q1", "q2"},
		Total:       3,
		StartedAt:   started,
	}
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err = repo.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected session after Create")
	}
	if got.Kind != practice.KindMockExam || got.Total != 3 || got.Completed {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.QuestionIDs) != 3 || got.QuestionIDs[0] != "q3" {
		t.Errorf("question order not preserved: %v", got.QuestionIDs)
	}

	sess.Correct = 2
	sess.Completed = true
	sess.CompletedAt = started.Add(30 * time.Minute)
	if err := repo.Update(ctx, sess); err != nil {
		t.Fatalf("Update: %v", err)
	}
	got, _ = repo.Get(ctx, "s1")
	if !got.Completed || got.Correct != 2 || !got.CompletedAt.Equal(sess.CompletedAt) {
		t.Errorf("update not persisted: %+v", got)
	}

	err = repo.Update(ctx, &practice.Session{ID: "nope", StartedAt: started})
	if err == nil {
		t.Error("expected error updating unknown session")
	}
}
