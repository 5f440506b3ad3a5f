package mockexam

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/certready/certready/internal/practice"
)

// scoredFixture builds a completed 10-question mock session with the
// given number of correct answers per topic (routing 5, switching 3,
// security 2 questions).
func scoredFixture(t *testing.T, correctByTopic map[string]int) (*fixture, *practice.Session) {
	t.Helper()
	f := newFixture(t, 10, 3)

	started := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	sess := &practice.Session{
		ID:        "exam-1",
		UserID:    "u1",
		CourseID:  f.course.ID,
		Kind:      practice.KindMockExam,
		Total:     10,
		StartedAt: started,
	}
	counts := map[string]int{"routing": 5, "switching": 3, "security": 2}
	for topicID, n := range counts {
		for i := 0; i < n; i++ {
			qid := fmt.Sprintf("%s-%02d", topicID, i)
			sess.QuestionIDs = append(sess.QuestionIDs, qid)
			correct := i < correctByTopic[topicID]
			f.attempts.attempts = append(f.attempts.attempts, &practice.Attempt{
				UserID: "u1", QuestionID: qid, SessionID: sess.ID,
				TopicID: topicID, Correct: correct,
			})
			if correct {
				sess.Correct++
			}
		}
	}
	sess.Completed = true
	sess.CompletedAt = started.Add(25 * time.Minute)
	return f, sess
}

func TestScore_RequiresCompletedSession(t *testing.T) {
	f, sess := scoredFixture(t, map[string]int{"routing": 5})
	sess.Completed = false
	_, err := f.asm.Score(context.Background(), sess, f.course)
	if !errors.Is(err, ErrSessionNotCompleted) {
		t.Errorf("err = %v, want ErrSessionNotCompleted", err)
	}
}

func TestScore_TotalsAndPass(t *testing.T) {
	// 5 + 2 + 1 = 8 correct of 10 = 80% against a 70% threshold.
	f, sess := scoredFixture(t, map[string]int{"routing": 5, "switching": 2, "security": 1})
	res, err := f.asm.Score(context.Background(), sess, f.course)
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if res.Correct != 8 || res.Incorrect != 2 {
		t.Errorf("correct/incorrect = %d/%d, want 8/2", res.Correct, res.Incorrect)
	}
	if !res.ScorePercent.Equal(dec("80")) {
		t.Errorf("score = %s%%, want 80", res.ScorePercent)
	}
	if !res.Passed || !res.Margin.Equal(dec("10")) {
		t.Errorf("passed=%v margin=%s, want pass by 10", res.Passed, res.Margin)
	}
	// 25 minutes over 10 questions = 150 s each.
	if !res.AvgSecondsPerQuestion.Equal(dec("150")) {
		t.Errorf("avg seconds = %s, want 150", res.AvgSecondsPerQuestion)
	}
}

func TestScore_BreakdownSortedWeakestFirst(t *testing.T) {
	// routing 100%, switching 66.67%, security 0%.
	f, sess := scoredFixture(t, map[string]int{"routing": 5, "switching": 2, "security": 0})
	res, err := f.asm.Score(context.Background(), sess, f.course)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.TopicBreakdown) != 3 {
		t.Fatalf("breakdown has %d topics, want 3", len(res.TopicBreakdown))
	}
	order := []string{"security", "switching", "routing"}
	for i, want := range order {
		if res.TopicBreakdown[i].TopicID != want {
			t.Errorf("breakdown[%d] = %s, want %s", i, res.TopicBreakdown[i].TopicID, want)
		}
	}
	if len(res.Strongest) != 1 || res.Strongest[0].TopicID != "routing" {
		t.Errorf("strongest = %v, want routing only", res.Strongest)
	}
	if len(res.Weakest) != 1 || res.Weakest[0].TopicID != "security" {
		t.Errorf("weakest = %v, want security only", res.Weakest)
	}
}

func TestScore_UnansweredCountAgainst(t *testing.T) {
	f, sess := scoredFixture(t, map[string]int{"routing": 5, "switching": 3, "security": 2})
	// Drop security's attempts entirely: answered 8 of 10, all correct.
	var kept []*practice.Attempt
	for _, a := range f.attempts.attempts {
		if a.TopicID != "security" {
			kept = append(kept, a)
		}
	}
	f.attempts.attempts = kept

	res, err := f.asm.Score(context.Background(), sess, f.course)
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct != 8 || res.Incorrect != 2 {
		t.Errorf("correct/incorrect = %d/%d, want unanswered counted against", res.Correct, res.Incorrect)
	}
}

func TestScore_RecommendationBranches(t *testing.T) {
	tests := []struct {
		name    string
		correct map[string]int
		phrase  string
	}{
		// 4/10 = 40%: fails by 30 points, large gap.
		{"large gap", map[string]int{"routing": 4}, "Return to focused practice"},
		// 6/10 = 60%: fails by 10 points, small gap.
		{"near miss", map[string]int{"routing": 5, "switching": 1}, "retake a mock exam"},
		// 9/10 = 90%: passes by 20, comfortable.
		{"comfortable pass", map[string]int{"routing": 5, "switching": 3, "security": 1}, "comfortable margin"},
		// 7/10 = 70%: passes by 0, thin margin.
		{"thin pass", map[string]int{"routing": 5, "switching": 2}, "margin is thin"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, sess := scoredFixture(t, tt.correct)
			res, err := f.asm.Score(context.Background(), sess, f.course)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(res.Recommendation, tt.phrase) {
				t.Errorf("recommendation %q should contain %q", res.Recommendation, tt.phrase)
			}
		})
	}
}
