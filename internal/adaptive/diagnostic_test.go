package adaptive

import (
	"errors"
	"testing"

	"github.com/certready/certready/internal/course"
	"github.com/certready/certready/internal/question"
)

// richBank builds a bank where every topic has questions in every band.
func richBank(t *testing.T, c *course.Course) *question.StaticBank {
	t.Helper()
	var qs []question.Question
	difficulties := []string{"0.1", "0.2", "0.3", "0.45", "0.5", "0.6", "0.75", "0.9"}
	for _, topic := range c.Topics {
		for i, d := range difficulties {
			qs = append(qs, q(topic.ID+"-q"+string(rune('a'+i)), topic.ID, d))
		}
	}
	return bankOf(t, qs...)
}

func groupByTopic(batch []question.Question) map[string][]question.Question {
	out := make(map[string][]question.Question)
	for _, q := range batch {
		out[q.TopicID] = append(out[q.TopicID], q)
	}
	return out
}

func TestSelectDiagnosticBatch_QuotaPerTopic(t *testing.T) {
	c := testCourse()
	sel := newSelector(&memRecords{}, richBank(t, c), 7)

	batch, err := sel.SelectDiagnosticBatch(c, 4)
	if err != nil {
		t.Fatalf("SelectDiagnosticBatch: %v", err)
	}
	if len(batch) != 12 {
		t.Fatalf("batch size = %d, want 12", len(batch))
	}

	for topicID, qs := range groupByTopic(batch) {
		if len(qs) != 4 {
			t.Errorf("topic %s: %d questions, want 4", topicID, len(qs))
		}
		var easy, medium, hard int
		for _, q := range qs {
			switch {
			case q.Difficulty.Cmp(bandMediumLow) < 0:
				easy++
			case q.Difficulty.Cmp(bandHardLow) < 0:
				medium++
			default:
				hard++
			}
		}
		if easy != 1 || medium != 2 || hard != 1 {
			t.Errorf("topic %s: band split %d/%d/%d, want 1/2/1", topicID, easy, medium, hard)
		}
	}
}

func TestSelectDiagnosticBatch_NoDuplicates(t *testing.T) {
	c := testCourse()
	sel := newSelector(&memRecords{}, richBank(t, c), 11)

	batch, err := sel.SelectDiagnosticBatch(c, 4)
	if err != nil {
		t.Fatal(err)
	}
	seen := make(map[string]bool)
	for _, q := range batch {
		if seen[q.ID] {
			t.Errorf("question %s drawn twice", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectDiagnosticBatch_BackfillsEmptyBand(t *testing.T) {
	c := &course.Course{
		ID:           "one",
		PassingScore: dec("70"),
		Topics:       []course.Topic{{ID: "routing", Ordinal: 1, Weight: dec("100")}},
	}
	// No hard questions at all; the hard quota must backfill from the rest.
	bank := bankOf(t,
		q("e1", "routing", "0.1"),
		q("e2", "routing", "0.2"),
		q("m1", "routing", "0.5"),
		q("m2", "routing", "0.6"),
		q("m3", "routing", "0.65"),
	)
	sel := newSelector(&memRecords{}, bank, 5)

	batch, err := sel.SelectDiagnosticBatch(c, 4)
	if err != nil {
		t.Fatalf("SelectDiagnosticBatch: %v", err)
	}
	if len(batch) != 4 {
		t.Errorf("batch size = %d, want 4 despite the empty hard band", len(batch))
	}
}

func TestSelectDiagnosticBatch_InsufficientPoolFailsWhole(t *testing.T) {
	c := testCourse()
	// security has only 2 active questions; the whole batch must fail.
	bank := bankOf(t,
		q("r1", "routing", "0.1"), q("r2", "routing", "0.5"),
		q("r3", "routing", "0.6"), q("r4", "routing", "0.8"),
		q("w1", "switching", "0.1"), q("w2", "switching", "0.5"),
		q("w3", "switching", "0.6"), q("w4", "switching", "0.8"),
		q("s1", "security", "0.3"), q("s2", "security", "0.7"),
	)
	sel := newSelector(&memRecords{}, bank, 5)

	batch, err := sel.SelectDiagnosticBatch(c, 4)
	var poolErr *question.InsufficientPoolError
	if !errors.As(err, &poolErr) {
		t.Fatalf("err = %v, want InsufficientPoolError", err)
	}
	if poolErr.TopicID != "security" || poolErr.Need != 4 || poolErr.Have != 2 {
		t.Errorf("unexpected pool error: %+v", poolErr)
	}
	if batch != nil {
		t.Error("failed assembly must not return a partial batch")
	}
}
