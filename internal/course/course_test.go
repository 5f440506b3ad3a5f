package course

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func validCourse() *Course {
	return &Course{
		ID:           "net-plus",
		Name:         "Networking Fundamentals",
		PassingScore: dec("72"),
		Topics: []Topic{
			{ID: "routing", Code: "RTE", Name: "Routing", Ordinal: 1, Weight: dec("50")},
			{ID: "switching", Code: "SWT", Name: "Switching", Ordinal: 2, Weight: dec("30")},
			{ID: "security", Code: "SEC", Name: "Security", Ordinal: 3, Weight: dec("20")},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := validCourse().Validate(); err != nil {
		t.Fatalf("Validate() = %v, want nil", err)
	}
}

func TestValidate_WeightSumWithinTolerance(t *testing.T) {
	c := validCourse()
	c.Topics[0].Weight = dec("50.01")
	if err := c.Validate(); err != nil {
		t.Errorf("sum 100.01 should be within tolerance: %v", err)
	}
	c.Topics[0].Weight = dec("50.02")
	if err := c.Validate(); err == nil {
		t.Error("sum 100.02 should fail validation")
	}
}

func TestValidate_WeightSumOff(t *testing.T) {
	c := validCourse()
	c.Topics[2].Weight = dec("25")
	err := c.Validate()
	if err == nil {
		t.Fatal("expected weight-sum error")
	}
	if !strings.Contains(err.Error(), "sum") {
		t.Errorf("error %q should mention the weight sum", err)
	}
}

func TestValidate_DuplicateTopicID(t *testing.T) {
	c := validCourse()
	c.Topics[1].ID = "routing"
	if err := c.Validate(); err == nil {
		t.Error("expected duplicate-id error")
	}
}

func TestValidate_DuplicateOrdinal(t *testing.T) {
	c := validCourse()
	c.Topics[1].Ordinal = 1
	if err := c.Validate(); err == nil {
		t.Error("expected duplicate-ordinal error")
	}
}

func TestValidate_PassingScoreBounds(t *testing.T) {
	c := validCourse()
	c.PassingScore = dec("0")
	if err := c.Validate(); err == nil {
		t.Error("passing score 0 should fail")
	}
	c.PassingScore = dec("100.5")
	if err := c.Validate(); err == nil {
		t.Error("passing score above 100 should fail")
	}
}

const validFile = `{
	"id": "net-plus",
	"name": "Networking Fundamentals",
	"passing_score": 72,
	"topics": [
		{"id": "routing", "code": "RTE", "name": "Routing", "ordinal": 1, "weight": 60},
		{"id": "security", "code": "SEC", "name": "Security", "ordinal": 2, "weight": 40}
	],
	"questions": [
		{"id": "q1", "topic_id": "routing", "difficulty": 0.35},
		{"id": "q2", "topic_id": "security", "difficulty": 0.8, "active": false}
	]
}`

func TestParse_OK(t *testing.T) {
	c, bank, err := Parse([]byte(validFile))
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if c.ID != "net-plus" || len(c.Topics) != 2 {
		t.Errorf("unexpected course: %+v", c)
	}
	if bank.Len() != 2 {
		t.Errorf("bank has %d questions, want 2", bank.Len())
	}
	if got := bank.ActiveByTopic("security"); len(got) != 0 {
		t.Errorf("inactive question should not be listed, got %d", len(got))
	}
	q, ok := bank.Get("q1")
	if !ok || !q.Active {
		t.Error("q1 should exist and default to active")
	}
}

func TestParse_SchemaRejectsMissingFields(t *testing.T) {
	_, _, err := Parse([]byte(`{"id": "x", "name": "X"}`))
	if err == nil {
		t.Fatal("expected schema validation error")
	}
}

func TestParse_UnknownTopicRef(t *testing.T) {
	bad := strings.Replace(validFile, `"topic_id": "security"`, `"topic_id": "nope"`, 1)
	_, _, err := Parse([]byte(bad))
	if err == nil || !strings.Contains(err.Error(), "unknown topic") {
		t.Fatalf("expected unknown-topic error, got %v", err)
	}
}

func TestParse_DifficultyOutOfRange(t *testing.T) {
	bad := strings.Replace(validFile, `"difficulty": 0.35`, `"difficulty": 1.5`, 1)
	_, _, err := Parse([]byte(bad))
	if err == nil {
		t.Fatal("expected difficulty range error")
	}
}
