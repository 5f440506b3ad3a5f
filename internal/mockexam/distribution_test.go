package mockexam

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/certready/certready/internal/course"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func weightedCourse(weights map[string]string) *course.Course {
	c := &course.Course{ID: "net-plus", PassingScore: dec("70")}
	ordinal := 1
	for _, id := range []string{"routing", "switching", "security", "wireless", "cloud"} {
		w, ok := weights[id]
		if !ok {
			continue
		}
		c.Topics = append(c.Topics, course.Topic{ID: id, Ordinal: ordinal, Weight: dec(w)})
		ordinal++
	}
	return c
}

func TestTopicDistribution_Proportional(t *testing.T) {
	c := weightedCourse(map[string]string{"routing": "50", "switching": "30", "security": "20"})
	dist, err := TopicDistribution(c, 10)
	if err != nil {
		t.Fatalf("TopicDistribution: %v", err)
	}
	want := map[string]int{"routing": 5, "switching": 3, "security": 2}
	for id, n := range want {
		if dist[id] != n {
			t.Errorf("%s = %d, want %d", id, dist[id], n)
		}
	}
}

func TestTopicDistribution_SmallestWeightAbsorbsRemainder(t *testing.T) {
	c := weightedCourse(map[string]string{"routing": "50", "switching": "30", "security": "20"})
	dist, err := TopicDistribution(c, 7)
	if err != nil {
		t.Fatal(err)
	}
	// floors: routing 3, switching 2; security takes 7-5=2 instead of
	// its own floor of 1.
	if dist["routing"] != 3 || dist["switching"] != 2 || dist["security"] != 2 {
		t.Errorf("distribution = %v", dist)
	}
}

func TestTopicDistribution_AlwaysSumsToTotal(t *testing.T) {
	weightSets := []map[string]string{
		{"routing": "50", "switching": "30", "security": "20"},
		{"routing": "33.33", "switching": "33.33", "security": "33.34"},
		{"routing": "90", "switching": "7", "security": "3"},
		{"routing": "25", "switching": "25", "security": "25", "wireless": "25"},
		{"routing": "41.5", "switching": "33.5", "security": "12.5", "wireless": "12.5"},
	}
	totals := []int{1, 3, 10, 37, 65, 100, 180}
	for _, weights := range weightSets {
		c := weightedCourse(weights)
		for _, total := range totals {
			dist, err := TopicDistribution(c, total)
			if err != nil {
				t.Fatalf("weights %v total %d: %v", weights, total, err)
			}
			sum := 0
			for _, n := range dist {
				sum += n
			}
			if sum != total {
				t.Errorf("weights %v total %d: distribution sums to %d", weights, total, sum)
			}
		}
	}
}

func TestTopicDistribution_TieGoesToHighestOrdinal(t *testing.T) {
	c := weightedCourse(map[string]string{"routing": "40", "switching": "30", "security": "30"})
	dist, err := TopicDistribution(c, 7)
	if err != nil {
		t.Fatal(err)
	}
	// switching and security tie at 30; security (higher ordinal)
	// absorbs: routing floor 2, switching floor 2, security 3.
	if dist["security"] != 3 {
		t.Errorf("security = %d, want 3 (remainder absorber)", dist["security"])
	}
	if dist["switching"] != 2 {
		t.Errorf("switching = %d, want floor 2", dist["switching"])
	}
}

func TestTopicDistribution_RejectsNonPositiveTotal(t *testing.T) {
	c := weightedCourse(map[string]string{"routing": "100"})
	if _, err := TopicDistribution(c, 0); err == nil {
		t.Error("total 0 should fail")
	}
}
