package spacedrep

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testNow = time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)

func freshCard() *Card {
	return NewCard("u1", "q1", testNow, DefaultParams())
}

func TestNewCard_InitialState(t *testing.T) {
	c := freshCard()
	if !c.Easiness.Equal(dec("2.50")) {
		t.Errorf("easiness = %s, want 2.50", c.Easiness)
	}
	if c.Repetitions != 0 || c.IntervalDays != 1 {
		t.Errorf("reps/interval = %d/%d, want 0/1", c.Repetitions, c.IntervalDays)
	}
	if !c.NextReviewAt.Equal(testNow.AddDate(0, 0, 1)) {
		t.Errorf("next review = %v, want now + 1 day", c.NextReviewAt)
	}
	if c.IsDue(testNow) {
		t.Error("fresh card should not be due")
	}
}

func TestReview_PerfectRecallOnFreshCard(t *testing.T) {
	// EF=2.50, reps=0, quality=5 -> EF=2.60, interval=1, reps=1.
	c := freshCard()
	if err := Review(c, 5, testNow, DefaultParams()); err != nil {
		t.Fatalf("Review: %v", err)
	}
	if !c.Easiness.Equal(dec("2.60")) {
		t.Errorf("easiness = %s, want 2.60", c.Easiness)
	}
	if c.IntervalDays != 1 || c.Repetitions != 1 {
		t.Errorf("interval/reps = %d/%d, want 1/1", c.IntervalDays, c.Repetitions)
	}
	if c.TotalReviews != 1 || c.SuccessfulReviews != 1 {
		t.Errorf("reviews = %d/%d, want 1/1", c.SuccessfulReviews, c.TotalReviews)
	}
}

func TestReview_IntervalProgression(t *testing.T) {
	// Three passes at quality 4: intervals 1, 6, then floor(6 * EF').
	c := freshCard()
	p := DefaultParams()
	now := testNow

	wantIntervals := []int{1, 6}
	for i, want := range wantIntervals {
		if err := Review(c, 4, now, p); err != nil {
			t.Fatal(err)
		}
		if c.IntervalDays != want {
			t.Fatalf("pass %d: interval = %d, want %d", i+1, c.IntervalDays, want)
		}
		now = now.AddDate(0, 0, c.IntervalDays)
	}

	// Quality 4 leaves EF at 2.50 each time, so the third pass yields
	// floor(6 * 2.50) = 15.
	if err := Review(c, 4, now, p); err != nil {
		t.Fatal(err)
	}
	if c.IntervalDays != 15 {
		t.Errorf("third pass interval = %d, want 15", c.IntervalDays)
	}
	if !c.NextReviewAt.Equal(now.AddDate(0, 0, 15)) {
		t.Errorf("next review = %v, want now + 15 days", c.NextReviewAt)
	}
}

func TestReview_FailResetsRegardlessOfState(t *testing.T) {
	c := freshCard()
	p := DefaultParams()

	for i := 0; i < 5; i++ {
		if err := Review(c, 5, testNow, p); err != nil {
			t.Fatal(err)
		}
	}
	if c.Repetitions != 5 || c.IntervalDays <= 6 {
		t.Fatalf("setup failed: reps=%d interval=%d", c.Repetitions, c.IntervalDays)
	}

	for _, quality := range []int{0, 1, 2} {
		cc := *c
		if err := Review(&cc, quality, testNow, p); err != nil {
			t.Fatal(err)
		}
		if cc.Repetitions != 0 || cc.IntervalDays != 1 {
			t.Errorf("quality %d: reps/interval = %d/%d, want 0/1", quality, cc.Repetitions, cc.IntervalDays)
		}
	}
}

func TestReview_EasinessFloor(t *testing.T) {
	c := freshCard()
	p := DefaultParams()

	// Repeated blackouts drive EF down by 0.80 per review; it must floor
	// at 1.30, never below.
	for i := 0; i < 10; i++ {
		if err := Review(c, 0, testNow, p); err != nil {
			t.Fatal(err)
		}
		if c.Easiness.Cmp(dec("1.30")) < 0 {
			t.Fatalf("review %d: easiness %s below floor", i, c.Easiness)
		}
	}
	if !c.Easiness.Equal(dec("1.30")) {
		t.Errorf("easiness = %s, want floor 1.30", c.Easiness)
	}
}

func TestReview_NoUpperEasinessCap(t *testing.T) {
	c := freshCard()
	p := DefaultParams()
	for i := 0; i < 20; i++ {
		if err := Review(c, 5, testNow, p); err != nil {
			t.Fatal(err)
		}
	}
	// 2.50 + 20 * 0.1 = 4.50; no cap applies.
	if !c.Easiness.Equal(dec("4.50")) {
		t.Errorf("easiness = %s, want 4.50", c.Easiness)
	}
}

func TestReview_EasinessUpdatesOnFailToo(t *testing.T) {
	c := freshCard()
	if err := Review(c, 2, testNow, DefaultParams()); err != nil {
		t.Fatal(err)
	}
	// q=2: EF += 0.1 - 3*(0.08 + 3*0.02) = -0.32 -> 2.18.
	if !c.Easiness.Equal(dec("2.18")) {
		t.Errorf("easiness = %s, want 2.18", c.Easiness)
	}
	if c.SuccessfulReviews != 0 || c.TotalReviews != 1 {
		t.Errorf("reviews = %d/%d, want 0/1", c.SuccessfulReviews, c.TotalReviews)
	}
}

func TestReview_QualityContract(t *testing.T) {
	for _, quality := range []int{-1, 6, 42} {
		c := freshCard()
		err := Review(c, quality, testNow, DefaultParams())
		if !errors.Is(err, ErrQualityRange) {
			t.Errorf("quality %d: err = %v, want ErrQualityRange", quality, err)
		}
		if c.TotalReviews != 0 {
			t.Errorf("quality %d: rejected review must not mutate the card", quality)
		}
	}
}

func TestReview_InvariantsOverRandomishSequence(t *testing.T) {
	c := freshCard()
	p := DefaultParams()
	qualities := []int{5, 0, 4, 4, 3, 1, 5, 5, 2, 4, 4, 4, 0, 5}
	now := testNow
	for i, q := range qualities {
		if err := Review(c, q, now, p); err != nil {
			t.Fatal(err)
		}
		if c.Easiness.Cmp(dec("1.30")) < 0 {
			t.Fatalf("step %d: EF %s below 1.30", i, c.Easiness)
		}
		if c.IntervalDays < 1 {
			t.Fatalf("step %d: interval %d below 1", i, c.IntervalDays)
		}
		now = now.AddDate(0, 0, 1)
	}
}

func TestQualityFromCorrect(t *testing.T) {
	if q := QualityFromCorrect(true); q != 4 {
		t.Errorf("correct -> %d, want 4", q)
	}
	if q := QualityFromCorrect(false); q != 2 {
		t.Errorf("incorrect -> %d, want 2", q)
	}
}
