package numeric

import (
	"testing"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"-0.2", "0"},
		{"0", "0"},
		{"0.5", "0.5"},
		{"1", "1"},
		{"1.01", "1"},
	}
	for _, tt := range tests {
		got := Clamp01(dec(tt.in))
		if !got.Equal(dec(tt.want)) {
			t.Errorf("Clamp01(%s) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestInUnitInterval(t *testing.T) {
	if InUnitInterval(dec("1.0001")) {
		t.Error("1.0001 should be outside the unit interval")
	}
	if InUnitInterval(dec("-0.0001")) {
		t.Error("-0.0001 should be outside the unit interval")
	}
	if !InUnitInterval(dec("0")) || !InUnitInterval(dec("1")) {
		t.Error("endpoints belong to the unit interval")
	}
}

func TestRatio(t *testing.T) {
	tests := []struct {
		num, den int
		want     string
	}{
		{3, 4, "0.75"},
		{1, 3, "0.3333"},
		{2, 3, "0.6667"},
		{0, 5, "0"},
		{5, 0, "0"},
	}
	for _, tt := range tests {
		got := Ratio(tt.num, tt.den)
		if !got.Equal(dec(tt.want)) {
			t.Errorf("Ratio(%d, %d) = %s, want %s", tt.num, tt.den, got, tt.want)
		}
	}
}

func TestPercent(t *testing.T) {
	if got := Percent(7, 10); !got.Equal(dec("70")) {
		t.Errorf("Percent(7, 10) = %s, want 70", got)
	}
	if got := Percent(1, 3); !got.Equal(dec("33.33")) {
		t.Errorf("Percent(1, 3) = %s, want 33.33", got)
	}
	if got := Percent(3, 0); !got.IsZero() {
		t.Errorf("Percent(3, 0) = %s, want 0", got)
	}
}

func TestWeightedMean(t *testing.T) {
	values := []decimal.Decimal{dec("0.5"), dec("0.8"), dec("0.2")}
	weights := []decimal.Decimal{dec("0.5"), dec("0.3"), dec("0.2")}
	// 0.25 + 0.24 + 0.04 = 0.53
	if got := WeightedMean(values, weights); !got.Equal(dec("0.53")) {
		t.Errorf("WeightedMean = %s, want 0.53", got)
	}
}

func TestWeightedMean_ZeroWeights(t *testing.T) {
	values := []decimal.Decimal{dec("0.5"), dec("0.8")}
	weights := []decimal.Decimal{dec("0"), dec("0")}
	if got := WeightedMean(values, weights); !got.IsZero() {
		t.Errorf("WeightedMean with zero weights = %s, want 0", got)
	}
}

func TestWeightedMean_LengthMismatchPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on length mismatch")
		}
	}()
	WeightedMean([]decimal.Decimal{Zero}, nil)
}

func TestMean(t *testing.T) {
	if got := Mean(nil); !got.IsZero() {
		t.Errorf("Mean(nil) = %s, want 0", got)
	}
	values := []decimal.Decimal{dec("0.5"), dec("1"), dec("0")}
	if got := Mean(values); !got.Equal(dec("0.5")) {
		t.Errorf("Mean = %s, want 0.5", got)
	}
}
