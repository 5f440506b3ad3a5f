// Package numeric provides the fixed-point decimal helpers shared by all
// scoring code. Scores, weights, and difficulties never touch binary
// floating point: each quantity carries a fixed scale so repeated
// increments stay exact and tests can assert equality directly.
package numeric

import "github.com/shopspring/decimal"

// Fixed scales for the engine's decimal quantities.
const (
	// ScoreScale is the scale for competency scores and difficulties.
	ScoreScale = 4
	// WeightScale is the scale for topic weights and score percentages.
	WeightScale = 2
	// EasinessScale is the scale for SM-2 easiness factors.
	EasinessScale = 2
)

// Common constants.
var (
	Zero    = decimal.Zero
	One     = decimal.New(1, 0)
	Hundred = decimal.New(100, 0)
)

// Clamp returns d limited to the closed interval [lo, hi].
func Clamp(d, lo, hi decimal.Decimal) decimal.Decimal {
	if d.Cmp(lo) < 0 {
		return lo
	}
	if d.Cmp(hi) > 0 {
		return hi
	}
	return d
}

// Clamp01 returns d limited to [0, 1].
func Clamp01(d decimal.Decimal) decimal.Decimal {
	return Clamp(d, Zero, One)
}

// InUnitInterval reports whether d lies in [0, 1].
func InUnitInterval(d decimal.Decimal) bool {
	return d.Cmp(Zero) >= 0 && d.Cmp(One) <= 0
}

// Ratio returns num/den rounded half-up to ScoreScale.
// A zero denominator yields zero rather than an error; callers treat
// "no attempts yet" as a zero ratio.
func Ratio(num, den int) decimal.Decimal {
	if den == 0 {
		return Zero
	}
	return decimal.New(int64(num), 0).DivRound(decimal.New(int64(den), 0), ScoreScale)
}

// Percent returns part/whole as a percentage rounded half-up to WeightScale.
func Percent(part, whole int) decimal.Decimal {
	if whole == 0 {
		return Zero
	}
	return decimal.New(int64(part), 0).
		Mul(Hundred).
		DivRound(decimal.New(int64(whole), 0), WeightScale)
}

// WeightedMean returns the mean of values weighted by weights, rounded to
// ScoreScale. Returns zero when the weights sum to zero. Panics if the
// slices differ in length; that is a programming error, not input.
func WeightedMean(values, weights []decimal.Decimal) decimal.Decimal {
	if len(values) != len(weights) {
		panic("numeric: values and weights length mismatch")
	}
	sum := Zero
	totalWeight := Zero
	for i, v := range values {
		sum = sum.Add(v.Mul(weights[i]))
		totalWeight = totalWeight.Add(weights[i])
	}
	if totalWeight.IsZero() {
		return Zero
	}
	return sum.DivRound(totalWeight, ScoreScale)
}

// Mean returns the arithmetic mean of values rounded to ScoreScale,
// or zero for an empty slice.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return Zero
	}
	sum := Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.DivRound(decimal.New(int64(len(values)), 0), ScoreScale)
}
