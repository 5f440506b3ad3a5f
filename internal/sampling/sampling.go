// Package sampling treats randomness as an injected capability so every
// randomized draw in the engine is reproducible under test.
package sampling

// Source supplies the randomness for sampling operations.
// *math/rand.Rand satisfies it; tests pass a fixed-seed instance.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// Pick returns one element chosen uniformly at random, and false for an
// empty slice.
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}

// PickN returns n distinct elements chosen uniformly without replacement.
// If fewer than n elements exist, all of them are returned (shuffled).
// The input slice is not modified.
func PickN[T any](src Source, items []T, n int) []T {
	if n <= 0 || len(items) == 0 {
		return nil
	}
	out := make([]T, len(items))
	copy(out, items)
	src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Shuffle returns a shuffled copy of items, leaving the input untouched.
func Shuffle[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
