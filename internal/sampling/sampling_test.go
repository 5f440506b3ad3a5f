package sampling

import (
	"math/rand"
	"testing"
)

func newSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

func TestPick_Empty(t *testing.T) {
	_, ok := Pick(newSource(1), []int(nil))
	if ok {
		t.Error("Pick on empty slice should report false")
	}
}

func TestPick_SingleElement(t *testing.T) {
	got, ok := Pick(newSource(1), []string{"only"})
	if !ok || got != "only" {
		t.Errorf("Pick = %q, %v; want \"only\", true", got, ok)
	}
}

func TestPickN_WithoutReplacement(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got := PickN(newSource(42), items, 5)
	if len(got) != 5 {
		t.Fatalf("PickN returned %d items, want 5", len(got))
	}
	seen := make(map[int]bool)
	for _, v := range got {
		if seen[v] {
			t.Errorf("duplicate element %d in PickN result", v)
		}
		seen[v] = true
	}
}

func TestPickN_FewerThanRequested(t *testing.T) {
	got := PickN(newSource(1), []int{1, 2}, 5)
	if len(got) != 2 {
		t.Errorf("PickN returned %d items, want 2", len(got))
	}
}

func TestPickN_DoesNotMutateInput(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	PickN(newSource(7), items, 3)
	for i, v := range []int{1, 2, 3, 4, 5} {
		if items[i] != v {
			t.Fatalf("input mutated: %v", items)
		}
	}
}

func TestShuffle_Reproducible(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6}
	a := Shuffle(newSource(99), items)
	b := Shuffle(newSource(99), items)
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed should produce the same shuffle")
		}
	}
}

func TestShuffle_PreservesElements(t *testing.T) {
	items := []int{3, 1, 4, 1, 5}
	got := Shuffle(newSource(5), items)
	if len(got) != len(items) {
		t.Fatalf("Shuffle changed length: %d", len(got))
	}
	count := make(map[int]int)
	for _, v := range items {
		count[v]++
	}
	for _, v := range got {
		count[v]--
	}
	for v, c := range count {
		if c != 0 {
			t.Errorf("element %d count off by %d", v, c)
		}
	}
}
