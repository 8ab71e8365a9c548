package game

import "testing"

func TestRNGIsReproducible(t *testing.T) {
	a, b := NewRNG(7), NewRNG(7)
	for i := 0; i < 100; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: %d != %d", i, x, y)
		}
	}
	if a.Draws() != 100 {
		t.Errorf("Expected 100 draws, got %d", a.Draws())
	}
}

func TestRNGSkipsTrivialDraws(t *testing.T) {
	r := NewRNG(1)
	if r.IntN(1) != 0 || r.IntRange(4, 4) != 4 || r.Chance(0, 5) || !r.Chance(5, 5) {
		t.Error("Expected degenerate draws to return fixed values")
	}
	if r.Draws() != 0 {
		t.Errorf("Expected no draws, got %d", r.Draws())
	}
}

func TestRNGRanges(t *testing.T) {
	r := NewRNG(99)
	for i := 0; i < 500; i++ {
		if v := r.IntRange(217, 255); v < 217 || v > 255 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if f := r.Float(); f < 0 || f >= 1 {
			t.Fatalf("Float out of bounds: %v", f)
		}
	}
}

// TestScriptedSourceIsNormalized: a scripted source cannot push a draw out
// of range.
func TestScriptedSourceIsNormalized(t *testing.T) {
	r := NewRNGWithSource(funcSource(func(n int) int { return n + 3 }))
	if v := r.IntN(10); v != 3 {
		t.Errorf("Expected 13 mod 10, got %d", v)
	}
	r = NewRNGWithSource(funcSource(func(int) int { return -1 }))
	if v := r.IntN(10); v != 9 {
		t.Errorf("Expected -1 to wrap to 9, got %d", v)
	}
}

func TestWeightedChoice(t *testing.T) {
	items := []int{2, 3, 4, 5}
	weights := []int{3, 3, 1, 1}
	for roll, want := range map[int]int{0: 2, 2: 2, 3: 3, 5: 3, 6: 4, 7: 5} {
		r := NewRNGWithSource(funcSource(func(int) int { return roll }))
		if got := WeightedChoice(r, items, weights); got != want {
			t.Errorf("roll %d: expected %d, got %d", roll, want, got)
		}
	}
}

func TestShuffleKeepsElements(t *testing.T) {
	s := []string{"a", "b", "c", "d", "e"}
	Shuffle(NewRNG(3), s)
	seen := map[string]bool{}
	for _, v := range s {
		seen[v] = true
	}
	if len(seen) != 5 {
		t.Errorf("Expected a permutation, got %v", s)
	}
}

func TestSeedFromString(t *testing.T) {
	if SeedFromString("room-1") != SeedFromString("room-1") {
		t.Error("Expected a stable seed")
	}
	if SeedFromString("room-1") == SeedFromString("room-2") {
		t.Error("Expected different rooms to get different seeds")
	}
}
