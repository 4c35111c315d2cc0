package utils

import "testing"

func TestRandIntRangeBounds(t *testing.T) {
	r := NewRand(42)
	seen := make(map[int]bool)

	for i := 0; i < 1000; i++ {
		v := r.IntRange(3, 5)
		if v < 3 || v > 5 {
			t.Fatalf("IntRange(3, 5): got %d, out of range", v)
		}
		seen[v] = true
	}

	// 闭区间两端都应该能取到
	for _, want := range []int{3, 4, 5} {
		if !seen[want] {
			t.Errorf("IntRange(3, 5) never produced %d in 1000 draws", want)
		}
	}
}

func TestRandDeterministic(t *testing.T) {
	a := NewRand(7)
	b := NewRand(7)

	for i := 0; i < 50; i++ {
		if x, y := a.IntRange(0, 1000), b.IntRange(0, 1000); x != y {
			t.Fatalf("draw %d: same seed produced %d and %d", i, x, y)
		}
	}
}

func TestRandDegenerateRange(t *testing.T) {
	r := NewRand(1)
	if got := r.IntRange(9, 9); got != 9 {
		t.Errorf("IntRange(9, 9): got %d, want 9", got)
	}
	if got := r.IntRange(9, 3); got != 9 {
		t.Errorf("IntRange(9, 3): got %d, want 9", got)
	}
}
