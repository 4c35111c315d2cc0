package utils

import "testing"

func TestNewCenteredRect(t *testing.T) {
	r := NewCenteredRect(100, 50, 20, 10)

	if r.Left() != 90 || r.Right() != 110 {
		t.Errorf("horizontal edges: got (%v, %v), want (90, 110)", r.Left(), r.Right())
	}
	if r.Top() != 45 || r.Bottom() != 55 {
		t.Errorf("vertical edges: got (%v, %v), want (45, 55)", r.Top(), r.Bottom())
	}
	if cx, cy := r.Center(); cx != 100 || cy != 50 {
		t.Errorf("Center: got (%v, %v), want (100, 50)", cx, cy)
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 10, Height: 10}

	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 5, Y: 5, Width: 10, Height: 10}, true},
		{"contained", Rect{X: 2, Y: 2, Width: 2, Height: 2}, true},
		{"touching right edge counts", Rect{X: 10, Y: 0, Width: 5, Height: 5}, true},
		{"touching bottom edge counts", Rect{X: 0, Y: 10, Width: 5, Height: 5}, true},
		{"separated horizontally", Rect{X: 10.5, Y: 0, Width: 5, Height: 5}, false},
		{"separated vertically", Rect{X: 0, Y: -6, Width: 5, Height: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects: got %v, want %v", got, tt.want)
			}
			// 相交关系是对称的
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects (reversed): got %v, want %v", got, tt.want)
			}
		})
	}
}
