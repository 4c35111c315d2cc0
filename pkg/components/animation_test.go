package components

import "testing"

// TestAnimationFrameSize 测试单帧尺寸由精灵图宽度和帧数推导
func TestAnimationFrameSize(t *testing.T) {
	anim := &Animation{Name: "idle", FrameCount: 4, Speed: 8, TextureWidth: 64, TextureHeight: 16}

	if got := anim.FrameWidth(); got != 16 {
		t.Errorf("FrameWidth: got %v, want 16", got)
	}
	if got := anim.FrameHeight(); got != 16 {
		t.Errorf("FrameHeight: got %v, want 16", got)
	}
}

func TestAnimationSourceRect(t *testing.T) {
	anim := &Animation{FrameCount: 4, Speed: 1, TextureWidth: 64, TextureHeight: 16}

	tests := []struct {
		name  string
		frame int
		wantX int
	}{
		{"first frame", 0, 0},
		{"last frame", 3, 48},
		{"out of range falls back to frame 0", 4, 0},
		{"negative falls back to frame 0", -1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, w, h := anim.SourceRect(tt.frame)
			if x != tt.wantX || y != 0 || w != 16 || h != 16 {
				t.Errorf("SourceRect(%d): got (%d,%d,%d,%d), want (%d,0,16,16)", tt.frame, x, y, w, h, tt.wantX)
			}
		})
	}
}

// TestCatStateString 测试状态名称和合法性检查
func TestCatStateString(t *testing.T) {
	names := map[CatState]string{
		CatIdle:       "Idle",
		CatMovingUp:   "MovingUp",
		CatMovingDown: "MovingDown",
		CatAttacking:  "Attacking",
	}
	for state, want := range names {
		if got := state.String(); got != want {
			t.Errorf("String(): got %q, want %q", got, want)
		}
		if !state.Valid() {
			t.Errorf("%v should be valid", state)
		}
	}

	if CatState(7).Valid() {
		t.Error("CatState(7) should not be valid")
	}
}

// TestNewFrameEvents 测试空事件记录不包含任何事件
func TestNewFrameEvents(t *testing.T) {
	ev := NewFrameEvents()
	if ev.Any() {
		t.Errorf("NewFrameEvents().Any(): got true, want false (%+v)", ev)
	}

	ev.Smash = PlayerIndex
	if !ev.Any() {
		t.Error("Any() should report a smash by the player")
	}
}
