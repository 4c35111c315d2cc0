package systems

import (
	"testing"

	"github.com/decker502/catpong/pkg/components"
)

func TestAnimationTick(t *testing.T) {
	anim := &components.Animation{FrameCount: 4, Speed: 3, TextureWidth: 64, TextureHeight: 16}
	cat := components.Cat{Animation: anim}
	system := NewAnimationSystem()

	wantFrames := []int{0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 0}
	for i, want := range wantFrames {
		system.Tick(&cat)
		if cat.CurrentFrame != want {
			t.Fatalf("tick %d: CurrentFrame = %d, want %d", i+1, cat.CurrentFrame, want)
		}
		if cat.TickCounter < 0 || cat.TickCounter >= anim.Speed {
			t.Fatalf("tick %d: TickCounter = %d out of [0, %d)", i+1, cat.TickCounter, anim.Speed)
		}
	}
}

func TestAnimationTickResetsOutOfRangeFrame(t *testing.T) {
	short := &components.Animation{FrameCount: 2, Speed: 10, TextureWidth: 32, TextureHeight: 16}
	cat := components.Cat{Animation: short, CurrentFrame: 3}

	NewAnimationSystem().Tick(&cat)
	if cat.CurrentFrame != 0 {
		t.Errorf("CurrentFrame = %d, want 0 after switching to a shorter clip", cat.CurrentFrame)
	}
}

func TestAnimationSpeedOne(t *testing.T) {
	anim := &components.Animation{FrameCount: 3, Speed: 1, TextureWidth: 48, TextureHeight: 16}
	cat := components.Cat{Animation: anim}
	system := NewAnimationSystem()

	for i := 1; i <= 6; i++ {
		system.Tick(&cat)
		if cat.CurrentFrame != i%3 {
			t.Fatalf("tick %d: CurrentFrame = %d, want %d", i, cat.CurrentFrame, i%3)
		}
	}
}

func TestAnimationUpdateTicksBothCats(t *testing.T) {
	anim := &components.Animation{FrameCount: 2, Speed: 1, TextureWidth: 32, TextureHeight: 16}
	state := &components.MatchState{}
	state.Cats[0].Animation = anim
	state.Cats[1].Animation = anim

	NewAnimationSystem().Update(state)
	if state.Cats[0].CurrentFrame != 1 || state.Cats[1].CurrentFrame != 1 {
		t.Errorf("frames = (%d, %d), want (1, 1)", state.Cats[0].CurrentFrame, state.Cats[1].CurrentFrame)
	}
}
