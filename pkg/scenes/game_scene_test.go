package scenes

import (
	"image/color"
	"math"
	"testing"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/utils"
)

func TestGameSceneRunsOneFramePerUpdate(t *testing.T) {
	keys := utils.KeyState{utils.ActionDown: true}
	scene := NewGameScene(newTestShared(keys))

	for i := 0; i < 5; i++ {
		scene.Update(1.0 / config.TicksPerSecond)
	}

	if scene.Frames() != 5 {
		t.Errorf("Frames = %d, want 5", scene.Frames())
	}
	player := scene.Match().State().Cats[components.PlayerIndex]
	if want := config.FieldHeight/2 + 5*config.CatSpeed; player.Y != want {
		t.Errorf("player Y = %v, want %v", player.Y, want)
	}
}

func TestGameScenePause(t *testing.T) {
	shared := newTestShared(utils.KeyState{})
	pressed := true
	shared.Hotkeys = func() Hotkeys {
		h := Hotkeys{TogglePause: pressed}
		pressed = false
		return h
	}
	scene := NewGameScene(shared)

	for i := 0; i < 30; i++ {
		scene.Update(1.0 / config.TicksPerSecond)
	}
	if !scene.Paused() || scene.Frames() != 0 {
		t.Fatalf("paused=%v frames=%d, want paused with no frames simulated", scene.Paused(), scene.Frames())
	}
	if timer := scene.Match().State().Ball.WaitingTimer; timer != 0 {
		t.Errorf("ball timer advanced to %d while paused", timer)
	}

	scene.applyHotkeys(Hotkeys{TogglePause: true})
	scene.Update(1.0 / config.TicksPerSecond)
	if scene.Paused() || scene.Frames() != 1 {
		t.Errorf("after unpause: paused=%v frames=%d", scene.Paused(), scene.Frames())
	}
}

func TestGameSceneSettingsHotkeys(t *testing.T) {
	shared := newTestShared(utils.KeyState{})
	scene := NewGameScene(shared)

	scene.applyHotkeys(Hotkeys{ToggleSound: true, ToggleHitboxes: true})

	settings := shared.SettingsManager.GetSettings()
	if settings.SoundEnabled {
		t.Error("M should turn sound off")
	}
	if !settings.ShowHitboxes {
		t.Error("F3 should turn hitboxes on")
	}
	if scene.Paused() {
		t.Error("settings hotkeys must not pause")
	}
}

func TestTitleSceneDemoAndStart(t *testing.T) {
	keys := utils.KeyState{}
	shared := newTestShared(keys)
	title := NewTitleScene(shared)
	shared.SceneManager.SwitchTo(title)

	for i := 0; i < config.BallReactionTime; i++ {
		shared.SceneManager.Update(1.0 / config.TicksPerSecond)
	}
	if !title.Demo().State().Ball.Launched() {
		t.Error("demo ball should launch behind the title")
	}
	if shared.SceneManager.GetCurrentScene() != title {
		t.Fatal("title scene switched without confirm")
	}

	keys[utils.ActionConfirm] = true
	shared.SceneManager.Update(1.0 / config.TicksPerSecond)

	if _, ok := shared.SceneManager.GetCurrentScene().(*GameScene); !ok {
		t.Errorf("current scene = %T, want *GameScene", shared.SceneManager.GetCurrentScene())
	}
}

// TestTitleDemoRestartsItself 演示比赛结束后自动重新开局
func TestTitleDemoRestartsItself(t *testing.T) {
	shared := newTestShared(utils.KeyState{})
	title := NewTitleScene(shared)

	state := title.Demo().State()
	state.GameOver = true
	state.Scores = [2]int{config.WinScore, 3}

	title.Update(1.0 / config.TicksPerSecond)
	if state.GameOver || state.Scores != [2]int{0, 0} {
		t.Errorf("demo not restarted: gameOver=%v scores=%v", state.GameOver, state.Scores)
	}
}

func TestTitleText(t *testing.T) {
	title, hint, _ := TitleText(false)
	if title != config.WindowTitle || hint != "press SPACE to start" {
		t.Errorf("TitleText(false) = %q, %q", title, hint)
	}
	if _, hint, _ := TitleText(true); hint != "tap to start" {
		t.Errorf("TitleText(true) hint = %q", hint)
	}
}

func TestHintAlpha(t *testing.T) {
	if got := hintAlpha(0); got != 0.35 {
		t.Errorf("hintAlpha(0) = %v, want 0.35", got)
	}
	if got := hintAlpha(hintPulseFrames / 2); math.Abs(got-1) > 1e-9 {
		t.Errorf("hintAlpha(half period) = %v, want 1", got)
	}

	faded := fadeColor(color.RGBA{R: 200, G: 100, B: 50, A: 255}, 0.5)
	if faded != (color.RGBA{R: 100, G: 50, B: 25, A: 127}) {
		t.Errorf("fadeColor = %+v", faded)
	}
}
