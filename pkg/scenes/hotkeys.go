package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Hotkeys 比赛中的快捷键（本帧刚按下）
type Hotkeys struct {
	ToggleSound    bool // M
	ToggleHitboxes bool // F3
	TogglePause    bool // Esc / P
}

// PollEbitenHotkeys 从 Ebitengine 读取快捷键
func PollEbitenHotkeys() Hotkeys {
	return Hotkeys{
		ToggleSound:    inpututil.IsKeyJustPressed(ebiten.KeyM),
		ToggleHitboxes: inpututil.IsKeyJustPressed(ebiten.KeyF3),
		TogglePause:    inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}
