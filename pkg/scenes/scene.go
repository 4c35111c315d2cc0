package scenes

import (
	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/game"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

// Shared 场景之间共享的资源和管理器，由 app 包在启动时组装
type Shared struct {
	ResourceManager *game.ResourceManager
	SceneManager    *game.SceneManager
	SettingsManager *game.SettingsManager
	AudioManager    *game.AudioManager // 可为 nil（无声）

	Clips    *components.ClipSet
	BallClip *components.Animation
	Renderer *systems.RenderSystem // 可为 nil（不绘制）

	TitleFace *text.GoTextFace
	HintFace  *text.GoTextFace

	// Rand 所有比赛共用的随机源
	Rand utils.RandSource
	// Keys 每帧的按键状态
	Keys utils.KeySource
	// Hotkeys 返回本帧触发的快捷键，nil 表示没有快捷键（测试、移动端）
	Hotkeys func() Hotkeys
}

// pollHotkeys 读取本帧快捷键
func (s *Shared) pollHotkeys() Hotkeys {
	if s.Hotkeys == nil {
		return Hotkeys{}
	}
	return s.Hotkeys()
}

// playEvents 播放一帧事件的音效
func (s *Shared) playEvents(events components.FrameEvents) {
	if s.AudioManager != nil && events.Any() {
		s.AudioManager.PlayFrameEvents(events)
	}
}
