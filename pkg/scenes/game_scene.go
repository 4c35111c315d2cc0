package scenes

import (
	"image/color"
	"log"

	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/systems"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	pauseOverlayColor = color.RGBA{A: 0x80}
	pauseTextColor    = color.RGBA{R: 0xed, G: 0xf2, B: 0xf4, A: 0xff}
)

// GameScene 玩家对电脑的一局比赛
//
// 每个 Update 执行一帧模拟（MatchSystem.RunFrame），然后播放本帧事件的音效。
// 比赛结束后由 MatchSystem 等待确认键重新开局，场景本身不切换。
type GameScene struct {
	shared *Shared
	match  *systems.MatchSystem

	paused bool
	frames int // 已模拟的帧数
}

// NewGameScene 创建比赛场景，比赛立即开始（球在中心等待发球）
func NewGameScene(shared *Shared) *GameScene {
	return &GameScene{
		shared: shared,
		match:  systems.NewMatchSystem(shared.Clips, shared.BallClip, shared.Rand),
	}
}

// Match 返回比赛控制器
func (s *GameScene) Match() *systems.MatchSystem {
	return s.match
}

// Paused 返回比赛是否暂停
func (s *GameScene) Paused() bool {
	return s.paused
}

// Frames 返回已模拟的帧数
func (s *GameScene) Frames() int {
	return s.frames
}

// Update 处理快捷键并推进一帧模拟
// 固定步长，deltaTime 不参与计算
func (s *GameScene) Update(deltaTime float64) {
	s.applyHotkeys(s.shared.pollHotkeys())
	if s.paused {
		return
	}

	events := s.match.RunFrame(s.shared.Keys)
	s.shared.playEvents(events)
	s.frames++
}

// applyHotkeys 执行快捷键，设置变化后立即保存
func (s *GameScene) applyHotkeys(keys Hotkeys) {
	if keys.TogglePause {
		s.paused = !s.paused
		log.Printf("[GameScene] Paused: %v", s.paused)
	}

	sm := s.shared.SettingsManager
	if sm == nil || !(keys.ToggleSound || keys.ToggleHitboxes) {
		return
	}

	if keys.ToggleSound {
		log.Printf("[GameScene] Sound enabled: %v", sm.ToggleSound())
	}
	if keys.ToggleHitboxes {
		log.Printf("[GameScene] Hitboxes: %v", sm.ToggleHitboxes())
	}
	if err := sm.Save(); err != nil {
		log.Printf("[GameScene] Warning: Failed to save settings: %v", err)
	}
}

// Draw 绘制比赛，暂停时叠加提示
func (s *GameScene) Draw(screen *ebiten.Image) {
	if s.shared.Renderer == nil {
		return
	}

	showHitboxes := false
	if s.shared.SettingsManager != nil {
		showHitboxes = s.shared.SettingsManager.GetSettings().ShowHitboxes
	}
	s.shared.Renderer.Draw(screen, s.match.State(), showHitboxes)

	if s.paused {
		vector.DrawFilledRect(screen, 0, 0, float32(config.FieldWidth), float32(config.FieldHeight), pauseOverlayColor, false)
		centerX, centerY := config.FieldCenter()
		utils.DrawCenteredText(screen, "PAUSED", s.shared.TitleFace, centerX, centerY-config.BannerFontSize/2, pauseTextColor)
	}
}
