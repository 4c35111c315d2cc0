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
	titleOverlayColor = color.RGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xb0}
	titleTextColor    = color.RGBA{R: 0xff, G: 0xf2, B: 0x00, A: 0xff}
	titleHintColor    = color.RGBA{R: 0xed, G: 0xf2, B: 0xf4, A: 0xff}
)

// demoConfirm 演示比赛结束后自动重新开局
var demoConfirm = utils.KeyState{utils.ActionConfirm: true}

// TitleScene 标题画面
// 背景是两个电脑控制器对打的演示比赛（无声），按确认键进入正式比赛
type TitleScene struct {
	shared *Shared
	demo   *systems.MatchSystem
	frames int
}

// NewTitleScene 创建标题画面
func NewTitleScene(shared *Shared) *TitleScene {
	demo := systems.NewMatchSystem(shared.Clips, shared.BallClip, shared.Rand)
	demo.SetPlayerAutopilot(systems.NewOpponentSystem(shared.Rand))
	return &TitleScene{
		shared: shared,
		demo:   demo,
	}
}

// Demo 返回背景演示比赛
func (s *TitleScene) Demo() *systems.MatchSystem {
	return s.demo
}

// Update 推进演示比赛，按下确认键时切换到比赛场景
func (s *TitleScene) Update(deltaTime float64) {
	if s.shared.Keys.IsHeld(utils.ActionConfirm) {
		log.Printf("[TitleScene] Starting match")
		s.shared.SceneManager.SwitchTo(NewGameScene(s.shared))
		return
	}

	keys := utils.KeyState{}
	if s.demo.State().GameOver {
		keys = demoConfirm
	}
	s.demo.RunFrame(keys)
	s.frames++
}

// Draw 绘制演示比赛、遮罩和标题
func (s *TitleScene) Draw(screen *ebiten.Image) {
	if s.shared.Renderer == nil {
		return
	}
	s.shared.Renderer.Draw(screen, s.demo.State(), false)

	vector.DrawFilledRect(screen, 0, 0, float32(config.FieldWidth), float32(config.FieldHeight), titleOverlayColor, false)

	centerX, centerY := config.FieldCenter()
	title, hint, controls := TitleText(utils.IsMobile())
	utils.DrawCenteredText(screen, title, s.shared.TitleFace, centerX, centerY-config.BannerFontSize*1.5, titleTextColor)
	utils.DrawCenteredText(screen, hint, s.shared.HintFace, centerX, centerY+config.HintFontSize, fadeColor(titleHintColor, hintAlpha(s.frames)))
	utils.DrawCenteredText(screen, controls, s.shared.HintFace, centerX, centerY+config.HintFontSize*3, titleHintColor)
}

// hintPulseFrames 提示文字闪烁周期
const hintPulseFrames = 90

// hintAlpha 提示文字的不透明度，在 0.35 和 1 之间缓慢往返
func hintAlpha(frames int) float64 {
	return utils.Lerp(0.35, 1, utils.Pulse(frames, hintPulseFrames))
}

// fadeColor 按不透明度缩放颜色（预乘 alpha）
func fadeColor(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}

// TitleText 返回标题画面的文字
//
// 参数:
//   - touch: 是否为触摸设备
func TitleText(touch bool) (title, hint, controls string) {
	title = config.WindowTitle
	if touch {
		return title, "tap to start", "left side: move   right side: swat"
	}
	return title, "press SPACE to start", "W/S or arrows: move   SPACE: swat   M: sound   Esc: pause"
}
