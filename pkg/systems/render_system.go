package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/game"
	"github.com/decker502/catpong/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 球场配色
var (
	backgroundColor = color.RGBA{R: 0x2b, G: 0x2d, B: 0x42, A: 0xff}
	courtLineColor  = color.RGBA{R: 0x8d, G: 0x99, B: 0xae, A: 0xff}
	scoreColor      = color.RGBA{R: 0xed, G: 0xf2, B: 0xf4, A: 0xff}
	bannerColor     = color.RGBA{R: 0xff, G: 0xf2, B: 0x00, A: 0xff}
	outlineColor    = color.RGBA{A: 0xff}
	overlayColor    = color.RGBA{A: 0xa0}
	hitboxColor     = color.RGBA{R: 0xef, G: 0x23, B: 0x3c, A: 0xff}
	contactColor    = color.RGBA{R: 0x2e, G: 0xc4, B: 0xb6, A: 0xff}
)

// RenderSystem 绘制比赛画面
//
// 只读取 MatchState，不修改任何模拟状态。精灵图通过 ResourceManager 按资源ID查找，
// 找不到纹理时退化为绘制色块，便于在缺少资源时调试。
type RenderSystem struct {
	rm *game.ResourceManager

	scoreFace  *text.GoTextFace
	bannerFace *text.GoTextFace
	hintFace   *text.GoTextFace
}

// NewRenderSystem 创建渲染系统
//
// 参数:
//   - rm: 资源管理器，精灵图需已加载
//   - scoreFace: 比分字体
//   - bannerFace: 结束横幅字体
//   - hintFace: 提示文字字体
func NewRenderSystem(rm *game.ResourceManager, scoreFace, bannerFace, hintFace *text.GoTextFace) *RenderSystem {
	return &RenderSystem{
		rm:         rm,
		scoreFace:  scoreFace,
		bannerFace: bannerFace,
		hintFace:   hintFace,
	}
}

// Draw 绘制完整的一帧
//
// 参数:
//   - screen: 绘制目标
//   - state: 比赛状态（只读）
//   - showHitboxes: 是否叠加绘制碰撞矩形
func (s *RenderSystem) Draw(screen *ebiten.Image, state *components.MatchState, showHitboxes bool) {
	screen.Fill(backgroundColor)
	s.drawCourt(screen)

	for i := range state.Cats {
		s.drawCat(screen, &state.Cats[i])
	}
	s.drawBall(screen, &state.Ball)
	s.drawScores(screen, state)

	if showHitboxes {
		s.drawHitboxes(screen, state)
	}
	if state.GameOver {
		s.drawGameOver(screen, state)
	}
}

// drawCourt 绘制中线（虚线）
func (s *RenderSystem) drawCourt(screen *ebiten.Image) {
	centerX := float32(config.FieldWidth / 2)
	const dash, gap = 12, 10
	for y := float32(0); y < float32(config.FieldHeight); y += dash + gap {
		vector.StrokeLine(screen, centerX, y, centerX, y+dash, 2, courtLineColor, false)
	}
}

// catDrawOptions 计算猫咪精灵的变换
// 精灵以中心为锚点缩放，Facing 为负时水平镜像
func catDrawOptions(cat *components.Cat) *ebiten.DrawImageOptions {
	anim := cat.Animation
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-anim.FrameWidth()/2, -anim.FrameHeight()/2)
	op.GeoM.Scale(cat.Facing*cat.Scale, cat.Scale)
	op.GeoM.Translate(cat.X, cat.Y)
	return op
}

// ballDrawOptions 计算球精灵的变换，以中心为锚点旋转
func ballDrawOptions(ball *components.Ball) *ebiten.DrawImageOptions {
	anim := ball.Animation
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-anim.FrameWidth()/2, -anim.FrameHeight()/2)
	op.GeoM.Scale(ball.Scale, ball.Scale)
	op.GeoM.Rotate(ball.Rotation * math.Pi / 180)
	op.GeoM.Translate(ball.X, ball.Y)
	return op
}

func (s *RenderSystem) drawCat(screen *ebiten.Image, cat *components.Cat) {
	anim := cat.Animation
	sheet := s.rm.GetImageByID(anim.ImageID)
	if sheet == nil {
		s.fillRect(screen, CatRect(cat), courtLineColor)
		return
	}

	x, y, w, h := anim.SourceRect(cat.CurrentFrame)
	frame := sheet.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
	screen.DrawImage(frame, catDrawOptions(cat))
}

func (s *RenderSystem) drawBall(screen *ebiten.Image, ball *components.Ball) {
	sheet := s.rm.GetImageByID(ball.Animation.ImageID)
	if sheet == nil {
		s.fillRect(screen, BallRect(ball), scoreColor)
		return
	}

	x, y, w, h := ball.Animation.SourceRect(0)
	frame := sheet.SubImage(image.Rect(x, y, x+w, y+h)).(*ebiten.Image)
	screen.DrawImage(frame, ballDrawOptions(ball))
}

// drawScores 比分显示在中线两侧
func (s *RenderSystem) drawScores(screen *ebiten.Image, state *components.MatchState) {
	centerX := config.FieldWidth / 2
	left := fmt.Sprintf("%d", state.Scores[components.PlayerIndex])
	right := fmt.Sprintf("%d", state.Scores[components.OpponentIndex])

	utils.DrawCenteredText(screen, left, s.scoreFace, centerX-config.ScoreTextOffsetX, config.ScoreTextY, scoreColor)
	utils.DrawCenteredText(screen, right, s.scoreFace, centerX+config.ScoreTextOffsetX, config.ScoreTextY, scoreColor)
}

// drawHitboxes 绘制碰撞矩形，当前接触者用另一种颜色
func (s *RenderSystem) drawHitboxes(screen *ebiten.Image, state *components.MatchState) {
	for i := range state.Cats {
		clr := hitboxColor
		if state.Ball.Contact == components.ActorIndex(i) {
			clr = contactColor
		}
		s.strokeRect(screen, CatRect(&state.Cats[i]), clr)
	}
	s.strokeRect(screen, BallRect(&state.Ball), hitboxColor)
}

// drawGameOver 半透明遮罩 + 描边横幅 + 重新开始提示
func (s *RenderSystem) drawGameOver(screen *ebiten.Image, state *components.MatchState) {
	vector.DrawFilledRect(screen, 0, 0, float32(config.FieldWidth), float32(config.FieldHeight), overlayColor, false)

	banner, hint := GameOverText(state.Winner, utils.IsMobile())
	centerX, centerY := config.FieldCenter()
	s.drawOutlinedText(screen, banner, s.bannerFace, centerX, centerY-config.BannerFontSize)
	utils.DrawCenteredText(screen, hint, s.hintFace, centerX, centerY+config.HintFontSize, scoreColor)
}

// GameOverText 返回结束横幅和重新开始提示
//
// 参数:
//   - winner: 获胜方
//   - touch: 是否为触摸设备（提示"点击"而不是"按空格"）
func GameOverText(winner components.ActorIndex, touch bool) (banner, hint string) {
	banner = "YOU LOSE"
	if winner == components.PlayerIndex {
		banner = "YOU WIN!"
	}

	hint = "press SPACE to play again"
	if touch {
		hint = "tap to play again"
	}
	return banner, hint
}

// drawOutlinedText 绘制带黑色描边的居中文本
func (s *RenderSystem) drawOutlinedText(screen *ebiten.Image, textStr string, face *text.GoTextFace, centerX, top float64) {
	if face == nil {
		return
	}

	strokeOffsets := []struct{ dx, dy float64 }{
		{-2, -2}, {0, -2}, {2, -2},
		{-2, 0}, {2, 0},
		{-2, 2}, {0, 2}, {2, 2},
	}
	for _, offset := range strokeOffsets {
		utils.DrawCenteredText(screen, textStr, face, centerX+offset.dx, top+offset.dy, outlineColor)
	}
	utils.DrawCenteredText(screen, textStr, face, centerX, top, bannerColor)
}

func (s *RenderSystem) strokeRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), 1, clr, false)
}

func (s *RenderSystem) fillRect(screen *ebiten.Image, r utils.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}
