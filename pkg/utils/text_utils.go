package utils

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// MeasureText 测量单行文本尺寸
// 文本为空或字体为 nil 时返回 0
func MeasureText(textStr string, font *text.GoTextFace) (width, height float64) {
	if textStr == "" || font == nil {
		return 0, 0
	}
	return text.Measure(textStr, font, 0)
}

// CenteredTextOrigin 计算让文本水平居中于 centerX 时的左上角坐标
//
// 参数:
//   - width: 文本宽度（MeasureText 的返回值）
//   - centerX: 目标中心X
//   - top: 文本顶部Y
func CenteredTextOrigin(width, centerX, top float64) (x, y float64) {
	return centerX - width/2, top
}

// DrawCenteredText 以 centerX 为水平中心绘制单行文本
//
// 参数:
//   - screen: 绘制目标
//   - textStr: 文本
//   - font: 字体，为 nil 时不绘制
//   - centerX: 水平中心
//   - top: 文本顶部Y
//   - clr: 文字颜色
func DrawCenteredText(screen *ebiten.Image, textStr string, font *text.GoTextFace, centerX, top float64, clr color.Color) {
	if font == nil || textStr == "" {
		return
	}

	width, _ := MeasureText(textStr, font)
	x, y := CenteredTextOrigin(width, centerX, top)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, textStr, font, op)
}
