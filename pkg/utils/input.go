// Package utils 提供通用工具函数
package utils

import (
	"github.com/decker502/catpong/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// 触摸区域
// 屏幕左半边：上半部分为向上、下半部分为向下；右半边为攻击
type touchZone int

const (
	touchZoneNone touchZone = iota
	touchZoneUp
	touchZoneDown
	touchZoneAttack
)

// EbitenKeySource 从 Ebitengine 读取键盘和触摸状态
//
// 按键映射：
//   - 向上：W / ↑
//   - 向下：S / ↓
//   - 攻击：Space / J
//   - 确认：刚按下 Space / Enter，或刚发生点击/触摸
type EbitenKeySource struct{}

// NewEbitenKeySource 创建键盘/触摸输入源
func NewEbitenKeySource() *EbitenKeySource {
	return &EbitenKeySource{}
}

// IsHeld 实现 KeySource
func (s *EbitenKeySource) IsHeld(action Action) bool {
	switch action {
	case ActionUp:
		return ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) || isTouchZoneHeld(touchZoneUp)
	case ActionDown:
		return ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) || isTouchZoneHeld(touchZoneDown)
	case ActionAttack:
		return ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsKeyPressed(ebiten.KeyJ) || isTouchZoneHeld(touchZoneAttack)
	case ActionConfirm:
		// 确认使用"刚按下"，避免比赛结束瞬间仍按住攻击键导致立即重开
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			return true
		}
		pressed, _, _ := IsJustTouchedOrClicked()
		return pressed
	}
	return false
}

// isTouchZoneHeld 检查是否有活动触摸落在指定区域内（支持多点触摸）
func isTouchZoneHeld(zone touchZone) bool {
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		if zoneAt(x, y) == zone {
			return true
		}
	}
	return false
}

// zoneAt 返回逻辑坐标 (x, y) 所在的触摸区域
func zoneAt(x, y int) touchZone {
	if x < 0 || y < 0 || x >= config.GameWindowWidth || y >= config.GameWindowHeight {
		return touchZoneNone
	}
	if x >= config.GameWindowWidth/2 {
		return touchZoneAttack
	}
	if y < config.GameWindowHeight/2 {
		return touchZoneUp
	}
	return touchZoneDown
}

// IsJustTouchedOrClicked 检查是否刚刚发生点击或触摸
// 返回是否点击以及点击位置
func IsJustTouchedOrClicked() (bool, int, int) {
	// 检查触摸
	touchIDs := inpututil.AppendJustPressedTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	// 检查鼠标
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		return true, x, y
	}

	return false, 0, 0
}

// IsTouchDevice 检测当前是否为触摸设备
// 通过检查是否有活动的触摸来判断
func IsTouchDevice() bool {
	touchIDs := ebiten.AppendTouchIDs(nil)
	return len(touchIDs) > 0
}
