package systems

import (
	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/utils"
)

// InputSystem 把按键状态映射为玩家猫咪的意图
// 无状态，每帧重新采样
type InputSystem struct{}

// NewInputSystem 创建输入系统
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// Update 根据按键设置猫咪的移动和攻击意图
//
// 上下同时按住时向上优先。攻击意图与移动独立采样。
func (s *InputSystem) Update(cat *components.Cat, keys utils.KeySource) {
	switch {
	case keys.IsHeld(utils.ActionUp):
		cat.MotionIntent = -1
	case keys.IsHeld(utils.ActionDown):
		cat.MotionIntent = 1
	default:
		cat.MotionIntent = 0
	}

	cat.AttackIntent = keys.IsHeld(utils.ActionAttack)
}
