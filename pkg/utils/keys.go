package utils

// Action 逻辑按键
// 模拟只关心这四个动作，与具体的键盘、触摸或终端按键解耦
type Action int

const (
	// ActionUp 向上移动
	ActionUp Action = iota
	// ActionDown 向下移动
	ActionDown
	// ActionAttack 攻击（击球）
	ActionAttack
	// ActionConfirm 确认（比赛结束后重新开局），与攻击共用按键
	ActionConfirm
)

// KeySource 按键状态来源
// 桌面端由 EbitenKeySource 实现，终端和无界面驱动各有自己的实现
type KeySource interface {
	// IsHeld 返回该动作当前帧是否处于按下状态
	IsHeld(action Action) bool
}

// KeyState 一个简单的、由调用方填写的按键状态
// 用于测试和无界面驱动
type KeyState map[Action]bool

// IsHeld 实现 KeySource
func (k KeyState) IsHeld(action Action) bool {
	return k[action]
}
