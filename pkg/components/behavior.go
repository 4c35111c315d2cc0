package components

import "fmt"

// CatState 定义猫咪的行为状态
// 状态只在 CatStateSystem 的转换阶段改变，效果阶段只读取它
type CatState int

const (
	// CatIdle 待机：没有移动意图，也没有在攻击
	CatIdle CatState = iota
	// CatMovingUp 向上移动
	CatMovingUp
	// CatMovingDown 向下移动
	CatMovingDown
	// CatAttacking 攻击中：持续 AttackCooldown 帧，期间击中的球会被加速反弹
	CatAttacking
)

// String 返回状态名称（用于日志和调试显示）
func (s CatState) String() string {
	switch s {
	case CatIdle:
		return "Idle"
	case CatMovingUp:
		return "MovingUp"
	case CatMovingDown:
		return "MovingDown"
	case CatAttacking:
		return "Attacking"
	default:
		return fmt.Sprintf("CatState(%d)", int(s))
	}
}

// Valid 检查状态是否为四个合法值之一
func (s CatState) Valid() bool {
	return s >= CatIdle && s <= CatAttacking
}
