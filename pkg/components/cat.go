package components

// Cat 是一只猫咪（类似球拍的角色）的全部状态
//
// 位置以精灵中心为锚点。Facing 只决定精灵是否镜像，不参与物理计算。
// 意图（MotionIntent / AttackIntent）由输入系统或 AI 每帧写入，
// 再由 CatStateSystem 转换为状态和位移。
type Cat struct {
	X, Y   float64 // 中心坐标
	Scale  float64 // 精灵缩放
	Facing float64 // 朝向：+1 面向右，-1 面向左（镜像）
	Speed  float64 // 每帧移动像素数

	State          CatState // 当前行为状态
	MotionIntent   int      // 移动意图：-1 向上，0 不动，+1 向下
	AttackIntent   bool     // 攻击意图
	AttackElapsed  int      // 当前攻击已持续的帧数
	AttackCooldown int      // 攻击持续帧数阈值，到达后回到 Idle

	Animation    *Animation // 当前动画片段（共享，不拥有）
	CurrentFrame int        // 当前帧索引
	TickCounter  int        // 帧内 tick 计数，按 Animation.Speed 取模
}

// NewCat 创建一只处于 Idle 状态的猫咪
//
// 参数：
//   - x, y: 初始中心坐标
//   - facing: 朝向（+1/-1）
//   - idle: Idle 动画片段
func NewCat(x, y, facing float64, idle *Animation) Cat {
	return Cat{
		X:         x,
		Y:         y,
		Facing:    facing,
		State:     CatIdle,
		Animation: idle,
	}
}
