package components

// Ball 球的状态
//
// 球在整个会话中只有一个实例，每次得分和重新开局时被重新放置（Place），不会重建。
// 等待计时 WaitingTimer 小于 ReactionTime 时球处于"等待发球"状态，静止在场地中心。
type Ball struct {
	X, Y   float64 // 中心坐标
	Scale  float64 // 精灵缩放
	VX, VY float64 // 速度（像素/帧）

	WaitingTimer int // 发球等待计时
	ReactionTime int // 发球前需要等待的帧数

	// Contact 当前与球接触并已经击过球的猫咪，NoActor 表示无
	// 同一时间最多记录一只，用于防止重叠期间每帧重复击球
	Contact ActorIndex

	Rotation  float64    // 旋转角度（度），只用于显示，每帧累加水平速度
	Animation *Animation // 球的精灵（单帧）
}

// Launched 返回球是否已经发出
func (b *Ball) Launched() bool {
	return b.WaitingTimer >= b.ReactionTime
}
