package systems

import (
	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/utils"
)

// CollisionResult 一帧碰撞检测的结果
type CollisionResult struct {
	// ScoreDelta 得分增量：+1 球越过右边界（左侧得分），-1 球越过左边界（右侧得分）
	ScoreDelta int
	// Bounced 球碰到上下边界后反弹
	Bounced bool
	// Smash 本帧击球的猫咪，NoActor 表示无
	Smash components.ActorIndex
}

// BallSystem 球的运动和碰撞
//
// 球有两个阶段：等待（发球前静止在中心）和运动。
// 运动使用固定步长的欧拉积分，每帧 位置 += 速度，不做 deltaTime 缩放。
type BallSystem struct {
	rand        utils.RandSource
	fieldWidth  float64
	fieldHeight float64
}

// NewBallSystem 创建球系统
//
// 参数:
//   - rand: 发球方向和速度的随机源
//   - fieldWidth, fieldHeight: 球场尺寸
func NewBallSystem(rand utils.RandSource, fieldWidth, fieldHeight float64) *BallSystem {
	return &BallSystem{
		rand:        rand,
		fieldWidth:  fieldWidth,
		fieldHeight: fieldHeight,
	}
}

// Place 把球放回场地中心，进入等待发球状态
func (s *BallSystem) Place(ball *components.Ball) {
	ball.X = s.fieldWidth / 2
	ball.Y = s.fieldHeight / 2
	ball.VX = 0
	ball.VY = 0
	ball.WaitingTimer = 0
	ball.Contact = components.NoActor
}

// Move 推进球一帧
//
// 等待阶段只累加计时，计时到达 ReactionTime 的那一帧发球；
// 运动阶段按速度移动，旋转角度累加水平速度。
//
// 返回:
//   - bool: 本帧是否发球
func (s *BallSystem) Move(ball *components.Ball) bool {
	if ball.WaitingTimer < ball.ReactionTime {
		ball.WaitingTimer++
		if ball.WaitingTimer == ball.ReactionTime {
			s.launch(ball)
			return true
		}
		return false
	}

	ball.X += ball.VX
	ball.Y += ball.VY
	ball.Rotation += ball.VX
	return false
}

// launch 随机选择发球速度
// 两个分量的绝对值各自均匀取自 [BallLaunchSpeedMin, BallLaunchSpeedMax]，符号独立随机
func (s *BallSystem) launch(ball *components.Ball) {
	ball.VX = s.randomComponent()
	ball.VY = s.randomComponent()
}

func (s *BallSystem) randomComponent() float64 {
	v := float64(s.rand.IntRange(config.BallLaunchSpeedMin, config.BallLaunchSpeedMax))
	if s.rand.IntRange(0, 1) == 0 {
		v = -v
	}
	return v
}

// ResolveCollisions 处理球与边界、球与猫咪的碰撞
//
// 边界:
//   - 球的矩形越过右边界记 +1，越过左边界记 -1
//   - 越过上/下边界时反转垂直速度，不修正位置（球可能短暂穿出边界）
//
// 猫咪:
//   - 先检查已记录的接触猫咪，矩形不再重叠则清除接触
//   - 再按索引顺序（玩家优先）检查：未被记录为接触、处于 Attacking 且矩形重叠的猫咪
//     成为新的接触者，水平速度乘以 -BallSmashFactor；每帧最多一次
func (s *BallSystem) ResolveCollisions(ball *components.Ball, cats *[components.ActorCount]components.Cat) CollisionResult {
	result := CollisionResult{Smash: components.NoActor}
	ballRect := BallRect(ball)

	if ballRect.Right() >= s.fieldWidth {
		result.ScoreDelta = 1
	} else if ballRect.Left() <= 0 {
		result.ScoreDelta = -1
	}

	if ballRect.Top() <= 0 || ballRect.Bottom() >= s.fieldHeight {
		ball.VY = -ball.VY
		result.Bounced = true
	}

	if ball.Contact != components.NoActor && !CatRect(&cats[ball.Contact]).Intersects(ballRect) {
		ball.Contact = components.NoActor
	}

	for i := range cats {
		index := components.ActorIndex(i)
		cat := &cats[i]
		if ball.Contact == index || cat.State != components.CatAttacking {
			continue
		}
		if !CatRect(cat).Intersects(ballRect) {
			continue
		}

		ball.Contact = index
		ball.VX *= -config.BallSmashFactor
		result.Smash = index
		break
	}

	return result
}
