package systems

import (
	"log"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/utils"
)

// OpponentSystem 电脑对手的脚本控制器
//
// 对手有一个隐藏的体力值，每个活动帧消耗 1。体力耗尽（< 0）后冻结，
// 不再更新意图，冻结 OpponentRecoveryFrames 帧后从
// [OpponentEnergyRefreshMin, OpponentEnergyRefreshMax] 随机抽取新的体力。
// 这样对手的反应是一阵一阵的，而不是每帧都精确跟球。
type OpponentSystem struct {
	rand utils.RandSource

	energy    int // 剩余体力，< 0 表示冻结中
	recovery  int // 冻结已持续的帧数
	refreshes int // 体力刷新次数（调试用）
}

// NewOpponentSystem 创建对手控制器，体力为初始值
//
// 参数:
//   - rand: 体力刷新使用的随机源
func NewOpponentSystem(rand utils.RandSource) *OpponentSystem {
	s := &OpponentSystem{rand: rand}
	s.Reset()
	return s
}

// Reset 恢复初始体力（新一局开始时调用）
func (s *OpponentSystem) Reset() {
	s.energy = config.OpponentInitialEnergy
	s.recovery = 0
}

// Energy 返回当前体力
func (s *OpponentSystem) Energy() int { return s.energy }

// Recovering 返回对手是否处于冻结状态
func (s *OpponentSystem) Recovering() bool { return s.energy < 0 }

// Refreshes 返回体力刷新的累计次数
func (s *OpponentSystem) Refreshes() int { return s.refreshes }

// Update 为猫咪计算本帧意图
//
// 活动时：球的矩形底部低于猫咪底部则向下，球的顶部高于猫咪顶部则向上，
// 否则不动；矩形重叠时攻击。冻结时保持上一帧的意图不变。
//
// 参数:
//   - cat: 被控制的猫咪
//   - ball: 球
func (s *OpponentSystem) Update(cat *components.Cat, ball *components.Ball) {
	if s.energy < 0 {
		s.recovery++
		if s.recovery >= config.OpponentRecoveryFrames {
			s.energy = s.rand.IntRange(config.OpponentEnergyRefreshMin, config.OpponentEnergyRefreshMax)
			s.recovery = 0
			s.refreshes++
			log.Printf("[OpponentSystem] Energy refreshed to %d (refresh #%d)", s.energy, s.refreshes)
		}
		return
	}

	catRect := CatRect(cat)
	ballRect := BallRect(ball)

	switch {
	case ballRect.Bottom() > catRect.Bottom():
		cat.MotionIntent = 1
	case ballRect.Top() < catRect.Top():
		cat.MotionIntent = -1
	default:
		cat.MotionIntent = 0
	}
	cat.AttackIntent = catRect.Intersects(ballRect)

	s.energy--
}
