package systems

import (
	"fmt"

	"github.com/decker502/catpong/pkg/components"
)

// CatStateSystem 猫咪行为状态机
//
// 每帧分两步执行：
//  1. Transition: 根据意图和当前矩形计算新状态（只改 State）
//  2. Effects: 根据新状态切换动画、移动位置、累计攻击时间（不改 State）
type CatStateSystem struct {
	clips       *components.ClipSet
	fieldHeight float64
}

// NewCatStateSystem 创建状态机系统
//
// 参数:
//   - clips: Idle / Moving / Attacking 三个动画片段
//   - fieldHeight: 球场高度，猫咪不会移出 [0, fieldHeight]
func NewCatStateSystem(clips *components.ClipSet, fieldHeight float64) *CatStateSystem {
	return &CatStateSystem{
		clips:       clips,
		fieldHeight: fieldHeight,
	}
}

// Transition 对两只猫咪执行状态转换
func (s *CatStateSystem) Transition(state *components.MatchState) {
	for i := range state.Cats {
		cat := &state.Cats[i]
		cat.State = NextCatState(cat, s.fieldHeight)
	}
}

// Effects 对两只猫咪执行新状态的效果
func (s *CatStateSystem) Effects(state *components.MatchState) {
	for i := range state.Cats {
		s.ApplyEffect(&state.Cats[i])
	}
}

// NextCatState 计算猫咪的下一个状态
//
// 这是 (当前状态, 移动意图, 攻击意图, 矩形与球场边界) 的纯函数，不修改 cat。
//
// 规则:
//   - Idle / MovingUp / MovingDown: 有攻击意图时直接进入 Attacking；
//     否则向上意图且矩形顶部未到边界时 MovingUp，向下意图且底部未到边界时 MovingDown，其余 Idle
//   - Attacking: 攻击持续时间达到冷却阈值后回到 Idle，否则保持
func NextCatState(cat *components.Cat, fieldHeight float64) components.CatState {
	switch cat.State {
	case components.CatIdle, components.CatMovingUp, components.CatMovingDown:
		if cat.AttackIntent {
			return components.CatAttacking
		}

		rect := CatRect(cat)
		if cat.MotionIntent < 0 && rect.Top() > 0 {
			return components.CatMovingUp
		}
		if cat.MotionIntent > 0 && rect.Bottom() < fieldHeight {
			return components.CatMovingDown
		}
		return components.CatIdle

	case components.CatAttacking:
		if cat.AttackElapsed >= cat.AttackCooldown {
			return components.CatIdle
		}
		return components.CatAttacking

	default:
		panic(fmt.Sprintf("cat in unknown state %v", cat.State))
	}
}

// ApplyEffect 执行猫咪当前状态的效果
//
// Idle 清空移动意图和攻击计时；移动状态按 意图 × 速度 修改 Y；
// Attacking 累计攻击持续时间。
func (s *CatStateSystem) ApplyEffect(cat *components.Cat) {
	switch cat.State {
	case components.CatIdle:
		cat.MotionIntent = 0
		cat.AttackElapsed = 0
		cat.Animation = s.clips.Idle

	case components.CatMovingUp, components.CatMovingDown:
		cat.Animation = s.clips.Moving
		cat.Y += float64(cat.MotionIntent) * cat.Speed

	case components.CatAttacking:
		cat.Animation = s.clips.Attacking
		cat.AttackElapsed++

	default:
		panic(fmt.Sprintf("cat in unknown state %v", cat.State))
	}
}
