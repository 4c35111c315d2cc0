package systems

import "github.com/decker502/catpong/pkg/components"

// AnimationSystem 推进猫咪的动画帧
//
// 帧计数只影响渲染时选取的精灵区域，不影响模拟和碰撞。
type AnimationSystem struct{}

// NewAnimationSystem 创建动画系统
func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

// Update 推进两只猫咪的动画
func (s *AnimationSystem) Update(state *components.MatchState) {
	for i := range state.Cats {
		s.Tick(&state.Cats[i])
	}
}

// Tick 推进一只猫咪一个 tick
//
// tick 计数按动画速度取模，归零时前进一帧（按帧数取模）。
// 刚切换到帧数更少的动画时，当前帧可能越界，先归零再推进。
func (s *AnimationSystem) Tick(cat *components.Cat) {
	anim := cat.Animation
	if anim == nil {
		return
	}

	if cat.CurrentFrame >= anim.FrameCount {
		cat.CurrentFrame = 0
	}

	cat.TickCounter = (cat.TickCounter + 1) % anim.Speed
	if cat.TickCounter == 0 {
		cat.CurrentFrame = (cat.CurrentFrame + 1) % anim.FrameCount
	}
}
