package systems

import (
	"log"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/config"
	"github.com/decker502/catpong/pkg/utils"
)

// MatchSystem 比赛控制器，按固定顺序驱动每一帧的模拟
//
// 帧流水线：
//
//	输入 → 对手决策 → 状态转换 → 状态效果 → 动画 → 球移动 → 碰撞 → 计分 → 胜负判定
//
// 渲染在 RunFrame 之后只读访问 State()。
type MatchSystem struct {
	state *components.MatchState

	clips    *components.ClipSet
	ballClip *components.Animation

	input     *InputSystem
	opponent  *OpponentSystem
	autopilot *OpponentSystem // 非 nil 时代替键盘控制玩家猫咪
	catState  *CatStateSystem
	animation *AnimationSystem
	ball      *BallSystem
}

// NewMatchSystem 创建比赛控制器并开始第一局
//
// 参数:
//   - clips: 猫咪动画片段
//   - ballClip: 球的精灵片段
//   - rand: 随机源（发球和对手体力）
//
// 返回:
//   - *MatchSystem: 已重置、球在中心等待发球的比赛
func NewMatchSystem(clips *components.ClipSet, ballClip *components.Animation, rand utils.RandSource) *MatchSystem {
	ms := &MatchSystem{
		state:     &components.MatchState{},
		clips:     clips,
		ballClip:  ballClip,
		input:     NewInputSystem(),
		opponent:  NewOpponentSystem(rand),
		catState:  NewCatStateSystem(clips, config.FieldHeight),
		animation: NewAnimationSystem(),
		ball:      NewBallSystem(rand, config.FieldWidth, config.FieldHeight),
	}
	ms.Reset()
	return ms
}

// State 返回比赛状态（渲染只读）
func (ms *MatchSystem) State() *components.MatchState {
	return ms.state
}

// Opponent 返回电脑对手控制器
func (ms *MatchSystem) Opponent() *OpponentSystem {
	return ms.opponent
}

// SetPlayerAutopilot 让一个脚本控制器接管玩家猫咪
// 用于标题画面的演示和无界面的对局验证，传 nil 恢复键盘控制
func (ms *MatchSystem) SetPlayerAutopilot(autopilot *OpponentSystem) {
	ms.autopilot = autopilot
}

// RunFrame 执行一帧模拟
//
// 比赛结束后只等待确认键：按下后重新开局。
//
// 参数:
//   - keys: 本帧的按键状态
//
// 返回:
//   - components.FrameEvents: 本帧发生的事件（音效用）
func (ms *MatchSystem) RunFrame(keys utils.KeySource) components.FrameEvents {
	events := components.NewFrameEvents()
	state := ms.state

	if state.GameOver {
		if keys.IsHeld(utils.ActionConfirm) {
			ms.Reset()
			events.Restarted = true
		}
		return events
	}

	player := state.Cat(components.PlayerIndex)
	if ms.autopilot != nil {
		ms.autopilot.Update(player, &state.Ball)
	} else {
		ms.input.Update(player, keys)
	}
	ms.opponent.Update(state.Cat(components.OpponentIndex), &state.Ball)

	ms.catState.Transition(state)
	ms.catState.Effects(state)
	ms.animation.Update(state)

	events.Launched = ms.ball.Move(&state.Ball)

	result := ms.ball.ResolveCollisions(&state.Ball, &state.Cats)
	events.Bounced = result.Bounced
	events.Smash = result.Smash
	state.ScoreDelta += result.ScoreDelta

	events.Score = ms.applyScore()
	if ms.checkWin() {
		events.GameOver = true
	}

	return events
}

// applyScore 结算本帧的得分增量并清零
// 有人得分时球回到中心等待发球
func (ms *MatchSystem) applyScore() components.ActorIndex {
	state := ms.state
	scorer := components.NoActor

	switch {
	case state.ScoreDelta > 0:
		scorer = components.PlayerIndex
	case state.ScoreDelta < 0:
		scorer = components.OpponentIndex
	}
	state.ScoreDelta = 0

	if scorer == components.NoActor {
		return scorer
	}

	state.Scores[scorer]++
	ms.ball.Place(&state.Ball)
	log.Printf("[MatchSystem] Point for %s, score %d:%d", scorer, state.Scores[0], state.Scores[1])
	return scorer
}

// checkWin 任一方达到 WinScore 时结束比赛
func (ms *MatchSystem) checkWin() bool {
	state := ms.state
	for i, score := range state.Scores {
		if score >= config.WinScore {
			state.GameOver = true
			state.Winner = components.ActorIndex(i)
			log.Printf("[MatchSystem] Game over, %s wins %d:%d", state.Winner, state.Scores[0], state.Scores[1])
			return true
		}
	}
	return false
}

// Reset 重新开局
// 比分清零，两只猫咪回到初始位置和 Idle 状态，对手体力恢复，球回到中心
func (ms *MatchSystem) Reset() {
	state := ms.state
	state.Scores = [components.ActorCount]int{}
	state.ScoreDelta = 0
	state.GameOver = false
	state.Winner = components.NoActor

	_, centerY := config.FieldCenter()
	state.Cats[components.PlayerIndex] = ms.newCat(config.PlayerStartX, centerY, config.PlayerFacing)
	state.Cats[components.OpponentIndex] = ms.newCat(config.OpponentStartX, centerY, config.OpponentFacing)

	ms.opponent.Reset()
	if ms.autopilot != nil {
		ms.autopilot.Reset()
	}

	state.Ball = components.Ball{
		Scale:        config.BallScale,
		ReactionTime: config.BallReactionTime,
		Animation:    ms.ballClip,
	}
	ms.ball.Place(&state.Ball)

	log.Printf("[MatchSystem] Match reset")
}

func (ms *MatchSystem) newCat(x, y, facing float64) components.Cat {
	cat := components.NewCat(x, y, facing, ms.clips.Idle)
	cat.Scale = config.CatScale
	cat.Speed = config.CatSpeed
	cat.AttackCooldown = config.CatAttackCooldown
	return cat
}
