package components

// MatchState 一局比赛的完整模拟状态
//
// 所有帧内阶段都通过指针修改同一个 MatchState；渲染在同一帧稍后只读访问它。
// Cats 的索引固定：0 为玩家，1 为电脑对手。
type MatchState struct {
	Cats   [ActorCount]Cat
	Ball   Ball
	Scores [ActorCount]int // 左侧（玩家）、右侧（对手）得分

	// ScoreDelta 本帧碰撞阶段记录的得分增量：+1 左侧得分，-1 右侧得分
	// 结算后清零
	ScoreDelta int

	GameOver bool
	Winner   ActorIndex // GameOver 时获胜的一方，否则为 NoActor
}

// Cat 按索引返回猫咪指针
func (m *MatchState) Cat(i ActorIndex) *Cat {
	return &m.Cats[i]
}

// FrameEvents 记录一帧内发生的事件
// 只用于音效和日志，不参与模拟
type FrameEvents struct {
	Launched  bool       // 本帧发球
	Bounced   bool       // 本帧球碰到上下边界反弹
	Smash     ActorIndex // 本帧击球的猫咪，NoActor 表示无
	Score     ActorIndex // 本帧得分的一方，NoActor 表示无
	GameOver  bool       // 本帧比赛结束
	Restarted bool       // 本帧重新开局
}

// NewFrameEvents 返回一个空的事件记录
func NewFrameEvents() FrameEvents {
	return FrameEvents{
		Smash: NoActor,
		Score: NoActor,
	}
}

// Any 返回本帧是否有任何事件
func (e FrameEvents) Any() bool {
	return e.Launched || e.Bounced || e.Smash != NoActor || e.Score != NoActor || e.GameOver || e.Restarted
}
