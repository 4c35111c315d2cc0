package components

// ActorIndex 是两只猫咪在对局中的固定索引
// 球记录"当前接触的猫咪"时使用它，而不是持有指针
type ActorIndex int

const (
	// NoActor 表示没有猫咪（例如球当前没有接触者）
	NoActor ActorIndex = -1
	// PlayerIndex 玩家猫咪，位于左侧
	PlayerIndex ActorIndex = 0
	// OpponentIndex 电脑猫咪，位于右侧
	OpponentIndex ActorIndex = 1
)

// ActorCount 对局中猫咪的数量，整个会话期间固定
const ActorCount = 2

// String 返回索引的可读名称
func (i ActorIndex) String() string {
	switch i {
	case PlayerIndex:
		return "player"
	case OpponentIndex:
		return "opponent"
	default:
		return "none"
	}
}
