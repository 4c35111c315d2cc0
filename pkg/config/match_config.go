package config

// 对局规则常量
//
// 规则是固定的，不从配置文件读取：两只猫咪、先得 5 分者获胜、固定 60 TPS 步进。
// 所有速度和计时单位都是"每帧"，模拟不做 deltaTime 缩放。

const (
	// TicksPerSecond 模拟频率（每秒帧数），渲染帧与模拟帧一一对应
	TicksPerSecond = 60

	// WinScore 获胜所需分数
	WinScore = 5
)

// 球的参数
const (
	// BallReactionTime 发球前的等待帧数
	BallReactionTime = 60

	// BallLaunchSpeedMin 发球时每个速度分量的最小绝对值（像素/帧）
	BallLaunchSpeedMin = 3

	// BallLaunchSpeedMax 发球时每个速度分量的最大绝对值（像素/帧）
	BallLaunchSpeedMax = 5

	// BallSmashFactor 猫咪击球时水平速度的放大倍数（方向同时反转）
	BallSmashFactor = 1.05

	// BallScale 球精灵的缩放
	BallScale = 3.0
)

// 猫咪的参数
const (
	// CatScale 猫咪精灵的缩放
	CatScale = 4.0

	// CatSpeed 猫咪每帧移动的像素数
	CatSpeed = 4.0

	// CatAttackCooldown 一次攻击持续的帧数，到达后回到 Idle
	CatAttackCooldown = 20

	// PlayerStartX 玩家猫咪（左侧，索引0）的初始X坐标
	PlayerStartX = 60.0

	// OpponentStartX 电脑猫咪（右侧，索引1）的初始X坐标
	OpponentStartX = FieldWidth - 60.0

	// PlayerFacing 玩家猫咪朝向（只影响精灵镜像）
	PlayerFacing = 1.0

	// OpponentFacing 电脑猫咪朝向
	OpponentFacing = -1.0
)

// 电脑对手（AI）参数
const (
	// OpponentInitialEnergy 对手初始体力，每个活动帧消耗 1
	OpponentInitialEnergy = 100

	// OpponentRecoveryFrames 体力耗尽后的冻结帧数
	OpponentRecoveryFrames = 10

	// OpponentEnergyRefreshMin 冻结结束后重新抽取体力的下限（含）
	OpponentEnergyRefreshMin = 90

	// OpponentEnergyRefreshMax 冻结结束后重新抽取体力的上限（含）
	OpponentEnergyRefreshMax = 100
)
