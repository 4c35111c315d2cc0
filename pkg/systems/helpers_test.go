package systems

import "github.com/decker502/catpong/pkg/components"

// scriptedRand 按顺序循环返回预设值的随机源
// 返回值会被夹在 [min, max] 内，方便复用同一序列
type scriptedRand struct {
	values []int
	calls  int
}

func (r *scriptedRand) IntRange(min, max int) int {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// testClips 64x16 的四帧猫咪精灵（单帧 16x16）和 8x8 的球
func testClips() (*components.ClipSet, *components.Animation) {
	clip := func(name string, speed int) *components.Animation {
		return &components.Animation{
			Name:          name,
			ImageID:       "IMAGE_" + name,
			FrameCount:    4,
			Speed:         speed,
			TextureWidth:  64,
			TextureHeight: 16,
		}
	}
	clips := &components.ClipSet{
		Idle:      clip("idle", 12),
		Moving:    clip("moving", 6),
		Attacking: clip("attacking", 5),
	}
	ball := &components.Animation{
		Name:          "ball",
		ImageID:       "IMAGE_ball",
		FrameCount:    1,
		Speed:         1,
		TextureWidth:  8,
		TextureHeight: 8,
	}
	return clips, ball
}

// newTestCat 创建一只 64x64 碰撞矩形的猫咪
func newTestCat(clips *components.ClipSet, x, y float64) components.Cat {
	cat := components.NewCat(x, y, 1, clips.Idle)
	cat.Scale = 4
	cat.Speed = 4
	cat.AttackCooldown = 20
	return cat
}

// newTestBall 创建一个 24x24 碰撞矩形、已发球的球
func newTestBall(ballClip *components.Animation, x, y float64) components.Ball {
	return components.Ball{
		X:            x,
		Y:            y,
		Scale:        3,
		ReactionTime: 60,
		WaitingTimer: 60,
		Contact:      components.NoActor,
		Animation:    ballClip,
	}
}
