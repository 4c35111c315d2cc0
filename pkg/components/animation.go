package components

// Animation 描述一个基于横向精灵图（spritesheet）的动画片段
//
// Animation 在启动时由资源加载阶段创建，之后不可变。
// 多只猫咪可以同时引用同一个 Animation，切换动画只是替换指针。
// 帧计时状态（当前帧、tick 计数）保存在使用者身上，而不是这里。
type Animation struct {
	Name          string // 片段名称，如 "idle"、"moving"
	ImageID       string // 精灵图的资源ID，渲染时用来查找纹理
	FrameCount    int    // 帧数（>=1，由资源配置校验保证）
	Speed         int    // 每前进一帧需要的 tick 数（>=1）
	TextureWidth  int    // 整张精灵图的宽度（像素）
	TextureHeight int    // 精灵图的高度（像素），即单帧高度
}

// FrameWidth 返回单帧宽度（像素，未缩放）
func (a *Animation) FrameWidth() float64 {
	return float64(a.TextureWidth) / float64(a.FrameCount)
}

// FrameHeight 返回单帧高度（像素，未缩放）
func (a *Animation) FrameHeight() float64 {
	return float64(a.TextureHeight)
}

// SourceRect 返回第 frame 帧在精灵图中的区域
// 超出范围的帧号按第0帧处理
//
// 返回：
//   - x, y: 区域左上角
//   - w, h: 区域宽高
func (a *Animation) SourceRect(frame int) (x, y, w, h int) {
	if frame < 0 || frame >= a.FrameCount {
		frame = 0
	}
	w = a.TextureWidth / a.FrameCount
	return frame * w, 0, w, a.TextureHeight
}

// ClipSet 猫咪使用的三个动画片段
type ClipSet struct {
	Idle      *Animation
	Moving    *Animation
	Attacking *Animation
}
