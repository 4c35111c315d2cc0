package utils

// Rect 轴对齐矩形（AABB），X/Y 为左上角
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewCenteredRect 以 (cx, cy) 为中心创建矩形
func NewCenteredRect(cx, cy, width, height float64) Rect {
	return Rect{
		X:      cx - width/2,
		Y:      cy - height/2,
		Width:  width,
		Height: height,
	}
}

// Left 左边界
func (r Rect) Left() float64 { return r.X }

// Right 右边界
func (r Rect) Right() float64 { return r.X + r.Width }

// Top 上边界（Y 轴向下，数值最小）
func (r Rect) Top() float64 { return r.Y }

// Bottom 下边界
func (r Rect) Bottom() float64 { return r.Y + r.Height }

// Center 中心点
func (r Rect) Center() (x, y float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// Intersects 检查两个矩形是否重叠
// 边界相接也算重叠（包含边界）
func (r Rect) Intersects(o Rect) bool {
	// 任一轴上没有重叠，则没有碰撞
	return r.Right() >= o.Left() &&
		r.Left() <= o.Right() &&
		r.Bottom() >= o.Top() &&
		r.Top() <= o.Bottom()
}
