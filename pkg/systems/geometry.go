package systems

import (
	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/utils"
)

// CatRect 返回猫咪的碰撞矩形
// 以猫咪位置为中心，宽度为当前动画单帧宽度 × 缩放，高度为精灵图高度 × 缩放。
// 动画切换后矩形随之改变，所以每次使用前都要重新计算。
func CatRect(cat *components.Cat) utils.Rect {
	return utils.NewCenteredRect(
		cat.X, cat.Y,
		cat.Animation.FrameWidth()*cat.Scale,
		cat.Animation.FrameHeight()*cat.Scale,
	)
}

// BallRect 返回球的碰撞矩形（中心对齐，单帧精灵 × 缩放）
func BallRect(ball *components.Ball) utils.Rect {
	return utils.NewCenteredRect(
		ball.X, ball.Y,
		ball.Animation.FrameWidth()*ball.Scale,
		ball.Animation.FrameHeight()*ball.Scale,
	)
}
