package utils

import "math"

// 缓动函数
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值 ∈ [0, 1]。
// 只用于界面效果（提示文字闪烁），不参与比赛模拟。

// EaseInOutCubic 三次方缓入缓出
// 特点：开始慢，中间快，结束慢
// 公式：
//
//	t < 0.5: f(t) = 4t³
//	t >= 0.5: f(t) = 1 - (-2t + 2)³ / 2
func EaseInOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Pulse 返回一个以 period 帧为周期、在 0 和 1 之间往返的缓动值
//
// 参数：
//   - tick: 当前帧数
//   - period: 周期帧数，<= 0 时恒为 1
//
// 返回：tick=0 时为 0，半个周期时为 1，之后回落
func Pulse(tick, period int) float64 {
	if period <= 0 {
		return 1
	}
	phase := float64(tick%period) / float64(period)
	triangle := 1 - math.Abs(2*phase-1)
	return EaseInOutCubic(triangle)
}
