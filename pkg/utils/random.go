package utils

import "math/rand/v2"

// RandSource 均匀分布的随机整数来源
// 模拟中所有随机性（发球方向、对手体力）都通过它获取，测试可以注入固定序列
type RandSource interface {
	// IntRange 返回 [min, max] 闭区间内的随机整数
	IntRange(min, max int) int
}

// Rand 基于 math/rand/v2 PCG 的随机源，同一个种子产生同一序列
type Rand struct {
	r *rand.Rand
}

// NewRand 创建随机源
//
// 参数：
//   - seed: 随机种子
func NewRand(seed uint64) *Rand {
	return &Rand{r: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// IntRange 实现 RandSource
// max <= min 时直接返回 min
func (r *Rand) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.r.IntN(max-min+1)
}
