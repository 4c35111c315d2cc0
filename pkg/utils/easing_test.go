package utils

import (
	"math"
	"testing"
)

// TestEaseInOutCubic 测试三次方缓入缓出函数
func TestEaseInOutCubic(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{"起点", 0.0, 0.0},
		{"中点", 0.5, 0.5},
		{"终点", 1.0, 1.0},
		{"四分之一", 0.25, 0.0625}, // 4 * 0.25^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := EaseInOutCubic(tt.input)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("EaseInOutCubic(%v) = %v, 期望 %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestLerp(t *testing.T) {
	if got := Lerp(0.35, 1, 0); got != 0.35 {
		t.Errorf("Lerp(0.35, 1, 0) = %v", got)
	}
	if got := Lerp(0.35, 1, 1); got != 1 {
		t.Errorf("Lerp(0.35, 1, 1) = %v", got)
	}
	if got := Lerp(10, 20, 0.5); got != 15 {
		t.Errorf("Lerp(10, 20, 0.5) = %v", got)
	}
}

// TestPulse 测试往返缓动：起点 0，半周期 1，整周期回到 0
func TestPulse(t *testing.T) {
	tests := []struct {
		name     string
		tick     int
		expected float64
	}{
		{"起点", 0, 0},
		{"半周期", 45, 1},
		{"整周期", 90, 0},
		{"五分之一周期", 18, 0.256}, // 三角波 0.4，4 * 0.4^3
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Pulse(tt.tick, 90)
			if math.Abs(result-tt.expected) > 0.001 {
				t.Errorf("Pulse(%d, 90) = %v, 期望 %v", tt.tick, result, tt.expected)
			}
		})
	}

	for tick := 0; tick < 200; tick++ {
		if v := Pulse(tick, 90); v < 0 || v > 1 {
			t.Fatalf("Pulse(%d, 90) = %v 超出 [0, 1]", tick, v)
		}
	}

	if got := Pulse(17, 0); got != 1 {
		t.Errorf("Pulse with period 0 = %v, 期望 1", got)
	}
}
