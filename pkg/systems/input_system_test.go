package systems

import (
	"testing"

	"github.com/decker502/catpong/pkg/components"
	"github.com/decker502/catpong/pkg/utils"
)

func TestInputSystemUpdate(t *testing.T) {
	tests := []struct {
		name       string
		keys       utils.KeyState
		wantIntent int
		wantAttack bool
	}{
		{"nothing held", utils.KeyState{}, 0, false},
		{"up", utils.KeyState{utils.ActionUp: true}, -1, false},
		{"down", utils.KeyState{utils.ActionDown: true}, 1, false},
		{"up wins over down", utils.KeyState{utils.ActionUp: true, utils.ActionDown: true}, -1, false},
		{"attack only", utils.KeyState{utils.ActionAttack: true}, 0, true},
		{"attack while moving", utils.KeyState{utils.ActionDown: true, utils.ActionAttack: true}, 1, true},
	}

	system := NewInputSystem()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// 上一帧的意图不应残留
			cat := components.Cat{MotionIntent: 1, AttackIntent: true}
			system.Update(&cat, tt.keys)

			if cat.MotionIntent != tt.wantIntent {
				t.Errorf("MotionIntent = %d, want %d", cat.MotionIntent, tt.wantIntent)
			}
			if cat.AttackIntent != tt.wantAttack {
				t.Errorf("AttackIntent = %v, want %v", cat.AttackIntent, tt.wantAttack)
			}
		})
	}
}
