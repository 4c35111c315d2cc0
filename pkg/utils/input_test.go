package utils

import (
	"testing"

	"github.com/decker502/catpong/pkg/config"
)

func TestZoneAt(t *testing.T) {
	w, h := config.GameWindowWidth, config.GameWindowHeight

	tests := []struct {
		name string
		x, y int
		want touchZone
	}{
		{"left upper quarter moves up", 10, 10, touchZoneUp},
		{"left lower quarter moves down", 10, h - 10, touchZoneDown},
		{"left half exact middle row moves down", 10, h / 2, touchZoneDown},
		{"right half attacks", w - 10, 10, touchZoneAttack},
		{"right half lower attacks", w / 2, h - 1, touchZoneAttack},
		{"outside the screen", -1, 10, touchZoneNone},
		{"below the screen", 10, h, touchZoneNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := zoneAt(tt.x, tt.y); got != tt.want {
				t.Errorf("zoneAt(%d, %d): got %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestKeyState(t *testing.T) {
	keys := KeyState{ActionUp: true}

	if !keys.IsHeld(ActionUp) {
		t.Error("ActionUp should be held")
	}
	if keys.IsHeld(ActionDown) {
		t.Error("ActionDown should not be held")
	}

	var empty KeyState
	if empty.IsHeld(ActionAttack) {
		t.Error("nil KeyState should report nothing held")
	}
}
