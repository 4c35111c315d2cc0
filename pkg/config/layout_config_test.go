package config

import "testing"

// TestMatchConstants 检查比赛常量之间的约束
func TestMatchConstants(t *testing.T) {
	if BallLaunchSpeedMin > BallLaunchSpeedMax {
		t.Errorf("launch speed range inverted: [%d, %d]", BallLaunchSpeedMin, BallLaunchSpeedMax)
	}
	if OpponentEnergyRefreshMin > OpponentEnergyRefreshMax {
		t.Errorf("energy refresh range inverted: [%d, %d]", OpponentEnergyRefreshMin, OpponentEnergyRefreshMax)
	}
	if PlayerStartX >= OpponentStartX {
		t.Errorf("player must start left of opponent: %v >= %v", PlayerStartX, OpponentStartX)
	}
	if PlayerFacing*OpponentFacing >= 0 {
		t.Error("cats must face each other")
	}
	if WinScore <= 0 {
		t.Errorf("WinScore = %d, want > 0", WinScore)
	}
}

func TestFieldCenter(t *testing.T) {
	x, y := FieldCenter()
	if x != FieldWidth/2 || y != FieldHeight/2 {
		t.Errorf("FieldCenter() = (%v, %v), want (%v, %v)", x, y, FieldWidth/2, FieldHeight/2)
	}
}
