package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (title screen or match).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one fixed simulation step.
	// deltaTime is the step length in seconds (always 1/TicksPerSecond).
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// Draw must not modify simulation state.
	Draw(screen *ebiten.Image)
}

// Enterable 是一个可选接口，场景被切换为当前场景时调用 OnEnter
type Enterable interface {
	OnEnter()
}
