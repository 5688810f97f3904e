package engine

import (
	"github.com/spaghettifunk/glpong/engine/core"
	"github.com/spaghettifunk/glpong/engine/systems"
)

// Game is what the engine runs. The engine fills in SystemManager, Input and
// Events before calling FnInitialize.
type Game struct {
	ApplicationConfig *ApplicationConfig
	SystemManager     *systems.SystemManager
	Input             *core.InputState
	Events            *core.EventBus
	FnInitialize      Initialize
	FnUpdate          Update
	FnOnResize        OnResize
	FnShutdown        Shutdown
}

type Initialize func() error

// Update runs one frame. timestamp is the host time in milliseconds.
type Update func(timestamp float64) error
type OnResize func(width uint32, height uint32) error
type Shutdown func() error
