// Package debugui provides immediate-mode inspector windows for running
// scenes using Dear ImGui. Attach an InspectorSystem to a scene to get an
// entity browser, a system inspector, and frame statistics as an overlay.
package debugui

import (
	"time"

	"github.com/plus3/sigecs/ecs"
)

// Window is a single inspector panel rendered once per frame.
type Window interface {
	Render(scene *ecs.Scene)
}

// InspectorSystem renders its windows every frame. Give it a high priority so
// it runs after the gameplay systems and sees the frame's final state.
type InspectorSystem struct {
	ecs.BaseSystem
	windows []Window
}

// NewInspectorSystem creates an inspector bound to the scene.
func NewInspectorSystem(scene *ecs.Scene, priority int, windows ...Window) *InspectorSystem {
	return &InspectorSystem{
		BaseSystem: ecs.NewBaseSystem(scene, priority),
		windows:    windows,
	}
}

// Update renders every window.
func (s *InspectorSystem) Update() ecs.Status {
	for _, w := range s.windows {
		w.Render(s.Scene())
	}
	return ecs.Continue
}

// FrameTimer measures wall-clock time between frames for the stats window.
type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
