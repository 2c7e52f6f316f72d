// Package ecs implements a signature-based entity-component-system runtime.
//
// Component kinds are assigned single signature bits by an explicit Kinds
// registry; entities cache the OR of their components' bits; systems run in
// priority order each frame and exchange typed signals through the scene.
// Structural mutation (entity add/delete) is deferred to the end of the frame
// so that iteration stays safe while systems run.
package ecs

import (
	"context"
	"reflect"
	"slices"
	"time"

	"go.uber.org/zap"
)

// SceneOption configures a Scene at construction time.
type SceneOption func(*Scene)

// WithLogger sets the scene's structured logger. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) SceneOption {
	return func(s *Scene) { s.log = log }
}

// DropSignalsToDisabled makes the scene drop signals addressed to disabled
// systems instead of queueing them. By default disabled systems still
// accumulate signals in their inbox and handle them once re-enabled; with
// long-disabled systems that inbox grows without bound, so callers may prefer
// dropping.
func DropSignalsToDisabled() SceneOption {
	return func(s *Scene) { s.dropDisabled = true }
}

// Scene owns the systems and the entity registry and drives the frame loop.
// All operations are single-threaded: exactly one system's Update runs at a
// time, and only the scene touches the registry at its defined apply points.
type Scene struct {
	log      *zap.Logger
	systems  []System
	entities *EntityRegistry

	pendingAdd    []*Entity
	pendingDelete []*Entity

	ids          idAllocator
	dropDisabled bool
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		log:      zap.NewNop(),
		entities: NewEntityRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Entities returns the scene's entity registry.
func (s *Scene) Entities() *EntityRegistry {
	return s.entities
}

// Systems returns the systems in execution order. Callers must not mutate
// the returned slice.
func (s *Scene) Systems() []System {
	return s.systems
}

// AddSystems appends systems and re-sorts the list by priority. The sort is
// stable: systems with equal priority keep their insertion order.
func (s *Scene) AddSystems(systems ...System) {
	for _, system := range systems {
		b := system.base()
		if b.name == "" {
			b.name = systemName(system)
		}
		s.systems = append(s.systems, system)
	}
	s.sortSystems()
}

// RemoveSystems removes systems by identity and re-sorts the list.
func (s *Scene) RemoveSystems(systems ...System) {
	for _, system := range systems {
		if idx := slices.Index(s.systems, system); idx >= 0 {
			s.systems = slices.Delete(s.systems, idx, idx+1)
		}
	}
	s.sortSystems()
}

func (s *Scene) sortSystems() {
	slices.SortStableFunc(s.systems, func(a, b System) int {
		return a.base().priority - b.base().priority
	})
}

func systemName(system System) string {
	t := reflect.TypeOf(system)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// NewEntity allocates an entity with a fresh id, detached from the scene.
// Call AddEntity to make it visible to queries at the end of the frame.
func (s *Scene) NewEntity() *Entity {
	return &Entity{id: s.ids.nextID()}
}

// AddEntity queues the entity for insertion into the registry. The insert is
// applied after all systems have run this frame.
func (s *Scene) AddEntity(e *Entity) {
	s.pendingAdd = append(s.pendingAdd, e)
}

// DeleteEntity queues the entity for removal from the registry. The entity is
// flagged removed immediately but stays queryable until the end of the frame.
// A second call on an already-removed entity is a no-op.
func (s *Scene) DeleteEntity(e *Entity) {
	if !e.markRemoved() {
		return
	}
	s.pendingDelete = append(s.pendingDelete, e)
}

// PropagateSignal pushes the signal onto the inbox of every system other than
// the sender whose handler table declares the signal's kind. Delivery is
// synchronous; consumption is deferred to each receiver's own next
// HandleSignals pass, which keeps signal handling from recursing within a
// frame.
func (s *Scene) PropagateSignal(sender System, signal Signal) {
	for _, system := range s.systems {
		if system == sender {
			continue
		}
		b := system.base()
		if s.dropDisabled && !b.enabled {
			continue
		}
		if !b.handlesKind(signal.Kind()) {
			continue
		}
		b.push(signal)
	}
}

// Update runs every enabled system in priority order. If a system reports
// Terminate, the scene logs its exit message and returns Terminate
// immediately, without running the remaining systems and without applying
// pending structural mutation for this call. Otherwise the pending deletes
// are drained, then the pending adds, and the registry's filter cache is
// flushed if either queue was non-empty.
func (s *Scene) Update() Status {
	for _, system := range s.systems {
		b := system.base()
		if !b.enabled {
			continue
		}
		start := time.Now()
		status := system.Update()
		b.stats.record(time.Since(start))

		if status == Terminate {
			s.log.Info("system requested termination",
				zap.String("system", b.name),
				zap.String("message", b.exitMessage))
			return Terminate
		}
	}

	structural := len(s.pendingDelete) > 0 || len(s.pendingAdd) > 0
	for _, e := range s.pendingDelete {
		s.entities.Delete(e)
	}
	s.pendingDelete = s.pendingDelete[:0]
	for _, e := range s.pendingAdd {
		// An entity deleted in the same frame it was queued for adding never
		// reaches the registry.
		if e.removed {
			continue
		}
		s.entities.Add(e)
	}
	s.pendingAdd = s.pendingAdd[:0]

	if structural {
		s.entities.ClearCache()
		s.log.Debug("applied structural changes", zap.Int("entities", s.entities.Len()))
	}
	return Continue
}

// Run advances the scene at the given interval until the context is cancelled
// or a system requests termination. Returns Terminate in the latter case and
// Continue in the former.
func (s *Scene) Run(ctx context.Context, interval time.Duration) Status {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return Continue
		case <-ticker.C:
			if s.Update() == Terminate {
				return Terminate
			}
		}
	}
}
