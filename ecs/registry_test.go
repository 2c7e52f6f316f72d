package ecs_test

import (
	"testing"

	"github.com/plus3/sigecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestRegistryAddDeleteGet(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	e := scene.NewEntity()
	e.AddComponent(newPosition(k, 0, 0))

	registry.Add(e)
	assert.Equal(t, 1, registry.Len())

	got, ok := registry.Get(e.ID())
	assert.True(t, ok)
	assert.Same(t, e, got)

	registry.Delete(e)
	assert.Equal(t, 0, registry.Len())
	_, ok = registry.Get(e.ID())
	assert.False(t, ok)

	// Deleting a non-member is a no-op.
	registry.Delete(e)
	assert.Equal(t, 0, registry.Len())
}

func TestRegistryIterationOrder(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	var want []ecs.ID
	for i := 0; i < 5; i++ {
		e := scene.NewEntity()
		e.AddComponent(newPosition(k, i, i))
		registry.Add(e)
		want = append(want, e.ID())
	}

	var got []ecs.ID
	for e := range registry.All() {
		got = append(got, e.ID())
	}
	assert.Equal(t, want, got)

	// Filter results follow the same insertion order.
	filtered := registry.FilterByKind(k.Position)
	assert.Len(t, filtered, 5)
	for i, e := range filtered {
		assert.Equal(t, want[i], e.ID())
	}
}

func TestRegistryFilter(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	player := scene.NewEntity()
	player.AddComponent(newPosition(k, 0, 0))
	player.AddComponent(newHealth(k, 10))
	registry.Add(player)

	trap := scene.NewEntity()
	trap.AddComponent(newPosition(k, 5, 5))
	trap.AddComponent(newDamage(k, 1))
	registry.Add(trap)

	assert.Len(t, registry.FilterByKind(k.Position), 2)
	assert.Len(t, registry.FilterByKinds(k.Position, k.Health), 1)
	assert.Len(t, registry.FilterByKind(k.Score), 0)

	// The empty signature matches everything.
	assert.Len(t, registry.FilterBySignature(0), 2)
}

func TestRegistryCacheInvalidation(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	e := scene.NewEntity()
	e.AddComponent(newPosition(k, 0, 0))
	hp := newHealth(k, 10)
	e.AddComponent(hp)
	registry.Add(e)
	registry.ClearCache()

	assert.Len(t, registry.FilterByKind(k.Health), 1)

	// Mutating the entity and re-registering the change: the cached result is
	// stale until the next flush.
	e.RemoveComponent(hp)
	registry.Delete(e)
	registry.Add(e)
	assert.Len(t, registry.FilterByKind(k.Health), 1, "cache must serve the pre-flush view")

	registry.ClearCache()
	assert.Len(t, registry.FilterByKind(k.Health), 0)
	assert.Len(t, registry.FilterByKind(k.Position), 1)
}

func TestRegistryCacheCompoundInvalidation(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	compound := k.Position.Bit() | k.Health.Bit()
	assert.Len(t, registry.FilterBySignature(compound), 0)

	// The new entity touches only single bits, but the cached compound entry
	// shares them and must be dropped too.
	e := scene.NewEntity()
	e.AddComponent(newPosition(k, 0, 0))
	e.AddComponent(newHealth(k, 10))
	registry.Add(e)
	registry.ClearCache()

	assert.Len(t, registry.FilterBySignature(compound), 1)
}

func TestRegistryCacheMatchesFreshScan(t *testing.T) {
	k := newTestKinds()
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	var entities []*ecs.Entity
	for i := 0; i < 10; i++ {
		e := scene.NewEntity()
		e.AddComponent(newPosition(k, i, i))
		if i%2 == 0 {
			e.AddComponent(newHealth(k, i))
		}
		registry.Add(e)
		entities = append(entities, e)
	}
	registry.Delete(entities[0])
	registry.Delete(entities[3])
	registry.ClearCache()

	for _, sig := range []ecs.Signature{k.Position.Bit(), k.Health.Bit(), k.Position.Bit() | k.Health.Bit()} {
		var fresh []*ecs.Entity
		for e := range registry.All() {
			if ecs.Contains(e.Signature(), sig) {
				fresh = append(fresh, e)
			}
		}
		assert.Equal(t, fresh, registry.FilterBySignature(sig), "signature %b", sig)
	}
}

func TestRegistryComponentlessEntityInvalidatesEmptyQuery(t *testing.T) {
	scene := ecs.NewScene()
	registry := ecs.NewEntityRegistry()

	assert.Len(t, registry.FilterBySignature(0), 0)

	// A componentless entity contributes no dirty bits but still changes the
	// result of the match-all query.
	registry.Add(scene.NewEntity())
	registry.ClearCache()

	assert.Len(t, registry.FilterBySignature(0), 1)
}
