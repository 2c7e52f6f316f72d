package main

import (
	"math/rand"

	"github.com/plus3/sigecs/ecs"
)

// stressKinds registers a fixed palette of component kinds so random
// entities cover a spread of signatures.
type stressKinds struct {
	registry *ecs.Kinds

	components []ecs.ComponentKind
	Pulse      ecs.SignalKind
}

func newStressKinds(componentCount int) *stressKinds {
	k := ecs.NewKinds()
	s := &stressKinds{registry: k, Pulse: k.Signal("pulse")}
	names := []string{
		"position", "velocity", "health", "damage", "armor", "mana",
		"cooldown", "inventory", "ai_state", "faction", "lifetime", "tag",
	}
	for i := 0; i < componentCount && i < len(names); i++ {
		s.components = append(s.components, k.Component(names[i]))
	}
	return s
}

// payload is the single concrete component type; its kind varies so one
// struct covers the whole palette.
type payload struct {
	kind  ecs.ComponentKind
	Value float64
}

func (p *payload) Kind() ecs.ComponentKind { return p.kind }

// spawnRandomEntity queues an entity owning a random subset of kinds.
func spawnRandomEntity(scene *ecs.Scene, k *stressKinds, rng *rand.Rand, componentCount int) {
	e := scene.NewEntity()
	perm := rng.Perm(len(k.components))
	for i := 0; i < componentCount && i < len(perm); i++ {
		e.AddComponent(&payload{kind: k.components[perm[i]], Value: rng.Float64()})
	}
	scene.AddEntity(e)
}

type pulseSignal struct {
	ecs.SignalBase
}

// mutateSystem rewrites component values for one kind per frame, exercising
// the query cache's hit path.
type mutateSystem struct {
	ecs.BaseSystem
	kinds *stressKinds
	rng   *rand.Rand
}

func newMutateSystem(scene *ecs.Scene, k *stressKinds, rng *rand.Rand) *mutateSystem {
	return &mutateSystem{BaseSystem: ecs.NewBaseSystem(scene, 0), kinds: k, rng: rng}
}

func (s *mutateSystem) Update() ecs.Status {
	kind := s.kinds.components[s.rng.Intn(len(s.kinds.components))]
	for _, e := range s.Scene().Entities().FilterByKind(kind) {
		if p, ok := ecs.First[*payload](e, kind); ok {
			p.Value *= 1.0001
		}
	}
	return ecs.Continue
}

// churnSystem deletes and respawns a slice of entities every frame,
// exercising the deferred-mutation path and cache invalidation.
type churnSystem struct {
	ecs.BaseSystem
	kinds     *stressKinds
	rng       *rand.Rand
	perFrame  int
	perEntity int
}

func newChurnSystem(scene *ecs.Scene, k *stressKinds, rng *rand.Rand, perFrame, perEntity int) *churnSystem {
	return &churnSystem{
		BaseSystem: ecs.NewBaseSystem(scene, 1),
		kinds:      k,
		rng:        rng,
		perFrame:   perFrame,
		perEntity:  perEntity,
	}
}

func (s *churnSystem) Update() ecs.Status {
	scene := s.Scene()
	victims := 0
	for e := range scene.Entities().All() {
		if victims >= s.perFrame {
			break
		}
		scene.DeleteEntity(e)
		victims++
	}
	for i := 0; i < victims; i++ {
		spawnRandomEntity(scene, s.kinds, s.rng, s.perEntity)
	}
	return ecs.Continue
}

// pulseSystem emits signals each frame to stress the dispatch path.
type pulseSystem struct {
	ecs.BaseSystem
	kinds    *stressKinds
	perFrame int
}

func newPulseSystem(scene *ecs.Scene, k *stressKinds, perFrame int) *pulseSystem {
	return &pulseSystem{BaseSystem: ecs.NewBaseSystem(scene, 2), kinds: k, perFrame: perFrame}
}

func (s *pulseSystem) Update() ecs.Status {
	entities := s.Scene().Entities().FilterBySignature(0)
	for i := 0; i < s.perFrame && i < len(entities); i++ {
		s.Scene().PropagateSignal(s, &pulseSignal{
			SignalBase: ecs.NewSignalBase(s.kinds.Pulse, entities[i]),
		})
	}
	return ecs.Continue
}

// sinkSystem drains every pulse signal.
type sinkSystem struct {
	ecs.BaseSystem
	received int64
}

func newSinkSystem(scene *ecs.Scene, k *stressKinds) *sinkSystem {
	s := &sinkSystem{BaseSystem: ecs.NewBaseSystem(scene, 3)}
	s.OnSignal(k.Pulse, 0, func(*ecs.Scene, ecs.Signal) {
		s.received++
	})
	return s
}

func (s *sinkSystem) Update() ecs.Status {
	s.HandleSignals()
	return ecs.Continue
}
