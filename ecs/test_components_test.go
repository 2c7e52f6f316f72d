package ecs_test

import "github.com/plus3/sigecs/ecs"

// Common kind registry for tests. Each test builds its own so bit allocation
// never leaks between tests.
type testKinds struct {
	registry *ecs.Kinds

	Position ecs.ComponentKind
	Health   ecs.ComponentKind
	Damage   ecs.ComponentKind
	Score    ecs.ComponentKind

	Collision ecs.SignalKind
	Tick      ecs.SignalKind
}

func newTestKinds() *testKinds {
	k := ecs.NewKinds()
	return &testKinds{
		registry:  k,
		Position:  k.Component("position"),
		Health:    k.Component("health"),
		Damage:    k.Component("damage"),
		Score:     k.Component("score"),
		Collision: k.Signal("collision"),
		Tick:      k.Signal("tick"),
	}
}

type position struct {
	kind ecs.ComponentKind
	X, Y int
}

func (p *position) Kind() ecs.ComponentKind { return p.kind }

func newPosition(k *testKinds, x, y int) *position {
	return &position{kind: k.Position, X: x, Y: y}
}

type health struct {
	kind ecs.ComponentKind
	HP   int
}

func (h *health) Kind() ecs.ComponentKind { return h.kind }

func newHealth(k *testKinds, hp int) *health {
	return &health{kind: k.Health, HP: hp}
}

type damage struct {
	kind   ecs.ComponentKind
	Amount int
}

func (d *damage) Kind() ecs.ComponentKind { return d.kind }

func newDamage(k *testKinds, amount int) *damage {
	return &damage{kind: k.Damage, Amount: amount}
}

type score struct {
	kind  ecs.ComponentKind
	Value int
}

func (s *score) Kind() ecs.ComponentKind { return s.kind }

func newScore(k *testKinds) *score {
	return &score{kind: k.Score}
}

type collisionSignal struct {
	ecs.SignalBase
	Perpetrator *ecs.Entity
	Victim      *ecs.Entity
}

func newCollisionSignal(k *testKinds, involved ...*ecs.Entity) *collisionSignal {
	s := &collisionSignal{SignalBase: ecs.NewSignalBase(k.Collision, involved...)}
	if len(involved) > 0 {
		s.Perpetrator = involved[0]
	}
	if len(involved) > 1 {
		s.Victim = involved[1]
	}
	return s
}
