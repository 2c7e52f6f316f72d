package ecs_test

import (
	"fmt"
	"testing"

	"github.com/plus3/sigecs/ecs"
	"github.com/stretchr/testify/assert"
)

func TestContains(t *testing.T) {
	// Two kinds with bits 1 and 2 combine to signature 3.
	assert.True(t, ecs.Contains(3, 1))
	assert.True(t, ecs.Contains(3, 2))
	assert.True(t, ecs.Contains(3, 3))
	assert.False(t, ecs.Contains(1, 2))
	assert.False(t, ecs.Contains(2, 3))
}

func TestContainsReflexiveAndEmpty(t *testing.T) {
	for _, sig := range []ecs.Signature{0, 1, 2, 3, 12, 0xFF, 1 << 63} {
		assert.True(t, ecs.Contains(sig, sig), "Contains(s, s) must hold for %d", sig)
		assert.True(t, ecs.Contains(sig, 0), "Contains(s, 0) must hold for %d", sig)
	}
}

func TestAtomicBits(t *testing.T) {
	assert.Empty(t, ecs.AtomicBits(0))
	assert.Equal(t, []ecs.Signature{4}, ecs.AtomicBits(4))
	assert.Equal(t, []ecs.Signature{1, 2, 8}, ecs.AtomicBits(11))
	assert.Equal(t, []ecs.Signature{1 << 62, 1 << 63}, ecs.AtomicBits(3<<62))
}

func TestSignatureOf(t *testing.T) {
	k := newTestKinds()

	assert.Equal(t, ecs.Signature(0), ecs.SignatureOf())
	assert.Equal(t, k.Position.Bit(), ecs.SignatureOf(k.Position))
	assert.Equal(t, k.Position.Bit()|k.Health.Bit(), ecs.SignatureOf(k.Position, k.Health))
	// Order independent.
	assert.Equal(t, ecs.SignatureOf(k.Health, k.Position), ecs.SignatureOf(k.Position, k.Health))
}

func TestKindsAllocation(t *testing.T) {
	k := ecs.NewKinds()

	a := k.Component("a")
	b := k.Component("b")
	assert.Equal(t, ecs.Signature(1), a.Bit())
	assert.Equal(t, ecs.Signature(2), b.Bit())
	assert.NotEqual(t, a, b)

	s0 := k.Signal("hit")
	s1 := k.Signal("heal")
	assert.Equal(t, 0, s0.ID())
	assert.Equal(t, 1, s1.ID())

	assert.Equal(t, "a", k.NameOf(a.Bit()))
	assert.Equal(t, "", k.NameOf(a.Bit()|b.Bit()))
	assert.Equal(t, []string{"a", "b"}, k.Names(a.Bit()|b.Bit()))
}

func TestKindsCapacity(t *testing.T) {
	k := ecs.NewKinds()
	for i := 0; i < ecs.MaxComponentKinds; i++ {
		k.Component(fmt.Sprintf("kind-%d", i))
	}
	assert.Equal(t, ecs.MaxComponentKinds, k.ComponentCount())

	assert.Panics(t, func() {
		k.Component("one-too-many")
	})
}
