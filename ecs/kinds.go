package ecs

import (
	"fmt"
	"math/bits"
)

// Kinds allocates component kind bits and signal kind ids for one runtime
// instance. Each Scene (or group of scenes sharing component types) owns its
// own Kinds, so independent scenes and tests never interfere through shared
// global counters.
//
// Registration is expected to happen once, up front, from a single goroutine.
type Kinds struct {
	componentNames []string
	signalNames    []string
}

// NewKinds creates an empty kind registry.
func NewKinds() *Kinds {
	return &Kinds{}
}

// Component registers a new component kind and returns its token.
// Panics once the Signature bit width is exhausted: running out of bits is a
// configuration error with no safe runtime recovery.
func (k *Kinds) Component(name string) ComponentKind {
	if len(k.componentNames) >= MaxComponentKinds {
		panic(fmt.Sprintf("ecs: component kind capacity exhausted (%d kinds), cannot register %q", MaxComponentKinds, name))
	}
	bit := Signature(1) << len(k.componentNames)
	k.componentNames = append(k.componentNames, name)
	return ComponentKind{bit: bit, name: name}
}

// Signal registers a new signal kind and returns its token. Signal kinds are
// plain ids, not signature bits, so there is no capacity limit.
func (k *Kinds) Signal(name string) SignalKind {
	id := len(k.signalNames)
	k.signalNames = append(k.signalNames, name)
	return SignalKind{id: id, name: name}
}

// ComponentCount returns the number of registered component kinds.
func (k *Kinds) ComponentCount() int {
	return len(k.componentNames)
}

// SignalCount returns the number of registered signal kinds.
func (k *Kinds) SignalCount() int {
	return len(k.signalNames)
}

// NameOf returns the registered name for a single-bit component signature.
// Returns the empty string for unregistered or compound signatures.
func (k *Kinds) NameOf(bit Signature) string {
	if bits.OnesCount64(uint64(bit)) != 1 {
		return ""
	}
	idx := bits.TrailingZeros64(uint64(bit))
	if idx >= len(k.componentNames) {
		return ""
	}
	return k.componentNames[idx]
}

// Names resolves every bit of a compound signature to its registered name,
// in ascending bit order.
func (k *Kinds) Names(sig Signature) []string {
	atoms := AtomicBits(sig)
	names := make([]string, 0, len(atoms))
	for _, bit := range atoms {
		names = append(names, k.NameOf(bit))
	}
	return names
}
