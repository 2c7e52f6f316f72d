package ecs

import "slices"

// ID is a process-unique entity identifier. Ids increase monotonically and
// are never reused, even after deletion.
type ID uint64

// idAllocator hands out entity ids. Owned by a Scene; not safe for concurrent
// use (single allocation goroutine assumed).
type idAllocator struct {
	next uint64
}

func (a *idAllocator) nextID() ID {
	a.next++
	return ID(a.next)
}

// Entity is an id-bearing container of components. Its signature is kept
// equal to the OR of its components' kind bits across every mutation.
//
// An entity starts detached from any scene: it becomes visible to registry
// queries only after the scene applies the pending add at the end of a frame,
// and stays queryable after a deletion request until the pending delete is
// applied.
type Entity struct {
	id         ID
	signature  Signature
	removed    bool
	components []Component
}

// ID returns the entity's id.
func (e *Entity) ID() ID {
	return e.id
}

// Signature returns the OR of the kind bits of the entity's components.
func (e *Entity) Signature() Signature {
	return e.signature
}

// Removed reports whether deletion has been requested for this entity.
func (e *Entity) Removed() bool {
	return e.removed
}

// markRemoved flags the entity as removed. Returns false if it already was,
// making deletion requests idempotent.
func (e *Entity) markRemoved() bool {
	if e.removed {
		return false
	}
	e.removed = true
	return true
}

// Components returns the entity's components in insertion order.
// The returned slice is the entity's own; callers must not mutate it.
func (e *Entity) Components() []Component {
	return e.components
}

// AddComponent appends a component and ORs its kind bit into the signature.
// Adding two components of the same kind is legal; both remain queryable and
// first-match queries return the earliest added.
func (e *Entity) AddComponent(c Component) {
	e.signature |= c.Kind().Bit()
	e.components = append(e.components, c)
}

// RemoveComponent removes a component by identity and recomputes the
// signature from the remaining set. A full recompute is required because a
// duplicate of the removed kind may survive.
func (e *Entity) RemoveComponent(c Component) {
	idx := slices.IndexFunc(e.components, func(have Component) bool { return have == c })
	if idx < 0 {
		return
	}
	e.components = slices.Delete(e.components, idx, idx+1)
	e.recalcSignature()
}

// RemoveComponents removes each given component by identity, then recomputes
// the signature once.
func (e *Entity) RemoveComponents(toRemove ...Component) {
	for _, c := range toRemove {
		idx := slices.IndexFunc(e.components, func(have Component) bool { return have == c })
		if idx >= 0 {
			e.components = slices.Delete(e.components, idx, idx+1)
		}
	}
	e.recalcSignature()
}

func (e *Entity) recalcSignature() {
	e.signature = 0
	for _, c := range e.components {
		e.signature |= c.Kind().Bit()
	}
}

// Has reports whether the entity owns at least one component of the given kind.
func (e *Entity) Has(kind ComponentKind) bool {
	return Contains(e.signature, kind.Bit())
}

// ComponentsBySignature returns the components whose kind bit is contained in
// sig, in insertion order.
func (e *Entity) ComponentsBySignature(sig Signature) []Component {
	var result []Component
	for _, c := range e.components {
		if Contains(sig, c.Kind().Bit()) {
			result = append(result, c)
		}
	}
	return result
}

// FirstBySignature returns the earliest-added component whose kind bit is
// contained in sig, or false if none matches.
func (e *Entity) FirstBySignature(sig Signature) (Component, bool) {
	for _, c := range e.components {
		if Contains(sig, c.Kind().Bit()) {
			return c, true
		}
	}
	return nil, false
}

// ComponentsByKinds resolves kinds to a combined signature and returns the
// matching components.
func (e *Entity) ComponentsByKinds(kinds ...ComponentKind) []Component {
	return e.ComponentsBySignature(SignatureOf(kinds...))
}

// FirstByKind returns the earliest-added component of the given kind.
func (e *Entity) FirstByKind(kind ComponentKind) (Component, bool) {
	return e.FirstBySignature(kind.Bit())
}

// First returns the earliest-added component of the given kind, asserted to
// the concrete type T. Returns false if the entity has no such component or
// it is not a T.
func First[T Component](e *Entity, kind ComponentKind) (T, bool) {
	c, ok := e.FirstByKind(kind)
	if !ok {
		var zero T
		return zero, false
	}
	typed, ok := c.(T)
	return typed, ok
}
