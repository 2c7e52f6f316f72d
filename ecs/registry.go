package ecs

import (
	"iter"
	"slices"

	"github.com/kamstrup/intmap"
)

// EntityRegistry owns the authoritative mapping from entity id to entity,
// plus a filter cache memoizing signature queries. The cache is consistent
// with the entity set as of the last ClearCache; the scene flushes it once
// per frame, right after pending structural mutation is applied.
type EntityRegistry struct {
	byID  *intmap.Map[ID, *Entity]
	order []*Entity

	cache map[Signature][]*Entity
	// dirty accumulates the signature bits of every entity added or deleted
	// since the last flush. touched additionally covers componentless
	// entities, whose signatures contribute no bits.
	dirty   Signature
	touched bool
}

// NewEntityRegistry creates an empty registry.
func NewEntityRegistry() *EntityRegistry {
	return &EntityRegistry{
		byID:  intmap.New[ID, *Entity](256),
		cache: make(map[Signature][]*Entity),
	}
}

// Add inserts an entity and accumulates its signature into the dirty mask.
// The filter cache is not invalidated here; that is deferred to ClearCache.
func (r *EntityRegistry) Add(e *Entity) {
	if _, ok := r.byID.Get(e.id); ok {
		return
	}
	r.byID.Put(e.id, e)
	r.order = append(r.order, e)
	r.dirty |= e.signature
	r.touched = true
}

// Delete removes an entity and accumulates its signature into the dirty mask.
func (r *EntityRegistry) Delete(e *Entity) {
	if _, ok := r.byID.Get(e.id); !ok {
		return
	}
	r.byID.Del(e.id)
	if idx := slices.Index(r.order, e); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	r.dirty |= e.signature
	r.touched = true
}

// Get returns the entity with the given id.
func (r *EntityRegistry) Get(id ID) (*Entity, bool) {
	return r.byID.Get(id)
}

// Len returns the number of live entities.
func (r *EntityRegistry) Len() int {
	return len(r.order)
}

// All iterates the live entities in insertion order.
func (r *EntityRegistry) All() iter.Seq[*Entity] {
	return func(yield func(*Entity) bool) {
		for _, e := range r.order {
			if !yield(e) {
				return
			}
		}
	}
}

// FilterBySignature returns the entities whose signature contains sig, in
// insertion order. Results are memoized per signature until the next
// ClearCache.
func (r *EntityRegistry) FilterBySignature(sig Signature) []*Entity {
	if cached, ok := r.cache[sig]; ok {
		return cached
	}
	result := make([]*Entity, 0)
	for _, e := range r.order {
		if Contains(e.signature, sig) {
			result = append(result, e)
		}
	}
	r.cache[sig] = result
	return result
}

// FilterByKind returns the entities owning at least one component of the
// given kind.
func (r *EntityRegistry) FilterByKind(kind ComponentKind) []*Entity {
	return r.FilterBySignature(kind.Bit())
}

// FilterByKinds returns the entities owning all of the given kinds.
func (r *EntityRegistry) FilterByKinds(kinds ...ComponentKind) []*Entity {
	return r.FilterBySignature(SignatureOf(kinds...))
}

// ClearCache drops every cached entry whose signature overlaps the
// accumulated dirty mask, then resets the accumulator. Compound keys sharing
// any touched bit are invalidated, not just the single-bit ones. The empty
// signature matches every entity, so its entry is dropped on any structural
// change.
//
// Must be called once per frame, after all adds and deletes are applied,
// never mid-frame.
func (r *EntityRegistry) ClearCache() {
	if !r.touched {
		return
	}
	for sig := range r.cache {
		if sig == 0 || Overlaps(sig, r.dirty) {
			delete(r.cache, sig)
		}
	}
	r.dirty = 0
	r.touched = false
}
