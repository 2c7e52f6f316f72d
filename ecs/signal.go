package ecs

// SignalKind identifies a registered signal kind. Signal kinds are distinct
// from component signature bits; they are plain monotonically allocated ids
// used to pick the handler category during dispatch.
type SignalKind struct {
	id   int
	name string
}

// ID returns the kind's numeric id.
func (k SignalKind) ID() int {
	return k.id
}

// Name returns the name the kind was registered under.
func (k SignalKind) Name() string {
	return k.name
}

func (k SignalKind) String() string {
	return k.name
}

// Signal is a typed event routed between systems. A signal carries its kind
// (handler category) and a signature used for sub-dispatch within that
// category, typically derived from the entities involved in the event.
//
// Signals are created by a system during its update, handed to the scene for
// propagation, queued into each matching system's inbox, and discarded once
// handled.
type Signal interface {
	Kind() SignalKind
	Signature() Signature
}

// SignalBase is the common payload of a signal: the involved entities and the
// signature derived from them. Embed it in concrete signal types.
type SignalBase struct {
	kind      SignalKind
	signature Signature
	involved  []*Entity
}

// NewSignalBase builds a signal payload whose signature is the OR of the
// involved entities' signatures. The involved set is small and need not be
// unique.
func NewSignalBase(kind SignalKind, involved ...*Entity) SignalBase {
	var sig Signature
	for _, e := range involved {
		sig |= e.Signature()
	}
	return SignalBase{kind: kind, signature: sig, involved: involved}
}

// NewSignalBaseWithSignature builds a signal payload with an explicit
// signature instead of the derived one. Useful when sub-dispatch should key on
// a subset of the involved entities (e.g. only the perpetrator of a collision).
func NewSignalBaseWithSignature(kind SignalKind, sig Signature, involved ...*Entity) SignalBase {
	return SignalBase{kind: kind, signature: sig, involved: involved}
}

// Kind returns the signal's kind.
func (s SignalBase) Kind() SignalKind {
	return s.kind
}

// Signature returns the signature used for sub-dispatch.
func (s SignalBase) Signature() Signature {
	return s.signature
}

// Involved returns the entities referenced by this signal.
func (s SignalBase) Involved() []*Entity {
	return s.involved
}
