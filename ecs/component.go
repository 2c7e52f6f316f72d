package ecs

// ComponentKind identifies a registered component kind and carries its
// signature bit. Tokens are allocated by Kinds.Component and compare equal
// only when they come from the same registration.
type ComponentKind struct {
	bit  Signature
	name string
}

// Bit returns the kind's single signature bit.
func (k ComponentKind) Bit() Signature {
	return k.bit
}

// Name returns the name the kind was registered under.
func (k ComponentKind) Name() string {
	return k.name
}

func (k ComponentKind) String() string {
	return k.name
}

// Component is a typed data payload owned by exactly one entity. Concrete
// component types hold their data plus (conventionally) a back-reference to
// the owning entity, and report the kind they were registered as.
type Component interface {
	Kind() ComponentKind
}
