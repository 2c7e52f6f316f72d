package ecs

import "math/bits"

// Signature is a bitmask identity. Each registered component kind owns exactly
// one bit; a compound signature is the bitwise OR of its constituents.
type Signature uint64

// MaxComponentKinds is the number of distinct component kinds a single Kinds
// registry can allocate, bounded by the width of Signature.
const MaxComponentKinds = 64

// Contains reports whether sig contains every bit of mask.
// Contains(s, s) and Contains(s, 0) hold for every s.
func Contains(sig, mask Signature) bool {
	return sig&mask == mask
}

// Overlaps reports whether sig and mask share at least one bit.
func Overlaps(sig, mask Signature) bool {
	return sig&mask != 0
}

// AtomicBits decomposes a compound signature into its single-bit constituents,
// in ascending bit order.
func AtomicBits(sig Signature) []Signature {
	result := make([]Signature, 0, bits.OnesCount64(uint64(sig)))
	for rest := uint64(sig); rest != 0; {
		low := rest & -rest
		result = append(result, Signature(low))
		rest &^= low
	}
	return result
}

// SignatureOf combines the bits of the given component kinds into one signature.
func SignatureOf(kinds ...ComponentKind) Signature {
	var sig Signature
	for _, k := range kinds {
		sig |= k.Bit()
	}
	return sig
}
