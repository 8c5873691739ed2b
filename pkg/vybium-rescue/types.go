package vybiumrescue

import (
	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/rescue"
)

// FieldElement represents an element of the Goldilocks field
type FieldElement = field.Element

// Arity and digest sizes of the three entry points
const (
	// V1Arity is the number of 128-bit values taken by RescueV1
	V1Arity = 4

	// V2Arity is the number of 64-bit values taken by RescueV2
	V2Arity = 8

	// DigestBytes is the byte length of the RescueV1 and RescueV3 digests
	DigestBytes = rescue.DigestBytes

	// DigestElements is the element count of the RescueV2 digest
	DigestElements = rescue.DigestSize
)

// ByteHasher hashes a byte buffer into a DigestBytes long digest
type ByteHasher interface {
	HashBytes(data []byte) []byte
}

// ElementHasher hashes field elements into DigestElements elements
type ElementHasher interface {
	HashElements(elements []FieldElement) []FieldElement
}

// RescueHasher is the default collaborator for both hasher interfaces
type RescueHasher struct {
	h *rescue.Hasher
}

// NewRescueHasher returns a hasher whose round constants come from seed;
// an empty seed selects the standard constants.
func NewRescueHasher(seed string) *RescueHasher {
	return &RescueHasher{h: rescue.NewHasherWithSeed(seed)}
}

// HashBytes implements ByteHasher
func (r *RescueHasher) HashBytes(data []byte) []byte {
	return r.h.HashBytes(data).Bytes()
}

// HashElements implements ElementHasher
func (r *RescueHasher) HashElements(elements []FieldElement) []FieldElement {
	d := r.h.HashElements(elements)
	return d[:]
}
