package rescue

import (
	"encoding/binary"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// BytesPerElement is how many input bytes are packed into one field
// element. Seven bytes always stay below the modulus.
const BytesPerElement = 7

// DigestBytes is the serialized digest length.
const DigestBytes = DigestSize * 8

// Digest is the sponge output.
type Digest [DigestSize]field.Element

// Bytes serializes the digest, 8 little-endian bytes per element.
func (d Digest) Bytes() []byte {
	out := make([]byte, DigestBytes)
	for i, elem := range d {
		binary.LittleEndian.PutUint64(out[i*8:], elem.Value())
	}
	return out
}

// Uint64s returns the canonical integer value of each digest element.
func (d Digest) Uint64s() [DigestSize]uint64 {
	var out [DigestSize]uint64
	for i, elem := range d {
		out[i] = elem.Value()
	}
	return out
}

// Equal reports whether two digests match.
func (d Digest) Equal(other Digest) bool {
	for i := range d {
		if !d[i].Equal(other[i]) {
			return false
		}
	}
	return true
}

// Hasher runs the sponge with one parameter set.
type Hasher struct {
	params *Parameters
}

// NewHasher returns a hasher over p.
func NewHasher(p *Parameters) *Hasher {
	return &Hasher{params: p}
}

// NewHasherWithSeed derives parameters from seed; an empty seed selects the
// shared default set.
func NewHasherWithSeed(seed string) *Hasher {
	if seed == "" || seed == Seed() {
		return NewHasher(DefaultParameters())
	}
	return NewHasher(NewParameters(seed))
}

// HashElements hashes a sequence of field elements. The input length is
// written into the first capacity element; the final rate block is zero
// padded.
func (h *Hasher) HashElements(elements []field.Element) Digest {
	state := NewState()
	state[0] = reduce(uint64(len(elements)))

	i := 0
	for i < len(elements) || i == 0 {
		for j := 0; j < Rate; j++ {
			if i+j < len(elements) {
				state[Capacity+j] = state[Capacity+j].Add(elements[i+j])
			}
		}
		PermuteWith(h.params, &state)
		i += Rate
	}
	return squeeze(&state)
}

// Merge hashes two digests into one. It is a single permutation over a full
// rate block.
func (h *Hasher) Merge(values [2]Digest) Digest {
	state := NewState()
	state[0] = reduce(Rate)
	copy(state[Capacity:Capacity+DigestSize], values[0][:])
	copy(state[Capacity+DigestSize:], values[1][:])
	PermuteWith(h.params, &state)
	return squeeze(&state)
}

// HashBytes hashes an arbitrary byte string. Input is padded with 0x01 and
// then zeros up to a multiple of BytesPerElement, split into little-endian
// chunks and hashed as field elements.
func (h *Hasher) HashBytes(data []byte) Digest {
	return h.HashElements(BytesToElements(data))
}

// HashElements hashes elements with the default parameters.
func HashElements(elements []field.Element) Digest {
	return NewHasher(DefaultParameters()).HashElements(elements)
}

// Merge merges two digests with the default parameters.
func Merge(values [2]Digest) Digest {
	return NewHasher(DefaultParameters()).Merge(values)
}

// HashBytes hashes data with the default parameters.
func HashBytes(data []byte) Digest {
	return NewHasher(DefaultParameters()).HashBytes(data)
}

// BytesToElements applies the byte padding and packing used by HashBytes.
func BytesToElements(data []byte) []field.Element {
	n := len(data)/BytesPerElement + 1
	padded := make([]byte, n*BytesPerElement)
	copy(padded, data)
	padded[len(data)] = 1

	elements := make([]field.Element, n)
	var buf [8]byte
	for i := range elements {
		copy(buf[:BytesPerElement], padded[i*BytesPerElement:(i+1)*BytesPerElement])
		elements[i] = field.New(binary.LittleEndian.Uint64(buf[:]))
	}
	return elements
}

func squeeze(state *State) Digest {
	var d Digest
	copy(d[:], state[Capacity:Capacity+DigestSize])
	return d
}
