// Package rescue implements a Rescue-Prime sponge over the Goldilocks field.
//
// The permutation works on a state of 12 field elements: 4 capacity elements
// followed by 8 rate elements. A digest is the first 4 rate elements. Round
// constants are squeezed from SHAKE256 and the MDS matrix is a Cauchy matrix,
// so all parameters are derived at first use rather than shipped as tables.
package rescue

import (
	"encoding/binary"
	"fmt"
	"sync"

	"github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
	"golang.org/x/crypto/sha3"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/log"
)

// Sponge geometry and round parameters
const (
	StateWidth = 12
	Capacity   = 4
	Rate       = StateWidth - Capacity
	DigestSize = 4
	NumRounds  = 7

	// Alpha is the S-box exponent
	Alpha uint64 = 7

	// InvAlpha is the inverse S-box exponent, Alpha * InvAlpha = 1 mod (p - 1)
	InvAlpha uint64 = 10540996611094048183

	// SecurityLevel is the targeted security in bits, part of the constant seed
	SecurityLevel = 128
)

// Seed returns the SHAKE256 seed for the round constants.
func Seed() string {
	return fmt.Sprintf("Rescue-XLIX(%d,%d,%d,%d)", uint64(field.P), StateWidth, Capacity, SecurityLevel)
}

// Parameters holds the derived permutation constants.
type Parameters struct {
	MDS [StateWidth][StateWidth]field.Element

	// ARK1 is added after the forward half-round, ARK2 after the backward one
	ARK1 [NumRounds][StateWidth]field.Element
	ARK2 [NumRounds][StateWidth]field.Element
}

var (
	paramsOnce sync.Once
	params     *Parameters
)

// DefaultParameters returns the shared parameter set, deriving it on first call.
func DefaultParameters() *Parameters {
	paramsOnce.Do(func() {
		params = NewParameters(Seed())
	})
	return params
}

// NewParameters derives a parameter set from seed.
func NewParameters(seed string) *Parameters {
	p := &Parameters{}
	p.MDS = cauchyMatrix()

	shake := sha3.NewShake256()
	_, _ = shake.Write([]byte(seed))

	var buf [8]byte
	next := func() field.Element {
		_, _ = shake.Read(buf[:])
		return reduce(binary.LittleEndian.Uint64(buf[:]))
	}

	for r := 0; r < NumRounds; r++ {
		for i := 0; i < StateWidth; i++ {
			p.ARK1[r][i] = next()
		}
		for i := 0; i < StateWidth; i++ {
			p.ARK2[r][i] = next()
		}
	}
	log.Rescue.Debug().Str("seed", seed).Int("rounds", NumRounds).Msg("derived round constants")
	return p
}

// cauchyMatrix builds M[i][j] = 1 / (x_i + y_j) with x_i = i and
// y_j = StateWidth + j. All x_i + y_j are distinct and nonzero, which makes
// every square submatrix invertible.
func cauchyMatrix() [StateWidth][StateWidth]field.Element {
	var m [StateWidth][StateWidth]field.Element
	for i := 0; i < StateWidth; i++ {
		for j := 0; j < StateWidth; j++ {
			m[i][j] = field.New(uint64(i + StateWidth + j)).Inverse()
		}
	}
	return m
}

// reduce maps any uint64 to its canonical field element.
func reduce(v uint64) field.Element {
	if v >= field.P {
		v -= field.P
	}
	return field.New(v)
}

// ElementFromUint64 returns v reduced modulo the field prime.
func ElementFromUint64(v uint64) field.Element {
	return reduce(v)
}
