// Package codec converts between the adapter's wire representations
// (comma-delimited decimal strings, byte buffers, digest text) and the
// fixed-size vectors the sponge consumes.
package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/holiman/uint256"
)

// Delimiter separates decimal tokens.
const Delimiter = ","

var (
	// ErrArity is returned when the token count differs from the required arity
	ErrArity = errors.New("wrong number of values")

	// ErrToken is returned when a token is not a decimal integer of the required width
	ErrToken = errors.New("invalid decimal token")
)

// ArityError reports a token count mismatch.
type ArityError struct {
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("expected exactly %d values but received %d", e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrArity }

// TokenError reports an unparsable token.
type TokenError struct {
	Index  int
	Token  string
	Reason string
}

func (e *TokenError) Error() string {
	return fmt.Sprintf("value %d (%q): %s", e.Index, e.Token, e.Reason)
}

func (e *TokenError) Unwrap() error { return ErrToken }

// Split splits values on Delimiter. The empty string has zero tokens.
func Split(values string) []string {
	if values == "" {
		return nil
	}
	return strings.Split(values, Delimiter)
}

// ParseUints parses exactly arity unsigned decimal tokens, each of which
// must fit in bits. The arity is checked before any token is parsed.
func ParseUints(values string, arity int, bits int) ([]uint256.Int, error) {
	tokens := Split(values)
	if len(tokens) != arity {
		return nil, &ArityError{Want: arity, Got: len(tokens)}
	}

	out := make([]uint256.Int, arity)
	for i, tok := range tokens {
		v, err := parseToken(tok, bits)
		if err != nil {
			return nil, &TokenError{Index: i, Token: tok, Reason: err.Error()}
		}
		out[i] = *v
	}
	return out, nil
}

func parseToken(tok string, bits int) (*uint256.Int, error) {
	if tok == "" {
		return nil, errors.New("empty")
	}
	for _, c := range tok {
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("unexpected character %q", c)
		}
	}
	v, err := uint256.FromDecimal(tok)
	if err != nil {
		return nil, err
	}
	if v.BitLen() > bits {
		return nil, fmt.Errorf("exceeds %d bits", bits)
	}
	return v, nil
}

// ParseUint128s parses exactly arity unsigned 128-bit decimals.
func ParseUint128s(values string, arity int) ([]uint256.Int, error) {
	return ParseUints(values, arity, 128)
}

// ParseUint64s parses exactly arity unsigned 64-bit decimals.
func ParseUint64s(values string, arity int) ([]uint64, error) {
	wide, err := ParseUints(values, arity, 64)
	if err != nil {
		return nil, err
	}
	out := make([]uint64, len(wide))
	for i := range wide {
		out[i] = wide[i].Uint64()
	}
	return out, nil
}

// Uint128Bytes is the serialized size of one 128-bit value.
const Uint128Bytes = 16

// PackUint128sLE serializes each value as 16 little-endian bytes, in order.
func PackUint128sLE(values []uint256.Int) []byte {
	out := make([]byte, len(values)*Uint128Bytes)
	for i := range values {
		binary.LittleEndian.PutUint64(out[i*Uint128Bytes:], values[i][0])
		binary.LittleEndian.PutUint64(out[i*Uint128Bytes+8:], values[i][1])
	}
	return out
}
