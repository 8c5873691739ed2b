package vybiumrescue

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/vybium/vybium-rescue/internal/vybium-rescue/codec"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/log"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/rescue"
	"github.com/vybium/vybium-rescue/internal/vybium-rescue/utils"
)

// Config represents the adapter configuration
type Config = utils.Config

// DefaultConfig returns the default adapter configuration
func DefaultConfig() *Config {
	return utils.DefaultConfig()
}

// Adapter converts caller representations to sponge inputs and digests back.
// It holds no mutable state and is safe for concurrent use when its
// collaborators are.
type Adapter struct {
	bytes    ByteHasher
	elements ElementHasher
	encoding codec.Encoding
	logger   *zerolog.Logger
	workers  int
}

// Option customizes an Adapter
type Option func(*Adapter)

// WithByteHasher replaces the byte collaborator
func WithByteHasher(h ByteHasher) Option {
	return func(a *Adapter) { a.bytes = h }
}

// WithElementHasher replaces the element collaborator
func WithElementHasher(h ElementHasher) Option {
	return func(a *Adapter) { a.elements = h }
}

// WithLogger sets the adapter logger
func WithLogger(l zerolog.Logger) Option {
	return func(a *Adapter) { a.logger = &l }
}

// NewAdapter creates an adapter from config. A nil config means DefaultConfig.
func NewAdapter(config *Config, opts ...Option) (*Adapter, error) {
	if config == nil {
		config = DefaultConfig()
	}
	if err := config.Validate(); err != nil {
		return nil, newError(ErrInvalidConfig, "new adapter", "invalid configuration", err)
	}

	h := NewRescueHasher(config.ConstantSeed)
	a := &Adapter{
		bytes:    h,
		elements: h,
		encoding: codec.Encoding(config.Encoding),
		workers:  config.Workers,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

func (a *Adapter) getLogger() *zerolog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return &log.Adapter
}

// Encoding returns the text encoding used by RescueV3.
func (a *Adapter) Encoding() codec.Encoding {
	return a.encoding
}

// Workers returns the batch concurrency limit.
func (a *Adapter) Workers() int {
	return a.workers
}

// RescueV1 hashes exactly four comma-separated unsigned 128-bit decimals.
// Each value is serialized as 16 little-endian bytes, giving a 64-byte
// buffer, and the 32-byte digest of that buffer is returned.
func (a *Adapter) RescueV1(values string) ([]byte, error) {
	p := Pipeline[string, []byte, []byte, []byte]{
		Name: "rescue_v1",
		Parse: func(s string) ([]byte, error) {
			vals, err := codec.ParseUint128s(s, V1Arity)
			if err != nil {
				return nil, err
			}
			return codec.PackUint128sLE(vals), nil
		},
		Invoke:     a.bytes.HashBytes,
		DigestSize: DigestBytes,
		Encode: func(d []byte) ([]byte, error) {
			out := make([]byte, len(d))
			copy(out, d)
			return out, nil
		},
		Log: a.getLogger(),
	}
	return p.Run(values)
}

// RescueV2 hashes exactly eight comma-separated unsigned 64-bit decimals as
// field elements; values at or above the modulus are reduced. It returns the
// canonical integer of each of the four digest elements.
func (a *Adapter) RescueV2(values string) ([DigestElements]uint64, error) {
	p := Pipeline[string, []FieldElement, []FieldElement, [DigestElements]uint64]{
		Name: "rescue_v2",
		Parse: func(s string) ([]FieldElement, error) {
			vals, err := codec.ParseUint64s(s, V2Arity)
			if err != nil {
				return nil, err
			}
			elems := make([]FieldElement, len(vals))
			for i, v := range vals {
				elems[i] = rescue.ElementFromUint64(v)
			}
			return elems, nil
		},
		Invoke:     a.elements.HashElements,
		DigestSize: DigestElements,
		Encode: func(d []FieldElement) ([DigestElements]uint64, error) {
			var out [DigestElements]uint64
			for i := range out {
				out[i] = d[i].Value()
			}
			return out, nil
		},
		Log: a.getLogger(),
	}
	return p.Run(values)
}

// RescueV3 hashes an arbitrary byte buffer and returns the digest as text
// in the adapter's encoding (hex unless configured otherwise).
func (a *Adapter) RescueV3(values []byte) (string, error) {
	return a.rescueV3(values, a.encoding)
}

// RescueV3Raw returns the digest bytes reinterpreted as a string. It fails
// with ErrInvalidText unless the digest happens to be valid UTF-8.
func (a *Adapter) RescueV3Raw(values []byte) (string, error) {
	return a.rescueV3(values, codec.Raw)
}

func (a *Adapter) rescueV3(values []byte, enc codec.Encoding) (string, error) {
	p := Pipeline[[]byte, []byte, []byte, string]{
		Name: "rescue_v3",
		Parse: func(b []byte) ([]byte, error) {
			return b, nil
		},
		Invoke:     a.bytes.HashBytes,
		DigestSize: DigestBytes,
		Encode: func(d []byte) (string, error) {
			return codec.EncodeText(d, enc)
		},
		Log: a.getLogger(),
	}
	return p.Run(values)
}

var (
	defaultOnce    sync.Once
	defaultAdapter *Adapter
)

// Default returns the shared adapter built from DefaultConfig.
func Default() *Adapter {
	defaultOnce.Do(func() {
		a, err := NewAdapter(nil)
		if err != nil {
			// DefaultConfig always validates
			panic(err)
		}
		defaultAdapter = a
	})
	return defaultAdapter
}

// RescueV1 calls RescueV1 on the default adapter.
func RescueV1(values string) ([]byte, error) {
	return Default().RescueV1(values)
}

// RescueV2 calls RescueV2 on the default adapter.
func RescueV2(values string) ([DigestElements]uint64, error) {
	return Default().RescueV2(values)
}

// RescueV3 calls RescueV3 on the default adapter.
func RescueV3(values []byte) (string, error) {
	return Default().RescueV3(values)
}

// RescueV3Raw calls RescueV3Raw on the default adapter.
func RescueV3Raw(values []byte) (string, error) {
	return Default().RescueV3Raw(values)
}
