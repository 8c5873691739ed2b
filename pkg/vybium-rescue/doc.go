// Package vybiumrescue exposes the Rescue sponge hash through a narrow
// string and byte oriented interface.
//
// Three entry points cover the supported representations:
//
//	digest, err := vybiumrescue.RescueV1("1,2,3,4")                 // 4 x u128 -> 32 bytes
//	words, err := vybiumrescue.RescueV2("1,2,3,4,5,6,7,8")          // 8 x u64 -> 4 x u64
//	text, err := vybiumrescue.RescueV3([]byte("any bytes"))          // bytes -> hex text
//
// Inputs are split on ',' with no trimming; the empty string has zero
// values. A wrong value count, an unparsable value, or a digest of the
// wrong size is reported as an *AdapterError and never as a partial result:
//
//	if errors.Is(err, vybiumrescue.ErrArity) {
//		// caller sent the wrong number of values
//	}
//
// # Byte layout
//
// RescueV1 serializes each 128-bit value as 16 little-endian bytes, in input
// order, and hashes the resulting 64-byte buffer. Digests are 4 Goldilocks
// field elements serialized as 8 little-endian bytes each.
//
// # Text output
//
// RescueV3 renders the digest with an explicit encoding (hex by default,
// base64 via Config.Encoding). RescueV3Raw keeps the legacy behaviour of
// returning the raw digest bytes as a string and fails with ErrText when
// they are not valid UTF-8.
//
// # Collaborators
//
// The sponge is reached through ByteHasher and ElementHasher, so an Adapter
// can be built over any implementation with NewAdapter and WithByteHasher /
// WithElementHasher. The default is RescueHasher.
//
// InitPanicHook installs process-wide panic diagnostics once; it is safe to
// call any number of times.
package vybiumrescue
