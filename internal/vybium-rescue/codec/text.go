package codec

import (
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"unicode/utf8"
)

// Encoding selects how a binary digest is rendered as text.
type Encoding string

const (
	// Hex is lowercase hexadecimal
	Hex Encoding = "hex"

	// Base64 is standard padded base64
	Base64 Encoding = "base64"

	// Raw reinterprets the digest bytes as a string and only succeeds when
	// they happen to be valid UTF-8
	Raw Encoding = "raw"
)

// ErrInvalidText is returned when raw digest bytes are not valid UTF-8.
var ErrInvalidText = errors.New("digest bytes are not valid text")

// ParseEncoding validates an encoding name.
func ParseEncoding(name string) (Encoding, error) {
	switch e := Encoding(name); e {
	case Hex, Base64, Raw:
		return e, nil
	default:
		return "", fmt.Errorf("unknown encoding %q, want hex, base64 or raw", name)
	}
}

// EncodeText renders b as text.
func EncodeText(b []byte, enc Encoding) (string, error) {
	switch enc {
	case Hex:
		return hex.EncodeToString(b), nil
	case Base64:
		return base64.StdEncoding.EncodeToString(b), nil
	case Raw:
		if !utf8.Valid(b) {
			return "", ErrInvalidText
		}
		return string(b), nil
	default:
		return "", fmt.Errorf("unknown encoding %q", enc)
	}
}

// DecodeText reverses EncodeText.
func DecodeText(s string, enc Encoding) ([]byte, error) {
	switch enc {
	case Hex:
		return hex.DecodeString(s)
	case Base64:
		return base64.StdEncoding.DecodeString(s)
	case Raw:
		return []byte(s), nil
	default:
		return nil, fmt.Errorf("unknown encoding %q", enc)
	}
}
