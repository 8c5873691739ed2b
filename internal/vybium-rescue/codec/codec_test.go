package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	assert.Nil(t, Split(""))
	assert.Equal(t, []string{"1"}, Split("1"))
	assert.Equal(t, []string{"1", "2", ""}, Split("1,2,"))
	assert.Equal(t, []string{"", ""}, Split(","))
}

func TestParseUint128s(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		vals, err := ParseUint128s("1,2,3,4", 4)
		require.NoError(t, err)
		require.Len(t, vals, 4)
		for i, v := range vals {
			assert.Equal(t, uint64(i+1), v.Uint64())
		}
	})

	t.Run("MaxValue", func(t *testing.T) {
		maxVal := "340282366920938463463374607431768211455"
		vals, err := ParseUint128s(maxVal+",0,0,0", 4)
		require.NoError(t, err)
		assert.Equal(t, 128, vals[0].BitLen())
	})

	arityCases := []struct {
		name  string
		input string
		got   int
	}{
		{"Empty", "", 0},
		{"Three", "1,2,3", 3},
		{"Five", "1,2,3,4,5", 5},
	}
	for _, tc := range arityCases {
		t.Run("Arity"+tc.name, func(t *testing.T) {
			_, err := ParseUint128s(tc.input, 4)
			require.ErrorIs(t, err, ErrArity)
			var ae *ArityError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, 4, ae.Want)
			assert.Equal(t, tc.got, ae.Got)
		})
	}

	tokenCases := []struct {
		name  string
		input string
		index int
	}{
		{"Overflow", "340282366920938463463374607431768211456,0,0,0", 0},
		{"Negative", "1,-2,3,4", 1},
		{"Plus", "1,2,+3,4", 2},
		{"Hex", "1,2,3,0x4", 3},
		{"Space", "1, 2,3,4", 1},
		{"EmptyToken", "1,,3,4", 1},
		{"Letters", "abc,2,3,4", 0},
		{"Huge", "1157920892373161954235709850086879078532699846656405640394575840079131296399360,0,0,0", 0},
	}
	for _, tc := range tokenCases {
		t.Run("Token"+tc.name, func(t *testing.T) {
			_, err := ParseUint128s(tc.input, 4)
			require.ErrorIs(t, err, ErrToken)
			assert.NotErrorIs(t, err, ErrArity)
			var te *TokenError
			require.True(t, errors.As(err, &te))
			assert.Equal(t, tc.index, te.Index)
		})
	}
}

func TestParseUint64s(t *testing.T) {
	vals, err := ParseUint64s("0,1,2,3,4,5,6,18446744073709551615", 8)
	require.NoError(t, err)
	assert.Equal(t, []uint64{0, 1, 2, 3, 4, 5, 6, 18446744073709551615}, vals)

	_, err = ParseUint64s("0,1,2,3,4,5,6,18446744073709551616", 8)
	assert.ErrorIs(t, err, ErrToken)

	_, err = ParseUint64s("1,2,3,4", 8)
	assert.ErrorIs(t, err, ErrArity)
}

func TestPackUint128sLE(t *testing.T) {
	vals, err := ParseUint128s("1,2,3,4", 4)
	require.NoError(t, err)

	buf := PackUint128sLE(vals)
	require.Len(t, buf, 64)
	for i := 0; i < 4; i++ {
		chunk := buf[i*Uint128Bytes : (i+1)*Uint128Bytes]
		assert.Equal(t, byte(i+1), chunk[0])
		for _, b := range chunk[1:] {
			assert.Zero(t, b)
		}
	}

	vals, err = ParseUint128s("340282366920938463463374607431768211455,18446744073709551616,0,0", 4)
	require.NoError(t, err)
	buf = PackUint128sLE(vals)
	for _, b := range buf[:16] {
		assert.Equal(t, byte(0xff), b)
	}
	assert.Equal(t, byte(1), buf[16+8])
}

func TestEncodeText(t *testing.T) {
	digest := []byte{0xde, 0xad, 0xbe, 0xef}

	s, err := EncodeText(digest, Hex)
	require.NoError(t, err)
	assert.Equal(t, "deadbeef", s)

	s, err = EncodeText(digest, Base64)
	require.NoError(t, err)
	assert.Equal(t, "3q2+7w==", s)

	_, err = EncodeText(digest, Raw)
	assert.ErrorIs(t, err, ErrInvalidText)

	s, err = EncodeText([]byte("ok"), Raw)
	require.NoError(t, err)
	assert.Equal(t, "ok", s)

	for _, enc := range []Encoding{Hex, Base64} {
		s, err := EncodeText(digest, enc)
		require.NoError(t, err)
		back, err := DecodeText(s, enc)
		require.NoError(t, err)
		assert.Equal(t, digest, back)
	}

	_, err = EncodeText(digest, "rot13")
	assert.Error(t, err)
}

func TestParseEncoding(t *testing.T) {
	for _, name := range []string{"hex", "base64", "raw"} {
		enc, err := ParseEncoding(name)
		require.NoError(t, err)
		assert.Equal(t, Encoding(name), enc)
	}
	_, err := ParseEncoding("HEX")
	assert.Error(t, err)
}
