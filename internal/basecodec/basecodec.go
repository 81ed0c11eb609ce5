// Package basecodec implements the generic radix-N text/integer converter
// for N in [2, 64], layered over the bigint package's from_str_radix and
// to_str_radix primitives. It supplies the named alphabets the wallet
// toolkit's encodings are built from: hex, Bech32, Bitcoin Base58, standard
// Base64, and a generic fallback alphabet.
package basecodec

import (
	"errors"

	"github.com/btc-keyforge/keyforge/internal/bigint"
)

const (
	AlphabetHex     = "0123456789abcdef"
	AlphabetBech32  = "qpzry9x8gf2tvdw0s3jn54khce6mua7l"
	AlphabetBase58  = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"
	AlphabetBase64  = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
	AlphabetGeneric = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz_"
)

// ErrUnsupportedBase is returned when base is outside [2, 64].
var ErrUnsupportedBase = errors.New("basecodec: base must be in [2, 64]")

// AlphabetForBase returns the toolkit's canonical alphabet for a given base,
// matching the named alphabets the wallet's encodings rely on: 16 is hex,
// 32 is Bech32, 58 is Bitcoin Base58, 64 is standard Base64. Any other base
// in [2, 64] uses the generic alphabet truncated to that many digits.
func AlphabetForBase(base int) (string, error) {
	if base < 2 || base > 64 {
		return "", ErrUnsupportedBase
	}
	switch base {
	case 16:
		return AlphabetHex, nil
	case 32:
		return AlphabetBech32, nil
	case 58:
		return AlphabetBase58, nil
	case 64:
		return AlphabetBase64, nil
	default:
		return AlphabetGeneric[:base], nil
	}
}

// Decode parses s as a signed base-N integer using the supplied alphabet.
func Decode(s string, base int, alphabet string) (bigint.Int, error) {
	return bigint.FromStringRadix(s, base, alphabet)
}

// Encode renders a as a signed base-N string using the supplied alphabet.
func Encode(a bigint.Int, base int, alphabet string) (string, error) {
	return bigint.ToStringRadix(a, base, alphabet)
}

// EncodeBytes treats data as a big-endian non-negative magnitude and
// renders it in base-N text, using the toolkit's canonical alphabet for
// that base. Leading zero bytes in data do not produce leading zero
// digits in the output; callers that need Base58Check's leading-'1'
// convention for zero bytes handle that themselves (addrcodec does).
func EncodeBytes(data []byte, base int) (string, error) {
	alphabet, err := AlphabetForBase(base)
	if err != nil {
		return "", err
	}
	v := bigint.FromBytesBigEndian(data)
	return Encode(v, base, alphabet)
}

// DecodeBytes parses a base-N string (toolkit's canonical alphabet for that
// base) back into its big-endian byte magnitude.
func DecodeBytes(s string, base int) ([]byte, error) {
	alphabet, err := AlphabetForBase(base)
	if err != nil {
		return nil, err
	}
	v, err := Decode(s, base, alphabet)
	if err != nil {
		return nil, err
	}
	return v.BytesBigEndian(), nil
}
