// Package addrcodec implements the payment address and key-export
// encodings built on top of basecodec and the hash package: P2PKH
// (Base58Check), Bech32 P2WPKH, and WIF.
package addrcodec

import (
	"errors"

	"github.com/btc-keyforge/keyforge/internal/basecodec"
	"github.com/btc-keyforge/keyforge/internal/hash"
)

const versionP2PKHMainnet = 0x00

var ErrBadChecksum = errors.New("addrcodec: base58check checksum mismatch")

// EncodeP2PKH derives a legacy P2PKH address from a 33-byte compressed
// public key: version 0x00 || hash160, Base58Check-encoded, with leading
// zero bytes rendered as leading '1' characters.
func EncodeP2PKH(compressedPubKey []byte) string {
	h160 := hash.Hash160(compressedPubKey)
	payload := append([]byte{versionP2PKHMainnet}, h160[:]...)
	return base58CheckEncode(payload)
}

// base58CheckEncode appends a 4-byte double-SHA256 checksum to payload and
// renders the result in Bitcoin Base58, mapping each leading zero byte to a
// literal '1' character (basecodec's generic codec has no concept of
// byte-aligned leading zeros, since it operates on the integer value).
func base58CheckEncode(payload []byte) string {
	first := hash.SHA256(payload)
	second := hash.SHA256(first[:])
	full := append(append([]byte(nil), payload...), second[:4]...)

	zeros := 0
	for _, b := range full {
		if b != 0 {
			break
		}
		zeros++
	}

	body := ""
	if zeros < len(full) {
		encoded, err := basecodec.EncodeBytes(full[zeros:], 58)
		if err != nil {
			// full[zeros:] is non-empty and base 58 is always valid here.
			panic(err)
		}
		body = encoded
	}

	prefix := make([]byte, zeros)
	for i := range prefix {
		prefix[i] = '1'
	}
	return string(prefix) + body
}

// base58CheckDecode reverses base58CheckEncode, validating the trailing
// checksum.
func base58CheckDecode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	var body []byte
	if zeros < len(s) {
		decoded, err := basecodec.DecodeBytes(s[zeros:], 58)
		if err != nil {
			return nil, err
		}
		body = decoded
	}

	full := append(make([]byte, zeros), body...)
	if len(full) < 4 {
		return nil, ErrBadChecksum
	}
	payload, checksum := full[:len(full)-4], full[len(full)-4:]

	first := hash.SHA256(payload)
	second := hash.SHA256(first[:])
	for i := 0; i < 4; i++ {
		if checksum[i] != second[i] {
			return nil, ErrBadChecksum
		}
	}
	return payload, nil
}

// DecodeP2PKH reverses EncodeP2PKH, returning the 20-byte hash160 payload.
func DecodeP2PKH(addr string) ([20]byte, error) {
	var out [20]byte
	payload, err := base58CheckDecode(addr)
	if err != nil {
		return out, err
	}
	if len(payload) != 21 || payload[0] != versionP2PKHMainnet {
		return out, ErrBadChecksum
	}
	copy(out[:], payload[1:])
	return out, nil
}
