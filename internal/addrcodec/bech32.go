package addrcodec

import (
	"errors"
	"strings"

	"github.com/btc-keyforge/keyforge/internal/basecodec"
	"github.com/btc-keyforge/keyforge/internal/hash"
)

var (
	ErrBadBech32Checksum = errors.New("addrcodec: bech32 polymod checksum mismatch")
	ErrBadBech32Format   = errors.New("addrcodec: malformed bech32 string")
)

const bech32Const = 1

var bech32Generators = [5]uint32{0x3b6a57b2, 0x26508e6d, 0x1ea119fa, 0x3d4233dd, 0x2a1462b3}

// polymod runs the BIP-173 checksum accumulator over a sequence of 5-bit
// values, starting from the accumulator state 1.
func polymod(values []byte) uint32 {
	chk := uint32(1)
	for _, v := range values {
		b := chk >> 25
		chk = (chk&0x1ffffff)<<5 ^ uint32(v)
		for i := 0; i < 5; i++ {
			if (b>>uint(i))&1 == 1 {
				chk ^= bech32Generators[i]
			}
		}
	}
	return chk
}

// expandHRP computes the BIP-173 "expanded HRP": each character's high 3
// bits, then a zero separator, then each character's low 5 bits.
func expandHRP(hrp string) []byte {
	out := make([]byte, 0, len(hrp)*2+1)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]>>5)
	}
	out = append(out, 0)
	for i := 0; i < len(hrp); i++ {
		out = append(out, hrp[i]&0x1f)
	}
	return out
}

// convertBits repacks a slice of fromBits-wide groups into toBits-wide
// groups, big-endian, padding the final group with zero bits when pad is
// true.
func convertBits(data []byte, fromBits, toBits uint, pad bool) ([]byte, error) {
	acc := uint32(0)
	bits := uint(0)
	maxVal := uint32(1)<<toBits - 1
	var out []byte

	for _, b := range data {
		if uint32(b)>>fromBits != 0 {
			return nil, ErrBadBech32Format
		}
		acc = acc<<fromBits | uint32(b)
		bits += fromBits
		for bits >= toBits {
			bits -= toBits
			out = append(out, byte((acc>>bits)&maxVal))
		}
	}

	if pad {
		if bits > 0 {
			out = append(out, byte((acc<<(toBits-bits))&maxVal))
		}
	} else if bits >= fromBits || ((acc<<(toBits-bits))&maxVal) != 0 {
		return nil, ErrBadBech32Format
	}
	return out, nil
}

// EncodeP2WPKH derives a native SegWit P2WPKH address (witness version 0)
// from a 33-byte compressed public key, using hrp as the Bech32 human
// readable part ("bc" for mainnet, "tb" for testnet).
func EncodeP2WPKH(compressedPubKey []byte, hrp string) (string, error) {
	h160 := hash.Hash160(compressedPubKey)
	program, err := convertBits(h160[:], 8, 5, true)
	if err != nil {
		return "", err
	}
	return encodeBech32(hrp, 0, program)
}

// encodeBech32 encodes a witness version and 5-bit program values as
// hrp || "1" || alphabet digits || 6-digit checksum.
func encodeBech32(hrp string, witnessVersion byte, program []byte) (string, error) {
	values := append([]byte{witnessVersion}, program...)

	checksumInput := append(append([]byte(nil), expandHRP(hrp)...), values...)
	checksumInput = append(checksumInput, 0, 0, 0, 0, 0, 0)
	mod := polymod(checksumInput) ^ bech32Const

	checksum := make([]byte, 6)
	for i := 0; i < 6; i++ {
		checksum[i] = byte((mod >> uint(5*(5-i))) & 0x1f)
	}

	alphabet := basecodec.AlphabetBech32
	var sb strings.Builder
	sb.WriteString(hrp)
	sb.WriteByte('1')
	for _, v := range values {
		sb.WriteByte(alphabet[v])
	}
	for _, v := range checksum {
		sb.WriteByte(alphabet[v])
	}
	return sb.String(), nil
}

// DecodeP2WPKH reverses EncodeP2WPKH, validating the checksum and the
// expected hrp, and returns the 20-byte witness program.
func DecodeP2WPKH(addr, hrp string) ([20]byte, error) {
	var out [20]byte

	sep := strings.LastIndexByte(addr, '1')
	if sep < 1 || sep+7 > len(addr) {
		return out, ErrBadBech32Format
	}
	gotHRP := addr[:sep]
	if gotHRP != hrp {
		return out, ErrBadBech32Format
	}

	digitPart := addr[sep+1:]
	values := make([]byte, len(digitPart))
	for i := 0; i < len(digitPart); i++ {
		idx := strings.IndexByte(basecodec.AlphabetBech32, digitPart[i])
		if idx < 0 {
			return out, ErrBadBech32Format
		}
		values[i] = byte(idx)
	}

	checksumInput := append(append([]byte(nil), expandHRP(hrp)...), values...)
	if polymod(checksumInput) != bech32Const {
		return out, ErrBadBech32Checksum
	}

	witnessVersion := values[0]
	if witnessVersion != 0 {
		return out, ErrBadBech32Format
	}
	program, err := convertBits(values[1:len(values)-6], 5, 8, false)
	if err != nil {
		return out, err
	}
	if len(program) != 20 {
		return out, ErrBadBech32Format
	}
	copy(out[:], program)
	return out, nil
}
