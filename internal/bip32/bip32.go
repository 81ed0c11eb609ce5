// Package bip32 implements hierarchical-deterministic key derivation per
// BIP-32: master key generation from a seed, normal and hardened child
// derivation, public-only child derivation, and xprv/xpub serialization.
package bip32

import (
	"encoding/binary"
	"errors"

	"github.com/btc-keyforge/keyforge/internal/basecodec"
	"github.com/btc-keyforge/keyforge/internal/bigint"
	"github.com/btc-keyforge/keyforge/internal/hash"
	"github.com/btc-keyforge/keyforge/internal/secp256k1"
)

const (
	HardenedOffset = uint32(1) << 31

	VersionMainnetPrivate = uint32(0x0488ADE4)
	VersionMainnetPublic  = uint32(0x0488B21E)
)

var (
	ErrInvalidPrivateKey  = errors.New("bip32: derived private key is zero or >= curve order")
	ErrHardenedFromPublic = errors.New("bip32: cannot derive a hardened child from a public-only key")
)

// Key is one node of an HD wallet tree. Private is nil for public-only
// (xpub) keys. Public is always the 33-byte compressed point.
type Key struct {
	Private           *bigint.Int
	Public            [33]byte
	ChainCode         [32]byte
	Depth             byte
	ParentFingerprint [4]byte
	ChildIndex        uint32
}

// NewMasterKey derives the master extended key from a BIP-39 seed via
// HMAC-SHA512("Bitcoin seed", seed).
func NewMasterKey(seed []byte) (*Key, error) {
	i := hash.HMACSHA512([]byte("Bitcoin seed"), seed)
	il, ir := i[:32], i[32:]

	priv := bigint.FromBytesBigEndian(il)
	if !validPrivateScalar(priv) {
		return nil, ErrInvalidPrivateKey
	}

	pub := compressedPubKey(priv)

	k := &Key{Private: &priv, Public: pub, Depth: 0, ChildIndex: 0}
	copy(k.ChainCode[:], ir)
	return k, nil
}

// NewChildKey derives the child at index from k, choosing normal or
// hardened derivation based on whether index >= HardenedOffset. For a
// public-only k, a normal index yields a public-only child (as
// NewPublicChildKey does) and a hardened index yields ErrHardenedFromPublic.
func (k *Key) NewChildKey(index uint32) (*Key, error) {
	if k.Private == nil {
		if index >= HardenedOffset {
			return nil, ErrHardenedFromPublic
		}
		return k.NewPublicChildKey(index)
	}

	var data []byte
	if index >= HardenedOffset {
		data = append([]byte{0x00}, k.Private.BytesBigEndianPadded(32)...)
	} else {
		data = append([]byte(nil), k.Public[:]...)
	}
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], index)
	data = append(data, idxBytes[:]...)

	i := hash.HMACSHA512(k.ChainCode[:], data)
	il, ir := i[:32], i[32:]

	ilInt := bigint.FromBytesBigEndian(il)
	if !validPrivateScalar(ilInt) {
		return nil, ErrInvalidPrivateKey
	}

	childPriv, err := bigint.Mod(bigint.Add(ilInt, *k.Private), secp256k1.N)
	if err != nil {
		return nil, err
	}
	if childPriv.IsZero() {
		return nil, ErrInvalidPrivateKey
	}

	pub := compressedPubKey(childPriv)
	child := &Key{
		Private:    &childPriv,
		Public:     pub,
		Depth:      k.Depth + 1,
		ChildIndex: index,
	}
	copy(child.ChainCode[:], ir)
	child.ParentFingerprint = k.Fingerprint()
	return child, nil
}

// NewPublicChildKey derives a non-hardened public-only child, usable even
// when k itself holds no private key.
func (k *Key) NewPublicChildKey(index uint32) (*Key, error) {
	if index >= HardenedOffset {
		return nil, ErrHardenedFromPublic
	}

	data := append([]byte(nil), k.Public[:]...)
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], index)
	data = append(data, idxBytes[:]...)

	i := hash.HMACSHA512(k.ChainCode[:], data)
	il, ir := i[:32], i[32:]

	ilInt := bigint.FromBytesBigEndian(il)
	if !validPrivateScalar(ilInt) {
		return nil, ErrInvalidPrivateKey
	}

	parentPoint, err := secp256k1.Decompress(k.Public)
	if err != nil {
		return nil, err
	}
	tweak := secp256k1.ScalarMul(ilInt, secp256k1.G)
	childPoint := secp256k1.Add(parentPoint, tweak)
	if childPoint.IsInfinity() {
		return nil, ErrInvalidPrivateKey
	}

	child := &Key{
		Public:     secp256k1.Compress(childPoint),
		Depth:      k.Depth + 1,
		ChildIndex: index,
	}
	copy(child.ChainCode[:], ir)
	child.ParentFingerprint = k.Fingerprint()
	return child, nil
}

// Fingerprint returns the first 4 bytes of Hash160(public key), identifying
// k as a parent of its children.
func (k *Key) Fingerprint() [4]byte {
	h := hash.Hash160(k.Public[:])
	var fp [4]byte
	copy(fp[:], h[:4])
	return fp
}

// SerializeExtendedPrivate renders k as a Base58Check xprv string. k must
// hold a private key.
func (k *Key) SerializeExtendedPrivate() (string, error) {
	if k.Private == nil {
		return "", errors.New("bip32: key has no private component")
	}
	payload := k.payload(VersionMainnetPrivate, append([]byte{0x00}, k.Private.BytesBigEndianPadded(32)...))
	return base58Check(payload)
}

// SerializeExtendedPublic renders k as a Base58Check xpub string.
func (k *Key) SerializeExtendedPublic() (string, error) {
	payload := k.payload(VersionMainnetPublic, k.Public[:])
	return base58Check(payload)
}

func (k *Key) payload(version uint32, keyData []byte) []byte {
	buf := make([]byte, 0, 78)
	var versionBytes [4]byte
	binary.BigEndian.PutUint32(versionBytes[:], version)
	buf = append(buf, versionBytes[:]...)
	buf = append(buf, k.Depth)
	buf = append(buf, k.ParentFingerprint[:]...)
	var idxBytes [4]byte
	binary.BigEndian.PutUint32(idxBytes[:], k.ChildIndex)
	buf = append(buf, idxBytes[:]...)
	buf = append(buf, k.ChainCode[:]...)
	buf = append(buf, keyData...)
	return buf
}

func base58Check(payload []byte) (string, error) {
	first := hash.SHA256(payload)
	second := hash.SHA256(first[:])
	full := append(append([]byte(nil), payload...), second[:4]...)
	return basecodec.EncodeBytes(full, 58)
}

func compressedPubKey(priv bigint.Int) [33]byte {
	point := secp256k1.ScalarMul(priv, secp256k1.G)
	return secp256k1.Compress(point)
}

// validPrivateScalar reports whether v is a valid BIP-32 private key: not
// zero and strictly less than the curve order n.
func validPrivateScalar(v bigint.Int) bool {
	if v.IsZero() {
		return false
	}
	return bigint.Cmp(v, secp256k1.N) < 0
}
