package addrcodec

import (
	"encoding/hex"
	"math/rand"
	"testing"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/btcsuite/btcd/chaincfg"

	"github.com/btc-keyforge/keyforge/internal/hash"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func TestEncodeP2PKHFixedVector(t *testing.T) {
	pub := mustHex("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	got := EncodeP2PKH(pub)
	want := "1BgGZ9tcN4rm9KBzDn7KprQz87SZ26SAMH"
	if got != want {
		t.Fatalf("EncodeP2PKH = %s, want %s", got, want)
	}
}

func TestEncodeP2WPKHFixedVector(t *testing.T) {
	pub := mustHex("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	got, err := EncodeP2WPKH(pub, "bc")
	if err != nil {
		t.Fatalf("EncodeP2WPKH: %v", err)
	}
	want := "bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4"
	if got != want {
		t.Fatalf("EncodeP2WPKH = %s, want %s", got, want)
	}
}

func TestP2PKHAgainstBtcutil(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 20; i++ {
		pub := randomCompressedPubKeyLike(rng)
		got := EncodeP2PKH(pub)

		h160 := hash160Of(pub)
		addr, err := btcutil.NewAddressPubKeyHash(h160, &chaincfg.MainNetParams)
		if err != nil {
			t.Fatalf("btcutil NewAddressPubKeyHash: %v", err)
		}
		if got != addr.EncodeAddress() {
			t.Fatalf("EncodeP2PKH mismatch: got %s want %s", got, addr.EncodeAddress())
		}
	}
}

func TestP2PKHRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(12))
	for i := 0; i < 20; i++ {
		pub := randomCompressedPubKeyLike(rng)
		addr := EncodeP2PKH(pub)

		got, err := DecodeP2PKH(addr)
		if err != nil {
			t.Fatalf("DecodeP2PKH: %v", err)
		}
		want := hash160Of(pub)
		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Fatalf("DecodeP2PKH mismatch: got %x want %x", got, want)
		}
	}
}

func TestP2WPKHAgainstBtcutilBech32(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 20; i++ {
		pub := randomCompressedPubKeyLike(rng)
		got, err := EncodeP2WPKH(pub, "bc")
		if err != nil {
			t.Fatalf("EncodeP2WPKH: %v", err)
		}

		h160 := hash160Of(pub)
		converted, err := bech32.ConvertBits(h160, 8, 5, true)
		if err != nil {
			t.Fatalf("bech32.ConvertBits: %v", err)
		}
		data := append([]byte{0x00}, converted...)
		want, err := bech32.Encode("bc", data)
		if err != nil {
			t.Fatalf("bech32.Encode: %v", err)
		}
		if got != want {
			t.Fatalf("EncodeP2WPKH mismatch: got %s want %s", got, want)
		}
	}
}

func TestP2WPKHRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(14))
	for i := 0; i < 20; i++ {
		pub := randomCompressedPubKeyLike(rng)
		addr, err := EncodeP2WPKH(pub, "bc")
		if err != nil {
			t.Fatalf("EncodeP2WPKH: %v", err)
		}
		got, err := DecodeP2WPKH(addr, "bc")
		if err != nil {
			t.Fatalf("DecodeP2WPKH: %v", err)
		}
		want := hash160Of(pub)
		if hex.EncodeToString(got[:]) != hex.EncodeToString(want) {
			t.Fatalf("DecodeP2WPKH mismatch: got %x want %x", got, want)
		}
	}
}

func TestWIFRoundTripCompressed(t *testing.T) {
	rng := rand.New(rand.NewSource(15))
	for i := 0; i < 20; i++ {
		key := make([]byte, 32)
		rng.Read(key)

		wif, err := EncodeWIF(key, true)
		if err != nil {
			t.Fatalf("EncodeWIF: %v", err)
		}
		gotKey, compressed, err := DecodeWIF(wif)
		if err != nil {
			t.Fatalf("DecodeWIF: %v", err)
		}
		if !compressed {
			t.Fatal("expected compressed flag")
		}
		if hex.EncodeToString(gotKey) != hex.EncodeToString(key) {
			t.Fatalf("DecodeWIF mismatch: got %x want %x", gotKey, key)
		}
	}
}

func TestWIFRoundTripUncompressed(t *testing.T) {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	wif, err := EncodeWIF(key, false)
	if err != nil {
		t.Fatalf("EncodeWIF: %v", err)
	}
	gotKey, compressed, err := DecodeWIF(wif)
	if err != nil {
		t.Fatalf("DecodeWIF: %v", err)
	}
	if compressed {
		t.Fatal("expected uncompressed flag")
	}
	if hex.EncodeToString(gotKey) != hex.EncodeToString(key) {
		t.Fatalf("DecodeWIF mismatch: got %x want %x", gotKey, key)
	}
}

func TestDecodeP2PKHBadChecksum(t *testing.T) {
	pub := mustHex("0279BE667EF9DCBBAC55A06295CE870B07029BFCDB2DCE28D959F2815B16F81798")
	addr := EncodeP2PKH(pub)
	corrupted := addr[:len(addr)-1] + "1"
	if corrupted == addr {
		corrupted = addr[:len(addr)-1] + "2"
	}
	if _, err := DecodeP2PKH(corrupted); err == nil {
		t.Fatal("expected checksum error for corrupted address")
	}
}

func randomCompressedPubKeyLike(rng *rand.Rand) []byte {
	buf := make([]byte, 33)
	rng.Read(buf)
	buf[0] = 0x02 + byte(rng.Intn(2))
	return buf
}

func hash160Of(pub []byte) []byte {
	h := hash.Hash160(pub)
	return h[:]
}
