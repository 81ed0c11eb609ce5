package modarith

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/btc-keyforge/keyforge/internal/bigint"
)

func TestExpAgainstMathBig(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		base := randomPositive(rng, 16)
		exp := randomPositive(rng, 4)
		mod := randomPositive(rng, 16)
		if mod.IsZero() {
			continue
		}

		got, err := Exp(base, exp, mod)
		if err != nil {
			t.Fatalf("Exp error: %v", err)
		}

		want := new(big.Int).Exp(toBig(base), toBig(exp), toBig(mod))
		if toBig(got).Cmp(want) != 0 {
			t.Fatalf("Exp(%v,%v,%v) = %v, want %v", base, exp, mod, toBig(got), want)
		}
	}
}

func TestInverseAgainstMathBig(t *testing.T) {
	p, _ := bigint.FromStringRadix(
		"115792089237316195423570985008687907853269984665640564039457584007908834671663",
		10, "0123456789")

	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 50; i++ {
		a := randomPositive(rng, 32)
		got, err := Inverse(a, p)
		if err != nil {
			t.Fatalf("Inverse error: %v", err)
		}
		if got.IsZero() {
			continue // a happened to be a multiple of p
		}
		// a * inv mod p must be 1.
		prod, err := bigint.Mod(bigint.Mul(a, got), p)
		if err != nil {
			t.Fatalf("Mod error: %v", err)
		}
		if bigint.Cmp(prod, bigint.FromI32(1)) != 0 {
			t.Fatalf("Inverse(%v,p) * a mod p = %v, want 1", a, prod)
		}

		want := new(big.Int).ModInverse(toBig(a), toBig(p))
		if want != nil && toBig(got).Cmp(want) != 0 {
			t.Fatalf("Inverse(%v,p) = %v, want %v", a, toBig(got), want)
		}
	}
}

func TestInverseNoInverse(t *testing.T) {
	// gcd(4,8) = 4 != 1, so 4 has no inverse mod 8.
	got, err := Inverse(bigint.FromI32(4), bigint.FromI32(8))
	if err != nil {
		t.Fatalf("Inverse error: %v", err)
	}
	if !got.IsZero() {
		t.Fatalf("Inverse(4,8) = %v, want 0 (no inverse)", got)
	}
}

func randomPositive(rng *rand.Rand, maxBytes int) bigint.Int {
	n := rng.Intn(maxBytes) + 1
	mag := make([]byte, n)
	rng.Read(mag)
	mag[n-1] |= 1 // bias away from zero
	v, _ := bigint.FromStringRadix(bigintHex(mag), 16, "0123456789abcdef")
	return v
}

func bigintHex(mag []byte) string {
	const hex = "0123456789abcdef"
	out := make([]byte, 0, len(mag)*2)
	for i := len(mag) - 1; i >= 0; i-- {
		out = append(out, hex[mag[i]>>4], hex[mag[i]&0xf])
	}
	return string(out)
}

func toBig(a bigint.Int) *big.Int {
	v := new(big.Int).SetBytes(a.BytesBigEndian())
	if a.Neg {
		v.Neg(v)
	}
	return v
}
