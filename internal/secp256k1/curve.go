// Package secp256k1 implements affine point arithmetic on the Bitcoin curve
// y^2 = x^3 + 7 (mod p) on top of the bigint and modarith packages: point
// doubling, point addition, scalar multiplication by double-and-add, and
// y-recovery from a compressed point encoding.
package secp256k1

import (
	"github.com/btc-keyforge/keyforge/internal/bigint"
	"github.com/btc-keyforge/keyforge/internal/modarith"
)

func mustDecimal(s string) bigint.Int {
	v, err := bigint.FromStringRadix(s, 10, "0123456789")
	if err != nil {
		panic(err)
	}
	return v
}

// Curve parameters, built once at package initialization from their decimal
// forms rather than reconstructed on every call.
var (
	P  = mustDecimal("115792089237316195423570985008687907853269984665640564039457584007908834671663")
	N  = mustDecimal("115792089237316195423570985008687907852837564279074904382605163141518161494337")
	Gx = mustDecimal("55066263022277343669578718895168534326250603453777594175500187360389116729240")
	Gy = mustDecimal("32670510020758816978083085130507043184471273380659243275938904335757337482424")

	A = bigint.Zero()
	B = bigint.FromI32(7)
)

// G is the curve's base point.
var G = Point{X: Gx, Y: Gy}

// Point is an affine point on the curve. The point at infinity is
// represented as (0, 0); the curve has no affine point with both
// coordinates zero since 0^3+7 is not a quadratic residue mod p.
type Point struct {
	X, Y bigint.Int
}

// IsInfinity reports whether p is the point-at-infinity sentinel.
func (p Point) IsInfinity() bool {
	return p.X.IsZero() && p.Y.IsZero()
}

var infinity = Point{X: bigint.Zero(), Y: bigint.Zero()}

func modP(a bigint.Int) bigint.Int {
	r, err := bigint.Mod(a, P)
	if err != nil {
		panic(err)
	}
	return r
}

func invP(a bigint.Int) bigint.Int {
	inv, err := modarith.Inverse(a, P)
	if err != nil {
		panic(err)
	}
	return inv
}

// Double returns 2*p. If p.Y is zero the tangent is vertical and the
// result is the point at infinity.
func Double(p Point) Point {
	if p.IsInfinity() || p.Y.IsZero() {
		return infinity
	}

	two := bigint.FromI32(2)
	three := bigint.FromI32(3)

	num := modP(bigint.Mul(three, bigint.Mul(p.X, p.X)))
	den := invP(modP(bigint.Mul(two, p.Y)))
	lambda := modP(bigint.Mul(num, den))

	xPrime := modP(bigint.Sub(bigint.Mul(lambda, lambda), bigint.Mul(two, p.X)))
	yPrime := modP(bigint.Sub(bigint.Mul(lambda, bigint.Sub(p.X, xPrime)), p.Y))

	return Point{X: xPrime, Y: yPrime}
}

// Add returns p+q.
func Add(p, q Point) Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}
	if bigint.Cmp(p.X, q.X) == 0 {
		negQy := modP(bigint.Sub(P, q.Y))
		if bigint.Cmp(p.Y, negQy) == 0 {
			return infinity
		}
		if bigint.Cmp(p.Y, q.Y) == 0 {
			return Double(p)
		}
	}

	num := modP(bigint.Sub(p.Y, q.Y))
	den := invP(modP(bigint.Sub(p.X, q.X)))
	lambda := modP(bigint.Mul(num, den))

	xPrime := modP(bigint.Sub(bigint.Sub(bigint.Mul(lambda, lambda), p.X), q.X))
	yPrime := modP(bigint.Sub(bigint.Mul(lambda, bigint.Sub(p.X, xPrime)), p.Y))

	return Point{X: xPrime, Y: yPrime}
}

// ScalarMul computes m*base via left-to-right double-and-add over the bits
// of m's magnitude, most-significant bit first.
func ScalarMul(m bigint.Int, base Point) Point {
	if m.IsZero() || base.IsInfinity() {
		return infinity
	}

	result := infinity
	for i := m.BitLen() - 1; i >= 0; i-- {
		result = Double(result)
		if m.Bit(i) == 1 {
			result = Add(result, base)
		}
	}
	return result
}

// Compress encodes p as the standard 33-byte SEC1 compressed point
// (0x02|0x03 prefix selecting the parity of y, followed by the 32-byte
// big-endian x coordinate).
func Compress(p Point) [33]byte {
	var out [33]byte
	if p.Y.Bit(0) == 0 {
		out[0] = 0x02
	} else {
		out[0] = 0x03
	}
	xBytes := p.X.BytesBigEndian()
	copy(out[33-len(xBytes):], xBytes)
	return out
}

// Decompress recovers the full point from a 33-byte SEC1 compressed
// encoding. y^2 = x^3+7 mod p, then y = (y^2)^((p+1)/4) mod p, valid
// because p ≡ 3 (mod 4); the root whose parity mismatches the prefix is
// replaced by p-y.
func Decompress(data [33]byte) (Point, error) {
	prefix := data[0]
	if prefix != 0x02 && prefix != 0x03 {
		return Point{}, ErrInvalidCompressedPoint
	}

	x := bigint.FromBytesBigEndian(data[1:])
	ySq := modP(bigint.Add(bigint.Mul(bigint.Mul(x, x), x), B))

	exp, err := exponentForSqrt()
	if err != nil {
		return Point{}, err
	}
	y, err := modarith.Exp(ySq, exp, P)
	if err != nil {
		return Point{}, err
	}

	wantOdd := prefix == 0x03
	isOdd := y.Bit(0) == 1
	if wantOdd != isOdd {
		y = modP(bigint.Sub(P, y))
	}

	point := Point{X: x, Y: y}
	if !OnCurve(point) {
		return Point{}, ErrInvalidCompressedPoint
	}
	return point, nil
}

// exponentForSqrt returns (p+1)/4.
func exponentForSqrt() (bigint.Int, error) {
	one := bigint.FromI32(1)
	four := bigint.FromI32(4)
	q, _, err := bigint.DivMod(bigint.Add(P, one), four)
	if err != nil {
		return bigint.Int{}, err
	}
	return q, nil
}

// OnCurve reports whether p satisfies y^2 = x^3 + 7 (mod p).
func OnCurve(p Point) bool {
	if p.IsInfinity() {
		return true
	}
	lhs := modP(bigint.Mul(p.Y, p.Y))
	rhs := modP(bigint.Add(bigint.Mul(bigint.Mul(p.X, p.X), p.X), B))
	return bigint.Cmp(lhs, rhs) == 0
}
