// Package modarith implements modular exponentiation and modular
// multiplicative inverse on top of the bigint package, per the ModArith
// component: reduction modulo m, right-to-left binary modular
// exponentiation, and inverse via the extended Euclidean algorithm.
package modarith

import "github.com/btc-keyforge/keyforge/internal/bigint"

// Exp computes base^exp mod m using right-to-left binary exponentiation: the
// exponent is consumed one bit at a time via repeated single-bit right
// shifts, squaring a running base and reducing modulo m after every square
// and every conditional multiply.
func Exp(base, exp, m bigint.Int) (bigint.Int, error) {
	result, err := bigint.Mod(bigint.FromI32(1), m)
	if err != nil {
		return bigint.Int{}, err
	}
	b, err := bigint.Mod(base, m)
	if err != nil {
		return bigint.Int{}, err
	}
	e := exp.Clone()

	for !e.IsZero() {
		if e.Bit(0) == 1 {
			result, err = bigint.Mod(bigint.Mul(result, b), m)
			if err != nil {
				return bigint.Int{}, err
			}
		}
		b, err = bigint.Mod(bigint.Mul(b, b), m)
		if err != nil {
			return bigint.Int{}, err
		}
		e = shiftRightOne(e)
	}
	return result, nil
}

// shiftRightOne divides e by 2 via the BigInt division contract, used to
// consume the exponent one bit at a time regardless of e's byte alignment.
func shiftRightOne(e bigint.Int) bigint.Int {
	q, _, err := bigint.DivMod(e, bigint.FromI32(2))
	if err != nil {
		// e is always non-negative here and 2 is never zero.
		panic(err)
	}
	return q
}

// Inverse computes the modular multiplicative inverse of a modulo m using
// the extended Euclidean algorithm over signed BigInts. If the final
// remainder of the Euclidean chain is greater than 1, a has no inverse
// modulo m and the zero value is returned; otherwise the accumulated
// Bezout coefficient is reduced to the least non-negative representative
// by adding m when negative.
func Inverse(a, m bigint.Int) (bigint.Int, error) {
	old_r, r := a.Clone(), m.Clone()
	old_s, s := bigint.FromI32(1), bigint.FromI32(0)

	for !r.IsZero() {
		q, rem, err := bigint.DivMod(old_r, r)
		if err != nil {
			return bigint.Int{}, err
		}
		old_r, r = r, rem
		old_s, s = s, bigint.Sub(old_s, bigint.Mul(q, s))
	}

	if bigint.Cmp(old_r.Abs(), bigint.FromI32(1)) > 0 {
		// No inverse exists.
		return bigint.Zero(), nil
	}

	inv, err := bigint.Mod(old_s, m)
	if err != nil {
		return bigint.Int{}, err
	}
	return inv, nil
}
