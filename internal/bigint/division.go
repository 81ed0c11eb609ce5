package bigint

// DivMod computes a/b and a%b with truncating-toward-zero quotient sign and
// a remainder that always carries the sign of the dividend, per the table:
//
//	+a / +b -> +q +r
//	+a / -b -> -q +r
//	-a / +b -> -q -r
//	-a / -b -> +q -r
//
// Division by zero returns ErrDivideByZero.
func DivMod(a, b Int) (q, r Int, err error) {
	if b.isZeroMag() {
		return Int{}, Int{}, ErrDivideByZero
	}
	qm, rm := divModMag(a.Mag, b.Mag)
	q = normalize(a.Neg != b.Neg, qm)
	r = normalize(a.Neg, rm)
	return q, r, nil
}

// Mod returns the least non-negative residue of a modulo m, i.e. a value in
// [0, |m|). Unlike DivMod's remainder, this never carries the sign of a.
func Mod(a, m Int) (Int, error) {
	if m.isZeroMag() {
		return Int{}, ErrDivideByZero
	}
	_, r, err := DivMod(a, m)
	if err != nil {
		return Int{}, err
	}
	if r.Sign() < 0 {
		r = Add(r, m.Abs())
	}
	return r, nil
}

// divModMag divides two non-negative little-endian magnitudes, returning
// quotient and remainder magnitudes (both trimmed).
func divModMag(u, v []byte) (q, r []byte) {
	switch cmpMag(u, v) {
	case -1:
		return []byte{0}, trim(append([]byte(nil), u...))
	case 0:
		return []byte{1}, []byte{0}
	}
	if len(trim(v)) == 1 {
		return shortDivMag(u, v[0])
	}
	return knuthDivMag(u, v)
}

// mulSmallMag multiplies a little-endian magnitude by a single digit d in
// [0,255], returning a (possibly one byte longer) trimmed magnitude.
func mulSmallMag(mag []byte, d uint16) []byte {
	out := make([]byte, len(mag)+1)
	var carry uint32
	for i, b := range mag {
		p := uint32(b)*uint32(d) + carry
		out[i] = byte(p)
		carry = p >> 8
	}
	out[len(mag)] = byte(carry)
	return trim(out)
}

// shortDivMag divides a magnitude by a single non-zero byte.
func shortDivMag(u []byte, d byte) (q []byte, r []byte) {
	q = make([]byte, len(u))
	var rem uint16
	for i := len(u) - 1; i >= 0; i-- {
		cur := rem<<8 | uint16(u[i])
		q[i] = byte(cur / uint16(d))
		rem = cur % uint16(d)
	}
	return trim(q), []byte{byte(rem)}
}

// knuthDivMag implements Knuth's Algorithm D (TAOCP Vol 2, 4.3.1) over
// base-256 digits: normalize both operands by multiplying through by a
// small factor d that makes the divisor's leading digit occupy the top
// half of its range, estimate each quotient digit from a two-digit window,
// correct the estimate down by at most two, multiply-and-subtract, add
// back on the rare over-subtraction, then denormalize the remainder by
// dividing back out by d.
func knuthDivMag(u, v []byte) (q []byte, r []byte) {
	const base = 256
	n := len(v)

	d := uint16(base / (uint16(v[n-1]) + 1))

	un := mulSmallMag(u, d)
	vn := mulSmallMag(v, d)
	// v's leading digit cannot overflow into a new byte: d was chosen so
	// that v[n-1]*d < base, so vn has exactly n digits after trimming.
	if len(vn) < n {
		padded := make([]byte, n)
		copy(padded, vn)
		vn = padded
	} else if len(vn) > n {
		vn = vn[:n]
	}

	m := len(un) - n
	if m < 0 {
		m = 0
	}
	// un big-endian with one extra leading digit for the multiply carry.
	unBE := make([]byte, m+n+1)
	for i, b := range un {
		unBE[len(unBE)-1-i] = b
	}
	vnBE := make([]byte, n)
	for i, b := range vn {
		vnBE[n-1-i] = b
	}

	qBE := make([]byte, m+1)

	for j := 0; j <= m; j++ {
		num := uint32(unBE[j])*base + uint32(unBE[j+1])
		qhat := num / uint32(vnBE[0])
		rhat := num % uint32(vnBE[0])
		for qhat >= base || (n >= 2 && qhat*uint32(vnBE[1]) > rhat*base+digitAt(unBE, j+2)) {
			qhat--
			rhat += uint32(vnBE[0])
			if rhat >= base {
				break
			}
		}

		// Multiply qhat*v and subtract from the current window of u.
		var borrow int64
		var carry int64
		for i := n; i >= 1; i-- {
			p := int64(qhat)*int64(vnBE[i-1]) + carry
			carry = p / base
			sub := int64(unBE[j+i]) - p%base - borrow
			if sub < 0 {
				sub += base
				borrow = 1
			} else {
				borrow = 0
			}
			unBE[j+i] = byte(sub)
		}
		sub := int64(unBE[j]) - carry - borrow
		if sub < 0 {
			// qhat was one too large: add v back once and decrement qhat.
			qhat--
			var addCarry int64
			for i := n; i >= 1; i-- {
				s := int64(unBE[j+i]) + int64(vnBE[i-1]) + addCarry
				unBE[j+i] = byte(s % base)
				addCarry = s / base
			}
			sub += addCarry + base
		}
		unBE[j] = byte(sub % base)
		qBE[j] = byte(qhat)
	}

	// Remainder is the low n digits of unBE, denormalized by dividing by d.
	remBE := unBE[m+1:]
	remLE := make([]byte, n)
	for i, b := range remBE {
		remLE[n-1-i] = b
	}
	remLE = trim(remLE)
	if d > 1 {
		remLE, _ = shortDivMag(remLE, byte(d))
	}

	qLE := make([]byte, len(qBE))
	for i, b := range qBE {
		qLE[len(qBE)-1-i] = b
	}
	return trim(qLE), trim(remLE)
}

// digitAt returns unBE[i] if in range, else 0 (the window past the end of
// the normalized dividend is implicitly zero-padded).
func digitAt(unBE []byte, i int) uint32 {
	if i < 0 || i >= len(unBE) {
		return 0
	}
	return uint32(unBE[i])
}
