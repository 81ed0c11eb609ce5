package bigint

// addMag adds two little-endian magnitudes byte-wise with carry, aligning
// the shorter operand by treating missing bytes as zero.
func addMag(a, b []byte) []byte {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	out := make([]byte, n+1)
	var carry uint16
	for i := 0; i < n; i++ {
		var av, bv byte
		if i < len(a) {
			av = a[i]
		}
		if i < len(b) {
			bv = b[i]
		}
		sum := uint16(av) + uint16(bv) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	out[n] = byte(carry)
	return trim(out)
}

// subMag subtracts b from a (little-endian magnitudes), assuming |a| >= |b|.
func subMag(a, b []byte) []byte {
	out := make([]byte, len(a))
	var borrow int16
	for i := range a {
		var bv byte
		if i < len(b) {
			bv = b[i]
		}
		d := int16(a[i]) - int16(bv) - borrow
		if d < 0 {
			d += 256
			borrow = 1
		} else {
			borrow = 0
		}
		out[i] = byte(d)
	}
	return trim(out)
}

// Add returns a+b, applying the usual signed addition/subtraction rules on
// top of the unsigned magnitude primitives above.
func Add(a, b Int) Int {
	if a.Neg == b.Neg {
		return normalize(a.Neg, addMag(a.Mag, b.Mag))
	}
	switch cmpMag(a.Mag, b.Mag) {
	case 0:
		return Zero()
	case 1:
		return normalize(a.Neg, subMag(a.Mag, b.Mag))
	default:
		return normalize(b.Neg, subMag(b.Mag, a.Mag))
	}
}

// Sub returns a-b.
func Sub(a, b Int) Int {
	return Add(a, b.Negate())
}

// Mul returns a*b via schoolbook O(n*m) multiplication on the magnitudes.
func Mul(a, b Int) Int {
	if a.isZeroMag() || b.isZeroMag() {
		return Zero()
	}
	out := make([]byte, len(a.Mag)+len(b.Mag))
	for i, av := range a.Mag {
		if av == 0 {
			continue
		}
		var carry uint32
		for j, bv := range b.Mag {
			prod := uint32(av)*uint32(bv) + uint32(out[i+j]) + carry
			out[i+j] = byte(prod)
			carry = prod >> 8
		}
		k := i + len(b.Mag)
		for carry > 0 {
			sum := uint32(out[k]) + carry
			out[k] = byte(sum)
			carry = sum >> 8
			k++
		}
	}
	return normalize(a.Neg != b.Neg, out)
}
