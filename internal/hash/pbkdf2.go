package hash

import "encoding/binary"

// PBKDF2HMACSHA512 derives a dkLen-byte key from password and salt using
// PBKDF2 with HMAC-SHA-512 as the pseudorandom function (RFC 8018), the
// construction BIP-39 uses to turn a mnemonic into a 64-byte seed.
func PBKDF2HMACSHA512(password, salt []byte, iterations, dkLen int) []byte {
	const hLen = 64
	numBlocks := (dkLen + hLen - 1) / hLen

	dk := make([]byte, 0, numBlocks*hLen)
	for blockIndex := 1; blockIndex <= numBlocks; blockIndex++ {
		dk = append(dk, pbkdf2Block(password, salt, iterations, uint32(blockIndex))...)
	}
	return dk[:dkLen]
}

func pbkdf2Block(password, salt []byte, iterations int, blockIndex uint32) []byte {
	var idx [4]byte
	binary.BigEndian.PutUint32(idx[:], blockIndex)

	u := HMACSHA512(password, append(append([]byte(nil), salt...), idx[:]...))
	t := u
	for i := 1; i < iterations; i++ {
		u = HMACSHA512(password, u[:])
		for j := range t {
			t[j] ^= u[j]
		}
	}
	return t[:]
}
