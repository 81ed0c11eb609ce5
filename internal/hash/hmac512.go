package hash

const sha512BlockSize = 128

// HMACSHA512 computes HMAC-SHA-512(key, msg) per FIPS 198-1, built on this
// package's from-scratch SHA512 rather than crypto/hmac.
func HMACSHA512(key, msg []byte) [64]byte {
	if len(key) > sha512BlockSize {
		sum := SHA512(key)
		key = sum[:]
	}
	padded := make([]byte, sha512BlockSize)
	copy(padded, key)

	ipad := make([]byte, sha512BlockSize)
	opad := make([]byte, sha512BlockSize)
	for i := 0; i < sha512BlockSize; i++ {
		ipad[i] = padded[i] ^ 0x36
		opad[i] = padded[i] ^ 0x5c
	}

	inner := SHA512(append(ipad, msg...))
	outer := SHA512(append(opad, inner[:]...))
	return outer
}
