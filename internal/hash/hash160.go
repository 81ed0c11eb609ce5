package hash

// Hash160 computes RIPEMD160(SHA256(data)), the digest Bitcoin uses to
// shrink a compressed public key down to a 20-byte address payload.
func Hash160(data []byte) [20]byte {
	sha := SHA256(data)
	return RIPEMD160(sha[:])
}
