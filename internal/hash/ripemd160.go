package hash

import "encoding/binary"

var ripemdInit = [5]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476, 0xc3d2e1f0}

// left-line and right-line additive constants, one per round of 16 steps.
var ripemdKL = [5]uint32{0, 0x5a827999, 0x6ed9eba1, 0x8f1bbcdc, 0xa953fd4e}
var ripemdKR = [5]uint32{0x50a28be6, 0x5c4dd124, 0x6d703ef3, 0x7a6d76e9, 0}

// message-word selection order for each line, one permutation per round.
var ripemdRL = [5][16]int{
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
	{7, 4, 13, 1, 10, 6, 15, 3, 12, 0, 9, 5, 2, 14, 11, 8},
	{3, 10, 14, 4, 9, 15, 8, 1, 2, 7, 0, 6, 13, 11, 5, 12},
	{1, 9, 11, 10, 0, 8, 12, 4, 13, 3, 7, 15, 14, 5, 6, 2},
	{4, 0, 5, 9, 7, 12, 2, 10, 14, 1, 3, 8, 11, 6, 15, 13},
}
var ripemdRR = [5][16]int{
	{5, 14, 7, 0, 9, 2, 11, 4, 13, 6, 15, 8, 1, 10, 3, 12},
	{6, 11, 3, 7, 0, 13, 5, 10, 14, 15, 8, 12, 4, 9, 1, 2},
	{15, 5, 1, 3, 7, 14, 6, 9, 11, 8, 12, 2, 10, 0, 4, 13},
	{8, 6, 4, 1, 3, 11, 15, 0, 5, 12, 2, 13, 9, 7, 10, 14},
	{12, 15, 10, 4, 1, 5, 8, 7, 6, 2, 13, 14, 0, 3, 9, 11},
}

// per-round rotate-left amounts.
var ripemdSL = [5][16]uint{
	{11, 14, 15, 12, 5, 8, 7, 9, 11, 13, 14, 15, 6, 7, 9, 8},
	{7, 6, 8, 13, 11, 9, 7, 15, 7, 12, 15, 9, 11, 7, 13, 12},
	{11, 13, 6, 7, 14, 9, 13, 15, 14, 8, 13, 6, 5, 12, 7, 5},
	{11, 12, 14, 15, 14, 15, 9, 8, 9, 14, 5, 6, 8, 6, 5, 12},
	{9, 15, 5, 11, 6, 8, 13, 12, 5, 12, 13, 14, 11, 8, 5, 6},
}
var ripemdSR = [5][16]uint{
	{8, 9, 9, 11, 13, 15, 15, 5, 7, 7, 8, 11, 14, 14, 12, 6},
	{9, 13, 15, 7, 12, 8, 9, 11, 7, 7, 12, 7, 6, 15, 13, 11},
	{9, 7, 15, 11, 8, 6, 6, 14, 12, 13, 5, 14, 13, 13, 7, 5},
	{15, 5, 8, 11, 14, 14, 6, 14, 6, 9, 12, 9, 12, 5, 15, 8},
	{8, 5, 12, 9, 12, 5, 14, 6, 8, 13, 6, 5, 15, 13, 11, 11},
}

func rol32(x uint32, n uint) uint32 { return x<<n | x>>(32-n) }

// pad64LE pads msg the same way as pad64 (0x80 then zero bytes to 56 mod
// 64) but appends the 64-bit bit length little-endian, the MD4/MD5/
// RIPEMD-160 convention — distinct from the SHA family's big-endian length.
func pad64LE(msg []byte) [][]byte {
	bitLen := uint64(len(msg)) * 8
	padded := append([]byte(nil), msg...)
	padded = append(padded, 0x80)
	for len(padded)%64 != 56 {
		padded = append(padded, 0)
	}
	var lenBytes [8]byte
	binary.LittleEndian.PutUint64(lenBytes[:], bitLen)
	padded = append(padded, lenBytes[:]...)

	blocks := make([][]byte, len(padded)/64)
	for i := range blocks {
		blocks[i] = padded[i*64 : (i+1)*64]
	}
	return blocks
}

// the five RIPEMD round functions, selected by round index 0..4. The left
// line runs f[0..4] in order, the right line runs f[4..0].
var ripemdF = [5]func(x, y, z uint32) uint32{
	func(x, y, z uint32) uint32 { return x ^ y ^ z },
	func(x, y, z uint32) uint32 { return (x & y) | (^x & z) },
	func(x, y, z uint32) uint32 { return (x | ^y) ^ z },
	func(x, y, z uint32) uint32 { return (x & z) | (y &^ z) },
	func(x, y, z uint32) uint32 { return x ^ (y | ^z) },
}

// RIPEMD160 computes the RIPEMD-160 digest of msg.
func RIPEMD160(msg []byte) [20]byte {
	h := ripemdInit
	for _, block := range pad64LE(msg) {
		ripemdBlock(&h, block)
	}
	var out [20]byte
	for i, v := range h {
		binary.LittleEndian.PutUint32(out[i*4:], v)
	}
	return out
}

func ripemdBlock(h *[5]uint32, block []byte) {
	var x [16]uint32
	for i := 0; i < 16; i++ {
		x[i] = binary.LittleEndian.Uint32(block[i*4:])
	}

	al, bl, cl, dl, el := h[0], h[1], h[2], h[3], h[4]
	ar, br, cr, dr, er := h[0], h[1], h[2], h[3], h[4]

	for round := 0; round < 5; round++ {
		fl := ripemdF[round]
		fr := ripemdF[4-round]
		kl := ripemdKL[round]
		kr := ripemdKR[round]

		for step := 0; step < 16; step++ {
			t := rol32(al+fl(bl, cl, dl)+x[ripemdRL[round][step]]+kl, ripemdSL[round][step]) + el
			al, el, dl, cl, bl = el, dl, rol32(cl, 10), bl, t

			t = rol32(ar+fr(br, cr, dr)+x[ripemdRR[round][step]]+kr, ripemdSR[round][step]) + er
			ar, er, dr, cr, br = er, dr, rol32(cr, 10), br, t
		}
	}

	t := h[1] + cl + dr
	h[1] = h[2] + dl + er
	h[2] = h[3] + el + ar
	h[3] = h[4] + al + br
	h[4] = h[0] + bl + cr
	h[0] = t
}
