package secp256k1

import "errors"

// ErrInvalidCompressedPoint is returned when a 33-byte buffer does not
// decode to a valid on-curve point.
var ErrInvalidCompressedPoint = errors.New("secp256k1: invalid compressed point")
