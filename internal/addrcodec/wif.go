package addrcodec

import "errors"

const versionWIFMainnet = 0x80

var ErrMalformedWIF = errors.New("addrcodec: malformed WIF payload")

// EncodeWIF renders a 32-byte private key in Wallet Import Format:
// version(0x80) || key || [0x01 if compressed] || 4-byte checksum,
// Base58Check-encoded.
func EncodeWIF(privateKey []byte, compressed bool) (string, error) {
	if len(privateKey) != 32 {
		return "", ErrMalformedWIF
	}
	payload := append([]byte{versionWIFMainnet}, privateKey...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return base58CheckEncode(payload), nil
}

// DecodeWIF reverses EncodeWIF, tolerating both the compressed (34-byte)
// and uncompressed (33-byte) payload shapes; Compressed reports which form
// was present.
func DecodeWIF(wif string) (privateKey []byte, compressed bool, err error) {
	payload, err := base58CheckDecode(wif)
	if err != nil {
		return nil, false, err
	}
	if len(payload) == 0 || payload[0] != versionWIFMainnet {
		return nil, false, ErrMalformedWIF
	}
	body := payload[1:]

	switch len(body) {
	case 33:
		if body[32] != 0x01 {
			return nil, false, ErrMalformedWIF
		}
		return append([]byte(nil), body[:32]...), true, nil
	case 32:
		return append([]byte(nil), body...), false, nil
	default:
		return nil, false, ErrMalformedWIF
	}
}
