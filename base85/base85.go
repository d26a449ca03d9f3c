// Package base85 implements the compact byte codec: a big integer becomes its
// minimal big-endian byte string, which is then written with the RFC 1924
// base85 alphabet. Partial trailing groups are not padded, so n bytes always
// encode to n + ceil(n/4) symbols.
package base85

import (
	"errors"
	"fmt"
	"math/big"
)

const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz!#$%&()*+-;<=>?@^_`{|}~"

var (
	// ErrInvalidSymbol is returned when decoded text holds a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("base85: invalid symbol")

	// ErrOverflow is returned when a five symbol group does not fit in 32 bits.
	ErrOverflow = errors.New("base85: group overflow")

	// ErrNegative is returned when encoding a nil or negative integer.
	ErrNegative = errors.New("base85: value must be non-negative")
)

var decodeMap [256]int16

func init() {
	for i := range decodeMap {
		decodeMap[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		decodeMap[alphabet[i]] = int16(i)
	}
}

// EncodedLen returns the length of the encoding of n source bytes.
func EncodedLen(n int) int {
	return n + (n+3)/4
}

// EncodeToString returns the unpadded base85 encoding of src.
func EncodeToString(src []byte) string {
	padding := (4 - len(src)%4) % 4
	dst := make([]byte, 0, (len(src)+padding)/4*5)

	var group [4]byte
	for i := 0; i < len(src); i += 4 {
		group = [4]byte{}
		copy(group[:], src[i:])

		v := uint32(group[0])<<24 | uint32(group[1])<<16 | uint32(group[2])<<8 | uint32(group[3])

		var out [5]byte
		for j := 4; j >= 0; j-- {
			out[j] = alphabet[v%85]
			v /= 85
		}
		dst = append(dst, out[:]...)
	}

	return string(dst[:len(dst)-padding])
}

// DecodeString returns the bytes represented by the base85 text s.
func DecodeString(s string) ([]byte, error) {
	padding := (5 - len(s)%5) % 5
	dst := make([]byte, 0, (len(s)+padding)/5*4)

	for i := 0; i < len(s); i += 5 {
		var acc uint64
		for j := i; j < i+5; j++ {
			// missing symbols of the last group read as the highest digit
			d := int16(84)
			if j < len(s) {
				d = decodeMap[s[j]]
				if d < 0 {
					return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, s[j], j)
				}
			}
			acc = acc*85 + uint64(d)
		}

		if acc > 0xffffffff {
			return nil, fmt.Errorf("%w: group at position %d", ErrOverflow, i)
		}

		dst = append(dst, byte(acc>>24), byte(acc>>16), byte(acc>>8), byte(acc))
	}

	return dst[:len(dst)-padding], nil
}

// Codec adapts the base85 byte codec to big integers. The zero value is ready to use.
type Codec struct{}

// Encode writes n as its minimal big-endian bytes in base85. Zero has no bytes
// and encodes as the empty string.
func (Codec) Encode(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", ErrNegative
	}

	return EncodeToString(n.Bytes()), nil
}

// Decode reads base85 text as a big-endian unsigned integer.
func (Codec) Decode(text string) (*big.Int, error) {
	raw, err := DecodeString(text)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetBytes(raw), nil
}
