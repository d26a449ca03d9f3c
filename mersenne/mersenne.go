// Package mersenne provides the catalog of Mersenne primes used as field moduli.
package mersenne

import (
	"errors"
	"math/big"
)

// DefaultIndex selects 2^521 - 1.
const DefaultIndex = 12

// ErrIndexOutOfRange is returned when the catalog index is outside the exponent table.
var ErrIndexOutOfRange = errors.New("mersenne: index out of range")

// exponents lists e such that 2^e - 1 is prime.
var exponents = [...]uint{2, 3, 5, 7, 13, 17, 19, 31, 61, 89, 107, 127, 521, 607, 1279, 2203, 2281, 3217, 4253}

// Len returns the number of primes in the catalog.
func Len() int {
	return len(exponents)
}

// Exponent returns the exponent e stored at index.
func Exponent(index int) (uint, error) {
	if index < 0 || index >= len(exponents) {
		return 0, ErrIndexOutOfRange
	}

	return exponents[index], nil
}

// Prime returns 2^e - 1 for the exponent stored at index.
// Every call returns a fresh value owned by the caller.
func Prime(index int) (*big.Int, error) {
	e, err := Exponent(index)
	if err != nil {
		return nil, err
	}

	p := new(big.Int).Lsh(big.NewInt(1), e)
	return p.Sub(p, big.NewInt(1)), nil
}

// Default returns the prime at DefaultIndex.
func Default() *big.Int {
	p, _ := Prime(DefaultIndex)
	return p
}
