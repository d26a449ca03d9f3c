package shamir

import (
	"math/big"
)

var one = big.NewInt(1)

// field is Z/pZ. Every method returns a fresh value in [0, p).
type field struct {
	p *big.Int
}

func newField(p *big.Int) field {
	return field{p: new(big.Int).Set(p)}
}

// reduce maps any integer, negative included, into [0, p).
func (f field) reduce(a *big.Int) *big.Int {
	return new(big.Int).Mod(a, f.p)
}

func (f field) add(a, b *big.Int) *big.Int {
	result := new(big.Int).Add(a, b)
	return result.Mod(result, f.p)
}

func (f field) sub(a, b *big.Int) *big.Int {
	result := new(big.Int).Sub(a, b)
	return result.Mod(result, f.p)
}

func (f field) mul(a, b *big.Int) *big.Int {
	result := new(big.Int).Mul(a, b)
	return result.Mod(result, f.p)
}

func (f field) neg(a *big.Int) *big.Int {
	result := new(big.Int).Neg(a)
	return result.Mod(result, f.p)
}

// inverse returns a^-1 mod p from the Bezout coefficient of the extended
// Euclidean algorithm on (a, p). The coefficient may be negative and is
// reduced before it is returned.
func (f field) inverse(a *big.Int) (*big.Int, error) {
	r := f.reduce(a)
	if r.Sign() == 0 {
		return nil, ErrNotInvertible
	}

	x := new(big.Int)
	if g := new(big.Int).GCD(x, nil, r, f.p); g.Cmp(one) != 0 {
		return nil, ErrNotInvertible
	}

	return x.Mod(x, f.p), nil
}

// div computes a * b^-1 mod p.
func (f field) div(a, b *big.Int) (*big.Int, error) {
	inv, err := f.inverse(b)
	if err != nil {
		return nil, err
	}
	return f.mul(a, inv), nil
}

// contains reports whether a is a canonical field element.
func (f field) contains(a *big.Int) bool {
	return a != nil && a.Sign() >= 0 && a.Cmp(f.p) < 0
}
