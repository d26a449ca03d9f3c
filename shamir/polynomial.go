package shamir

import (
	"math/big"
)

// polynomial represents a polynomial over the prime field.
// coefficients[0] is the constant term (the secret).
type polynomial struct {
	field        field
	coefficients []*big.Int
}

// newPolynomial creates a new polynomial with given coefficients.
func newPolynomial(f field, coefficients []*big.Int) *polynomial {
	return &polynomial{field: f, coefficients: coefficients}
}

// newRandomPolynomial creates a random polynomial of degree (threshold-1)
// with the given secret as the constant term.
func newRandomPolynomial(f field, random RandomSource, secret *big.Int, threshold int) (*polynomial, error) {
	if threshold < 1 {
		return nil, ErrInvalidThreshold
	}

	coefficients := make([]*big.Int, threshold)
	coefficients[0] = new(big.Int).Set(secret)

	for i := 1; i < threshold; i++ {
		coef, err := random.Int(f.p)
		if err != nil {
			return nil, err
		}
		coefficients[i] = coef
	}

	return newPolynomial(f, coefficients), nil
}

// evaluate evaluates the polynomial at point x using Horner's method,
// reducing after every step.
func (p *polynomial) evaluate(x *big.Int) *big.Int {
	if len(p.coefficients) == 0 {
		return big.NewInt(0)
	}

	// ((a_n*x + a_{n-1})*x + ... + a_1)*x + a_0
	result := p.field.reduce(p.coefficients[len(p.coefficients)-1])

	for i := len(p.coefficients) - 2; i >= 0; i-- {
		result = p.field.mul(result, x)
		result = p.field.add(result, p.coefficients[i])
	}

	return result
}

// wipe drops the coefficients so the secret is not reachable through p.
func (p *polynomial) wipe() {
	for _, c := range p.coefficients {
		c.SetInt64(0)
	}
	p.coefficients = nil
}

// lagrangeInterpolate evaluates at x the unique polynomial of degree
// len(xs)-1 through the points (xs[i], ys[i]). The xs must be distinct
// modulo p.
func lagrangeInterpolate(f field, xs, ys []*big.Int, x *big.Int) (*big.Int, error) {
	if len(xs) != len(ys) || len(xs) == 0 {
		return nil, ErrInsufficientShares
	}

	result := big.NewInt(0)

	for i := range xs {
		numerator := big.NewInt(1)
		denominator := big.NewInt(1)

		for j := range xs {
			if i == j {
				continue
			}

			// numerator *= (x - x_j)
			numerator = f.mul(numerator, f.sub(x, xs[j]))

			// denominator *= (x_i - x_j)
			denominator = f.mul(denominator, f.sub(xs[i], xs[j]))
		}

		basis, err := f.div(numerator, denominator)
		if err != nil {
			return nil, err
		}

		// result += y_i * L_i(x)
		result = f.add(result, f.mul(ys[i], basis))
	}

	return result, nil
}
