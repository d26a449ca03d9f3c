// Package shamir implements Shamir threshold secret sharing over the prime
// field Z/pZ.
//
// An Engine is bound to one prime for its lifetime. Split hides a secret in
// the constant term of a random polynomial of degree threshold-1 and hands out
// its values at x = 1..n; Recover evaluates the Lagrange interpolation of any
// two or more shares at x = 0. Shares produced under different primes must
// not be mixed: values outside [0, p) are rejected, other mixes give garbage.
//
// The package does not log and holds no global state. Coefficients come from
// crypto/rand unless another RandomSource is injected.
package shamir
