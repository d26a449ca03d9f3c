package shamir

import (
	"io"
	"math/big"

	"github.com/vitalvas/quorum/basex"
)

// Codec converts field elements to and from text.
type Codec interface {
	Encode(n *big.Int) (string, error)
	Decode(text string) (*big.Int, error)
}

// Engine splits and recovers secrets over Z/pZ for a fixed prime p.
// It holds no mutable state and is safe for concurrent use as long as its
// RandomSource is.
type Engine struct {
	field  field
	random RandomSource
	codec  Codec
}

// Option configures an Engine.
type Option func(*Engine)

// WithRandom sets the source of polynomial coefficients.
func WithRandom(random RandomSource) Option {
	return func(e *Engine) {
		e.random = random
	}
}

// WithReader draws polynomial coefficients from r.
func WithReader(r io.Reader) Option {
	return func(e *Engine) {
		e.random = ReaderRandom(r)
	}
}

// WithCodec sets the codec used by FormatShare and ParseShare.
func WithCodec(codec Codec) Option {
	return func(e *Engine) {
		e.codec = codec
	}
}

// New creates an engine over the prime field of the given modulus. Defaults
// are crypto/rand for coefficients and base 62 for share text.
func New(prime *big.Int, opts ...Option) (*Engine, error) {
	if prime == nil || prime.Cmp(one) <= 0 || !prime.ProbablyPrime(0) {
		return nil, ErrInvalidPrime
	}

	e := &Engine{
		field:  newField(prime),
		random: CryptoRandom(),
		codec:  basex.Base62(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.random == nil {
		e.random = CryptoRandom()
	}
	if e.codec == nil {
		e.codec = basex.Base62()
	}

	return e, nil
}

// Prime returns a copy of the modulus.
func (e *Engine) Prime() *big.Int {
	return new(big.Int).Set(e.field.p)
}

// Split divides secret into count shares, any threshold of which recover it.
// It returns a copy of the secret together with shares for x = 1..count.
//
// Every call draws a fresh random polynomial. With threshold 1 the polynomial
// is the constant secret and every share value equals the secret; that is
// plain replication, not secret sharing.
func (e *Engine) Split(secret *big.Int, threshold, count int) (*big.Int, []Share, error) {
	if threshold < 1 {
		return nil, nil, ErrInvalidThreshold
	}

	if count < 1 {
		return nil, nil, ErrInvalidShareCount
	}

	if threshold > count {
		return nil, nil, ErrThresholdExceedsShareCount
	}

	if big.NewInt(int64(count)).Cmp(e.field.p) >= 0 {
		return nil, nil, ErrTooManyShares
	}

	if !e.field.contains(secret) {
		return nil, nil, ErrSecretOutOfRange
	}

	poly, err := newRandomPolynomial(e.field, e.random, secret, threshold)
	if err != nil {
		return nil, nil, err
	}
	defer poly.wipe()

	shares := make([]Share, count)
	for i := range count {
		// x-coordinates are 1, 2, 3, ... (never 0)
		x := i + 1
		shares[i] = Share{
			X: x,
			Y: poly.evaluate(big.NewInt(int64(x))),
		}
	}

	return new(big.Int).Set(secret), shares, nil
}

// Recover interpolates the shares at x = 0 and returns the constant term.
//
// Any set of at least the original threshold shares yields the secret.
// Fewer shares still yield a field element, unrelated to the secret; the
// threshold is not recorded in shares, so this is not detected.
func (e *Engine) Recover(shares []Share) (*big.Int, error) {
	if len(shares) < 2 {
		return nil, ErrInsufficientShares
	}

	xs, ys, err := e.points(shares)
	if err != nil {
		return nil, err
	}

	return lagrangeInterpolate(e.field, xs, ys, big.NewInt(0))
}

// points validates shares and returns their coordinates as field elements.
func (e *Engine) points(shares []Share) ([]*big.Int, []*big.Int, error) {
	xs := make([]*big.Int, len(shares))
	ys := make([]*big.Int, len(shares))
	seen := make(map[string]struct{}, len(shares))

	for i, share := range shares {
		if share.X < 1 {
			return nil, nil, ErrInvalidShareX
		}

		if !e.field.contains(share.Y) {
			return nil, nil, ErrShareOutOfRange
		}

		x := e.field.reduce(big.NewInt(int64(share.X)))
		if x.Sign() == 0 {
			return nil, nil, ErrInvalidShareX
		}

		key := x.String()
		if _, ok := seen[key]; ok {
			return nil, nil, ErrDuplicateShareIndex
		}
		seen[key] = struct{}{}

		xs[i] = x
		ys[i] = share.Y
	}

	return xs, ys, nil
}
