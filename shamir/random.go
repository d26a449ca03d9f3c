package shamir

import (
	"crypto/rand"
	"io"
	"math/big"
)

// RandomSource draws integers uniformly from [0, max).
// Implementations used by a shared Engine must be safe for concurrent use.
type RandomSource interface {
	Int(max *big.Int) (*big.Int, error)
}

type readerSource struct {
	r io.Reader
}

func (s readerSource) Int(max *big.Int) (*big.Int, error) {
	return rand.Int(s.r, max)
}

// CryptoRandom returns the source backed by crypto/rand.Reader.
func CryptoRandom() RandomSource {
	return readerSource{r: rand.Reader}
}

// ReaderRandom returns a source reading entropy from r with rejection
// sampling. It is only as strong as r; pass seeded readers in tests only.
func ReaderRandom(r io.Reader) RandomSource {
	return readerSource{r: r}
}
