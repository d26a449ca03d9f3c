package shamir

import (
	"errors"
	"math/big"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vitalvas/quorum/mersenne"
)

// sequenceRandom returns the queued values in order, each reduced by max.
type sequenceRandom struct {
	mu     sync.Mutex
	values []int64
	next   int
}

func (s *sequenceRandom) Int(max *big.Int) (*big.Int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.next >= len(s.values) {
		return nil, errExhausted
	}

	v := big.NewInt(s.values[s.next])
	s.next++
	return v.Mod(v, max), nil
}

var errExhausted = errors.New("sequence exhausted")

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy unavailable")
}

func newTestEngine(t testing.TB, index int, opts ...Option) *Engine {
	t.Helper()

	p, err := mersenne.Prime(index)
	require.NoError(t, err)

	e, err := New(p, opts...)
	require.NoError(t, err)
	return e
}

// p8191 is the catalog index of 2^13 - 1.
const p8191 = 4
