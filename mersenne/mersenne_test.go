package mersenne

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrime(t *testing.T) {
	tests := []struct {
		index    int
		expected int64
	}{
		{0, 3},
		{1, 7},
		{2, 31},
		{3, 127},
		{4, 8191},
		{7, 2147483647},
		{8, 2305843009213693951},
	}

	for _, tt := range tests {
		p, err := Prime(tt.index)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, p.Int64(), "index %d", tt.index)
	}
}

func TestPrimeBitLength(t *testing.T) {
	for i := range Len() {
		e, err := Exponent(i)
		require.NoError(t, err)

		p, err := Prime(i)
		require.NoError(t, err)

		assert.Equal(t, int(e), p.BitLen())
		assert.Equal(t, int(e), popCount(p), "all bits set for index %d", i)
	}
}

func TestPrimeIsPrime(t *testing.T) {
	for i := range Len() {
		e, _ := Exponent(i)
		if e > 1279 {
			continue
		}

		p, err := Prime(i)
		require.NoError(t, err)
		assert.True(t, p.ProbablyPrime(0), "2^%d-1", e)
	}
}

func TestPrimeOutOfRange(t *testing.T) {
	for _, index := range []int{-1, Len(), 100} {
		p, err := Prime(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.Nil(t, p)

		_, err = Exponent(index)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	}
}

func TestPrimeReturnsCopy(t *testing.T) {
	p := Default()
	p.SetInt64(0)

	expected := new(big.Int).Lsh(big.NewInt(1), 521)
	expected.Sub(expected, big.NewInt(1))
	assert.Equal(t, 0, Default().Cmp(expected))
}

func BenchmarkPrime(b *testing.B) {
	b.ReportAllocs()
	for b.Loop() {
		_, _ = Prime(Len() - 1)
	}
}

func popCount(n *big.Int) int {
	count := 0
	for i := range n.BitLen() {
		count += int(n.Bit(i))
	}
	return count
}
