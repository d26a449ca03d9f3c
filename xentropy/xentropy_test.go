package xentropy

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		length  int
		symbols int
		shannon float64
		min     float64
	}{
		{name: "empty", key: ""},
		{name: "single symbol", key: "a", length: 1, symbols: 1},
		{name: "repeated symbol", key: "aaaaaaaa", length: 8, symbols: 1},
		{name: "two balanced", key: "abab", length: 4, symbols: 2, shannon: 1, min: 1},
		{name: "four balanced", key: "aabbccdd", length: 8, symbols: 4, shannon: 2, min: 2},
		{
			name:    "skewed",
			key:     "aaab",
			length:  4,
			symbols: 2,
			shannon: -(0.75*math.Log2(0.75) + 0.25*math.Log2(0.25)),
			min:     -math.Log2(0.75),
		},
		{name: "multibyte runes", key: "äöüß", length: 4, symbols: 4, shannon: 2, min: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Estimate(tt.key)

			assert.Equal(t, tt.length, s.Length)
			assert.Equal(t, tt.symbols, s.Symbols)
			assert.InDelta(t, tt.shannon, s.Shannon, 1e-9)
			assert.InDelta(t, tt.min, s.Min, 1e-9)
			assert.False(t, math.Signbit(s.Min))
		})
	}
}

func TestMinNeverExceedsShannon(t *testing.T) {
	keys := []string{"hunter2", "correct horse battery staple", "aaab", "s3cr3t!", "Tr0ub4dor&3"}

	for _, key := range keys {
		s := Estimate(key)
		assert.LessOrEqual(t, s.Min, s.Shannon+1e-9, key)
		assert.LessOrEqual(t, s.Shannon, math.Log2(float64(s.Symbols))+1e-9, key)
	}
}

func TestStrengthBits(t *testing.T) {
	s := Estimate("aabbccdd")
	assert.InDelta(t, 16.0, s.Bits(), 1e-9)
	assert.True(t, s.Weak(17))
	assert.False(t, s.Weak(16))

	long := Estimate(strings.Repeat("0123456789abcdef", 4))
	assert.InDelta(t, 256.0, long.Bits(), 1e-9)
	assert.False(t, long.Weak(128))

	assert.True(t, Estimate("").Weak(1))
}

func BenchmarkEstimate(b *testing.B) {
	key := strings.Repeat("Tr0ub4dor&3", 8)

	for b.Loop() {
		Estimate(key)
	}
}
