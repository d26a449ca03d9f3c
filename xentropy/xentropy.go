// Package xentropy estimates how much entropy a typed key carries, judged
// only from its own symbol frequencies.
package xentropy

import "math"

// Strength summarizes the symbol statistics of a key.
type Strength struct {
	Length  int
	Symbols int

	// Shannon and Min are bits per symbol.
	Shannon float64
	Min     float64
}

// Bits is the worst-case estimate for the whole key: length times the
// min-entropy per symbol.
func (s Strength) Bits() float64 {
	return float64(s.Length) * s.Min
}

// Weak reports whether the key falls below minBits.
func (s Strength) Weak(minBits float64) bool {
	return s.Bits() < minBits
}

// Estimate computes the Shannon and min-entropy of key over its runes.
//
// Shannon: H(X) = -sum P(x) log2 P(x)
// Min:     H(X) = -log2 max P(x)
func Estimate(key string) Strength {
	freq := make(map[rune]int)
	length := 0

	for _, r := range key {
		freq[r]++
		length++
	}

	s := Strength{Length: length, Symbols: len(freq)}
	if length == 0 {
		return s
	}

	maxCount := 0
	for _, count := range freq {
		p := float64(count) / float64(length)
		s.Shannon -= p * math.Log2(p)
		maxCount = max(maxCount, count)
	}

	// -0 for a single repeated symbol
	s.Min = math.Abs(-math.Log2(float64(maxCount) / float64(length)))

	return s
}
