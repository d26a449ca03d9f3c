// Package basex converts non-negative big integers to and from positional text
// over a configurable alphabet.
//
// The standard alphabet holds 93 printable ASCII symbols: digits, upper case
// letters, lower case letters and then punctuation. Shorter standard bases use a
// prefix of it, so base 36 is 0-9A-Z and base 62 is 0-9A-Za-z.
package basex

import (
	"errors"
	"fmt"
	"math/big"
)

// Alphabet is the standard 93 symbol table.
const Alphabet = "0123456789" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"abcdefghijklmnopqrstuvwxyz" +
	"!#$%&()*+-;<=>?@^_`{|}~" +
	"\"'./:[\\]"

var (
	// ErrInvalidBase is returned when an alphabet has fewer than two symbols
	// or a standard base outside [2, 93] is requested.
	ErrInvalidBase = errors.New("basex: invalid base")

	// ErrDuplicateSymbol is returned when an alphabet repeats a symbol.
	ErrDuplicateSymbol = errors.New("basex: duplicate symbol in alphabet")

	// ErrInvalidAlphabet is returned when an alphabet holds a non printable or whitespace symbol.
	ErrInvalidAlphabet = errors.New("basex: alphabet symbols must be printable ASCII")

	// ErrInvalidSymbol is returned when decoded text holds a symbol outside the alphabet.
	ErrInvalidSymbol = errors.New("basex: invalid symbol")

	// ErrNegative is returned when encoding a nil or negative integer.
	ErrNegative = errors.New("basex: value must be non-negative")
)

// Codec is an immutable base-B text codec. It is safe for concurrent use.
type Codec struct {
	alphabet string
	base     *big.Int
	digits   [256]int16
}

// New creates a codec whose digit i is alphabet[i].
func New(alphabet string) (*Codec, error) {
	if len(alphabet) < 2 {
		return nil, ErrInvalidBase
	}

	c := &Codec{
		alphabet: alphabet,
		base:     big.NewInt(int64(len(alphabet))),
	}

	for i := range c.digits {
		c.digits[i] = -1
	}

	for i := 0; i < len(alphabet); i++ {
		s := alphabet[i]
		if s <= ' ' || s > '~' {
			return nil, fmt.Errorf("%w: %q", ErrInvalidAlphabet, s)
		}
		if c.digits[s] != -1 {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSymbol, s)
		}
		c.digits[s] = int16(i)
	}

	return c, nil
}

// NewBase creates a codec over the first base symbols of the standard alphabet.
func NewBase(base int) (*Codec, error) {
	if base < 2 || base > len(Alphabet) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidBase, base)
	}

	return New(Alphabet[:base])
}

// Base36 returns the 0-9A-Z codec.
func Base36() *Codec { return mustBase(36) }

// Base62 returns the 0-9A-Za-z codec used for share values.
func Base62() *Codec { return mustBase(62) }

// Base93 returns the full standard alphabet codec used for secrets.
func Base93() *Codec { return mustBase(93) }

func mustBase(base int) *Codec {
	c, err := NewBase(base)
	if err != nil {
		panic(err)
	}
	return c
}

// Base returns the number of symbols in the alphabet.
func (c *Codec) Base() int {
	return len(c.alphabet)
}

// Alphabet returns the symbol table.
func (c *Codec) Alphabet() string {
	return c.alphabet
}

// Encode renders n most significant digit first. Zero encodes as the single
// zero symbol; no other value gets leading zero symbols.
func (c *Codec) Encode(n *big.Int) (string, error) {
	if n == nil || n.Sign() < 0 {
		return "", ErrNegative
	}

	if n.Sign() == 0 {
		return c.alphabet[:1], nil
	}

	// digits come out least significant first
	buf := make([]byte, 0, n.BitLen()/5+1)
	quo := new(big.Int).Set(n)
	rem := new(big.Int)

	for quo.Sign() > 0 {
		quo.QuoRem(quo, c.base, rem)
		buf = append(buf, c.alphabet[rem.Int64()])
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf), nil
}

// Decode parses most significant digit first text. The empty string decodes to zero.
func (c *Codec) Decode(text string) (*big.Int, error) {
	value := new(big.Int)
	digit := new(big.Int)

	for i := 0; i < len(text); i++ {
		d := c.digits[text[i]]
		if d < 0 {
			return nil, fmt.Errorf("%w: %q at position %d", ErrInvalidSymbol, text[i], i)
		}

		value.Mul(value, c.base)
		value.Add(value, digit.SetInt64(int64(d)))
	}

	return value, nil
}
