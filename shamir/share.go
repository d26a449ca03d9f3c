package shamir

import (
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"
)

// Share is one point (X, Y) of the sharing polynomial. X starts at 1; X = 0
// would be the secret itself and is never issued.
type Share struct {
	X int
	Y *big.Int
}

// Clone creates a deep copy of the share.
func (s Share) Clone() Share {
	c := Share{X: s.X}
	if s.Y != nil {
		c.Y = new(big.Int).Set(s.Y)
	}
	return c
}

// Equal checks if two shares are equal.
func (s Share) Equal(other Share) bool {
	if s.X != other.X {
		return false
	}
	if s.Y == nil || other.Y == nil {
		return s.Y == other.Y
	}
	return s.Y.Cmp(other.Y) == 0
}

// FormatShare renders a share as "x-value", x in decimal and the value in
// the engine codec.
func (e *Engine) FormatShare(s Share) (string, error) {
	if s.X < 1 {
		return "", ErrInvalidShareX
	}

	value, err := e.codec.Encode(s.Y)
	if err != nil {
		return "", errors.Join(ErrInvalidShareFormat, err)
	}

	return strconv.Itoa(s.X) + "-" + value, nil
}

// ParseShare parses the text produced by FormatShare. Surrounding
// whitespace is ignored.
func (e *Engine) ParseShare(text string) (Share, error) {
	index, value, ok := strings.Cut(strings.TrimSpace(text), "-")
	if !ok || index == "" {
		return Share{}, fmt.Errorf("%w: expected x-value", ErrInvalidShareFormat)
	}

	for _, r := range index {
		if r < '0' || r > '9' {
			return Share{}, fmt.Errorf("%w: index %q is not decimal", ErrInvalidShareFormat, index)
		}
	}

	x, err := strconv.Atoi(index)
	if err != nil {
		return Share{}, errors.Join(ErrInvalidShareFormat, err)
	}
	if x < 1 {
		return Share{}, ErrInvalidShareX
	}

	y, err := e.codec.Decode(strings.TrimSpace(value))
	if err != nil {
		return Share{}, errors.Join(ErrInvalidShareFormat, err)
	}

	return Share{X: x, Y: y}, nil
}
