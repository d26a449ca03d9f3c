package shamir

import "errors"

var (
	// ErrInvalidPrime is returned when the modulus is missing or not prime.
	ErrInvalidPrime = errors.New("shamir: modulus must be prime")

	// ErrInvalidThreshold is returned when threshold is less than 1.
	ErrInvalidThreshold = errors.New("shamir: threshold must be at least 1")

	// ErrInvalidShareCount is returned when the share count is less than 1.
	ErrInvalidShareCount = errors.New("shamir: share count must be at least 1")

	// ErrThresholdExceedsShareCount is returned when threshold is greater than the share count.
	ErrThresholdExceedsShareCount = errors.New("shamir: threshold must not exceed share count")

	// ErrTooManyShares is returned when share indices would repeat modulo the prime.
	ErrTooManyShares = errors.New("shamir: share count must be less than the prime")

	// ErrSecretOutOfRange is returned when the secret is negative or not less than the prime.
	ErrSecretOutOfRange = errors.New("shamir: secret must be in [0, prime)")

	// ErrInsufficientShares is returned when fewer than two shares are given for reconstruction.
	ErrInsufficientShares = errors.New("shamir: insufficient shares for reconstruction")

	// ErrDuplicateShareIndex is returned when two shares have the same index.
	ErrDuplicateShareIndex = errors.New("shamir: duplicate share index")

	// ErrInvalidShareX is returned when a share index is not positive or is a multiple of the prime.
	ErrInvalidShareX = errors.New("shamir: share index must be non-zero modulo the prime")

	// ErrShareOutOfRange is returned when a share value is not a field element.
	ErrShareOutOfRange = errors.New("shamir: share value must be in [0, prime)")

	// ErrNotInvertible is returned when an interpolation denominator has no inverse.
	ErrNotInvertible = errors.New("shamir: value has no inverse modulo the prime")

	// ErrInvalidShareFormat is returned when share text is malformed.
	ErrInvalidShareFormat = errors.New("shamir: invalid share format")

	// ErrVerificationFailed is returned when shares do not reconstruct the expected secret.
	ErrVerificationFailed = errors.New("shamir: share verification failed")
)
