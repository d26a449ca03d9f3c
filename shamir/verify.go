package shamir

import (
	"context"
	"fmt"
	"math/big"

	"github.com/vitalvas/quorum/xcmd"
)

// Verify checks that threshold-sized subsets of shares recover secret: the
// first ones, the last ones and one random selection. The subsets are
// recovered concurrently and the first mismatch cancels the rest.
//
// Threshold 1 shares are checked in pairs, since Recover needs two points.
func (e *Engine) Verify(ctx context.Context, secret *big.Int, shares []Share, threshold int) error {
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	if secret == nil {
		return ErrSecretOutOfRange
	}

	size := max(threshold, 2)
	if len(shares) < size {
		if threshold == 1 && len(shares) == 1 {
			if shares[0].Y == nil || shares[0].Y.Cmp(secret) != 0 {
				return fmt.Errorf("%w: single share", ErrVerificationFailed)
			}
			return nil
		}
		return ErrInsufficientShares
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	random, err := e.randomSubset(shares, size)
	if err != nil {
		return err
	}

	subsets := []struct {
		name   string
		shares []Share
	}{
		{"first", shares[:size]},
		{"last", shares[len(shares)-size:]},
		{"random", random},
	}

	group, _ := xcmd.ErrGroup(ctx)

	for _, subset := range subsets {
		group.Go(func(ctx context.Context) error {
			if err := ctx.Err(); err != nil {
				return err
			}

			got, err := e.Recover(subset.shares)
			if err != nil {
				return fmt.Errorf("%s subset: %w", subset.name, err)
			}

			if got.Cmp(secret) != 0 {
				return fmt.Errorf("%w: %s subset", ErrVerificationFailed, subset.name)
			}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	// tasks are skipped once the parent is canceled
	return ctx.Err()
}

// randomSubset picks size distinct shares with a partial Fisher-Yates shuffle.
func (e *Engine) randomSubset(shares []Share, size int) ([]Share, error) {
	pool := make([]Share, len(shares))
	copy(pool, shares)

	for i := range size {
		j, err := e.random.Int(big.NewInt(int64(len(pool) - i)))
		if err != nil {
			return nil, err
		}

		k := i + int(j.Int64())
		pool[i], pool[k] = pool[k], pool[i]
	}

	return pool[:size], nil
}

// VerifyShares checks that all shares lie on one polynomial of degree
// threshold-1. The first threshold shares define the polynomial and every
// other share is evaluated against it.
func (e *Engine) VerifyShares(shares []Share, threshold int) error {
	if threshold < 1 {
		return ErrInvalidThreshold
	}

	if len(shares) < threshold {
		return ErrInsufficientShares
	}

	xs, ys, err := e.points(shares)
	if err != nil {
		return err
	}

	baseX, baseY := xs[:threshold], ys[:threshold]

	for i := threshold; i < len(shares); i++ {
		expected, err := lagrangeInterpolate(e.field, baseX, baseY, xs[i])
		if err != nil {
			return err
		}

		if expected.Cmp(ys[i]) != 0 {
			return fmt.Errorf("%w: share %d", ErrVerificationFailed, shares[i].X)
		}
	}

	return nil
}
