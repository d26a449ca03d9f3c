package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/vitalvas/quorum/shamir"
	"github.com/vitalvas/quorum/xentropy"
)

func newSplitCommand(app *App) *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "split",
		Short: "Split a key into shares",
		Long: `Split a key into shares, any threshold of which recover it.

Without --key the key is prompted for twice. Shares are printed to stdout,
one per line.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			threshold, err := intOverride(cmd, "threshold", app.conf.Threshold)
			if err != nil {
				return err
			}

			count, err := intOverride(cmd, "shares", app.conf.Shares)
			if err != nil {
				return err
			}

			if key == "" {
				if key, err = app.promptKey(); err != nil {
					return err
				}
			}

			return app.split(cmd, key, threshold, count)
		},
	}

	cmd.Flags().IntP("threshold", "t", 3, "minimum number of shares needed to recover the key")
	cmd.Flags().IntP("shares", "s", 5, "number of shares to generate")
	cmd.Flags().StringVarP(&key, "key", "k", "", "key to share (prompted for when empty)")

	return cmd
}

func (app *App) promptKey() (string, error) {
	first, err := app.Prompter.Prompt("Insert key: ")
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}

	second, err := app.Prompter.Prompt("Repeat key: ")
	if err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}

	if first != second {
		return "", ErrKeyMismatch
	}

	return first, nil
}

func (app *App) split(cmd *cobra.Command, key string, threshold, count int) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrEmptyKey
	}

	secret, err := secretCodec.Decode(key)
	if err != nil {
		return fmt.Errorf("decode key: %w", err)
	}

	// leading zero symbols carry no value and would be lost on recovery
	if canonical, err := secretCodec.Encode(secret); err != nil || canonical != key {
		return ErrLeadingZero
	}

	if strength := xentropy.Estimate(key); strength.Weak(float64(app.conf.MinKeyBits)) {
		app.logger.Warn("key looks weak", "estimated_bits", int(strength.Bits()), "min_key_bits", app.conf.MinKeyBits)
	}

	app.logger.Info("generating shares", "shares", count, "threshold", threshold)

	secret, shares, err := app.engine.Split(secret, threshold, count)
	if err != nil {
		if errors.Is(err, shamir.ErrSecretOutOfRange) {
			return fmt.Errorf("%w: key too long for prime index %d", err, app.conf.PrimeIndex)
		}
		return err
	}

	if err := app.engine.Verify(cmd.Context(), secret, shares, threshold); err != nil {
		return fmt.Errorf("reconstruction test: %w", err)
	}

	for _, share := range shares {
		text, err := app.engine.FormatShare(share)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
	}

	app.logger.Info("reconstruction test passed, generation complete")

	return nil
}
