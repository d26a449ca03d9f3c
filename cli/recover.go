package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vitalvas/quorum/shamir"
)

func newRecoverCommand(app *App) *cobra.Command {
	var printKey bool

	cmd := &cobra.Command{
		Use:   "recover",
		Short: "Recover a key from shares",
		Long: `Recover a key from shares entered one per prompt.

Malformed or repeated shares are rejected and asked for again. The key is
copied to the clipboard unless --print is given or the clipboard is
disabled in the config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			required, err := intOverride(cmd, "required", app.conf.Threshold)
			if err != nil {
				return err
			}

			key, err := app.recoverKey(required)
			if err != nil {
				return err
			}

			if printKey || !app.conf.Clipboard {
				fmt.Fprintln(cmd.OutOrStdout(), key)
				return nil
			}

			if err := app.Clipboard.WriteAll(key); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}

			fmt.Fprintln(cmd.ErrOrStderr(), "The key has been copied to the clipboard")

			return nil
		},
	}

	cmd.Flags().IntP("required", "r", 3, "number of shares to enter")
	cmd.Flags().BoolVarP(&printKey, "print", "p", false, "print the key instead of copying it")

	return cmd
}

func (app *App) recoverKey(required int) (string, error) {
	if required < 2 {
		return "", fmt.Errorf("%w: at least 2 shares must be entered", shamir.ErrInsufficientShares)
	}

	shares := make([]shamir.Share, 0, required)
	seen := make(map[int]struct{}, required)

	for len(shares) < required {
		line, err := app.Prompter.Prompt(fmt.Sprintf("Insert share #%d/%d: ", len(shares)+1, required))
		if err != nil {
			return "", fmt.Errorf("read share: %w", err)
		}

		share, err := app.engine.ParseShare(line)
		if err != nil {
			app.logger.Warn("invalid share", "error", err)
			fmt.Fprintln(app.Stderr, "Invalid share")
			continue
		}

		if _, ok := seen[share.X]; ok {
			app.logger.Warn("repeated share", "index", share.X)
			fmt.Fprintln(app.Stderr, "Share already entered")
			continue
		}

		seen[share.X] = struct{}{}
		shares = append(shares, share)
	}

	secret, err := app.engine.Recover(shares)
	if err != nil {
		return "", err
	}

	app.logger.Debug("key recovered", "shares", len(shares))

	return secretCodec.Encode(secret)
}
