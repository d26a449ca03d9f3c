// Package cli implements the quorum command line: splitting a key into
// shares, recovering it and listing the available primes.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/vitalvas/quorum/basex"
	"github.com/vitalvas/quorum/mersenne"
	"github.com/vitalvas/quorum/shamir"
	"github.com/vitalvas/quorum/xlogger"
)

// App carries the I/O endpoints of one invocation. Nil fields fall back to
// the process streams, the terminal and the system clipboard.
type App struct {
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Prompter  Prompter
	Clipboard Clipboard
	Random    shamir.RandomSource

	configFile string
	conf       Config
	logger     *slog.Logger
	engine     *shamir.Engine
}

// secretCodec renders keys. It is distinct from the share codec.
var secretCodec = basex.Base93()

// NewRootCommand builds the command tree bound to app.
func NewRootCommand(app *App) *cobra.Command {
	app.defaults()

	rootCmd := &cobra.Command{
		Use:   "quorum",
		Short: "Threshold secret sharing over Mersenne prime fields",
		Long: `quorum splits a key into N shares so that any K of them recover it
while fewer reveal nothing about it.

Keys are written in a 93 symbol printable alphabet, shares as
"index-value" with the value in base 62.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return app.setup(cmd)
		},
	}

	rootCmd.SetIn(app.Stdin)
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.configFile, "config", "", "YAML config file")
	flags.Int("prime-index", mersenne.DefaultIndex, "Mersenne prime catalog index (see primes)")
	flags.String("log-level", "info", "log level (debug, info, warn, error)")
	flags.String("log-type", "text", "log format (text, json, none)")

	rootCmd.AddCommand(newSplitCommand(app))
	rootCmd.AddCommand(newRecoverCommand(app))
	rootCmd.AddCommand(newPrimesCommand(app))

	return rootCmd
}

// Execute runs the command line with args and returns the process exit code.
func Execute(ctx context.Context, app *App, args []string) int {
	cmd := NewRootCommand(app)
	cmd.SetArgs(args)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(app.Stderr, "Error: %v\n", err)
		return 1
	}

	return 0
}

func (app *App) defaults() {
	if app.Stdin == nil {
		app.Stdin = os.Stdin
	}
	if app.Stdout == nil {
		app.Stdout = os.Stdout
	}
	if app.Stderr == nil {
		app.Stderr = os.Stderr
	}
	if app.Clipboard == nil {
		app.Clipboard = systemClipboard{}
	}
}

func (app *App) setup(cmd *cobra.Command) error {
	conf, err := LoadConfig(app.configFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()

	if flags.Changed("prime-index") {
		if conf.PrimeIndex, err = flags.GetInt("prime-index"); err != nil {
			return err
		}
	}

	if flags.Changed("log-level") {
		if conf.Logging.Level, err = flags.GetString("log-level"); err != nil {
			return err
		}
	}

	if flags.Changed("log-type") {
		if conf.Logging.LogType, err = flags.GetString("log-type"); err != nil {
			return err
		}
	}

	if err := conf.Validate(); err != nil {
		return err
	}

	conf.Logging.Output = app.Stderr

	app.conf = conf
	app.logger = xlogger.New(conf.Logging)

	if app.Prompter == nil {
		app.Prompter = NewPrompter(app.Stdin, app.Stderr)
	}

	prime, err := mersenne.Prime(conf.PrimeIndex)
	if err != nil {
		return err
	}

	app.engine, err = shamir.New(prime, shamir.WithRandom(app.Random), shamir.WithCodec(basex.Base62()))
	if err != nil {
		return err
	}

	app.logger.Debug("engine ready", "prime_index", conf.PrimeIndex, "prime_bits", prime.BitLen())

	return nil
}

// intOverride returns the flag value when it was set on the command line.
func intOverride(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}

	return cmd.Flags().GetInt(name)
}
