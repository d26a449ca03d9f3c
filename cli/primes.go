package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"
	"github.com/vitalvas/quorum/mersenne"
)

func newPrimesCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "primes",
		Short: "List the Mersenne primes usable as modulus",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-6s %-9s %s\n", "INDEX", "EXPONENT", "MAX KEY")

			for i := range mersenne.Len() {
				exp, err := mersenne.Exponent(i)
				if err != nil {
					return err
				}

				prime, err := mersenne.Prime(i)
				if err != nil {
					return err
				}

				marker := ""
				if i == app.conf.PrimeIndex {
					marker = " *"
				}

				fmt.Fprintf(out, "%-6d %-9d %d symbols%s\n", i, exp, maxKeyLen(prime), marker)
			}

			return nil
		},
	}
}

// maxKeyLen is the longest key in the secret alphabet whose every value is
// below prime.
func maxKeyLen(prime *big.Int) int {
	base := big.NewInt(int64(secretCodec.Base()))
	power := new(big.Int).Set(base)

	n := 0
	for power.Cmp(prime) <= 0 {
		n++
		power.Mul(power, base)
	}

	return n
}
