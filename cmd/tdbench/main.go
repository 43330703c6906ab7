// Command tdbench runs the estimators side by side on small prediction
// problems and reports how fast each approaches the true values.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tdbench",
	Short: "Benchmark online TD-family estimators on prediction tasks",
	Long: `tdbench feeds identical experience to every estimator in the module
and prints the root-mean-squared error of their value estimates.

Estimators:
  - TD(λ), ETD(λ), true-online ETD(λ)
  - GTD(λ), HTD(λ)
  - true-online TD(λ), DVTD
  - ELSTD
  - TD(λ) with IDBD-adapted stepsizes`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.AddCommand(newRandomWalkCmd())
}
