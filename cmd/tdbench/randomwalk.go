package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var errBadFlag = errors.New("tdbench: invalid flag value")

func newRandomWalkCmd() *cobra.Command {
	cfg := defaultWalkConfig()
	var chartPath string

	cmd := &cobra.Command{
		Use:   "randomwalk",
		Short: "Bounded random walk with one-hot features",
		Long: `Runs every estimator on the classic bounded random walk: states 1..N,
start in the middle, step left or right with equal probability, reward +1
only on exiting to the right. γ = 1, so the true value of state i is i/(N+1).

Prints the final RMSE per estimator, averaged over runs. With --chart the
per-episode RMSE curves are also written as an HTML line chart.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.validate(); err != nil {
				return err
			}
			curves, err := simulate(cfg)
			if err != nil {
				return err
			}
			if err = printTable(cmd.OutOrStdout(), curves); err != nil {
				return err
			}
			if chartPath == "" {
				return nil
			}

			f, err := os.Create(chartPath)
			if err != nil {
				return fmt.Errorf("failed to create chart file: %w", err)
			}
			defer f.Close()
			if err = renderChart(f, cfg, curves); err != nil {
				return fmt.Errorf("failed to render chart: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "chart written to %s\n", chartPath)

			return nil
		},
	}

	cmd.Flags().IntVar(&cfg.States, "states", cfg.States, "number of non-terminal states")
	cmd.Flags().IntVar(&cfg.Episodes, "episodes", cfg.Episodes, "episodes per run")
	cmd.Flags().IntVar(&cfg.Runs, "runs", cfg.Runs, "independent runs to average over")
	cmd.Flags().Float64Var(&cfg.Alpha, "alpha", cfg.Alpha, "stepsize (also the initial IDBD stepsize)")
	cmd.Flags().Float64Var(&cfg.Lambda, "lambda", cfg.Lambda, "bootstrapping parameter λ")
	cmd.Flags().Uint64Var(&cfg.Seed, "seed", cfg.Seed, "random seed")
	cmd.Flags().StringVar(&chartPath, "chart", "", "write an HTML RMSE chart to this path")

	return cmd
}

func (c walkConfig) validate() error {
	switch {
	case c.States < 1:
		return fmt.Errorf("--states=%d must be >= 1: %w", c.States, errBadFlag)
	case c.Episodes < 1:
		return fmt.Errorf("--episodes=%d must be >= 1: %w", c.Episodes, errBadFlag)
	case c.Runs < 1:
		return fmt.Errorf("--runs=%d must be >= 1: %w", c.Runs, errBadFlag)
	case c.Alpha <= 0:
		return fmt.Errorf("--alpha=%v must be > 0: %w", c.Alpha, errBadFlag)
	case c.Lambda < 0 || c.Lambda > 1:
		return fmt.Errorf("--lambda=%v must be in [0,1]: %w", c.Lambda, errBadFlag)
	}

	return nil
}

func printTable(out io.Writer, curves []curve) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ESTIMATOR\tFINAL RMSE")
	for _, c := range curves {
		if c.Diverged {
			fmt.Fprintf(w, "%s\tdiverged\n", c.Name)
			continue
		}
		fmt.Fprintf(w, "%s\t%.4f\n", c.Name, c.RMSE[len(c.RMSE)-1])
	}

	return w.Flush()
}
