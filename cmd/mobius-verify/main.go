// Command mobius-verify runs the Möbius-index vacuum energy verification:
// it accumulates the AHSS E2 diagonal for Pin+ bordism of BGint, checks
// the total against the witness lower bound, derives the decade index,
// and compares the predicted vacuum energy density to the observed value.
//
// Exit codes: 0 — prediction verified, 1 — prediction refuted,
// 2 — any input or pipeline error.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/internal/config"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/report"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/verify"
)

var (
	cfgPath     string
	degree      int
	witness     int
	planck      float64
	observed    float64
	sensitivity string
	verbose     bool

	logger *zap.Logger

	// refuted is set by run when the pipeline completes but the
	// prediction misses the agreement threshold; main maps it to exit 1.
	refuted bool
)

var rootCmd = &cobra.Command{
	Use:   "mobius-verify",
	Short: "Topological vacuum energy verification",
	Long: `mobius-verify recomputes the Möbius-index derivation of the vacuum
energy density: the 2-torsion rank of the degree-5 Pin+ bordism of BGint
via the AHSS E2 diagonal, the decade index I_10(m) = (2^m-1) - m + 3,
and the prediction rho_Lambda = rho_P x 10^(-I_10) against observation.

All inputs default to the published tables and constants; supply a YAML
config or flags to substitute arbitrary values.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		lcfg := zap.NewProductionConfig()
		lcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			lcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = lcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}
		return nil
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&cfgPath, "config", "", "YAML file with tables and constants (defaults to published values)")
	rootCmd.Flags().IntVar(&degree, "degree", 0, "target total degree n of the antidiagonal")
	rootCmd.Flags().IntVar(&witness, "witness", 0, "externally asserted lower bound on the total rank")
	rootCmd.Flags().Float64Var(&planck, "planck-density", 0, "Planck density in kg/m^3")
	rootCmd.Flags().Float64Var(&observed, "observed-density", 0, "observed vacuum energy density in kg/m^3")
	rootCmd.Flags().StringVar(&sensitivity, "sensitivity", "", "also report alternative ranks, as from:to (e.g. 6:8)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if cfgPath != "" {
		var err error
		if cfg, err = config.Load(cfgPath); err != nil {
			return err
		}
		logger.Debug("loaded config", zap.String("path", cfgPath))
	}
	if cmd.Flags().Changed("degree") {
		cfg.Degree = degree
	}
	if cmd.Flags().Changed("witness") {
		cfg.Witness = witness
	}
	if cmd.Flags().Changed("planck-density") {
		cfg.PlanckDensity = planck
	}
	if cmd.Flags().Changed("observed-density") {
		cfg.ObservedDensity = observed
	}

	in, err := cfg.Input()
	if err != nil {
		return err
	}
	logger.Debug("pipeline input",
		zap.Int("degree", in.Degree),
		zap.Int("witness", in.Witness),
		zap.Float64("planck_density", in.PlanckDensity),
		zap.Float64("observed_density", in.ObservedDensity))

	res, err := verify.Evaluate(in)
	if err != nil {
		return err
	}

	var sweep []verify.SweepRow
	if sensitivity != "" {
		from, to, err := parseRange(sensitivity)
		if err != nil {
			return err
		}
		if sweep, err = verify.Sweep(in, from, to); err != nil {
			return err
		}
	}

	if err = report.Write(os.Stdout, res, sweep); err != nil {
		return err
	}
	refuted = res.Status == verify.StatusRefuted
	return nil
}

// parseRange parses a "from:to" sensitivity range.
func parseRange(s string) (int, int, error) {
	lo, hi, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("sensitivity range %q: want from:to", s)
	}
	from, err := strconv.Atoi(strings.TrimSpace(lo))
	if err != nil {
		return 0, 0, fmt.Errorf("sensitivity range %q: %w", s, err)
	}
	to, err := strconv.Atoi(strings.TrimSpace(hi))
	if err != nil {
		return 0, 0, fmt.Errorf("sensitivity range %q: %w", s, err)
	}
	return from, to, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
	if refuted {
		os.Exit(1)
	}
}
