package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlattice/config"
)

// options are the command-line overrides of a run.
type options struct {
	configPath string
	sweeps     int
	seed       uint64
	verbose    bool
	quiet      bool
}

func newRootCmd() *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:           "latticesim",
		Short:         "Run swap diffusion on a periodic square lattice",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("sweeps") {
				cfg.Sweeps = opts.sweeps
			}
			if flags.Changed("seed") {
				cfg.Seed = opts.seed
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			out := cmd.OutOrStdout()
			if opts.quiet {
				out = nil
			}
			return run(cfg, logger, out)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "YAML run configuration (defaults when empty)")
	f.IntVar(&opts.sweeps, "sweeps", 0, "override the number of diffusion sweeps")
	f.Uint64Var(&opts.seed, "seed", 0, "override the random seed")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log every sweep")
	f.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the final lattice")
	return cmd
}
