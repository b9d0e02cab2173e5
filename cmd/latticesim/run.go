package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/katalvlaran/lvlattice/config"
	"github.com/katalvlaran/lvlattice/lattice"
	"github.com/katalvlaran/lvlattice/rng"
	"github.com/katalvlaran/lvlattice/sitestate"
	"github.com/katalvlaran/lvlattice/sitestate/distribution"
)

// cell is a one-character site.
type cell rune

// Char implements sitestate.CharRepr.
func (c cell) Char() rune { return rune(c) }

// printable is a lattice the driver can sweep and print.
type printable[I comparable] interface {
	sitestate.Lattice[I, cell]
	fmt.Stringer
}

// run builds the configured lattice and sweeps it. The final state is
// written to out unless out is nil.
func run(cfg config.Config, logger *slog.Logger, out io.Writer) error {
	logger.Info("run", "config", cfg)

	// Separate streams keep the initial state independent of the sweep count.
	initRand := rng.Derive(cfg.Seed, 0)
	sweepRand := rng.Derive(cfg.Seed, 1)

	spec, err := initialSpec(cfg.Init, initRand)
	if err != nil {
		return err
	}
	coin, err := sitestate.NewCoin(cfg.Diffusion)
	if err != nil {
		return err
	}

	switch cfg.Dimension {
	case 1:
		return sweep[int](lattice.New1D(cfg.Length, spec), coin, cfg.Sweeps, sweepRand, logger, out)
	case 2:
		return sweep[[2]int](lattice.New2D(cfg.Length, spec), coin, cfg.Sweeps, sweepRand, logger, out)
	case 3:
		return sweep[[3]int](lattice.New3D(cfg.Length, spec), coin, cfg.Sweeps, sweepRand, logger, out)
	default:
		return fmt.Errorf("dimension=%d: %w", cfg.Dimension, config.ErrBadDimension)
	}
}

// initialSpec translates the init section into a fill strategy.
func initialSpec(ic config.InitConfig, r *rand.Rand) (sitestate.InitialStateSpec[cell], error) {
	runes := ic.Runes()
	if ic.Kind == config.InitUniform {
		return sitestate.UniformSites[cell]{Site: cell(runes[0])}, nil
	}
	values := make([]cell, len(runes))
	for k, c := range runes {
		values[k] = cell(c)
	}
	dist, err := distribution.NewCategorical(values, ic.Weights)
	if err != nil {
		return nil, fmt.Errorf("init: %w", err)
	}
	return sitestate.NewRandomSites[cell](dist, r), nil
}

func sweep[I comparable](l printable[I], coin sitestate.Coin, sweeps int, r *rand.Rand, logger *slog.Logger, out io.Writer) error {
	logger.Debug("lattice ready", "dimension", l.Dimension(), "length", l.Length(), "sites", l.SiteCount())

	start := time.Now()
	for s := 1; s <= sweeps; s++ {
		l.Diffuse(coin, r)
		logger.Debug("sweep", "n", s)
	}
	logger.Info("done", "sweeps", sweeps, "elapsed", time.Since(start))

	if out == nil {
		return nil
	}
	_, err := fmt.Fprintln(out, l)
	return err
}
