// Package config loads and validates lattice run configuration from YAML.
//
// Embedded defaults are decoded first; a user file then overrides any keys
// it sets. An init section replaces the default one as a whole rather than
// merging field by field. Unknown keys are rejected. Validation returns sentinel errors,
// so callers branch with errors.Is.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvlattice/sitestate"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Init kinds.
const (
	InitUniform = "uniform"
	InitRandom  = "random"
)

// Sentinel errors for configuration validation.
var (
	// ErrBadDimension indicates a dimension other than 1, 2 or 3.
	ErrBadDimension = errors.New("config: dimension must be 1, 2 or 3")
	// ErrBadLength indicates a side length below 1.
	ErrBadLength = errors.New("config: length must be ≥ 1")
	// ErrBadSweeps indicates a negative sweep count.
	ErrBadSweeps = errors.New("config: sweeps must be ≥ 0")
	// ErrBadInit indicates an invalid initial-state section.
	ErrBadInit = errors.New("config: invalid init")
)

// Config describes one lattice run.
type Config struct {
	Dimension int        `yaml:"dimension"` // 1, 2 or 3
	Length    int        `yaml:"length"`    // side length of every axis
	Seed      uint64     `yaml:"seed"`      // 0 selects rng.DefaultSeed
	Sweeps    int        `yaml:"sweeps"`    // diffusion sweeps to run
	Diffusion float64    `yaml:"diffusion"` // swap acceptance probability
	Init      InitConfig `yaml:"init"`
}

// InitConfig selects the initial fill. Sites are single characters.
type InitConfig struct {
	Kind    string    `yaml:"kind"`    // "uniform" or "random"
	Site    string    `yaml:"site"`    // uniform: the site value
	Values  []string  `yaml:"values"`  // random: support
	Weights []float64 `yaml:"weights"` // random: relative weights, one per value
}

// Default returns the embedded default configuration.
func Default() Config {
	var cfg Config
	if err := decode(defaultsYAML, &cfg); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load reads path and overlays it on the defaults. An empty path returns
// the defaults.
func Load(path string) (Config, error) {
	if path == "" {
		cfg := Default()
		return cfg, cfg.Validate()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays data on the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := decode(data, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, cfg.Validate()
}

func decode(data []byte, cfg *Config) error {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("decode yaml: %w", err)
	}
	if hasKey(&doc, "init") {
		cfg.Init = InitConfig{}
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode yaml: %w", err)
	}
	return nil
}

// hasKey reports whether the top-level mapping of doc sets key.
func hasKey(doc *yaml.Node, key string) bool {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return false
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value == key {
			return true
		}
	}
	return false
}

// Validate checks every field and returns the first violation.
func (c Config) Validate() error {
	if c.Dimension < 1 || c.Dimension > 3 {
		return fmt.Errorf("dimension=%d: %w", c.Dimension, ErrBadDimension)
	}
	if c.Length < 1 {
		return fmt.Errorf("length=%d: %w", c.Length, ErrBadLength)
	}
	if c.Sweeps < 0 {
		return fmt.Errorf("sweeps=%d: %w", c.Sweeps, ErrBadSweeps)
	}
	if err := sitestate.CheckProbability("diffusion", c.Diffusion); err != nil {
		return err
	}
	return c.Init.validate()
}

func (ic InitConfig) validate() error {
	switch ic.Kind {
	case InitUniform:
		if utf8.RuneCountInString(ic.Site) != 1 {
			return fmt.Errorf("init.site=%q must be one character: %w", ic.Site, ErrBadInit)
		}
	case InitRandom:
		if len(ic.Values) == 0 {
			return fmt.Errorf("init.values is empty: %w", ErrBadInit)
		}
		if len(ic.Weights) != len(ic.Values) {
			return fmt.Errorf("init: %d weights for %d values: %w", len(ic.Weights), len(ic.Values), ErrBadInit)
		}
		for k, v := range ic.Values {
			if utf8.RuneCountInString(v) != 1 {
				return fmt.Errorf("init.values[%d]=%q must be one character: %w", k, v, ErrBadInit)
			}
		}
		var total float64
		for k, w := range ic.Weights {
			if math.IsNaN(w) || math.IsInf(w, 0) || w < 0 {
				return fmt.Errorf("init.weights[%d]=%g: %w", k, w, ErrBadInit)
			}
			total += w
		}
		if total <= 0 || math.IsInf(total, 0) {
			return fmt.Errorf("init.weights total=%g: %w", total, ErrBadInit)
		}
	default:
		return fmt.Errorf("init.kind=%q (want %q or %q): %w", ic.Kind, InitUniform, InitRandom, ErrBadInit)
	}
	return nil
}

// Runes returns the init site values as runes. Call after Validate.
func (ic InitConfig) Runes() []rune {
	if ic.Kind == InitUniform {
		r, _ := utf8.DecodeRuneInString(ic.Site)
		return []rune{r}
	}
	out := make([]rune, len(ic.Values))
	for k, v := range ic.Values {
		out[k], _ = utf8.DecodeRuneInString(v)
	}
	return out
}

// LogValue implements slog.LogValuer for structured logging.
func (c Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("dimension", c.Dimension),
		slog.Int("length", c.Length),
		slog.Uint64("seed", c.Seed),
		slog.Int("sweeps", c.Sweeps),
		slog.Float64("diffusion", c.Diffusion),
		slog.String("init", c.Init.Kind),
	)
}
