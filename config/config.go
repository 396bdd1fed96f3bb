// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Run configuration resolved from viper (file, env, flags).

package config

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/pandemaniac/centrality"
	"github.com/katalvlaran/pandemaniac/prim_kruskal"
	"github.com/katalvlaran/pandemaniac/seeding"
	"github.com/spf13/viper"
)

// Configuration keys, shared by the config file, PANDEMANIAC_* env vars and
// the CLI flag bindings.
const (
	KeyGraph                = "graph"
	KeyStrategies           = "strategies"
	KeyIterations           = "iterations"
	KeyOutputDir            = "output_dir"
	KeySeed                 = "seed"
	KeyMSTMethod            = "mst_method"
	KeyEigenvectorTolerance = "eigenvector.tolerance"
	KeyEigenvectorMaxIter   = "eigenvector.max_iter"
	KeyKatzAlpha            = "katz.alpha"
	KeyKatzBeta             = "katz.beta"
	KeyKatzTolerance        = "katz.tolerance"
	KeyKatzMaxIter          = "katz.max_iter"
	KeyLogLevel             = "log.level"
	KeyLogFormat            = "log.format"
)

// EnvPrefix prefixes every environment override, e.g. PANDEMANIAC_SEED.
const EnvPrefix = "PANDEMANIAC"

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Iterative holds the power-iteration knobs of one ranker.
type Iterative struct {
	Tolerance float64
	MaxIter   int
}

// Katz extends Iterative with the Katz weights.
type Katz struct {
	Iterative
	Alpha float64
	Beta  float64
}

// Log selects the logrus level and formatter.
type Log struct {
	Level  string
	Format string
}

// Config is a fully resolved run configuration.
type Config struct {
	// Graph is the graph file, with or without the .json extension.
	// Empty means "ask interactively".
	Graph string
	// Strategies holds one-letter strategy tags, unparsed so that an unknown
	// tag fails only its own strategy.
	Strategies []string
	Iterations int
	OutputDir  string
	// Seed feeds the random strategy; 0 picks a time-based seed.
	Seed        int64
	MSTMethod   string
	Eigenvector Iterative
	Katz        Katz
	Log         Log
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyStrategies, []string{})
	v.SetDefault(KeyIterations, seeding.DefaultIterations)
	v.SetDefault(KeyOutputDir, ".")
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyMSTMethod, prim_kruskal.MethodKruskal)
	v.SetDefault(KeyEigenvectorTolerance, centrality.DefaultTolerance)
	v.SetDefault(KeyEigenvectorMaxIter, centrality.DefaultEigenvectorMaxIter)
	v.SetDefault(KeyKatzAlpha, centrality.DefaultKatzAlpha)
	v.SetDefault(KeyKatzBeta, centrality.DefaultKatzBeta)
	v.SetDefault(KeyKatzTolerance, centrality.DefaultTolerance)
	v.SetDefault(KeyKatzMaxIter, centrality.DefaultKatzMaxIter)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, FormatText)
}

// New returns a viper instance with defaults, the PANDEMANIAC_ env prefix and
// automatic env lookup ("katz.alpha" ← PANDEMANIAC_KATZ_ALPHA).
func New() *viper.Viper {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// Load resolves and validates a Config from v.
//
// Errors wrap seeding.ErrConfiguration.
func Load(v *viper.Viper) (*Config, error) {
	c := &Config{
		Graph:      strings.TrimSpace(v.GetString(KeyGraph)),
		Strategies: v.GetStringSlice(KeyStrategies),
		Iterations: v.GetInt(KeyIterations),
		OutputDir:  v.GetString(KeyOutputDir),
		Seed:       v.GetInt64(KeySeed),
		MSTMethod:  strings.ToLower(v.GetString(KeyMSTMethod)),
		Eigenvector: Iterative{
			Tolerance: v.GetFloat64(KeyEigenvectorTolerance),
			MaxIter:   v.GetInt(KeyEigenvectorMaxIter),
		},
		Katz: Katz{
			Iterative: Iterative{
				Tolerance: v.GetFloat64(KeyKatzTolerance),
				MaxIter:   v.GetInt(KeyKatzMaxIter),
			},
			Alpha: v.GetFloat64(KeyKatzAlpha),
			Beta:  v.GetFloat64(KeyKatzBeta),
		},
		Log: Log{
			Level:  v.GetString(KeyLogLevel),
			Format: strings.ToLower(v.GetString(KeyLogFormat)),
		},
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate checks the fields that are not validated further down the line.
// Ranker options (tolerances, alpha) are checked by centrality when used.
func (c *Config) Validate() error {
	if c.Iterations <= 0 {
		return fmt.Errorf("%w: %s must be positive (%d)", seeding.ErrConfiguration, KeyIterations, c.Iterations)
	}
	switch c.MSTMethod {
	case prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim:
	default:
		return fmt.Errorf("%w: %s must be %q or %q, got %q", seeding.ErrConfiguration,
			KeyMSTMethod, prim_kruskal.MethodKruskal, prim_kruskal.MethodPrim, c.MSTMethod)
	}
	switch c.Log.Format {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: %s must be %q or %q, got %q", seeding.ErrConfiguration,
			KeyLogFormat, FormatText, FormatJSON, c.Log.Format)
	}
	if c.OutputDir == "" {
		c.OutputDir = "."
	}

	return nil
}

// EngineOptions translates the ranker and extractor settings into
// seeding.Engine options. The random source is not included.
func (c *Config) EngineOptions() []seeding.Option {
	return []seeding.Option{
		seeding.WithCentralityOptions(seeding.Eigenvector,
			centrality.WithTolerance(c.Eigenvector.Tolerance),
			centrality.WithMaxIter(c.Eigenvector.MaxIter),
		),
		seeding.WithCentralityOptions(seeding.Katz,
			centrality.WithTolerance(c.Katz.Tolerance),
			centrality.WithMaxIter(c.Katz.MaxIter),
			centrality.WithAlpha(c.Katz.Alpha),
			centrality.WithBeta(c.Katz.Beta),
		),
		seeding.WithSpanningForest(prim_kruskal.WithMethod(c.MSTMethod)),
	}
}
