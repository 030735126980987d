// SPDX-License-Identifier: MIT

// Package config holds the settings shared by the lvrate commands: logging,
// the random seed, simulation sizes, finite-difference options and
// optimizer limits. Files are YAML and are decoded over Default, so any key
// may be omitted.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"strings"

	"github.com/katalvlaran/lvrate/difftest"
	"github.com/katalvlaran/lvrate/objective"
	"gopkg.in/yaml.v3"
)

// Method tags used in error context.
const (
	methodLoad     = "Load"
	methodValidate = "Validate"
)

// ErrInvalidConfig indicates a configuration value out of its domain.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Simulation sizes the synthetic IRT data set.
type Simulation struct {
	Students            int `yaml:"students"`
	Questions           int `yaml:"questions"`
	ResponsesPerStudent int `yaml:"responses_per_student"`
}

// DiffTest mirrors difftest.Options without the random source.
type DiffTest struct {
	LeftBound  float64 `yaml:"left_bound"`
	RightBound float64 `yaml:"right_bound"`
	NumTests   int     `yaml:"num_tests"`
	Eps        float64 `yaml:"eps"`
	Decimal    int     `yaml:"decimal"`
}

// Optimizer mirrors objective.Settings.
type Optimizer struct {
	Method            string  `yaml:"method"`
	MaxIterations     int     `yaml:"max_iterations"`
	GradientThreshold float64 `yaml:"gradient_threshold"`
}

// Config is the root of a configuration file.
type Config struct {
	LogLevel   string     `yaml:"log_level"`
	Seed       uint64     `yaml:"seed"`
	Simulation Simulation `yaml:"simulation"`
	DiffTest   DiffTest   `yaml:"difftest"`
	Optimizer  Optimizer  `yaml:"optimizer"`
}

// Default returns the built-in configuration: info logging, seed 1, a
// 100 × 20 × 5 simulation, the difftest defaults and the objective defaults.
func Default() Config {
	d := difftest.DefaultOptions()
	o := objective.DefaultSettings()
	return Config{
		LogLevel: "info",
		Seed:     1,
		Simulation: Simulation{
			Students:            100,
			Questions:           20,
			ResponsesPerStudent: 5,
		},
		DiffTest: DiffTest{
			LeftBound:  d.LeftBound,
			RightBound: d.RightBound,
			NumTests:   d.NumTests,
			Eps:        d.Eps,
			Decimal:    d.Decimal,
		},
		Optimizer: Optimizer{
			Method:            string(o.Method),
			MaxIterations:     o.MaxIterations,
			GradientThreshold: o.GradientThreshold,
		},
	}
}

// Load reads path and decodes it over Default. An empty path returns Default.
// The result is validated.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads YAML from r over Default and validates the result. Unknown
// keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%s: %w", methodLoad, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Validate checks every section; the error wraps ErrInvalidConfig.
func (c Config) Validate() error {
	if _, err := ParseLevel(c.LogLevel); err != nil {
		return err
	}
	s := c.Simulation
	if s.Students < 1 || s.Questions < 1 || s.ResponsesPerStudent < 1 {
		return fmt.Errorf("%s: simulation sizes %d/%d/%d must be >= 1: %w",
			methodValidate, s.Students, s.Questions, s.ResponsesPerStudent, ErrInvalidConfig)
	}
	d := c.DiffTest
	switch {
	case !(d.LeftBound < d.RightBound):
		return fmt.Errorf("%s: difftest interval [%g,%g] is empty: %w", methodValidate, d.LeftBound, d.RightBound, ErrInvalidConfig)
	case d.NumTests < 1:
		return fmt.Errorf("%s: difftest num_tests=%d < 1: %w", methodValidate, d.NumTests, ErrInvalidConfig)
	case !(d.Eps > 0):
		return fmt.Errorf("%s: difftest eps=%g must be > 0: %w", methodValidate, d.Eps, ErrInvalidConfig)
	case d.Decimal < 0:
		return fmt.Errorf("%s: difftest decimal=%d < 0: %w", methodValidate, d.Decimal, ErrInvalidConfig)
	}
	o := c.Optimizer
	switch objective.Method(o.Method) {
	case objective.MethodAuto, objective.MethodLBFGS, objective.MethodBFGS,
		objective.MethodGradientDescent, objective.MethodNelderMead:
	default:
		return fmt.Errorf("%s: unknown optimizer method %q: %w", methodValidate, o.Method, ErrInvalidConfig)
	}
	if o.MaxIterations < 0 || o.GradientThreshold < 0 {
		return fmt.Errorf("%s: negative optimizer limit: %w", methodValidate, ErrInvalidConfig)
	}

	return nil
}

// Rand returns a PCG source seeded from Seed.
func (c Config) Rand() *rand.Rand {
	return rand.New(rand.NewPCG(c.Seed, c.Seed))
}

// DiffTestOptions converts the difftest section, attaching a source seeded from Seed.
func (c Config) DiffTestOptions() difftest.Options {
	return difftest.Options{
		LeftBound:  c.DiffTest.LeftBound,
		RightBound: c.DiffTest.RightBound,
		NumTests:   c.DiffTest.NumTests,
		Eps:        c.DiffTest.Eps,
		Decimal:    c.DiffTest.Decimal,
		Rand:       c.Rand(),
	}
}

// OptimizerSettings converts the optimizer section.
func (c Config) OptimizerSettings() objective.Settings {
	return objective.Settings{
		Method:            objective.Method(c.Optimizer.Method),
		MaxIterations:     c.Optimizer.MaxIterations,
		GradientThreshold: c.Optimizer.GradientThreshold,
	}
}

// ParseLevel maps debug, info, warn or error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return 0, fmt.Errorf("%s: unknown log level %q: %w", methodValidate, s, ErrInvalidConfig)
}
