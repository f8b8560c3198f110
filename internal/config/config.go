// Package config holds the pipeline inputs: the cohomology and bordism
// tables, the witness lower bound, and the physical constants. Defaults
// carry the published values for BGint; a YAML file may replace any of
// them so the pipeline itself never reads shared state.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/playfularchitect/mobius-vacuum-energy-verification/ahss"
	"github.com/playfularchitect/mobius-vacuum-energy-verification/verify"
)

// DimEntry is one cohomology table row: the dimension of H^p plus an
// optional generator label shown in the report.
type DimEntry struct {
	Dim   int    `yaml:"dim"`
	Label string `yaml:"label,omitempty"`
}

// Config mirrors the YAML document and feeds verify.Input.
type Config struct {
	// Degree is the target total degree n of the antidiagonal.
	Degree int `yaml:"degree"`
	// Witness is the externally asserted lower bound on the total rank.
	Witness int `yaml:"witness"`
	// PlanckDensity and ObservedDensity are in kg/m³.
	PlanckDensity   float64 `yaml:"planck_density"`
	ObservedDensity float64 `yaml:"observed_density"`
	// Cohomology maps degree p → dim H^p(BGint; Z2) (+ generator label).
	Cohomology map[int]DimEntry `yaml:"cohomology"`
	// PinRanks maps degree q → rank₂ Ω^Pin+_q.
	PinRanks map[int]int `yaml:"pin_ranks"`
}

// Default returns the published inputs: H*(BGint; Z2) dimensions in
// degrees 2–5, unit Pin+ coefficient ranks in degrees 0–3, witness 7,
// and the ΛCDM consensus observed density against the Planck density.
func Default() Config {
	return Config{
		Degree:          5,
		Witness:         7,
		PlanckDensity:   5.16e96,
		ObservedDensity: 5.83e-27,
		Cohomology: map[int]DimEntry{
			2: {Dim: 2, Label: "<a2, b2>"},
			3: {Dim: 1, Label: "<z3>"},
			4: {Dim: 2, Label: "<x4, y4>"},
			5: {Dim: 2, Label: "<a2∪z3, b2∪z3>"},
		},
		PinRanks: map[int]int{0: 1, 1: 1, 2: 1, 3: 1},
	}
}

// fileConfig mirrors Config with optional fields, so Load can tell
// "absent" from "zero" and replace tables wholesale instead of merging
// file entries into the defaults.
type fileConfig struct {
	Degree          *int             `yaml:"degree"`
	Witness         *int             `yaml:"witness"`
	PlanckDensity   *float64         `yaml:"planck_density"`
	ObservedDensity *float64         `yaml:"observed_density"`
	Cohomology      map[int]DimEntry `yaml:"cohomology"`
	PinRanks        map[int]int      `yaml:"pin_ranks"`
}

// Load reads a YAML file over the defaults. Fields absent from the file
// keep their default values; a present cohomology or pin_ranks block
// replaces the default table wholesale.
func Load(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var file fileConfig
	if err = yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	cfg := Default()
	if file.Degree != nil {
		cfg.Degree = *file.Degree
	}
	if file.Witness != nil {
		cfg.Witness = *file.Witness
	}
	if file.PlanckDensity != nil {
		cfg.PlanckDensity = *file.PlanckDensity
	}
	if file.ObservedDensity != nil {
		cfg.ObservedDensity = *file.ObservedDensity
	}
	if file.Cohomology != nil {
		cfg.Cohomology = file.Cohomology
	}
	if file.PinRanks != nil {
		cfg.PinRanks = file.PinRanks
	}
	return cfg, nil
}

// Input converts the configuration into a validated verify.Input.
// Table validation errors (negative entries) surface here, before any
// computation runs.
func (c Config) Input() (verify.Input, error) {
	dimValues := make(map[int]int, len(c.Cohomology))
	labels := make(map[int]string, len(c.Cohomology))
	for degree, e := range c.Cohomology {
		dimValues[degree] = e.Dim
		if e.Label != "" {
			labels[degree] = e.Label
		}
	}
	dims, err := ahss.NewLabeledTable(dimValues, labels)
	if err != nil {
		return verify.Input{}, fmt.Errorf("cohomology table: %w", err)
	}
	ranks, err := ahss.NewTable(c.PinRanks)
	if err != nil {
		return verify.Input{}, fmt.Errorf("pin rank table: %w", err)
	}
	return verify.Input{
		Degree:          c.Degree,
		Dims:            dims,
		Ranks:           ranks,
		Witness:         c.Witness,
		PlanckDensity:   c.PlanckDensity,
		ObservedDensity: c.ObservedDensity,
	}, nil
}
