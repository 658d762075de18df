// Package config loads the evaluator's tunable knobs (spec.md §6) from
// a YAML document, grounded on the teacher's
// internal/evaluator/builtins_yaml.go use of gopkg.in/yaml.v3
// (Unmarshal into a plain Go struct).
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/glyphlang/glyph/internal/signal"
	"github.com/glyphlang/glyph/internal/stack"
)

// File is the on-disk shape of a Glyph configuration document.
type File struct {
	EvalLimit  int64 `yaml:"eval_limit"`
	EvalDose   int64 `yaml:"eval_dose"`
	TraceLevel int   `yaml:"trace_level"`
	TraceFunc  bool  `yaml:"trace_function"`
	StackLimit int   `yaml:"stack_limit"`
	BootPhase  int   `yaml:"boot_phase"`
}

// Load reads and parses a YAML config file at path into a
// signal.Config, applying the same defaults NewTask would apply to a
// zero-value Config for any field the file omits.
func Load(path string) (signal.Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return signal.Config{}, err
	}
	return Parse(raw)
}

// Parse decodes a YAML document into a signal.Config.
func Parse(raw []byte) (signal.Config, error) {
	var f File
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return signal.Config{}, err
	}
	cfg := signal.Config{
		EvalLimit:  f.EvalLimit,
		EvalDose:   f.EvalDose,
		TraceLevel: f.TraceLevel,
		StackLimit: f.StackLimit,
		BootPhase:  f.BootPhase,
	}
	if f.TraceFunc {
		cfg.TraceFlags |= signal.TraceFlagFunction
	}
	if cfg.StackLimit <= 0 {
		cfg.StackLimit = stack.DefaultLimit
	}
	return cfg, nil
}

// Marshal renders cfg back to YAML in the same File shape Parse reads.
func Marshal(cfg signal.Config) ([]byte, error) {
	f := File{
		EvalLimit:  cfg.EvalLimit,
		EvalDose:   cfg.EvalDose,
		TraceLevel: cfg.TraceLevel,
		TraceFunc:  cfg.TraceFlags&signal.TraceFlagFunction != 0,
		StackLimit: cfg.StackLimit,
		BootPhase:  cfg.BootPhase,
	}
	return yaml.Marshal(f)
}
