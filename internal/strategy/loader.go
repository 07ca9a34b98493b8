package strategy

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Config represents a strategy configuration entry in YAML.
type Config struct {
	ID         string    `yaml:"id"`
	Name       string    `yaml:"name"`
	Type       string    `yaml:"type"`
	Symbol     string    `yaml:"symbol"`
	Parameters yaml.Node `yaml:"parameters"`
	IsActive   bool      `yaml:"is_active"`
}

// ConfigFile represents the top-level YAML structure.
type ConfigFile struct {
	Strategies []Config `yaml:"strategies"`
}

// LoadConfig reads strategies from a YAML file.
func LoadConfig(path string) ([]Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file ConfigFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return file.Strategies, nil
}

// BuildRegistry instantiates every active entry and registers it under its
// symbol. Unknown types, invalid parameters and duplicate symbols are
// configuration errors.
func BuildRegistry(configs []Config) (*Registry, error) {
	reg := NewRegistry()
	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}
		s, err := buildStrategy(cfg)
		if err != nil {
			return nil, err
		}
		if err := reg.Add(cfg.Symbol, s); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// DefaultRegistry is the built-in single-grid setup used when no strategies
// file is present: a BTCUSDT band from 100 to 200 trading 0.001 per signal.
func DefaultRegistry() (*Registry, error) {
	g, err := NewGridStrategy("grid-default", "BTCUSDT", 100.0, 200.0, 0.001)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry()
	if err := reg.Add("BTCUSDT", g); err != nil {
		return nil, err
	}
	return reg, nil
}

func buildStrategy(cfg Config) (Strategy, error) {
	id := cfg.ID
	if id == "" {
		id = uuid.NewString()
	}

	switch cfg.Type {
	case "grid":
		p := struct {
			Lower        float64 `yaml:"lower"`
			Upper        float64 `yaml:"upper"`
			Size         float64 `yaml:"size"`
			MinStepRatio float64 `yaml:"min_step_ratio"`
		}{MinStepRatio: DefaultMinStepRatio}
		if err := decodeParams(cfg, &p); err != nil {
			return nil, err
		}
		return NewGridStrategyWithStep(id, cfg.Symbol, p.Lower, p.Upper, p.Size, p.MinStepRatio)

	case "rsi":
		p := struct {
			Period     int     `yaml:"period"`
			Oversold   float64 `yaml:"oversold"`
			Overbought float64 `yaml:"overbought"`
			Size       float64 `yaml:"size"`
		}{Period: 14, Oversold: 30, Overbought: 70}
		if err := decodeParams(cfg, &p); err != nil {
			return nil, err
		}
		return NewRSIStrategy(id, cfg.Symbol, p.Period, p.Oversold, p.Overbought, p.Size)

	case "demo":
		p := struct {
			Size      float64 `yaml:"size"`
			Threshold float64 `yaml:"threshold"`
		}{Size: 0.001, Threshold: 0.001}
		if err := decodeParams(cfg, &p); err != nil {
			return nil, err
		}
		return NewDemoStrategy(id, cfg.Symbol, p.Size, p.Threshold)

	default:
		return nil, fmt.Errorf("unknown strategy type %q for %s", cfg.Type, cfg.Name)
	}
}

func decodeParams(cfg Config, out interface{}) error {
	if cfg.Parameters.Kind == 0 {
		return nil
	}
	if err := cfg.Parameters.Decode(out); err != nil {
		return fmt.Errorf("strategy %s: invalid parameters: %w", cfg.Name, err)
	}
	return nil
}
