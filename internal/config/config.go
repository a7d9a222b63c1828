package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"aid-appraisal/internal/model"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Database DatabaseConfig `yaml:"database"`

	// Optional: load shadow-price parameters from a separate YAML preset
	// (e.g. examples/params/*.yaml). If both ParamsFile and Params are
	// provided, Params overrides ParamsFile.
	ParamsFile string       `yaml:"params_file"`
	Params     ParamsConfig `yaml:"params"`
}

type ServerConfig struct {
	Port string `yaml:"port"`
	Env  string `yaml:"env"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ParamsConfig is the YAML shape of one shadow-price parameter set, typically
// a national preset published by the planning ministry.
type ParamsConfig struct {
	Name                     string  `yaml:"name"`
	StandardConversionFactor float64 `yaml:"standard_conversion_factor"`
	ShadowWageRate           float64 `yaml:"shadow_wage_rate"`
	ShadowExchangeRate       float64 `yaml:"shadow_exchange_rate"`
	SocialDiscountRate       float64 `yaml:"social_discount_rate"`
	ProjectLifeYears         int     `yaml:"project_life_years"`
	ConstructionYears        int     `yaml:"construction_years"`
}

func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	// Wage and exchange-rate factors default to the SCF when unset. This
	// keeps presets concise and matches the untagged base case, where the
	// SCF is the only factor that applies.
	if c.Params.ShadowWageRate == 0 {
		c.Params.ShadowWageRate = c.Params.StandardConversionFactor
	}
	if c.Params.ShadowExchangeRate == 0 {
		c.Params.ShadowExchangeRate = c.Params.StandardConversionFactor
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads and merges config, but does not validate it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	// If params_file is set, load it and merge in any explicit overrides
	// from c.Params.
	if c.ParamsFile != "" {
		paramsPath := c.ParamsFile
		if !filepath.IsAbs(paramsPath) {
			// Prefer interpreting relative paths as relative to the config
			// file directory, but fall back to the provided path (relative
			// to cwd) if that doesn't exist.
			cand := filepath.Join(filepath.Dir(path), paramsPath)
			if _, err := os.Stat(cand); err == nil {
				paramsPath = cand
			}
		}
		loaded, err := LoadParamsFile(paramsPath)
		if err != nil {
			return nil, err
		}
		c.Params = MergeParams(loaded, c.Params)
	}
	return &c, nil
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	// Validate shadow-price parameters by constructing model.Parameters.
	if err := c.Params.ToModelParams().Validate(); err != nil {
		return fmt.Errorf("params config invalid: %w", err)
	}
	return nil
}

func (p ParamsConfig) ToModelParams() model.Parameters {
	return model.Parameters{
		StandardConversionFactor: p.StandardConversionFactor,
		ShadowWageRate:           p.ShadowWageRate,
		ShadowExchangeRate:       p.ShadowExchangeRate,
		SocialDiscountRate:       p.SocialDiscountRate,
		ProjectLifeYears:         p.ProjectLifeYears,
		ConstructionYears:        p.ConstructionYears,
	}
}

type paramsFileWrapper struct {
	Params ParamsConfig `yaml:"params"`
}

// LoadParamsFile reads a standalone parameter preset YAML.
func LoadParamsFile(path string) (ParamsConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ParamsConfig{}, err
	}
	var w paramsFileWrapper
	if err := yaml.Unmarshal(raw, &w); err != nil {
		return ParamsConfig{}, err
	}
	return w.Params, nil
}

// MergeParams overlays non-zero fields from override onto base.
// This is used when loading a preset file and then applying overrides from
// the request.
func MergeParams(base, override ParamsConfig) ParamsConfig {
	out := base
	if override.Name != "" {
		out.Name = override.Name
	}
	if override.StandardConversionFactor != 0 {
		out.StandardConversionFactor = override.StandardConversionFactor
	}
	if override.ShadowWageRate != 0 {
		out.ShadowWageRate = override.ShadowWageRate
	}
	if override.ShadowExchangeRate != 0 {
		out.ShadowExchangeRate = override.ShadowExchangeRate
	}
	if override.SocialDiscountRate != 0 {
		out.SocialDiscountRate = override.SocialDiscountRate
	}
	if override.ProjectLifeYears != 0 {
		out.ProjectLifeYears = override.ProjectLifeYears
	}
	if override.ConstructionYears != 0 {
		out.ConstructionYears = override.ConstructionYears
	}
	return out
}
