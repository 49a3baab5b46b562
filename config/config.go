package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/uyouii/display-intervals/model"
	"gopkg.in/yaml.v2"
)

const DefaultStrategy = model.StrategyZscale

// LoadConfig reads an interval config from a YAML file.
func LoadConfig(path string) (*model.IntervalConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return cfg, nil
}

func ParseConfig(data []byte) (*model.IntervalConfig, error) {
	cfg := &model.IntervalConfig{}
	if err := yaml.UnmarshalStrict(data, cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

func ApplyDefaults(cfg *model.IntervalConfig) {
	if cfg.Strategy == "" {
		cfg.Strategy = DefaultStrategy
	}
}
