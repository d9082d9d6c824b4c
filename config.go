package main

import (
	"errors"
	"fmt"
	"io/ioutil"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v2"

	"github.com/vimeo/go-movecount/movestats"
)

type Config struct {
	Buckets   int       `yaml:"buckets"`
	Quantiles []float64 `yaml:"quantiles"`
	Details   bool      `yaml:"details"`
	LogLevel  string    `yaml:"log_level"`
}

func DefaultConfig() Config {
	return Config{
		Buckets:  movestats.DefaultBuckets,
		LogLevel: "warn",
	}
}

// LoadConfig reads the YAML file at path over the defaults. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (config Config, err error) {
	config = DefaultConfig()
	if path == "" {
		return
	}
	configYaml, err := ioutil.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading config: %w", err)
	}
	if err = yaml.UnmarshalStrict(configYaml, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err = config.Validate(); err != nil {
		return config, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return
}

func (config *Config) Validate() error {
	var errs error
	if config.Buckets < 1 {
		errs = multierr.Append(errs, errors.New("buckets must be at least 1"))
	}
	for _, q := range config.Quantiles {
		if q <= 0 || q >= 1 {
			errs = multierr.Append(errs, fmt.Errorf("quantile %g must be between 0 and 1", q))
		}
	}
	if _, err := config.Level(); err != nil {
		errs = multierr.Append(errs, err)
	}
	return errs
}

func (config *Config) Level() (zapcore.Level, error) {
	return zapcore.ParseLevel(config.LogLevel)
}
