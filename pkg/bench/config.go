// Package bench measures the throughput of frame interpolation.
package bench

import (
	"bytes"
	"fmt"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

type Config struct {
	// Size is the amount of elements per frame.
	Size int `yaml:"size" envconfig:"MINFI_BENCH_SIZE"`

	// Iterations is the amount of timed interpolations per worker.
	Iterations int `yaml:"iterations" envconfig:"MINFI_BENCH_ITERATIONS"`

	T       float32 `yaml:"t" envconfig:"MINFI_BENCH_T"`
	Workers int     `yaml:"workers" envconfig:"MINFI_BENCH_WORKERS"`
	Seed    int64   `yaml:"seed" envconfig:"MINFI_BENCH_SEED"`
	Method  string  `yaml:"method" envconfig:"MINFI_BENCH_METHOD"`

	// Reuse makes every worker write into one preallocated output frame
	// instead of allocating a new one per iteration.
	Reuse bool `yaml:"reuse" envconfig:"MINFI_BENCH_REUSE"`
}

func DefaultConfig() Config {
	return Config{
		Size:       1_000_000,
		Iterations: 10,
		T:          0.5,
		Workers:    1,
		Seed:       123,
		Method:     "linear",
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("unable to read the config '%s': %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, fmt.Errorf("unable to parse the config '%s': %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides the fields for which a MINFI_BENCH_* environment
// variable is set.
func (cfg *Config) ApplyEnv() error {
	if err := envconfig.Process("", cfg); err != nil {
		return fmt.Errorf("unable to apply the environment variables: %w", err)
	}
	return nil
}

func (cfg Config) Validate() error {
	var mErr *multierror.Error
	if cfg.Size <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("size must be positive, got %d", cfg.Size))
	}
	if cfg.Iterations <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("iterations must be positive, got %d", cfg.Iterations))
	}
	if cfg.Workers <= 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("workers must be positive, got %d", cfg.Workers))
	}
	if cfg.Method == "" {
		mErr = multierror.Append(mErr, fmt.Errorf("method is mandatory"))
	}
	return mErr.ErrorOrNil()
}
