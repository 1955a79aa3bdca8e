package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/facebookincubator/go-belt"
	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/facebookincubator/go-belt/tool/logger/implementation/logrus"
	"github.com/spf13/pflag"
	"github.com/xaionaro-go/minfi/pkg/bench"
	"github.com/xaionaro-go/minfi/pkg/flagargs"
	"github.com/xaionaro-go/minfi/pkg/interpolation"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/linear"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/nearest"
	_ "github.com/xaionaro-go/minfi/pkg/interpolation/implementations/smoothstep"
)

func usage(flags *pflag.FlagSet) {
	argv0 := filepath.Base(os.Args[0])
	fmt.Printf("%s — simple interpolation throughput benchmark\n\n", argv0)
	fmt.Printf("Usage: %s [flags] [size] [iters] [t]\n", argv0)
	fmt.Printf("  size : elements per frame (default 1000000)\n")
	fmt.Printf("  iters: number of iterations (default 10)\n")
	fmt.Printf("  t    : interpolation factor, clamped to [0,1] (default 0.5)\n")
	fmt.Printf("\nEnvironment: MINFI_BENCH_{SIZE,ITERATIONS,T,WORKERS,SEED,METHOD,REUSE}\n")
	fmt.Printf("\nFlags:\n%s", flags.FlagUsages())
}

type cliFlags struct {
	LoggerLevel logger.Level
	ConfigPath  string
	Workers     int
	Seed        int64
	Method      string
	Reuse       bool
}

func newFlagSet(name string, errorHandling pflag.ErrorHandling) (*pflag.FlagSet, *cliFlags) {
	flags := pflag.NewFlagSet(name, errorHandling)
	f := &cliFlags{LoggerLevel: logger.LevelWarning}
	flags.Var(&f.LoggerLevel, "log-level", "Log level")
	flags.StringVar(&f.ConfigPath, "config", "", "YAML file with the benchmark config")
	flags.IntVar(&f.Workers, "workers", 1, "amount of goroutines interpolating concurrently, each with its own frames")
	flags.Int64Var(&f.Seed, "seed", 123, "seed of the random frames")
	flags.StringVar(&f.Method, "method", "linear", "interpolation curve, one of: "+strings.Join(interpolation.Names(), ", "))
	flags.BoolVar(&f.Reuse, "reuse", false, "write into a preallocated output frame instead of allocating one per iteration")
	return flags, f
}

func main() {
	flags, f := newFlagSet(filepath.Base(os.Args[0]), pflag.ExitOnError)
	flags.Usage = func() { usage(flags) }
	assertNoError(flags.Parse(flagargs.Normalize(flags, os.Args[1:])))

	l := logrus.Default().WithLevel(f.LoggerLevel)
	ctx := logger.CtxWithLogger(context.Background(), l)
	logger.Default = func() logger.Logger {
		return l
	}
	defer belt.Flush(ctx)

	cfg, err := f.config(flags)
	assertNoError(err)
	logger.Debugf(ctx, "config: %#+v", cfg)

	interpolator, err := interpolation.New(cfg.Method)
	assertNoError(err)

	report, err := bench.Run(ctx, cfg, interpolator)
	assertNoError(err)
	fmt.Print(report.String())
}

// config assembles the benchmark config; every source overrides the
// previous one: defaults, the YAML file, the environment, the flags
// explicitly set, the positional arguments.
func (f *cliFlags) config(flags *pflag.FlagSet) (bench.Config, error) {
	cfg := bench.DefaultConfig()
	if f.ConfigPath != "" {
		var err error
		cfg, err = bench.LoadConfig(f.ConfigPath)
		if err != nil {
			return cfg, err
		}
	}
	if err := cfg.ApplyEnv(); err != nil {
		return cfg, err
	}

	if flags.Changed("workers") {
		cfg.Workers = f.Workers
	}
	if flags.Changed("seed") {
		cfg.Seed = f.Seed
	}
	if flags.Changed("method") {
		cfg.Method = f.Method
	}
	if flags.Changed("reuse") {
		cfg.Reuse = f.Reuse
	}
	if err := applyArgs(&cfg, flags.Args()); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyArgs(cfg *bench.Config, args []string) error {
	if len(args) > 3 {
		return fmt.Errorf("expected at most 3 positional arguments, got %d", len(args))
	}
	if len(args) >= 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("unable to parse size '%s': %w", args[0], err)
		}
		cfg.Size = size
	}
	if len(args) >= 2 {
		iters, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("unable to parse iters '%s': %w", args[1], err)
		}
		cfg.Iterations = iters
	}
	if len(args) >= 3 {
		t, err := strconv.ParseFloat(args[2], 32)
		if err != nil {
			return fmt.Errorf("unable to parse t '%s': %w", args[2], err)
		}
		cfg.T = float32(t)
	}
	return nil
}

func assertNoError(err error) {
	if err != nil {
		panic(err)
	}
}
