package bench

import (
	"context"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/interpolation/implementations/linear"
)

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	cfg := Config{T: float32(math.NaN())}
	err := cfg.Validate()
	require.Error(t, err)

	var mErr *multierror.Error
	require.ErrorAs(t, err, &mErr)
	require.Len(t, mErr.Errors, 4)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte("size: 2048\nworkers: 4\nreuse: true\n"), 0640))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	expected := DefaultConfig()
	expected.Size = 2048
	expected.Workers = 4
	expected.Reuse = true
	require.Equal(t, expected, cfg)

	require.NoError(t, os.WriteFile(path, []byte("sise: 2048\n"), 0640))
	_, err = LoadConfig(path)
	require.Error(t, err)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("MINFI_BENCH_ITERATIONS", "3")
	t.Setenv("MINFI_BENCH_T", "0.25")
	t.Setenv("MINFI_BENCH_METHOD", "smoothstep")

	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	require.Equal(t, 3, cfg.Iterations)
	require.Equal(t, float32(0.25), cfg.T)
	require.Equal(t, "smoothstep", cfg.Method)
	require.Equal(t, DefaultConfig().Size, cfg.Size)

	t.Setenv("MINFI_BENCH_SIZE", "many")
	require.Error(t, cfg.ApplyEnv())
}

func expectedChecksum(cfg Config) uint64 {
	var checksum uint64
	for w := 0; w < cfg.Workers; w++ {
		rng := rand.New(rand.NewSource(cfg.Seed + int64(w)))
		a := RandomFrame(rng, cfg.Size)
		b := RandomFrame(rng, cfg.Size)
		for i := 0; i < cfg.Iterations; i++ {
			out, err := frame.Interpolate(a, b, cfg.T)
			if err != nil {
				panic(err)
			}
			checksum += uint64(out[i%len(out)] * 1000)
		}
	}
	return checksum
}

func TestRun(t *testing.T) {
	ctx := context.Background()
	for _, reuse := range []bool{false, true} {
		cfg := DefaultConfig()
		cfg.Size = 1000
		cfg.Iterations = 20
		cfg.Workers = 3
		cfg.Reuse = reuse

		report, err := Run(ctx, cfg, linear.New())
		require.NoError(t, err)
		require.Equal(t, expectedChecksum(cfg), report.Checksum)
		require.Equal(t, cfg, report.Config)
		require.GreaterOrEqual(t, report.ElementsPerSecond, 0.0)
		require.InDelta(t, report.ElementsPerSecond*12/1e9, report.GigabytesPerSecond, 1e-9)

		s := report.String()
		require.True(t, strings.Contains(s, "size=1000, iters=20, t=0.500\n"), s)
		require.True(t, strings.Contains(s, report.RunID.String()), s)
	}
}

func TestRunErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Size = 0
	_, err := Run(context.Background(), cfg, linear.New())
	require.Error(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	cfg = DefaultConfig()
	cfg.Size = 16
	_, err = Run(ctx, cfg, linear.New())
	require.ErrorIs(t, err, context.Canceled)
}
