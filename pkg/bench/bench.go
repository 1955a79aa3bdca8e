package bench

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/facebookincubator/go-belt/tool/logger"
	"github.com/google/uuid"
	"github.com/xaionaro-go/minfi/pkg/frame"
	"github.com/xaionaro-go/minfi/pkg/interpolation"
	"github.com/xaionaro-go/observability"
)

const (
	// BytesPerElement is the size of a float32 sample.
	BytesPerElement = 4

	// TouchesPerElement counts reading a, reading b and writing the output.
	TouchesPerElement = 3
)

// RandomFrame returns n samples uniformly distributed in [0, 1).
func RandomFrame(rng *rand.Rand, n int) frame.Frame {
	result := make(frame.Frame, n)
	for idx := range result {
		result[idx] = rng.Float32()
	}
	return result
}

type worker struct {
	a, b     frame.Frame
	out      frame.Frame
	checksum uint64
	err      error
}

func newWorker(cfg Config, idx int) *worker {
	rng := rand.New(rand.NewSource(cfg.Seed + int64(idx)))
	w := &worker{
		a: RandomFrame(rng, cfg.Size),
		b: RandomFrame(rng, cfg.Size),
	}
	if cfg.Reuse {
		w.out = make(frame.Frame, cfg.Size)
	}
	return w
}

func (w *worker) interpolate(interpolator interpolation.Interpolator, t float32) (frame.Frame, error) {
	if w.out == nil {
		return interpolator.Interpolate(w.a, w.b, t)
	}
	return w.out, interpolator.InterpolateInto(w.out, w.a, w.b, t)
}

func (w *worker) run(ctx context.Context, cfg Config, interpolator interpolation.Interpolator) error {
	for i := 0; i < cfg.Iterations; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		out, err := w.interpolate(interpolator, cfg.T)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		// consuming one value per iteration keeps the call from being optimized out
		w.checksum += uint64(out[i%len(out)] * 1000)
	}
	return nil
}

// Run interpolates random frames cfg.Iterations times in each of
// cfg.Workers goroutines and reports the throughput. Every worker owns its
// frames.
func Run(
	ctx context.Context,
	cfg Config,
	interpolator interpolation.Interpolator,
) (_ret *Report, _err error) {
	logger.Debugf(ctx, "Run: %#+v", cfg)
	defer func() { logger.Debugf(ctx, "/Run: %v", _err) }()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	workers := make([]*worker, cfg.Workers)
	for idx := range workers {
		workers[idx] = newWorker(cfg, idx)
		warm, err := workers[idx].interpolate(interpolator, cfg.T)
		if err != nil {
			return nil, fmt.Errorf("warm-up of worker %d failed: %w", idx, err)
		}
		logger.Tracef(ctx, "worker %d warmed up, first value: %v", idx, warm[0])
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var wg sync.WaitGroup
	startTS := time.Now()
	for _, w := range workers {
		wg.Add(1)
		observability.Go(ctx, func(ctx context.Context) {
			defer wg.Done()
			w.err = w.run(ctx, cfg, interpolator)
		})
	}
	wg.Wait()
	elapsed := time.Since(startTS)

	report := &Report{
		RunID:   uuid.New(),
		Config:  cfg,
		Elapsed: elapsed,
	}
	for idx, w := range workers {
		if w.err != nil {
			return nil, fmt.Errorf("worker %d failed: %w", idx, w.err)
		}
		report.Checksum += w.checksum
	}

	totalElements := float64(cfg.Size) * float64(cfg.Iterations) * float64(cfg.Workers)
	if seconds := elapsed.Seconds(); seconds > 0 {
		report.ElementsPerSecond = totalElements / seconds
	}
	report.GigabytesPerSecond = report.ElementsPerSecond * BytesPerElement * TouchesPerElement / 1e9
	logger.Debugf(ctx, "run %s took %v", report.RunID, elapsed)
	return report, nil
}
