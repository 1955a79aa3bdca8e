package bench

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Report struct {
	RunID              uuid.UUID
	Config             Config
	Elapsed            time.Duration
	ElementsPerSecond  float64
	GigabytesPerSecond float64
	Checksum           uint64
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run=%s, method=%s, workers=%d, reuse=%v\n", r.RunID, r.Config.Method, r.Config.Workers, r.Config.Reuse)
	fmt.Fprintf(&b, "size=%d, iters=%d, t=%.3f\n", r.Config.Size, r.Config.Iterations, r.Config.T)
	fmt.Fprintf(&b, "time(s)=%.3f, elems/s=%.3f, approx GB/s=%.3f\n", r.Elapsed.Seconds(), r.ElementsPerSecond, r.GigabytesPerSecond)
	fmt.Fprintf(&b, "checksum=%d\n", r.Checksum)
	return b.String()
}
