// Package interpolation defines blend curves over frames: each curve maps
// the clamped blend factor to a weight and delegates to the linear
// interpolation core.
package interpolation

import (
	"github.com/xaionaro-go/minfi/pkg/frame"
)

type Interpolator interface {
	// Interpolate returns a newly allocated blend of a and b.
	Interpolate(a, b frame.Frame, t float32) (frame.Frame, error)

	// InterpolateInto writes the blend of a and b into dst.
	InterpolateInto(dst, a, b frame.Frame, t float32) error
}

// WeightFunc maps a blend factor clamped to [0, 1] to the weight of the
// second frame.
type WeightFunc func(t float32) float32

// Curve is an Interpolator defined by its WeightFunc.
type Curve struct {
	Name   string
	Weight WeightFunc
}

var _ Interpolator = (*Curve)(nil)

func (c *Curve) Interpolate(a, b frame.Frame, t float32) (frame.Frame, error) {
	return frame.Interpolate(a, b, c.weight(t))
}

func (c *Curve) InterpolateInto(dst, a, b frame.Frame, t float32) error {
	return frame.InterpolateInto(dst, a, b, c.weight(t))
}

func (c *Curve) weight(t float32) float32 {
	t = frame.Clamp01(t)
	if c.Weight == nil {
		return t
	}
	return c.Weight(t)
}

func (c *Curve) String() string {
	return c.Name
}
