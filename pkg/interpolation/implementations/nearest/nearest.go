// Package nearest picks whichever frame is closer to the blend factor
// instead of mixing them.
package nearest

import (
	"github.com/xaionaro-go/minfi/pkg/interpolation"
)

func New() interpolation.Interpolator {
	return &interpolation.Curve{
		Name:   Name,
		Weight: Weight,
	}
}

func Weight(t float32) float32 {
	if t < 0.5 {
		return 0
	}
	return 1
}
