// Package smoothstep eases the blend in and out with the cubic 3t^2 - 2t^3,
// which keeps the endpoints and has zero slope at both of them.
package smoothstep

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
	return t * t * (3 - 2*t)
}
