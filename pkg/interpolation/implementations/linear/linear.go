// Package linear provides the plain lerp: the blend weight is the clamped
// blend factor itself.
package linear

import (
	"github.com/xaionaro-go/minfi/pkg/interpolation"
)

func New() interpolation.Interpolator {
	return &interpolation.Curve{
		Name: Name,
	}
}
