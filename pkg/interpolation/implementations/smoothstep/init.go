package smoothstep

import (
	"github.com/xaionaro-go/minfi/pkg/interpolation"
)

const (
	Name     = "smoothstep"
	Priority = 50
)

func init() {
	interpolation.Register(Name, Priority, interpolation.FactoryFunc(New))
}
