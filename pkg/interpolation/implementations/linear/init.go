package linear

import (
	"github.com/xaionaro-go/minfi/pkg/interpolation"
)

const (
	Name     = "linear"
	Priority = 100
)

func init() {
	interpolation.Register(Name, Priority, interpolation.FactoryFunc(New))
}
