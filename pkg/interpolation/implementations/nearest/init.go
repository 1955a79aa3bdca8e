package nearest

import (
	"github.com/xaionaro-go/minfi/pkg/interpolation"
)

const (
	Name     = "nearest"
	Priority = 10
)

func init() {
	interpolation.Register(Name, Priority, interpolation.FactoryFunc(New))
}
