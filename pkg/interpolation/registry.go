package interpolation

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var ErrUnknownInterpolator = errors.New("unknown interpolator")

type Factory interface {
	NewInterpolator() Interpolator
}

type FactoryFunc func() Interpolator

func (fn FactoryFunc) NewInterpolator() Interpolator {
	return fn()
}

type factoryWithPriority struct {
	Name     string
	Priority int
	Factory
}

var (
	factoryRegistry       = map[string]factoryWithPriority{}
	factoryRegistryLocker sync.Mutex
)

// Register makes an interpolator available under the given name. Factories
// with higher priority are preferred by NewDefault.
func Register(
	name string,
	priority int,
	factory Factory,
) {
	factoryRegistryLocker.Lock()
	defer factoryRegistryLocker.Unlock()
	if _, ok := factoryRegistry[name]; ok {
		panic(fmt.Errorf("there is already registered an interpolator named %q", name))
	}
	factoryRegistry[name] = factoryWithPriority{
		Name:     name,
		Priority: priority,
		Factory:  factory,
	}
}

func sortedFactories() []factoryWithPriority {
	factoryRegistryLocker.Lock()
	defer factoryRegistryLocker.Unlock()

	var factoriesWithPriorities []factoryWithPriority
	for _, factory := range factoryRegistry {
		factoriesWithPriorities = append(factoriesWithPriorities, factory)
	}
	sort.Slice(factoriesWithPriorities, func(i, j int) bool {
		if factoriesWithPriorities[i].Priority != factoriesWithPriorities[j].Priority {
			return factoriesWithPriorities[i].Priority > factoriesWithPriorities[j].Priority
		}
		return factoriesWithPriorities[i].Name < factoriesWithPriorities[j].Name
	})
	return factoriesWithPriorities
}

// Factories returns the registered factories, highest priority first.
func Factories() []Factory {
	var factories []Factory
	for _, factory := range sortedFactories() {
		factories = append(factories, factory.Factory)
	}
	return factories
}

// Names returns the registered names, highest priority first.
func Names() []string {
	var names []string
	for _, factory := range sortedFactories() {
		names = append(names, factory.Name)
	}
	return names
}

func New(name string) (Interpolator, error) {
	factoryRegistryLocker.Lock()
	factory, ok := factoryRegistry[name]
	factoryRegistryLocker.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w %q, known interpolators: %v", ErrUnknownInterpolator, name, Names())
	}
	return factory.NewInterpolator(), nil
}

// NewDefault returns the interpolator with the highest priority.
func NewDefault() (Interpolator, error) {
	factories := sortedFactories()
	if len(factories) == 0 {
		return nil, fmt.Errorf("%w: no interpolators are registered", ErrUnknownInterpolator)
	}
	return factories[0].NewInterpolator(), nil
}
