package sequence

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrIndexOutOfBounds is returned for positions outside a sequence.
var ErrIndexOutOfBounds = errors.New("sequence: index out of bounds")

// ErrUnknownImplementation is returned by the registry for unknown names.
var ErrUnknownImplementation = errors.New("sequence: unknown implementation")

// Sequence is an ordered sequence of values addressed by position.
type Sequence[V any] interface {
	// Name identifies the implementation.
	Name() string
	// Len returns the number of values.
	Len() int
	// At returns the value at position i.
	At(i int) (V, error)
	// InsertAt puts v at position i, moving values at positions ≥ i up by one.
	// Valid positions are 0…Len().
	InsertAt(i int, v V) error
	// Set replaces the value at position i.
	Set(i int, v V) error
}

// Factory creates an integer sequence pre-filled with initial values.
type Factory func(initial []int) Sequence[int]

var (
	registryMx sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes a sequence implementation available by name.
// Registering the same name twice replaces the earlier factory.
func Register(name string, factory Factory) {
	registryMx.Lock()
	defer registryMx.Unlock()
	registry[name] = factory
}

// Lookup returns the factory registered for name.
func Lookup(name string) (Factory, error) {
	registryMx.RLock()
	defer registryMx.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, name)
	}
	return f, nil
}

// Names returns the names of all registered implementations, sorted.
func Names() []string {
	registryMx.RLock()
	defer registryMx.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filled creates the sequence registered for name, holding 0…n-1.
func Filled(name string, n int) (Sequence[int], error) {
	f, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	initial := make([]int, n)
	for i := range initial {
		initial[i] = i
	}
	seq := f(initial)
	tracer().Debugf("sequence %s filled with %d values", name, n)
	return seq, nil
}

func init() {
	Register(VectorName, func(initial []int) Sequence[int] { return NewVector(initial) })
	Register(ListName, func(initial []int) Sequence[int] { return NewList(initial) })
	Register(TreeName, func(initial []int) Sequence[int] { return NewTree(initial) })
	Register(PersistentName, func(initial []int) Sequence[int] { return NewPersistent(initial) })
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, i, n)
	}
	return nil
}
