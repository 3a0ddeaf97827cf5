// Package generator provides a registry of pseudo-random generator
// algorithms, keyed by name. Algorithm families live in subpackages and
// register their variants during init, so importing a family makes its
// generators constructible by name.
package generator

import (
	"errors"
	"sort"
	"sync"

	"github.com/randforge/randforge/bitgen"
)

var (
	driversM sync.RWMutex
	drivers  = make(map[string]Driver)
)

// ErrDriverDoesNotExist is the error returned by New when a generator
// driver with that name does not exist.
var ErrDriverDoesNotExist = errors.New("generator driver with that name does not exist")

// Driver is the interface used to construct instances of one generator
// algorithm.
type Driver interface {
	// New constructs a generator from the given seed bytes.
	New(seed []byte) (bitgen.Generator, error)

	// SeedSize returns the minimum seed length in bytes.
	SeedSize() int
}

// Register makes a Driver available by the provided name.
//
// If called twice with the same name, the name is blank, or if the
// provided Driver is nil, this function panics.
func Register(name string, d Driver) {
	if name == "" {
		panic("generator: could not register a Driver with an empty name")
	}
	if d == nil {
		panic("generator: could not register a nil Driver")
	}

	driversM.Lock()
	defer driversM.Unlock()

	if _, dup := drivers[name]; dup {
		panic("generator: Register called twice for " + name)
	}

	drivers[name] = d
}

// New constructs a generator with the given name from the list of
// registered Drivers, seeded with seed.
//
// If a driver does not exist, returns ErrDriverDoesNotExist.
func New(name string, seed []byte) (bitgen.Generator, error) {
	driversM.RLock()
	defer driversM.RUnlock()

	d, ok := drivers[name]
	if !ok {
		return nil, ErrDriverDoesNotExist
	}

	return d.New(seed)
}

// SeedSize returns the minimum seed length in bytes for the named
// driver.
func SeedSize(name string) (int, error) {
	driversM.RLock()
	defer driversM.RUnlock()

	d, ok := drivers[name]
	if !ok {
		return 0, ErrDriverDoesNotExist
	}

	return d.SeedSize(), nil
}

// Names returns the sorted names of all registered drivers.
func Names() []string {
	driversM.RLock()
	defer driversM.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
