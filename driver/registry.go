package driver

import (
	"sync"
)

// Well-known driver names.
const (
	// DriverSoft is the in-process software layer (driver/softdriver).
	DriverSoft = "soft"

	// DriverNative is a loader-backed layer calling into a real ICD.
	// No native loader ships with this module; one would register itself
	// under this name from its own package.
	DriverNative = "native"
)

// Factory creates a fresh entry-point table.
type Factory func() *Table

// registry holds registered drivers.
var (
	registryMu sync.RWMutex
	drivers    = make(map[string]Factory)
	// Priority order for default selection (first available wins).
	// Native > Soft: a real layer beats the in-process fallback.
	driverPriority = []string{DriverNative, DriverSoft}
)

// Register registers a driver factory with the given name.
// This is typically called from init() functions in driver packages.
// If a driver with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	drivers[name] = factory
}

// Unregister removes a driver from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(drivers, name)
}

// Available returns a list of registered driver names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(drivers))
	for name := range drivers {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a driver with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := drivers[name]
	return ok
}

// Get returns a table from the named driver.
// Returns nil if the driver is not registered.
func Get(name string) *Table {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := drivers[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns a table from the best available driver based on priority.
// Returns nil if no drivers are registered.
func Default() *Table {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range driverPriority {
		if factory, ok := drivers[name]; ok {
			if t := factory(); t != nil {
				return t
			}
		}
	}

	// Fallback: return first available
	for _, factory := range drivers {
		if t := factory(); t != nil {
			return t
		}
	}

	return nil
}

// MustDefault returns the default table or panics.
func MustDefault() *Table {
	t := Default()
	if t == nil {
		panic("driver: no driver available")
	}
	return t
}
