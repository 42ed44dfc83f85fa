package peakmodel

import (
	"sort"
	"sync"
)

// registry maps model names to factories. Models register themselves in
// init; name resolution happens once per detector, not per peak.
var registry = struct {
	mu        sync.RWMutex
	factories map[string]Factory
}{factories: make(map[string]Factory)}

// Register adds a named model factory. Registering an existing name
// replaces the previous factory.
func Register(name string, f Factory) {
	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.factories[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	f, ok := registry.factories[name]
	return f, ok
}

// Names returns the registered model names in sorted order.
func Names() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()

	names := make([]string, 0, len(registry.factories))
	for name := range registry.factories {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}
