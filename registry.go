package tabular

import (
	"reflect"
	"sync"
)

var (
	registry   = make(map[reflect.Type]*Schema)
	registryMu sync.RWMutex
)

// lookup returns the cached schema for rt.
func lookup(rt reflect.Type) (*Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	s, ok := registry[rt]
	return s, ok
}

// store caches s for rt unless another goroutine got there first, in which
// case the cached schema wins so every caller shares one instance.
func store(rt reflect.Type, s *Schema) *Schema {
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[rt]; ok {
		return cached
	}
	registry[rt] = s
	return s
}

// Reset clears the schema cache.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[reflect.Type]*Schema)
}
