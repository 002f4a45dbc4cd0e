package binding

import (
	"fmt"
	"sort"
	"sync"
)

// ApplicationFactory builds a fresh application graph.
type ApplicationFactory func() *Application

var (
	registryMu           sync.RWMutex
	applicationFactories = map[string]ApplicationFactory{}
	overrideObjects      = map[string]any{}
)

// RegisterApplication makes an application available under key to the
// command line tool. It panics if key is registered twice or factory is nil.
func RegisterApplication(key string, factory ApplicationFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if factory == nil {
		panic("binding: RegisterApplication factory is nil")
	}

	if _, dup := applicationFactories[key]; dup {
		panic("binding: RegisterApplication called twice for " + key)
	}

	applicationFactories[key] = factory
}

// LookupApplication returns the factory registered under key.
func LookupApplication(key string) (ApplicationFactory, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	f, ok := applicationFactories[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownApplication, key)
	}

	return f, nil
}

// Applications returns the sorted keys of registered applications.
func Applications() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return sortedKeys(applicationFactories)
}

// RegisterOverrides makes a platform overrides object available under key.
// It panics if key is registered twice or v is nil.
func RegisterOverrides(key string, v any) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if v == nil {
		panic("binding: RegisterOverrides value is nil")
	}

	if _, dup := overrideObjects[key]; dup {
		panic("binding: RegisterOverrides called twice for " + key)
	}

	overrideObjects[key] = v
}

// LookupOverrides returns the overrides object registered under key.
func LookupOverrides(key string) (any, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	v, ok := overrideObjects[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownOverrides, key)
	}

	return v, nil
}

// Overrides returns the sorted keys of registered overrides objects.
func Overrides() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	return sortedKeys(overrideObjects)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}
