// Package registry provides an in-process resource table for configurations
// loaded by the configfile package. It models the "hand the typed value to
// the application's resource store" half of the load-and-register flow for
// applications that do not bring a dependency-injection container of their
// own.
package registry

import (
	"errors"
	"slices"
	"sync"

	configfile "github.com/MKhiriev/go-config-file"
)

// ErrEmptyName is returned by [Registry.Put] when the resource name is
// empty. Loads through configfile always register under a non-empty type
// name, so this only happens on direct misuse of Put.
var ErrEmptyName = errors.New("resource name is empty")

// Registry is a table of named resources keyed by configuration type name.
// Later Puts replace earlier ones, the way a resource table keeps exactly
// one value per type.
//
// Registry is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	resources map[string]any
}

// New returns an empty Registry.
func New() *Registry {
	return &Registry{
		resources: make(map[string]any),
	}
}

var _ configfile.Store = (*Registry)(nil)

// Put stores value under name, replacing any existing entry for the same
// name. It implements [configfile.Store].
func (r *Registry) Put(name string, value any) error {
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources[name] = value

	return nil
}

// Get returns the resource stored under name, and whether it exists.
func (r *Registry) Get(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.resources[name]

	return value, ok
}

// Names returns the names of all stored resources in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.resources))
	for name := range r.resources {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Resolve returns the resource registered for T, looked up under the same
// name [configfile.LoadAndRegister] stores it by. The second result is
// false when no entry exists or the entry is not a T.
func Resolve[T any](r *Registry) (T, bool) {
	var zero T

	value, ok := r.Get(configfile.TypeName[T]())
	if !ok {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}
