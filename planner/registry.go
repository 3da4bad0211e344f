package planner

import (
	"fmt"
	"sort"
	"sync"
)

// NotFoundError reports a planner name no registry entry matches. Planner
// resolution failures are never recovered by the agent lifecycle; they
// propagate to the caller as-is.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("planner %q is not registered", e.Name)
}

// Registry resolves planners by name. The zero value is not usable; create
// instances with NewRegistry. All methods are safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	planners map[string]Planner
}

// NewRegistry creates an empty planner registry.
func NewRegistry() *Registry {
	return &Registry{planners: make(map[string]Planner)}
}

// Register adds a planner under its own name. Registering a duplicate name
// is an error; registration is expected to happen once at startup.
func (r *Registry) Register(p Planner) error {
	name := p.Name()
	if name == "" {
		return fmt.Errorf("planner name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.planners[name]; exists {
		return fmt.Errorf("planner %q is already registered", name)
	}
	r.planners[name] = p
	return nil
}

// Get resolves a planner by name, returning *NotFoundError when absent.
func (r *Registry) Get(name string) (Planner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.planners[name]
	if !ok {
		return nil, &NotFoundError{Name: name}
	}
	return p, nil
}

// Names returns the registered planner names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.planners))
	for name := range r.planners {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry backs the package-level convenience functions.
var defaultRegistry = NewRegistry()

// Default returns the process-wide planner registry.
func Default() *Registry { return defaultRegistry }

// Register adds a planner to the default registry.
func Register(p Planner) error { return defaultRegistry.Register(p) }

// Get resolves a planner from the default registry.
func Get(name string) (Planner, error) { return defaultRegistry.Get(name) }
