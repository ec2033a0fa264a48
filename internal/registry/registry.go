// Package registry is the extension point through which player backends are
// advertised to the host and instantiated by name.
package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/genricoloni/gtplayer/internal/domain"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Deps are the collaborators handed to every backend factory
type Deps struct {
	Logger   *zap.Logger
	Loop     domain.Scheduler
	Elements domain.ElementFactory
	Options  domain.BackendOptions
}

// Factory creates a backend instance
type Factory func(deps Deps) (domain.PlayerBackend, error)

// Registry maps backend names to factories
type Registry struct {
	logger    *zap.Logger
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry
func NewRegistry(logger *zap.Logger) *Registry {
	return &Registry{
		logger:    logger,
		factories: make(map[string]Factory),
	}
}

// Register advertises a backend. Registering a known name replaces the factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		r.logger.Warn("Replacing registered player backend", zap.String("backend", name))
	}
	r.factories[name] = factory
	r.logger.Debug("Player backend registered", zap.String("backend", name))
}

// Lookup returns the factory registered under name
func (r *Registry) Lookup(name string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, ok := r.factories[name]
	return factory, ok
}

// Names returns the registered backend names in sorted order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := lo.Keys(r.factories)
	slices.Sort(names)
	return names
}

// New instantiates the backend registered under name
func (r *Registry) New(name string, deps Deps) (domain.PlayerBackend, error) {
	factory, ok := r.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("unknown player backend %q (available: %v)", name, r.Names())
	}

	backend, err := factory(deps)
	if err != nil {
		return nil, fmt.Errorf("failed to create player backend %q: %w", name, err)
	}

	r.logger.Info("Player backend created", zap.String("backend", name))
	return backend, nil
}
