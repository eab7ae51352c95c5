package registry

import (
	"fmt"
	"slices"
	"sync"

	"github.com/MKhiriev/go-web-api-sdk/internal/logger"
	"github.com/MKhiriev/go-web-api-sdk/models"
)

// Registry holds client descriptors by service key and instantiates clients
// lazily. It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[models.ImplementationType]Factory
	entries   map[string]*entry

	logger *logger.Logger
}

// entry memoizes the outcome of the first instantiation, error included.
type entry struct {
	descriptor models.ClientDescriptor

	once     sync.Once
	instance any
	err      error
}

// New creates a Registry that knows the built-in client types.
func New(log *logger.Logger) *Registry {
	if log == nil {
		log = logger.Nop()
	}

	return &Registry{
		factories: builtinFactories(),
		entries:   make(map[string]*entry),
		logger:    log,
	}
}

// RegisterFactory adds a factory for implementationType.
func (r *Registry) RegisterFactory(implementationType models.ImplementationType, factory Factory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.factories[implementationType]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateFactory, implementationType)
	}
	r.factories[implementationType] = factory

	return nil
}

// Register stores desc under its service key. The client is not built until
// the first Get, so an implementation type without a factory is accepted here
// and only fails when the client is requested.
func (r *Registry) Register(desc models.ClientDescriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[desc.ServiceKey]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateService, desc.ServiceKey)
	}
	if _, ok := r.factories[desc.ImplementationType]; !ok {
		r.logger.Warn().
			Str("service_key", desc.ServiceKey).
			Str("implementation_type", string(desc.ImplementationType)).
			Msg("no factory registered for implementation type")
	}

	r.entries[desc.ServiceKey] = &entry{descriptor: desc}

	return nil
}

// Get returns the client registered under key, building it on first use.
// A construction error is returned on every later call as well.
func (r *Registry) Get(key string) (any, error) {
	r.mu.RLock()
	e, ok := r.entries[key]
	var factory Factory
	if ok {
		factory = r.factories[e.descriptor.ImplementationType]
	}
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	// not memoized: the factory may still be registered later
	if factory == nil {
		return nil, fmt.Errorf("%w: %s (service %s)", ErrUnknownImplementation, e.descriptor.ImplementationType, key)
	}

	e.once.Do(func() {
		log := r.logger.WithField("service_key", key)
		e.instance, e.err = factory(e.descriptor.ConstructorArgs, log)
		if e.err != nil {
			e.instance = nil
			e.err = fmt.Errorf("error building service %s: %w", key, e.err)
			log.Err(e.err).Msg("client construction failed")
			return
		}
		log.Debug().
			Str("implementation_type", string(e.descriptor.ImplementationType)).
			Msg("client instantiated")
	})

	return e.instance, e.err
}

// Descriptor returns the descriptor registered under key.
func (r *Registry) Descriptor(key string) (models.ClientDescriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[key]
	if !ok {
		return models.ClientDescriptor{}, false
	}
	return e.descriptor, true
}

// Descriptors returns every registered descriptor sorted by service key.
func (r *Registry) Descriptors() []models.ClientDescriptor {
	keys := r.Keys()

	r.mu.RLock()
	defer r.mu.RUnlock()

	descriptors := make([]models.ClientDescriptor, 0, len(keys))
	for _, key := range keys {
		descriptors = append(descriptors, r.entries[key].descriptor)
	}
	return descriptors
}

// Keys returns the registered service keys in ascending order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	keys := make([]string, 0, len(r.entries))
	for key := range r.entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	return keys
}

// Len returns the number of registered services.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Lookup is Get with a type assertion to T.
func Lookup[T any](r *Registry, key string) (T, error) {
	var zero T

	instance, err := r.Get(key)
	if err != nil {
		return zero, err
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T", ErrTypeMismatch, key, instance)
	}
	return typed, nil
}
