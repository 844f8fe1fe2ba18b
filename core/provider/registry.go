package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/core/logger"
	"github.com/fabrica-go/fabrica/core/metrics"
	"github.com/fabrica-go/fabrica/core/object"
	"github.com/fabrica-go/fabrica/internal/eventbus"
)

// InstanceCreated is published on the registry bus after every successful
// construction.
type InstanceCreated struct {
	Info   instance.FactoryInfo
	Object object.Object
}

// Registry maps factory tags to the providers owning them. It is the
// component document loaders resolve records against; pass it explicitly to
// whatever needs factory resolution.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]FactoryProvider
	log       logger.Logger
	sink      metrics.Sink
	bus       *eventbus.Bus[InstanceCreated]
}

// NewRegistry returns an empty registry. sink and bus may be nil when
// metrics or creation events are not wanted.
func NewRegistry(log logger.Logger, sink metrics.Sink, bus *eventbus.Bus[InstanceCreated]) *Registry {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Registry{
		providers: make(map[string]FactoryProvider),
		log:       log,
		sink:      sink,
		bus:       bus,
	}
}

// RegisterProvider registers p under every factory it provides. A factory
// tag already claimed by another provider is an error and nothing is
// registered.
func (r *Registry) RegisterProvider(p FactoryProvider) error {
	if p == nil {
		return fmt.Errorf("provider nil")
	}
	names := p.ProvidedFactories()
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, name := range names {
		if _, ok := r.providers[name]; ok {
			return fmt.Errorf("factory already registered: %s", name)
		}
	}
	for _, name := range names {
		r.providers[name] = p
	}
	return nil
}

// Provider returns the provider registered for the given factory tag.
func (r *Registry) Provider(factoryTag string) (FactoryProvider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[factoryTag]
	return p, ok
}

// Factories lists all registered factory tags in sorted order.
func (r *Registry) Factories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tags := make([]string, 0, len(r.providers))
	for tag := range r.providers {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Tags lists the constructible tags of the named factory. An unknown
// factory yields an empty slice.
func (r *Registry) Tags(factoryTag string) []string {
	p, ok := r.Provider(factoryTag)
	if !ok {
		return []string{}
	}
	return p.ProvidedFactoryTags(factoryTag)
}

// CreateInstance resolves the record's factory tag to a provider, constructs
// the instance and assigns its name. Callers own the returned instance.
func (r *Registry) CreateInstance(info instance.FactoryInfo) (object.Object, error) {
	if !info.IsValid() {
		r.sink.RecordCreate(info.FactoryTag, info.InstanceTag, false)
		return nil, ErrInvalidRecord
	}
	p, ok := r.Provider(info.FactoryTag)
	if !ok {
		r.errorf("create %s/%s: no provider", info.FactoryTag, info.InstanceTag)
		r.sink.RecordCreate(info.FactoryTag, info.InstanceTag, false)
		return nil, fmt.Errorf("%w: %s", ErrUnknownFactory, info.FactoryTag)
	}
	obj, err := p.CreateInstance(info)
	if err != nil {
		r.errorf("create %s/%s: %v", info.FactoryTag, info.InstanceTag, err)
		r.sink.RecordCreate(info.FactoryTag, info.InstanceTag, false)
		return nil, err
	}
	// Providers assign the name themselves; reapply here so providers that
	// skip it still honor the record.
	if info.InstanceName != "" && obj.ObjectName() == "" {
		obj.SetObjectName(info.InstanceName)
	}
	r.sink.RecordCreate(info.FactoryTag, info.InstanceTag, true)
	if r.bus != nil {
		r.bus.Publish(InstanceCreated{Info: info, Object: obj})
	}
	return obj, nil
}

func (r *Registry) errorf(format string, args ...any) {
	if r.log != nil {
		r.log.Errorf(format, args...)
	}
}
