package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/fabrica-go/fabrica/core/factory"
	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/core/object"
)

// Group is the standard FactoryProvider: a bundle of named object factories.
// Components that own factories add them to a Group and register the Group
// with the registry.
type Group struct {
	mu        sync.RWMutex
	factories map[string]*factory.Factory[object.Object]
}

// NewGroup returns an empty provider.
func NewGroup() *Group {
	return &Group{factories: make(map[string]*factory.Factory[object.Object])}
}

// Add exposes a factory through this provider. Factory names must be unique
// within the group.
func (g *Group) Add(f *factory.Factory[object.Object]) error {
	if f == nil {
		return fmt.Errorf("factory nil")
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if _, ok := g.factories[f.Name()]; ok {
		return fmt.Errorf("factory already added: %s", f.Name())
	}
	g.factories[f.Name()] = f
	return nil
}

// ProvidedFactories implements FactoryProvider.
func (g *Group) ProvidedFactories() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	names := make([]string, 0, len(g.factories))
	for name := range g.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ProvidedFactoryTags implements FactoryProvider.
func (g *Group) ProvidedFactoryTags(factoryName string) []string {
	g.mu.RLock()
	f, ok := g.factories[factoryName]
	g.mu.RUnlock()
	if !ok {
		return []string{}
	}
	return f.Tags()
}

// CreateInstance implements FactoryProvider. The record's FactoryTag selects
// among the group's own factories when it matches one; otherwise every owned
// factory is tried for the instance tag, so a group registered under an
// alias still constructs.
func (g *Group) CreateInstance(info instance.FactoryInfo) (object.Object, error) {
	if !info.IsValid() {
		return nil, ErrInvalidRecord
	}
	g.mu.RLock()
	f, ok := g.factories[info.FactoryTag]
	if !ok {
		for _, cand := range g.factories {
			for _, tag := range cand.Tags() {
				if tag == info.InstanceTag {
					f, ok = cand, true
					break
				}
			}
			if ok {
				break
			}
		}
	}
	g.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown instance tag %s", info.InstanceTag)
	}
	obj, err := f.Create(info.InstanceTag)
	if err != nil {
		return nil, err
	}
	if info.InstanceName != "" {
		obj.SetObjectName(info.InstanceName)
	}
	return obj, nil
}
