package factory

import (
	"fmt"
	"sort"
	"sync"

	"github.com/go-viper/mapstructure/v2"
)

// Constructor builds a new instance of T.
type Constructor[T any] func() (T, error)

// Factory is a single named factory: a registry of constructors keyed by
// instance tag. The zero value is not usable; create one with New.
type Factory[T any] struct {
	name  string
	mu    sync.RWMutex
	ctors map[string]Constructor[T]
}

// New returns an empty factory with the given name.
func New[T any](name string) *Factory[T] {
	return &Factory[T]{name: name, ctors: make(map[string]Constructor[T])}
}

// Name returns the factory name.
func (f *Factory[T]) Name() string { return f.name }

// Register adds a constructor for the given instance tag.
func (f *Factory[T]) Register(tag string, ctor Constructor[T]) error {
	if ctor == nil {
		return fmt.Errorf("constructor nil for %s", tag)
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.ctors[tag]; ok {
		return fmt.Errorf("constructor already registered for %s", tag)
	}
	f.ctors[tag] = ctor
	return nil
}

// Tags lists the registered instance tags in sorted order.
func (f *Factory[T]) Tags() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	tags := make([]string, 0, len(f.ctors))
	for tag := range f.ctors {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Create instantiates the variant registered under tag.
func (f *Factory[T]) Create(tag string) (T, error) {
	f.mu.RLock()
	ctor, ok := f.ctors[tag]
	f.mu.RUnlock()
	if !ok {
		var zero T
		return zero, fmt.Errorf("unknown instance tag %s in factory %s", tag, f.name)
	}
	return ctor()
}

// Decode fills out the provided struct from a raw config map using json tags.
func Decode(data map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "json", Result: out})
	if err != nil {
		return err
	}
	return dec.Decode(data)
}
