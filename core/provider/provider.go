// Package provider defines the FactoryProvider capability and the registry
// that routes construction requests to providers by factory tag.
package provider

import (
	"errors"

	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/core/object"
)

// ErrInvalidRecord is returned when a record fails instance.FactoryInfo.IsValid.
var ErrInvalidRecord = errors.New("record not valid for construction")

// ErrUnknownFactory is returned by the registry when no provider is
// registered for a record's factory tag.
var ErrUnknownFactory = errors.New("no provider registered for factory")

// FactoryProvider is implemented by any component exposing one or more named
// factories. Implementations own their factories' lifetimes; the capability
// itself is a stateless lookup surface.
//
// Routing a record to the right provider is the registry's job; a provider
// never checks that a record's FactoryTag matches itself.
type FactoryProvider interface {
	// ProvidedFactories names every factory this provider exposes. The
	// result is stable for the provider's lifetime and sorted.
	ProvidedFactories() []string
	// ProvidedFactoryTags lists the constructible tags of the named
	// factory. An unknown factory yields an empty slice, never an error.
	ProvidedFactoryTags(factoryName string) []string
	// CreateInstance builds the variant identified by info.InstanceTag,
	// assigns it info.InstanceName when non-empty, and returns ownership of
	// it. It fails when the tag is not constructible here or when info is
	// invalid.
	CreateInstance(info instance.FactoryInfo) (object.Object, error)
}
