package plugins

import "github.com/fabrica-go/fabrica/core/provider"

// ProviderFactory builds a factory provider from a raw configuration map.
type ProviderFactory func(name string, conf map[string]any) (provider.FactoryProvider, error)

// Providers holds the registered provider plugin types.
var Providers = map[string]ProviderFactory{}

// RegisterProvider makes a provider plugin type available to the service.
func RegisterProvider(name string, f ProviderFactory) { Providers[name] = f }
