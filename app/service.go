package app

import (
	"context"
	"fmt"

	"github.com/fabrica-go/fabrica/app/plugins"
	"github.com/fabrica-go/fabrica/config"
	"github.com/fabrica-go/fabrica/core/document"
	coremetrics "github.com/fabrica-go/fabrica/core/metrics"
	"github.com/fabrica-go/fabrica/core/provider"
	"github.com/fabrica-go/fabrica/infra/logger"
	"github.com/fabrica-go/fabrica/infra/metrics"
	"github.com/fabrica-go/fabrica/internal/eventbus"
)

// Service wires the provider registry, document loader and exporters
// together from configuration.
type Service struct {
	Registry *provider.Registry
	Loader   *document.Loader

	bus         *eventbus.Bus[provider.InstanceCreated]
	log         logger.Logger
	promEnabled bool
	promPort    string
}

// New creates a Service from the configuration.
func New(cfg *config.Config) (*Service, error) {
	logg := logger.New("service")

	var sink coremetrics.Sink = coremetrics.NopSink{}
	if cfg.Metrics.PrometheusEnabled {
		s, err := metrics.NewPromSink()
		if err != nil {
			return nil, fmt.Errorf("prom sink: %w", err)
		}
		sink = s
	}

	bus := eventbus.New[provider.InstanceCreated]()
	reg := provider.NewRegistry(logg, sink, bus)
	for _, pc := range cfg.Providers {
		f, ok := plugins.Providers[pc.Type]
		if !ok {
			return nil, fmt.Errorf("unknown provider type %s", pc.Type)
		}
		p, err := f(pc.Type, pc.Conf)
		if err != nil {
			return nil, fmt.Errorf("provider %s: %w", pc.Type, err)
		}
		if err := reg.RegisterProvider(p); err != nil {
			return nil, fmt.Errorf("provider %s: %w", pc.Type, err)
		}
	}

	return &Service{
		Registry:    reg,
		Loader:      document.NewLoader(reg, logg, sink),
		bus:         bus,
		log:         logg,
		promEnabled: cfg.Metrics.PrometheusEnabled,
		promPort:    cfg.Metrics.PrometheusPort,
	}, nil
}

// Run serves metrics and logs instance creations until the context is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	if s.promEnabled {
		go func() {
			if err := metrics.StartPromServer(ctx, s.promPort); err != nil {
				s.log.Errorf("prom server: %v", err)
			}
		}()
	}
	events := s.bus.Subscribe()
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			s.log.Infof("created %s/%s name=%q", ev.Info.FactoryTag, ev.Info.InstanceTag, ev.Object.ObjectName())
		case <-ctx.Done():
			return nil
		}
	}
}

// Close releases the service's resources.
func (s *Service) Close() error {
	s.bus.Close()
	return nil
}
