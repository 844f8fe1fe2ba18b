package metrics

import (
	"strconv"

	coremetrics "github.com/fabrica-go/fabrica/core/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

// PromSink records codec and construction outcomes as Prometheus counters.
type PromSink struct {
	imports *prometheus.CounterVec
	creates *prometheus.CounterVec
}

// NewPromSink registers the counters on the default Prometheus registerer.
func NewPromSink() (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers the counters on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	imports := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fabrica_record_imports_total",
		Help: "Total number of identity records imported",
	}, []string{"format", "ok"})
	creates := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "fabrica_instance_creates_total",
		Help: "Total number of instance construction attempts",
	}, []string{"factory", "tag", "ok"})

	if err := reg.Register(imports); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			imports = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(creates); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			creates = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	return &PromSink{imports: imports, creates: creates}, nil
}

// RecordImport implements metrics.Sink.
func (s *PromSink) RecordImport(format string, ok bool) {
	s.imports.WithLabelValues(format, strconv.FormatBool(ok)).Inc()
}

// RecordCreate implements metrics.Sink.
func (s *PromSink) RecordCreate(factoryTag, instanceTag string, ok bool) {
	s.creates.WithLabelValues(factoryTag, instanceTag, strconv.FormatBool(ok)).Inc()
}
