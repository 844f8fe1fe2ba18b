// Package metrics defines the sink contract used to count record codec and
// construction outcomes. Implementations live under infra/metrics.
package metrics

// Sink receives one sample per record import and per construction attempt.
type Sink interface {
	// RecordImport counts a record decoded from the given format ("binary"
	// or "xml"). ok is false for framing failures.
	RecordImport(format string, ok bool)
	// RecordCreate counts a construction attempt routed through a provider.
	RecordCreate(factoryTag, instanceTag string, ok bool)
}

// NopSink discards all samples.
type NopSink struct{}

func (NopSink) RecordImport(string, bool)         {}
func (NopSink) RecordCreate(string, string, bool) {}

// MultiSink fans samples out to several sinks.
type MultiSink struct {
	sinks []Sink
}

// NewMultiSink returns a sink forwarding to all given sinks.
func NewMultiSink(sinks ...Sink) *MultiSink {
	return &MultiSink{sinks: sinks}
}

func (m *MultiSink) RecordImport(format string, ok bool) {
	for _, s := range m.sinks {
		s.RecordImport(format, ok)
	}
}

func (m *MultiSink) RecordCreate(factoryTag, instanceTag string, ok bool) {
	for _, s := range m.sinks {
		s.RecordCreate(factoryTag, instanceTag, ok)
	}
}
