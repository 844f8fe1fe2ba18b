package document

import (
	"io"

	"github.com/fabrica-go/fabrica/core/instance"
	"github.com/fabrica-go/fabrica/core/logger"
	"github.com/fabrica-go/fabrica/core/metrics"
	"github.com/fabrica-go/fabrica/core/object"
	"github.com/fabrica-go/fabrica/core/provider"
)

// Loader reads identity documents and rebuilds their objects through a
// provider registry.
type Loader struct {
	reg  *provider.Registry
	log  logger.Logger
	sink metrics.Sink
}

// NewLoader returns a loader resolving records against reg. sink may be nil.
func NewLoader(reg *provider.Registry, log logger.Logger, sink metrics.Sink) *Loader {
	if sink == nil {
		sink = metrics.NopSink{}
	}
	return &Loader{reg: reg, log: log, sink: sink}
}

// LoadBinary reads a binary document. A framing failure aborts the load;
// partial results are discarded because the stream is no longer aligned.
func (l *Loader) LoadBinary(r io.Reader) ([]instance.FactoryInfo, error) {
	records, err := ReadBinary(r)
	if err != nil {
		l.errorf("binary import failed: %v", err)
		l.sink.RecordImport("binary", false)
		return nil, err
	}
	for range records {
		l.sink.RecordImport("binary", true)
	}
	return records, nil
}

// LoadXML reads an XML document.
func (l *Loader) LoadXML(r io.Reader) ([]instance.FactoryInfo, error) {
	records, err := ReadXML(r)
	if err != nil {
		l.errorf("xml import failed: %v", err)
		l.sink.RecordImport("xml", false)
		return nil, err
	}
	for range records {
		l.sink.RecordImport("xml", true)
	}
	return records, nil
}

// Reconstruct builds one instance per record. A failed record does not stop
// the batch; failures are reported per index and the caller decides whether
// to keep the rest. Successfully built objects keep their record order.
func (l *Loader) Reconstruct(records []instance.FactoryInfo) ([]object.Object, map[int]error) {
	objects := make([]object.Object, 0, len(records))
	failures := make(map[int]error)
	for n, rec := range records {
		obj, err := l.reg.CreateInstance(rec)
		if err != nil {
			l.errorf("record %d (%s/%s): %v", n, rec.FactoryTag, rec.InstanceTag, err)
			failures[n] = err
			continue
		}
		objects = append(objects, obj)
	}
	return objects, failures
}

func (l *Loader) errorf(format string, args ...any) {
	if l.log != nil {
		l.log.Errorf(format, args...)
	}
}
