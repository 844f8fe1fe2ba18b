// Package document reads and writes multi-record identity documents and
// reconstructs their objects through a provider registry.
package document

import (
	"errors"
	"fmt"
	"io"

	"github.com/fabrica-go/fabrica/core/instance"
)

// docMarker opens every binary document, ahead of the record count.
const docMarker uint32 = 0xDADADADA

// maxRecords bounds the declared record count of a document.
const maxRecords = 1 << 20

// ErrBadDocumentMarker is returned when a binary stream does not open with
// the document marker.
var ErrBadDocumentMarker = errors.New("bad document marker")

// WriteBinary writes records to w as a framed binary document:
// document marker, record count, then each record with its own sentinels.
func WriteBinary(w io.Writer, records []instance.FactoryInfo) error {
	if err := writeUint32(w, docMarker); err != nil {
		return err
	}
	if err := writeUint32(w, uint32(len(records))); err != nil {
		return err
	}
	for _, rec := range records {
		if err := rec.ExportBinary(w); err != nil {
			return err
		}
	}
	return nil
}

// ReadBinary reads a document written by WriteBinary. A sentinel failure on
// any record aborts the whole read: once a record is misaligned, everything
// after it is unreliable.
func ReadBinary(r io.Reader) ([]instance.FactoryInfo, error) {
	marker, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read document marker: %w", err)
	}
	if marker != docMarker {
		return nil, ErrBadDocumentMarker
	}
	count, err := readUint32(r)
	if err != nil {
		return nil, fmt.Errorf("read record count: %w", err)
	}
	if count > maxRecords {
		return nil, fmt.Errorf("record count %d exceeds limit", count)
	}
	records := make([]instance.FactoryInfo, 0, count)
	for n := uint32(0); n < count; n++ {
		var rec instance.FactoryInfo
		if err := rec.ImportBinary(r); err != nil {
			return nil, fmt.Errorf("record %d: %w", n, err)
		}
		records = append(records, rec)
	}
	return records, nil
}
