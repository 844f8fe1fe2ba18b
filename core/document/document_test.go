package document

import (
	"bytes"
	"encoding/binary"
	"errors"
	"strings"
	"testing"

	"github.com/fabrica-go/fabrica/core/instance"
)

var sampleRecords = []instance.FactoryInfo{
	instance.NewNamed("Widgets", "Button", "okButton"),
	instance.New("Widgets", "Label"),
	instance.NewNamed("Layouts", "Grid", "mainGrid"),
}

func TestBinaryDocumentRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, sampleRecords); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadBinary(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(sampleRecords) {
		t.Fatalf("got %d records, want %d", len(got), len(sampleRecords))
	}
	for n := range got {
		if got[n] != sampleRecords[n] {
			t.Fatalf("record %d: got %+v want %+v", n, got[n], sampleRecords[n])
		}
	}
}

func TestBinaryDocumentBadMarker(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteBinary(&buf, sampleRecords); err != nil {
		t.Fatalf("write: %v", err)
	}
	data := buf.Bytes()
	data[0] ^= 0x01
	if _, err := ReadBinary(bytes.NewReader(data)); !errors.Is(err, ErrBadDocumentMarker) {
		t.Fatalf("expected ErrBadDocumentMarker, got %v", err)
	}
}

// A corrupt record aborts the whole read; nothing after the bad record can
// be trusted.
func TestBinaryDocumentCorruptRecordAborts(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, docMarker); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if err := writeUint32(&buf, 2); err != nil {
		t.Fatalf("count: %v", err)
	}
	if err := sampleRecords[0].ExportBinary(&buf); err != nil {
		t.Fatalf("record: %v", err)
	}
	// Second record starts with garbage instead of the sentinel.
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], 0xCAFEBABE)
	buf.Write(b[:])

	if _, err := ReadBinary(&buf); !errors.Is(err, instance.ErrBadStartMarker) {
		t.Fatalf("expected ErrBadStartMarker, got %v", err)
	}
}

func TestBinaryDocumentExcessiveCount(t *testing.T) {
	var buf bytes.Buffer
	if err := writeUint32(&buf, docMarker); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if err := writeUint32(&buf, maxRecords+1); err != nil {
		t.Fatalf("count: %v", err)
	}
	if _, err := ReadBinary(&buf); err == nil {
		t.Fatal("expected count limit error")
	}
}

func TestXMLDocumentRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXML(&buf, sampleRecords); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, err := ReadXML(&buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != len(sampleRecords) {
		t.Fatalf("got %d records, want %d", len(got), len(sampleRecords))
	}
	for n := range got {
		if got[n] != sampleRecords[n] {
			t.Fatalf("record %d: got %+v want %+v", n, got[n], sampleRecords[n])
		}
	}
}

func TestXMLDocumentLegacyFactoryTag(t *testing.T) {
	doc := `<?xml version="1.0"?>
<Objects>
  <Object InstanceTag="Button" Name="okButton"/>
  <Object FactoryTag="Widgets" InstanceTag="Label"/>
</Objects>`
	got, err := ReadXML(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d records", len(got))
	}
	if got[0].FactoryTag != instance.DefaultFactoryTag {
		t.Fatalf("FactoryTag = %q, want default %q", got[0].FactoryTag, instance.DefaultFactoryTag)
	}
	if got[0].InstanceTag != "Button" || got[0].InstanceName != "okButton" {
		t.Fatalf("unexpected record %+v", got[0])
	}
	if got[1].FactoryTag != "Widgets" {
		t.Fatalf("explicit factory tag lost: %+v", got[1])
	}
}
