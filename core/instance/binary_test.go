package instance

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func encode(t *testing.T, rec FactoryInfo) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := rec.ExportBinary(&buf); err != nil {
		t.Fatalf("export: %v", err)
	}
	return buf.Bytes()
}

func TestBinaryRoundTrip(t *testing.T) {
	cases := []FactoryInfo{
		NewNamed("Widgets", "Button", "okButton"),
		New("Widgets", "Button"),
		{},
		{FactoryTag: "Géométrie", InstanceTag: "ウィジェット", InstanceName: "naïve"},
		{InstanceTag: "only-tag"},
	}
	for _, want := range cases {
		data := encode(t, want)
		var got FactoryInfo
		if err := got.ImportBinary(bytes.NewReader(data)); err != nil {
			t.Fatalf("import %+v: %v", want, err)
		}
		if got != want {
			t.Fatalf("round trip: got %+v want %+v", got, want)
		}
	}
}

// The wire order is FactoryTag, InstanceName, InstanceTag, each string a
// big-endian u32 length plus UTF-8 bytes, the whole record framed by the
// 0xDDDDDDDD marker. This layout is the on-disk contract.
func TestBinaryWireLayout(t *testing.T) {
	var buf bytes.Buffer
	putU32 := func(v uint32) {
		var b [4]byte
		binary.BigEndian.PutUint32(b[:], v)
		buf.Write(b[:])
	}
	putStr := func(s string) {
		putU32(uint32(len(s)))
		buf.WriteString(s)
	}
	putU32(0xDDDDDDDD)
	putStr("Widgets")
	putStr("okButton")
	putStr("Button")
	putU32(0xDDDDDDDD)

	var got FactoryInfo
	if err := got.ImportBinary(&buf); err != nil {
		t.Fatalf("import: %v", err)
	}
	want := NewNamed("Widgets", "Button", "okButton")
	if got != want {
		t.Fatalf("got %+v want %+v", got, want)
	}

	data := encode(t, want)
	if binary.BigEndian.Uint32(data[:4]) != 0xDDDDDDDD {
		t.Fatalf("missing start marker")
	}
	if binary.BigEndian.Uint32(data[len(data)-4:]) != 0xDDDDDDDD {
		t.Fatalf("missing end marker")
	}
}

func TestImportBadStartMarker(t *testing.T) {
	data := encode(t, NewNamed("Widgets", "Button", "okButton"))
	data[0] ^= 0x01

	got := NewNamed("keep", "me", "intact")
	err := got.ImportBinary(bytes.NewReader(data))
	if !errors.Is(err, ErrBadStartMarker) {
		t.Fatalf("expected ErrBadStartMarker, got %v", err)
	}
	if got != NewNamed("keep", "me", "intact") {
		t.Fatalf("failed import mutated the record: %+v", got)
	}
}

func TestImportBadEndMarker(t *testing.T) {
	data := encode(t, NewNamed("Widgets", "Button", "okButton"))
	data[len(data)-1] ^= 0x01

	got := NewNamed("keep", "me", "intact")
	err := got.ImportBinary(bytes.NewReader(data))
	if !errors.Is(err, ErrBadEndMarker) {
		t.Fatalf("expected ErrBadEndMarker, got %v", err)
	}
	if got != NewNamed("keep", "me", "intact") {
		t.Fatalf("failed import mutated the record: %+v", got)
	}
}

func TestImportTruncatedStream(t *testing.T) {
	data := encode(t, NewNamed("Widgets", "Button", "okButton"))
	for _, cut := range []int{0, 3, 4, 10, len(data) - 1} {
		var got FactoryInfo
		if err := got.ImportBinary(bytes.NewReader(data[:cut])); err == nil {
			t.Fatalf("expected error for stream cut at %d", cut)
		}
	}
}

func TestImportOversizedStringLength(t *testing.T) {
	var buf bytes.Buffer
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], 0xDDDDDDDD)
	buf.Write(b[:])
	binary.BigEndian.PutUint32(b[:], maxStringLen+1)
	buf.Write(b[:])

	var got FactoryInfo
	if err := got.ImportBinary(&buf); err == nil {
		t.Fatalf("expected error for oversized string length")
	}
}
