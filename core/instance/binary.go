package instance

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
)

// recordMarker frames every serialized record. A mismatch on read means the
// stream is misaligned and the whole record must be rejected.
const recordMarker uint32 = 0xDDDDDDDD

// maxStringLen bounds a single encoded string. A length above this is
// treated as framing corruption rather than attempted as an allocation.
const maxStringLen = 1 << 20

// ErrBadStartMarker is returned when the leading record marker is missing.
var ErrBadStartMarker = errors.New("bad start marker")

// ErrBadEndMarker is returned when the trailing record marker is missing.
var ErrBadEndMarker = errors.New("bad end marker")

// ExportBinary writes the record to w. The wire layout is
//
//	[u32 marker][FactoryTag][InstanceName][InstanceTag][u32 marker]
//
// with every string encoded as a big-endian u32 byte length followed by
// UTF-8 bytes. The field order on the wire is fixed; it is part of the
// format and differs from the constructor argument order.
func (i FactoryInfo) ExportBinary(w io.Writer) error {
	if err := writeUint32(w, recordMarker); err != nil {
		return err
	}
	for _, s := range []string{i.FactoryTag, i.InstanceName, i.InstanceTag} {
		if err := writeString(w, s); err != nil {
			return err
		}
	}
	return writeUint32(w, recordMarker)
}

// ImportBinary reads a record previously written by ExportBinary. Both
// markers are validated; a mismatch yields ErrBadStartMarker or
// ErrBadEndMarker and leaves the receiver unmodified. Fields are only
// assigned once the trailing marker has been verified.
func (i *FactoryInfo) ImportBinary(r io.Reader) error {
	start, err := readUint32(r)
	if err != nil {
		return fmt.Errorf("read start marker: %w", err)
	}
	if start != recordMarker {
		return ErrBadStartMarker
	}
	var fields [3]string
	for n := range fields {
		if fields[n], err = readString(r); err != nil {
			return err
		}
	}
	end, err := readUint32(r)
	if err != nil {
		return fmt.Errorf("read end marker: %w", err)
	}
	if end != recordMarker {
		return ErrBadEndMarker
	}
	i.FactoryTag, i.InstanceName, i.InstanceTag = fields[0], fields[1], fields[2]
	return nil
}

func writeUint32(w io.Writer, v uint32) error {
	var buf [4]byte
	binary.BigEndian.PutUint32(buf[:], v)
	_, err := w.Write(buf[:])
	return err
}

func readUint32(r io.Reader) (uint32, error) {
	var buf [4]byte
	if _, err := io.ReadFull(r, buf[:]); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(buf[:]), nil
}

func writeString(w io.Writer, s string) error {
	if err := writeUint32(w, uint32(len(s))); err != nil {
		return err
	}
	_, err := io.WriteString(w, s)
	return err
}

func readString(r io.Reader) (string, error) {
	n, err := readUint32(r)
	if err != nil {
		return "", fmt.Errorf("read string length: %w", err)
	}
	if n > maxStringLen {
		return "", fmt.Errorf("string length %d exceeds limit", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("read string: %w", err)
	}
	return string(buf), nil
}
