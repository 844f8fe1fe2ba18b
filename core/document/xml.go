package document

import (
	"encoding/xml"
	"io"

	"github.com/fabrica-go/fabrica/core/instance"
)

// objectsDoc is the XML document shape: a root Objects element with one
// Object child per record, fields carried as attributes.
type objectsDoc struct {
	XMLName xml.Name               `xml:"Objects"`
	Objects []instance.FactoryInfo `xml:"Object"`
}

// WriteXML writes records as an XML document.
func WriteXML(w io.Writer, records []instance.FactoryInfo) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(objectsDoc{Objects: records}); err != nil {
		return err
	}
	return enc.Close()
}

// ReadXML reads a document written by WriteXML. Records missing a
// FactoryTag attribute come back with the default factory tag; that is the
// codec's one leniency and no other malformed record is repaired.
func ReadXML(r io.Reader) ([]instance.FactoryInfo, error) {
	var doc objectsDoc
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, err
	}
	return doc.Objects, nil
}
