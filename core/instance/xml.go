package instance

import "encoding/xml"

// Attribute names used on a record's owning XML element.
const (
	attrFactoryTag  = "FactoryTag"
	attrInstanceTag = "InstanceTag"
	attrName        = "Name"
)

// MarshalXML writes the record as attributes on the element being encoded.
// The Name attribute is omitted for anonymous records.
func (i FactoryInfo) MarshalXML(e *xml.Encoder, start xml.StartElement) error {
	start.Attr = append(start.Attr,
		xml.Attr{Name: xml.Name{Local: attrFactoryTag}, Value: i.FactoryTag},
		xml.Attr{Name: xml.Name{Local: attrInstanceTag}, Value: i.InstanceTag},
	)
	if i.InstanceName != "" {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: attrName}, Value: i.InstanceName})
	}
	if err := e.EncodeToken(start); err != nil {
		return err
	}
	return e.EncodeToken(start.End())
}

// UnmarshalXML reads the attributes written by MarshalXML. A missing or
// empty FactoryTag attribute is replaced with DefaultFactoryTag so that
// documents from before factory tags were mandatory keep loading. No other
// attribute gets that leniency.
func (i *FactoryInfo) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var out FactoryInfo
	for _, a := range start.Attr {
		switch a.Name.Local {
		case attrFactoryTag:
			out.FactoryTag = a.Value
		case attrInstanceTag:
			out.InstanceTag = a.Value
		case attrName:
			out.InstanceName = a.Value
		}
	}
	if out.FactoryTag == "" {
		out.FactoryTag = DefaultFactoryTag
	}
	if err := d.Skip(); err != nil {
		return err
	}
	*i = out
	return nil
}
