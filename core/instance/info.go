package instance

// DefaultFactoryTag is the factory used when an XML record carries no
// FactoryTag attribute. Documents written before factory tags became
// mandatory rely on this fallback.
const DefaultFactoryTag = "core"

// FactoryInfo identifies everything needed to reconstruct an object through
// a factory provider: the factory to use, the tag within that factory, and
// the name to give the new instance.
//
// FactoryInfo is a plain value type. Two records with equal fields are
// interchangeable; copy freely.
type FactoryInfo struct {
	// FactoryTag names the registered factory owning the construction logic.
	FactoryTag string
	// InstanceTag names the variant to construct within that factory.
	InstanceTag string
	// InstanceName is assigned to the constructed instance. May be empty.
	InstanceName string
}

// New returns an anonymous record for the given factory and instance tags.
func New(factoryTag, instanceTag string) FactoryInfo {
	return FactoryInfo{FactoryTag: factoryTag, InstanceTag: instanceTag}
}

// NewNamed returns a record that also carries the instance name.
func NewNamed(factoryTag, instanceTag, instanceName string) FactoryInfo {
	return FactoryInfo{FactoryTag: factoryTag, InstanceTag: instanceTag, InstanceName: instanceName}
}

// IsValid reports whether the record carries enough information to request
// construction: both FactoryTag and InstanceTag must be non-empty. The
// instance name never participates in validity.
func (i FactoryInfo) IsValid() bool {
	return i.FactoryTag != "" && i.InstanceTag != ""
}
