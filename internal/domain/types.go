// Package domain holds the catalog data model shared by every stage of the
// generator: resource descriptors, per-representation field metadata, and the
// structured type name representation.
package domain

// RepresentationKind identifies one of the projection levels a resource can be
// rendered at.
type RepresentationKind string

const (
	RepresentationRef     RepresentationKind = "ref"
	RepresentationDefault RepresentationKind = "default"
	RepresentationFull    RepresentationKind = "full"
	RepresentationCustom  RepresentationKind = "custom"
)

// StandardRepresentations returns the representations every resource is asked
// to describe, in emission order.
func StandardRepresentations() []RepresentationKind {
	return []RepresentationKind{RepresentationRef, RepresentationDefault, RepresentationFull}
}

// FieldDescriptor carries the metadata a catalog records for one field of a
// representation. All fields except Name are optional; the type resolver works
// with whatever subset is present.
type FieldDescriptor struct {
	// Name is the property name as it appears in the rendered representation.
	Name string `json:"name"`

	// ConvertAs is an explicit type hint attached to the field, when present.
	ConvertAs string `json:"convertAs,omitempty"`

	// AccessorType is the declared return type of the method backing the
	// field, when the catalog knows it.
	AccessorType string `json:"accessorType,omitempty"`

	// DelegateField names the underlying delegate property the field reads
	// from, when it differs from Name (an alias).
	DelegateField string `json:"delegateField,omitempty"`

	// Rep marks the field as expanded at a nested representation.
	Rep RepresentationKind `json:"rep,omitempty"`

	// Required marks the field as mandatory in the rendered output.
	Required bool `json:"required,omitempty"`
}

// ResourceDescription is the ordered field list a resource reports for one
// representation.
type ResourceDescription struct {
	Fields []FieldDescriptor `json:"fields"`
}

// FieldNames returns the field names in declaration order.
func (d *ResourceDescription) FieldNames() []string {
	names := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		names = append(names, f.Name)
	}
	return names
}

// IntrospectableType is the capability a delegate domain type must expose to
// the generator. Implementations may be backed by reflection over live Go
// structs or by serialized catalog data; the generator does not care which.
type IntrospectableType interface {
	// Name returns the simple type name, e.g. "Patient".
	Name() string

	// Properties returns every declared and inherited property with its
	// canonical type name (String, Integer, Boolean, Date, List<T>, ...).
	Properties() map[string]string

	// PropertyType reports the canonical type name of a single property.
	PropertyType(name string) (string, bool)
}

// RepresentationSource yields the field list for a representation. A nil
// description means the resource does not support that representation.
type RepresentationSource interface {
	Description(rep RepresentationKind) (*ResourceDescription, error)
}

// ResourceDescriptor ties a catalog resource to its delegate type and its
// representation source.
type ResourceDescriptor struct {
	// Name is the resource name used in paths, e.g. "patient".
	Name string

	// Delegate is the backing domain type. Nil when the catalog could not
	// determine it; such resources contribute nothing to the registry.
	Delegate IntrospectableType

	// Source produces the per-representation field lists.
	Source RepresentationSource
}

// Catalog is the full set of resources a generation run operates on,
// processed in order.
type Catalog []*ResourceDescriptor
