package domain

// StaticType is a map-backed IntrospectableType. Catalog loaders and tests
// use it when no live Go struct backs a delegate.
type StaticType struct {
	name  string
	props map[string]string
}

// NewStaticType builds an IntrospectableType from a property name to type
// name map. The map is copied.
func NewStaticType(name string, props map[string]string) *StaticType {
	copied := make(map[string]string, len(props))
	for k, v := range props {
		copied[k] = v
	}
	return &StaticType{name: name, props: copied}
}

func (t *StaticType) Name() string { return t.name }

func (t *StaticType) Properties() map[string]string {
	out := make(map[string]string, len(t.props))
	for k, v := range t.props {
		out[k] = v
	}
	return out
}

func (t *StaticType) PropertyType(name string) (string, bool) {
	typeName, ok := t.props[name]
	return typeName, ok
}
