package domain

import "strings"

// TypeRef is the structured form of a canonical type name. A collection holds
// its container kind and element; anything else is a named type whose meaning
// (scalar or domain object) is decided by the consumer.
type TypeRef struct {
	// Name is the simple type name. Empty for collections.
	Name string

	// Container is the collection kind ("List", "Set" or "Collection")
	// when the ref describes a collection.
	Container string

	// Elem is the element type of a collection.
	Elem *TypeRef
}

// NamedType builds a TypeRef for a plain named type.
func NamedType(name string) TypeRef {
	return TypeRef{Name: name}
}

// CollectionOf builds a TypeRef for a container of elem.
func CollectionOf(container string, elem TypeRef) TypeRef {
	e := elem
	return TypeRef{Container: container, Elem: &e}
}

// ListOf builds a TypeRef for a List of elem.
func ListOf(elem TypeRef) TypeRef {
	return CollectionOf("List", elem)
}

// IsCollection reports whether the ref describes a container type.
func (t TypeRef) IsCollection() bool {
	return t.Container != ""
}

// String renders the ref in canonical display form, e.g. "List<Patient>".
func (t TypeRef) String() string {
	return FormatTypeName(t)
}

// FormatTypeName renders a TypeRef as a canonical display string. Display
// strings exist only at this boundary; internal code passes TypeRef values.
func FormatTypeName(t TypeRef) string {
	if !t.IsCollection() {
		return t.Name
	}
	elem := "Object"
	if t.Elem != nil {
		elem = FormatTypeName(*t.Elem)
	}
	return t.Container + "<" + elem + ">"
}

var collectionPrefixes = []string{"List<", "Set<", "Collection<"}

// IsCollectionTypeName reports whether a display string names a container
// type such as "List<Patient>".
func IsCollectionTypeName(name string) bool {
	for _, p := range collectionPrefixes {
		if strings.HasPrefix(name, p) {
			return true
		}
	}
	return false
}

// ParseTypeName parses a canonical display string back into a TypeRef.
// Unrecognized or malformed input degrades to a named type carrying the raw
// string, so parsing never fails.
func ParseTypeName(name string) TypeRef {
	name = strings.TrimSpace(name)
	for _, p := range collectionPrefixes {
		if strings.HasPrefix(name, p) && strings.HasSuffix(name, ">") {
			container := strings.TrimSuffix(p, "<")
			elem := ParseTypeName(ElementTypeName(name))
			return CollectionOf(container, elem)
		}
	}
	return NamedType(name)
}

// ElementTypeName extracts the element type from a generic display string.
// Nested angle brackets are honored and only the first top-level type argument
// is taken, so "List<Map<String, Patient>>" yields "Map<String, Patient>".
// Input without a well-formed argument list degrades to "String".
func ElementTypeName(name string) string {
	start := strings.Index(name, "<")
	end := strings.LastIndex(name, ">")
	if start < 0 || end < start {
		return "String"
	}
	inner := strings.TrimSpace(name[start+1 : end])
	if inner == "" {
		return "String"
	}

	// Take the first comma at bracket depth zero so nested generics stay
	// intact.
	depth := 0
	for i, r := range inner {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return strings.TrimSpace(inner[:i])
			}
		}
	}
	return inner
}
