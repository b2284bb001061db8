// Package catalog acquires resource catalogs: introspection of live Go
// structs and loading of serialized catalog files.
package catalog

import (
	"reflect"
	"strings"

	"github.com/medkit/resource-swag/internal/domain"
)

// Introspect walks a Go struct with reflection and adapts it to the
// introspection contract: exported fields and Get* accessor methods become
// properties with canonical type names. Embedded structs are flattened the
// way field promotion would.
func Introspect(v interface{}) domain.IntrospectableType {
	typ := reflect.TypeOf(v)
	if typ == nil {
		return nil
	}

	ptr := typ
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	} else {
		ptr = reflect.PtrTo(typ)
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	props := make(map[string]string)
	collectFields(typ, props, make(map[reflect.Type]bool))

	// Accessors are looked up on the pointer type so both receiver kinds are
	// seen. Fields win on a name clash; accessors only add.
	for i := 0; i < ptr.NumMethod(); i++ {
		method := ptr.Method(i)
		if !strings.HasPrefix(method.Name, "Get") || len(method.Name) <= len("Get") {
			continue
		}
		// Receiver only, single return value.
		if method.Type.NumIn() != 1 || method.Type.NumOut() != 1 {
			continue
		}
		name := lowerFirst(strings.TrimPrefix(method.Name, "Get"))
		if _, ok := props[name]; ok {
			continue
		}
		props[name] = canonicalTypeName(method.Type.Out(0))
	}

	return domain.NewStaticType(typ.Name(), props)
}

func collectFields(typ reflect.Type, props map[string]string, visited map[reflect.Type]bool) {
	if visited[typ] {
		return
	}
	visited[typ] = true

	for i := 0; i < typ.NumField(); i++ {
		field := typ.Field(i)
		if field.PkgPath != "" {
			continue
		}
		if field.Anonymous {
			embedded := field.Type
			if embedded.Kind() == reflect.Ptr {
				embedded = embedded.Elem()
			}
			if embedded.Kind() == reflect.Struct && !isTime(embedded) {
				collectFields(embedded, props, visited)
				continue
			}
		}
		name := lowerFirst(field.Name)
		if _, ok := props[name]; ok {
			continue
		}
		props[name] = canonicalTypeName(field.Type)
	}
}

// canonicalTypeName maps a Go type onto the catalog's canonical naming.
func canonicalTypeName(t reflect.Type) string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if isTime(t) {
		return "Date"
	}

	switch t.Kind() {
	case reflect.String:
		return "String"
	case reflect.Bool:
		return "Boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32:
		return "Integer"
	case reflect.Int64, reflect.Uint64:
		return "Long"
	case reflect.Float32:
		return "Float"
	case reflect.Float64:
		return "Double"
	case reflect.Slice, reflect.Array:
		return domain.FormatTypeName(domain.ListOf(domain.NamedType(canonicalTypeName(t.Elem()))))
	case reflect.Map:
		return "Map"
	case reflect.Struct:
		if t.Name() != "" {
			return t.Name()
		}
		return "Object"
	case reflect.Interface:
		return "Object"
	}
	return "Object"
}

func isTime(t reflect.Type) bool {
	return t.PkgPath() == "time" && t.Name() == "Time"
}

func lowerFirst(name string) string {
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}
