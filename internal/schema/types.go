// Package schema turns resolved catalog metadata into OpenAPI schemas:
// scalar mapping, definition naming, and recursive representation building.
package schema

import "github.com/go-openapi/spec"

const (
	ARRAY   = "array"
	OBJECT  = "object"
	BOOLEAN = "boolean"
	INTEGER = "integer"
	NUMBER  = "number"
	STRING  = "string"
)

// scalarTypes maps canonical scalar type names to their OpenAPI type and
// format.
var scalarTypes = map[string]struct {
	openAPIType string
	format      string
}{
	"String":       {STRING, ""},
	"Character":    {STRING, ""},
	"Integer":      {INTEGER, ""},
	"Int":          {INTEGER, ""},
	"Short":        {INTEGER, ""},
	"Long":         {INTEGER, "int64"},
	"Double":       {NUMBER, "double"},
	"Float":        {NUMBER, "float"},
	"Number":       {NUMBER, ""},
	"Boolean":      {BOOLEAN, ""},
	"Date":         {STRING, "date-time"},
	"DateTime":     {STRING, "date-time"},
	"Datetime":     {STRING, "date-time"},
	"Instant":      {STRING, "date-time"},
	"Timestamp":    {STRING, "date-time"},
	"Object":       {OBJECT, ""},
	"SimpleObject": {OBJECT, ""},
	"Map":          {OBJECT, ""},
	"Link":         {OBJECT, ""},
}

// IsScalarTypeName reports whether the canonical name maps directly to an
// OpenAPI primitive.
func IsScalarTypeName(typeName string) bool {
	_, ok := scalarTypes[typeName]
	return ok
}

// IsDateTypeName reports whether the canonical name denotes a point in time.
func IsDateTypeName(typeName string) bool {
	s, ok := scalarTypes[typeName]
	return ok && s.format == "date-time"
}

// ScalarSchema maps a canonical scalar name to its OpenAPI schema. Returns
// nil for names that are not scalars.
func ScalarSchema(typeName string) *spec.Schema {
	s, ok := scalarTypes[typeName]
	if !ok {
		return nil
	}
	schema := PrimitiveSchema(s.openAPIType)
	schema.Format = s.format
	return schema
}

// PrimitiveSchema builds a schema with a single OpenAPI type.
func PrimitiveSchema(refType string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{Type: []string{refType}}}
}

// RefSchema builds a $ref schema pointing at a named definition.
func RefSchema(name string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{
		Ref: spec.MustCreateRef("#/definitions/" + name),
	}}
}

// ArrayOf wraps a schema as the item type of an array schema.
func ArrayOf(item *spec.Schema) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{
		Type:  []string{ARRAY},
		Items: &spec.SchemaOrArray{Schema: item},
	}}
}
