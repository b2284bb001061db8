package schema

import "testing"

func TestScalarSchema(t *testing.T) {
	tests := []struct {
		name       string
		typeName   string
		wantType   string
		wantFormat string
	}{
		{"string", "String", "string", ""},
		{"integer", "Integer", "integer", ""},
		{"long gets int64", "Long", "integer", "int64"},
		{"double", "Double", "number", "double"},
		{"float", "Float", "number", "float"},
		{"boolean", "Boolean", "boolean", ""},
		{"date gets date-time", "Date", "string", "date-time"},
		{"datetime gets date-time", "DateTime", "string", "date-time"},
		{"simple object", "SimpleObject", "object", ""},
		{"map", "Map", "object", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema := ScalarSchema(tt.typeName)
			if schema == nil {
				t.Fatalf("ScalarSchema(%q) = nil", tt.typeName)
			}
			if len(schema.Type) != 1 || schema.Type[0] != tt.wantType {
				t.Errorf("ScalarSchema(%q).Type = %v, want %q", tt.typeName, schema.Type, tt.wantType)
			}
			if schema.Format != tt.wantFormat {
				t.Errorf("ScalarSchema(%q).Format = %q, want %q", tt.typeName, schema.Format, tt.wantFormat)
			}
		})
	}

	for _, typeName := range []string{"Patient", "List<Patient>", ""} {
		if schema := ScalarSchema(typeName); schema != nil {
			t.Errorf("ScalarSchema(%q) should be nil", typeName)
		}
	}
}

func TestIsDateTypeName(t *testing.T) {
	tests := []struct {
		typeName string
		want     bool
	}{
		{"Date", true},
		{"DateTime", true},
		{"Instant", true},
		{"String", false},
		{"Patient", false},
	}

	for _, tt := range tests {
		if got := IsDateTypeName(tt.typeName); got != tt.want {
			t.Errorf("IsDateTypeName(%q) = %v, want %v", tt.typeName, got, tt.want)
		}
	}
}

func TestRefSchema(t *testing.T) {
	schema := RefSchema("PatientDefault")

	if got := schema.Ref.String(); got != "#/definitions/PatientDefault" {
		t.Errorf("RefSchema ref = %q, want #/definitions/PatientDefault", got)
	}
}

func TestArrayOf(t *testing.T) {
	schema := ArrayOf(PrimitiveSchema(STRING))

	if len(schema.Type) != 1 || schema.Type[0] != ARRAY {
		t.Errorf("ArrayOf type = %v, want array", schema.Type)
	}
	if schema.Items == nil || schema.Items.Schema == nil {
		t.Fatal("expected items schema")
	}
	if schema.Items.Schema.Type[0] != STRING {
		t.Errorf("ArrayOf items type = %v, want string", schema.Items.Schema.Type)
	}
}
