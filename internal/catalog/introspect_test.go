package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type Auditable struct {
	Creator     string
	DateCreated time.Time
}

type Identifier struct {
	Value string
}

type Patient struct {
	Auditable
	Uuid        string
	Age         int
	Weight      float64
	Active      bool
	Identifiers []Identifier
	notes       string
}

func (p *Patient) GetDisplay() string { return p.Uuid }

func (p Patient) GetVersion() int64 { return 1 }

// GetUuid clashes with the Uuid field; the field wins.
func (p *Patient) GetUuid() int { return 0 }

// GetParts takes an argument, so it is not an accessor.
func (p *Patient) GetParts(n int) []string { return nil }

func TestIntrospectStruct(t *testing.T) {
	typ := Introspect(&Patient{})
	require.NotNil(t, typ)

	assert.Equal(t, "Patient", typ.Name())

	tests := []struct {
		property string
		want     string
	}{
		{"uuid", "String"},
		{"age", "Integer"},
		{"weight", "Double"},
		{"active", "Boolean"},
		{"identifiers", "List<Identifier>"},
		{"creator", "String"},
		{"dateCreated", "Date"},
		{"display", "String"},
		{"version", "Long"},
	}
	for _, tt := range tests {
		got, ok := typ.PropertyType(tt.property)
		assert.True(t, ok, "property %s must exist", tt.property)
		assert.Equal(t, tt.want, got, "property %s", tt.property)
	}

	_, ok := typ.PropertyType("notes")
	assert.False(t, ok, "unexported fields must be skipped")
	_, ok = typ.PropertyType("parts")
	assert.False(t, ok, "accessors with arguments must be skipped")
}

func TestIntrospectValueReceiver(t *testing.T) {
	typ := Introspect(Patient{})
	require.NotNil(t, typ)

	// Pointer-receiver accessors are still visible when a value is passed.
	got, ok := typ.PropertyType("display")
	assert.True(t, ok)
	assert.Equal(t, "String", got)
}

func TestIntrospectNonStruct(t *testing.T) {
	assert.Nil(t, Introspect(nil))
	assert.Nil(t, Introspect(42))
	assert.Nil(t, Introspect("patient"))
}
