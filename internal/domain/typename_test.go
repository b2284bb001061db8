package domain

import "testing"

func TestFormatTypeName(t *testing.T) {
	tests := []struct {
		name string
		ref  TypeRef
		want string
	}{
		{"plain named type", NamedType("Patient"), "Patient"},
		{"scalar", NamedType("String"), "String"},
		{"list", ListOf(NamedType("Patient")), "List<Patient>"},
		{"set", CollectionOf("Set", NamedType("Role")), "Set<Role>"},
		{"nested list", ListOf(ListOf(NamedType("Obs"))), "List<List<Obs>>"},
		{"collection with nil elem", TypeRef{Container: "List"}, "List<Object>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTypeName(tt.ref); got != tt.want {
				t.Errorf("FormatTypeName(%+v) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestParseTypeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  TypeRef
	}{
		{"plain name", "Patient", NamedType("Patient")},
		{"list", "List<Patient>", ListOf(NamedType("Patient"))},
		{"set", "Set<Role>", CollectionOf("Set", NamedType("Role"))},
		{"collection", "Collection<Obs>", CollectionOf("Collection", NamedType("Obs"))},
		{"nested", "List<Set<Role>>", ListOf(CollectionOf("Set", NamedType("Role")))},
		{"whitespace", "  List<Patient>  ", ListOf(NamedType("Patient"))},
		{"unclosed bracket stays named", "List<Patient", NamedType("List<Patient")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseTypeName(tt.input)
			if FormatTypeName(got) != FormatTypeName(tt.want) {
				t.Errorf("ParseTypeName(%q) = %q, want %q", tt.input, FormatTypeName(got), FormatTypeName(tt.want))
			}
		})
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	for _, name := range []string{"Patient", "List<Patient>", "Set<Role>", "List<List<Obs>>"} {
		if got := FormatTypeName(ParseTypeName(name)); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}

func TestElementTypeName(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"simple list", "List<Patient>", "Patient"},
		{"set", "Set<Role>", "Role"},
		{"nested generic kept whole", "List<Map<String, Patient>>", "Map<String, Patient>"},
		{"first top-level argument", "Map<String, Patient>", "String"},
		{"no brackets", "Patient", "String"},
		{"empty argument list", "List<>", "String"},
		{"mismatched brackets", "List<Patient", "String"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElementTypeName(tt.input); got != tt.want {
				t.Errorf("ElementTypeName(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsCollectionTypeName(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"List<Patient>", true},
		{"Set<Role>", true},
		{"Collection<Obs>", true},
		{"Patient", false},
		{"String", false},
		{"ArrayList<Patient>", false},
	}

	for _, tt := range tests {
		if got := IsCollectionTypeName(tt.input); got != tt.want {
			t.Errorf("IsCollectionTypeName(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestFieldNames(t *testing.T) {
	d := &ResourceDescription{Fields: []FieldDescriptor{
		{Name: "uuid"},
		{Name: "display"},
		{Name: "identifiers"},
	}}

	got := d.FieldNames()
	want := []string{"uuid", "display", "identifiers"}
	if len(got) != len(want) {
		t.Fatalf("FieldNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("FieldNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
