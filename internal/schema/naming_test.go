package schema

import (
	"testing"

	"github.com/medkit/resource-swag/internal/domain"
)

func TestBaseName(t *testing.T) {
	g := NewNameGenerator()

	tests := []struct {
		name     string
		typeName string
		want     string
	}{
		{"plain type", "Patient", "Patient"},
		{"handler suffix", "PatientResource", "Patient"},
		{"versioned handler", "PatientResource1_8", "Patient"},
		{"versioned handler newer", "VisitResource1_9", "Visit"},
		{"version without suffix", "Patient1_8", "Patient"},
		{"compound collapses to first concept", "OrderFrequencyAndConceptResource", "OrderFrequency"},
		{"lowercase and is not a compound", "Brand", "Brand"},
		{"android is not a compound", "Android", "Android"},
		{"provenance annotation", "Patient (from org.example.Patient)", "Patient"},
		{"empty", "", "Unknown"},
		{"only suffix", "Resource", "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.BaseName(tt.typeName); got != tt.want {
				t.Errorf("BaseName(%q) = %q, want %q", tt.typeName, got, tt.want)
			}
		})
	}
}

func TestCleanTypeName(t *testing.T) {
	g := NewNameGenerator()

	tests := []struct {
		input string
		want  string
	}{
		{"Patient", "Patient"},
		{"Patient (from org.example.Patient)", "Patient"},
		{"  Patient  ", "Patient"},
		{"List<Patient>", "List<Patient>"},
	}

	for _, tt := range tests {
		if got := g.CleanTypeName(tt.input); got != tt.want {
			t.Errorf("CleanTypeName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSchemaName(t *testing.T) {
	g := NewNameGenerator()

	tests := []struct {
		name     string
		typeName string
		rep      domain.RepresentationKind
		want     string
	}{
		{"ref", "PatientResource1_8", domain.RepresentationRef, "PatientRef"},
		{"default", "Patient", domain.RepresentationDefault, "PatientDefault"},
		{"full", "PatientResource", domain.RepresentationFull, "PatientFull"},
		{"custom", "Patient", domain.RepresentationCustom, "PatientCustom"},
		{"empty rep is default", "Patient", "", "PatientDefault"},
		{"uppercased rep is normalized", "Patient", "FULL", "PatientFull"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := g.SchemaName(tt.typeName, tt.rep); got != tt.want {
				t.Errorf("SchemaName(%q, %q) = %q, want %q", tt.typeName, tt.rep, got, tt.want)
			}
		})
	}
}

// Definition names and reference names must be minted identically so no $ref
// can dangle on a naming mismatch.
func TestSchemaNameSymmetry(t *testing.T) {
	g := NewNameGenerator()

	defName := g.SchemaName("PatientIdentifierResource1_8", domain.RepresentationDefault)
	refName := g.SchemaNameForPropertyType("PatientIdentifier (from org.example.PatientIdentifier)", domain.RepresentationDefault)

	if defName != refName {
		t.Errorf("definition name %q != reference name %q", defName, refName)
	}
}
