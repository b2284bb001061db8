package schema

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/medkit/resource-swag/internal/domain"
)

// versionSuffix matches trailing framework version markers such as "1_8".
var versionSuffix = regexp.MustCompile(`\d+_\d+$`)

// NameGenerator mints definition names. It is the only place schema names
// come from, so references and definitions can never disagree.
type NameGenerator struct{}

// NewNameGenerator creates a NameGenerator.
func NewNameGenerator() *NameGenerator {
	return &NameGenerator{}
}

// CleanTypeName strips provenance annotations of the form
// "Patient (from org.example.Patient)" down to the bare name.
func (g *NameGenerator) CleanTypeName(typeName string) string {
	typeName = strings.TrimSpace(typeName)
	if idx := strings.Index(typeName, " (from "); idx >= 0 {
		typeName = typeName[:idx]
	}
	return typeName
}

// BaseName reduces a handler or delegate type name to the domain concept it
// serves: "PatientResource1_8" becomes "Patient", compound names like
// "OrderFrequencyAndConceptResource" collapse to their first concept.
func (g *NameGenerator) BaseName(typeName string) string {
	name := g.CleanTypeName(typeName)
	name = versionSuffix.ReplaceAllString(name, "")
	name = strings.TrimSuffix(name, "Resource")
	name = versionSuffix.ReplaceAllString(name, "")

	if idx := compoundIndex(name); idx > 0 {
		name = name[:idx]
	}
	if name == "" {
		return "Unknown"
	}
	return name
}

// SchemaName builds the definition name for a type at a representation, e.g.
// ("PatientResource1_8", ref) -> "PatientRef". An empty representation is
// treated as default.
func (g *NameGenerator) SchemaName(typeName string, rep domain.RepresentationKind) string {
	label := strings.ToLower(string(rep))
	if label == "" {
		label = "default"
	}
	return g.BaseName(typeName) + cases.Title(language.English).String(label)
}

// SchemaNameForPropertyType names the definition a property's type points at,
// cleaning provenance annotations first.
func (g *NameGenerator) SchemaNameForPropertyType(propertyType string, rep domain.RepresentationKind) string {
	return g.SchemaName(g.CleanTypeName(propertyType), rep)
}

// compoundIndex locates an "And" joining two capitalized concepts, so
// "OrderFrequencyAndConcept" yields the index of "And". Returns -1 when the
// name is not a compound.
func compoundIndex(name string) int {
	for idx := strings.Index(name, "And"); idx >= 0; {
		rest := name[idx+len("And"):]
		if idx > 0 && rest != "" && rest[0] >= 'A' && rest[0] <= 'Z' {
			return idx
		}
		next := strings.Index(rest, "And")
		if next < 0 {
			return -1
		}
		idx += len("And") + next
	}
	return -1
}
