// Package resolver determines the canonical type name of a representation
// field by cascading through increasingly speculative sources of evidence.
package resolver

import (
	"strings"

	"github.com/medkit/resource-swag/internal/domain"
)

// Strategy identifies which rung of the cascade produced an answer.
type Strategy int

const (
	StrategyNone Strategy = iota

	// StrategyKnown answered from a prior introspection pass.
	StrategyKnown

	// StrategyHint answered from an explicit conversion hint on the field.
	StrategyHint

	// StrategyAccessor answered from the declared accessor return type.
	StrategyAccessor

	// StrategyAlias answered by following the field's delegate alias.
	StrategyAlias

	// StrategyNested answered by introspecting the delegate or the common
	// shared types for a nested-representation field.
	StrategyNested

	// StrategyHeuristic answered from exact-name and plural patterns.
	StrategyHeuristic
)

func (s Strategy) String() string {
	switch s {
	case StrategyKnown:
		return "known"
	case StrategyHint:
		return "hint"
	case StrategyAccessor:
		return "accessor"
	case StrategyAlias:
		return "alias"
	case StrategyNested:
		return "nested"
	case StrategyHeuristic:
		return "heuristic"
	}
	return "none"
}

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// representationLiterals are hint values that name a projection level rather
// than a type. The match is exact; other casings pass through untouched.
var representationLiterals = map[string]struct{}{
	"REF": {}, "DEFAULT": {}, "FULL": {},
	"Ref": {}, "Default": {}, "Full": {},
}

// DefaultPluralTypes maps well-known plural field names to their element
// collections.
var DefaultPluralTypes = map[string]string{
	"roles":       "List<Role>",
	"privileges":  "List<Privilege>",
	"names":       "List<PersonName>",
	"addresses":   "List<PersonAddress>",
	"identifiers": "List<PatientIdentifier>",
	"attributes":  "List<PersonAttribute>",
}

// DefaultCommonTypes returns the shared base types consulted when a
// nested-representation field is not declared on the delegate itself. They
// carry the audit and metadata properties every persisted domain object
// inherits.
func DefaultCommonTypes() []domain.IntrospectableType {
	return []domain.IntrospectableType{
		domain.NewStaticType("BaseData", map[string]string{
			"creator":     "User",
			"dateCreated": "Date",
			"changedBy":   "User",
			"dateChanged": "Date",
			"voided":      "Boolean",
			"voidedBy":    "User",
			"dateVoided":  "Date",
			"voidReason":  "String",
		}),
		domain.NewStaticType("BaseMetadata", map[string]string{
			"name":         "String",
			"description":  "String",
			"creator":      "User",
			"dateCreated":  "Date",
			"changedBy":    "User",
			"dateChanged":  "Date",
			"retired":      "Boolean",
			"retiredBy":    "User",
			"dateRetired":  "Date",
			"retireReason": "String",
		}),
	}
}

// Config holds resolver construction options. Zero values select the
// defaults.
type Config struct {
	// CommonTypes are consulted by the nested-representation fallback.
	// Nil selects DefaultCommonTypes.
	CommonTypes []domain.IntrospectableType

	// PluralTypes maps plural field names to collection type names for the
	// heuristic fallback. Nil selects DefaultPluralTypes.
	PluralTypes map[string]string

	// Debugger receives debug output. Nil disables it.
	Debugger Debugger
}

// Service resolves field types. It never fails; the final heuristic always
// produces an answer.
type Service struct {
	commonTypes []domain.IntrospectableType
	pluralTypes map[string]string
	debug       Debugger
}

// New creates a resolver.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	s := &Service{
		commonTypes: config.CommonTypes,
		pluralTypes: config.PluralTypes,
		debug:       config.Debugger,
	}
	if s.commonTypes == nil {
		s.commonTypes = DefaultCommonTypes()
	}
	if s.pluralTypes == nil {
		s.pluralTypes = DefaultPluralTypes
	}
	return s
}

// Resolve determines the canonical type name of one representation field.
// known carries property types learned earlier in the run; the result is
// written back into it so later representations of the same resource agree.
func (s *Service) Resolve(
	field domain.FieldDescriptor,
	resource *domain.ResourceDescriptor,
	known map[string]string,
) (string, Strategy) {
	typeName, strategy := s.resolve(field, resource, known)
	if known != nil {
		known[field.Name] = typeName
	}
	s.debugf("resolver: %s.%s -> %s (%s)", resource.Name, field.Name, typeName, strategy)
	return typeName, strategy
}

func (s *Service) resolve(
	field domain.FieldDescriptor,
	resource *domain.ResourceDescriptor,
	known map[string]string,
) (string, Strategy) {
	if prior, ok := known[field.Name]; ok && prior != "" {
		return prior, StrategyKnown
	}

	if field.ConvertAs != "" {
		if _, isLiteral := representationLiterals[field.ConvertAs]; !isLiteral {
			return field.ConvertAs, StrategyHint
		}
	}

	if field.AccessorType != "" {
		return field.AccessorType, StrategyAccessor
	}

	if field.DelegateField != "" && field.DelegateField != field.Name && resource.Delegate != nil {
		if typeName, ok := resource.Delegate.PropertyType(field.DelegateField); ok && typeName != "" {
			return typeName, StrategyAlias
		}
	}

	if field.Rep != "" {
		if typeName, ok := s.resolveNested(field.Name, resource); ok {
			return typeName, StrategyNested
		}
	}

	return s.resolveByName(field.Name), StrategyHeuristic
}

// resolveNested introspects the delegate first and falls back to the common
// shared types.
func (s *Service) resolveNested(fieldName string, resource *domain.ResourceDescriptor) (string, bool) {
	if resource.Delegate != nil {
		if typeName, ok := resource.Delegate.PropertyType(fieldName); ok && typeName != "" {
			return typeName, true
		}
	}
	for _, common := range s.commonTypes {
		if typeName, ok := common.PropertyType(fieldName); ok && typeName != "" {
			return typeName, true
		}
	}
	return "", false
}

// resolveByName is the terminal heuristic. It always answers.
func (s *Service) resolveByName(fieldName string) string {
	switch fieldName {
	case "display":
		return "String"
	case "auditInfo":
		return "SimpleObject"
	case "links":
		return "List<Link>"
	case "id":
		return "Integer"
	case "uuid":
		return "String"
	case "voided", "retired":
		return "Boolean"
	case "dateCreated", "dateChanged", "dateVoided", "dateRetired":
		return "Date"
	}

	if typeName, ok := s.pluralTypes[fieldName]; ok {
		return typeName
	}
	if len(fieldName) > 3 && strings.HasSuffix(fieldName, "s") {
		return "List<Object>"
	}
	return "String"
}

func (s *Service) debugf(format string, v ...interface{}) {
	if s.debug != nil {
		s.debug.Printf(format, v...)
	}
}
