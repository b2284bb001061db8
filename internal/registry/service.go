// Package registry tracks which simple type names correspond to referenceable
// domain objects, so schema construction can decide between emitting a $ref
// and an inline scalar.
package registry

import (
	"strings"

	"github.com/medkit/resource-swag/internal/domain"
)

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// WellKnownTypes is the default seed list of core domain types that are
// treated as referenceable even when no resource in the catalog exposes them
// directly.
var WellKnownTypes = []string{
	"Person", "Patient", "User", "Provider",
	"Encounter", "Visit", "Obs", "Order",
	"Concept", "Drug", "Location", "Program",
	"Role", "Privilege", "Form", "Field",
}

// Config holds registry construction options. Zero values select the
// defaults.
type Config struct {
	// SeedTypes are treated as referenceable before any catalog is seen.
	// Nil selects WellKnownTypes.
	SeedTypes []string

	// Debugger receives debug output. Nil disables it.
	Debugger Debugger
}

// Service is the domain type registry.
type Service struct {
	known map[string]struct{}
	debug Debugger
}

// New creates a registry seeded with the configured well-known types.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	seed := config.SeedTypes
	if seed == nil {
		seed = WellKnownTypes
	}

	s := &Service{
		known: make(map[string]struct{}, len(seed)),
		debug: config.Debugger,
	}
	for _, name := range seed {
		s.add(name)
	}
	return s
}

// Build registers the delegate type of every resource in the catalog.
// Resources without a resolvable delegate are skipped with a warning from the
// caller's perspective; they simply contribute nothing.
func (s *Service) Build(catalog domain.Catalog) {
	for _, resource := range catalog {
		if resource.Delegate == nil {
			s.debugf("registry: resource %q has no delegate type, skipping", resource.Name)
			continue
		}
		s.add(resource.Delegate.Name())
	}
}

// Add registers a single simple type name as referenceable.
func (s *Service) Add(name string) {
	s.add(name)
}

// IsReferenceable reports whether the cleaned simple name is a known domain
// type.
func (s *Service) IsReferenceable(name string) bool {
	name = cleanSimpleName(name)
	if name == "" {
		return false
	}
	_, ok := s.known[name]
	return ok
}

// Len returns the number of registered type names.
func (s *Service) Len() int {
	return len(s.known)
}

func (s *Service) add(name string) {
	name = cleanSimpleName(name)
	if name == "" {
		return
	}
	if _, ok := s.known[name]; ok {
		return
	}
	s.known[name] = struct{}{}
	s.debugf("registry: registered domain type %q", name)
}

func (s *Service) debugf(format string, v ...interface{}) {
	if s.debug != nil {
		s.debug.Printf(format, v...)
	}
}

// cleanSimpleName reduces a possibly qualified or annotated type name to its
// bare simple name.
func cleanSimpleName(name string) string {
	name = strings.TrimSpace(name)
	if idx := strings.Index(name, " (from "); idx >= 0 {
		name = name[:idx]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	return name
}
