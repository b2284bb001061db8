package schema

import (
	"sort"

	"github.com/go-openapi/spec"

	"github.com/medkit/resource-swag/internal/domain"
	"github.com/medkit/resource-swag/internal/resolver"
)

// DefaultDepthBudget bounds how deep nested default schemas are expanded
// before falling back to a minimal schema.
const DefaultDepthBudget = 2

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Registry answers whether a simple type name is a referenceable domain type.
type Registry interface {
	IsReferenceable(name string) bool
}

// FieldResolver resolves a field's canonical type name.
type FieldResolver interface {
	Resolve(field domain.FieldDescriptor, resource *domain.ResourceDescriptor, known map[string]string) (string, resolver.Strategy)
}

// BuilderConfig holds builder construction options. Zero values select the
// defaults.
type BuilderConfig struct {
	Registry Registry
	Resolver FieldResolver

	// Names mints every definition name. Nil selects a fresh NameGenerator.
	Names *NameGenerator

	// Lookup finds the catalog resource backing a simple delegate type name,
	// used to expand nested default schemas. Nil means nested types always
	// get the minimal fallback schema.
	Lookup func(typeName string) *domain.ResourceDescriptor

	// DepthBudget bounds nested expansion. Zero selects DefaultDepthBudget.
	DepthBudget int

	// Debugger receives debug output. Nil disables it.
	Debugger Debugger
}

// Builder constructs representation schemas and accumulates the shared
// definitions they reference.
type Builder struct {
	registry    Registry
	resolver    FieldResolver
	names       *NameGenerator
	lookup      func(typeName string) *domain.ResourceDescriptor
	depthBudget int
	debug       Debugger

	definitions map[string]spec.Schema
	known       map[string]map[string]string
}

// NewBuilder creates a Builder.
func NewBuilder(config *BuilderConfig) *Builder {
	if config == nil {
		config = &BuilderConfig{}
	}
	b := &Builder{
		registry:    config.Registry,
		resolver:    config.Resolver,
		names:       config.Names,
		lookup:      config.Lookup,
		depthBudget: config.DepthBudget,
		debug:       config.Debugger,
		definitions: make(map[string]spec.Schema),
		known:       make(map[string]map[string]string),
	}
	if b.names == nil {
		b.names = NewNameGenerator()
	}
	if b.depthBudget <= 0 {
		b.depthBudget = DefaultDepthBudget
	}
	return b
}

// Definitions returns the accumulated definition map.
func (b *Builder) Definitions() spec.Definitions {
	return b.definitions
}

// HasDefinition reports whether a definition name is already built.
func (b *Builder) HasDefinition(name string) bool {
	_, ok := b.definitions[name]
	return ok
}

// AddDefinition stores a schema under a name unless one already exists.
// Existing definitions win so references built earlier stay valid.
func (b *Builder) AddDefinition(name string, schema *spec.Schema) {
	if _, ok := b.definitions[name]; ok {
		return
	}
	b.definitions[name] = *schema
}

// KnownFor returns the property type knowledge for a resource, seeded from
// delegate introspection on first use. The resolver writes its answers back
// into the returned map.
func (b *Builder) KnownFor(resource *domain.ResourceDescriptor) map[string]string {
	known, ok := b.known[resource.Name]
	if !ok {
		known = make(map[string]string)
		if resource.Delegate != nil {
			for name, typeName := range resource.Delegate.Properties() {
				known[name] = typeName
			}
		}
		b.known[resource.Name] = known
	}
	return known
}

// Build constructs the schema of one resource at one representation. Nil
// means the representation is unsupported or its description failed; the
// failure is logged and the resource simply contributes fewer schemas.
func (b *Builder) Build(resource *domain.ResourceDescriptor, rep domain.RepresentationKind) *spec.Schema {
	visited := make(map[string]bool)
	if resource.Delegate != nil {
		visited[resource.Delegate.Name()] = true
	}
	return b.build(resource, rep, 0, visited)
}

// BuildCustom synthesizes the custom-representation schema: the union of the
// delegate's introspected properties and every field any standard
// representation exposes. Nil when nothing is known about the resource.
func (b *Builder) BuildCustom(resource *domain.ResourceDescriptor) *spec.Schema {
	seen := make(map[string]bool)
	var union []domain.FieldDescriptor

	if resource.Delegate != nil {
		props := resource.Delegate.Properties()
		names := make([]string, 0, len(props))
		for name := range props {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			seen[name] = true
			union = append(union, domain.FieldDescriptor{Name: name})
		}
	}
	for _, rep := range domain.StandardRepresentations() {
		description := b.describe(resource, rep)
		if description == nil {
			continue
		}
		for _, field := range description.Fields {
			if seen[field.Name] {
				continue
			}
			seen[field.Name] = true
			union = append(union, field)
		}
	}
	if len(union) == 0 {
		return nil
	}

	visited := make(map[string]bool)
	if resource.Delegate != nil {
		visited[resource.Delegate.Name()] = true
	}
	known := b.KnownFor(resource)
	schema := &spec.Schema{SchemaProps: spec.SchemaProps{
		Type:       []string{OBJECT},
		Properties: make(map[string]spec.Schema, len(union)),
	}}
	for _, field := range union {
		typeName, _ := b.resolver.Resolve(field, resource, known)
		schema.Properties[field.Name] = *b.propertySchema(typeName, 0, visited)
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

// describe fetches a representation's field list, absorbing errors and
// panics from the source.
func (b *Builder) describe(resource *domain.ResourceDescriptor, rep domain.RepresentationKind) (description *domain.ResourceDescription) {
	defer func() {
		if r := recover(); r != nil {
			b.debugf("builder: %s/%s description panicked: %v", resource.Name, rep, r)
			description = nil
		}
	}()

	if resource.Source == nil {
		return nil
	}
	description, err := resource.Source.Description(rep)
	if err != nil {
		b.debugf("builder: %s/%s description failed: %v", resource.Name, rep, err)
		return nil
	}
	return description
}

func (b *Builder) build(
	resource *domain.ResourceDescriptor,
	rep domain.RepresentationKind,
	depth int,
	visited map[string]bool,
) *spec.Schema {
	description := b.describe(resource, rep)
	if description == nil {
		return nil
	}

	known := b.KnownFor(resource)
	schema := &spec.Schema{SchemaProps: spec.SchemaProps{
		Type:       []string{OBJECT},
		Properties: make(map[string]spec.Schema, len(description.Fields)),
	}}
	for _, field := range description.Fields {
		typeName, _ := b.resolver.Resolve(field, resource, known)
		schema.Properties[field.Name] = *b.propertySchema(typeName, depth, visited)
		if field.Required {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

// propertySchema maps one resolved type name onto a property schema,
// expanding referenceable types into $ref links.
func (b *Builder) propertySchema(typeName string, depth int, visited map[string]bool) *spec.Schema {
	clean := b.names.CleanTypeName(typeName)

	if domain.IsCollectionTypeName(clean) {
		elem := b.names.CleanTypeName(domain.ElementTypeName(clean))
		if b.registry.IsReferenceable(elem) {
			return ArrayOf(b.refOrInline(elem, depth, visited))
		}
		if IsScalarTypeName(elem) {
			return ArrayOf(ScalarSchema(elem))
		}
		return ArrayOf(opaqueSchema(elem))
	}

	if b.registry.IsReferenceable(clean) {
		return b.refOrInline(clean, depth, visited)
	}
	if IsScalarTypeName(clean) {
		return ScalarSchema(clean)
	}
	return opaqueSchema(clean)
}

// refOrInline renders a referenceable property type. Types backed by a
// catalog resource get their default definition built (or reused) and a $ref
// to it; on a cycle or exhausted depth the minimal schema is inlined at the
// property site instead, so the type's real definition name stays free for
// its own build. Types without a catalog resource get a shared safety-net
// definition, which can never collide with a real schema.
func (b *Builder) refOrInline(typeName string, depth int, visited map[string]bool) *spec.Schema {
	defName := b.names.SchemaName(typeName, domain.RepresentationDefault)
	if _, ok := b.definitions[defName]; ok {
		return RefSchema(defName)
	}

	var res *domain.ResourceDescriptor
	if b.lookup != nil {
		res = b.lookup(typeName)
	}
	if res == nil {
		b.definitions[defName] = *MinimalSchema(typeName)
		return RefSchema(defName)
	}

	if visited[typeName] || depth+1 >= b.depthBudget {
		b.debugf("builder: inlining minimal schema for %s (depth %d)", typeName, depth)
		return MinimalSchema(typeName)
	}

	visited[typeName] = true
	nested := b.build(res, domain.RepresentationDefault, depth+1, visited)
	delete(visited, typeName)
	if nested == nil {
		b.debugf("builder: %s has no default representation, inlining minimal schema", typeName)
		return MinimalSchema(typeName)
	}
	b.definitions[defName] = *nested
	return RefSchema(defName)
}

// MinimalSchema is the fallback shape for a type that cannot be expanded,
// whether inlined at a property site or registered as a safety-net
// definition for types outside the catalog.
func MinimalSchema(typeName string) *spec.Schema {
	return &spec.Schema{SchemaProps: spec.SchemaProps{
		Type:        []string{OBJECT},
		Description: "Minimal schema for " + typeName,
		Properties: map[string]spec.Schema{
			"id":      *PrimitiveSchema(INTEGER),
			"uuid":    *PrimitiveSchema(STRING),
			"display": *PrimitiveSchema(STRING),
		},
	}}
}

func opaqueSchema(typeName string) *spec.Schema {
	s := PrimitiveSchema(OBJECT)
	s.Description = typeName
	return s
}

func (b *Builder) debugf(format string, v ...interface{}) {
	if b.debug != nil {
		b.debug.Printf(format, v...)
	}
}
