// Package orchestrator coordinates the registry, resolver and schema builder
// to assemble a complete OpenAPI document from a resource catalog.
package orchestrator

import (
	"errors"

	"github.com/go-openapi/spec"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/medkit/resource-swag/internal/domain"
	"github.com/medkit/resource-swag/internal/registry"
	"github.com/medkit/resource-swag/internal/resolver"
	"github.com/medkit/resource-swag/internal/schema"
)

// ErrEmptyCatalog is returned when a generation run is handed no resources.
var ErrEmptyCatalog = errors.New("catalog contains no resources")

// Debugger is the interface for debug logging.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// Config holds orchestrator configuration options. Zero values select the
// defaults.
type Config struct {
	// Title, Version and Description fill the document info block.
	Title       string
	Version     string
	Description string

	// BasePath is the API base path recorded in the document.
	BasePath string

	// DepthBudget bounds nested schema expansion. Zero selects the builder
	// default.
	DepthBudget int

	// SeedTypes overrides the registry's well-known type list.
	SeedTypes []string

	// CommonTypes and PluralTypes override the resolver's fallback tables.
	CommonTypes []domain.IntrospectableType
	PluralTypes map[string]string

	// Debug receives debug output. Nil disables it.
	Debug Debugger
}

// Service assembles schema documents.
type Service struct {
	config *Config
}

// New creates a new orchestrator service with the given configuration.
func New(config *Config) *Service {
	if config == nil {
		config = &Config{}
	}
	if config.Title == "" {
		config.Title = "Resource API"
	}
	if config.Version == "" {
		config.Version = "1.0.0"
	}
	if config.BasePath == "" {
		config.BasePath = "/v1"
	}
	return &Service{config: config}
}

// Assemble builds the full document: one definition per resource and
// representation, plus a GET path per resource. Resources that yield no
// schemas are skipped; only an empty catalog is fatal.
func (s *Service) Assemble(catalog domain.Catalog) (*spec.Swagger, error) {
	if len(catalog) == 0 {
		return nil, ErrEmptyCatalog
	}

	reg := registry.New(&registry.Config{SeedTypes: s.config.SeedTypes, Debugger: s.config.Debug})
	reg.Build(catalog)

	res := resolver.New(&resolver.Config{
		CommonTypes: s.config.CommonTypes,
		PluralTypes: s.config.PluralTypes,
		Debugger:    s.config.Debug,
	})

	byType := make(map[string]*domain.ResourceDescriptor, len(catalog))
	for _, resource := range catalog {
		if resource.Delegate == nil {
			continue
		}
		if _, ok := byType[resource.Delegate.Name()]; !ok {
			byType[resource.Delegate.Name()] = resource
		}
	}

	names := schema.NewNameGenerator()
	builder := schema.NewBuilder(&schema.BuilderConfig{
		Registry:    reg,
		Resolver:    res,
		Names:       names,
		Lookup:      func(typeName string) *domain.ResourceDescriptor { return byType[typeName] },
		DepthBudget: s.config.DepthBudget,
		Debugger:    s.config.Debug,
	})

	swagger := s.baseDocument()
	for _, resource := range catalog {
		typeName := s.typeNameOf(resource)

		var built []string
		for _, rep := range domain.StandardRepresentations() {
			defName := names.SchemaName(typeName, rep)
			if builder.HasDefinition(defName) {
				built = append(built, defName)
				continue
			}
			repSchema := builder.Build(resource, rep)
			if repSchema == nil {
				s.debugf("orchestrator: %s has no %s representation", resource.Name, rep)
				continue
			}
			builder.AddDefinition(defName, repSchema)
			built = append(built, defName)
		}

		if custom := builder.BuildCustom(resource); custom != nil {
			defName := names.SchemaName(typeName, domain.RepresentationCustom)
			builder.AddDefinition(defName, custom)
			built = append(built, defName)
		}

		if len(built) == 0 {
			s.debugf("orchestrator: skipping %s, no schemas could be built", resource.Name)
			continue
		}

		path := "/" + resource.Name + "/{uuid}"
		swagger.Paths.Paths[path] = spec.PathItem{
			PathItemProps: spec.PathItemProps{
				Get: s.getOperation(resource, typeName, built),
			},
		}
	}

	swagger.Definitions = builder.Definitions()
	return swagger, nil
}

func (s *Service) baseDocument() *spec.Swagger {
	return &spec.Swagger{
		SwaggerProps: spec.SwaggerProps{
			Swagger: "2.0",
			Info: &spec.Info{InfoProps: spec.InfoProps{
				Title:       s.config.Title,
				Version:     s.config.Version,
				Description: s.config.Description,
			}},
			BasePath: s.config.BasePath,
			Produces: []string{"application/json"},
			Paths:    &spec.Paths{Paths: make(map[string]spec.PathItem)},
		},
	}
}

// getOperation builds the fetch-by-uuid operation for a resource. The
// response body is one of the built representation schemas, selected by the
// v query parameter.
func (s *Service) getOperation(resource *domain.ResourceDescriptor, typeName string, defNames []string) *spec.Operation {
	oneOf := make([]spec.Schema, 0, len(defNames))
	for _, name := range defNames {
		oneOf = append(oneOf, *schema.RefSchema(name))
	}

	responseSchema := &spec.Schema{
		SchemaProps:        spec.SchemaProps{OneOf: oneOf},
		SwaggerSchemaProps: spec.SwaggerSchemaProps{Discriminator: "v"},
	}

	uuidParam := spec.Parameter{
		ParamProps: spec.ParamProps{
			Name:        "uuid",
			In:          "path",
			Required:    true,
			Description: "Unique identifier of the " + resource.Name,
		},
		SimpleSchema: spec.SimpleSchema{Type: schema.STRING},
	}
	vParam := spec.Parameter{
		ParamProps: spec.ParamProps{
			Name:        "v",
			In:          "query",
			Description: "Representation to return. Use custom:(field1,field2) to project specific fields.",
		},
		SimpleSchema: spec.SimpleSchema{Type: schema.STRING},
		CommonValidations: spec.CommonValidations{
			Enum: []interface{}{"ref", "default", "full"},
		},
	}

	responses := &spec.Responses{ResponsesProps: spec.ResponsesProps{
		StatusCodeResponses: map[int]spec.Response{
			200: {ResponseProps: spec.ResponseProps{
				Description: typeName + " at the requested representation",
				Schema:      responseSchema,
			}},
			400: {ResponseProps: spec.ResponseProps{Description: "Malformed request or unknown representation"}},
			401: {ResponseProps: spec.ResponseProps{Description: "User not authenticated"}},
			404: {ResponseProps: spec.ResponseProps{Description: typeName + " with the given uuid does not exist"}},
		},
	}}

	return &spec.Operation{OperationProps: spec.OperationProps{
		ID:         "get" + typeName,
		Summary:    "Fetch a " + resource.Name + " by uuid",
		Tags:       []string{resource.Name},
		Produces:   []string{"application/json"},
		Parameters: []spec.Parameter{uuidParam, vParam},
		Responses:  responses,
	}}
}

// typeNameOf picks the name definitions are minted from: the delegate's
// simple type name when known, otherwise the capitalized resource name.
func (s *Service) typeNameOf(resource *domain.ResourceDescriptor) string {
	if resource.Delegate != nil {
		return resource.Delegate.Name()
	}
	return cases.Title(language.English).String(resource.Name)
}

func (s *Service) debugf(format string, v ...interface{}) {
	if s.config.Debug != nil {
		s.config.Debug.Printf(format, v...)
	}
}
