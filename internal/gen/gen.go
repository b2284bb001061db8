// Package gen drives a full generation run: load catalog files, assemble the
// document, and write the requested output formats.
package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/go-openapi/spec"
	"sigs.k8s.io/yaml"

	"github.com/medkit/resource-swag/internal/catalog"
	"github.com/medkit/resource-swag/internal/console"
	"github.com/medkit/resource-swag/internal/orchestrator"
)

// defaultInstanceName is the filename stem used when no instance name is
// configured.
const defaultInstanceName = "swagger"

type genTypeWriter func(*Config, *spec.Swagger) error

// Gen presents a generate tool for resource catalogs.
type Gen struct {
	json          func(data interface{}) ([]byte, error)
	jsonIndent    func(data interface{}) ([]byte, error)
	jsonToYAML    func(data []byte) ([]byte, error)
	outputTypeMap map[string]genTypeWriter
	debug         Debugger
}

// Debugger is the interface that wraps the basic Printf method.
type Debugger interface {
	Printf(format string, v ...interface{})
}

// New creates a new Gen.
func New() *Gen {
	gen := Gen{
		json: json.Marshal,
		jsonIndent: func(data interface{}) ([]byte, error) {
			return json.MarshalIndent(data, "", "    ")
		},
		jsonToYAML: yaml.JSONToYAML,
		debug:      log.New(os.Stdout, "", log.LstdFlags),
	}

	gen.outputTypeMap = map[string]genTypeWriter{
		"json": gen.writeJSONSwagger,
		"yaml": gen.writeYAMLSwagger,
		"yml":  gen.writeYAMLSwagger,
	}

	return &gen
}

// Config presents Gen configurations.
type Config struct {
	Debugger Debugger

	// CatalogFiles are the serialized catalog documents to load.
	CatalogFiles []string

	// OutputDir represents the output directory for all the generated files.
	OutputDir string

	// OutputTypes define types of files which should be generated.
	OutputTypes []string

	// InstanceName distinguishes multiple documents generated into the same
	// directory. The default value is "swagger".
	InstanceName string

	// Title, Version, Description and BasePath fill the document info block.
	Title       string
	Version     string
	Description string
	BasePath    string

	// Depth bounds nested schema expansion. Zero selects the default.
	Depth int

	// SeedTypes overrides the registry's well-known type list.
	SeedTypes []string
}

// Build loads the catalog files, assembles the document and writes every
// requested output type.
func (g *Gen) Build(config *Config) error {
	if config.Debugger != nil {
		g.debug = config.Debugger
	}
	if config.InstanceName == "" {
		config.InstanceName = defaultInstanceName
	}
	if len(config.CatalogFiles) == 0 {
		return errors.New("no catalog files given")
	}

	console.Logger.Debug("Loading %d catalog files....", len(config.CatalogFiles))

	loader := catalog.NewLoader(catalog.WithDebugger(g.debug))
	loaded, err := loader.Load(config.CatalogFiles...)
	if err != nil {
		return err
	}

	console.Logger.Debug("Assembling schema document....")

	orc := orchestrator.New(&orchestrator.Config{
		Title:       config.Title,
		Version:     config.Version,
		Description: config.Description,
		BasePath:    config.BasePath,
		DepthBudget: config.Depth,
		SeedTypes:   config.SeedTypes,
		Debug:       g.debug,
	})
	swagger, err := orc.Assemble(loaded)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(config.OutputDir, os.ModePerm); err != nil {
		return err
	}

	for _, outputType := range config.OutputTypes {
		outputType = strings.ToLower(strings.TrimSpace(outputType))
		if typeWriter, ok := g.outputTypeMap[outputType]; ok {
			if err := typeWriter(config, swagger); err != nil {
				return err
			}
		} else {
			console.Logger.Warn("output type '%s' not supported", outputType)
		}
	}

	return nil
}

func (g *Gen) writeJSONSwagger(config *Config, swagger *spec.Swagger) error {
	filename := "swagger.json"

	if config.InstanceName != defaultInstanceName {
		filename = config.InstanceName + "_" + filename
	}

	jsonFileName := path.Join(config.OutputDir, filename)

	b, err := g.jsonIndent(swagger)
	if err != nil {
		return err
	}

	err = g.writeFile(b, jsonFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create swagger.json at %+v", jsonFileName)

	return nil
}

func (g *Gen) writeYAMLSwagger(config *Config, swagger *spec.Swagger) error {
	filename := "swagger.yaml"

	if config.InstanceName != defaultInstanceName {
		filename = config.InstanceName + "_" + filename
	}

	yamlFileName := path.Join(config.OutputDir, filename)

	b, err := g.json(swagger)
	if err != nil {
		return err
	}

	y, err := g.jsonToYAML(b)
	if err != nil {
		return fmt.Errorf("cannot covert json to yaml error: %s", err)
	}

	err = g.writeFile(y, yamlFileName)
	if err != nil {
		return err
	}

	console.Logger.Debug("create swagger.yaml at %+v", yamlFileName)

	return nil
}

func (g *Gen) writeFile(b []byte, file string) error {
	f, err := os.Create(file)
	if err != nil {
		return err
	}

	defer f.Close()

	_, err = f.Write(b)

	return err
}
