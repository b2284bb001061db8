package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/medkit/resource-swag/internal/console"
	"github.com/medkit/resource-swag/internal/gen"
)

const (
	outputFlag       = "output"
	outputTypesFlag  = "outputTypes"
	titleFlag        = "title"
	apiVersionFlag   = "apiVersion"
	descriptionFlag  = "description"
	basePathFlag     = "basePath"
	depthFlag        = "depth"
	instanceNameFlag = "instanceName"
	seedTypesFlag    = "seedTypes"
	quietFlag        = "quiet"
	debugFlag        = "debug"
)

var generateFlags = []cli.Flag{
	&cli.BoolFlag{
		Name:    quietFlag,
		Aliases: []string{"q"},
		Usage:   "Make the logger quiet.",
	},
	&cli.StringFlag{
		Name:    outputFlag,
		Aliases: []string{"o"},
		Value:   "./docs",
		Usage:   "Output directory for all the generated files (swagger.json, swagger.yaml)",
	},
	&cli.StringFlag{
		Name:    outputTypesFlag,
		Aliases: []string{"ot"},
		Value:   "json,yaml",
		Usage:   "Output types of generated files (swagger.json, swagger.yaml) like json,yaml",
	},
	&cli.StringFlag{
		Name:  titleFlag,
		Value: "Resource API",
		Usage: "Title recorded in the document info block",
	},
	&cli.StringFlag{
		Name:  apiVersionFlag,
		Value: "1.0.0",
		Usage: "API version recorded in the document info block",
	},
	&cli.StringFlag{
		Name:  descriptionFlag,
		Value: "",
		Usage: "Description recorded in the document info block",
	},
	&cli.StringFlag{
		Name:  basePathFlag,
		Value: "/v1",
		Usage: "Base path recorded in the document",
	},
	&cli.IntFlag{
		Name:  depthFlag,
		Value: 2,
		Usage: "How deep nested representation schemas are expanded",
	},
	&cli.StringFlag{
		Name:  instanceNameFlag,
		Value: "",
		Usage: "This parameter can be used to name different swagger document instances. It is optional.",
	},
	&cli.StringFlag{
		Name:  seedTypesFlag,
		Value: "",
		Usage: "Comma-separated list of type names treated as referenceable, replacing the built-in list",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "Enable debug mode, disabled by default",
	},
}

func generateAction(ctx *cli.Context) error {
	if ctx.IsSet(debugFlag) {
		console.Logger.DebugLevel = 1
	}

	catalogFiles := ctx.Args().Slice()
	if len(catalogFiles) == 0 {
		return fmt.Errorf("no catalog files given, usage: resource-swag generate <catalog.json> [more...]")
	}

	outputTypes := strings.Split(ctx.String(outputTypesFlag), ",")
	if len(outputTypes) == 0 {
		return fmt.Errorf("no output types specified")
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)
	if ctx.Bool(quietFlag) {
		logger = log.New(io.Discard, "", log.LstdFlags)
	}

	var seedTypes []string
	if raw := ctx.String(seedTypesFlag); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				seedTypes = append(seedTypes, name)
			}
		}
	}

	start := time.Now()
	err := gen.New().Build(&gen.Config{
		CatalogFiles: catalogFiles,
		OutputDir:    ctx.String(outputFlag),
		OutputTypes:  outputTypes,
		InstanceName: ctx.String(instanceNameFlag),
		Title:        ctx.String(titleFlag),
		Version:      ctx.String(apiVersionFlag),
		Description:  ctx.String(descriptionFlag),
		BasePath:     ctx.String(basePathFlag),
		Depth:        ctx.Int(depthFlag),
		SeedTypes:    seedTypes,
		Debugger:     logger,
	})
	if err != nil {
		return err
	}

	if !ctx.Bool(quietFlag) {
		console.Logger.Info("generated %d file(s) in %s", len(outputTypes), time.Since(start).Round(time.Millisecond))
	}
	return nil
}

func main() {
	app := cli.NewApp()
	app.Name = "resource-swag"
	app.Version = gen.Version
	app.Usage = "Generate Swagger 2.0 documentation from resource catalogs."
	app.Commands = []*cli.Command{
		{
			Name:    "generate",
			Aliases: []string{"g"},
			Usage:   "Generate swagger documentation from catalog files",
			Action:  generateAction,
			Flags:   generateFlags,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
