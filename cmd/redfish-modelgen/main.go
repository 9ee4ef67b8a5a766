// Command redfish-modelgen walks a tree of sharded OpenAPI 3.0/3.1
// documents, computes the transitive $ref closure of every operation's
// request/response schema, and materializes a statically-typed Go data
// model mirroring every reachable schema.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/bmcpi/redfish-modelgen/internal/cliconfig"
	"github.com/bmcpi/redfish-modelgen/internal/collector"
	"github.com/bmcpi/redfish-modelgen/internal/dupcheck"
	"github.com/bmcpi/redfish-modelgen/internal/generator"
	"github.com/bmcpi/redfish-modelgen/internal/writer"
)

func main() {
	cfg, err := cliconfig.Parse(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println("Redfish OpenAPI Model Generator")
	fmt.Println("=" + strings.Repeat("=", 30))
	fmt.Printf("Input root:  %s\n", cfg.InputRoot)
	fmt.Printf("Output root: %s\n", cfg.OutputRoot)
	fmt.Println()

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("Generation complete.")
}

func run(cfg *cliconfig.Config) error {
	fs := afero.NewOsFs()

	fmt.Print("Schema collecting... ")
	coll := collector.New(fs, cfg.InputRoot, cfg.Log, cfg.StrictMissingRefs)
	schemas, err := coll.Collect()
	if err != nil {
		fmt.Println("FAILED")
		return fmt.Errorf("collecting schemas: %w", err)
	}
	fmt.Printf("OK (%d schemas)\n", len(schemas))

	dupcheck.Check(schemas, cfg.Log)

	fmt.Print("Source code generating... ")
	tree, err := generator.Generate(schemas, coll.RefTargets(), cfg.Log, cfg.GoModuleBase)
	if err != nil {
		fmt.Println("FAILED")
		return fmt.Errorf("generating model: %w", err)
	}
	fmt.Printf("OK (%d files)\n", len(tree.Files))

	fmt.Print("Writing output tree... ")
	if err := writer.Write(fs, cfg.OutputRoot, tree); err != nil {
		fmt.Println("FAILED")
		return fmt.Errorf("writing output: %w", err)
	}
	fmt.Println("OK")

	return nil
}
