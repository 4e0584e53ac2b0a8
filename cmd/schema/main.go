// Command schema writes the JSON schema of the feeds configuration.
// With -check it only reports whether the existing file is up to date.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/4thWaveAI/feeds/pkg/config"
)

func main() {
	check := flag.Bool("check", false, "fail if the schema file is stale instead of writing it")
	flag.Parse()

	outputPath := "schema.json"
	if flag.NArg() > 0 {
		outputPath = flag.Arg(0)
	}

	data, err := schemaJSON()
	if err != nil {
		log.Fatalf("failed to build schema: %v", err)
	}

	if *check {
		current, err := os.ReadFile(outputPath) //nolint:gosec // path comes from the command line
		if err != nil {
			log.Fatalf("failed to read schema file: %v", err)
		}
		if !bytes.Equal(bytes.TrimSpace(current), bytes.TrimSpace(data)) {
			log.Fatalf("schema %s is stale, run go generate ./pkg/config", outputPath)
		}
		fmt.Printf("Schema at %s is up to date\n", outputPath)
		return
	}

	if err := os.WriteFile(outputPath, data, 0o600); err != nil { //nolint:gosec // schema file is not sensitive
		log.Fatalf("failed to write schema file: %v", err)
	}
	fmt.Printf("Schema generated successfully at %s\n", outputPath)
}

func schemaJSON() ([]byte, error) {
	schema, err := config.GenerateSchema()
	if err != nil {
		return nil, err
	}
	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal schema: %w", err)
	}
	return append(data, '\n'), nil
}
