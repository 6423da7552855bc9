package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openminted/xsdgen/internal/codegen/scanner"
)

// Prints the tables scanned from the schema directory given as argument
// (default: the working directory) as JSON.
func main() {
	dir := "."
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	res, err := scanner.ScanDir(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to scan schemas: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(map[string]any{
		"files":        res.Files,
		"descriptions": res.Descriptions,
		"enums":        res.Enums,
		"conflicts":    res.Conflicts,
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
