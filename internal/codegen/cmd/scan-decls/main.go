package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/openminted/xsdgen/internal/codegen/tsdecl"
)

// Prints the parse tree of a TypeScript declaration file (default:
// sample.d.ts) as JSON.
func main() {
	path := "sample.d.ts"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	f, err := tsdecl.ParseFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to parse declarations: %v\n", err)
		os.Exit(1)
	}

	output, err := json.MarshalIndent(map[string]any{
		"interfaces": f.Interfaces(),
		"types":      f.Aliases(),
	}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal JSON: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(string(output))
}
