// cmd/tools/catalog-validator/main.go

// catalog-validator schema-checks reference catalog files before deploy:
//
//	go run ./cmd/tools/catalog-validator catalog.json [more.json...]
package main

import (
	"fmt"
	"os"

	"careerguide-workers/pkg/registry"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: catalog-validator <catalog.json> [more.json...]")
		os.Exit(2)
	}

	failed := false
	for _, path := range os.Args[1:] {
		catalog, err := registry.LoadCatalog(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL  %s: %v\n", path, err)
			failed = true
			continue
		}
		fmt.Printf("OK    %s (version %s, %d careers, %d colleges, %d courses)\n",
			path, catalog.Version, len(catalog.Careers), len(catalog.Colleges), len(catalog.Courses))
	}

	if failed {
		os.Exit(1)
	}
}
