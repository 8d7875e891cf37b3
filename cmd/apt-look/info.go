package main

import (
	"context"
	"fmt"
)

func runInfo(source, packageName, format string) error {
	entries, err := parseSourceInput(source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}

	ctx := context.Background()
	for _, entry := range entries {
		model, err := loadModel(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", entry.URI, err)
		}

		for _, pkg := range allPackages(model) {
			if pkg.Package == packageName {
				return outputPackage(pkg, format)
			}
		}
	}

	return fmt.Errorf("package %q not found", packageName)
}
