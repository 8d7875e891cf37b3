package main

import (
	"context"
	"fmt"
	"strings"
)

func runSearch(source, term, format string) error {
	entries, err := parseSourceInput(source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}

	term = strings.ToLower(term)
	ctx := context.Background()

	for _, entry := range entries {
		model, err := loadModel(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", entry.URI, err)
		}

		for _, pkg := range allPackages(model) {
			if strings.Contains(strings.ToLower(pkg.Package), term) ||
				strings.Contains(strings.ToLower(pkg.Description), term) {
				if err := outputPackage(pkg, format); err != nil {
					return err
				}
			}
		}
	}

	return nil
}
