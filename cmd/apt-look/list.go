package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
)

func runList(source, format string) error {
	entries, err := parseSourceInput(source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}

	seen := make(map[string]bool)
	ctx := context.Background()

	for _, entry := range entries {
		model, err := loadModel(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", entry.URI, err)
		}

		count := 0
		for _, pkg := range allPackages(model) {
			if seen[pkg.Package] {
				continue
			}
			seen[pkg.Package] = true
			if err := outputPackage(pkg, format); err != nil {
				return err
			}
			count++
		}
		log.Info().Msgf("%d packages found in %s %s", count, entry.URI, entry.Distribution)
	}

	return nil
}
