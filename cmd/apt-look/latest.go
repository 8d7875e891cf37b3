package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/aptflow/raptobo/pkg/deb822"
)

type packageKey struct {
	name string
	arch string
}

// runLatest shows the newest version of each (name, architecture) pair,
// using the module's own Debian version comparator rather than a
// third-party one: this is the comparator the repository metadata parser
// already builds on.
func runLatest(source, format string) error {
	entries, err := parseSourceInput(source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}

	latest := make(map[packageKey]*deb822.Package)
	ctx := context.Background()

	for _, entry := range entries {
		model, err := loadModel(ctx, entry)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", entry.URI, err)
		}

		for _, pkg := range allPackages(model) {
			key := packageKey{name: pkg.Package, arch: pkg.Architecture}
			if existing, ok := latest[key]; !ok || existing.Version.Less(pkg.Version) {
				latest[key] = pkg
			}
		}
	}

	packages := make([]*deb822.Package, 0, len(latest))
	for _, pkg := range latest {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		if packages[i].Package != packages[j].Package {
			return packages[i].Package < packages[j].Package
		}
		return packages[i].Architecture < packages[j].Architecture
	})

	for _, pkg := range packages {
		if err := outputPackage(pkg, format); err != nil {
			return err
		}
	}
	return nil
}
