package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aptflow/raptobo/pkg/apt"
	"github.com/aptflow/raptobo/pkg/deb822"
	"github.com/aptflow/raptobo/pkg/fetch"
	"github.com/aptflow/raptobo/pkg/sources"
)

// parseSourceInput accepts either a path to a sources.list/.sources file or
// a single source line passed directly on the command line. Entries with
// Enabled false (a deb822 stanza marked "Enabled: no") are dropped before
// the caller ever sees them, matching apt's own sources.list.d behavior.
func parseSourceInput(source string) ([]sources.Entry, error) {
	entries, err := parseSourceEntries(source)
	if err != nil {
		return nil, err
	}

	enabled := entries[:0]
	for _, entry := range entries {
		if entry.Enabled {
			enabled = append(enabled, entry)
		}
	}
	return enabled, nil
}

func parseSourceEntries(source string) ([]sources.Entry, error) {
	if strings.HasPrefix(source, "/") || strings.HasPrefix(source, "./") || strings.HasPrefix(source, "../") {
		file, err := os.Open(source)
		if err != nil {
			return nil, fmt.Errorf("failed to open sources file: %w", err)
		}
		defer file.Close()

		if strings.HasSuffix(source, ".sources") {
			return sources.ParseDeb822Sources(file)
		}
		return sources.ParseSourcesList(file)
	}

	return sources.ParseSourcesList(strings.NewReader(source))
}

// loadModel fetches and parses every (component, architecture) index named
// by entry's repository, using the default HTTP/file fetcher registry.
func loadModel(ctx context.Context, entry sources.Entry) (*apt.RepositoryModel, error) {
	spec := apt.RepositorySpec{
		URI:          entry.URI,
		Distribution: entry.Distribution,
		Components:   entry.Components,
		Source:       entry.Type == sources.SourceTypeSrc,
		Flat:         entry.Flat(),
	}
	return apt.Load(ctx, fetch.DefaultRegistry(), spec)
}

// allPackages flattens every index's package list in a model into one
// sequence. Indices are visited in map iteration order, so the order of
// packages from different indices is not defined.
func allPackages(model *apt.RepositoryModel) []*deb822.Package {
	var out []*deb822.Package
	for _, packages := range model.Packages {
		out = append(out, packages...)
	}
	return out
}

func outputPackage(pkg *deb822.Package, format string) error {
	switch format {
	case "text":
		fmt.Printf("%s\n", pkg.Package)
	case "json":
		data, err := json.Marshal(pkg)
		if err != nil {
			return fmt.Errorf("failed to marshal package: %w", err)
		}
		fmt.Println(string(data))
	case "tsv":
		fmt.Printf("%s\t%s\t%s\t%s\t%s\n",
			pkg.Package, pkg.Version.String(), pkg.Architecture, pkg.Section,
			strings.ReplaceAll(pkg.Description, "\n", " "))
	case "raw":
		var b strings.Builder
		fmt.Fprintf(&b, "Package: %s\n", pkg.Package)
		fmt.Fprintf(&b, "Version: %s\n", pkg.Version.String())
		fmt.Fprintf(&b, "Architecture: %s\n", pkg.Architecture)
		if pkg.Section != "" {
			fmt.Fprintf(&b, "Section: %s\n", pkg.Section)
		}
		if pkg.Priority != "" {
			fmt.Fprintf(&b, "Priority: %s\n", pkg.Priority)
		}
		if pkg.Maintainer != "" {
			fmt.Fprintf(&b, "Maintainer: %s\n", pkg.Maintainer)
		}
		if pkg.Homepage != "" {
			fmt.Fprintf(&b, "Homepage: %s\n", pkg.Homepage)
		}
		if pkg.Description != "" {
			fmt.Fprintf(&b, "Description: %s\n", pkg.Description)
		}
		fmt.Print(b.String())
		fmt.Println()
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05 MST")
}
