package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aptflow/raptobo/pkg/apt"
)

// repositoryStats summarises one RepositoryModel for the stats command.
type repositoryStats struct {
	Repository struct {
		Origin        string    `json:"origin,omitempty"`
		Label         string    `json:"label,omitempty"`
		Suite         string    `json:"suite,omitempty"`
		Codename      string    `json:"codename"`
		Date          time.Time `json:"date"`
		Architectures []string  `json:"architectures"`
		Components    []string  `json:"components"`
	} `json:"repository"`

	Packages struct {
		Total          int            `json:"total"`
		TotalSizeBytes int64          `json:"total_size_bytes"`
		ByArchitecture map[string]int `json:"by_architecture"`
		ByComponent    map[string]int `json:"by_component"`
		BySection      map[string]int `json:"by_section"`
		ByPriority     map[string]int `json:"by_priority"`
	} `json:"packages"`
}

func computeStats(model *apt.RepositoryModel) *repositoryStats {
	s := &repositoryStats{}
	s.Repository.Origin = model.Metadata.Origin
	s.Repository.Label = model.Metadata.Label
	s.Repository.Suite = model.Metadata.Suite
	s.Repository.Codename = model.Metadata.Codename
	s.Repository.Date = model.Metadata.Date
	s.Repository.Architectures = model.Metadata.Architectures
	s.Repository.Components = model.Metadata.Components

	s.Packages.ByArchitecture = make(map[string]int)
	s.Packages.ByComponent = make(map[string]int)
	s.Packages.BySection = make(map[string]int)
	s.Packages.ByPriority = make(map[string]int)

	for component, byArch := range model.Indices {
		for _, paths := range byArch {
			for _, path := range paths {
				for _, pkg := range model.Packages[path] {
					s.Packages.Total++
					if pkg.Architecture != "" {
						s.Packages.ByArchitecture[pkg.Architecture]++
					}
					s.Packages.ByComponent[component]++
					if pkg.Section != "" {
						s.Packages.BySection[pkg.Section]++
					}
					if pkg.Priority != "" {
						s.Packages.ByPriority[pkg.Priority]++
					}
					if size, err := strconv.ParseInt(pkg.Size, 10, 64); err == nil {
						s.Packages.TotalSizeBytes += size
					}
				}
			}
		}
	}

	return s
}

func runStats(source, format string) error {
	entries, err := parseSourceInput(source)
	if err != nil {
		return fmt.Errorf("failed to parse source: %w", err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("no sources found in %q", source)
	}

	model, err := loadModel(context.Background(), entries[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", entries[0].URI, err)
	}

	return outputStats(computeStats(model), format)
}

func outputStats(stats *repositoryStats, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(stats)
	case "tsv":
		fmt.Printf("codename\t%s\n", stats.Repository.Codename)
		fmt.Printf("date\t%s\n", stats.Repository.Date.Format(time.RFC3339))
		fmt.Printf("architectures\t%s\n", strings.Join(stats.Repository.Architectures, ","))
		fmt.Printf("components\t%s\n", strings.Join(stats.Repository.Components, ","))
		fmt.Printf("total_packages\t%d\n", stats.Packages.Total)
		fmt.Printf("total_size_bytes\t%d\n", stats.Packages.TotalSizeBytes)
		return nil
	case "raw":
		fmt.Printf("Codename: %s\n", stats.Repository.Codename)
		fmt.Printf("Date: %s\n", formatDate(stats.Repository.Date))
		fmt.Printf("Architectures: %s\n", strings.Join(stats.Repository.Architectures, " "))
		fmt.Printf("Components: %s\n", strings.Join(stats.Repository.Components, " "))
		fmt.Printf("Total-Packages: %d\n", stats.Packages.Total)
		fmt.Printf("Total-Size: %d\n", stats.Packages.TotalSizeBytes)
		return nil
	case "text":
		fallthrough
	default:
		fmt.Println("Repository Statistics")
		fmt.Println("======================")
		fmt.Printf("Codename: %s\n", stats.Repository.Codename)
		fmt.Printf("Date: %s\n", formatDate(stats.Repository.Date))
		fmt.Printf("Architectures: %s\n", strings.Join(stats.Repository.Architectures, ", "))
		fmt.Printf("Components: %s\n", strings.Join(stats.Repository.Components, ", "))
		fmt.Printf("\nTotal packages: %d\n", stats.Packages.Total)
		fmt.Printf("Total size: %.1f MB\n", float64(stats.Packages.TotalSizeBytes)/(1024*1024))
		for arch, count := range stats.Packages.ByArchitecture {
			fmt.Printf("  %s: %d packages\n", arch, count)
		}
		return nil
	}
}
