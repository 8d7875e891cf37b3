// Package apt is the orchestrator that drives a RepositorySpec through the
// fetch → parse → files-union → index-discovery → package-parse pipeline
// described for the RepositoryModel, wiring the pure pkg/rfc822,
// pkg/debian, and pkg/deb822 parsers to the pkg/fetch transport
// collaborator.
package apt

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/deb822"
	"github.com/aptflow/raptobo/pkg/fetch"
	"github.com/aptflow/raptobo/pkg/rfc822"
)

// RepositorySpec is the external boundary between a caller (CLI, sources
// entry, test) and the orchestrator: a repository root URI, the
// distribution (suite/codename, or "."/"/" for a flat layout), optional
// component and architecture overrides, and the Source and Flat flags.
type RepositorySpec struct {
	URI           string
	Distribution  string
	Components    []string
	Architectures []string
	Source        bool
	Flat          bool
}

// FileMetadata is one entry of the RepositoryModel's file table: a path
// known from the release's hash blocks, its size, and the hash recorded
// under each algorithm that listed it.
type FileMetadata struct {
	Path   string
	Size   uint64
	Hashes map[string]string // algorithm -> hex digest
}

// RepositoryModel is the fully assembled, immutable result of Load: the
// parsed release metadata, the union of every file the release names, the
// component/architecture index discovered among those files, and the
// packages parsed out of each discovered index.
type RepositoryModel struct {
	Metadata *deb822.Release
	Files    map[string]FileMetadata
	// Indices maps component -> architecture -> index file paths.
	Indices map[string]map[string][]string
	// Packages maps an index file path to the packages parsed from it.
	Packages map[string][]*deb822.Package
}

func releaseURL(spec RepositorySpec) (*url.URL, error) {
	base, err := url.Parse(spec.URI)
	if err != nil {
		return nil, fmt.Errorf("apt: invalid repository URI %q: %w", spec.URI, err)
	}
	if spec.Flat {
		return base.JoinPath(spec.Distribution, "InRelease"), nil
	}
	return base.JoinPath("dists", spec.Distribution, "InRelease"), nil
}

// Load runs the full pipeline: fetch the InRelease document, parse it,
// build the file table, discover per-component/per-architecture indices,
// and parse the packages out of each one.
func Load(ctx context.Context, fetcher fetch.Fetcher, spec RepositorySpec) (*RepositoryModel, error) {
	relURL, err := releaseURL(spec)
	if err != nil {
		return nil, err
	}

	release, err := fetchRelease(ctx, fetcher, relURL)
	if err != nil {
		return nil, err
	}

	model := &RepositoryModel{
		Metadata: release,
		Files:    buildFileTable(release),
	}

	components := spec.Components
	if len(components) == 0 {
		components = release.Components
	}
	architectures := spec.Architectures
	if len(architectures) == 0 {
		architectures = release.Architectures
	}

	model.Indices = discoverIndices(model.Files, components, architectures)

	distRoot, err := distRootURL(spec)
	if err != nil {
		return nil, err
	}

	model.Packages = make(map[string][]*deb822.Package)
	for _, byArch := range model.Indices {
		for _, paths := range byArch {
			for _, path := range paths {
				if _, done := model.Packages[path]; done {
					continue
				}
				packages, err := fetchPackages(ctx, fetcher, distRoot, path)
				if err != nil {
					log.Error().Err(err).Str("index", path).Msg("apt: dropping unreadable index")
					continue
				}
				model.Packages[path] = packages
			}
		}
	}

	return model, nil
}

func distRootURL(spec RepositorySpec) (*url.URL, error) {
	base, err := url.Parse(spec.URI)
	if err != nil {
		return nil, fmt.Errorf("apt: invalid repository URI %q: %w", spec.URI, err)
	}
	if spec.Flat {
		return base.JoinPath(spec.Distribution), nil
	}
	return base.JoinPath("dists", spec.Distribution), nil
}

func fetchRelease(ctx context.Context, fetcher fetch.Fetcher, relURL *url.URL) (*deb822.Release, error) {
	resp, err := fetcher.Acquire(ctx, &fetch.AcquireRequest{URI: relURL})
	if err != nil {
		return nil, fmt.Errorf("apt: failed to fetch %s: %w", relURL, err)
	}
	defer resp.Content.Close()

	doc, err := rfc822.ParseDocument(resp.Content)
	if err != nil {
		return nil, fmt.Errorf("apt: failed to read %s: %w", relURL, err)
	}
	release, err := deb822.ParseRelease(doc)
	if err != nil {
		return nil, fmt.Errorf("apt: failed to parse release at %s: %w", relURL, err)
	}
	return release, nil
}

func fetchPackages(ctx context.Context, fetcher fetch.Fetcher, distRoot *url.URL, indexPath string) ([]*deb822.Package, error) {
	indexURL := distRoot.JoinPath(indexPath)
	resp, err := fetcher.Acquire(ctx, &fetch.AcquireRequest{URI: indexURL})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", indexURL, err)
	}
	defer resp.Content.Close()

	reader, err := fetch.Decompress(indexPath, resp.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress %s: %w", indexURL, err)
	}

	var packages []*deb822.Package
	for pkg, err := range deb822.ParsePackages(reader) {
		if err != nil {
			continue
		}
		packages = append(packages, pkg)
	}
	return packages, nil
}

// buildFileTable unions the release's three hash blocks into one table,
// keyed by path: a path named under any one of MD5Sum, SHA1, or SHA256
// gets an entry, and every block that names it contributes its digest
// under that block's algorithm key.
func buildFileTable(release *deb822.Release) map[string]FileMetadata {
	files := make(map[string]FileMetadata, len(release.MD5Sum))

	entry := func(f rfc822.File) FileMetadata {
		fm, ok := files[f.Path]
		if !ok {
			fm = FileMetadata{Path: f.Path, Size: f.Size, Hashes: map[string]string{}}
		}
		return fm
	}

	for _, f := range release.MD5Sum {
		fm := entry(f)
		fm.Hashes["md5"] = f.Hash
		files[f.Path] = fm
	}
	for _, f := range release.SHA1 {
		fm := entry(f)
		fm.Hashes["sha1"] = f.Hash
		files[f.Path] = fm
	}
	for _, f := range release.SHA256 {
		fm := entry(f)
		fm.Hashes["sha256"] = f.Hash
		files[f.Path] = fm
	}
	return files
}

// discoverIndices finds, for every (component, architecture) pair, every
// known file path that starts with "{component}/" and contains
// "binary-{architecture}" as a substring.
func discoverIndices(files map[string]FileMetadata, components, architectures []string) map[string]map[string][]string {
	indices := make(map[string]map[string][]string, len(components))
	for _, component := range components {
		byArch := make(map[string][]string, len(architectures))
		prefix := component + "/"
		for _, arch := range architectures {
			marker := "binary-" + arch
			var matches []string
			for path := range files {
				if strings.HasPrefix(path, prefix) && strings.Contains(path, marker) {
					matches = append(matches, path)
				}
			}
			byArch[arch] = matches
		}
		indices[component] = byArch
	}
	return indices
}
