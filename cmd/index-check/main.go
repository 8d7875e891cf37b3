// Command index-check downloads one Packages index and prints a bounded
// preview of its contents. The preview length is bounded with min, not
// max: max(10, len(packages)) would slice past the end of a short index
// and panic.
package main

import (
	"context"
	"flag"
	"fmt"
	"net/url"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/deb822"
	"github.com/aptflow/raptobo/pkg/fetch"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	flag.Parse()

	rawURL := flag.Arg(0)
	if rawURL == "" {
		log.Fatal().Msg("index-check: URL of the package index is required")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		log.Fatal().Err(err).Msg("index-check: invalid URL")
	}

	registry := fetch.DefaultRegistry()
	resp, err := registry.Acquire(context.Background(), &fetch.AcquireRequest{URI: u})
	if err != nil {
		log.Fatal().Err(err).Msg("index-check: failed to fetch index")
	}
	defer resp.Content.Close()

	reader, err := fetch.Decompress(rawURL, resp.Content)
	if err != nil {
		log.Fatal().Err(err).Msg("index-check: failed to decompress index")
	}

	var packages []*deb822.Package
	for pkg, err := range deb822.ParsePackages(reader) {
		if err != nil {
			continue
		}
		packages = append(packages, pkg)
	}

	log.Info().Msgf("Found %d packages.", len(packages))

	if len(packages) == 0 {
		return
	}
	previewLen := min(10, len(packages))
	for _, pkg := range packages[:previewLen] {
		fmt.Printf("%+v\n", *pkg)
	}
}
