// Command apt-check loads and dumps a RepositoryModel for one repository
// spec: a small smoke test for the fetch/parse/index-discovery pipeline.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/apt"
	"github.com/aptflow/raptobo/pkg/fetch"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	uri := flag.String("repository", "http://archive.ubuntu.com/ubuntu", "URI of the repository root")
	distribution := flag.String("distribution", "jammy", "distribution (suite/codename)")
	flat := flag.Bool("flat", false, "is the repository using a flat layout?")
	source := flag.Bool("source", false, "is this a source repository?")
	flag.Parse()

	spec := apt.RepositorySpec{
		URI:          *uri,
		Distribution: *distribution,
		Flat:         *flat,
		Source:       *source,
	}

	model, err := apt.Load(context.Background(), fetch.DefaultRegistry(), spec)
	if err != nil {
		log.Fatal().Err(err).Msg("apt-check: failed to load repository")
	}

	fmt.Printf("%+v\n", *model.Metadata)
	for component, byArch := range model.Indices {
		for arch, paths := range byArch {
			for _, path := range paths {
				fmt.Printf("%s/%s: %s (%d packages)\n", component, arch, path, len(model.Packages[path]))
			}
		}
	}
}
