package sources

import (
	"fmt"
	"io"
	"strings"

	"github.com/aptflow/raptobo/pkg/rfc822"
)

// ParseDeb822Sources parses the deb822 ".sources" format: each stanza
// carries Types/URIs/Suites/Components as space lists, and one Entry is
// produced per (type × uri × suite) combination, matching the classic
// format's one-entry-per-component-list shape.
func ParseDeb822Sources(r io.Reader) ([]Entry, error) {
	doc, err := rfc822.ParseDocument(r)
	if err != nil {
		return nil, fmt.Errorf("deb822 sources: %w", err)
	}

	var entries []Entry
	for i, stanza := range doc {
		types, err := stanza.List("Types")
		if err != nil {
			return nil, fmt.Errorf("stanza %d: missing required field Types", i+1)
		}
		uris, err := stanza.List("URIs")
		if err != nil {
			return nil, fmt.Errorf("stanza %d: missing required field URIs", i+1)
		}
		suites, err := stanza.List("Suites")
		if err != nil {
			return nil, fmt.Errorf("stanza %d: missing required field Suites", i+1)
		}
		components, _ := stanza.OptList("Components")

		enabled := true
		if v, ok := stanza.OptValue("Enabled"); ok && strings.EqualFold(v, "no") {
			enabled = false
		}

		options := make(map[string]string)
		for _, optKey := range []string{"Signed-By", "Trusted", "Arch", "Lang"} {
			if v, ok := stanza.OptValue(optKey); ok {
				options[optKey] = v
			}
		}

		for _, t := range types {
			sourceType := parseSourceType(t)
			if sourceType == SourceTypeUnknown {
				return nil, fmt.Errorf("stanza %d: unknown source type %q", i+1, t)
			}
			for _, uri := range uris {
				for _, suite := range suites {
					entries = append(entries, Entry{
						Type:         sourceType,
						URI:          uri,
						Distribution: suite,
						Components:   components,
						Options:      options,
						Enabled:      enabled,
					})
				}
			}
		}
	}
	return entries, nil
}
