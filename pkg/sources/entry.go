// Package sources parses the two sources.list front-end formats apt-get
// and apt read (the classic one-line form and the deb822 ".sources" form)
// into Entry values. It does not build the apt package's RepositorySpec
// itself; callers map an Entry's fields onto one. This sits outside the
// core spec boundary (the core's external boundary is a RepositorySpec),
// but it is the front end every real caller needs ahead of that spec, so
// it ships alongside the core rather than being left to callers to
// reinvent.
package sources

import (
	"fmt"
	"net/url"
)

// SourceType is the entry's line type: binary packages or source packages.
type SourceType string

const (
	SourceTypeDeb     SourceType = "deb"
	SourceTypeSrc     SourceType = "deb-src"
	SourceTypeUnknown SourceType = "unknown"
)

func parseSourceType(s string) SourceType {
	switch s {
	case "deb":
		return SourceTypeDeb
	case "deb-src":
		return SourceTypeSrc
	default:
		return SourceTypeUnknown
	}
}

// Entry is one parsed source line, or one type × URI × suite combination
// of a deb822 stanza: a repository root, a
// distribution (suite/codename, or "/"/"." for a flat layout), and the
// components and bracketed options attached to it.
type Entry struct {
	Type         SourceType
	URI          string
	Distribution string
	Components   []string
	Options      map[string]string
	// Enabled is false only for a deb822 stanza carrying "Enabled: no";
	// every other entry (including every classic one-line entry, which
	// has no such toggle) is enabled.
	Enabled bool
}

// ArchiveRoot parses URI as a *url.URL, the form the fetch package's
// AcquireRequest expects.
func (e Entry) ArchiveRoot() (*url.URL, error) {
	u, err := url.Parse(e.URI)
	if err != nil {
		return nil, fmt.Errorf("sources: invalid URI %q: %w", e.URI, err)
	}
	return u, nil
}

// Flat reports whether Distribution names a flat-repository root rather
// than a dists/ suite: a Distribution of exactly "." or "/".
func (e Entry) Flat() bool {
	return e.Distribution == "." || e.Distribution == "/"
}
