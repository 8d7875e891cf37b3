// Package deb822 assembles the typed package and release records out of
// raw stanzas, using pkg/rfc822 for field access and pkg/debian for the
// compound value parsers (versions, relations, urgency, VCS, package list).
package deb822

import (
	"io"
	"iter"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/debian"
	"github.com/aptflow/raptobo/pkg/rfc822"
)

// Package is one Package or Source stanza, covering every field recognised
// by Debian Policy §5.6 plus the package-index extension fields. All
// fields are optional except Package, Architecture, and Version.
type Package struct {
	Source             string
	Maintainer         string
	Uploaders          []string
	ChangedBy          string
	Section            string
	Priority           string
	Package            string
	Architecture       string
	Essential          string
	Depends            []debian.Relation
	PreDepends         []debian.Relation
	Recommends         []debian.Relation
	Suggests           []debian.Relation
	Enhances           []debian.Relation
	Breaks             []debian.Relation
	Conflicts          []debian.Relation
	Provides           []debian.Relation
	Replaces           []debian.Relation
	StandardsVersion   string
	Version            debian.Version
	Description        string
	Distribution       []string
	Date               time.Time
	HasDate            bool
	Format             string
	Urgency            debian.Urgency
	HasUrgency         bool
	Changes            string
	Binary             []string
	InstalledSize      string
	Files              []rfc822.File
	Closes             []string
	Homepage           string
	ChecksumsSha1      []rfc822.File
	ChecksumsSha256    []rfc822.File
	VcsBrowser         string
	Vcs                *debian.VcsReference
	PackageList        []debian.PackageListEntry
	PackageType        string
	Dgit               string
	Testsuite          []string
	RulesRequiresRoot  string
	Origin             string
	OriginalMaintainer string
	Bugs               string
	Task               []string
	Filename           string
	Size               string
	MD5sum             string
	SHA1               string
	SHA256             string
	SHA512             string
	DescriptionMD5     string
}

func relationList(s *rfc822.Stanza, key string) []debian.Relation {
	value, ok := s.OptValue(key)
	if !ok {
		return nil
	}
	return debian.ParseRelationList(value)
}

func optList(s *rfc822.Stanza, key string) []string {
	v, _ := s.OptList(key)
	return v
}

func optFiles(s *rfc822.Stanza, key string) []rfc822.File {
	if !s.Has(key) {
		return nil
	}
	files, err := s.Files(key)
	if err != nil {
		log.Debug().Err(err).Msgf("deb822: dropping malformed %s", key)
		return nil
	}
	return files
}

// newPackage assembles a Package from a single stanza, failing only if one
// of the three required fields (Package, Architecture, Version) is absent
// or the version string is malformed.
func newPackage(s *rfc822.Stanza) (*Package, error) {
	name, err := s.Value("Package")
	if err != nil {
		return nil, err
	}
	arch, err := s.Value("Architecture")
	if err != nil {
		return nil, err
	}
	rawVersion, err := s.Value("Version")
	if err != nil {
		return nil, err
	}
	version, err := debian.ParseVersion(rawVersion)
	if err != nil {
		return nil, err
	}

	p := &Package{
		Package:           name,
		Architecture:      arch,
		Version:           version,
		Depends:           relationList(s, "Depends"),
		PreDepends:        relationList(s, "Pre-Depends"),
		Recommends:        relationList(s, "Recommends"),
		Suggests:          relationList(s, "Suggests"),
		Enhances:          relationList(s, "Enhances"),
		Breaks:            relationList(s, "Breaks"),
		Conflicts:         relationList(s, "Conflicts"),
		Provides:          relationList(s, "Provides"),
		Replaces:          relationList(s, "Replaces"),
		Uploaders:         optList(s, "Uploaders"),
		Distribution:      optList(s, "Distribution"),
		Binary:            optList(s, "Binary"),
		Closes:            optList(s, "Closes"),
		Testsuite:         optList(s, "Testsuite"),
		Task:              optList(s, "Task"),
		Files:             optFiles(s, "Files"),
		ChecksumsSha1:     optFiles(s, "Checksums-Sha1"),
		ChecksumsSha256:   optFiles(s, "Checksums-Sha256"),
		RulesRequiresRoot: optVal(s, "Rules-Requires-Root"),
	}

	p.Source, _ = s.OptValue("Source")
	p.Maintainer, _ = s.OptValue("Maintainer")
	p.ChangedBy, _ = s.OptValue("Changed-By")
	p.Section, _ = s.OptValue("Section")
	p.Priority, _ = s.OptValue("Priority")
	p.Essential, _ = s.OptValue("Essential")
	p.StandardsVersion, _ = s.OptValue("Standards-Version")
	p.Description, _ = s.Text("Description")
	p.Date, p.HasDate = s.Date("Date")
	p.Format, _ = s.OptValue("Format")
	if rawUrgency, ok := s.OptValue("Urgency"); ok {
		p.Urgency, p.HasUrgency = debian.ParseUrgency(rawUrgency)
	}
	p.Changes, _ = s.OptValue("Changes")
	p.InstalledSize, _ = s.OptValue("Installed-Size")
	p.Homepage, _ = s.OptValue("Homepage")
	p.VcsBrowser, _ = s.OptValue("Vcs-Browser")
	p.Vcs, _ = debian.ParseVcsReference(s)
	if s.Has("Package-List") {
		if entries, err := debian.ParsePackageList(s, "Package-List"); err == nil {
			p.PackageList = entries
		} else {
			log.Debug().Err(err).Msg("deb822: dropping malformed Package-List")
		}
	}
	p.PackageType, _ = s.OptValue("Package-Type")
	p.Dgit, _ = s.OptValue("Dgit")
	p.Origin, _ = s.OptValue("Origin")
	p.OriginalMaintainer, _ = s.OptValue("Original-Maintainer")
	p.Bugs, _ = s.OptValue("Bugs")
	p.Filename, _ = s.OptValue("Filename")
	p.Size, _ = s.OptValue("Size")
	p.MD5sum, _ = s.OptValue("MD5sum")
	p.SHA1, _ = s.OptValue("SHA1")
	p.SHA256, _ = s.OptValue("SHA256")
	p.SHA512, _ = s.OptValue("SHA512")
	p.DescriptionMD5, _ = s.OptValue("Description-md5")

	return p, nil
}

func optVal(s *rfc822.Stanza, key string) string {
	v, _ := s.OptValue(key)
	return v
}

// ParsePackages streams every stanza of r (a Packages index) into a Package.
// A stanza that fails required-field extraction is logged at error level
// and dropped; the surrounding stream still yields every parseable
// package rather than aborting the whole index over one bad stanza.
func ParsePackages(r io.Reader) iter.Seq2[*Package, error] {
	return func(yield func(*Package, error) bool) {
		for stanza, err := range rfc822.ParseStanzas(r) {
			if err != nil {
				continue
			}
			pkg, err := newPackage(stanza)
			if err != nil {
				log.Error().Err(err).Msg("deb822: dropping package stanza")
				continue
			}
			if !yield(pkg, nil) {
				return
			}
		}
	}
}
