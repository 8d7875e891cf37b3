package deb822

import (
	"time"

	"github.com/aptflow/raptobo/pkg/apterr"
	"github.com/aptflow/raptobo/pkg/rfc822"
)

// Release is the RepositoryMetadata assembled from an InRelease/Release
// document: architectures, components, description, version, codename,
// date, and the three file-hash blocks are required; origin/label/suite
// are optional.
type Release struct {
	Architectures []string
	Components    []string
	Description   string
	Origin        string
	Label         string
	Suite         string
	Version       string
	Codename      string
	Date          time.Time
	MD5Sum        []rfc822.File
	SHA1          []rfc822.File
	SHA256        []rfc822.File
}

// ParseRelease parses an InRelease/Release document, selecting the first
// stanza that contains a Codename field (this skips any PGP cleartext
// armour preamble that may precede the real stanza).
func ParseRelease(doc rfc822.Document) (*Release, error) {
	var s *rfc822.Stanza
	for _, candidate := range doc {
		if candidate.Has("Codename") {
			s = candidate
			break
		}
	}
	if s == nil {
		return nil, apterr.New(apterr.MissingField, "no stanza containing Codename")
	}

	architectures, err := s.List("Architectures")
	if err != nil {
		return nil, err
	}
	if len(architectures) == 0 {
		return nil, apterr.New(apterr.MissingField, "Architectures is empty")
	}
	components, err := s.List("Components")
	if err != nil {
		return nil, err
	}
	if len(components) == 0 {
		return nil, apterr.New(apterr.MissingField, "Components is empty")
	}
	description, err := s.Text("Description")
	if err != nil {
		return nil, err
	}
	version, err := s.Value("Version")
	if err != nil {
		return nil, err
	}
	codename, err := s.Value("Codename")
	if err != nil {
		return nil, err
	}
	date, err := s.RequiredDate("Date")
	if err != nil {
		return nil, err
	}
	md5sum, err := s.Files("MD5Sum")
	if err != nil {
		return nil, err
	}
	sha1, err := s.Files("SHA1")
	if err != nil {
		return nil, err
	}
	sha256, err := s.Files("SHA256")
	if err != nil {
		return nil, err
	}

	origin, _ := s.OptValue("Origin")
	label, _ := s.OptValue("Label")
	suite, _ := s.OptValue("Suite")

	return &Release{
		Architectures: architectures,
		Components:    components,
		Description:   description,
		Origin:        origin,
		Label:         label,
		Suite:         suite,
		Version:       version,
		Codename:      codename,
		Date:          date,
		MD5Sum:        md5sum,
		SHA1:          sha1,
		SHA256:        sha256,
	}, nil
}
