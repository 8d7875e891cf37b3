package debian

import (
	"strings"

	"github.com/aptflow/raptobo/pkg/apterr"
	"github.com/aptflow/raptobo/pkg/rfc822"
)

// Urgency is the parsed value of an Urgency field (Debian Policy §5.6.17).
type Urgency string

const (
	UrgencyLow       Urgency = "low"
	UrgencyMedium    Urgency = "medium"
	UrgencyHigh      Urgency = "high"
	UrgencyEmergency Urgency = "emergency"
	UrgencyCritical  Urgency = "critical"
)

// ParseUrgency matches the trimmed value case-insensitively against the
// known urgency levels; an unknown value collapses to absent.
func ParseUrgency(value string) (Urgency, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "low":
		return UrgencyLow, true
	case "medium":
		return UrgencyMedium, true
	case "high":
		return UrgencyHigh, true
	case "emergency":
		return UrgencyEmergency, true
	case "critical":
		return UrgencyCritical, true
	default:
		return "", false
	}
}

// VcsKind identifies which version-control system a Vcs-* field names.
type VcsKind string

const (
	VcsArch  VcsKind = "Arch"
	VcsBzr   VcsKind = "Bzr"
	VcsCvs   VcsKind = "Cvs"
	VcsDarcs VcsKind = "Darcs"
	VcsGit   VcsKind = "Git"
	VcsHg    VcsKind = "Hg"
	VcsMtn   VcsKind = "Mtn"
	VcsSvn   VcsKind = "Svn"
)

var vcsProbeOrder = []struct {
	kind VcsKind
	key  string
}{
	{VcsArch, "Vcs-Arch"},
	{VcsBzr, "Vcs-Bzr"},
	{VcsCvs, "Vcs-Cvs"},
	{VcsDarcs, "Vcs-Darcs"},
	{VcsGit, "Vcs-Git"},
	{VcsHg, "Vcs-Hg"},
	{VcsMtn, "Vcs-Mtn"},
	{VcsSvn, "Vcs-Svn"},
}

// VcsReference is the single Vcs-* field surfaced for a stanza.
type VcsReference struct {
	Kind VcsKind
	URL  string
}

// ParseVcsReference probes the fixed Vcs-* key order and returns the first
// one present; later keys are ignored once one is found.
func ParseVcsReference(s *rfc822.Stanza) (*VcsReference, bool) {
	for _, p := range vcsProbeOrder {
		if v, ok := s.OptValue(p.key); ok {
			return &VcsReference{Kind: p.kind, URL: v}, true
		}
	}
	return nil, false
}

// PackageListEntry is one line of a Package-List field (Debian Policy
// §5.6.27): "name type section priority ...".
type PackageListEntry struct {
	Name     string
	Type     string
	Section  string
	Priority string
}

// ParsePackageList extracts the Package-List field of s, rejecting any line
// with fewer than the five required space-separated tokens rather than
// indexing out of range.
func ParsePackageList(s *rfc822.Stanza, key string) ([]PackageListEntry, error) {
	lines, err := s.Lines(key, true)
	if err != nil {
		return nil, err
	}

	entries := make([]PackageListEntry, 0, len(lines))
	for _, line := range lines {
		parts := strings.Split(line, " ")
		if len(parts) < 5 {
			return nil, apterr.Errorf(apterr.MalformedPackageList, "too few tokens: %q", line)
		}
		entries = append(entries, PackageListEntry{
			Name:     strings.TrimSpace(parts[0]),
			Type:     strings.TrimSpace(parts[1]),
			Section:  strings.TrimSpace(parts[2]),
			Priority: strings.TrimSpace(parts[3]),
		})
	}
	return entries, nil
}
