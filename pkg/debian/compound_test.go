package debian

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptflow/raptobo/pkg/rfc822"
)

func parseStanza(t *testing.T, src string) *rfc822.Stanza {
	t.Helper()
	doc, err := rfc822.ParseDocument(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, doc, 1)
	return doc[0]
}

func TestParseUrgency(t *testing.T) {
	u, ok := ParseUrgency("  HIGH ")
	require.True(t, ok)
	assert.Equal(t, UrgencyHigh, u)

	_, ok = ParseUrgency("unknown")
	assert.False(t, ok)
}

func TestParseVcsReference_ProbeOrder(t *testing.T) {
	s := parseStanza(t, "Vcs-Svn: svn://example/repo\nVcs-Git: https://example/repo.git\n")
	ref, ok := ParseVcsReference(s)
	require.True(t, ok)
	assert.Equal(t, VcsGit, ref.Kind)
	assert.Equal(t, "https://example/repo.git", ref.URL)
}

func TestParsePackageList(t *testing.T) {
	s := parseStanza(t, "Package-List:\n foo deb section1 optional arch=any\n")
	entries, err := ParsePackageList(s, "Package-List")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, PackageListEntry{Name: "foo", Type: "deb", Section: "section1", Priority: "optional"}, entries[0])
}

func TestParsePackageList_TooFewTokens(t *testing.T) {
	s := parseStanza(t, "Package-List:\n foo deb\n")
	_, err := ParsePackageList(s, "Package-List")
	assert.Error(t, err)
}
