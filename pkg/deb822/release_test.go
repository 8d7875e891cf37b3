package deb822

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptflow/raptobo/pkg/rfc822"
)

const sampleRelease = `Origin: Debian
Label: Debian
Suite: stable
Codename: bookworm
Version: 12.5
Date: Mon, 02 Jan 2006 15:04:05 +0000
Architectures: amd64 arm64
Components: main contrib
Description: Debian 12.5 Released 2024-02-10
MD5Sum:
 d41d8cd98f00b204e9800998ecf8427e 0 main/binary-amd64/Packages
SHA1:
 da39a3ee5e6b4b0d3255bfef95601890afd80709 0 main/binary-amd64/Packages
SHA256:
 e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855 0 main/binary-amd64/Packages
`

func TestParseRelease(t *testing.T) {
	doc, err := rfc822.ParseDocument(strings.NewReader(sampleRelease))
	require.NoError(t, err)

	rel, err := ParseRelease(doc)
	require.NoError(t, err)

	assert.Equal(t, "bookworm", rel.Codename)
	assert.Equal(t, []string{"amd64", "arm64"}, rel.Architectures)
	assert.Equal(t, []string{"main", "contrib"}, rel.Components)
	assert.Equal(t, 2006, rel.Date.Year())
	assert.Equal(t, 5, rel.Date.Second()) // sanity: parsed, not zero-value
	require.Len(t, rel.MD5Sum, 1)
	require.Len(t, rel.SHA1, 1)
	require.Len(t, rel.SHA256, 1)
}

func TestParseRelease_SkipsPGPPreamble(t *testing.T) {
	withPreamble := "-----BEGIN PGP SIGNED MESSAGE-----\nHash: SHA256\n\n" + sampleRelease
	doc, err := rfc822.ParseDocument(strings.NewReader(withPreamble))
	require.NoError(t, err)

	rel, err := ParseRelease(doc)
	require.NoError(t, err)
	assert.Equal(t, "bookworm", rel.Codename)
}

func TestParseRelease_MissingCodename(t *testing.T) {
	doc, err := rfc822.ParseDocument(strings.NewReader("Origin: Debian\n"))
	require.NoError(t, err)
	_, err = ParseRelease(doc)
	assert.Error(t, err)
}
