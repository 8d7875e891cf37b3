package rfc822

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOne(t *testing.T, src string) *Stanza {
	t.Helper()
	stanzas, err := ParseDocument(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, stanzas, 1)
	return stanzas[0]
}

func TestValue(t *testing.T) {
	s := parseOne(t, "Package:  foo  \n")
	v, err := s.Value("Package")
	require.NoError(t, err)
	assert.Equal(t, "foo", v)

	_, err = s.Value("Missing")
	assert.ErrorContains(t, err, "not found")
}

func TestList(t *testing.T) {
	s := parseOne(t, "Architectures: amd64  arm64   all\n")
	v, err := s.List("Architectures")
	require.NoError(t, err)
	assert.Equal(t, []string{"amd64", "arm64", "all"}, v)
}

func TestOptList_EmptyCollapsesToAbsent(t *testing.T) {
	s := parseOne(t, "Architectures:    \n")
	_, ok := s.OptList("Architectures")
	assert.False(t, ok)
}

func TestText_JoinsWithNewline(t *testing.T) {
	s := parseOne(t, "Description: short summary\n long description line one\n long description line two\n")
	v, err := s.Text("Description")
	require.NoError(t, err)
	assert.Equal(t, "short summary\nlong description line one\nlong description line two", v)
}

func TestLines_FilterEmpty(t *testing.T) {
	s := parseOne(t, "MD5Sum: \n deadbeef 123 path/one\n deadbeef2 456 path/two\n")
	v, err := s.Lines("MD5Sum", true)
	require.NoError(t, err)
	assert.Equal(t, []string{"deadbeef 123 path/one", "deadbeef2 456 path/two"}, v)
}

func TestDate_NumericOffset(t *testing.T) {
	s := parseOne(t, "Date: Mon, 02 Jan 2006 15:04:05 +0000\n")
	tm, ok := s.Date("Date")
	require.True(t, ok)
	assert.Equal(t, 2006, tm.Year())
}

func TestDate_InvalidCollapsesToAbsent(t *testing.T) {
	s := parseOne(t, "Date: not a date\n")
	_, ok := s.Date("Date")
	assert.False(t, ok)
}

func TestFiles(t *testing.T) {
	s := parseOne(t, "MD5Sum:\n deadbeef 123 main/binary-amd64/Packages\n cafebabe 456 main/binary-amd64/Packages.gz\n")
	files, err := s.Files("MD5Sum")
	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, File{Hash: "deadbeef", Size: 123, Path: "main/binary-amd64/Packages"}, files[0])
}

func TestFiles_WrongTokenCount(t *testing.T) {
	s := parseOne(t, "MD5Sum:\n deadbeef 123\n")
	_, err := s.Files("MD5Sum")
	assert.Error(t, err)
}

func TestFiles_NonNumericSize(t *testing.T) {
	s := parseOne(t, "MD5Sum:\n deadbeef notasize path\n")
	_, err := s.Files("MD5Sum")
	assert.Error(t, err)
}
