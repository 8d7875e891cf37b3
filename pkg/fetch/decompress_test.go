package fetch

import (
	"bytes"
	"compress/gzip"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aptflow/raptobo/pkg/apterr"
)

func TestDecompressGzip(t *testing.T) {
	var buf bytes.Buffer
	w := gzip.NewWriter(&buf)
	_, err := w.Write([]byte("Package: foo\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	r, err := Decompress("Packages.gz", &buf)
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Package: foo\n", string(data))
}

func TestDecompressPassthrough(t *testing.T) {
	r, err := Decompress("Packages", strings.NewReader("Package: foo\n"))
	require.NoError(t, err)
	data, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Package: foo\n", string(data))
}

func TestDecompressMalformedGzip(t *testing.T) {
	_, err := Decompress("Packages.gz", strings.NewReader("not actually gzip"))
	require.Error(t, err)
	assert.True(t, apterr.Is(err, apterr.DecodeError))
}
