package fetch

import (
	"bytes"
	"context"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileFetcherAcquire(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Release")
	require.NoError(t, os.WriteFile(path, []byte("Codename: stable\n"), 0o644))

	f := NewFileFetcher()
	assert.Equal(t, []string{"file"}, f.Schemes())

	resp, err := f.Acquire(context.Background(), &AcquireRequest{URI: &url.URL{Scheme: "file", Path: path}})
	require.NoError(t, err)
	defer resp.Content.Close()

	var buf bytes.Buffer
	_, err = io.Copy(&buf, resp.Content)
	require.NoError(t, err)
	assert.Equal(t, "Codename: stable\n", buf.String())
	assert.NotNil(t, resp.LastModified)
}

func TestFileFetcherMissing(t *testing.T) {
	f := NewFileFetcher()
	_, err := f.Acquire(context.Background(), &AcquireRequest{URI: &url.URL{Scheme: "file", Path: "/no/such/file"}})
	assert.Error(t, err)
}

func TestFileFetcherRejectsDirectory(t *testing.T) {
	dir := t.TempDir()
	f := NewFileFetcher()
	_, err := f.Acquire(context.Background(), &AcquireRequest{URI: &url.URL{Scheme: "file", Path: dir}})
	assert.Error(t, err)
}

func TestFileFetcherRejectsCancelledContext(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "Release")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFileFetcher()
	_, err := f.Acquire(ctx, &AcquireRequest{URI: &url.URL{Scheme: "file", Path: path}})
	assert.Error(t, err)
}
