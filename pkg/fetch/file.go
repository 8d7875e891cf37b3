package fetch

import (
	"context"
	"os"
)

// FileFetcher acquires repository metadata from the local filesystem via
// file:// URIs, for mirrors staged on disk or exercised in tests without a
// network round trip.
type FileFetcher struct{}

// NewFileFetcher builds a FileFetcher.
func NewFileFetcher() *FileFetcher {
	return &FileFetcher{}
}

func (f *FileFetcher) Schemes() []string {
	return []string{"file"}
}

func (f *FileFetcher) Acquire(ctx context.Context, req *AcquireRequest) (*AcquireResponse, error) {
	select {
	case <-ctx.Done():
		return nil, &AcquireError{URI: req.URI, Reason: "context cancelled", Err: ctx.Err()}
	default:
	}

	path := req.URI.Path
	info, err := os.Stat(path)
	if err != nil {
		return nil, &AcquireError{URI: req.URI, Reason: "file not found", Err: err}
	}
	if info.IsDir() {
		return nil, &AcquireError{URI: req.URI, Reason: "path is a directory", Err: nil}
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &AcquireError{URI: req.URI, Reason: "failed to open file", Err: err}
	}

	modTime := info.ModTime()
	return &AcquireResponse{
		URI:          req.URI,
		Content:      file,
		Size:         info.Size(),
		LastModified: &modTime,
	}, nil
}
