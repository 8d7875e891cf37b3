package fetch

import (
	"context"
)

// Registry dispatches an AcquireRequest to the Fetcher registered for its
// URI scheme.
type Registry struct {
	byScheme map[string]Fetcher
}

// NewRegistry builds a Registry from a set of Fetchers, indexing each by
// every scheme it reports.
func NewRegistry(fetchers ...Fetcher) *Registry {
	r := &Registry{byScheme: make(map[string]Fetcher)}
	for _, f := range fetchers {
		for _, scheme := range f.Schemes() {
			r.byScheme[scheme] = f
		}
	}
	return r
}

// Acquire dispatches req to the Fetcher registered for req.URI.Scheme.
func (r *Registry) Acquire(ctx context.Context, req *AcquireRequest) (*AcquireResponse, error) {
	f, ok := r.byScheme[req.URI.Scheme]
	if !ok {
		return nil, &UnsupportedSchemeError{Scheme: req.URI.Scheme}
	}
	return f.Acquire(ctx, req)
}

// DefaultRegistry wires the two transports this module ships with.
func DefaultRegistry() *Registry {
	return NewRegistry(NewHTTPFetcher(), NewFileFetcher())
}
