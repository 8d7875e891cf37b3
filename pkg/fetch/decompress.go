package fetch

import (
	"compress/gzip"
	"io"
	"strings"

	"github.com/ulikunitz/xz"

	"github.com/aptflow/raptobo/pkg/apterr"
)

// Decompress wraps r according to the compression suffix of path (".gz",
// ".xz", anything else is passed through unchanged) — the only two
// compressions a Packages/Sources index is published in per the index URL
// conventions this module supports. A compressed stream whose header is
// malformed is reported as an apterr.DecodeError, the one error kind the
// rest of the module uses for decode/decompression failures; corruption
// found later surfaces as the decoder's own error from Read.
func Decompress(path string, r io.Reader) (io.Reader, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, apterr.Errorf(apterr.DecodeError, "gzip: %v", err)
		}
		return gr, nil
	case strings.HasSuffix(path, ".xz"):
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, apterr.Errorf(apterr.DecodeError, "xz: %v", err)
		}
		return xr, nil
	default:
		return r, nil
	}
}
