// Package debian implements the Debian version comparator, the dependency
// relation grammar, and the small set of compound stanza fields (urgency,
// VCS reference, package list) defined by Debian Policy.
package debian

import (
	"strconv"
	"strings"

	"github.com/aptflow/raptobo/pkg/apterr"
)

// Version is a parsed Debian package version: an ordering override epoch,
// an upstream version string, and a Debian revision string. Epoch defaults
// to 0 and Revision to "" when absent from the raw string.
type Version struct {
	Epoch    uint64
	Upstream string
	Revision string
}

// String reassembles the version into its canonical Debian representation.
func (v Version) String() string {
	s := v.Upstream
	if v.Epoch != 0 {
		s = strconv.FormatUint(v.Epoch, 10) + ":" + s
	}
	if v.Revision != "" {
		s = s + "-" + v.Revision
	}
	return s
}

// ParseVersion parses a raw Debian version string per Policy §5.6.12: the
// epoch is the part before the first ':' (0 if absent); the Debian revision
// is the part after the *last* '-' of the remainder (empty if there is no
// '-'), the rest is the upstream version.
func ParseVersion(raw string) (Version, error) {
	tail := raw
	var epoch uint64
	if i := strings.Index(raw, ":"); i >= 0 {
		e, err := strconv.ParseUint(raw[:i], 10, 64)
		if err != nil {
			return Version{}, apterr.Errorf(apterr.InvalidVersion, "non-numeric epoch in %q: %v", raw, err)
		}
		epoch = e
		tail = raw[i+1:]
	}

	upstream, revision := tail, ""
	if i := strings.LastIndex(tail, "-"); i >= 0 {
		upstream, revision = tail[:i], tail[i+1:]
	}

	return Version{Epoch: epoch, Upstream: upstream, Revision: revision}, nil
}

// Compare returns -1, 0, or 1 as a is less than, equal to, or greater than
// b, comparing epoch first, then upstream, then revision — the first
// non-equal dimension decides.
func Compare(a, b Version) (int, error) {
	if a.Epoch != b.Epoch {
		return cmpUint64(a.Epoch, b.Epoch), nil
	}
	if c, err := compareVersionStrings(a.Upstream, b.Upstream); err != nil || c != 0 {
		return c, err
	}
	return compareVersionStrings(a.Revision, b.Revision)
}

// Less reports whether a sorts strictly before b. It returns false when a
// digit run cannot be parsed; callers that need to tell that case apart
// should use Compare directly.
func (a Version) Less(b Version) bool {
	c, err := Compare(a, b)
	if err != nil {
		return false
	}
	return c < 0
}

func cmpUint64(a, b uint64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// versionBlock is the internal unit of version comparison: a non-digit
// prefix paired with the decimal value of the digit run that follows it.
type versionBlock struct {
	prefix string
	number uint64
}

// decomposeBlocks walks s left to right, emitting a block each time a run
// of digits ends; the final non-digit tail forms one last block with
// number 0. The start of a digit run is recorded once, at its first digit,
// so multi-digit runs (e.g. "10") decompose as a single block.
func decomposeBlocks(s string) ([]versionBlock, error) {
	if s == "" {
		return nil, nil
	}

	var blocks []versionBlock
	start := 0
	startDigit := 0
	inDigit := false

	runes := []rune(s)
	for i, c := range runes {
		isDigit := c >= '0' && c <= '9'
		if isDigit {
			if !inDigit {
				startDigit = i
				inDigit = true
			}
			continue
		}
		if inDigit {
			number, err := strconv.ParseUint(string(runes[startDigit:i]), 10, 64)
			if err != nil {
				return nil, apterr.Errorf(apterr.InvalidVersion, "invalid number %q: %v", string(runes[startDigit:i]), err)
			}
			blocks = append(blocks, versionBlock{prefix: string(runes[start:startDigit]), number: number})
			inDigit = false
			start = i
		}
	}

	n := len(runes)
	tailDigitStart := n
	if inDigit {
		tailDigitStart = startDigit
	}
	var number uint64
	if tailDigitStart < n {
		v, err := strconv.ParseUint(string(runes[tailDigitStart:n]), 10, 64)
		if err != nil {
			return nil, apterr.Errorf(apterr.InvalidVersion, "invalid number %q: %v", string(runes[tailDigitStart:n]), err)
		}
		number = v
	}
	blocks = append(blocks, versionBlock{prefix: string(runes[start:tailDigitStart]), number: number})

	return blocks, nil
}

// compareVersionStrings decomposes both fragments into blocks, right-pads
// the shorter sequence with zero blocks, and compares block by block; the
// first non-equal block decides.
func compareVersionStrings(a, b string) (int, error) {
	ab, err := decomposeBlocks(a)
	if err != nil {
		return 0, err
	}
	bb, err := decomposeBlocks(b)
	if err != nil {
		return 0, err
	}

	n := len(ab)
	if len(bb) > n {
		n = len(bb)
	}
	zero := versionBlock{}
	for i := 0; i < n; i++ {
		x, y := zero, zero
		if i < len(ab) {
			x = ab[i]
		}
		if i < len(bb) {
			y = bb[i]
		}
		if c := compareBlocks(x, y); c != 0 {
			return c, nil
		}
	}
	return 0, nil
}

// compareBlocks implements the tilde-sensitive total order over blocks.
func compareBlocks(a, b versionBlock) int {
	if a.prefix == b.prefix {
		return cmpUint64(a.number, b.number)
	}

	if a.prefix == "" {
		if b.prefix[0] == '~' {
			return 1
		}
		return -1
	}
	if b.prefix == "" {
		if a.prefix[0] == '~' {
			return -1
		}
		return 1
	}

	ar, br := []rune(a.prefix), []rune(b.prefix)
	for i := 0; i < len(ar) && i < len(br); i++ {
		if ar[i] != br[i] {
			if ar[i] == '~' {
				return -1
			}
			if br[i] == '~' {
				return 1
			}
			return cmpUint64(uint64(ar[i]), uint64(br[i])) // code-point order
		}
	}

	// One prefix is a strict prefix of the other. Shorter is less, unless
	// the longer one's next character is '~', in which case longer is less.
	switch {
	case len(ar) == len(br):
		return 0
	case len(ar) < len(br):
		if br[len(ar)] == '~' {
			return 1
		}
		return -1
	default:
		if ar[len(br)] == '~' {
			return -1
		}
		return 1
	}
}
