package rfc822

import (
	"net/mail"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/aptflow/raptobo/pkg/apterr"
)

// Value returns the first line of the named field, trimmed. It fails with
// apterr.MissingField if the field is absent.
func (s *Stanza) Value(key string) (string, error) {
	lines, ok := s.Get(key)
	if !ok {
		return "", apterr.Errorf(apterr.MissingField, "%s not found", key)
	}
	return strings.TrimSpace(lines[0]), nil
}

// OptValue is the absent-tolerant variant of Value.
func (s *Stanza) OptValue(key string) (string, bool) {
	v, err := s.Value(key)
	if err != nil {
		return "", false
	}
	return v, true
}

// List splits the first line of the named field on ASCII spaces, trims each
// token, and drops empty tokens, preserving order.
func (s *Stanza) List(key string) ([]string, error) {
	lines, ok := s.Get(key)
	if !ok {
		return nil, apterr.Errorf(apterr.MissingField, "%s not found", key)
	}
	return splitTrimNonEmpty(lines[0]), nil
}

// OptList is the absent-tolerant variant of List. It also returns false if
// the field is present but tokenizes to zero entries.
func (s *Stanza) OptList(key string) ([]string, bool) {
	values, err := s.List(key)
	if err != nil || len(values) == 0 {
		return nil, false
	}
	return values, true
}

func splitTrimNonEmpty(line string) []string {
	var out []string
	for _, tok := range strings.Split(line, " ") {
		tok = strings.TrimSpace(tok)
		if tok != "" {
			out = append(out, tok)
		}
	}
	return out
}

// Text joins all value lines of the named field with "\n" after trimming
// each, preserving the multi-line structure of folded description fields.
func (s *Stanza) Text(key string) (string, error) {
	lines, ok := s.Get(key)
	if !ok {
		return "", apterr.Errorf(apterr.MissingField, "%s not found", key)
	}
	trimmed := make([]string, len(lines))
	for i, l := range lines {
		trimmed[i] = strings.TrimSpace(l)
	}
	return strings.Join(trimmed, "\n"), nil
}

// Lines returns all value lines of the named field, trimmed, optionally
// dropping empty ones.
func (s *Stanza) Lines(key string, filterEmpty bool) ([]string, error) {
	lines, ok := s.Get(key)
	if !ok {
		return nil, apterr.Errorf(apterr.MissingField, "%s not found", key)
	}
	out := make([]string, 0, len(lines))
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if filterEmpty && l == "" {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

// dateLayouts are tried in order; the first is the correct RFC 2822 layout
// with a numeric zone offset, matching the values a real Debian mirror
// actually produces. RFC1123Z is a second numeric-offset layout; the last
// two are tolerant fallbacks for mirrors that emit a named zone (observed
// in the wild despite not being policy-compliant).
var dateLayouts = []string{
	"Mon, 2 Jan 2006 15:04:05 -0700",
	time.RFC1123Z,
	"Mon, 2 Jan 2006 15:04:05 MST",
	time.RFC1123,
}

// Date parses the named field's value as RFC 2822. On parse failure it logs
// and returns absent; this accessor never errors.
func (s *Stanza) Date(key string) (time.Time, bool) {
	raw, err := s.Value(key)
	if err != nil {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	if t, err := mail.ParseDate(raw); err == nil {
		return t, true
	}
	log.Debug().Msgf("rfc822: could not parse date %q", raw)
	return time.Time{}, false
}

// RequiredDate is the failing variant of Date, used for fields whose parse
// failure must abort the surrounding document (the release Date field).
func (s *Stanza) RequiredDate(key string) (time.Time, error) {
	raw, err := s.Value(key)
	if err != nil {
		return time.Time{}, apterr.Errorf(apterr.BadDate, "%s: %v", key, err)
	}
	t, ok := s.Date(key)
	if !ok {
		return time.Time{}, apterr.Errorf(apterr.BadDate, "%s: could not parse %q as RFC 2822", key, raw)
	}
	return t, nil
}

// File is one entry of a MD5Sum/SHA1/SHA256 field block.
type File struct {
	Hash string
	Size uint64
	Path string
}

// Files returns the File records encoded by the named field: one per
// non-empty line, each split on whitespace into exactly three tokens
// "<hash> <size> <path>". It fails with apterr.MalformedFiles if any line
// does not tokenize that way or if size is not a base-10 uint64.
func (s *Stanza) Files(key string) ([]File, error) {
	lines, err := s.Lines(key, true)
	if err != nil {
		return nil, err
	}
	files := make([]File, 0, len(lines))
	for _, line := range lines {
		parts := strings.Fields(line)
		if len(parts) != 3 {
			return nil, apterr.Errorf(apterr.MalformedFiles, "wrong number of elements: %q", line)
		}
		size, err := strconv.ParseUint(parts[1], 10, 64)
		if err != nil {
			return nil, apterr.Errorf(apterr.MalformedFiles, "invalid size in %q: %v", line, err)
		}
		files = append(files, File{Hash: parts[0], Size: size, Path: parts[2]})
	}
	return files, nil
}
