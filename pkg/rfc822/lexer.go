package rfc822

import (
	"bufio"
	"io"
	"iter"
	"strings"

	"github.com/rs/zerolog/log"
)

// ParseStanzas lexes r into a stream of stanzas. It never fails: a line with
// no colon is malformed and is logged at debug level and dropped, per the
// format's tolerant-parsing rule; the document-level iteration always
// succeeds. The error slot in the returned sequence exists for symmetry
// with other iterators in this module and is always nil.
func ParseStanzas(r io.Reader) iter.Seq2[*Stanza, error] {
	return func(yield func(*Stanza, error) bool) {
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

		current := newStanza()
		currentField := ""

		flush := func() bool {
			if current.empty() {
				return true
			}
			ok := yield(current, nil)
			current = newStanza()
			currentField = ""
			return ok
		}

		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")

			if strings.TrimSpace(line) == "" {
				if !flush() {
					return
				}
				continue
			}

			if line[0] == ' ' || line[0] == '\t' {
				current.appendContinuation(currentField, line)
				continue
			}

			name, value, found := strings.Cut(line, ":")
			if !found {
				log.Debug().Msgf("rfc822: malformed line, missing ':': %q", line)
				currentField = ""
				continue
			}
			currentField = name
			current.set(name, strings.TrimPrefix(value, " "))
		}

		flush()
	}
}

// ParseDocument reads r in full and returns its stanzas as a Document. It is
// a convenience wrapper over ParseStanzas for callers (such as the release
// parser) that need random access rather than streaming.
func ParseDocument(r io.Reader) (Document, error) {
	var doc Document
	for s, err := range ParseStanzas(r) {
		if err != nil {
			return nil, err
		}
		doc = append(doc, s)
	}
	return doc, nil
}
