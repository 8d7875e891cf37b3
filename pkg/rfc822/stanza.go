// Package rfc822 implements the line-oriented control-file format shared by
// every APT metadata document: InRelease, Release, and Packages indices are
// all sequences of stanzas, each a sequence of "Name: value" fields with
// optional continuation lines.
package rfc822

// Field is one named entry of a Stanza: the field name as it appeared on
// the header line, and the raw, untrimmed sequence of value lines — the
// first line is the text after the colon, the rest are continuation lines
// exactly as read, leading whitespace included.
type Field struct {
	Name  string
	Lines []string
}

// Stanza is an ordered mapping from field name to its raw lines. Order is
// insertion order; a later field with the same name overwrites the earlier
// one in place rather than appending a second entry.
type Stanza struct {
	fields []Field
	index  map[string]int
}

func newStanza() *Stanza {
	return &Stanza{index: make(map[string]int)}
}

// set appends a new field or overwrites an existing one with the same name,
// preserving its original position.
func (s *Stanza) set(name string, firstLine string) {
	if i, ok := s.index[name]; ok {
		s.fields[i] = Field{Name: name, Lines: []string{firstLine}}
		return
	}
	s.index[name] = len(s.fields)
	s.fields = append(s.fields, Field{Name: name, Lines: []string{firstLine}})
}

// appendContinuation appends a raw continuation line to the named field. It
// is a no-op if the field does not exist (this happens after a malformed
// header line resets the current field name to "").
func (s *Stanza) appendContinuation(name string, line string) {
	i, ok := s.index[name]
	if !ok {
		return
	}
	s.fields[i].Lines = append(s.fields[i].Lines, line)
}

// Get returns the raw lines for name and whether the field is present.
// Lookup is case-sensitive.
func (s *Stanza) Get(name string) ([]string, bool) {
	i, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.fields[i].Lines, true
}

// Has reports whether name is present in the stanza.
func (s *Stanza) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Fields returns the stanza's fields in insertion order.
func (s *Stanza) Fields() []Field {
	return s.fields
}

func (s *Stanza) empty() bool {
	return len(s.fields) == 0
}

// Document is an ordered sequence of stanzas.
type Document []*Stanza
