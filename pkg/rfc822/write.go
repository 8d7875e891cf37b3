package rfc822

import (
	"fmt"
	"io"
)

// Write serialises the stanza back to "Name: value" lines, one field's
// first line per Write call; continuation lines are written verbatim on
// their own line beneath it. It round-trips with ParseStanzas for any
// stanza whose fields carry no continuation lines and no duplicate names.
func (s *Stanza) Write(w io.Writer) error {
	for _, f := range s.fields {
		if _, err := fmt.Fprintf(w, "%s: %s\n", f.Name, f.Lines[0]); err != nil {
			return err
		}
		for _, cont := range f.Lines[1:] {
			if _, err := fmt.Fprintf(w, "%s\n", cont); err != nil {
				return err
			}
		}
	}
	return nil
}
