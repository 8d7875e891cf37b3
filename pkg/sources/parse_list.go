package sources

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var optionsRe = regexp.MustCompile(`^(\S+)\s+\[([^]]+)]\s*(.*)`)

// ParseSourcesList parses the classic one-line sources.list format:
// "deb [options] uri distribution component...", one entry per non-blank,
// non-comment line.
func ParseSourcesList(r io.Reader) ([]Entry, error) {
	var entries []Entry
	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseSourceLine(line)
		if err != nil {
			return nil, fmt.Errorf("sources.list line %d: %w", lineNumber, err)
		}
		entries = append(entries, *entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("sources.list: %w", err)
	}
	return entries, nil
}

func parseSourceLine(line string) (*Entry, error) {
	options := make(map[string]string)
	if match := optionsRe.FindStringSubmatch(line); match != nil {
		line = match[1] + " " + match[3]
		for _, opt := range strings.Fields(match[2]) {
			if k, v, ok := strings.Cut(opt, "="); ok {
				options[k] = v
			} else {
				options[opt] = "true"
			}
		}
	}

	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("expected at least 3 fields (type, uri, distribution), got %d", len(fields))
	}

	sourceType := parseSourceType(fields[0])
	if sourceType == SourceTypeUnknown {
		return nil, fmt.Errorf("unknown source type %q", fields[0])
	}

	var components []string
	if len(fields) > 3 {
		components = fields[3:]
	}

	return &Entry{
		Type:         sourceType,
		URI:          fields[1],
		Distribution: fields[2],
		Components:   components,
		Options:      options,
		Enabled:      true,
	}, nil
}
