package logparser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

var (
	// ErrFileNotFound is returned when a log file is missing or unreadable.
	ErrFileNotFound = errors.New("file not found")

	// ErrMalformedLine is returned for a log line that does not have the form
	// "<url> <client>".
	ErrMalformedLine = errors.New("malformed line")
)

// Entry is a single parsed log line: the requested URL, and the identifier
// (usually the IP address) of the client that requested it.
type Entry struct {
	URL    string
	Client string
}

// ParseLine splits a raw log line into an Entry. One trailing line terminator
// is removed, and the line is split at its first run of whitespace: what comes
// before is the URL, and everything after it, untrimmed, is the client. A line
// with nothing after the URL is malformed, but a line ending in whitespace
// right after the URL yields an empty client.
func ParseLine(line string) (Entry, error) {
	s := strings.TrimLeftFunc(chomp(line), unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return Entry{}, fmt.Errorf("%w: %q", ErrMalformedLine, line)
	}
	rest := strings.TrimLeftFunc(s[i:], unicode.IsSpace)
	return Entry{URL: s[:i], Client: rest}, nil
}

// chomp removes one trailing "\r\n", "\n" or "\r" from s.
func chomp(s string) string {
	switch {
	case strings.HasSuffix(s, "\r\n"):
		return s[:len(s)-2]
	case strings.HasSuffix(s, "\n"), strings.HasSuffix(s, "\r"):
		return s[:len(s)-1]
	}
	return s
}

// ParseFile reads the log file at path and returns its entries in file order.
// An empty file yields no entries and no error.
func ParseFile(path string) ([]Entry, error) {
	return File(path).Entries()
}
