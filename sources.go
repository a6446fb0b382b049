package logparser

import (
	"fmt"
	"os"
	"strings"
)

// Echo returns a pipe containing the supplied string.
func Echo(s string) *Pipe {
	return NewPipe().WithReader(strings.NewReader(s))
}

// File returns a *Pipe associated with the specified log file. This is useful
// for starting pipelines. If the file cannot be opened, or is a directory, the
// pipe's error status is set to an error matching ErrFileNotFound.
func File(path string) *Pipe {
	p := NewPipe()
	f, err := os.Open(path)
	if err != nil {
		return p.WithError(fmt.Errorf("%w: %w", ErrFileNotFound, err))
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return p.WithError(fmt.Errorf("%w: %w", ErrFileNotFound, err))
	}
	if info.IsDir() {
		f.Close()
		return p.WithError(fmt.Errorf("%w: %s is a directory", ErrFileNotFound, path))
	}
	return p.WithReader(f)
}

// Slice returns a pipe containing each element of lines, one per line.
func Slice(lines []string) *Pipe {
	if len(lines) == 0 {
		return NewPipe()
	}
	return Echo(strings.Join(lines, "\n") + "\n")
}
