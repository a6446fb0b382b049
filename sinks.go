package logparser

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
)

// Entries reads the pipe line by line, parses each line with ParseLine, and
// returns the entries in input order, closing the pipe after reading. It stops
// at the first malformed line and returns an error matching ErrMalformedLine
// which names the line number. If there is an error reading the pipe, the
// pipe's error status is also set.
func (p *Pipe) Entries() ([]Entry, error) {
	if p.Error() != nil {
		return nil, p.Error()
	}
	defer p.Close()
	scanner := newLineScanner(p)
	var entries []Entry
	for n := 1; scanner.Scan(); n++ {
		e, err := ParseLine(scanner.Text())
		if err != nil {
			err = fmt.Errorf("line %d: %w", n, err)
			p.SetError(err)
			return nil, err
		}
		entries = append(entries, e)
	}
	if err := scanner.Err(); err != nil {
		p.SetError(err)
		return nil, err
	}
	return entries, nil
}

// String returns the contents of the pipe as a string, or an error, and closes
// the pipe after reading. If there is an error reading, the pipe's error status
// is also set.
func (p *Pipe) String() (string, error) {
	if p.Error() != nil {
		return "", p.Error()
	}
	defer p.Close()
	res, err := io.ReadAll(p)
	if err != nil {
		p.SetError(err)
		return "", err
	}
	return string(res), nil
}

// Stdout writes the contents of the pipe to its configured standard output
// (os.Stdout unless changed with WithStdout). It returns the number of bytes
// successfully written, plus a non-nil error if the write failed or if there
// was an error reading from the pipe. If the pipe has error status, Stdout
// writes nothing and returns zero plus the existing error.
func (p *Pipe) Stdout() (int, error) {
	if p == nil {
		return 0, nil
	}
	if p.Error() != nil {
		return 0, p.Error()
	}
	output, err := p.String()
	if err != nil {
		return 0, err
	}
	w := p.stdout
	if w == nil {
		w = os.Stdout
	}
	n, err := io.WriteString(w, output)
	if err != nil {
		p.SetError(err)
	}
	return n, err
}

// newLineScanner returns a scanner which yields each line of r with its line
// terminator still attached, and has no limit on line length.
func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 4096), math.MaxInt)
	scanner.Split(scanRawLines)
	return scanner
}

// scanRawLines is like bufio.ScanLines, but keeps the terminating newline.
func scanRawLines(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i+1], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}
