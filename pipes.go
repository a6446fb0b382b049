// Package logparser reads web-server access logs and reports how often each
// URL was visited. Each log line holds a URL and a client identifier,
// separated by whitespace:
//
//	/home 184.123.665.067
//	/about 126.318.035.038
//
// Logs are read through a Pipe, which carries an error status along with its
// data, so operations can be chained without checking errors at each stage:
//
//	report, err := logparser.File("webserver.log").UniqueViews().String()
//
// If any pipe operation fails, the pipe's Error method returns that error and
// all further operations on the pipe are no-ops.
package logparser

import (
	"io"
	"os"
)

// Pipe represents a pipe object with an associated ReadAutoCloser.
type Pipe struct {
	Reader ReadAutoCloser
	err    error
	stdout io.Writer
}

// NewPipe returns a pointer to a new empty pipe.
func NewPipe() *Pipe {
	return &Pipe{
		Reader: ReadAutoCloser{},
		err:    nil,
		stdout: os.Stdout,
	}
}

// Close closes the pipe's associated reader. This is always safe to do, even
// on a nil pipe or a pipe whose reader has already been closed.
func (p *Pipe) Close() error {
	if p == nil {
		return nil
	}
	return p.Reader.Close()
}

// Error returns the last error returned by any pipe operation, or nil otherwise.
func (p *Pipe) Error() error {
	if p == nil {
		return nil
	}
	return p.err
}

// Read reads up to len(b) bytes from the data source into b. It returns the
// number of bytes read and any error encountered. At end of file, or on a nil
// pipe, Read returns 0, io.EOF.
func (p *Pipe) Read(b []byte) (int, error) {
	if p == nil {
		return 0, io.EOF
	}
	return p.Reader.Read(b)
}

// SetError sets the pipe's error status to the specified error. Setting a
// non-nil error closes the pipe's reader.
func (p *Pipe) SetError(err error) {
	if p != nil {
		if err != nil {
			p.Close()
		}
		p.err = err
	}
}

// WithReader takes an io.Reader, and associates the pipe with that reader. If
// necessary, the reader will be automatically closed once it has been
// completely read.
func (p *Pipe) WithReader(r io.Reader) *Pipe {
	if p == nil {
		return nil
	}
	p.Reader = NewReadAutoCloser(r)
	return p
}

// WithStdout takes an io.Writer, and associates the pipe's standard output with
// that writer, instead of the default os.Stdout. This is primarily useful for
// testing.
func (p *Pipe) WithStdout(w io.Writer) *Pipe {
	if p == nil {
		return nil
	}
	p.stdout = w
	return p
}

// WithError sets the pipe's error status to the specified error and returns the
// modified pipe.
func (p *Pipe) WithError(err error) *Pipe {
	p.SetError(err)
	return p
}

// derive returns a new pipe reading s, which inherits p's stdout.
func (p *Pipe) derive(s string) *Pipe {
	return Echo(s).WithStdout(p.stdout)
}
