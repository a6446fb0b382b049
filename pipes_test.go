package logparser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestWithReader(t *testing.T) {
	t.Parallel()
	want := "/home 1.2.3.4\n"
	p := NewPipe().WithReader(strings.NewReader(want))
	got, err := p.String()
	if err != nil {
		t.Fatal(err)
	}
	if want != got {
		t.Error(cmp.Diff(want, got))
	}
}

func TestError(t *testing.T) {
	t.Parallel()
	p := File("testdata/doesntexist.log")
	if p.Error() == nil {
		t.Fatal("want error status reading nonexistent file, but got nil")
	}
	defer func() {
		// Reading an erroneous pipe should not panic.
		if r := recover(); r != nil {
			t.Errorf("panic reading erroneous pipe: %v", r)
		}
	}()
	if _, err := p.String(); err != p.Error() {
		t.Error(err)
	}
	if _, err := p.Entries(); err != p.Error() {
		t.Error(err)
	}
	if q := p.Visits(); q.Error() != p.Error() {
		t.Errorf("want Visits to keep error %v, got %v", p.Error(), q.Error())
	}
	e := errors.New("fake error")
	p.SetError(e)
	if p.Error() != e {
		t.Errorf("want %v when setting pipe error, got %v", e, p.Error())
	}
}

// doPipeOps calls every kind of operation on the supplied pipe and tries to
// trigger a panic.
func doPipeOps(t *testing.T, p *Pipe, kind string) {
	var action string
	defer func() {
		if r := recover(); r != nil {
			t.Errorf("panic: %s on %s pipe", action, kind)
		}
	}()
	action = "Visits()"
	p.Visits()
	action = "UniqueViews()"
	p.UniqueViews()
	action = "Entries()"
	entries, err := p.Entries()
	if err != nil {
		t.Error(err)
	}
	if len(entries) != 0 {
		t.Errorf("want no entries from %s on %s pipe, got %v", action, kind, entries)
	}
	action = "String()"
	output, err := p.String()
	if err != nil {
		t.Error(err)
	}
	if output != "" {
		t.Errorf("want zero output from %s on %s pipe, but got %q", action, kind, output)
	}
	action = "Close()"
	p.Close()
	action = "Error()"
	p.Error()
}

func TestNilPipeOps(t *testing.T) {
	t.Parallel()
	doPipeOps(t, nil, "nil")
}

func TestZeroPipeOps(t *testing.T) {
	t.Parallel()
	doPipeOps(t, &Pipe{}, "zero")
}

func TestNewPipeOps(t *testing.T) {
	t.Parallel()
	doPipeOps(t, NewPipe(), "empty")
}

func TestWithStdout(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	want := "/home 1 visit\n"
	_, err := Echo(want).WithStdout(buf).Stdout()
	if err != nil {
		t.Fatal(err)
	}
	if want != buf.String() {
		t.Error(cmp.Diff(want, buf.String()))
	}
}
