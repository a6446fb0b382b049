package logparser

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestVisits(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/visits_report.txt")
	if err != nil {
		t.Fatal(err)
	}
	got, err := File("testdata/sample2.log").Visits().String()
	if err != nil {
		t.Fatal(err)
	}
	if string(want) != got {
		t.Error(cmp.Diff(string(want), got))
	}
}

func TestUniqueViews(t *testing.T) {
	t.Parallel()
	want, err := os.ReadFile("testdata/unique_views_report.txt")
	if err != nil {
		t.Fatal(err)
	}
	got, err := File("testdata/sample2.log").UniqueViews().String()
	if err != nil {
		t.Fatal(err)
	}
	if string(want) != got {
		t.Error(cmp.Diff(string(want), got))
	}
}

func TestUniqueViewsRoundTrip(t *testing.T) {
	t.Parallel()
	log := "/about A\n/about A\n/about B\n/home A\n"
	tcs := []struct {
		name string
		p    *Pipe
		want string
	}{
		{"visits", Echo(log).Visits(), "/about 3 visits\n/home 1 visit\n"},
		{"unique views", Echo(log).UniqueViews(), "/about 2 unique views\n/home 1 unique view\n"},
	}
	for _, tc := range tcs {
		got, err := tc.p.String()
		if err != nil {
			t.Fatal(err)
		}
		if tc.want != got {
			t.Errorf("%s: %s", tc.name, cmp.Diff(tc.want, got))
		}
	}
}
