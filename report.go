package logparser

import (
	"strconv"
	"strings"
)

// FormatReport renders counts as text, one line per count, in the form
// "<url> <count> <word>", where word is singular if the count is 1 and plural
// otherwise.
func FormatReport(counts []Count, singular, plural string) string {
	var out strings.Builder
	for _, c := range counts {
		word := plural
		if c.N == 1 {
			word = singular
		}
		out.WriteString(c.Value)
		out.WriteByte(' ')
		out.WriteString(strconv.Itoa(c.N))
		out.WriteByte(' ')
		out.WriteString(word)
		out.WriteByte('\n')
	}
	return out.String()
}

// FormatVisitsReport renders the result of VisitsStatistics.
func FormatVisitsReport(counts []Count) string {
	return FormatReport(counts, "visit", "visits")
}

// FormatUniqueViewsReport renders the result of UniqueViewsStatistics.
func FormatUniqueViewsReport(counts []Count) string {
	return FormatReport(counts, "unique view", "unique views")
}
