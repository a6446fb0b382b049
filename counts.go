package logparser

import (
	"sort"
)

// Count is the number of times a single value occurred.
type Count struct {
	Value string
	N     int
}

// OrderedCounts counts how often each distinct value occurs in values, and
// returns the counts most frequent first. Values with equal counts are sorted
// alphabetically, so the result depends only on which values occur and how
// often, never on their order in the input.
func OrderedCounts(values []string) []Count {
	freq := map[string]int{}
	for _, v := range values {
		freq[v]++
	}
	counts := make([]Count, 0, len(freq))
	for v, n := range freq {
		counts = append(counts, Count{v, n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].N == counts[j].N {
			return counts[i].Value < counts[j].Value
		}
		return counts[i].N > counts[j].N
	})
	return counts
}
