package logparser

// VisitsStatistics reads the log file at path and counts the visits to each
// URL, including repeat visits by the same client.
func VisitsStatistics(path string) ([]Count, error) {
	entries, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return OrderedCounts(URLs(entries)), nil
}

// UniqueViewsStatistics reads the log file at path and counts, for each URL,
// the distinct clients that visited it.
func UniqueViewsStatistics(path string) ([]Count, error) {
	entries, err := ParseFile(path)
	if err != nil {
		return nil, err
	}
	return OrderedCounts(URLs(Dedupe(entries))), nil
}

// Dedupe returns entries with repeats removed, keeping the first occurrence of
// each distinct (URL, client) pair.
func Dedupe(entries []Entry) []Entry {
	seen := make(map[Entry]bool, len(entries))
	unique := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if seen[e] {
			continue
		}
		seen[e] = true
		unique = append(unique, e)
	}
	return unique
}

// URLs returns the URL of each entry, in order.
func URLs(entries []Entry) []string {
	urls := make([]string, len(entries))
	for i, e := range entries {
		urls[i] = e.URL
	}
	return urls
}
