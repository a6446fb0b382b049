package logparser

// Visits reads log lines from the pipe, and returns a new pipe containing the
// visits report: each URL with its number of visits, most visited first. If
// there is an error reading or parsing the pipe, the pipe's error status is
// also set, and the returned pipe carries the same error.
func (p *Pipe) Visits() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	entries, err := p.Entries()
	if err != nil {
		return p
	}
	return p.derive(FormatVisitsReport(OrderedCounts(URLs(entries))))
}

// UniqueViews reads log lines from the pipe, and returns a new pipe containing
// the unique views report: each URL with the number of distinct clients that
// visited it, most viewed first. If there is an error reading or parsing the
// pipe, the pipe's error status is also set, and the returned pipe carries the
// same error.
func (p *Pipe) UniqueViews() *Pipe {
	if p == nil || p.Error() != nil {
		return p
	}
	entries, err := p.Entries()
	if err != nil {
		return p
	}
	return p.derive(FormatUniqueViewsReport(OrderedCounts(URLs(Dedupe(entries)))))
}
