package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Total   int
	Current int
	Applied int // Dates written by exiftool.
	Emitted int // Dry-run commands printed.
	Skipped int // No date in the file name.
	Failed  int // Parse or exiftool failures.
}

// Processed returns the number of files that reached a terminal state.
func (s *RunStats) Processed() int {
	return s.Applied + s.Emitted + s.Skipped + s.Failed
}

// Add counts r's terminal state.
func (s *RunStats) Add(r Result) {
	switch r.State {
	case StateApplied:
		s.Applied++
	case StateEmitted:
		s.Emitted++
	case StateSkipped:
		s.Skipped++
	case StateErrored:
		s.Failed++
	}
}
