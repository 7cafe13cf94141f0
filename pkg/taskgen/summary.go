package taskgen

import "time"

// Summary describes a finished generation run.
type Summary struct {
	RunID    string
	Filename string
	Lines    int
	Counts   map[RequestType]int
	// Fallback is the number of positions not covered by the category
	// pool and therefore assigned FallbackRequestType.
	Fallback int
	Bytes    int64
	Elapsed  time.Duration
}

func newSummary(runID string, lines int) Summary {
	return Summary{
		RunID:  runID,
		Lines:  lines,
		Counts: make(map[RequestType]int, len(RequestTypes)),
	}
}

func (s *Summary) record(t Task) {
	s.Counts[t.RequestType]++
}

// Written returns the number of records emitted.
func (s Summary) Written() int {
	n := 0
	for _, c := range s.Counts {
		n += c
	}
	return n
}

// Share returns the fraction of emitted records carrying t.
func (s Summary) Share(t RequestType) float64 {
	written := s.Written()
	if written == 0 {
		return 0
	}
	return float64(s.Counts[t]) / float64(written)
}
