package taskgen

import "fmt"

// Share is the target percentage of records carrying a request type.
type Share struct {
	Type    RequestType
	Percent int
}

// DefaultMix is the request type distribution expected by the ATM service
// load tests: 10% each of the special categories, 70% standard.
var DefaultMix = []Share{
	{Type: Standard, Percent: 70},
	{Type: Priority, Percent: 10},
	{Type: FailureRestart, Percent: 10},
	{Type: SignalLow, Percent: 10},
}

// ValidateMix rejects unknown or repeated categories, negative percents
// and mixes that sum to more than 100%.
func ValidateMix(mix []Share) error {
	seen := make(map[RequestType]bool, len(mix))
	total := 0
	for _, s := range mix {
		if !s.Type.Valid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidMix, ErrUnknownRequestType, s.Type)
		}
		if seen[s.Type] {
			return fmt.Errorf("%w: %s listed twice", ErrInvalidMix, s.Type)
		}
		seen[s.Type] = true
		if s.Percent < 0 {
			return fmt.Errorf("%w: %s has negative percent %d", ErrInvalidMix, s.Type, s.Percent)
		}
		total += s.Percent
	}
	if total > 100 {
		return fmt.Errorf("%w: percentages sum to %d", ErrInvalidMix, total)
	}
	return nil
}

// PoolCounts returns floor(lines * percent / 100) for every share.
// Each count is floored on its own, so the sum may fall short of lines.
func PoolCounts(lines int, mix []Share) map[RequestType]int {
	counts := make(map[RequestType]int, len(mix))
	for _, s := range mix {
		counts[s.Type] = lines * s.Percent / 100
	}
	return counts
}

// BuildPool lays out each category repeated its floored count, in mix
// order. The result is never longer than lines for a valid mix.
func BuildPool(lines int, mix []Share) []RequestType {
	if lines <= 0 {
		return nil
	}
	counts := PoolCounts(lines, mix)
	pool := make([]RequestType, 0, poolSize(lines, mix))
	for _, s := range mix {
		for range counts[s.Type] {
			pool = append(pool, s.Type)
		}
	}
	return pool
}

func poolSize(lines int, mix []Share) int {
	if lines <= 0 {
		return 0
	}
	size := 0
	for _, n := range PoolCounts(lines, mix) {
		size += n
	}
	return size
}
