package score

import (
	"strings"
)

// Scorer maps a query and the session's running conversion score to a new
// score. Pure and deterministic: never decreases, caps at Max, and exactly
// one keyword tier applies per call.
type Scorer struct {
	max        int
	highIntent []string
	topical    []string
}

func NewScorer(max int, highIntent, topical []string) *Scorer {
	return &Scorer{max: max, highIntent: highIntent, topical: topical}
}

// Score returns the updated conversion score for query. An empty query leaves
// the score untouched; any other query raises it to the lead-candidate floor
// of 2 first. A high-intent keyword adds 2, else a topical keyword adds 1
// when there is headroom. First match wins within each list.
func (s *Scorer) Score(query string, current int) int {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return current
	}

	next := current
	if next < 2 {
		next = 2
	}

	lowered := strings.ToLower(trimmed)
	if s.containsAny(lowered, s.highIntent) {
		next += 2
	} else if next < s.max && s.containsAny(lowered, s.topical) {
		next++
	}

	if next > s.max {
		next = s.max
	}
	return next
}

func (s *Scorer) containsAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}
