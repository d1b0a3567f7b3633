package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestScorer() *Scorer {
	return NewScorer(5,
		[]string{"demo", "pricing", "cost", "consulting", "training", "schedule",
			"quote", "trial", "implementation", "contact sales", "enquire"},
		[]string{"leanmaster", "sixsigma", "software", "capabilities", "about"},
	)
}

func TestScore(t *testing.T) {
	scorer := newTestScorer()

	testCases := []struct {
		name    string
		query   string
		current int
		want    int
	}{
		{
			name:    "should leave score untouched for empty query",
			query:   "",
			current: 1,
			want:    1,
		},
		{
			name:    "should leave score untouched for whitespace-only query",
			query:   "   ",
			current: 3,
			want:    3,
		},
		{
			name:    "should raise any non-empty query to the floor",
			query:   "where are your offices?",
			current: 1,
			want:    2,
		},
		{
			name:    "should add two for a high-intent keyword",
			query:   "can I get a demo?",
			current: 1,
			want:    4,
		},
		{
			name:    "should match high-intent keywords case-insensitively",
			query:   "What is your PRICING?",
			current: 2,
			want:    4,
		},
		{
			name:    "should add one for a topical keyword with headroom",
			query:   "tell me about sixsigma",
			current: 1,
			want:    3,
		},
		{
			name:    "should not double count when both categories match",
			query:   "pricing for the sixsigma training",
			current: 1,
			want:    4,
		},
		{
			name:    "should cap high-intent bump at the maximum",
			query:   "book a consulting demo now",
			current: 4,
			want:    5,
		},
		{
			name:    "should not bump topical keyword without headroom",
			query:   "more about your software",
			current: 5,
			want:    5,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := scorer.Score(tc.query, tc.current)

			assert.Equal(t, tc.want, got)
			if tc.query != "" {
				assert.GreaterOrEqual(t, got, tc.current, "score must never decrease")
			}
			assert.LessOrEqual(t, got, 5)
		})
	}
}
