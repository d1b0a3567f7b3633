package smalltalk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch(t *testing.T) {
	table := NewDefaultTable()

	testCases := []struct {
		name      string
		query     string
		wantMatch bool
		contains  string
	}{
		{
			name:      "should match greeting regardless of case",
			query:     "HELLO there!",
			wantMatch: true,
			contains:  "Hello!",
		},
		{
			name:      "should match trigger embedded in a longer sentence",
			query:     "hey, tell me a joke please",
			wantMatch: true,
			contains:  "cache",
		},
		{
			name:      "should prefer earlier trigger when several match",
			query:     "hello, how are you?",
			wantMatch: true,
			contains:  "doing great",
		},
		{
			name:      "should not match a real question",
			query:     "what is lean six sigma training?",
			wantMatch: false,
		},
		{
			name:      "should not match empty query",
			query:     "",
			wantMatch: false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			response, ok := table.Match(tc.query)

			assert.Equal(t, tc.wantMatch, ok)
			if tc.wantMatch {
				assert.Contains(t, response, tc.contains)
			} else {
				assert.Empty(t, response)
			}
		})
	}
}
