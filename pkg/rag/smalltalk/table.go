package smalltalk

import (
	"strings"

	"site-chatbot-be/internal/constant"
)

// Table answers conversational filler without touching retrieval. Matching is
// case-insensitive substring search in declaration order, so more specific
// phrases must be declared before generic ones ("hello" matches last).
type Table struct {
	triggers []constant.SmallTalkTrigger
}

func NewTable(triggers []constant.SmallTalkTrigger) *Table {
	return &Table{triggers: triggers}
}

// NewDefaultTable builds the table over the built-in trigger set.
func NewDefaultTable() *Table {
	return NewTable(constant.SmallTalkTriggers)
}

// Match returns the canned response for the first trigger contained in query,
// or ok=false when the query is not small talk.
func (t *Table) Match(query string) (response string, ok bool) {
	lowered := strings.ToLower(query)
	for _, trigger := range t.triggers {
		if strings.Contains(lowered, trigger.Phrase) {
			return trigger.Response, true
		}
	}
	return "", false
}
