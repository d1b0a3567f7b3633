package store

// Session is the in-memory state of one anonymous website visitor.
type Session struct {
	ID string `json:"id"` // visitor id, generated on first contact

	// Running lead score, [1, max], monotone within the session.
	ConversionScore int `json:"conversion_score"`

	// Last N pivot-language queries, oldest first, for retrieval continuity.
	RecentQueries []string `json:"recent_queries"`

	// Set once contact details were captured, so the widget stops prompting.
	LeadSaved bool `json:"lead_saved"`

	// Pivot question/answer of the last answered turn, needed when a "like"
	// after regeneration promotes the regenerated answer into the cache.
	LastQuestion string `json:"last_question"`
	LastAnswer   string `json:"last_answer"`
}

const InitialConversionScore = 1
