package entity

import (
	"time"

	"github.com/google/uuid"
)

// PageChunk is one indexed fragment of a crawled site page. The crawler owns
// writes; the chatbot only reads.
type PageChunk struct {
	Id           uuid.UUID
	Content      string
	Path         string
	CanonicalURL string
	Title        string
	Headings     []string
	ChunkIndex   int
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// ScoredPageChunk wraps a PageChunk with its cosine similarity to a query,
// 1.0 meaning identical direction.
type ScoredPageChunk struct {
	Chunk      *PageChunk
	Similarity float64
}
