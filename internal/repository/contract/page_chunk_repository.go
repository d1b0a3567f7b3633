package contract

import (
	"context"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/repository/specification"
)

type PageChunkRepository interface {
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageChunk, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	// SearchSimilarWithScore returns the chunks nearest to the query embedding
	// with their cosine similarity, best first.
	SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPageChunk, error)
	// DistinctCanonicalURLs lists every indexed page, for diagnostics.
	DistinctCanonicalURLs(ctx context.Context) ([]string, error)
}
