package retrieve

import (
	"context"
	"fmt"
	"strings"

	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/contract"
	"site-chatbot-be/pkg/embedding"
)

// Passage is one retrieved page fragment with its provenance metadata.
// Distance is 1 - cosine similarity, lower meaning more relevant.
type Passage struct {
	Text         string   `json:"text"`
	SourcePath   string   `json:"source_path"`
	CanonicalURL string   `json:"canonical_url"`
	Title        string   `json:"title"`
	Headings     []string `json:"headings"`
	Distance     float64  `json:"distance"`
}

// Retriever embeds a query and pulls the nearest indexed page chunks.
type Retriever struct {
	embedder embedding.Provider
	chunks   contract.PageChunkRepository
	log      logger.ILogger
}

func NewRetriever(embedder embedding.Provider, chunks contract.PageChunkRepository, log logger.ILogger) *Retriever {
	return &Retriever{embedder: embedder, chunks: chunks, log: log}
}

// Retrieve returns the combined context for the prompt, the distance of the
// single closest passage, and the passage metadata. History biases retrieval
// toward conversational continuity without the index modelling state. Any
// backend failure degrades to ("", 1.0, nil) so the unclear gate fires
// instead of generating off no context.
func (r *Retriever) Retrieve(ctx context.Context, query string, topK int, history string) (string, float64, []Passage) {
	retrievalQuery := query
	if history != "" {
		retrievalQuery = fmt.Sprintf("%s | Previous Context: %s", query, history)
	}

	vector, err := r.embedder.Generate(ctx, retrievalQuery, embedding.TaskRetrievalQuery)
	if err != nil {
		r.log.Error("Retriever", "Query embedding failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", 1.0, nil
	}

	scored, err := r.chunks.SearchSimilarWithScore(ctx, vector, topK)
	if err != nil {
		r.log.Error("Retriever", "Vector search failed", map[string]interface{}{
			"error": err.Error(),
		})
		return "", 1.0, nil
	}
	if len(scored) == 0 {
		return "", 1.0, nil
	}

	passages := make([]Passage, 0, len(scored))
	blocks := make([]string, 0, len(scored))
	for _, hit := range scored {
		chunk := hit.Chunk
		passages = append(passages, Passage{
			Text:         chunk.Content,
			SourcePath:   chunk.Path,
			CanonicalURL: chunk.CanonicalURL,
			Title:        chunk.Title,
			Headings:     chunk.Headings,
			Distance:     1 - hit.Similarity,
		})
		blocks = append(blocks, fmt.Sprintf("Source Page (%s): %s", chunk.Path, chunk.Content))
	}

	// Results come back best first; the unclear gate evaluates the top hit,
	// not an average.
	bestDistance := passages[0].Distance
	combined := strings.Join(blocks, "\n\n---\n\n")

	return combined, bestDistance, passages
}
