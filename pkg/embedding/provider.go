package embedding

import (
	"context"
)

// Task types understood by the embedding backends.
const (
	TaskRetrievalQuery    = "RETRIEVAL_QUERY"
	TaskRetrievalDocument = "RETRIEVAL_DOCUMENT"
)

// Provider generates a vector for a piece of text.
type Provider interface {
	Generate(ctx context.Context, text string, taskType string) ([]float32, error)
}
