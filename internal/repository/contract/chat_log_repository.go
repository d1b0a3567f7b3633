package contract

import (
	"context"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
)

// SourceCount aggregates chat logs per source tag.
type SourceCount struct {
	Source string
	Count  int64
}

// LanguageCount aggregates chat logs per detected language.
type LanguageCount struct {
	Language string
	Count    int64
}

type ChatLogRepository interface {
	Create(ctx context.Context, log *entity.ChatLog) error
	UpdateRating(ctx context.Context, id uuid.UUID, rating int) (int64, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
	CountBySource(ctx context.Context) ([]SourceCount, error)
	CountByLanguage(ctx context.Context) ([]LanguageCount, error)
	AverageConversionScore(ctx context.Context) (float64, error)
}
