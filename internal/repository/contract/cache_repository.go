package contract

import (
	"context"

	"site-chatbot-be/internal/entity"
)

type CacheRepository interface {
	// AllQuestions returns every stored question key. The fuzzy matcher scans
	// this set; the table is small relative to query volume.
	AllQuestions(ctx context.Context) ([]string, error)
	FindByQuestion(ctx context.Context, question string) (*entity.CacheEntry, error)
	// Upsert inserts the entry or overwrites answer/source on the unique
	// question key (last write wins, timestamp refreshed).
	Upsert(ctx context.Context, entry *entity.CacheEntry) error
	// UpdateByQuestion updates an existing row only. Returns the number of
	// rows affected so callers can tell "updated" from "no matching row".
	UpdateByQuestion(ctx context.Context, question, answer, source string) (int64, error)
}
