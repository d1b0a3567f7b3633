package contract

import (
	"context"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/repository/specification"
)

type LeadRepository interface {
	// Upsert saves or refreshes a lead keyed by visitor session id.
	Upsert(ctx context.Context, lead *entity.Lead) error
	FindByUserId(ctx context.Context, userId string) (*entity.Lead, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Lead, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
