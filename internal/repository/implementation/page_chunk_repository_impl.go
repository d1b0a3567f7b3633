package implementation

import (
	"context"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/mapper"
	"site-chatbot-be/internal/model"
	"site-chatbot-be/internal/repository/contract"
	"site-chatbot-be/internal/repository/specification"

	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type PageChunkRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PageChunkMapper
}

func NewPageChunkRepository(db *gorm.DB) contract.PageChunkRepository {
	return &PageChunkRepositoryImpl{
		db:     db,
		mapper: mapper.NewPageChunkMapper(),
	}
}

func (r *PageChunkRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PageChunkRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.PageChunk, error) {
	var models []*model.PageChunk
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.PageChunk, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *PageChunkRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.PageChunk{}).Count(&count).Error
	return count, err
}

// SearchSimilarWithScore computes 1 - (embedding <=> query) per row, which is
// the cosine similarity, and returns the nearest chunks best first.
func (r *PageChunkRepositoryImpl) SearchSimilarWithScore(ctx context.Context, embedding []float32, limit int) ([]*entity.ScoredPageChunk, error) {
	if limit <= 0 {
		limit = 5
	}

	type result struct {
		model.PageChunk
		Similarity float64
	}
	var results []result

	queryVector := pgvector.NewVector(embedding)

	err := r.db.WithContext(ctx).
		Table("page_chunks").
		Select("page_chunks.*, 1 - (embedding <=> ?) as similarity", queryVector).
		Where("page_chunks.deleted_at IS NULL").
		Order("similarity DESC").
		Limit(limit).
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	scored := make([]*entity.ScoredPageChunk, len(results))
	for i, res := range results {
		scored[i] = &entity.ScoredPageChunk{
			Chunk:      r.mapper.ToEntity(&res.PageChunk),
			Similarity: res.Similarity,
		}
	}
	return scored, nil
}

func (r *PageChunkRepositoryImpl) DistinctCanonicalURLs(ctx context.Context) ([]string, error) {
	var urls []string
	err := r.db.WithContext(ctx).
		Model(&model.PageChunk{}).
		Distinct("canonical_url").
		Order("canonical_url ASC").
		Pluck("canonical_url", &urls).Error
	if err != nil {
		return nil, err
	}
	return urls, nil
}
