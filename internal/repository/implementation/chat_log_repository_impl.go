package implementation

import (
	"context"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/mapper"
	"site-chatbot-be/internal/model"
	"site-chatbot-be/internal/repository/contract"
	"site-chatbot-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ChatLogMapper
}

func NewChatLogRepository(db *gorm.DB) contract.ChatLogRepository {
	return &ChatLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewChatLogMapper(),
	}
}

func (r *ChatLogRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ChatLogRepositoryImpl) Create(ctx context.Context, log *entity.ChatLog) error {
	m := r.mapper.ToModel(log)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*log = *r.mapper.ToEntity(m)
	return nil
}

func (r *ChatLogRepositoryImpl) UpdateRating(ctx context.Context, id uuid.UUID, rating int) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.ChatLog{}).
		Where("id = ?", id).
		Update("rating", rating)
	return result.RowsAffected, result.Error
}

func (r *ChatLogRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ChatLog, error) {
	var models []*model.ChatLog
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	entities := make([]*entity.ChatLog, len(models))
	for i, m := range models {
		entities[i] = r.mapper.ToEntity(m)
	}
	return entities, nil
}

func (r *ChatLogRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	err := query.Model(&model.ChatLog{}).Count(&count).Error
	return count, err
}

func (r *ChatLogRepositoryImpl) CountBySource(ctx context.Context) ([]contract.SourceCount, error) {
	var counts []contract.SourceCount
	err := r.db.WithContext(ctx).
		Model(&model.ChatLog{}).
		Select("source, count(*) as count").
		Group("source").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (r *ChatLogRepositoryImpl) CountByLanguage(ctx context.Context) ([]contract.LanguageCount, error) {
	var counts []contract.LanguageCount
	err := r.db.WithContext(ctx).
		Model(&model.ChatLog{}).
		Select("language, count(*) as count").
		Group("language").
		Order("count DESC").
		Scan(&counts).Error
	return counts, err
}

func (r *ChatLogRepositoryImpl) AverageConversionScore(ctx context.Context) (float64, error) {
	var avg *float64
	err := r.db.WithContext(ctx).
		Model(&model.ChatLog{}).
		Select("avg(conversion_score)").
		Scan(&avg).Error
	if err != nil || avg == nil {
		return 0, err
	}
	return *avg, nil
}
