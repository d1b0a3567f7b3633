package implementation

import (
	"context"
	"errors"

	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/mapper"
	"site-chatbot-be/internal/model"
	"site-chatbot-be/internal/repository/contract"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CacheRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CacheEntryMapper
}

func NewCacheRepository(db *gorm.DB) contract.CacheRepository {
	return &CacheRepositoryImpl{
		db:     db,
		mapper: mapper.NewCacheEntryMapper(),
	}
}

func (r *CacheRepositoryImpl) AllQuestions(ctx context.Context) ([]string, error) {
	var questions []string
	err := r.db.WithContext(ctx).
		Model(&model.CacheEntry{}).
		Pluck("question", &questions).Error
	if err != nil {
		return nil, err
	}
	return questions, nil
}

func (r *CacheRepositoryImpl) FindByQuestion(ctx context.Context, question string) (*entity.CacheEntry, error) {
	var m model.CacheEntry
	err := r.db.WithContext(ctx).Where("question = ?", question).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CacheRepositoryImpl) Upsert(ctx context.Context, entry *entity.CacheEntry) error {
	m := r.mapper.ToModel(entry)
	// Unique question key makes concurrent identical writes converge on one
	// row instead of erroring.
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "question"}},
		DoUpdates: clause.AssignmentColumns([]string{"answer", "source", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return err
	}
	*entry = *r.mapper.ToEntity(m)
	return nil
}

func (r *CacheRepositoryImpl) UpdateByQuestion(ctx context.Context, question, answer, source string) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.CacheEntry{}).
		Where("question = ?", question).
		Updates(map[string]interface{}{"answer": answer, "source": source})
	return result.RowsAffected, result.Error
}
