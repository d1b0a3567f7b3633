package mapper

import (
	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/model"
)

type CacheEntryMapper struct{}

func NewCacheEntryMapper() *CacheEntryMapper {
	return &CacheEntryMapper{}
}

func (m *CacheEntryMapper) ToEntity(mod *model.CacheEntry) *entity.CacheEntry {
	return &entity.CacheEntry{
		Question:  mod.Question,
		Answer:    mod.Answer,
		Source:    mod.Source,
		UpdatedAt: mod.UpdatedAt,
	}
}

func (m *CacheEntryMapper) ToModel(e *entity.CacheEntry) *model.CacheEntry {
	return &model.CacheEntry{
		Question:  e.Question,
		Answer:    e.Answer,
		Source:    e.Source,
		UpdatedAt: e.UpdatedAt,
	}
}
