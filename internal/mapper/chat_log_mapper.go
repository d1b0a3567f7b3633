package mapper

import (
	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/model"
)

type ChatLogMapper struct{}

func NewChatLogMapper() *ChatLogMapper {
	return &ChatLogMapper{}
}

func (m *ChatLogMapper) ToEntity(mod *model.ChatLog) *entity.ChatLog {
	return &entity.ChatLog{
		Id:              mod.Id,
		UserId:          mod.UserId,
		Query:           mod.Query,
		TranslatedQuery: mod.TranslatedQuery,
		Answer:          mod.Answer,
		Source:          mod.Source,
		Language:        mod.Language,
		Rating:          mod.Rating,
		ConversionScore: mod.ConversionScore,
		CreatedAt:       mod.CreatedAt,
	}
}

func (m *ChatLogMapper) ToModel(e *entity.ChatLog) *model.ChatLog {
	return &model.ChatLog{
		Id:              e.Id,
		UserId:          e.UserId,
		Query:           e.Query,
		TranslatedQuery: e.TranslatedQuery,
		Answer:          e.Answer,
		Source:          e.Source,
		Language:        e.Language,
		Rating:          e.Rating,
		ConversionScore: e.ConversionScore,
		CreatedAt:       e.CreatedAt,
	}
}
