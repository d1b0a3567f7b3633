package mapper

import (
	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/model"
)

type LeadMapper struct{}

func NewLeadMapper() *LeadMapper {
	return &LeadMapper{}
}

func (m *LeadMapper) ToEntity(mod *model.Lead) *entity.Lead {
	return &entity.Lead{
		UserId:          mod.UserId,
		Name:            mod.Name,
		Email:           mod.Email,
		Phone:           mod.Phone,
		Organization:    mod.Organization,
		ConversionScore: mod.ConversionScore,
		CreatedAt:       mod.CreatedAt,
	}
}

func (m *LeadMapper) ToModel(e *entity.Lead) *model.Lead {
	return &model.Lead{
		UserId:          e.UserId,
		Name:            e.Name,
		Email:           e.Email,
		Phone:           e.Phone,
		Organization:    e.Organization,
		ConversionScore: e.ConversionScore,
		CreatedAt:       e.CreatedAt,
	}
}
