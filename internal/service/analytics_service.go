package service

import (
	"context"

	"site-chatbot-be/internal/config"
	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/repository/specification"
	"site-chatbot-be/internal/repository/unitofwork"
)

type IAnalyticsService interface {
	GetLogs(ctx context.Context, page int) (*dto.GetLogsResponse, error)
	GetSummary(ctx context.Context) (*dto.GetSummaryResponse, error)
	GetLeads(ctx context.Context) (*dto.GetLeadsResponse, error)
}

type analyticsService struct {
	uowFactory unitofwork.RepositoryFactory
	cfg        config.AnalyticsConfig
}

func NewAnalyticsService(uowFactory unitofwork.RepositoryFactory, cfg config.AnalyticsConfig) IAnalyticsService {
	return &analyticsService{
		uowFactory: uowFactory,
		cfg:        cfg,
	}
}

func (s *analyticsService) GetLogs(ctx context.Context, page int) (*dto.GetLogsResponse, error) {
	if page < 1 {
		page = 1
	}
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.ChatLogRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}

	logs, err := repo.FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: s.cfg.PageSize, Offset: (page - 1) * s.cfg.PageSize},
	)
	if err != nil {
		return nil, err
	}

	res := &dto.GetLogsResponse{
		Logs:     make([]dto.ChatLogDTO, 0, len(logs)),
		Total:    total,
		Page:     page,
		PageSize: s.cfg.PageSize,
	}
	for _, l := range logs {
		res.Logs = append(res.Logs, dto.ChatLogDTO{
			Id:              l.Id,
			UserId:          l.UserId,
			Query:           l.Query,
			TranslatedQuery: l.TranslatedQuery,
			Answer:          l.Answer,
			Source:          l.Source,
			Language:        l.Language,
			Rating:          l.Rating,
			ConversionScore: l.ConversionScore,
			CreatedAt:       l.CreatedAt,
		})
	}
	return res, nil
}

func (s *analyticsService) GetSummary(ctx context.Context) (*dto.GetSummaryResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	logs := uow.ChatLogRepository()

	total, err := logs.Count(ctx)
	if err != nil {
		return nil, err
	}
	bySource, err := logs.CountBySource(ctx)
	if err != nil {
		return nil, err
	}
	byLanguage, err := logs.CountByLanguage(ctx)
	if err != nil {
		return nil, err
	}
	avgScore, err := logs.AverageConversionScore(ctx)
	if err != nil {
		return nil, err
	}
	totalLeads, err := uow.LeadRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	res := &dto.GetSummaryResponse{
		TotalInteractions:      total,
		TotalLeads:             totalLeads,
		AverageConversionScore: avgScore,
		BySource:               make([]dto.SourceCountDTO, 0, len(bySource)),
		ByLanguage:             make([]dto.LanguageCountDTO, 0, len(byLanguage)),
	}
	for _, sc := range bySource {
		res.BySource = append(res.BySource, dto.SourceCountDTO{Source: sc.Source, Count: sc.Count})
	}
	for _, lc := range byLanguage {
		res.ByLanguage = append(res.ByLanguage, dto.LanguageCountDTO{Language: lc.Language, Count: lc.Count})
	}
	return res, nil
}

func (s *analyticsService) GetLeads(ctx context.Context) (*dto.GetLeadsResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.LeadRepository()

	total, err := repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	leads, err := repo.FindAll(ctx, specification.OrderBy{Field: "created_at", Desc: true})
	if err != nil {
		return nil, err
	}

	res := &dto.GetLeadsResponse{
		Leads: make([]dto.LeadDTO, 0, len(leads)),
		Total: total,
	}
	for _, l := range leads {
		res.Leads = append(res.Leads, dto.LeadDTO{
			UserId:          l.UserId,
			Name:            l.Name,
			Email:           l.Email,
			Phone:           l.Phone,
			Organization:    l.Organization,
			ConversionScore: l.ConversionScore,
			CreatedAt:       l.CreatedAt,
		})
	}
	return res, nil
}
