package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/entity"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/memory"
	"site-chatbot-be/internal/repository/unitofwork"
	"site-chatbot-be/pkg/store"

	"github.com/gofiber/fiber/v2"
)

type ILeadService interface {
	SaveLead(ctx context.Context, req *dto.SaveLeadRequest) (*dto.SaveLeadResponse, error)
}

// phonePattern accepts an optional leading + and 7-15 digits with common
// separators.
var phonePattern = regexp.MustCompile(`^\+?[0-9][0-9\s\-]{6,14}$`)

type leadService struct {
	uowFactory unitofwork.RepositoryFactory
	sessions   *memory.SessionRepository
	log        logger.ILogger
}

func NewLeadService(
	uowFactory unitofwork.RepositoryFactory,
	sessions *memory.SessionRepository,
	log logger.ILogger,
) ILeadService {
	return &leadService{
		uowFactory: uowFactory,
		sessions:   sessions,
		log:        log,
	}
}

func (s *leadService) SaveLead(ctx context.Context, req *dto.SaveLeadRequest) (*dto.SaveLeadResponse, error) {
	phone := strings.TrimSpace(req.Phone)
	if !phonePattern.MatchString(phone) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "invalid phone number")
	}

	score := store.InitialConversionScore
	session, hasSession := s.sessions.Get(req.UserId)
	if hasSession {
		score = session.ConversionScore
	}

	lead := &entity.Lead{
		UserId:          req.UserId,
		Name:            strings.TrimSpace(req.Name),
		Email:           strings.TrimSpace(req.Email),
		Phone:           phone,
		Organization:    strings.TrimSpace(req.Organization),
		ConversionScore: score,
		CreatedAt:       time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.LeadRepository().Upsert(ctx, lead); err != nil {
		return nil, err
	}

	if hasSession {
		session.LeadSaved = true
		s.sessions.Save(session)
	}

	s.log.Info("LeadService", "Lead captured", map[string]interface{}{
		"user_id": req.UserId,
		"score":   score,
	})

	return &dto.SaveLeadResponse{
		UserId:          req.UserId,
		ConversionScore: score,
	}, nil
}
