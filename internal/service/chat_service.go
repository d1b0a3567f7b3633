package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"site-chatbot-be/internal/config"
	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/dto"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/memory"
	"site-chatbot-be/internal/repository/unitofwork"
	"site-chatbot-be/pkg/rag/resolver"
	"site-chatbot-be/pkg/store"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatService interface {
	Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error)
	Regenerate(ctx context.Context, req *dto.RegenerateRequest) (*dto.ChatResponse, error)
	Feedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error)
	SuggestedFAQs() []string
}

// QueryResolver is the pipeline surface the chat service drives.
type QueryResolver interface {
	Resolve(ctx context.Context, rawQuery string, currentScore int, history string) resolver.Outcome
	Regenerate(ctx context.Context, rawQuery string, currentScore int, history string) resolver.Outcome
}

// AnswerPromoter updates an already-cached answer on explicit user feedback.
type AnswerPromoter interface {
	Update(ctx context.Context, question, answer, sourceTag string) bool
}

type chatService struct {
	resolver    QueryResolver
	sessions    *memory.SessionRepository
	promoter    AnswerPromoter
	publisher   IPublisherService
	uowFactory  unitofwork.RepositoryFactory
	pipelineCfg config.PipelineConfig
	log         logger.ILogger
}

func NewChatService(
	queryResolver QueryResolver,
	sessions *memory.SessionRepository,
	promoter AnswerPromoter,
	publisher IPublisherService,
	uowFactory unitofwork.RepositoryFactory,
	pipelineCfg config.PipelineConfig,
	log logger.ILogger,
) IChatService {
	return &chatService{
		resolver:    queryResolver,
		sessions:    sessions,
		promoter:    promoter,
		publisher:   publisher,
		uowFactory:  uowFactory,
		pipelineCfg: pipelineCfg,
		log:         log,
	}
}

func (s *chatService) Chat(ctx context.Context, req *dto.ChatRequest) (*dto.ChatResponse, error) {
	session := s.loadSession(req.UserId)

	outcome := s.resolver.Resolve(ctx, req.Message, session.ConversionScore, historyOf(session))

	// A normal turn invalidates any pending regeneration promotion.
	session.LastQuestion = ""
	session.LastAnswer = ""

	return s.finishTurn(ctx, session, req.Message, outcome), nil
}

func (s *chatService) Regenerate(ctx context.Context, req *dto.RegenerateRequest) (*dto.ChatResponse, error) {
	session := s.loadSession(req.UserId)

	outcome := s.resolver.Regenerate(ctx, req.Message, session.ConversionScore, historyOf(session))

	// Remember the regenerated pair so a later "like" can promote it into
	// the cache.
	if outcome.PivotQuery != "" && !outcome.IsUnclear && outcome.SourceTag != constant.SourceGenerationError {
		session.LastQuestion = outcome.PivotQuery
		session.LastAnswer = outcome.RawPivotAnswer
	} else {
		session.LastQuestion = ""
		session.LastAnswer = ""
	}

	return s.finishTurn(ctx, session, req.Message, outcome), nil
}

func (s *chatService) Feedback(ctx context.Context, req *dto.FeedbackRequest) (*dto.FeedbackResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	affected, err := uow.ChatLogRepository().UpdateRating(ctx, req.LogId, req.Rating)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fiber.NewError(fiber.StatusNotFound, "chat log not found")
	}

	res := &dto.FeedbackResponse{Recorded: true}

	// A like after a regeneration overwrites the cached answer for that
	// question; a like on a normal turn has nothing to promote.
	if req.Rating > 0 {
		if session, ok := s.sessions.Get(req.UserId); ok && session.LastQuestion != "" {
			res.CachePromoted = s.promoter.Update(ctx, session.LastQuestion, session.LastAnswer, constant.SourceRAGRegen)
			session.LastQuestion = ""
			session.LastAnswer = ""
			s.sessions.Save(session)
		}
	}

	return res, nil
}

func (s *chatService) SuggestedFAQs() []string {
	return constant.SuggestedFAQs
}

func (s *chatService) loadSession(userId string) *store.Session {
	if userId != "" {
		if session, ok := s.sessions.Get(userId); ok {
			return session
		}
	}
	if userId == "" {
		userId = uuid.NewString()
	}
	return &store.Session{
		ID:              userId,
		ConversionScore: store.InitialConversionScore,
	}
}

// finishTurn updates the session, publishes the analytics event and maps the
// outcome to the wire response.
func (s *chatService) finishTurn(ctx context.Context, session *store.Session, rawQuery string, outcome resolver.Outcome) *dto.ChatResponse {
	session.ConversionScore = outcome.ConversionScore
	if outcome.PivotQuery != "" {
		session.RecentQueries = append(session.RecentQueries, outcome.PivotQuery)
		if len(session.RecentQueries) > s.pipelineCfg.HistoryTurns {
			session.RecentQueries = session.RecentQueries[len(session.RecentQueries)-s.pipelineCfg.HistoryTurns:]
		}
	}
	s.sessions.Save(session)

	logId := uuid.New()
	s.publishTurn(ctx, logId, session.ID, rawQuery, outcome)

	res := &dto.ChatResponse{
		UserId:            session.ID,
		LogId:             logId,
		Answer:            outcome.AnswerText,
		Source:            outcome.SourceTag,
		Language:          outcome.DetectedLang,
		Distance:          outcome.Distance,
		IsUnclear:         outcome.IsUnclear,
		ConversionScore:   outcome.ConversionScore,
		ShouldCaptureLead: outcome.ConversionScore >= s.pipelineCfg.HighPotentialScore && !session.LeadSaved,
	}
	if outcome.IsUnclear {
		res.Suggestions = constant.SuggestedFAQs
	}
	for _, p := range outcome.Passages {
		res.Passages = append(res.Passages, dto.PassageDTO{
			Title:        p.Title,
			SourcePath:   p.SourcePath,
			CanonicalURL: p.CanonicalURL,
			Distance:     p.Distance,
		})
	}
	return res
}

func (s *chatService) publishTurn(ctx context.Context, logId uuid.UUID, userId, rawQuery string, outcome resolver.Outcome) {
	msg := dto.TurnLoggedMessage{
		Id:              logId,
		UserId:          userId,
		Query:           rawQuery,
		TranslatedQuery: outcome.PivotQuery,
		Answer:          outcome.AnswerText,
		Source:          outcome.SourceTag,
		Language:        outcome.DetectedLang,
		ConversionScore: outcome.ConversionScore,
		CreatedAt:       time.Now(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		s.log.Error("ChatService", "Failed to marshal turn event", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	if err := s.publisher.Publish(ctx, payload); err != nil {
		s.log.Error("ChatService", "Failed to publish turn event", map[string]interface{}{
			"log_id": logId.String(),
			"error":  err.Error(),
		})
	}
}

func historyOf(session *store.Session) string {
	return strings.Join(session.RecentQueries, "\n")
}
