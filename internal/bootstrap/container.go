package bootstrap

import (
	"log"

	"site-chatbot-be/internal/config"
	"site-chatbot-be/internal/constant"
	"site-chatbot-be/internal/controller"
	"site-chatbot-be/internal/pkg/logger"
	"site-chatbot-be/internal/repository/implementation"
	"site-chatbot-be/internal/repository/memory"
	"site-chatbot-be/internal/repository/unitofwork"
	"site-chatbot-be/internal/service"
	"site-chatbot-be/pkg/embedding"
	"site-chatbot-be/pkg/llm/factory"
	"site-chatbot-be/pkg/rag/answercache"
	"site-chatbot-be/pkg/rag/resolver"
	"site-chatbot-be/pkg/rag/retrieve"
	"site-chatbot-be/pkg/rag/score"
	"site-chatbot-be/pkg/rag/smalltalk"
	"site-chatbot-be/pkg/translate"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ChatController      controller.IChatController
	LeadController      controller.ILeadController
	AnalyticsController controller.IAnalyticsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.Provider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewGeminiProvider(cfg.Keys.GoogleGemini)
		log.Printf("[INFO] Using Embedding Provider: GEMINI")
	}

	llmProvider, err := factory.NewProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Keys.GoogleGemini,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Pipeline Components
	bridge := translate.NewGoogleTranslator(cfg.Keys.GoogleTranslate, cfg.Language, sysLogger)

	cacheRepo := implementation.NewCacheRepository(db)
	answerCache := answercache.NewCache(cacheRepo, cfg.Pipeline.CacheMatchThreshold, sysLogger)

	chunkRepo := implementation.NewPageChunkRepository(db)
	retriever := retrieve.NewRetriever(embeddingProvider, chunkRepo, sysLogger)

	scorer := score.NewScorer(
		cfg.Pipeline.MaxConversionScore,
		cfg.Pipeline.HighIntentKeywords,
		cfg.Pipeline.TopicalKeywords,
	)

	queryResolver := resolver.NewResolver(
		bridge,
		smalltalk.NewDefaultTable(),
		answerCache,
		retriever,
		llmProvider,
		scorer,
		resolver.Config{
			TopK:             cfg.Pipeline.TopKChunks,
			UnclearThreshold: cfg.Pipeline.UnclearQueryThreshold,
			CleanTimeout:     cfg.Ai.CleanTimeout,
			GenerateTimeout:  cfg.Ai.GenerateTimeout,
		},
		sysLogger,
	)

	// 5. Services
	sessionRepo := memory.NewSessionRepository()
	publisherService := service.NewPublisherService(constant.TopicTurnLogged, pubSub)
	consumerService := service.NewConsumerService(pubSub, constant.TopicTurnLogged, uowFactory, sysLogger)

	chatService := service.NewChatService(
		queryResolver,
		sessionRepo,
		answerCache,
		publisherService,
		uowFactory,
		cfg.Pipeline,
		sysLogger,
	)
	leadService := service.NewLeadService(uowFactory, sessionRepo, sysLogger)
	analyticsService := service.NewAnalyticsService(uowFactory, cfg.Analytics)

	// 6. Controllers
	return &Container{
		ChatController:      controller.NewChatController(chatService),
		LeadController:      controller.NewLeadController(leadService),
		AnalyticsController: controller.NewAnalyticsController(analyticsService),
		ConsumerService:     consumerService,
	}
}
