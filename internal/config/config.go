package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Keys      APIKeys
	Ai        AIConfig
	Language  LanguageConfig
	Pipeline  PipelineConfig
	Analytics AnalyticsConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini    string
	GoogleTranslate string
	Analytics       string
}

type AIConfig struct {
	LLMProvider       string // "gemini" or "ollama"
	LLMModel          string
	EmbeddingProvider string // "gemini" or "ollama"
	OllamaBaseURL     string
	OllamaModel       string
	CleanTimeout      time.Duration
	GenerateTimeout   time.Duration
}

type LanguageConfig struct {
	Default          string
	Supported        []string
	DetectMinLength  int
	TranslateTimeout time.Duration
}

// PipelineConfig carries the thresholds and keyword lists that gate the
// query-resolution pipeline. Tests construct their own values.
type PipelineConfig struct {
	TopKChunks            int
	CacheMatchThreshold   float64
	UnclearQueryThreshold float64
	MaxConversionScore    int
	HighPotentialScore    int
	HighIntentKeywords    []string
	TopicalKeywords       []string
	HistoryTurns          int
}

type AnalyticsConfig struct {
	PageSize int
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("SITE_BASE_URL", "https://leanextconsulting.com/"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/chatbot.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini:    getEnv("GOOGLE_GEMINI_API_KEY", ""),
			GoogleTranslate: getEnv("GOOGLE_TRANSLATE_API_KEY", ""),
			Analytics:       getEnv("ANALYTICS_API_KEY", ""),
		},
		Ai: AIConfig{
			LLMProvider:       getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:          getEnv("LLM_MODEL", "gemini-2.5-flash"),
			EmbeddingProvider: getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:     getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:       getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			CleanTimeout:      getEnvAsDuration("LLM_CLEAN_TIMEOUT", 10*time.Second),
			GenerateTimeout:   getEnvAsDuration("LLM_GENERATE_TIMEOUT", 30*time.Second),
		},
		Language: LanguageConfig{
			Default:          "en",
			Supported:        getEnvAsSlice("SUPPORTED_LANGUAGES", []string{"en", "hi", "mr", "kn", "bn", "gu"}),
			DetectMinLength:  5,
			TranslateTimeout: getEnvAsDuration("TRANSLATE_TIMEOUT", 10*time.Second),
		},
		Pipeline: PipelineConfig{
			TopKChunks:            getEnvAsInt("TOP_K_CHUNKS", 5),
			CacheMatchThreshold:   getEnvAsFloat("CACHE_MATCH_THRESHOLD", 0.85),
			UnclearQueryThreshold: getEnvAsFloat("UNCLEAR_QUERY_THRESHOLD", 0.65),
			MaxConversionScore:    5,
			HighPotentialScore:    4,
			HighIntentKeywords: []string{
				"demo", "pricing", "cost", "consulting", "training", "schedule",
				"quote", "trial", "implementation", "contact sales", "enquire",
			},
			TopicalKeywords: []string{
				"leanmaster", "sixsigma", "software", "capabilities", "about",
			},
			HistoryTurns: 3,
		},
		Analytics: AnalyticsConfig{
			PageSize: getEnvAsInt("ANALYTICS_PAGE_SIZE", 50),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsFloat(key string, fallback float64) float64 {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseFloat(strValue, 64); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsSlice(key string, fallback []string) []string {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	parts := strings.Split(strValue, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}
