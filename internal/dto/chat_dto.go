package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatRequest struct {
	// UserId is empty on first contact; the service mints one.
	UserId  string `json:"user_id,omitempty"`
	Message string `json:"message" validate:"required"`
}

type PassageDTO struct {
	Title        string  `json:"title"`
	SourcePath   string  `json:"source_path"`
	CanonicalURL string  `json:"canonical_url"`
	Distance     float64 `json:"distance"`
}

type ChatResponse struct {
	UserId            string       `json:"user_id"`
	LogId             uuid.UUID    `json:"log_id"`
	Answer            string       `json:"answer"`
	Source            string       `json:"source"`
	Language          string       `json:"language"`
	Distance          *float64     `json:"distance,omitempty"`
	IsUnclear         bool         `json:"is_unclear"`
	Suggestions       []string     `json:"suggestions,omitempty"`
	Passages          []PassageDTO `json:"passages,omitempty"`
	ConversionScore   int          `json:"conversion_score"`
	ShouldCaptureLead bool         `json:"should_capture_lead"`
}

type RegenerateRequest struct {
	UserId  string `json:"user_id" validate:"required"`
	Message string `json:"message" validate:"required"`
}

type FeedbackRequest struct {
	UserId string    `json:"user_id" validate:"required"`
	LogId  uuid.UUID `json:"log_id" validate:"required"`
	// 1 = like, -1 = dislike.
	Rating int `json:"rating" validate:"required,oneof=-1 1"`
}

type FeedbackResponse struct {
	Recorded      bool `json:"recorded"`
	CachePromoted bool `json:"cache_promoted"`
}

// TurnLoggedMessage is the watermill payload persisting one turn.
type TurnLoggedMessage struct {
	Id              uuid.UUID `json:"id"`
	UserId          string    `json:"user_id"`
	Query           string    `json:"query"`
	TranslatedQuery string    `json:"translated_query"`
	Answer          string    `json:"answer"`
	Source          string    `json:"source"`
	Language        string    `json:"language"`
	ConversionScore int       `json:"conversion_score"`
	CreatedAt       time.Time `json:"created_at"`
}
