package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatLog is one logged chatbot interaction for analytics.
type ChatLog struct {
	Id              uuid.UUID
	UserId          string
	Query           string
	TranslatedQuery string
	Answer          string
	Source          string
	Language        string
	Rating          *int
	ConversionScore int
	CreatedAt       time.Time
}
