package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatLogDTO struct {
	Id              uuid.UUID `json:"id"`
	UserId          string    `json:"user_id"`
	Query           string    `json:"query"`
	TranslatedQuery string    `json:"translated_query"`
	Answer          string    `json:"answer"`
	Source          string    `json:"source"`
	Language        string    `json:"language"`
	Rating          *int      `json:"rating,omitempty"`
	ConversionScore int       `json:"conversion_score"`
	CreatedAt       time.Time `json:"created_at"`
}

type GetLogsResponse struct {
	Logs     []ChatLogDTO `json:"logs"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type SourceCountDTO struct {
	Source string `json:"source"`
	Count  int64  `json:"count"`
}

type LanguageCountDTO struct {
	Language string `json:"language"`
	Count    int64  `json:"count"`
}

type GetSummaryResponse struct {
	TotalInteractions      int64              `json:"total_interactions"`
	TotalLeads             int64              `json:"total_leads"`
	AverageConversionScore float64            `json:"average_conversion_score"`
	BySource               []SourceCountDTO   `json:"by_source"`
	ByLanguage             []LanguageCountDTO `json:"by_language"`
}

type GetLeadsResponse struct {
	Leads []LeadDTO `json:"leads"`
	Total int64     `json:"total"`
}
