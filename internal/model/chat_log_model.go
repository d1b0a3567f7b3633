package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatLog struct {
	Id              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId          string    `gorm:"type:text;index"`
	Query           string    `gorm:"type:text"`
	TranslatedQuery string    `gorm:"type:text"`
	Answer          string    `gorm:"type:text"`
	Source          string    `gorm:"type:text"`
	Language        string    `gorm:"type:varchar(8);index"`
	Rating          *int
	ConversionScore int       `gorm:"default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime;index"`
}

func (ChatLog) TableName() string {
	return "chat_logs"
}
