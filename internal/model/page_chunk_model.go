package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type PageChunk struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Content      string          `gorm:"type:text"`
	Path         string          `gorm:"type:text;index"`
	CanonicalURL string          `gorm:"type:text"`
	Title        string          `gorm:"type:text"`
	Headings     datatypes.JSON  `gorm:"type:jsonb"` // JSON-encoded list of heading strings
	Embedding    pgvector.Vector `gorm:"type:vector(768)"` // text-embedding-004 dimensionality
	ChunkIndex   int             `gorm:"default:0"`
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`
}

func (PageChunk) TableName() string {
	return "page_chunks"
}
