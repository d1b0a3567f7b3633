package model

import (
	"time"
)

type CacheEntry struct {
	Id        uint      `gorm:"primaryKey;autoIncrement"`
	Question  string    `gorm:"type:text;uniqueIndex;not null"`
	Answer    string    `gorm:"type:text"`
	Source    string    `gorm:"type:text"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (CacheEntry) TableName() string {
	return "cache_entries"
}
