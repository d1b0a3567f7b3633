package model

import (
	"time"
)

type Lead struct {
	UserId          string    `gorm:"type:text;primaryKey"`
	Name            string    `gorm:"type:text"`
	Email           string    `gorm:"type:text"`
	Phone           string    `gorm:"type:text"`
	Organization    string    `gorm:"type:text"`
	ConversionScore int       `gorm:"default:1"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

func (Lead) TableName() string {
	return "leads"
}
