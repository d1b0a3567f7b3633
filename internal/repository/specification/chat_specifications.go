package specification

import (
	"gorm.io/gorm"
)

// ByQuestion filters cache entries by their exact question key.
type ByQuestion struct {
	Question string
}

func (s ByQuestion) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("question = ?", s.Question)
}

// ByUserId filters by the visitor session identifier.
type ByUserId struct {
	UserId string
}

func (s ByUserId) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserId)
}

// ByLanguage filters chat logs by detected language code.
type ByLanguage struct {
	Language string
}

func (s ByLanguage) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("language = ?", s.Language)
}

// MinConversionScore filters rows at or above a conversion score.
type MinConversionScore struct {
	Score int
}

func (s MinConversionScore) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("conversion_score >= ?", s.Score)
}
