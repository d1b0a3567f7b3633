package entity

import (
	"time"
)

// CacheEntry is one cached question/answer pair. Question is the unique key,
// stored in the pivot language with its original casing.
type CacheEntry struct {
	Question  string
	Answer    string
	Source    string
	UpdatedAt time.Time
}
