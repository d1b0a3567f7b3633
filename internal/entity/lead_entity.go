package entity

import (
	"time"
)

// Lead is a captured visitor contact, keyed by the visitor session id.
type Lead struct {
	UserId          string
	Name            string
	Email           string
	Phone           string
	Organization    string
	ConversionScore int
	CreatedAt       time.Time
}
