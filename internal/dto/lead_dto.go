package dto

import "time"

type SaveLeadRequest struct {
	UserId       string `json:"user_id" validate:"required"`
	Name         string `json:"name" validate:"required,min=2,max=100"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	Organization string `json:"organization" validate:"omitempty,max=200"`
}

type SaveLeadResponse struct {
	UserId          string `json:"user_id"`
	ConversionScore int    `json:"conversion_score"`
}

type LeadDTO struct {
	UserId          string    `json:"user_id"`
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Phone           string    `json:"phone"`
	Organization    string    `json:"organization"`
	ConversionScore int       `json:"conversion_score"`
	CreatedAt       time.Time `json:"created_at"`
}
