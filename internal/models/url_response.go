package models

import (
	"time"

	"shortener-be/internal/entities"
)

// ShortenResponse represents the response after creating a short code
type ShortenResponse struct {
	ShortCode string `json:"short_code"`
}

// URLResponse is one element of GET /api/urls
type URLResponse struct {
	ShortCode string `json:"short_code"`
	LongURL   string `json:"long_url"`
	CreatedAt string `json:"created_at"` // ISO 8601
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewURLResponse converts a stored mapping into its API shape
func NewURLResponse(m *entities.URLMapping) URLResponse {
	return URLResponse{
		ShortCode: m.ShortCode,
		LongURL:   m.LongURL,
		CreatedAt: m.CreatedAt.Format(time.RFC3339Nano),
	}
}
