package entities

import "time"

// URLMapping represents a short code -> long URL row in the database
type URLMapping struct {
	ID        int64     `json:"id"` // assigned by the store, never reused
	ShortCode string    `json:"short_code"`
	LongURL   string    `json:"long_url"`
	CreatedAt time.Time `json:"created_at"`
}
