package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrURLNotString is returned for a non-empty url value that is not a string
var ErrURLNotString = errors.New("url must be a string")

// ShortenRequest represents the request body for POST /api/shorten.
// URL is kept raw so that empty values of any JSON type can be told
// apart from non-string values.
type ShortenRequest struct {
	URL any `json:"url"`
}

// LongURL returns the submitted URL. Empty values (missing, null, "",
// false, 0, [] and {}) yield "" so the caller reports the URL as required.
func (r *ShortenRequest) LongURL() (string, error) {
	switch v := r.URL.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	case bool:
		if !v {
			return "", nil
		}
	case float64:
		if v == 0 {
			return "", nil
		}
	case json.Number:
		if f, err := v.Float64(); err == nil && f == 0 {
			return "", nil
		}
	case []any:
		if len(v) == 0 {
			return "", nil
		}
	case map[string]any:
		if len(v) == 0 {
			return "", nil
		}
	}
	return "", fmt.Errorf("%w, got %T", ErrURLNotString, r.URL)
}
