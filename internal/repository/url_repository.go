package repository

import (
	"context"
	"database/sql"
	"fmt"

	"shortener-be/internal/entities"
)

//go:generate mockgen -source=url_repository.go -destination=mocks/mock_url_repository.go -package=mocks

// URLRepository defines the storage operations the allocation service needs.
// Each call is independent; no transaction spans more than one of them.
type URLRepository interface {
	InsertMapping(ctx context.Context, shortCode, longURL string) (int64, error)
	LookupByCode(ctx context.Context, shortCode string) (longURL string, found bool, err error)
	ListAll(ctx context.Context) ([]*entities.URLMapping, error)
}

type urlRepository struct {
	db *sql.DB
}

// NewURLRepository creates a new URL repository
func NewURLRepository(db *sql.DB) URLRepository {
	return &urlRepository{db: db}
}

// InsertMapping stores a new mapping and returns its id. A taken code yields
// ErrUniqueViolation; every other failure is a *StorageError.
func (r *urlRepository) InsertMapping(ctx context.Context, shortCode, longURL string) (int64, error) {
	query := `
		INSERT INTO urls (short_code, long_url)
		VALUES ($1, $2)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query, shortCode, longURL).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, fmt.Errorf("insert %q: %w", shortCode, ErrUniqueViolation)
		}
		return 0, &StorageError{Op: "insert mapping", Err: err}
	}

	return id, nil
}

// LookupByCode returns the long URL for a code. A missing code is not an error.
func (r *urlRepository) LookupByCode(ctx context.Context, shortCode string) (string, bool, error) {
	var longURL string
	err := r.db.QueryRowContext(ctx, "SELECT long_url FROM urls WHERE short_code = $1", shortCode).Scan(&longURL)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, &StorageError{Op: "lookup mapping", Err: err}
	}

	return longURL, true, nil
}

// ListAll returns every mapping, most recently created first
func (r *urlRepository) ListAll(ctx context.Context) ([]*entities.URLMapping, error) {
	query := `
		SELECT id, short_code, long_url, created_at
		FROM urls
		ORDER BY id DESC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &StorageError{Op: "list mappings", Err: err}
	}
	defer rows.Close()

	urls := make([]*entities.URLMapping, 0)
	for rows.Next() {
		var m entities.URLMapping
		if err := rows.Scan(&m.ID, &m.ShortCode, &m.LongURL, &m.CreatedAt); err != nil {
			return nil, &StorageError{Op: "scan mapping", Err: err}
		}
		urls = append(urls, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, &StorageError{Op: "iterate mappings", Err: err}
	}

	return urls, nil
}
