package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shortener-be/internal/cache"
	"shortener-be/internal/entities"
	"shortener-be/internal/metrics"
	"shortener-be/internal/repository"
	"shortener-be/internal/urlnorm"

	"github.com/sethvargo/go-retry"
	"go.uber.org/zap"
)

var (
	// ErrURLRequired is returned when the submitted URL is empty
	ErrURLRequired = errors.New("URL is required")
	// ErrExhaustedRetries means every candidate code collided
	ErrExhaustedRetries = errors.New("could not generate unique short code")
)

// collisionBackoff is the pause between colliding candidates
const collisionBackoff = time.Millisecond

// CodeGenerator produces candidate short codes
type CodeGenerator interface {
	Generate() string
}

// URLService defines the interface for URL business logic
type URLService interface {
	Shorten(ctx context.Context, rawURL string) (string, error)
	Allocate(ctx context.Context, longURL string) (string, error)
	Resolve(ctx context.Context, shortCode string) (string, bool, error)
	ListURLs(ctx context.Context) ([]*entities.URLMapping, error)
}

type urlService struct {
	repo        repository.URLRepository
	generator   CodeGenerator
	maxAttempts int
	cache       cache.Cache
	metrics     *metrics.Metrics
	log         *zap.Logger
}

// NewURLService creates a new URL service. cacheClient and m may be nil.
func NewURLService(
	repo repository.URLRepository,
	generator CodeGenerator,
	maxAttempts int,
	cacheClient cache.Cache,
	m *metrics.Metrics,
	log *zap.Logger,
) URLService {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &urlService{
		repo:        repo,
		generator:   generator,
		maxAttempts: maxAttempts,
		cache:       cacheClient,
		metrics:     m,
		log:         log,
	}
}

// Shorten validates, normalizes and allocates a code for rawURL
func (s *urlService) Shorten(ctx context.Context, rawURL string) (string, error) {
	if rawURL == "" {
		return "", ErrURLRequired
	}
	return s.Allocate(ctx, urlnorm.Normalize(rawURL))
}

// Allocate inserts longURL under a fresh random code. Candidates that collide
// with an existing code are discarded; any other store error aborts at once.
func (s *urlService) Allocate(ctx context.Context, longURL string) (string, error) {
	backoff := retry.WithMaxRetries(uint64(s.maxAttempts-1), retry.NewConstant(collisionBackoff))

	var shortCode string
	attempts := 0
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		candidate := s.generator.Generate()

		if _, err := s.repo.InsertMapping(ctx, candidate, longURL); err != nil {
			if errors.Is(err, repository.ErrUniqueViolation) {
				s.metrics.IncCollision()
				s.log.Debug("short code collision",
					zap.String("short_code", candidate),
					zap.Int("attempt", attempts),
				)
				return retry.RetryableError(err)
			}
			return err
		}

		shortCode = candidate
		return nil
	})

	switch {
	case err == nil:
		s.metrics.IncAllocation(metrics.ResultSuccess)
	case errors.Is(err, repository.ErrUniqueViolation):
		s.metrics.IncAllocation(metrics.ResultExhausted)
		s.log.Error("short code space exhausted",
			zap.Int("attempts", attempts),
			zap.String("long_url", longURL),
		)
		return "", fmt.Errorf("%w after %d attempts", ErrExhaustedRetries, attempts)
	default:
		s.metrics.IncAllocation(metrics.ResultError)
		return "", fmt.Errorf("allocate short code: %w", err)
	}

	s.cacheMapping(ctx, shortCode, longURL)
	return shortCode, nil
}

// Resolve returns the long URL for shortCode, consulting the cache first
func (s *urlService) Resolve(ctx context.Context, shortCode string) (string, bool, error) {
	if s.cache != nil {
		longURL, err := s.cache.Get(ctx, shortCode)
		if err == nil {
			s.metrics.IncCacheLookup(true)
			return longURL, true, nil
		}
		s.metrics.IncCacheLookup(false)
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn("cache lookup failed", zap.String("short_code", shortCode), zap.Error(err))
		}
	}

	longURL, found, err := s.repo.LookupByCode(ctx, shortCode)
	if err != nil {
		return "", false, fmt.Errorf("resolve %q: %w", shortCode, err)
	}
	if !found {
		return "", false, nil
	}

	s.cacheMapping(ctx, shortCode, longURL)
	return longURL, true, nil
}

// ListURLs returns every mapping, newest first
func (s *urlService) ListURLs(ctx context.Context) ([]*entities.URLMapping, error) {
	urls, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list urls: %w", err)
	}
	return urls, nil
}

// cacheMapping is best effort; the store stays authoritative
func (s *urlService) cacheMapping(ctx context.Context, shortCode, longURL string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, shortCode, longURL); err != nil {
		s.log.Warn("cache write failed", zap.String("short_code", shortCode), zap.Error(err))
	}
}
