// Package feed serves read-side views of stored Updates: the paginated news
// feed, keyword search and article detail. Feed pages are cached.
package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/newsdesk-backend/internal/domain"
	"github.com/heartmarshall/newsdesk-backend/internal/metrics"
	"github.com/heartmarshall/newsdesk-backend/internal/validate"
)

type updateReader interface {
	Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error)
	FindByKeyword(ctx context.Context, keyword string) ([]domain.Article, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
}

type pageCache interface {
	Get(ctx context.Context, name string) ([]byte, bool, error)
	Set(ctx context.Context, name string, data []byte) error
}

// Service implements feed read operations.
type Service struct {
	log     *slog.Logger
	updates updateReader
	cache   pageCache
	metrics *metrics.Metrics
}

// NewService creates a new feed service.
func NewService(logger *slog.Logger, updates updateReader, cache pageCache, m *metrics.Metrics) *Service {
	return &Service{
		log:     logger.With("service", "feed"),
		updates: updates,
		cache:   cache,
		metrics: m,
	}
}

// Page returns one page of the feed. Cache failures fall through to storage.
func (s *Service) Page(ctx context.Context, filter domain.UpdateFilter) ([]domain.Article, error) {
	filter = filter.Normalized()
	key := cacheKey(filter)

	if cached, ok := s.fromCache(ctx, key); ok {
		return cached, nil
	}

	articles, err := s.updates.Page(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("feed.Page: %w", err)
	}

	if data, err := json.Marshal(articles); err == nil {
		if err := s.cache.Set(ctx, key, data); err != nil {
			s.log.WarnContext(ctx, "feed cache write failed", slog.String("error", err.Error()))
		}
	}
	return articles, nil
}

func (s *Service) fromCache(ctx context.Context, key string) ([]domain.Article, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.log.WarnContext(ctx, "feed cache read failed", slog.String("error", err.Error()))
		return nil, false
	}
	s.metrics.CacheLookup(ok)
	if !ok {
		return nil, false
	}

	var articles []domain.Article
	if err := json.Unmarshal(data, &articles); err != nil {
		s.log.WarnContext(ctx, "feed cache entry unreadable", slog.String("key", key))
		return nil, false
	}
	return articles, true
}

// Search returns the Updates of every topic containing the keyword, newest first.
func (s *Service) Search(ctx context.Context, rawKeyword string) ([]domain.Article, error) {
	keyword, err := validate.Keyword(rawKeyword)
	if err != nil {
		return nil, err
	}

	articles, err := s.updates.FindByKeyword(ctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("feed.Search: %w", err)
	}
	return articles, nil
}

// Article returns one Update with its topic.
func (s *Service) Article(ctx context.Context, rawID string) (*domain.Article, error) {
	id, err := validate.EntityID(rawID)
	if err != nil {
		return nil, err
	}

	a, err := s.updates.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("feed.Article: %w", err)
	}
	return a, nil
}

func cacheKey(f domain.UpdateFilter) string {
	group := "*"
	if f.Group != nil {
		group = *f.Group
	}
	return fmt.Sprintf("page:%s:%s:%d:%d", group, f.SortBy, f.Skip, f.Limit)
}
