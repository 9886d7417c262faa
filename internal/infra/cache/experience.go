package cache

import (
	"context"
	"log/slog"
	"strconv"

	"bookit/internal/usecase/queries"
)

const categoriesKey = "experiences:categories"

func experienceKey(id int64) string {
	return "experiences:" + strconv.FormatInt(id, 10)
}

// ExperienceStore is a read-through cache in front of the experience read store.
// Only catalogue data is cached; slot availability always comes from PostgreSQL.
type ExperienceStore struct {
	next  queries.ExperienceReadStore
	cache Cache
}

func NewExperienceStore(next queries.ExperienceReadStore, cache Cache) *ExperienceStore {
	return &ExperienceStore{next: next, cache: cache}
}

func (s *ExperienceStore) FindByID(ctx context.Context, id int64) (*queries.ExperienceView, error) {
	key := experienceKey(id)

	var cached queries.ExperienceView
	if hit, err := s.cache.Get(ctx, key, &cached); err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", key, "error", err.Error())
	} else if hit {
		return &cached, nil
	}

	v, err := s.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, v); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", key, "error", err.Error())
	}
	return v, nil
}

func (s *ExperienceStore) Categories(ctx context.Context) ([]string, error) {
	var cached []string
	if hit, err := s.cache.Get(ctx, categoriesKey, &cached); err != nil {
		slog.WarnContext(ctx, "cache read failed", "key", categoriesKey, "error", err.Error())
	} else if hit {
		return cached, nil
	}

	cats, err := s.next.Categories(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, categoriesKey, cats); err != nil {
		slog.WarnContext(ctx, "cache write failed", "key", categoriesKey, "error", err.Error())
	}
	return cats, nil
}

func (s *ExperienceStore) List(ctx context.Context, filter queries.ExperienceFilter) ([]*queries.ExperienceView, error) {
	return s.next.List(ctx, filter)
}

func (s *ExperienceStore) Search(ctx context.Context, term string, limit int32) ([]*queries.ExperienceView, error) {
	return s.next.Search(ctx, term, limit)
}
