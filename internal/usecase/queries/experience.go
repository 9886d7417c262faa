package queries

import (
	"context"
	"strings"
	"time"

	"bookit/internal/infra"
	"bookit/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	ErrExperienceNotFound = errs.ErrExperienceNotFound
	ErrSearchTermRequired = errs.New("search term is required")
	ErrSearchTermTooShort = errs.New("search term too short")
	ErrInvalidPriceRange  = errs.New("min_price cannot exceed max_price")
)

const (
	SortByPrice        = "price"
	SortByRating       = "rating"
	SortByReviewsCount = "reviews_count"
	SortByCreatedAt    = "created_at"

	SortAsc  = "asc"
	SortDesc = "desc"
)

type ExperienceFilter struct {
	Category  *string
	MinPrice  *decimal.Decimal
	MaxPrice  *decimal.Decimal
	SortBy    string
	SortOrder string
	Limit     int
	Offset    int
}

// Normalize applies defaults and falls back to rating/desc for unknown sort input.
func (f ExperienceFilter) Normalize() ExperienceFilter {
	switch f.SortBy {
	case SortByPrice, SortByRating, SortByReviewsCount, SortByCreatedAt:
	default:
		f.SortBy = SortByRating
	}
	switch strings.ToLower(f.SortOrder) {
	case SortAsc:
		f.SortOrder = SortAsc
	default:
		f.SortOrder = SortDesc
	}
	if f.Category != nil && strings.TrimSpace(*f.Category) == "" {
		f.Category = nil
	}
	f.Limit = ValidateLimit(f.Limit)
	f.Offset = ValidateOffset(f.Offset)
	return f
}

type ExperienceReadStore interface {
	FindByID(ctx context.Context, id int64) (*ExperienceView, error)
	List(ctx context.Context, filter ExperienceFilter) ([]*ExperienceView, error)
	Search(ctx context.Context, term string, limit int32) ([]*ExperienceView, error)
	Categories(ctx context.Context) ([]string, error)
}

type ExperienceQueries interface {
	List(ctx context.Context, filter ExperienceFilter) ([]*ExperienceView, *Pagination, error)
	GetByID(ctx context.Context, id int64) (*ExperienceDetailView, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, term string) ([]*ExperienceView, error)
	Slots(ctx context.Context, experienceID int64, onDate *time.Time) ([]*SlotView, error)
	AvailableDates(ctx context.Context, experienceID int64) ([]string, error)
}

type experienceQueriesImpl struct {
	experiences ExperienceReadStore
	slots       SlotReadStore
}

func NewExperienceQueries(experiences ExperienceReadStore, slots SlotReadStore) ExperienceQueries {
	return &experienceQueriesImpl{experiences: experiences, slots: slots}
}

func (q *experienceQueriesImpl) List(ctx context.Context, filter ExperienceFilter) ([]*ExperienceView, *Pagination, error) {
	filter = filter.Normalize()
	if filter.MinPrice != nil && filter.MaxPrice != nil && filter.MinPrice.GreaterThan(*filter.MaxPrice) {
		return nil, nil, ErrInvalidPriceRange
	}

	rows, err := q.experiences.List(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return rows, &Pagination{Limit: filter.Limit, Offset: filter.Offset, Count: len(rows)}, nil
}

func (q *experienceQueriesImpl) GetByID(ctx context.Context, id int64) (*ExperienceDetailView, error) {
	exp, err := q.findExperience(ctx, id)
	if err != nil {
		return nil, err
	}

	slots, err := q.slots.FindAvailableByExperience(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ExperienceDetailView{ExperienceView: *exp, AvailableSlots: slots}, nil
}

func (q *experienceQueriesImpl) Categories(ctx context.Context) ([]string, error) {
	return q.experiences.Categories(ctx)
}

func (q *experienceQueriesImpl) Search(ctx context.Context, term string) ([]*ExperienceView, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrSearchTermRequired
	}
	if len([]rune(term)) < MinSearchLength {
		return nil, ErrSearchTermTooShort
	}
	return q.experiences.Search(ctx, term, SearchLimit)
}

func (q *experienceQueriesImpl) Slots(ctx context.Context, experienceID int64, onDate *time.Time) ([]*SlotView, error) {
	if _, err := q.findExperience(ctx, experienceID); err != nil {
		return nil, err
	}
	return q.slots.FindUpcomingByExperience(ctx, experienceID, onDate)
}

func (q *experienceQueriesImpl) AvailableDates(ctx context.Context, experienceID int64) ([]string, error) {
	if _, err := q.findExperience(ctx, experienceID); err != nil {
		return nil, err
	}
	return q.slots.AvailableDates(ctx, experienceID)
}

func (q *experienceQueriesImpl) findExperience(ctx context.Context, id int64) (*ExperienceView, error) {
	exp, err := q.experiences.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrExperienceNotFound
		}
		return nil, err
	}
	return exp, nil
}
