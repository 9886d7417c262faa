//go:build unit || e2e

package builder

import (
	"time"

	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type ExperienceBuilder struct {
	ID           int64
	Title        string
	Description  string
	Location     string
	Price        decimal.Decimal
	ImageURL     *string
	Duration     int32
	Rating       *decimal.Decimal
	ReviewsCount int32
	Category     *string
	CreatedAt    time.Time
}

func NewExperienceBuilder() *ExperienceBuilder {
	category := "Adventure"
	rating := decimal.RequireFromString("4.80")
	image := "https://images.example.com/kayak.jpg"
	return &ExperienceBuilder{
		ID:           1,
		Title:        "Kayak Mangrove Tour",
		Description:  "Paddle through calm mangrove channels with a local guide.",
		Location:     "Krabi, Thailand",
		Price:        decimal.RequireFromString("45.00"),
		ImageURL:     &image,
		Duration:     180,
		Rating:       &rating,
		ReviewsCount: 214,
		Category:     &category,
		CreatedAt:    time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC),
	}
}

func (e *ExperienceBuilder) With(mutate func(*ExperienceBuilder)) *ExperienceBuilder {
	mutate(e)
	return e
}

func (e *ExperienceBuilder) BuildInfra() sqlc.Experiences {
	return sqlc.Experiences{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		Price:        pgconv.NumericFromDecimal(e.Price),
		ImageUrl:     pgconv.StringPtrToPgtype(e.ImageURL),
		Duration:     e.Duration,
		Rating:       pgconv.NumericPtrFromDecimal(e.Rating),
		ReviewsCount: e.ReviewsCount,
		Category:     pgconv.StringPtrToPgtype(e.Category),
		CreatedAt:    pgtype.Timestamptz{Time: e.CreatedAt, Valid: true},
		UpdatedAt:    pgtype.Timestamptz{Time: e.CreatedAt, Valid: true},
	}
}

func (e *ExperienceBuilder) BuildView() *queries.ExperienceView {
	return &queries.ExperienceView{
		ID:           e.ID,
		Title:        e.Title,
		Description:  e.Description,
		Location:     e.Location,
		Price:        e.Price,
		ImageURL:     e.ImageURL,
		Duration:     e.Duration,
		Rating:       e.Rating,
		ReviewsCount: e.ReviewsCount,
		Category:     e.Category,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.CreatedAt,
	}
}

func (e *ExperienceBuilder) BuildSnapshot() *shared.ExperienceSnapshot {
	return &shared.ExperienceSnapshot{ID: e.ID, Price: e.Price}
}
