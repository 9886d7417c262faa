package readstore

import (
	"context"

	"bookit/internal/infra"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type ExperienceReadQueries interface {
	GetExperienceByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Experiences, error)
	ListExperiences(ctx context.Context, db sqlc.DBTX, arg sqlc.ListExperiencesParams) ([]sqlc.Experiences, error)
	SearchExperiences(ctx context.Context, db sqlc.DBTX, arg sqlc.SearchExperiencesParams) ([]sqlc.Experiences, error)
	ListCategories(ctx context.Context, db sqlc.DBTX) ([]string, error)
}

type ExperienceReadStore struct {
	queries ExperienceReadQueries
	db      sqlc.DBTX
}

func NewExperienceReadStore(queries ExperienceReadQueries, db sqlc.DBTX) *ExperienceReadStore {
	return &ExperienceReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *ExperienceReadStore) FindByID(ctx context.Context, id int64) (*queries.ExperienceView, error) {
	row, err := r.queries.GetExperienceByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("experience not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get experience by id", err)
	}

	v, err := experienceFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert experience row", err, infra.KindDBFailure)
	}
	return v, nil
}

// List expects a normalized filter.
func (r *ExperienceReadStore) List(ctx context.Context, filter queries.ExperienceFilter) ([]*queries.ExperienceView, error) {
	params := sqlc.ListExperiencesParams{
		Category: pgconv.StringPtrToPgtype(filter.Category),
		MinPrice: pgconv.NumericPtrFromDecimal(filter.MinPrice),
		MaxPrice: pgconv.NumericPtrFromDecimal(filter.MaxPrice),
		SortBy:   filter.SortBy,
		SortDesc: filter.SortOrder != queries.SortAsc,
		Lim:      int32(filter.Limit),  // #nosec G115 -- capped by MaxListLimit
		Off:      int32(filter.Offset), // #nosec G115 -- non-negative query parameter
	}

	rows, err := r.queries.ListExperiences(ctx, r.db, params)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list experiences", err)
	}
	out, err := experiencesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert experience rows", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ExperienceReadStore) Search(ctx context.Context, term string, limit int32) ([]*queries.ExperienceView, error) {
	rows, err := r.queries.SearchExperiences(ctx, r.db, sqlc.SearchExperiencesParams{Term: term, Lim: limit})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to search experiences", err)
	}
	out, err := experiencesFromRows(rows)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert experience rows", err, infra.KindDBFailure)
	}
	return out, nil
}

func (r *ExperienceReadStore) Categories(ctx context.Context) ([]string, error) {
	cats, err := r.queries.ListCategories(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list categories", err)
	}
	if cats == nil {
		cats = []string{}
	}
	return cats, nil
}
