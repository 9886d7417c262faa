package readstore

import (
	"context"
	"time"

	"bookit/internal/infra"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type SlotReadQueries interface {
	GetSlotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Slots, error)
	ListAvailableSlotsByExperience(ctx context.Context, db sqlc.DBTX, experienceID int64) ([]sqlc.Slots, error)
	ListUpcomingSlotsByExperience(ctx context.Context, db sqlc.DBTX, arg sqlc.ListUpcomingSlotsByExperienceParams) ([]sqlc.Slots, error)
	ListAvailableDates(ctx context.Context, db sqlc.DBTX, experienceID int64) ([]pgtype.Date, error)
	GetSlotAvailableSpots(ctx context.Context, db sqlc.DBTX, id int64) (int32, error)
}

type SlotReadStore struct {
	queries SlotReadQueries
	db      sqlc.DBTX
}

func NewSlotReadStore(queries SlotReadQueries, db sqlc.DBTX) *SlotReadStore {
	return &SlotReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *SlotReadStore) FindByID(ctx context.Context, id int64) (*queries.SlotView, error) {
	row, err := r.queries.GetSlotByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get slot by id", err)
	}
	return slotFromRow(row), nil
}

// FindAvailableByExperience returns future slots that still have at least one spot.
func (r *SlotReadStore) FindAvailableByExperience(ctx context.Context, experienceID int64) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListAvailableSlotsByExperience(ctx, r.db, experienceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available slots", err)
	}
	return slotsFromRows(rows), nil
}

func (r *SlotReadStore) FindUpcomingByExperience(ctx context.Context, experienceID int64, onDate *time.Time) ([]*queries.SlotView, error) {
	rows, err := r.queries.ListUpcomingSlotsByExperience(ctx, r.db, sqlc.ListUpcomingSlotsByExperienceParams{
		ExperienceID: experienceID,
		OnDate:       pgconv.DatePtrFromTime(onDate),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list upcoming slots", err)
	}
	return slotsFromRows(rows), nil
}

func (r *SlotReadStore) AvailableDates(ctx context.Context, experienceID int64) ([]string, error) {
	rows, err := r.queries.ListAvailableDates(ctx, r.db, experienceID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list available dates", err)
	}
	dates := make([]string, 0, len(rows))
	for _, d := range rows {
		dates = append(dates, pgconv.DateString(d))
	}
	return dates, nil
}

func (r *SlotReadStore) AvailableSpots(ctx context.Context, id int64) (int32, error) {
	spots, err := r.queries.GetSlotAvailableSpots(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to get slot availability", err)
	}
	return spots, nil
}
