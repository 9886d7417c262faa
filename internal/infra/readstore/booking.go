package readstore

import (
	"context"

	"bookit/internal/infra"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type BookingReadQueries interface {
	GetBookingViewByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.GetBookingViewByIDRow, error)
	ListBookingViewsByEmail(ctx context.Context, db sqlc.DBTX, userEmail string) ([]sqlc.ListBookingViewsByEmailRow, error)
}

type BookingReadStore struct {
	queries BookingReadQueries
	db      sqlc.DBTX
}

func NewBookingReadStore(queries BookingReadQueries, db sqlc.DBTX) *BookingReadStore {
	return &BookingReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id int64) (*queries.BookingView, error) {
	row, err := r.queries.GetBookingViewByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("booking not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get booking view by id", err)
	}

	v, err := bookingFromViewRow(fromGetBookingViewRow(row))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert booking row", err, infra.KindDBFailure)
	}
	return v, nil
}

// FindByEmail lists bookings newest first; email must already be normalized.
func (r *BookingReadStore) FindByEmail(ctx context.Context, email string) ([]*queries.BookingView, error) {
	rows, err := r.queries.ListBookingViewsByEmail(ctx, r.db, email)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by email", err)
	}

	out := make([]*queries.BookingView, 0, len(rows))
	for _, row := range rows {
		v, cerr := bookingFromViewRow(fromListBookingViewRow(row))
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert booking row", cerr, infra.KindDBFailure)
		}
		out = append(out, v)
	}
	return out, nil
}
