package repository

import (
	"context"

	"bookit/internal/infra"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
)

const maxLastErrorLength = 1000

type EventWriteQueries interface {
	CreateBookingEvent(ctx context.Context, db sqlc.DBTX, arg sqlc.CreateBookingEventParams) error
	ClaimQueuedBookingEvents(ctx context.Context, db sqlc.DBTX, limit int32) ([]sqlc.BookingEvents, error)
	MarkBookingEventPublished(ctx context.Context, db sqlc.DBTX, id int64) error
	MarkBookingEventFailed(ctx context.Context, db sqlc.DBTX, arg sqlc.MarkBookingEventFailedParams) error
}

type EventRepository struct {
	queries EventWriteQueries
	db      sqlc.DBTX
}

func NewEventRepository(queries EventWriteQueries, db sqlc.DBTX) *EventRepository {
	return &EventRepository{
		queries: queries,
		db:      db,
	}
}

func (r *EventRepository) Append(ctx context.Context, tx sqlc.DBTX, bookingID int64, kind string, payload []byte) error {
	err := r.queries.CreateBookingEvent(ctx, tx, sqlc.CreateBookingEventParams{
		BookingID: bookingID,
		Kind:      kind,
		Payload:   payload,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to append booking event", err)
	}
	return nil
}

// ClaimQueued locks up to limit queued events, skipping rows held by another relay.
func (r *EventRepository) ClaimQueued(ctx context.Context, tx sqlc.DBTX, limit int32) ([]shared.OutboxEvent, error) {
	rows, err := r.queries.ClaimQueuedBookingEvents(ctx, tx, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim booking events", err)
	}

	events := make([]shared.OutboxEvent, 0, len(rows))
	for _, row := range rows {
		events = append(events, shared.OutboxEvent{
			ID:        row.ID,
			BookingID: row.BookingID,
			Kind:      row.Kind,
			Payload:   row.Payload,
			Attempts:  row.Attempts,
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		})
	}
	return events, nil
}

func (r *EventRepository) MarkPublished(ctx context.Context, tx sqlc.DBTX, id int64) error {
	if err := r.queries.MarkBookingEventPublished(ctx, tx, id); err != nil {
		return infra.WrapRepoErr("failed to mark booking event published", err)
	}
	return nil
}

func (r *EventRepository) MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, cause string, maxAttempts int32) error {
	if len(cause) > maxLastErrorLength {
		cause = cause[:maxLastErrorLength]
	}
	err := r.queries.MarkBookingEventFailed(ctx, tx, sqlc.MarkBookingEventFailedParams{
		LastError:   pgtype.Text{String: cause, Valid: true},
		MaxAttempts: maxAttempts,
		ID:          id,
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record booking event failure", err)
	}
	return nil
}
