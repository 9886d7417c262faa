package repository

import (
	"context"

	"bookit/internal/domain/slot"
	"bookit/internal/infra"
	"bookit/internal/infra/repository/converter"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/shared"
)

type SlotWriteQueries interface {
	LockSlotForBooking(ctx context.Context, db sqlc.DBTX, arg sqlc.LockSlotForBookingParams) (sqlc.LockSlotForBookingRow, error)
	LockSlotByID(ctx context.Context, db sqlc.DBTX, id int64) (sqlc.Slots, error)
	IncrementSlotBookedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.IncrementSlotBookedCountParams) (int64, error)
	DecrementSlotBookedCount(ctx context.Context, db sqlc.DBTX, arg sqlc.DecrementSlotBookedCountParams) (int64, error)
}

type SlotRepository struct {
	queries SlotWriteQueries
	db      sqlc.DBTX
}

func NewSlotRepository(queries SlotWriteQueries, db sqlc.DBTX) *SlotRepository {
	return &SlotRepository{
		queries: queries,
		db:      db,
	}
}

// LockForBooking takes the row lock on the slot only; the experience row stays unlocked.
func (r *SlotRepository) LockForBooking(ctx context.Context, tx sqlc.DBTX, slotID, experienceID int64) (*shared.LockedSlot, error) {
	row, err := r.queries.LockSlotForBooking(ctx, tx, sqlc.LockSlotForBookingParams{
		SlotID:       slotID,
		ExperienceID: experienceID,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found for experience", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	s, err := slot.Reconstruct(row.ID, row.ExperienceID, int(row.Capacity), int(row.BookedCount))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot row", err, infra.KindDBFailure)
	}
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert experience price", err, infra.KindDBFailure)
	}
	return &shared.LockedSlot{Slot: s, UnitPrice: price}, nil
}

func (r *SlotRepository) LockByID(ctx context.Context, tx sqlc.DBTX, id int64) (*slot.Slot, error) {
	row, err := r.queries.LockSlotByID(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("slot not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock slot", err)
	}

	s, err := converter.SlotFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert slot row", err, infra.KindDBFailure)
	}
	return s, nil
}

func (r *SlotRepository) IncrementBooked(ctx context.Context, tx sqlc.DBTX, id int64, participants int) (bool, error) {
	n, err := r.queries.IncrementSlotBookedCount(ctx, tx, sqlc.IncrementSlotBookedCountParams{
		Participants: int32(participants), // #nosec G115 -- validated >= 1 and bounded by capacity
		ID:           id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment slot booked count", err)
	}
	return n > 0, nil
}

func (r *SlotRepository) DecrementBooked(ctx context.Context, tx sqlc.DBTX, id int64, participants int) (bool, error) {
	n, err := r.queries.DecrementSlotBookedCount(ctx, tx, sqlc.DecrementSlotBookedCountParams{
		Participants: int32(participants), // #nosec G115 -- read back from a stored booking
		ID:           id,
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to decrement slot booked count", err)
	}
	return n > 0, nil
}
