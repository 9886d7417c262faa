package converter

import (
	"bookit/internal/domain/booking"
	"bookit/internal/domain/promo"
	"bookit/internal/domain/slot"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ExperienceID:   b.ExperienceID(),
		SlotID:         b.SlotID(),
		UserName:       b.Contact().Name(),
		UserEmail:      b.Contact().Email(),
		UserPhone:      b.Contact().Phone(),
		Participants:   int32(b.Participants()), // #nosec G115 -- bounded by slot capacity
		TotalPrice:     pgconv.NumericFromDecimal(b.TotalPrice()),
		PromoCode:      pgconv.StringPtrToPgtype(b.PromoCode()),
		DiscountAmount: pgconv.NumericFromDecimal(b.DiscountAmount()),
		Status:         b.Status().String(),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, err
	}
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.DecimalFromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, err
	}

	return booking.Reconstruct(
		row.ID,
		row.ExperienceID,
		row.SlotID,
		booking.ReconstructContact(row.UserName, row.UserEmail, row.UserPhone),
		int(row.Participants),
		total,
		pgconv.StringPtrFromPgtype(row.PromoCode),
		discount,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
	), nil
}

func SlotFromRow(row sqlc.Slots) (*slot.Slot, error) {
	return slot.Reconstruct(row.ID, row.ExperienceID, int(row.Capacity), int(row.BookedCount))
}

func PromoFromRow(row sqlc.PromoCodes) (*promo.Promo, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	minAmount, err := pgconv.DecimalFromNumeric(row.MinAmount)
	if err != nil {
		return nil, err
	}

	var maxUses *int
	if row.MaxUses.Valid {
		m := int(row.MaxUses.Int32)
		maxUses = &m
	}

	return promo.Reconstruct(
		row.Code,
		row.DiscountType,
		value,
		minAmount,
		maxUses,
		int(row.UsedCount),
		pgconv.TimePtrFromPgtype(row.ValidUntil),
		row.IsActive,
	)
}
