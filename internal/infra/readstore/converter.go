package readstore

import (
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

func experienceFromRow(row sqlc.Experiences) (*queries.ExperienceView, error) {
	price, err := pgconv.DecimalFromNumeric(row.Price)
	if err != nil {
		return nil, err
	}
	rating, err := pgconv.DecimalPtrFromNumeric(row.Rating)
	if err != nil {
		return nil, err
	}
	return &queries.ExperienceView{
		ID:           row.ID,
		Title:        row.Title,
		Description:  row.Description,
		Location:     row.Location,
		Price:        price,
		ImageURL:     pgconv.StringPtrFromPgtype(row.ImageUrl),
		Duration:     row.Duration,
		Rating:       rating,
		ReviewsCount: row.ReviewsCount,
		Category:     pgconv.StringPtrFromPgtype(row.Category),
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	}, nil
}

func experiencesFromRows(rows []sqlc.Experiences) ([]*queries.ExperienceView, error) {
	out := make([]*queries.ExperienceView, 0, len(rows))
	for _, row := range rows {
		v, err := experienceFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func slotFromRow(row sqlc.Slots) *queries.SlotView {
	available := row.Capacity - row.BookedCount
	return &queries.SlotView{
		ID:             row.ID,
		ExperienceID:   row.ExperienceID,
		Date:           pgconv.DateString(row.Date),
		StartTime:      pgconv.TimeOfDayString(row.StartTime),
		EndTime:        pgconv.TimeOfDayString(row.EndTime),
		Capacity:       row.Capacity,
		BookedCount:    row.BookedCount,
		AvailableSpots: available,
		IsAvailable:    available > 0,
	}
}

func slotsFromRows(rows []sqlc.Slots) []*queries.SlotView {
	out := make([]*queries.SlotView, 0, len(rows))
	for _, row := range rows {
		out = append(out, slotFromRow(row))
	}
	return out
}

// bookingViewRow is the column set shared by the single and list booking view queries.
type bookingViewRow struct {
	sqlc.Bookings
	ExperienceTitle    string
	ExperienceLocation string
	Slot               sqlc.Slots
}

func bookingFromViewRow(row bookingViewRow) (*queries.BookingView, error) {
	total, err := pgconv.DecimalFromNumeric(row.TotalPrice)
	if err != nil {
		return nil, err
	}
	discount, err := pgconv.DecimalFromNumeric(row.DiscountAmount)
	if err != nil {
		return nil, err
	}
	return &queries.BookingView{
		ID:                 row.ID,
		ExperienceID:       row.ExperienceID,
		SlotID:             row.SlotID,
		UserName:           row.UserName,
		UserEmail:          row.UserEmail,
		UserPhone:          row.UserPhone,
		Participants:       row.Participants,
		TotalPrice:         total,
		PromoCode:          pgconv.StringPtrFromPgtype(row.PromoCode),
		DiscountAmount:     discount,
		Status:             row.Status,
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
		ExperienceTitle:    row.ExperienceTitle,
		ExperienceLocation: row.ExperienceLocation,
		SlotDate:           pgconv.DateString(row.Slot.Date),
		SlotStartTime:      pgconv.TimeOfDayString(row.Slot.StartTime),
		SlotEndTime:        pgconv.TimeOfDayString(row.Slot.EndTime),
	}, nil
}

func fromGetBookingViewRow(r sqlc.GetBookingViewByIDRow) bookingViewRow {
	return bookingViewRow{
		Bookings: sqlc.Bookings{
			ID:             r.ID,
			ExperienceID:   r.ExperienceID,
			SlotID:         r.SlotID,
			UserName:       r.UserName,
			UserEmail:      r.UserEmail,
			UserPhone:      r.UserPhone,
			Participants:   r.Participants,
			TotalPrice:     r.TotalPrice,
			PromoCode:      r.PromoCode,
			DiscountAmount: r.DiscountAmount,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		},
		ExperienceTitle:    r.ExperienceTitle,
		ExperienceLocation: r.ExperienceLocation,
		Slot:               sqlc.Slots{Date: r.SlotDate, StartTime: r.SlotStartTime, EndTime: r.SlotEndTime},
	}
}

func fromListBookingViewRow(r sqlc.ListBookingViewsByEmailRow) bookingViewRow {
	return bookingViewRow{
		Bookings: sqlc.Bookings{
			ID:             r.ID,
			ExperienceID:   r.ExperienceID,
			SlotID:         r.SlotID,
			UserName:       r.UserName,
			UserEmail:      r.UserEmail,
			UserPhone:      r.UserPhone,
			Participants:   r.Participants,
			TotalPrice:     r.TotalPrice,
			PromoCode:      r.PromoCode,
			DiscountAmount: r.DiscountAmount,
			Status:         r.Status,
			CreatedAt:      r.CreatedAt,
			UpdatedAt:      r.UpdatedAt,
		},
		ExperienceTitle:    r.ExperienceTitle,
		ExperienceLocation: r.ExperienceLocation,
		Slot:               sqlc.Slots{Date: r.SlotDate, StartTime: r.SlotStartTime, EndTime: r.SlotEndTime},
	}
}

func promoFromRow(row sqlc.PromoCodes) (*queries.PromoView, error) {
	value, err := pgconv.DecimalFromNumeric(row.DiscountValue)
	if err != nil {
		return nil, err
	}
	minAmount, err := pgconv.DecimalFromNumeric(row.MinAmount)
	if err != nil {
		return nil, err
	}
	return &queries.PromoView{
		Code:          row.Code,
		DiscountType:  row.DiscountType,
		DiscountValue: value,
		MinAmount:     minAmount,
		MaxUses:       pgconv.Int32PtrFromPgtype(row.MaxUses),
		UsedCount:     row.UsedCount,
		ValidUntil:    pgconv.TimePtrFromPgtype(row.ValidUntil),
		IsActive:      row.IsActive,
	}, nil
}
