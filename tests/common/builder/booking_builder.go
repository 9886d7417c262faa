//go:build unit || e2e

package builder

import (
	"time"

	"bookit/internal/domain/booking"
	reqdto "bookit/internal/handler/dto/request"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/commands"
	"bookit/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type BookingBuilder struct {
	ID                 int64
	ExperienceID       int64
	SlotID             int64
	UserName           string
	UserEmail          string
	UserPhone          string
	Participants       int
	UnitPrice          decimal.Decimal
	PromoCode          *string
	Discount           decimal.Decimal
	Status             booking.Status
	CreatedAt          time.Time
	ExperienceTitle    string
	ExperienceLocation string
	SlotDate           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:                 1,
		ExperienceID:       1,
		SlotID:             1,
		UserName:           "Jane Traveller",
		UserEmail:          "jane@example.com",
		UserPhone:          "+15550001234",
		Participants:       2,
		UnitPrice:          decimal.RequireFromString("45.00"),
		Discount:           decimal.Zero,
		Status:             booking.StatusConfirmed,
		CreatedAt:          time.Date(2026, 5, 1, 9, 30, 0, 0, time.UTC),
		ExperienceTitle:    "Kayak Mangrove Tour",
		ExperienceLocation: "Krabi, Thailand",
		SlotDate:           time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithPromo(code string, discount string) *BookingBuilder {
	b.PromoCode = &code
	b.Discount = decimal.RequireFromString(discount)
	return b
}

func (b *BookingBuilder) Total() decimal.Decimal {
	return booking.BasePrice(b.UnitPrice, b.Participants).Sub(b.Discount)
}

// Build methods
func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	contact, err := booking.NewContact(b.UserName, b.UserEmail, b.UserPhone)
	if err != nil {
		return nil, err
	}
	return booking.NewBooking(b.ExperienceID, b.SlotID, contact, b.Participants, b.UnitPrice, b.PromoCode, b.Discount)
}

// BuildStored returns a booking as it would be read back under lock.
func (b *BookingBuilder) BuildStored() *booking.Booking {
	return booking.Reconstruct(
		b.ID,
		b.ExperienceID,
		b.SlotID,
		booking.ReconstructContact(b.UserName, b.UserEmail, b.UserPhone),
		b.Participants,
		b.Total(),
		b.PromoCode,
		b.Discount,
		b.Status,
		b.CreatedAt,
	)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:             b.ID,
		ExperienceID:   b.ExperienceID,
		SlotID:         b.SlotID,
		UserName:       b.UserName,
		UserEmail:      b.UserEmail,
		UserPhone:      b.UserPhone,
		Participants:   int32(b.Participants), // #nosec G115 -- test fixture
		TotalPrice:     pgconv.NumericFromDecimal(b.Total()),
		PromoCode:      pgconv.StringPtrToPgtype(b.PromoCode),
		DiscountAmount: pgconv.NumericFromDecimal(b.Discount),
		Status:         b.Status.String(),
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildViewRow() sqlc.GetBookingViewByIDRow {
	row := b.BuildInfra()
	return sqlc.GetBookingViewByIDRow{
		ID:                 row.ID,
		ExperienceID:       row.ExperienceID,
		SlotID:             row.SlotID,
		UserName:           row.UserName,
		UserEmail:          row.UserEmail,
		UserPhone:          row.UserPhone,
		Participants:       row.Participants,
		TotalPrice:         row.TotalPrice,
		PromoCode:          row.PromoCode,
		DiscountAmount:     row.DiscountAmount,
		Status:             row.Status,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		ExperienceTitle:    b.ExperienceTitle,
		ExperienceLocation: b.ExperienceLocation,
		SlotDate:           pgconv.DateFromTime(b.SlotDate),
		SlotStartTime:      pgconv.TimeOfDayFromClock(9, 0, 0),
		SlotEndTime:        pgconv.TimeOfDayFromClock(12, 0, 0),
	}
}

func (b *BookingBuilder) BuildListViewRow() sqlc.ListBookingViewsByEmailRow {
	return sqlc.ListBookingViewsByEmailRow(b.BuildViewRow())
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:                 b.ID,
		ExperienceID:       b.ExperienceID,
		SlotID:             b.SlotID,
		UserName:           b.UserName,
		UserEmail:          b.UserEmail,
		UserPhone:          b.UserPhone,
		Participants:       int32(b.Participants), // #nosec G115 -- test fixture
		TotalPrice:         b.Total(),
		PromoCode:          b.PromoCode,
		DiscountAmount:     b.Discount,
		Status:             b.Status.String(),
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.CreatedAt,
		ExperienceTitle:    b.ExperienceTitle,
		ExperienceLocation: b.ExperienceLocation,
		SlotDate:           b.SlotDate.Format(pgconv.DateLayout),
		SlotStartTime:      "09:00:00",
		SlotEndTime:        "12:00:00",
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		UserName:     b.UserName,
		UserEmail:    b.UserEmail,
		UserPhone:    b.UserPhone,
		Participants: b.Participants,
		PromoCode:    b.PromoCode,
	}
}

func (b *BookingBuilder) BuildInput() commands.CreateBookingInput {
	return commands.CreateBookingInput{
		ExperienceID: b.ExperienceID,
		SlotID:       b.SlotID,
		UserName:     b.UserName,
		UserEmail:    b.UserEmail,
		UserPhone:    b.UserPhone,
		Participants: b.Participants,
		PromoCode:    b.PromoCode,
	}
}
