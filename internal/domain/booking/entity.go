package booking

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidParticipants = errors.New("at least 1 participant is required")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrDiscountExceedsBase = errors.New("discount cannot exceed the base price")
	ErrAlreadyCancelled    = errors.New("booking is already cancelled")
)

type Booking struct {
	id             int64
	experienceID   int64
	slotID         int64
	contact        Contact
	participants   int
	totalPrice     decimal.Decimal
	promoCode      *string
	discountAmount decimal.Decimal
	status         Status
	createdAt      time.Time
}

// NewBooking prices a confirmed booking as unitPrice × participants − discount.
func NewBooking(
	experienceID, slotID int64,
	contact Contact,
	participants int,
	unitPrice decimal.Decimal,
	promoCode *string,
	discount decimal.Decimal,
) (*Booking, error) {
	if participants < 1 {
		return nil, ErrInvalidParticipants
	}
	if unitPrice.IsNegative() || discount.IsNegative() {
		return nil, ErrNegativePrice
	}

	base := BasePrice(unitPrice, participants)
	if discount.GreaterThan(base) {
		return nil, ErrDiscountExceedsBase
	}

	return &Booking{
		experienceID:   experienceID,
		slotID:         slotID,
		contact:        contact,
		participants:   participants,
		totalPrice:     base.Sub(discount),
		promoCode:      promoCode,
		discountAmount: discount,
		status:         StatusConfirmed,
	}, nil
}

func Reconstruct(
	id, experienceID, slotID int64,
	contact Contact,
	participants int,
	totalPrice decimal.Decimal,
	promoCode *string,
	discountAmount decimal.Decimal,
	status Status,
	createdAt time.Time,
) *Booking {
	return &Booking{
		id:             id,
		experienceID:   experienceID,
		slotID:         slotID,
		contact:        contact,
		participants:   participants,
		totalPrice:     totalPrice,
		promoCode:      promoCode,
		discountAmount: discountAmount,
		status:         status,
		createdAt:      createdAt,
	}
}

func BasePrice(unitPrice decimal.Decimal, participants int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(participants)))
}

// Cancel is terminal; cancelling twice is an error.
func (b *Booking) Cancel() error {
	if b.status == StatusCancelled {
		return ErrAlreadyCancelled
	}
	b.status = StatusCancelled
	return nil
}

func (b *Booking) HasPromo() bool {
	return b.promoCode != nil && *b.promoCode != ""
}

func (b *Booking) AssignID(id int64, createdAt time.Time) {
	b.id = id
	b.createdAt = createdAt
}

func (b *Booking) ID() int64                       { return b.id }
func (b *Booking) ExperienceID() int64             { return b.experienceID }
func (b *Booking) SlotID() int64                   { return b.slotID }
func (b *Booking) Contact() Contact                { return b.contact }
func (b *Booking) Participants() int               { return b.participants }
func (b *Booking) TotalPrice() decimal.Decimal     { return b.totalPrice }
func (b *Booking) PromoCode() *string              { return b.promoCode }
func (b *Booking) DiscountAmount() decimal.Decimal { return b.discountAmount }
func (b *Booking) Status() Status                  { return b.status }
func (b *Booking) CreatedAt() time.Time            { return b.createdAt }
