package shared

import (
	"time"

	"github.com/shopspring/decimal"
)

// Write-side snapshots keep commands independent of the query views.
type SlotSnapshot struct {
	ID           int64
	ExperienceID int64
	Capacity     int
	BookedCount  int
}

type ExperienceSnapshot struct {
	ID    int64
	Price decimal.Decimal
}

type PromoSnapshot struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinAmount     decimal.Decimal
	MaxUses       *int
	UsedCount     int
	ValidUntil    *time.Time
	IsActive      bool
}

type OutboxEvent struct {
	ID        int64
	BookingID int64
	Kind      string
	Payload   []byte
	Attempts  int32
	CreatedAt time.Time
}

const (
	EventBookingCreated   = "booking.created"
	EventBookingCancelled = "booking.cancelled"
)
