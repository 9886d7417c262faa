package queries

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExperienceView represents read-optimized experience data
type ExperienceView struct {
	ID           int64
	Title        string
	Description  string
	Location     string
	Price        decimal.Decimal
	ImageURL     *string
	Duration     int32
	Rating       *decimal.Decimal
	ReviewsCount int32
	Category     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ExperienceDetailView struct {
	ExperienceView
	AvailableSlots []*SlotView
}

// SlotView carries a slot with its remaining capacity at read time
type SlotView struct {
	ID             int64
	ExperienceID   int64
	Date           string
	StartTime      string
	EndTime        string
	Capacity       int32
	BookedCount    int32
	AvailableSpots int32
	IsAvailable    bool
}

// BookingView joins a booking with its experience and slot
type BookingView struct {
	ID                 int64
	ExperienceID       int64
	SlotID             int64
	UserName           string
	UserEmail          string
	UserPhone          string
	Participants       int32
	TotalPrice         decimal.Decimal
	PromoCode          *string
	DiscountAmount     decimal.Decimal
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	ExperienceTitle    string
	ExperienceLocation string
	SlotDate           string
	SlotStartTime      string
	SlotEndTime        string
}

// PromoView is the full promo record, used for evaluation
type PromoView struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinAmount     decimal.Decimal
	MaxUses       *int32
	UsedCount     int32
	ValidUntil    *time.Time
	IsActive      bool
}

// ActivePromoView exposes only the public promo fields
type ActivePromoView struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinAmount     decimal.Decimal
	ValidUntil    *time.Time
}

type PromoValidation struct {
	Valid          bool
	Code           string
	DiscountAmount decimal.Decimal
	DiscountType   *string
	DiscountValue  *decimal.Decimal
	FinalAmount    decimal.Decimal
	Message        string
}

type SlotAvailability struct {
	SlotID         int64
	Participants   int
	Available      bool
	AvailableSpots int32
}
