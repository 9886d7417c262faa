package shared

import (
	"context"
	"time"

	"bookit/internal/domain/booking"
	"bookit/internal/domain/promo"
	"bookit/internal/domain/slot"
	sqlc "bookit/internal/infra/sqlc/generated"

	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Bookings() BookingRepository
	Slots() SlotRepository
	Promos() PromoRepository
	Events() EventRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	SlotByID(ctx context.Context, id int64) (*SlotSnapshot, error)
	ExperienceByID(ctx context.Context, id int64) (*ExperienceSnapshot, error)
	PromoByCode(ctx context.Context, code string) (*PromoSnapshot, error)
}

// LockedSlot is a slot row held FOR UPDATE together with its experience price.
type LockedSlot struct {
	Slot      *slot.Slot
	UnitPrice decimal.Decimal
}

type BookingRepository interface {
	Create(ctx context.Context, tx sqlc.DBTX, b *booking.Booking) (int64, time.Time, error)
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, id int64) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, tx sqlc.DBTX, id int64, status booking.Status) error
}

type SlotRepository interface {
	LockForBooking(ctx context.Context, tx sqlc.DBTX, slotID, experienceID int64) (*LockedSlot, error)
	LockByID(ctx context.Context, tx sqlc.DBTX, id int64) (*slot.Slot, error)
	// IncrementBooked and DecrementBooked report false when the guarded UPDATE matched no row.
	IncrementBooked(ctx context.Context, tx sqlc.DBTX, id int64, participants int) (bool, error)
	DecrementBooked(ctx context.Context, tx sqlc.DBTX, id int64, participants int) (bool, error)
}

type PromoRepository interface {
	GetForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*promo.Promo, error)
	IncrementUsage(ctx context.Context, tx sqlc.DBTX, code string) (bool, error)
	DecrementUsage(ctx context.Context, tx sqlc.DBTX, code string) error
}

type EventRepository interface {
	Append(ctx context.Context, tx sqlc.DBTX, bookingID int64, kind string, payload []byte) error
	ClaimQueued(ctx context.Context, tx sqlc.DBTX, limit int32) ([]OutboxEvent, error)
	MarkPublished(ctx context.Context, tx sqlc.DBTX, id int64) error
	MarkFailed(ctx context.Context, tx sqlc.DBTX, id int64, cause string, maxAttempts int32) error
}
