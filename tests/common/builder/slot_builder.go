//go:build unit || e2e

package builder

import (
	"time"

	"bookit/internal/domain/slot"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/shopspring/decimal"
)

type SlotBuilder struct {
	ID           int64
	ExperienceID int64
	Date         time.Time
	Capacity     int
	BookedCount  int
	UnitPrice    decimal.Decimal
}

func NewSlotBuilder() *SlotBuilder {
	return &SlotBuilder{
		ID:           1,
		ExperienceID: 1,
		Date:         time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
		Capacity:     10,
		BookedCount:  0,
		UnitPrice:    decimal.RequireFromString("45.00"),
	}
}

func (s *SlotBuilder) With(mutate func(*SlotBuilder)) *SlotBuilder {
	mutate(s)
	return s
}

func (s *SlotBuilder) BuildDomain() *slot.Slot {
	d, err := slot.Reconstruct(s.ID, s.ExperienceID, s.Capacity, s.BookedCount)
	if err != nil {
		panic(err)
	}
	return d
}

func (s *SlotBuilder) BuildLocked() *shared.LockedSlot {
	return &shared.LockedSlot{Slot: s.BuildDomain(), UnitPrice: s.UnitPrice}
}

func (s *SlotBuilder) BuildSnapshot() *shared.SlotSnapshot {
	return &shared.SlotSnapshot{
		ID:           s.ID,
		ExperienceID: s.ExperienceID,
		Capacity:     s.Capacity,
		BookedCount:  s.BookedCount,
	}
}

func (s *SlotBuilder) BuildInfra() sqlc.Slots {
	return sqlc.Slots{
		ID:           s.ID,
		ExperienceID: s.ExperienceID,
		Date:         pgconv.DateFromTime(s.Date),
		StartTime:    pgconv.TimeOfDayFromClock(9, 0, 0),
		EndTime:      pgconv.TimeOfDayFromClock(12, 0, 0),
		Capacity:     int32(s.Capacity),    // #nosec G115 -- test fixture
		BookedCount:  int32(s.BookedCount), // #nosec G115 -- test fixture
	}
}

func (s *SlotBuilder) BuildLockRow() sqlc.LockSlotForBookingRow {
	row := s.BuildInfra()
	return sqlc.LockSlotForBookingRow{
		ID:           row.ID,
		ExperienceID: row.ExperienceID,
		Date:         row.Date,
		StartTime:    row.StartTime,
		EndTime:      row.EndTime,
		Capacity:     row.Capacity,
		BookedCount:  row.BookedCount,
		Price:        pgconv.NumericFromDecimal(s.UnitPrice),
	}
}

func (s *SlotBuilder) BuildView() *queries.SlotView {
	available := int32(s.Capacity - s.BookedCount) // #nosec G115 -- test fixture
	return &queries.SlotView{
		ID:             s.ID,
		ExperienceID:   s.ExperienceID,
		Date:           s.Date.Format(pgconv.DateLayout),
		StartTime:      "09:00:00",
		EndTime:        "12:00:00",
		Capacity:       int32(s.Capacity),    // #nosec G115 -- test fixture
		BookedCount:    int32(s.BookedCount), // #nosec G115 -- test fixture
		AvailableSpots: available,
		IsAvailable:    available > 0,
	}
}
