//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestExperience(t *testing.T, db DBLike, title, category string, price string) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO experiences (title, description, location, price, duration, rating, reviews_count, category)
		VALUES ($1, 'Test experience', 'Test City', $2::numeric, 120, 4.50, 10, $3)
		RETURNING id`, title, price, category).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestSlot inserts a 09:00-12:00 slot daysAhead days from today.
func CreateTestSlot(t *testing.T, db DBLike, experienceID int64, daysAhead, capacity int) int64 {
	t.Helper()

	var id int64
	err := db.QueryRow(context.Background(), `
		INSERT INTO slots (experience_id, date, start_time, end_time, capacity, booked_count)
		VALUES ($1, CURRENT_DATE + $2::int, TIME '09:00', TIME '12:00', $3, 0)
		RETURNING id`, experienceID, daysAhead, capacity).Scan(&id)
	require.NoError(t, err)
	return id
}

// CreateTestPromo inserts an active code; maxUses <= 0 means unlimited.
func CreateTestPromo(t *testing.T, db DBLike, code, discountType, value, minAmount string, maxUses int) {
	t.Helper()

	var limit any
	if maxUses > 0 {
		limit = maxUses
	}
	_, err := db.Exec(context.Background(), `
		INSERT INTO promo_codes (code, discount_type, discount_value, min_amount, max_uses, is_active)
		VALUES ($1, $2, $3::numeric, $4::numeric, $5, TRUE)`, code, discountType, value, minAmount, limit)
	require.NoError(t, err)
}

func SlotBookedCount(t *testing.T, db DBLike, slotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT booked_count FROM slots WHERE id = $1", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func PromoUsedCount(t *testing.T, db DBLike, code string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT used_count FROM promo_codes WHERE code = $1", code).Scan(&n)
	require.NoError(t, err)
	return n
}

func ConfirmedParticipants(t *testing.T, db DBLike, slotID int64) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(participants), 0) FROM bookings WHERE slot_id = $1 AND status = 'confirmed'", slotID).Scan(&n)
	require.NoError(t, err)
	return n
}

func QueuedEventKinds(t *testing.T, db DBLike, bookingID int64) []string {
	t.Helper()

	var kinds []string
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(array_agg(kind ORDER BY id), '{}') FROM booking_events WHERE booking_id = $1", bookingID).Scan(&kinds)
	require.NoError(t, err)
	return kinds
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every application table and restarts identities.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
