package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"bookit/internal/infra"
	"bookit/internal/infra/readstore"
	"bookit/internal/infra/repository"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/config"
	"bookit/internal/pkg/errs"
	"bookit/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const maxRetries = 3

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errLockTimeout        = errs.New("failed to set lock timeout")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool        *pgxpool.Pool
	q           *sqlc.Queries
	lockTimeout time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.Config) *PostgresUoW {
	return &PostgresUoW{
		pool:        pool,
		q:           q,
		lockTimeout: cfg.DB.LockTimeout,
	}
}

// ReadCommitted plus row locks serializes writers per slot without aborting readers
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{uow: u, dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = u.applyLockTimeout(ctx, pgxTx)
		if err == nil {
			tx := &pgTx{
				dbtx: pgxTx,
				uow:  u,
			}
			err = fn(ctx, tx)
			if err == nil {
				if err = pgxTx.Commit(ctx); err == nil {
					return nil
				}
				err = errs.Mark(err, errTransactionCommit)
			}
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		// A failed commit may have been applied server-side; never re-run it.
		if errs.Is(err, errTransactionCommit) || !isRetryableError(err) {
			return err
		}
		if attempt == maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) applyLockTimeout(ctx context.Context, tx pgx.Tx) error {
	if u.lockTimeout <= 0 {
		return nil
	}
	// SET does not accept bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", u.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return errs.Mark(err, errLockTimeout)
	}
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- high bit masked above
	return int64(uval) % n
}

// Serialization failures and deadlocks abort the whole transaction, so nothing was written.
func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case infra.PgSerializationFailure, infra.PgDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx sqlc.DBTX
	uow  *PostgresUoW

	// Lazy-initialized repositories
	bookingRepo  shared.BookingRepository
	slotRepo     shared.SlotRepository
	promoRepo    shared.PromoRepository
	eventRepo    shared.EventRepository
	commandReads shared.CommandReads
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) Bookings() shared.BookingRepository {
	if t.bookingRepo == nil {
		t.bookingRepo = repository.NewBookingRepository(t.uow.q, t.dbtx)
	}
	return t.bookingRepo
}

func (t *pgTx) Slots() shared.SlotRepository {
	if t.slotRepo == nil {
		t.slotRepo = repository.NewSlotRepository(t.uow.q, t.dbtx)
	}
	return t.slotRepo
}

func (t *pgTx) Promos() shared.PromoRepository {
	if t.promoRepo == nil {
		t.promoRepo = repository.NewPromoRepository(t.uow.q, t.dbtx)
	}
	return t.promoRepo
}

func (t *pgTx) Events() shared.EventRepository {
	if t.eventRepo == nil {
		t.eventRepo = repository.NewEventRepository(t.uow.q, t.dbtx)
	}
	return t.eventRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{
			uow:  t.uow,
			dbtx: t.dbtx,
		}
	}
	return t.commandReads
}

type commandReads struct {
	uow  *PostgresUoW
	dbtx sqlc.DBTX

	// Lazy-initialized readstores
	slotStore       *readstore.SlotReadStore
	experienceStore *readstore.ExperienceReadStore
	promoStore      *readstore.PromoReadStore
}

func (r *commandReads) SlotByID(ctx context.Context, id int64) (*shared.SlotSnapshot, error) {
	if r.slotStore == nil {
		r.slotStore = readstore.NewSlotReadStore(r.uow.q, r.dbtx)
	}

	s, err := r.slotStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	snapshot := &shared.SlotSnapshot{
		ID:           s.ID,
		ExperienceID: s.ExperienceID,
		Capacity:     int(s.Capacity),
		BookedCount:  int(s.BookedCount),
	}
	return snapshot, nil
}

func (r *commandReads) ExperienceByID(ctx context.Context, id int64) (*shared.ExperienceSnapshot, error) {
	if r.experienceStore == nil {
		r.experienceStore = readstore.NewExperienceReadStore(r.uow.q, r.dbtx)
	}

	e, err := r.experienceStore.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &shared.ExperienceSnapshot{ID: e.ID, Price: e.Price}, nil
}

func (r *commandReads) PromoByCode(ctx context.Context, code string) (*shared.PromoSnapshot, error) {
	if r.promoStore == nil {
		r.promoStore = readstore.NewPromoReadStore(r.uow.q, r.dbtx)
	}

	p, err := r.promoStore.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	var maxUses *int
	if p.MaxUses != nil {
		m := int(*p.MaxUses)
		maxUses = &m
	}
	snapshot := &shared.PromoSnapshot{
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		MinAmount:     p.MinAmount,
		MaxUses:       maxUses,
		UsedCount:     int(p.UsedCount),
		ValidUntil:    p.ValidUntil,
		IsActive:      p.IsActive,
	}
	return snapshot, nil
}
