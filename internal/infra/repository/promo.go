package repository

import (
	"context"

	"bookit/internal/domain/promo"
	"bookit/internal/infra"
	"bookit/internal/infra/repository/converter"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
)

type PromoWriteQueries interface {
	GetPromoCodeForUpdate(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
	IncrementPromoUsage(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
	DecrementPromoUsage(ctx context.Context, db sqlc.DBTX, code string) (int64, error)
}

type PromoRepository struct {
	queries PromoWriteQueries
	db      sqlc.DBTX
}

func NewPromoRepository(queries PromoWriteQueries, db sqlc.DBTX) *PromoRepository {
	return &PromoRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PromoRepository) GetForUpdate(ctx context.Context, tx sqlc.DBTX, code string) (*promo.Promo, error) {
	row, err := r.queries.GetPromoCodeForUpdate(ctx, tx, promo.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock promo code", err)
	}

	p, err := converter.PromoFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promo code row", err, infra.KindDBFailure)
	}
	return p, nil
}

// IncrementUsage reports false when the usage cap was already reached.
func (r *PromoRepository) IncrementUsage(ctx context.Context, tx sqlc.DBTX, code string) (bool, error) {
	n, err := r.queries.IncrementPromoUsage(ctx, tx, promo.NormalizeCode(code))
	if err != nil {
		return false, infra.WrapRepoErr("failed to increment promo usage", err)
	}
	return n > 0, nil
}

// DecrementUsage floors used_count at zero. A code deleted since booking is ignored.
func (r *PromoRepository) DecrementUsage(ctx context.Context, tx sqlc.DBTX, code string) error {
	if _, err := r.queries.DecrementPromoUsage(ctx, tx, promo.NormalizeCode(code)); err != nil {
		return infra.WrapRepoErr("failed to decrement promo usage", err)
	}
	return nil
}
