package readstore

import (
	"context"

	"bookit/internal/domain/promo"
	"bookit/internal/infra"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
)

type PromoReadQueries interface {
	GetPromoCodeByCode(ctx context.Context, db sqlc.DBTX, code string) (sqlc.PromoCodes, error)
	ListActivePromoCodes(ctx context.Context, db sqlc.DBTX) ([]sqlc.ListActivePromoCodesRow, error)
}

type PromoReadStore struct {
	queries PromoReadQueries
	db      sqlc.DBTX
}

func NewPromoReadStore(queries PromoReadQueries, db sqlc.DBTX) *PromoReadStore {
	return &PromoReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PromoReadStore) FindByCode(ctx context.Context, code string) (*queries.PromoView, error) {
	row, err := r.queries.GetPromoCodeByCode(ctx, r.db, promo.NormalizeCode(code))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("promo code not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get promo code", err)
	}

	v, err := promoFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert promo code row", err, infra.KindDBFailure)
	}
	return v, nil
}

func (r *PromoReadStore) FindActive(ctx context.Context) ([]*queries.ActivePromoView, error) {
	rows, err := r.queries.ListActivePromoCodes(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list active promo codes", err)
	}

	out := make([]*queries.ActivePromoView, 0, len(rows))
	for _, row := range rows {
		value, cerr := pgconv.DecimalFromNumeric(row.DiscountValue)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert promo code row", cerr, infra.KindDBFailure)
		}
		minAmount, cerr := pgconv.DecimalFromNumeric(row.MinAmount)
		if cerr != nil {
			return nil, infra.WrapRepoErr("failed to convert promo code row", cerr, infra.KindDBFailure)
		}
		out = append(out, &queries.ActivePromoView{
			Code:          row.Code,
			DiscountType:  row.DiscountType,
			DiscountValue: value,
			MinAmount:     minAmount,
			ValidUntil:    pgconv.TimePtrFromPgtype(row.ValidUntil),
		})
	}
	return out, nil
}
