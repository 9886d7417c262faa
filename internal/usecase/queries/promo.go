package queries

import (
	"context"

	"bookit/internal/domain/promo"
	"bookit/internal/infra"
	"bookit/internal/pkg/clock"
	"bookit/internal/pkg/errs"
	"bookit/internal/pkg/ptr"

	"github.com/shopspring/decimal"
)

var (
	ErrPromoCodeRequired = errs.New("promo code is required")
	ErrInvalidAmount     = errs.New("amount must be greater than zero")
)

type PromoReadStore interface {
	FindByCode(ctx context.Context, code string) (*PromoView, error)
	FindActive(ctx context.Context) ([]*ActivePromoView, error)
}

type PromoQueries interface {
	// Validate reports an unusable code through PromoValidation.Valid, not an error.
	Validate(ctx context.Context, code string, amount decimal.Decimal) (*PromoValidation, error)
	ListActive(ctx context.Context) ([]*ActivePromoView, error)
}

type promoQueriesImpl struct {
	store PromoReadStore
	clock clock.Clock
}

func NewPromoQueries(store PromoReadStore, clk clock.Clock) PromoQueries {
	return &promoQueriesImpl{store: store, clock: clk}
}

func (q *promoQueriesImpl) Validate(ctx context.Context, code string, amount decimal.Decimal) (*PromoValidation, error) {
	code = promo.NormalizeCode(code)
	if code == "" {
		return nil, ErrPromoCodeRequired
	}
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	var p *promo.Promo
	rec, err := q.store.FindByCode(ctx, code)
	switch {
	case err == nil:
		p, err = PromoFromView(rec)
		if err != nil {
			return nil, err
		}
	case infra.IsKind(err, infra.KindNotFound):
	default:
		return nil, err
	}

	res := promo.Evaluate(p, amount, q.clock.Now())
	out := &PromoValidation{
		Valid:          res.Valid,
		Code:           code,
		DiscountAmount: res.DiscountAmount,
		DiscountValue:  res.DiscountValue,
		FinalAmount:    res.FinalAmount(amount),
		Message:        res.Message,
	}
	if res.DiscountType != nil {
		out.DiscountType = ptr.Of(res.DiscountType.String())
	}
	return out, nil
}

func (q *promoQueriesImpl) ListActive(ctx context.Context) ([]*ActivePromoView, error) {
	return q.store.FindActive(ctx)
}

func PromoFromView(v *PromoView) (*promo.Promo, error) {
	var maxUses *int
	if v.MaxUses != nil {
		m := int(*v.MaxUses)
		maxUses = &m
	}
	return promo.Reconstruct(
		v.Code,
		v.DiscountType,
		v.DiscountValue,
		v.MinAmount,
		maxUses,
		int(v.UsedCount),
		v.ValidUntil,
		v.IsActive,
	)
}
