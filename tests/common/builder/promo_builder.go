//go:build unit || e2e

package builder

import (
	"time"

	"bookit/internal/domain/promo"
	sqlc "bookit/internal/infra/sqlc/generated"
	"bookit/internal/pkg/pgconv"
	"bookit/internal/usecase/queries"
	"bookit/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PromoBuilder struct {
	Code          string
	DiscountType  string
	DiscountValue decimal.Decimal
	MinAmount     decimal.Decimal
	MaxUses       *int
	UsedCount     int
	ValidUntil    *time.Time
	IsActive      bool
}

// NewPromoBuilder defaults to SAVE10: 10% off orders of $50 or more.
func NewPromoBuilder() *PromoBuilder {
	return &PromoBuilder{
		Code:          "SAVE10",
		DiscountType:  promo.DiscountPercentage.String(),
		DiscountValue: decimal.RequireFromString("10.00"),
		MinAmount:     decimal.RequireFromString("50.00"),
		IsActive:      true,
	}
}

func (p *PromoBuilder) With(mutate func(*PromoBuilder)) *PromoBuilder {
	mutate(p)
	return p
}

func (p *PromoBuilder) BuildDomain() *promo.Promo {
	d, err := promo.Reconstruct(p.Code, p.DiscountType, p.DiscountValue, p.MinAmount, p.MaxUses, p.UsedCount, p.ValidUntil, p.IsActive)
	if err != nil {
		panic(err)
	}
	return d
}

func (p *PromoBuilder) BuildSnapshot() *shared.PromoSnapshot {
	return &shared.PromoSnapshot{
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		MinAmount:     p.MinAmount,
		MaxUses:       p.MaxUses,
		UsedCount:     p.UsedCount,
		ValidUntil:    p.ValidUntil,
		IsActive:      p.IsActive,
	}
}

func (p *PromoBuilder) BuildInfra() sqlc.PromoCodes {
	maxUses := pgtype.Int4{}
	if p.MaxUses != nil {
		maxUses = pgtype.Int4{Int32: int32(*p.MaxUses), Valid: true} // #nosec G115 -- test fixture
	}
	validUntil := pgtype.Timestamptz{}
	if p.ValidUntil != nil {
		validUntil = pgtype.Timestamptz{Time: *p.ValidUntil, Valid: true}
	}
	return sqlc.PromoCodes{
		ID:            1,
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: pgconv.NumericFromDecimal(p.DiscountValue),
		MinAmount:     pgconv.NumericFromDecimal(p.MinAmount),
		MaxUses:       maxUses,
		UsedCount:     int32(p.UsedCount), // #nosec G115 -- test fixture
		ValidUntil:    validUntil,
		IsActive:      p.IsActive,
	}
}

func (p *PromoBuilder) BuildView() *queries.PromoView {
	var maxUses *int32
	if p.MaxUses != nil {
		m := int32(*p.MaxUses) // #nosec G115 -- test fixture
		maxUses = &m
	}
	return &queries.PromoView{
		Code:          p.Code,
		DiscountType:  p.DiscountType,
		DiscountValue: p.DiscountValue,
		MinAmount:     p.MinAmount,
		MaxUses:       maxUses,
		UsedCount:     int32(p.UsedCount), // #nosec G115 -- test fixture
		ValidUntil:    p.ValidUntil,
		IsActive:      p.IsActive,
	}
}
