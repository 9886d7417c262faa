package promo

import (
	"time"

	"github.com/shopspring/decimal"
)

type Promo struct {
	code          string
	discountType  DiscountType
	discountValue decimal.Decimal
	minAmount     decimal.Decimal
	maxUses       *int
	usedCount     int
	validUntil    *time.Time
	isActive      bool
}

func Reconstruct(
	code string,
	discountType string,
	discountValue decimal.Decimal,
	minAmount decimal.Decimal,
	maxUses *int,
	usedCount int,
	validUntil *time.Time,
	isActive bool,
) (*Promo, error) {
	dt, err := ParseDiscountType(discountType)
	if err != nil {
		return nil, err
	}
	return &Promo{
		code:          NormalizeCode(code),
		discountType:  dt,
		discountValue: discountValue,
		minAmount:     minAmount,
		maxUses:       maxUses,
		usedCount:     usedCount,
		validUntil:    validUntil,
		isActive:      isActive,
	}, nil
}

func (p *Promo) Expired(now time.Time) bool {
	return p.validUntil != nil && now.After(*p.validUntil)
}

func (p *Promo) Exhausted() bool {
	return p.maxUses != nil && p.usedCount >= *p.maxUses
}

// Discount is clamped to amount and rounded to cents.
func (p *Promo) Discount(amount decimal.Decimal) decimal.Decimal {
	var d decimal.Decimal
	switch p.discountType {
	case DiscountPercentage:
		d = amount.Mul(p.discountValue).Div(decimal.NewFromInt(100))
	default:
		d = p.discountValue
	}
	if d.GreaterThan(amount) {
		d = amount
	}
	if d.IsNegative() {
		d = decimal.Zero
	}
	return d.Round(2)
}

func (p *Promo) Code() string                   { return p.code }
func (p *Promo) DiscountType() DiscountType     { return p.discountType }
func (p *Promo) DiscountValue() decimal.Decimal { return p.discountValue }
func (p *Promo) MinAmount() decimal.Decimal     { return p.minAmount }
func (p *Promo) MaxUses() *int                  { return p.maxUses }
func (p *Promo) UsedCount() int                 { return p.usedCount }
func (p *Promo) ValidUntil() *time.Time         { return p.validUntil }
func (p *Promo) IsActive() bool                 { return p.isActive }
