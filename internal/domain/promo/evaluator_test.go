//go:build unit

package promo_test

import (
	"testing"
	"time"

	"bookit/internal/domain/promo"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func intPtr(v int) *int { return &v }

func timePtr(t time.Time) *time.Time { return &t }

type promoOpts struct {
	code       string
	kind       string
	value      string
	minAmount  string
	maxUses    *int
	usedCount  int
	validUntil *time.Time
	inactive   bool
}

func newPromo(t *testing.T, o promoOpts) *promo.Promo {
	t.Helper()
	if o.code == "" {
		o.code = "SAVE10"
	}
	if o.kind == "" {
		o.kind = "percentage"
	}
	if o.value == "" {
		o.value = "10"
	}
	if o.minAmount == "" {
		o.minAmount = "0"
	}
	p, err := promo.Reconstruct(o.code, o.kind, dec(o.value), dec(o.minAmount), o.maxUses, o.usedCount, o.validUntil, !o.inactive)
	require.NoError(t, err)
	return p
}

func TestEvaluate(t *testing.T) {
	t.Run("percentage discount", func(t *testing.T) {
		p := newPromo(t, promoOpts{code: "SAVE10", kind: "percentage", value: "10", minAmount: "50"})

		actual := promo.Evaluate(p, dec("100"), now)

		require.True(t, actual.Valid)
		assert.Equal(t, "SAVE10", actual.Code)
		assert.True(t, dec("10").Equal(actual.DiscountAmount))
		assert.True(t, dec("90").Equal(actual.FinalAmount(dec("100"))))
		assert.Equal(t, "Promo code applied! You saved $10.00", actual.Message)
		require.NotNil(t, actual.DiscountType)
		assert.Equal(t, promo.DiscountPercentage, *actual.DiscountType)
	})

	t.Run("percentage discount is rounded to cents", func(t *testing.T) {
		p := newPromo(t, promoOpts{kind: "percentage", value: "15"})

		actual := promo.Evaluate(p, dec("33.33"), now)

		require.True(t, actual.Valid)
		assert.Equal(t, "5.00", actual.DiscountAmount.StringFixed(2))
	})

	t.Run("fixed discount is clamped to the amount", func(t *testing.T) {
		p := newPromo(t, promoOpts{code: "FLAT5", kind: "fixed", value: "5"})

		actual := promo.Evaluate(p, dec("3"), now)

		require.True(t, actual.Valid)
		assert.Equal(t, "3.00", actual.DiscountAmount.StringFixed(2))
		assert.True(t, actual.FinalAmount(dec("3")).IsZero())
		assert.Equal(t, "Promo code applied! You saved $3.00", actual.Message)
	})

	t.Run("minimum purchase not met", func(t *testing.T) {
		p := newPromo(t, promoOpts{minAmount: "50"})

		actual := promo.Evaluate(p, dec("40"), now)

		assert.False(t, actual.Valid)
		assert.True(t, actual.DiscountAmount.IsZero())
		assert.Equal(t, "This promo code requires a minimum purchase of $50.00", actual.Message)
		assert.True(t, dec("40").Equal(actual.FinalAmount(dec("40"))))
	})

	t.Run("rules short-circuit in order", func(t *testing.T) {
		cases := []struct {
			name string
			p    func(t *testing.T) *promo.Promo
			msg  string
		}{
			{
				name: "missing code",
				p:    func(*testing.T) *promo.Promo { return nil },
				msg:  promo.MsgInvalidCode,
			},
			{
				name: "inactive wins over expired",
				p: func(t *testing.T) *promo.Promo {
					return newPromo(t, promoOpts{inactive: true, validUntil: timePtr(now.Add(-time.Hour))})
				},
				msg: promo.MsgInactive,
			},
			{
				name: "expired wins over usage limit",
				p: func(t *testing.T) *promo.Promo {
					return newPromo(t, promoOpts{validUntil: timePtr(now.Add(-time.Second)), maxUses: intPtr(1), usedCount: 1})
				},
				msg: promo.MsgExpired,
			},
			{
				name: "usage limit wins over minimum purchase",
				p: func(t *testing.T) *promo.Promo {
					return newPromo(t, promoOpts{maxUses: intPtr(3), usedCount: 3, minAmount: "500"})
				},
				msg: promo.MsgUsageExceeded,
			},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				actual := promo.Evaluate(c.p(t), dec("100"), now)
				assert.False(t, actual.Valid)
				assert.Equal(t, c.msg, actual.Message)
			})
		}
	})

	t.Run("valid until the exact expiry instant", func(t *testing.T) {
		p := newPromo(t, promoOpts{validUntil: timePtr(now)})

		assert.True(t, promo.Evaluate(p, dec("100"), now).Valid)
	})

	t.Run("discount never exceeds the amount", func(t *testing.T) {
		amounts := []string{"0.01", "1", "4.99", "5", "5.01", "250"}
		promos := []*promo.Promo{
			newPromo(t, promoOpts{kind: "fixed", value: "5"}),
			newPromo(t, promoOpts{kind: "percentage", value: "100"}),
			newPromo(t, promoOpts{kind: "percentage", value: "33"}),
		}
		for _, p := range promos {
			for _, a := range amounts {
				r := promo.Evaluate(p, dec(a), now)
				require.True(t, r.Valid)
				assert.True(t, r.DiscountAmount.LessThanOrEqual(dec(a)), "amount %s discount %s", a, r.DiscountAmount)
				assert.False(t, r.FinalAmount(dec(a)).IsNegative())
			}
		}
	})
}

func TestReconstruct(t *testing.T) {
	t.Run("code is normalized", func(t *testing.T) {
		p, err := promo.Reconstruct("  save10 ", "percentage", dec("10"), decimal.Zero, nil, 0, nil, true)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", p.Code())
	})

	t.Run("unknown discount type", func(t *testing.T) {
		_, err := promo.Reconstruct("X", "bogo", dec("10"), decimal.Zero, nil, 0, nil, true)
		require.ErrorIs(t, err, promo.ErrInvalidDiscountType)
	})

	t.Run("NormalizeCode", func(t *testing.T) {
		assert.Equal(t, "FLAT5", promo.NormalizeCode(" flat5\t"))
	})
}
