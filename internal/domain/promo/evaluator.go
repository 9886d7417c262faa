package promo

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

const (
	MsgInvalidCode   = "Invalid promo code"
	MsgInactive      = "This promo code is no longer active"
	MsgExpired       = "This promo code has expired"
	MsgUsageExceeded = "This promo code has reached its usage limit"
)

type Result struct {
	Valid          bool
	Code           string
	DiscountAmount decimal.Decimal
	DiscountType   *DiscountType
	DiscountValue  *decimal.Decimal
	Message        string
}

func (r Result) FinalAmount(amount decimal.Decimal) decimal.Decimal {
	if !r.Valid {
		return amount
	}
	return amount.Sub(r.DiscountAmount)
}

// Evaluate checks existence, activity, expiry, usage cap and minimum purchase in that
// order and stops at the first failure. A nil promo means the code was not found.
func Evaluate(p *Promo, amount decimal.Decimal, now time.Time) Result {
	if p == nil {
		return invalid("", MsgInvalidCode)
	}
	if !p.isActive {
		return invalid(p.code, MsgInactive)
	}
	if p.Expired(now) {
		return invalid(p.code, MsgExpired)
	}
	if p.Exhausted() {
		return invalid(p.code, MsgUsageExceeded)
	}
	if amount.LessThan(p.minAmount) {
		return invalid(p.code, fmt.Sprintf("This promo code requires a minimum purchase of %s", FormatMoney(p.minAmount)))
	}

	discount := p.Discount(amount)
	dt := p.discountType
	dv := p.discountValue
	return Result{
		Valid:          true,
		Code:           p.code,
		DiscountAmount: discount,
		DiscountType:   &dt,
		DiscountValue:  &dv,
		Message:        fmt.Sprintf("Promo code applied! You saved %s", FormatMoney(discount)),
	}
}

func FormatMoney(d decimal.Decimal) string {
	return "$" + d.StringFixed(2)
}

func invalid(code, msg string) Result {
	return Result{
		Valid:          false,
		Code:           code,
		DiscountAmount: decimal.Zero,
		Message:        msg,
	}
}
