package promo

import (
	"errors"
	"strings"
)

var ErrInvalidDiscountType = errors.New("discount type must be percentage or fixed")

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFixed      DiscountType = "fixed"
)

func ParseDiscountType(s string) (DiscountType, error) {
	switch DiscountType(s) {
	case DiscountPercentage, DiscountFixed:
		return DiscountType(s), nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (t DiscountType) String() string {
	return string(t)
}

// NormalizeCode matches the stored form: trimmed and upper-cased.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
