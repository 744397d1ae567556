package coupon

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidCouponCode   = errors.New("invalid coupon code format")
	ErrEmptyTitle          = errors.New("coupon title cannot be empty")
	ErrInvalidQuantity     = errors.New("total quantity must be at least 1")
	ErrInvalidRedeemCost   = errors.New("redeem cost must be positive")
	ErrInvalidDiscountType = errors.New("invalid discount type")
)

// DefaultRedeemCost applies when a listing does not set an explicit cost.
const DefaultRedeemCost = 5

var couponCodeRegex = regexp.MustCompile(`^[A-Z0-9\-]{3,30}$`)

type Code string

// NewCode normalizes case so that uniqueness is case-insensitive end to end.
func NewCode(code string) (Code, error) {
	code = strings.TrimSpace(strings.ToUpper(code))
	if !couponCodeRegex.MatchString(code) {
		return Code(""), ErrInvalidCouponCode
	}
	return Code(code), nil
}

func (c Code) String() string {
	return string(c)
}

type DiscountType string

const (
	DiscountPercentage DiscountType = "percentage"
	DiscountFlat       DiscountType = "flat"
)

func NewDiscountType(s string) (DiscountType, error) {
	dt := DiscountType(strings.ToLower(strings.TrimSpace(s)))
	switch dt {
	case DiscountPercentage, DiscountFlat:
		return dt, nil
	default:
		return "", ErrInvalidDiscountType
	}
}

func (d DiscountType) String() string {
	return string(d)
}
