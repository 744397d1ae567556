package coupon

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Coupon entity for the listing flow. The redemption inventory fields
// (soldQuantity, isActive) are deliberately absent here: after creation they
// are mutated only through the repository's atomic claim operation, never
// through entity setters.
type Coupon struct {
	id            uuid.UUID
	title         string
	description   string
	code          Code
	platform      string
	category      string
	discountType  DiscountType
	discountValue int
	validFrom     *time.Time
	validTill     *time.Time
	terms         string
	totalQuantity int
	redeemCost    int
	listedBy      uuid.UUID
}

type NewCouponInput struct {
	Title         string
	Description   string
	Code          string
	Platform      string
	Category      string
	DiscountType  string
	DiscountValue int
	ValidFrom     *time.Time
	ValidTill     *time.Time
	Terms         string
	TotalQuantity int
	RedeemCost    int
}

func NewCoupon(input NewCouponInput, listedBy uuid.UUID) (*Coupon, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, ErrEmptyTitle
	}

	code, err := NewCode(input.Code)
	if err != nil {
		return nil, err
	}

	discountType, err := NewDiscountType(input.DiscountType)
	if err != nil {
		return nil, err
	}

	if input.TotalQuantity < 1 {
		return nil, ErrInvalidQuantity
	}

	redeemCost := input.RedeemCost
	if redeemCost == 0 {
		redeemCost = DefaultRedeemCost
	}
	if redeemCost < 0 {
		return nil, ErrInvalidRedeemCost
	}

	return &Coupon{
		id:            uuid.New(),
		title:         title,
		description:   strings.TrimSpace(input.Description),
		code:          code,
		platform:      strings.TrimSpace(input.Platform),
		category:      strings.TrimSpace(input.Category),
		discountType:  discountType,
		discountValue: input.DiscountValue,
		validFrom:     input.ValidFrom,
		validTill:     input.ValidTill,
		terms:         strings.TrimSpace(input.Terms),
		totalQuantity: input.TotalQuantity,
		redeemCost:    redeemCost,
		listedBy:      listedBy,
	}, nil
}

func (c *Coupon) ID() uuid.UUID              { return c.id }
func (c *Coupon) Title() string              { return c.title }
func (c *Coupon) Description() string        { return c.description }
func (c *Coupon) Code() Code                 { return c.code }
func (c *Coupon) Platform() string           { return c.platform }
func (c *Coupon) Category() string           { return c.category }
func (c *Coupon) DiscountType() DiscountType { return c.discountType }
func (c *Coupon) DiscountValue() int         { return c.discountValue }
func (c *Coupon) ValidFrom() *time.Time      { return c.validFrom }
func (c *Coupon) ValidTill() *time.Time      { return c.validTill }
func (c *Coupon) Terms() string              { return c.terms }
func (c *Coupon) TotalQuantity() int         { return c.totalQuantity }
func (c *Coupon) RedeemCost() int            { return c.redeemCost }
func (c *Coupon) ListedBy() uuid.UUID        { return c.listedBy }
