package request

import (
	"time"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/usecase/queries"
)

type CreateCouponRequest struct {
	Title         string     `json:"title" binding:"required"`
	Description   string     `json:"description"`
	Code          string     `json:"code" binding:"required"`
	Platform      string     `json:"platform"`
	Category      string     `json:"category"`
	DiscountType  string     `json:"discount_type" binding:"required"`
	DiscountValue int        `json:"discount_value" binding:"required,gt=0"`
	ValidFrom     *time.Time `json:"valid_from,omitempty"`
	ValidTill     *time.Time `json:"valid_till,omitempty"`
	Terms         string     `json:"terms"`
	TotalQuantity int        `json:"total_quantity" binding:"required,gte=1"`
	RedeemCost    int        `json:"redeem_cost" binding:"gte=0"`
}

func (r CreateCouponRequest) ToInput() coupon.NewCouponInput {
	return coupon.NewCouponInput{
		Title:         r.Title,
		Description:   r.Description,
		Code:          r.Code,
		Platform:      r.Platform,
		Category:      r.Category,
		DiscountType:  r.DiscountType,
		DiscountValue: r.DiscountValue,
		ValidFrom:     r.ValidFrom,
		ValidTill:     r.ValidTill,
		Terms:         r.Terms,
		TotalQuantity: r.TotalQuantity,
		RedeemCost:    r.RedeemCost,
	}
}

type BrowseCouponsRequest struct {
	ActiveOnly   bool   `form:"active_only"`
	Platform     string `form:"platform"`
	Category     string `form:"category"`
	DiscountType string `form:"discount_type"`
	Search       string `form:"search"`
	Page         int    `form:"page"`
	PageSize     int    `form:"page_size"`
}

func (r BrowseCouponsRequest) ToFilter() queries.CouponFilter {
	return queries.CouponFilter{
		ActiveOnly:   r.ActiveOnly,
		Platform:     r.Platform,
		Category:     r.Category,
		DiscountType: r.DiscountType,
		Search:       r.Search,
		Page:         r.Page,
		PageSize:     r.PageSize,
	}
}
