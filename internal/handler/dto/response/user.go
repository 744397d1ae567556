package response

import (
	"time"

	"dealvista/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ReferralCode string    `json:"referral_code"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	return &UserResponse{
		ID:           v.ID,
		FullName:     v.FullName,
		Email:        v.Email,
		Role:         v.Role,
		ReferralCode: v.ReferralCode,
		Points:       v.Points,
		CreatedAt:    v.CreatedAt,
	}
}

type PointsResponse struct {
	Points int `json:"points"`
}

type UserStatsResponse struct {
	CouponsAdded    int64 `json:"coupons_added"`
	CouponsRedeemed int64 `json:"coupons_redeemed"`
	CurrentPoints   int   `json:"current_points"`
	TotalEarned     int64 `json:"total_earned"`
	TotalSpent      int64 `json:"total_spent"`
}

func FromUserStatsView(v *queries.UserStatsView) *UserStatsResponse {
	return &UserStatsResponse{
		CouponsAdded:    v.CouponsAdded,
		CouponsRedeemed: v.CouponsRedeemed,
		CurrentPoints:   v.CurrentPoints,
		TotalEarned:     v.TotalEarned,
		TotalSpent:      v.TotalSpent,
	}
}

type RedeemedCouponResponse struct {
	RedemptionID   uuid.UUID `json:"redemption_id"`
	CouponID       uuid.UUID `json:"coupon_id"`
	Title          string    `json:"title"`
	Code           string    `json:"code"`
	Platform       string    `json:"platform"`
	Category       string    `json:"category"`
	DiscountType   string    `json:"discount_type"`
	DiscountValue  int       `json:"discount_value"`
	PointsDeducted int       `json:"points_deducted"`
	RedeemedAt     time.Time `json:"redeemed_at"`
}

func FromRedeemedCouponView(v *queries.RedeemedCouponView) *RedeemedCouponResponse {
	return &RedeemedCouponResponse{
		RedemptionID:   v.RedemptionID,
		CouponID:       v.CouponID,
		Title:          v.Title,
		Code:           v.Code,
		Platform:       v.Platform,
		Category:       v.Category,
		DiscountType:   v.DiscountType,
		DiscountValue:  v.DiscountValue,
		PointsDeducted: v.PointsDeducted,
		RedeemedAt:     v.RedeemedAt,
	}
}
