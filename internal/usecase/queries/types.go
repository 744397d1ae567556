package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type CouponView struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Code          string     `json:"code"`
	Platform      string     `json:"platform"`
	Category      string     `json:"category"`
	DiscountType  string     `json:"discount_type"`
	DiscountValue int        `json:"discount_value"`
	ValidFrom     *time.Time `json:"valid_from"`
	ValidTill     *time.Time `json:"valid_till"`
	Terms         string     `json:"terms"`
	TotalQuantity int        `json:"total_quantity"`
	SoldQuantity  int        `json:"sold_quantity"`
	IsActive      bool       `json:"is_active"`
	RedeemCost    int        `json:"redeem_cost"`
	ListedBy      uuid.UUID  `json:"listed_by"`
	ListerName    string     `json:"lister_name"`
	CreatedAt     time.Time  `json:"created_at"`
}

type CouponFilter struct {
	ActiveOnly   bool
	Platform     string
	Category     string
	DiscountType string
	Search       string
	Page         int
	PageSize     int
}

type CouponPage struct {
	Items    []CouponView `json:"items"`
	Total    int64        `json:"total"`
	Page     int          `json:"page"`
	PageSize int          `json:"page_size"`
}

type UserView struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"full_name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	ReferralCode string    `json:"referral_code"`
	Points       int       `json:"points"`
	CreatedAt    time.Time `json:"created_at"`
}

// CredentialView carries the password hash and never leaves the usecase layer.
type CredentialView struct {
	ID           uuid.UUID
	FullName     string
	Email        string
	Role         string
	PasswordHash string
}

type UserStatsView struct {
	CouponsAdded    int64 `json:"coupons_added"`
	CouponsRedeemed int64 `json:"coupons_redeemed"`
	CurrentPoints   int   `json:"current_points"`
	TotalEarned     int64 `json:"total_earned"`
	TotalSpent      int64 `json:"total_spent"`
}

type RedeemedCouponView struct {
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

type ActivityLogView struct {
	ID        uuid.UUID  `json:"id"`
	UserID    *uuid.UUID `json:"user_id"`
	Message   string     `json:"message"`
	CreatedAt time.Time  `json:"created_at"`
}

type AdminView struct {
	ID       uuid.UUID
	FullName string
	Email    string
}

type DailyCounts struct {
	NewUsers    int64
	NewCoupons  int64
	Redemptions int64
}

type UserReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*UserView, error)
	FindCredentialsByEmail(ctx context.Context, email string) (*CredentialView, error)
	GetPoints(ctx context.Context, id uuid.UUID) (int, error)
	GetStats(ctx context.Context, id uuid.UUID) (*UserStatsView, error)
	ListAdmins(ctx context.Context) ([]AdminView, error)
}

type CouponReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	Search(ctx context.Context, filter CouponFilter) (*CouponPage, error)
	ListByLister(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
}

type RedemptionReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID) ([]RedeemedCouponView, error)
}

type ActivityReadStore interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]ActivityLogView, error)
	ListAll(ctx context.Context, limit, offset int) ([]ActivityLogView, error)
}

type ReportReadStore interface {
	DailyCounts(ctx context.Context, from, to time.Time) (*DailyCounts, error)
}
