package shared

import (
	"context"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/domain/user"

	"github.com/google/uuid"
)

// UserRepository owns the point balance. Credit and Debit are atomic
// conditional updates and return the balance after the change; Debit fails
// with KindInsufficient instead of ever driving the balance negative.
type UserRepository interface {
	Create(ctx context.Context, u *user.User) (uuid.UUID, error)
	Credit(ctx context.Context, userID uuid.UUID, amount int) (int, error)
	Debit(ctx context.Context, userID uuid.UUID, amount int) (int, error)
}

// ClaimedUnit is what a successful inventory claim yields.
type ClaimedUnit struct {
	Title      string
	Code       string
	RedeemCost int
	Remaining  int // units left after this claim
}

// CouponRepository owns coupon rows and their inventory counters. ClaimUnit
// consumes exactly one unit or fails with KindInactive / KindSoldOut /
// KindNotFound; it never oversells.
type CouponRepository interface {
	Create(ctx context.Context, c *coupon.Coupon) (uuid.UUID, error)
	ClaimUnit(ctx context.Context, couponID uuid.UUID) (ClaimedUnit, error)
}

// RedemptionRepository enforces the one-redemption-per-user-per-coupon rule.
// ClaimIfAbsent inserts a pending row or fails with KindDuplicateKey when the
// pair already exists.
type RedemptionRepository interface {
	ClaimIfAbsent(ctx context.Context, userID, couponID uuid.UUID) (uuid.UUID, error)
	Finalize(ctx context.Context, redemptionID uuid.UUID, pointsDeducted int) error
}

// ActivityLogRepository appends audit entries. userID is nil for
// system-generated entries.
type ActivityLogRepository interface {
	Append(ctx context.Context, userID *uuid.UUID, message string) error
}
