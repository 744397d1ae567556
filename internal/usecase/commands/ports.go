package commands

import (
	"context"

	"dealvista/internal/domain/coupon"

	"github.com/google/uuid"
)

// Handler-facing capabilities, one interface per command service.

type AuthCommands interface {
	Register(ctx context.Context, input RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, email, plainPassword string) (*AuthOutput, error)
}

type CouponCommands interface {
	ListCoupon(ctx context.Context, input coupon.NewCouponInput, listedBy uuid.UUID) (*ListCouponOutput, error)
}

type RedemptionCommands interface {
	Redeem(ctx context.Context, userID, couponID uuid.UUID) (*RedeemOutput, error)
}
