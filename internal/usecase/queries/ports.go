package queries

import (
	"context"

	"github.com/google/uuid"
)

// Handler-facing capabilities, one interface per query service.

type UserQueries interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error)
	GetPoints(ctx context.Context, userID uuid.UUID) (int, error)
	GetStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error)
	ListListedCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error)
	ListRedeemedCoupons(ctx context.Context, userID uuid.UUID) ([]RedeemedCouponView, error)
}

type CouponQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*CouponView, error)
	Browse(ctx context.Context, filter CouponFilter) (*CouponPage, error)
}

type ActivityQueries interface {
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]ActivityLogView, error)
	ListAll(ctx context.Context, limit, offset int) ([]ActivityLogView, error)
}
