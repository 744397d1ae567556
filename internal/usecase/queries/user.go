package queries

import (
	"context"

	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"

	"github.com/google/uuid"
)

type UserQueryService struct {
	users       UserReadStore
	coupons     CouponReadStore
	redemptions RedemptionReadStore
}

func NewUserQueryService(users UserReadStore, coupons CouponReadStore, redemptions RedemptionReadStore) *UserQueryService {
	return &UserQueryService{users: users, coupons: coupons, redemptions: redemptions}
}

func (s *UserQueryService) GetProfile(ctx context.Context, userID uuid.UUID) (*UserView, error) {
	v, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, markUserReadErr(err)
	}
	return v, nil
}

func (s *UserQueryService) GetPoints(ctx context.Context, userID uuid.UUID) (int, error) {
	points, err := s.users.GetPoints(ctx, userID)
	if err != nil {
		return 0, markUserReadErr(err)
	}
	return points, nil
}

func (s *UserQueryService) GetStats(ctx context.Context, userID uuid.UUID) (*UserStatsView, error) {
	v, err := s.users.GetStats(ctx, userID)
	if err != nil {
		return nil, markUserReadErr(err)
	}
	return v, nil
}

func (s *UserQueryService) ListListedCoupons(ctx context.Context, userID uuid.UUID) ([]CouponView, error) {
	items, err := s.coupons.ListByLister(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func (s *UserQueryService) ListRedeemedCoupons(ctx context.Context, userID uuid.UUID) ([]RedeemedCouponView, error) {
	items, err := s.redemptions.ListByUser(ctx, userID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return items, nil
}

func markUserReadErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.Mark(err, errs.ErrUserNotFound)
	}
	return errs.Mark(err, errs.ErrDatabaseOperationFailed)
}
