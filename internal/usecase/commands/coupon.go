package commands

import (
	"context"
	"fmt"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/shared"

	"github.com/google/uuid"
)

// ListingRewardPoints is credited to a user for every coupon they list.
const ListingRewardPoints = 5

type ListCouponOutput struct {
	CouponID      uuid.UUID
	PointsEarned  int
	PointsBalance int
}

type CouponCommandService struct {
	uow shared.UnitOfWork
}

func NewCouponCommandService(uow shared.UnitOfWork) *CouponCommandService {
	return &CouponCommandService{uow: uow}
}

// ListCoupon creates the listing, credits the reward and writes the audit
// entries in one transaction. Either everything lands or nothing does.
func (s *CouponCommandService) ListCoupon(ctx context.Context, input coupon.NewCouponInput, listedBy uuid.UUID) (*ListCouponOutput, error) {
	c, err := coupon.NewCoupon(input, listedBy)
	if err != nil {
		return nil, err
	}

	var out ListCouponOutput
	err = s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		couponID, err := tx.Coupons().Create(ctx, c)
		if err != nil {
			return err
		}

		balance, err := tx.Users().Credit(ctx, listedBy, ListingRewardPoints)
		if err != nil {
			return err
		}

		if err := tx.ActivityLogs().Append(ctx, &listedBy,
			fmt.Sprintf("Listed coupon: %s", c.Title())); err != nil {
			return err
		}
		if err := tx.ActivityLogs().Append(ctx, &listedBy,
			fmt.Sprintf("Earned %d reward points (Balance: %d)", ListingRewardPoints, balance)); err != nil {
			return err
		}

		out = ListCouponOutput{
			CouponID:      couponID,
			PointsEarned:  ListingRewardPoints,
			PointsBalance: balance,
		}
		return nil
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindDuplicateKey):
			return nil, errs.Mark(err, errs.ErrDuplicateCode)
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, errs.ErrUserNotFound)
		default:
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}

	return &out, nil
}
