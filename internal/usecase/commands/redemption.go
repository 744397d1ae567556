package commands

import (
	"context"
	"errors"
	"fmt"

	"dealvista/internal/infra"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedeemOutput struct {
	RedemptionID   uuid.UUID
	CouponID       uuid.UUID
	Title          string
	Code           string
	PointsDeducted int
	PointsBalance  int
}

type RedemptionCommandService struct {
	uow shared.UnitOfWork
}

func NewRedemptionCommandService(uow shared.UnitOfWork) *RedemptionCommandService {
	return &RedemptionCommandService{uow: uow}
}

// Redeem runs the whole redemption in one transaction:
//
//  1. claim the (user, coupon) pair, so a user can redeem a coupon once
//  2. consume one unit of inventory
//  3. debit the redeem cost from the balance
//  4. finalize the redemption with the deducted amount
//  5. append the audit entry
//
// Any failure aborts the transaction, which undoes the earlier steps. The
// uniqueness claim comes first so a duplicate redemption never touches
// inventory or the balance.
func (s *RedemptionCommandService) Redeem(ctx context.Context, userID, couponID uuid.UUID) (*RedeemOutput, error) {
	var out RedeemOutput
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		redemptionID, err := tx.Redemptions().ClaimIfAbsent(ctx, userID, couponID)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyRedeemed)
			}
			return err
		}

		claimed, err := tx.Coupons().ClaimUnit(ctx, couponID)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrCouponNotFound)
			case infra.IsKind(err, infra.KindInactive):
				return errs.Mark(err, errs.ErrCouponInactive)
			case infra.IsKind(err, infra.KindSoldOut):
				return errs.Mark(err, errs.ErrCouponSoldOut)
			}
			return err
		}

		balance, err := tx.Users().Debit(ctx, userID, claimed.RedeemCost)
		if err != nil {
			switch {
			case infra.IsKind(err, infra.KindInsufficient):
				return errs.Mark(err, errs.ErrInsufficientPoints)
			case infra.IsKind(err, infra.KindNotFound):
				return errs.Mark(err, errs.ErrUserNotFound)
			}
			return err
		}

		if err := tx.Redemptions().Finalize(ctx, redemptionID, claimed.RedeemCost); err != nil {
			return err
		}

		if err := tx.ActivityLogs().Append(ctx, &userID,
			fmt.Sprintf("Redeemed coupon: %s (%d points)", claimed.Title, claimed.RedeemCost)); err != nil {
			return err
		}

		out = RedeemOutput{
			RedemptionID:   redemptionID,
			CouponID:       couponID,
			Title:          claimed.Title,
			Code:           claimed.Code,
			PointsDeducted: claimed.RedeemCost,
			PointsBalance:  balance,
		}
		return nil
	})
	if err != nil {
		if isRedeemSentinel(err) {
			return nil, err
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	return &out, nil
}

func isRedeemSentinel(err error) bool {
	for _, sentinel := range []error{
		errs.ErrAlreadyRedeemed,
		errs.ErrCouponNotFound,
		errs.ErrCouponInactive,
		errs.ErrCouponSoldOut,
		errs.ErrInsufficientPoints,
		errs.ErrUserNotFound,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
