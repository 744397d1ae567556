//go:build unit

package commands_test

import (
	"context"
	"testing"

	"dealvista/internal/domain/coupon"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCouponInput() coupon.NewCouponInput {
	return coupon.NewCouponInput{
		Title:         "Free shipping",
		Code:          "SHIP-FREE",
		DiscountType:  "flat",
		DiscountValue: 100,
		TotalQuantity: 5,
	}
}

func TestListCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("basic success case", func(t *testing.T) {
		state := newFakeState()
		listerID := seedUser(state, 0)
		svc := commands.NewCouponCommandService(&fakeUoW{state: state})

		out, err := svc.ListCoupon(ctx, validCouponInput(), listerID)
		require.NoError(t, err)

		assert.Equal(t, commands.ListingRewardPoints, out.PointsEarned)
		assert.Equal(t, commands.ListingRewardPoints, out.PointsBalance)
		assert.Equal(t, commands.ListingRewardPoints, state.users[listerID].points)

		c, ok := state.coupons[out.CouponID]
		require.True(t, ok)
		assert.Equal(t, "SHIP-FREE", c.code)
		assert.Equal(t, coupon.DefaultRedeemCost, c.redeemCost)
		assert.True(t, c.isActive)

		require.Len(t, state.logs, 2)
		assert.Equal(t, "Listed coupon: Free shipping", state.logs[0])
		assert.Equal(t, "Earned 5 reward points (Balance: 5)", state.logs[1])
	})

	t.Run("reward accumulates across listings", func(t *testing.T) {
		state := newFakeState()
		listerID := seedUser(state, 0)
		svc := commands.NewCouponCommandService(&fakeUoW{state: state})

		first := validCouponInput()
		_, err := svc.ListCoupon(ctx, first, listerID)
		require.NoError(t, err)

		second := validCouponInput()
		second.Code = "SHIP-FREE-2"
		out, err := svc.ListCoupon(ctx, second, listerID)
		require.NoError(t, err)

		assert.Equal(t, 2*commands.ListingRewardPoints, out.PointsBalance)
	})

	t.Run("duplicate code rolls back the reward", func(t *testing.T) {
		state := newFakeState()
		listerID := seedUser(state, 0)
		svc := commands.NewCouponCommandService(&fakeUoW{state: state})

		_, err := svc.ListCoupon(ctx, validCouponInput(), listerID)
		require.NoError(t, err)

		_, err = svc.ListCoupon(ctx, validCouponInput(), listerID)
		assert.ErrorIs(t, err, errs.ErrDuplicateCode)

		// failed listing must not pay out
		assert.Equal(t, commands.ListingRewardPoints, state.users[listerID].points)
		assert.Len(t, state.coupons, 1)
		assert.Len(t, state.logs, 2)
	})

	t.Run("invalid input never reaches storage", func(t *testing.T) {
		state := newFakeState()
		listerID := seedUser(state, 0)
		svc := commands.NewCouponCommandService(&fakeUoW{state: state})

		input := validCouponInput()
		input.TotalQuantity = 0

		_, err := svc.ListCoupon(ctx, input, listerID)
		assert.ErrorIs(t, err, coupon.ErrInvalidQuantity)
		assert.Empty(t, state.coupons)
		assert.Equal(t, 0, state.users[listerID].points)
	})
}
