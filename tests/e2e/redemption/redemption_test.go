//go:build e2e

package redemption_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"dealvista/internal/domain/user"
	"dealvista/internal/handler/dto/response"
	"dealvista/tests/common/authtest"
	"dealvista/tests/common/dbtest"
	"dealvista/tests/common/httptest"
	"dealvista/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const redeemURLFmt = "/api/coupons/%s/redeem"

type RedemptionSuite struct {
	e2e.SharedSuite
}

func TestRedemptionSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(RedemptionSuite))
}

func (s *RedemptionSuite) redeem(token string, couponID uuid.UUID) *response.RedeemResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost,
		fmt.Sprintf(redeemURLFmt, couponID), nil, token)
	var res response.RedeemResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res
}

func (s *RedemptionSuite) TestRedeem() {
	s.Run("Normal case: redemption deducts points and consumes inventory", func() {
		t := s.T()

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "20% off electronics", "SAVE20", 3, 5)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", "user", 10)

		res := s.redeem(token, couponID)
		require.Equal(t, couponID, res.CouponID)
		require.Equal(t, "SAVE20", res.Code)
		require.Equal(t, 5, res.PointsDeducted)
		require.Equal(t, 5, res.PointsBalance)

		sold, active := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, 1, sold)
		require.True(t, active)
		require.Equal(t, 1, dbtest.CountRedemptions(t, s.DB, couponID))

		// the spend must show up in the buyer's lifetime counters
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, "/api/users/me/stats", nil, token)
		var stats response.UserStatsResponse
		httptest.AssertSuccessResponse(t, sw, http.StatusOK, &stats)
		require.EqualValues(t, 10, stats.TotalEarned, "seeded points count as earned")
		require.EqualValues(t, 5, stats.TotalSpent)
		require.Equal(t, 5, stats.CurrentPoints)
		require.EqualValues(t, 1, stats.CouponsRedeemed)
	})

	s.Run("Normal case: last unit deactivates the coupon", func() {
		t := s.T()

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Last one", "LAST", 1, 5)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", "user", 10)

		s.redeem(token, couponID)

		sold, active := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, 1, sold)
		require.False(t, active)
	})

	s.Run("Error case: second redemption by the same user is rejected", func() {
		t := s.T()

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Popular", "POP", 10, 5)
		buyerID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "user", 100)
		token := authtest.LoginUser(t, s.Router, "buyer@example.com", "password123")

		s.redeem(token, couponID)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(redeemURLFmt, couponID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "already redeemed")

		// the refusal must not consume inventory or points
		sold, _ := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, 1, sold)
		require.Equal(t, 95, dbtest.GetUserPoints(t, s.DB, buyerID))
	})

	s.Run("Error case: insufficient points roll back the whole redemption", func() {
		t := s.T()

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Pricey", "PRICEY", 5, 5)
		buyerID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "user", 3)
		token := authtest.LoginUser(t, s.Router, "buyer@example.com", "password123")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(redeemURLFmt, couponID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Insufficient")

		sold, active := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, 0, sold, "failed redemption must not hold inventory")
		require.True(t, active)
		require.Equal(t, 3, dbtest.GetUserPoints(t, s.DB, buyerID))
		require.Equal(t, 0, dbtest.CountRedemptions(t, s.DB, couponID))
	})

	s.Run("Error case: inactive coupon is rejected", func() {
		t := s.T()

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Paused", "PAUSED", 5, 5)
		dbtest.DeactivateCoupon(t, s.DB, couponID)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", "user", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(redeemURLFmt, couponID), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "no longer available")
	})

	s.Run("Error case: unknown coupon returns 404", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "buyer@example.com", "user", 10)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost,
			fmt.Sprintf(redeemURLFmt, uuid.New()), nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "not found")
	})
}

func (s *RedemptionSuite) TestRedeemConcurrency() {
	s.Run("Concurrency: inventory never oversells under parallel redemptions", func() {
		t := s.T()

		const buyers = 12
		const quantity = 4

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Flash sale", "FLASH", quantity, 5)

		jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
		tokens := make([]string, buyers)
		buyerIDs := make([]uuid.UUID, buyers)
		for i := range buyers {
			email := fmt.Sprintf("buyer%d@example.com", i)
			buyerIDs[i] = dbtest.CreateTestUser(t, s.DB, email, "user", 10)
			tokens[i] = jwtHelper.GenerateToken(t, buyerIDs[i], email, user.RoleUser)
		}

		var wg sync.WaitGroup
		codes := make([]int, buyers)
		for i := range buyers {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf(redeemURLFmt, couponID), nil, tokens[i])
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			switch code {
			case http.StatusOK:
				succeeded++
			case http.StatusConflict:
				// sold out
			default:
				t.Fatalf("unexpected status %d", code)
			}
		}
		require.Equal(t, quantity, succeeded, "exactly the available quantity must be sold")

		sold, active := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, quantity, sold)
		require.False(t, active)
		require.Equal(t, quantity, dbtest.CountRedemptions(t, s.DB, couponID))

		// every winner paid, every loser kept their points
		paid := 0
		for _, id := range buyerIDs {
			switch dbtest.GetUserPoints(t, s.DB, id) {
			case 5:
				paid++
			case 10:
			default:
				t.Fatalf("unexpected balance for buyer %s", id)
			}
		}
		require.Equal(t, quantity, paid)
	})

	s.Run("Concurrency: one user racing itself redeems exactly once", func() {
		t := s.T()

		const attempts = 8

		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		couponID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Big stock", "STOCK", 50, 5)
		buyerID := dbtest.CreateTestUser(t, s.DB, "buyer@example.com", "user", 100)

		jwtHelper := authtest.NewJWTHelper(s.Config.JWT)
		token := jwtHelper.GenerateToken(t, buyerID, "buyer@example.com", user.RoleUser)

		var wg sync.WaitGroup
		codes := make([]int, attempts)
		for i := range attempts {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost,
					fmt.Sprintf(redeemURLFmt, couponID), nil, token)
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			if code == http.StatusOK {
				succeeded++
			} else {
				require.Equal(t, http.StatusConflict, code)
			}
		}
		require.Equal(t, 1, succeeded)

		sold, _ := dbtest.GetCouponInventory(t, s.DB, couponID)
		require.Equal(t, 1, sold)
		require.Equal(t, 95, dbtest.GetUserPoints(t, s.DB, buyerID))
	})
}
