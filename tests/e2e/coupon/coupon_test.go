//go:build e2e

package coupon_test

import (
	"fmt"
	"net/http"
	"testing"

	"dealvista/internal/handler/dto/request"
	"dealvista/internal/handler/dto/response"
	"dealvista/tests/common/authtest"
	"dealvista/tests/common/dbtest"
	"dealvista/tests/common/httptest"
	"dealvista/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	couponsURL = "/api/coupons"
	browseURL  = "/api/coupons/browse"
	pointsURL  = "/api/users/me/points"
	statsURL   = "/api/users/me/stats"
)

type CouponSuite struct {
	e2e.SharedSuite
}

func TestCouponSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(CouponSuite))
}

func newCouponRequest(code string) request.CreateCouponRequest {
	return request.CreateCouponRequest{
		Title:         "20% off electronics",
		Code:          code,
		Platform:      "Amazon",
		Category:      "Electronics",
		DiscountType:  "percentage",
		DiscountValue: 20,
		TotalQuantity: 10,
	}
}

func (s *CouponSuite) TestListCoupon() {
	s.Run("Normal case: listing a coupon pays out reward points", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", "user", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, newCouponRequest("SAVE20"), token)

		var created response.CreateCouponResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &created)
		require.NotEmpty(t, created.CouponID)
		require.Equal(t, 5, created.PointsEarned)
		require.Equal(t, 5, created.PointsBalance)

		// the reward must be visible through the points endpoint
		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, pointsURL, nil, token)
		var points response.PointsResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &points)
		require.Equal(t, 5, points.Points)

		// and the lifetime counters must track the payout
		sw := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)
		var stats response.UserStatsResponse
		httptest.AssertSuccessResponse(t, sw, http.StatusOK, &stats)
		require.EqualValues(t, 5, stats.TotalEarned)
		require.EqualValues(t, 0, stats.TotalSpent)
		require.Equal(t, 5, stats.CurrentPoints)
		require.EqualValues(t, 1, stats.CouponsAdded)

		// and the coupon must be fetchable with lister attribution
		gw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			couponsURL+"/"+created.CouponID.String(), nil, token)
		var detail response.CouponResponse
		httptest.AssertSuccessResponse(t, gw, http.StatusOK, &detail)
		require.Equal(t, "SAVE20", detail.Code)
		require.Equal(t, "Test User", detail.ListerName)
		require.True(t, detail.IsActive)
		require.Equal(t, 10, detail.TotalQuantity)
		require.Equal(t, 0, detail.SoldQuantity)
	})

	s.Run("Error case: duplicate code is rejected and pays nothing", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", "user", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, newCouponRequest("TWICE"), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		second := newCouponRequest("twice") // codes are case-insensitive
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, second, token)
		httptest.AssertErrorResponse(t, dw, http.StatusConflict, "already exists")

		pw := httptest.PerformRequest(t, s.Router, http.MethodGet, pointsURL, nil, token)
		var points response.PointsResponse
		httptest.AssertSuccessResponse(t, pw, http.StatusOK, &points)
		require.Equal(t, 5, points.Points, "failed listing must not pay out")
	})

	s.Run("Error case: unauthenticated listing is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, newCouponRequest("NOAUTH"), "")
		require.Equal(t, http.StatusUnauthorized, w.Code, w.Body.String())
	})
}

func (s *CouponSuite) TestBrowse() {
	s.Run("Normal case: filters narrow the result set", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", "user", 0)
		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		for i := range 3 {
			dbtest.CreateTestCoupon(t, s.DB, listerID, "Amazon deal", fmt.Sprintf("AMZ-%d", i), 5, 5)
		}
		inactiveID := dbtest.CreateTestCoupon(t, s.DB, listerID, "Expired deal", "GONE", 5, 5)
		dbtest.DeactivateCoupon(t, s.DB, inactiveID)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, browseURL+"?active_only=true", nil, token)
		var page response.CouponPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.EqualValues(t, 3, page.Total)
		for _, item := range page.Items {
			require.True(t, item.IsActive)
		}
	})

	s.Run("Normal case: pagination caps the page size", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "lister@example.com", "user", 0)
		listerID := dbtest.CreateTestUser(t, s.DB, "lister@example.com", "user", 0)
		for i := range 5 {
			dbtest.CreateTestCoupon(t, s.DB, listerID, "Bulk deal", fmt.Sprintf("BULK-%d", i), 5, 5)
		}

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, browseURL+"?page=2&page_size=2", nil, token)
		var page response.CouponPageResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &page)
		require.EqualValues(t, 5, page.Total)
		require.Equal(t, 2, page.Page)
		require.Len(t, page.Items, 2)
	})
}
