package api

import (
	"errors"
	"net/http"

	resdto "dealvista/internal/handler/dto/response"
	"dealvista/internal/handler/httperr"
	"dealvista/internal/handler/middleware"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users queries.UserQueries
}

func NewUserHandler(users queries.UserQueries) *UserHandler {
	return &UserHandler{users: users}
}

// @Summary Get points balance
// @Description Get the authenticated user's reward point balance
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.PointsResponse
// @Failure 404 {object} map[string]string
// @Router /users/me/points [get]
func (h *UserHandler) GetPoints(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	points, err := h.users.GetPoints(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.PointsResponse{Points: points})
}

// @Summary Get user stats
// @Description Get the authenticated user's dashboard statistics
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserStatsResponse
// @Failure 404 {object} map[string]string
// @Router /users/me/stats [get]
func (h *UserHandler) GetStats(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	stats, err := h.users.GetStats(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserStatsView(stats))
}

// @Summary List own coupons
// @Description List coupons the authenticated user has listed
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.CouponResponse
// @Router /users/me/coupons [get]
func (h *UserHandler) ListCoupons(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.users.ListListedCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	items := make([]resdto.CouponResponse, 0, len(views))
	for i := range views {
		item, err := resdto.FromCouponView(&views[i])
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		items = append(items, *item)
	}

	c.JSON(http.StatusOK, items)
}

// @Summary List redeemed coupons
// @Description List coupons the authenticated user has redeemed
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {array} resdto.RedeemedCouponResponse
// @Router /users/me/redemptions [get]
func (h *UserHandler) ListRedemptions(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.users.ListRedeemedCoupons(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	items := make([]resdto.RedeemedCouponResponse, 0, len(views))
	for i := range views {
		items = append(items, *resdto.FromRedeemedCouponView(&views[i]))
	}

	c.JSON(http.StatusOK, items)
}
