package api

import (
	"errors"
	"net/http"

	"dealvista/internal/domain/coupon"
	reqdto "dealvista/internal/handler/dto/request"
	resdto "dealvista/internal/handler/dto/response"
	"dealvista/internal/handler/httperr"
	"dealvista/internal/handler/middleware"
	"dealvista/internal/pkg/errs"
	"dealvista/internal/usecase/commands"
	"dealvista/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	coupons     commands.CouponCommands
	redemptions commands.RedemptionCommands
	queries     queries.CouponQueries
}

func NewCouponHandler(
	coupons commands.CouponCommands,
	redemptions commands.RedemptionCommands,
	couponQueries queries.CouponQueries,
) *CouponHandler {
	return &CouponHandler{
		coupons:     coupons,
		redemptions: redemptions,
		queries:     couponQueries,
	}
}

// @Summary List a coupon
// @Description Create a coupon listing and earn reward points
// @Tags coupons
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Coupon listing"
// @Success 201 {object} resdto.CreateCouponResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	out, err := h.coupons.ListCoupon(c.Request.Context(), req.ToInput(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrDuplicateCode):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon code already exists",
			})
		case errors.Is(err, coupon.ErrEmptyTitle),
			errors.Is(err, coupon.ErrInvalidCouponCode),
			errors.Is(err, coupon.ErrInvalidQuantity),
			errors.Is(err, coupon.ErrInvalidRedeemCost),
			errors.Is(err, coupon.ErrInvalidDiscountType):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": err.Error(),
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromListCouponOutput(out))
}

// @Summary Browse coupons
// @Description Browse coupon listings with filters and pagination
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param active_only query bool false "Only active coupons"
// @Param platform query string false "Platform filter"
// @Param category query string false "Category filter"
// @Param discount_type query string false "Discount type filter"
// @Param search query string false "Title/description search"
// @Param page query int false "Page number"
// @Param page_size query int false "Page size"
// @Success 200 {object} resdto.CouponPageResponse
// @Router /coupons/browse [get]
func (h *CouponHandler) Browse(c *gin.Context) {
	var req reqdto.BrowseCouponsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid query parameters",
		})
		return
	}

	page, err := h.queries.Browse(c.Request.Context(), req.ToFilter())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp, err := resdto.FromCouponPage(page)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Get a coupon
// @Description Get a single coupon by ID
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 404 {object} map[string]string
// @Router /coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID",
		})
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), couponID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	resp, err := resdto.FromCouponView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// @Summary Redeem a coupon
// @Description Spend reward points to redeem one unit of a coupon
// @Tags coupons
// @Security BearerAuth
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.RedeemResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /coupons/{id}/redeem [post]
func (h *CouponHandler) Redeem(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	couponID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid coupon ID",
		})
		return
	}

	out, err := h.redemptions.Redeem(c.Request.Context(), userID, couponID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrCouponNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Coupon not found",
			})
		case errors.Is(err, errs.ErrAlreadyRedeemed):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon already redeemed",
			})
		case errors.Is(err, errs.ErrCouponSoldOut):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon sold out",
			})
		case errors.Is(err, errs.ErrCouponInactive):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Coupon no longer available",
			})
		case errors.Is(err, errs.ErrInsufficientPoints):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Insufficient reward points",
			})
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromRedeemOutput(out))
}
