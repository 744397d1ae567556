package api

import (
	"net/http"
	"strconv"

	resdto "dealvista/internal/handler/dto/response"
	"dealvista/internal/handler/httperr"
	"dealvista/internal/handler/middleware"
	"dealvista/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	logs queries.ActivityQueries
}

func NewActivityHandler(logs queries.ActivityQueries) *ActivityHandler {
	return &ActivityHandler{logs: logs}
}

// @Summary Get own activity
// @Description List the authenticated user's recent activity entries
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries"
// @Success 200 {array} resdto.ActivityLogResponse
// @Router /logs [get]
func (h *ActivityHandler) ListOwn(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	limit, _ := strconv.Atoi(c.Query("limit"))

	views, err := h.logs.ListForUser(c.Request.Context(), userID, limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityLogViews(views))
}

// @Summary Get all activity
// @Description List activity entries across all users (admin only)
// @Tags logs
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Max entries"
// @Param offset query int false "Offset"
// @Success 200 {array} resdto.ActivityLogResponse
// @Failure 403 {object} map[string]string
// @Router /logs/all [get]
func (h *ActivityHandler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	offset, _ := strconv.Atoi(c.Query("offset"))

	views, err := h.logs.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromActivityLogViews(views))
}
