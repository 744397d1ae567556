//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"

	"dealvista/internal/handler/dto/request"
	"dealvista/internal/handler/dto/response"
	"dealvista/tests/common/dbtest"
	"dealvista/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func LoginUser(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/auth/login",
		request.LoginRequest{Email: email, Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var auth response.AuthResponse
	err := httptest.DecodeResponseBody(t, w.Body, &auth)
	require.NoError(t, err)
	require.NotEmpty(t, auth.AccessToken, "Access token missing from login response")

	return auth.AccessToken
}

func CreateAndLogin(t *testing.T, db dbtest.DBLike, router *gin.Engine, email, role string, points int) string {
	t.Helper()
	dbtest.CreateTestUser(t, db, email, role, points)
	return LoginUser(t, router, email, "password123")
}
