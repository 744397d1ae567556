//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"dealvista/internal/handler/dto/request"
	"dealvista/internal/handler/dto/response"
	"dealvista/tests/common/authtest"
	"dealvista/tests/common/httptest"
	"dealvista/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
	logsURL     = "/api/logs"
	allLogsURL  = "/api/logs/all"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestRegister() {
	s.Run("Normal case: registration returns a usable token", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		}, "")

		var auth response.AuthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &auth)
		require.NotEmpty(t, auth.AccessToken)
		require.Equal(t, "Taro Yamada", auth.FullName)
		require.Equal(t, "user", auth.Role)

		// the token must authenticate follow-up requests
		mw := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, auth.AccessToken)
		var me response.UserResponse
		httptest.AssertSuccessResponse(t, mw, http.StatusOK, &me)
		require.Equal(t, auth.UserID, me.ID)
		require.NotEmpty(t, me.ReferralCode)
		require.Equal(t, 0, me.Points)

		// registration must leave an activity trail
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, logsURL, nil, auth.AccessToken)
		var logs []response.ActivityLogResponse
		httptest.AssertSuccessResponse(t, lw, http.StatusOK, &logs)
		require.Len(t, logs, 1)
		require.Equal(t, "New user registered: Taro Yamada", logs[0].Message)
	})

	s.Run("Error case: duplicate email is rejected", func() {
		t := s.T()

		req := request.RegisterRequest{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		}
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, req, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		req.Email = "TARO@example.com" // emails are case-insensitive
		dw := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, req, "")
		httptest.AssertErrorResponse(t, dw, http.StatusConflict, "already registered")
	})

	s.Run("Error case: malformed payload is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, map[string]any{
			"full_name": "No Email",
		}, "")
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: login returns a token for a seeded user", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "seeded@example.com", "user", 0)
		require.NotEmpty(t, token)
	})

	s.Run("Normal case: login matches the email case-insensitively", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			FullName: "Taro Yamada",
			Email:    "Taro.Yamada@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		token := authtest.LoginUser(t, s.Router, "taro.yamada@EXAMPLE.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			FullName: "Taro Yamada",
			Email:    "taro@example.com",
			Password: "password123",
		}, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "taro@example.com",
			Password: "wrong-password",
		}, "")
		httptest.AssertErrorResponse(t, lw, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthSuite) TestAdminLogs() {
	s.Run("Normal case: admin can read the global activity feed", func() {
		t := s.T()

		adminToken := authtest.CreateAndLogin(t, s.DB, s.Router, "admin@example.com", "admin", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allLogsURL, nil, adminToken)
		var logs []response.ActivityLogResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &logs)
	})

	s.Run("Error case: non-admin is forbidden", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "member@example.com", "user", 0)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, allLogsURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	})
}
