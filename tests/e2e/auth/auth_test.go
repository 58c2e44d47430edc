//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"airtime/internal/domain/user"
	"airtime/internal/handler/dto/response"
	"airtime/internal/usecase/queries"
	"airtime/tests/common/authtest"
	"airtime/tests/common/builder"
	"airtime/tests/common/dbtest"
	"airtime/tests/common/httptest"
	"airtime/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	signupURL  = "/api/auth/signup"
	loginURL   = "/api/auth/login"
	refreshURL = "/api/auth/refresh"
	logoutURL  = "/api/auth/logout"
	meURL      = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

// =============================================================================
// TestSignup - Account registration API tests
// =============================================================================

func (s *AuthSuite) TestSignup() {
	s.Run("Normal case: New account registered successfully", func() {
		t := s.T()

		reqBody := builder.NewSignupBuilder().WithEmail("fresh@example.com").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.SignupResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.UserID)

		// New account can log in immediately
		token := authtest.LoginUser(t, s.Router, "fresh@example.com", "password123")
		require.NotEmpty(t, token)
	})

	s.Run("Error case: Duplicate email fails with 409", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "taken@example.com", string(user.RoleUser))

		reqBody := builder.NewSignupBuilder().WithEmail("taken@example.com").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusConflict, w.Code, "Duplicate email should conflict")
	})

	s.Run("Error case: Invalid role fails validation", func() {
		t := s.T()

		reqBody := builder.NewSignupBuilder().WithRole("superuser").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, signupURL, reqBody, "")
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

// =============================================================================
// TestLogin - Login API tests
// =============================================================================

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: Login sets token cookies and returns the user", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

		reqBody := builder.NewAuthBuilder().WithEmail("login@example.com").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res response.LoginResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res.AccessToken)
		require.Equal(t, "login@example.com", res.User.Email)

		access := httptest.ExtractCookie(w, "access_token")
		require.NotNil(t, access)
		refresh := httptest.ExtractCookie(w, "refresh_token")
		require.NotNil(t, refresh)
	})

	s.Run("Error case: Wrong password fails with 401", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "login@example.com", string(user.RoleUser))

		reqBody := builder.NewAuthBuilder().WithEmail("login@example.com").WithPassword("wrongpassword").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: Unknown email fails with 401", func() {
		t := s.T()

		reqBody := builder.NewAuthBuilder().WithEmail("nobody@example.com").BuildDTO()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestRefresh - Token refresh API tests
// =============================================================================

func (s *AuthSuite) TestRefresh() {
	s.Run("Normal case: Refresh with cookie issues a new access token", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "refresh@example.com", string(user.RoleUser))

		reqBody := builder.NewAuthBuilder().WithEmail("refresh@example.com").BuildDTO()
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, lw.Code)

		cookies := httptest.ExtractCookies(lw)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodPost, refreshURL, nil, cookies, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var res map[string]string
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &res))
		require.NotEmpty(t, res["access_token"])
	})

	s.Run("Error case: Refresh without token fails with 401", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, refreshURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

// =============================================================================
// TestMe / TestLogout - Session API tests
// =============================================================================

func (s *AuthSuite) TestMe() {
	s.Run("Normal case: Authenticated user profile returned", func() {
		t := s.T()

		token := authtest.CreateAndLogin(t, s.DB, s.Router, "me@example.com", string(user.RoleStation))

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var me queries.AuthorizedUserView
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &me))
		require.Equal(t, "me@example.com", me.Email)
		require.Equal(t, string(user.RoleStation), me.Role)
		require.True(t, me.IsActive)
	})

	s.Run("Auth test - Unauthorized when not logged in", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, meURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *AuthSuite) TestLogout() {
	s.Run("Normal case: Logout clears session cookies", func() {
		t := s.T()

		dbtest.CreateTestUser(t, s.DB, "bye@example.com", string(user.RoleUser))

		reqBody := builder.NewAuthBuilder().WithEmail("bye@example.com").BuildDTO()
		lw := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, reqBody, "")
		require.Equal(t, http.StatusOK, lw.Code)

		cookies := httptest.ExtractCookies(lw)
		authtest.LogoutUser(t, s.Router, cookies)
	})
}
