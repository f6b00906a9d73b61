//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"pupperazi-api/internal/domain/user"
	"pupperazi-api/internal/handler/middleware"
	"pupperazi-api/internal/pkg/config"
	"pupperazi-api/internal/pkg/jwt"
	"pupperazi-api/internal/usecase"
	"pupperazi-api/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type AuthMiddlewareTestSuite struct {
	suite.Suite
	jwtService *jwt.Service
	router     *gin.Engine
}

func TestAuthMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareTestSuite))
}

func (s *AuthMiddlewareTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.jwtService = jwt.NewService(config.NewTestConfig().JWT)
	authMw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(s.jwtService))

	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }

	s.router = gin.New()
	staff := s.router.Group("", authMw.RequireAuth())
	staff.GET("/staff-only", ok)

	admin := staff.Group("", authMw.RequireRoleAtLeast(user.RoleAdmin))
	admin.DELETE("/admin-only", ok)
}

func (s *AuthMiddlewareTestSuite) accessToken(role user.Role) string {
	token, err := s.jwtService.GenerateAccessToken(uuid.New(), role)
	s.Require().NoError(err)
	return token
}

func (s *AuthMiddlewareTestSuite) TestRequireAuth() {
	s.Run("success: staff token passes the staff gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff-only", nil, s.accessToken(user.RoleStaff))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 401 without a token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff-only", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 with a garbage token", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff-only", nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthMiddlewareTestSuite) TestRequireRoleAtLeast() {
	s.Run("success: admin token passes the admin gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin-only", nil, s.accessToken(user.RoleAdmin))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("success: admin token also passes the staff gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/staff-only", nil, s.accessToken(user.RoleAdmin))
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 403 when a staff token hits the admin gate", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin-only", nil, s.accessToken(user.RoleStaff))
		s.Equal(http.StatusForbidden, rec.Code)
		s.Contains(rec.Body.String(), "Insufficient permissions")
	})
}
