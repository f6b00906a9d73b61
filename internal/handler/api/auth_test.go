//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"pupperazi-api/internal/handler/api"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/pkg/config"
	"pupperazi-api/internal/pkg/cookie"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"
	"pupperazi-api/tests/common/builder"
	"pupperazi-api/tests/common/httptest"
	"pupperazi-api/tests/common/testutil"
	commandsmock "pupperazi-api/tests/mock/commands"
	queriesmock "pupperazi-api/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAuthCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.AuthHandler
}

func (s *AuthHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAuthCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	cfg := config.NewTestConfig()
	s.handler = api.NewAuthHandler(s.mockCommands, s.mockQueries, cfg.JWT, cfg.Cookie)

	s.router.POST("/auth/login", s.handler.Login)
	s.router.POST("/auth/refresh", s.handler.Refresh)
	s.router.POST("/auth/logout", s.handler.Logout)
	s.router.GET("/auth/me", func(c *gin.Context) {
		// Mock middleware behavior for /auth/me
		if authHeader := c.GetHeader("Authorization"); authHeader != "" {
			c.Set("user_id", uuid.New())
		}
		s.handler.Me(c)
	})
}

func (s *AuthHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) TestLogin() {
	url := "/auth/login"

	reqBody := builder.NewAuthBuilder().BuildDTO()
	returnUser := builder.NewUserBuilder().BuildReadModel()
	expectedToken := "test-jwt-token"
	expectedRefresh := "test-refresh-token"

	s.Run("success: returns 200 OK and sets token cookies", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(&commands.LoginResult{
				UserID:    returnUser.ID,
				TokenPair: &commands.TokenPair{AccessToken: expectedToken, RefreshToken: expectedRefresh},
			}, nil).Times(1)
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), returnUser.ID).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(expectedToken, response.AccessToken)
		s.Equal(returnUser.Email, response.User.Email)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Equal(expectedToken, access.Value)
		refresh := httptest.ExtractCookie(rec, cookie.RefreshTokenCookieName)
		s.Require().NotNil(refresh)
		s.Equal(expectedRefresh, refresh.Value)
	})

	s.Run("error: 400 Bad Request on malformed payload", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing email", mutate: testutil.Field("email", nil)},
			{name: "invalid email", mutate: testutil.Field("email", "nope")},
			{name: "short password", mutate: testutil.Field("password", "short")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "")
				s.Equal(http.StatusBadRequest, rec.Code)
			})
		}
	})

	s.Run("error: 401 Unauthorized for bad credentials", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrInvalidCredentials).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 403 Forbidden for inactive account", func() {
		s.mockCommands.EXPECT().Login(gomock.Any(), reqBody).
			Return(nil, commands.ErrUserInactive).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestRefresh() {
	url := "/auth/refresh"

	s.Run("success: rotates the pair from a refresh cookie", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "old-refresh").
			Return(&commands.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh"}, nil).Times(1)

		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "old-refresh"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")

		var response resdto.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("new-access", response.AccessToken)
	})

	s.Run("error: 401 without a refresh cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 401 for rejected refresh token", func() {
		s.mockCommands.EXPECT().RefreshToken(gomock.Any(), "stale").
			Return(nil, commands.ErrInvalidCredentials).Times(1)
		cookies := []*http.Cookie{{Name: cookie.RefreshTokenCookieName, Value: "stale"}}
		rec := httptest.PerformRequestWithCookies(s.T(), s.router, http.MethodPost, url, nil, cookies, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})
}

func (s *AuthHandlerTestSuite) TestLogout() {
	s.Run("success: returns 204 and clears cookies", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/auth/logout", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)

		access := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(access)
		s.Empty(access.Value)
	})
}

func (s *AuthHandlerTestSuite) TestMe() {
	returnUser := builder.NewUserBuilder().BuildReadModel()

	s.Run("success: returns the current account", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(returnUser, nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(returnUser.Email, response.Email)
	})

	s.Run("error: 401 without authentication context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "")
		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: 404 for vanished account", func() {
		s.mockQueries.EXPECT().GetCurrentUser(gomock.Any(), gomock.Any()).
			Return(nil, queries.ErrUserNotFound).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/auth/me", nil, "bearer-token")
		s.Equal(http.StatusNotFound, rec.Code)
	})
}
