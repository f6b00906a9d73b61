package api

import (
	"errors"
	"net/http"

	reqdto "pupperazi-api/internal/handler/dto/request"
	resdto "pupperazi-api/internal/handler/dto/response"
	"pupperazi-api/internal/handler/middleware"
	"pupperazi-api/internal/pkg/config"
	"pupperazi-api/internal/pkg/cookie"
	"pupperazi-api/internal/usecase/commands"
	"pupperazi-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	cmds      commands.AuthCommands
	userQs    queries.UserQueries
	jwtCfg    config.JWTConfig
	cookieCfg config.CookieConfig
}

func NewAuthHandler(cmds commands.AuthCommands, userQs queries.UserQueries, jwtCfg config.JWTConfig, cookieCfg config.CookieConfig) *AuthHandler {
	return &AuthHandler{
		cmds:      cmds,
		userQs:    userQs,
		jwtCfg:    jwtCfg,
		cookieCfg: cookieCfg,
	}
}

// @Summary Staff login
// @Description Login with email and password, sets token cookies
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	result, err := h.cmds.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid email or password",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		result.TokenPair.AccessToken, result.TokenPair.RefreshToken,
		h.jwtCfg.AccessDuration, h.jwtCfg.RefreshDuration)

	user, err := h.userQs.GetCurrentUser(c.Request.Context(), result.UserID)
	if err != nil {
		c.JSON(http.StatusOK, resdto.LoginResponse{
			AccessToken: result.TokenPair.AccessToken,
		})
		return
	}

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.TokenPair.AccessToken,
		User:        resdto.FromUserView(user),
	})
}

// @Summary Refresh tokens
// @Description Exchange the refresh cookie for a new token pair
// @Tags auth
// @Produce json
// @Success 200 {object} resdto.LoginResponse
// @Failure 401 {object} map[string]string
// @Router /auth/refresh [post]
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken := cookie.GetRefreshToken(c)
	if refreshToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Refresh token required",
		})
		return
	}

	pair, err := h.cmds.RefreshToken(c.Request.Context(), refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		case errors.Is(err, commands.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired refresh token",
			})
		}
		return
	}

	cookie.SetTokenCookies(c, h.cookieCfg,
		pair.AccessToken, pair.RefreshToken,
		h.jwtCfg.AccessDuration, h.jwtCfg.RefreshDuration)

	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: pair.AccessToken,
	})
}

// @Summary Logout
// @Description Clear token cookies for the current session
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearTokenCookies(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get the authenticated dashboard account
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	user, err := h.userQs.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		case errors.Is(err, queries.ErrUserInactive):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Account is inactive",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(user))
}
