package handlers

import (
	"news-portal-cms/helper"
	"news-portal-cms/logger"
	"news-portal-cms/models"
	"news-portal-cms/services"
	"news-portal-cms/session"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      &helper.HTTPHelper{},
	}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, "Username and password are required", h.Helper.EmptyJsonMap())
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		logger.Warningf("failed login attempt for %q", req.Username)
		h.Helper.SendServiceError(c, err)
		return
	}

	if err := session.SetLoginUser(c, &response.User); err != nil {
		logger.Errorf("failed to save session: %v", err)
		h.Helper.SendServiceError(c, err)
		return
	}

	logger.Infof("user %q logged in", response.User.Username)
	h.Helper.SendSuccess(c, "Login success", response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	if err := session.ClearSession(c); err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Logged out", h.Helper.EmptyJsonMap())
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "Not authenticated", h.Helper.EmptyJsonMap())
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendServiceError(c, err)
		return
	}

	h.Helper.SendSuccess(c, "Profile loaded", gin.H{"user": user})
}
