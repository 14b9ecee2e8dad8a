package handler

import (
	"net/http"

	"github.com/khaild19/10AI/internal/config"
	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/middleware"
	"github.com/khaild19/10AI/internal/model"
	"github.com/khaild19/10AI/internal/utils"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Register(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.authUC.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		WriteServiceError(c, err, "registration failed, please try again later")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusCreated, gin.H{
		"message": "account created",
		"user":    userPayload(user),
		"token":   token,
	})
}

func (h *Handler) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, token, err := h.authUC.LoginUser(req.Username, req.Password)
	if err != nil {
		WriteServiceError(c, err, "login failed, please try again later")
		return
	}

	setTokenCookie(c, token)
	c.JSON(http.StatusOK, gin.H{
		"message": "logged in",
		"user":    userPayload(user),
		"token":   token,
	})
}

// Logout clears the cookie and drops the cached account status so the next
// login reads it fresh.
func (h *Handler) Logout(c *gin.Context) {
	if value, ok := c.Get(consts.ContextUserID); ok {
		if uid, ok := value.(uint); ok {
			middleware.ClearUserStatusCache(uid)
		}
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.TokenCookieName, "", -1, "/", "", secureCookies(), true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// CurrentUser answers {"user": null} rather than 401 for anonymous callers.
func (h *Handler) CurrentUser(c *gin.Context) {
	value, exists := c.Get(consts.ContextUserID)
	uid, ok := value.(uint)
	if !exists || !ok {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}

	user, err := h.authUC.CurrentUser(uid)
	if err != nil {
		WriteServiceError(c, err, "failed to load user")
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userPayload(user)})
}

func userPayload(u *model.User) gin.H {
	return gin.H{
		"id":          u.ID,
		"username":    u.Username,
		"email":       u.Email,
		"is_verified": u.IsVerified,
		"is_active":   u.IsActive,
		"created_at":  u.CreatedAt,
	}
}

func setTokenCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(consts.TokenCookieName, token, int(utils.LoginTokenTTL().Seconds()), "/", "", secureCookies(), true)
}

func secureCookies() bool {
	return config.Get().Server.Mode == "release"
}
