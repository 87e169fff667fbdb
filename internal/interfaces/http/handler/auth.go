package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appidentity "github.com/univendor/backend/internal/application/identity"
	"github.com/univendor/backend/internal/infrastructure/config"
	"github.com/univendor/backend/internal/interfaces/http/middleware"
)

// AuthHandler handles passwordless login, sessions and registration
type AuthHandler struct {
	BaseHandler
	authService *appidentity.AuthService
	sessionCfg  *config.SessionConfig
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *appidentity.AuthService, sessionCfg *config.SessionConfig) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessionCfg:  sessionCfg,
	}
}

// SendOtp emails a one-time login code. The response never reveals
// whether an account exists for the address.
func (h *AuthHandler) SendOtp(c *gin.Context) {
	var req appidentity.RequestCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.authService.RequestCode(c.Request.Context(), req); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "If the email is valid, a login code has been sent"})
}

// VerifyOtp redeems a login code. Known accounts get a session cookie;
// unknown emails are told to register.
func (h *AuthHandler) VerifyOtp(c *gin.Context) {
	var req appidentity.VerifyCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, sessionID, err := h.authService.VerifyCode(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if sessionID != "" {
		h.setSessionCookie(c, sessionID)
	}
	h.Success(c, resp)
}

// Register creates a buyer account after code verification and starts a session
func (h *AuthHandler) Register(c *gin.Context) {
	var req appidentity.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	user, sessionID, err := h.authService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.setSessionCookie(c, sessionID)
	h.Created(c, user)
}

// Logout destroys the caller's session
func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID, ok := middleware.GetSessionID(c)
	if ok {
		if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
			h.HandleError(c, err)
			return
		}
	}

	h.clearSessionCookie(c)
	h.Success(c, gin.H{"message": "Logged out"})
}

// Me returns the authenticated caller, including any impersonation overlay
func (h *AuthHandler) Me(c *gin.Context) {
	principal, err := getPrincipal(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	h.Success(c, appidentity.ToAuthStateResponse(principal))
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, sessionID string) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(
		h.sessionCfg.CookieName,
		sessionID,
		int(h.sessionCfg.TTL.Seconds()),
		h.sessionCfg.CookiePath,
		h.sessionCfg.CookieDomain,
		h.sessionCfg.Secure,
		true,
	)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(h.sameSite())
	c.SetCookie(
		h.sessionCfg.CookieName,
		"",
		-1,
		h.sessionCfg.CookiePath,
		h.sessionCfg.CookieDomain,
		h.sessionCfg.Secure,
		true,
	)
}

func (h *AuthHandler) sameSite() http.SameSite {
	switch h.sessionCfg.SameSite {
	case "strict":
		return http.SameSiteStrictMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteLaxMode
	}
}
