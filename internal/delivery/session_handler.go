package delivery

import (
	"net/http"

	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type SessionHandler struct {
	auth *usecase.AuthSession
	log  *logrus.Logger
}

func NewSessionHandler(auth *usecase.AuthSession, logger *logrus.Logger) *SessionHandler {
	return &SessionHandler{
		auth: auth,
		log:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *SessionHandler) RegisterRoutes(router gin.IRouter) {
	session := router.Group("/session")
	{
		session.GET("", h.CurrentUser)
		session.POST("/login", h.Login)
		session.POST("/logout", h.Logout)
	}
}

// CurrentUser answers with Data null when nobody is logged in.
func (h *SessionHandler) CurrentUser(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Session retrieved successfully", h.auth.CurrentUser())
}

func (h *SessionHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warnf("Failed to bind JSON for login: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if !h.auth.Login(req.Email, req.Password) {
		ErrorResponse(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	SuccessResponse(c, http.StatusOK, "Logged in successfully", h.auth.CurrentUser())
}

func (h *SessionHandler) Logout(c *gin.Context) {
	h.auth.Logout()
	SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}
