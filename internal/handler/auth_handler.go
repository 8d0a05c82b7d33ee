package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/middleware"
	"github.com/classboard/classboard-api/internal/models"
	"github.com/classboard/classboard-api/internal/service"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

// RememberCookieName stores the opaque remember token.
const RememberCookieName = "classboard_remember"

// AuthHandler exposes registration, login and session endpoints.
type AuthHandler struct {
	service       *service.AuthService
	secureCookies bool
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(svc *service.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{service: svc, secureCookies: secureCookies}
}

// Register godoc
// @Summary Register a teacher account
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.RegisterResponse
// @Router /teacher/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	teacher, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, models.RegisterResponse{Message: "account created", Teacher: *teacher})
}

// Login godoc
// @Summary Authenticate a teacher
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Credentials"
// @Success 200 {object} models.Session
// @Router /teacher/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	session, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, session)
	response.JSON(c, http.StatusOK, session)
}

// Session godoc
// @Summary Restore a session from the remember cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} models.Session
// @Router /teacher/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	cookie, err := c.Cookie(RememberCookieName)
	if err != nil || cookie == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrUnauthorized, "no persistent session"))
		return
	}

	session, err := h.service.Restore(c.Request.Context(), cookie)
	if err != nil {
		h.clearCookie(c, RememberCookieName)
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, session)
	response.JSON(c, http.StatusOK, session)
}

// Logout godoc
// @Summary End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} response.MessageBody
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	teacherID, _ := currentTeacherID(c)
	if cookie, err := c.Cookie(RememberCookieName); err == nil && cookie != "" {
		if err := h.service.Logout(c.Request.Context(), cookie, teacherID); err != nil {
			response.Error(c, err)
			return
		}
	}

	h.clearCookie(c, middleware.SessionCookieName)
	h.clearCookie(c, RememberCookieName)
	response.Message(c, http.StatusOK, "logged out")
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, session *models.Session) {
	c.SetCookie(middleware.SessionCookieName, session.AccessToken, int(session.ExpiresIn.Seconds()), "/", "", h.secureCookies, true)
	if session.RememberToken != "" {
		c.SetCookie(RememberCookieName, session.RememberToken, 30*24*3600, "/", "", h.secureCookies, true)
	}
}

func (h *AuthHandler) clearCookie(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", h.secureCookies, true)
}
