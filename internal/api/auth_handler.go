package api

import (
	"alcyxob/student-portal/internal/config"
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves the login page and the session cookie.
type AuthHandler struct {
	*pages
	authService service.AuthService
	session     config.SessionConfig
	secure      bool
}

func NewAuthHandler(p *pages, authService service.AuthService, session config.SessionConfig, secure bool) *AuthHandler {
	return &AuthHandler{pages: p, authService: authService, session: session, secure: secure}
}

// ShowLogin godoc
// @Summary Login page
// @Description Logged-in browsers are sent on to the dashboard.
// @Tags Auth
// @Produce html
// @Router /login [get]
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if getSession(c).IsLoggedIn {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.full(c, http.StatusOK, render.PageLogin, "Login", render.LoginView{})
}

// Login godoc
// @Summary Log in
// @Description Any non-empty username and password pair is accepted.
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 303 "Redirect to the dashboard"
// @Failure 422 "Login page with inline errors"
// @Router /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var form service.LoginForm
	if err := c.ShouldBind(&form); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid login form")
		return
	}

	browserID := getSession(c).BrowserID
	token, user, err := h.authService.Login(c.Request.Context(), browserID, form)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			view := render.LoginView{Username: form.Username, Errors: map[string]string{}}
			for _, f := range verr.Fields {
				view.Errors[f.Field] = f.Error
			}
			h.full(c, http.StatusUnprocessableEntity, render.PageLogin, "Login", view)
			return
		}
		h.log.Error("login failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Could not process login")
		return
	}

	h.log.Info("user logged in", zap.String("browser_id", browserID), zap.String("user", user))
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.session.CookieName, token, int(h.session.Expiration.Seconds()), "/", "", h.secure, true)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Logout godoc
// @Summary Log out
// @Description Clears the session cookie and the login keys. The theme is kept.
// @Tags Auth
// @Success 303 "Redirect to the login page"
// @Router /logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	browserID := getSession(c).BrowserID
	if err := h.authService.Logout(c.Request.Context(), browserID); err != nil {
		h.log.Error("logout failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Could not process logout")
		return
	}
	h.alerts.Forget(browserID)

	c.SetCookie(h.session.CookieName, "", -1, "/", "", h.secure, true)
	if isHTMX(c) {
		c.Header("HX-Redirect", "/login")
		c.Status(http.StatusNoContent)
		return
	}
	c.Redirect(http.StatusSeeOther, "/login")
}
