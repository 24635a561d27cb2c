package api

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/service"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Constants for context keys
const (
	ContextBrowserIDKey = "browserID"
	ContextSessionKey   = "session"
)

const (
	// BrowserCookie holds the id under which a browser's preferences live.
	BrowserCookie    = "portal_browser"
	browserCookieTTL = 365 * 24 * time.Hour

	prefersColorSchemeHeader = "Sec-CH-Prefers-Color-Scheme"
)

// BrowserMiddleware makes sure every request carries a browser id, issuing
// one on the first visit. It also asks the browser for its colour scheme.
func BrowserMiddleware(secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Accept-CH", prefersColorSchemeHeader)

		browserID, err := c.Cookie(BrowserCookie)
		if err == nil {
			_, err = uuid.Parse(browserID)
		}
		if err != nil {
			browserID = uuid.NewString()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(BrowserCookie, browserID, int(browserCookieTTL.Seconds()), "/", "", secure, true)
		}
		c.Set(ContextBrowserIDKey, browserID)
		c.Next()
	}
}

// SessionMiddleware resolves the session cookie into a domain.Session.
// It never rejects a request; RequireLogin does that.
func SessionMiddleware(authService service.AuthService, cookieName string, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		browserID := c.GetString(ContextBrowserIDKey)
		token, _ := c.Cookie(cookieName)

		session, err := authService.Resolve(c.Request.Context(), browserID, token)
		if err != nil {
			log.Error("resolving session failed", zap.String("browser_id", browserID), zap.Error(err))
			abortWithError(c, http.StatusInternalServerError, "Failed to resolve session")
			return
		}
		c.Set(ContextSessionKey, session)
		c.Next()
	}
}

// RequireLogin sends logged-out visitors to the login page. htmx requests
// get an HX-Redirect instead of a 303 so the whole page navigates.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if getSession(c).IsLoggedIn {
			c.Next()
			return
		}
		if isHTMX(c) {
			c.Header("HX-Redirect", "/login")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}
		c.Redirect(http.StatusSeeOther, "/login")
		c.Abort()
	}
}

// Helper to return JSON error response and abort request
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"error": message})
}

// getSession returns the resolved session, or a logged-out one.
func getSession(c *gin.Context) domain.Session {
	if raw, ok := c.Get(ContextSessionKey); ok {
		if session, ok := raw.(domain.Session); ok {
			return session
		}
	}
	return domain.Session{BrowserID: c.GetString(ContextBrowserIDKey)}
}

func isHTMX(c *gin.Context) bool {
	return c.GetHeader("HX-Request") == "true"
}

func prefersDark(c *gin.Context) bool {
	return c.GetHeader(prefersColorSchemeHeader) == "dark"
}
