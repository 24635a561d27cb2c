package api

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PreferenceHandler struct {
	*pages
}

func NewPreferenceHandler(p *pages) *PreferenceHandler {
	return &PreferenceHandler{pages: p}
}

type ThemeRequest struct {
	Theme domain.Theme `json:"theme" form:"theme" binding:"required"`
}

// ToggleTheme godoc
// @Summary Switch between light and dark
// @Description htmx requests get the new toggle button and a page refresh;
// @Description plain form posts are redirected back.
// @Tags Preferences
// @Produce html
// @Router /theme/toggle [post]
func (h *PreferenceHandler) ToggleTheme(c *gin.Context) {
	theme, err := h.prefs.ToggleTheme(c.Request.Context(), getSession(c).BrowserID, prefersDark(c))
	if err != nil {
		h.log.Error("toggling theme failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to toggle theme")
		return
	}

	if !isHTMX(c) {
		back := c.GetHeader("Referer")
		if back == "" {
			back = "/dashboard"
		}
		c.Redirect(http.StatusSeeOther, back)
		return
	}
	c.Header("HX-Refresh", "true")
	h.fragment(c, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderThemeToggle(w, theme)
	})
}

// SetTheme godoc
// @Summary Save an explicit theme
// @Tags Preferences
// @Accept json
// @Param theme body ThemeRequest true "light or dark"
// @Success 200 {object} ThemeRequest
// @Failure 400 {object} gin.H "Missing or unknown theme"
// @Router /theme [put]
func (h *PreferenceHandler) SetTheme(c *gin.Context) {
	var req ThemeRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	if err := h.prefs.SetTheme(c.Request.Context(), getSession(c).BrowserID, req.Theme); err != nil {
		if errors.Is(err, service.ErrInvalidTheme) {
			abortWithError(c, http.StatusBadRequest, err.Error())
			return
		}
		h.log.Error("saving theme failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to save theme")
		return
	}
	c.JSON(http.StatusOK, req)
}
