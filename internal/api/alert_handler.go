package api

import (
	"alcyxob/student-portal/internal/domain"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

type AlertHandler struct {
	*pages
}

func NewAlertHandler(p *pages) *AlertHandler {
	return &AlertHandler{pages: p}
}

// List godoc
// @Summary Hand over and forget the pending alerts of this browser
// @Description Alerts are HTML by default, JSON when asked for.
// @Tags Alerts
// @Produce html,json
// @Router /alerts [get]
func (h *AlertHandler) List(c *gin.Context) {
	alerts := h.alerts.Drain(getSession(c).BrowserID)

	if c.NegotiateFormat(gin.MIMEHTML, gin.MIMEJSON) == gin.MIMEJSON {
		if alerts == nil {
			alerts = []domain.Alert{}
		}
		c.JSON(http.StatusOK, alerts)
		return
	}
	h.fragment(c, http.StatusOK, func(w io.Writer) error {
		return h.renderer.RenderAlerts(w, alerts)
	})
}

// Dismiss godoc
// @Summary Drop an alert
// @Description Answers with an empty body so htmx removes the alert node.
// @Tags Alerts
// @Param id path string true "Alert ID"
// @Router /alerts/{id} [delete]
func (h *AlertHandler) Dismiss(c *gin.Context) {
	h.alerts.Dismiss(getSession(c).BrowserID, c.Param("id"))
	c.Data(http.StatusOK, "text/html; charset=utf-8", nil)
}
