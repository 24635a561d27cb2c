package api

import (
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	*pages
	dashboardService service.DashboardService
}

func NewDashboardHandler(p *pages, dashboardService service.DashboardService) *DashboardHandler {
	return &DashboardHandler{pages: p, dashboardService: dashboardService}
}

// Show godoc
// @Summary Dashboard page
// @Tags Dashboard
// @Produce html
// @Router /dashboard [get]
func (h *DashboardHandler) Show(c *gin.Context) {
	d, err := h.dashboardService.Load(c.Request.Context(), getSession(c))
	if err != nil {
		h.log.Error("loading dashboard failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to load dashboard")
		return
	}
	h.full(c, http.StatusOK, render.PageDashboard, "Dashboard", d)
}
