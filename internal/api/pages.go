package api

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"bytes"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// pages builds the shell shared by every full page and writes fragments.
type pages struct {
	renderer    *render.Renderer
	prefs       service.PreferenceService
	assignments service.AssignmentService
	alerts      *service.AlertQueue
	log         *zap.Logger
}

// full renders a complete page. Pending alerts are handed over with it.
func (p *pages) full(c *gin.Context, code int, name, title string, content interface{}) {
	ctx := c.Request.Context()
	session := getSession(c)

	theme, err := p.prefs.Theme(ctx, session.BrowserID, prefersDark(c))
	if err != nil {
		p.log.Warn("reading theme failed", zap.Error(err))
	}

	page := render.Page{
		Title:   title,
		Active:  name,
		Theme:   theme,
		Alerts:  p.alerts.Drain(session.BrowserID),
		Content: content,
	}
	if session.IsLoggedIn {
		page.User = session.CurrentUser
		if page.PendingCount, err = p.assignments.PendingCount(ctx); err != nil {
			p.log.Warn("counting pending assignments failed", zap.Error(err))
		}
	}
	c.HTML(code, name, page)
}

// fragment renders into a buffer and sends it as HTML.
func (p *pages) fragment(c *gin.Context, code int, write func(w io.Writer) error) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		p.log.Error("rendering fragment failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to render response")
		return
	}
	c.Data(code, "text/html; charset=utf-8", buf.Bytes())
}

// withBadge appends the out-of-band sidebar badge so it tracks every
// change to the assignment list.
func (p *pages) withBadge(c *gin.Context, write func(w io.Writer) error) func(w io.Writer) error {
	return func(w io.Writer) error {
		if err := write(w); err != nil {
			return err
		}
		n, err := p.assignments.PendingCount(c.Request.Context())
		if err != nil {
			return err
		}
		return p.renderer.RenderBadge(w, n)
	}
}

// alert queues a notification for the current browser.
func (p *pages) alert(c *gin.Context, message string, typ domain.AlertType) {
	p.alerts.Notify(getSession(c).BrowserID, message, typ, 0)
}
