package api

import (
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type CourseHandler struct {
	*pages
	courseService service.CourseService
}

func NewCourseHandler(p *pages, courseService service.CourseService) *CourseHandler {
	return &CourseHandler{pages: p, courseService: courseService}
}

// List godoc
// @Summary Courses page, or the course list fragment for htmx requests
// @Tags Courses
// @Produce html
// @Param filter query string false "all, active or completed"
// @Param q query string false "Search over title, code, instructor and description"
// @Failure 400 {object} gin.H "Unknown filter"
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	q, err := service.ParseCourseQuery(c.Query("filter"), c.Query("q"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	courses, err := h.courseService.List(c.Request.Context(), q)
	if err != nil {
		h.log.Error("listing courses failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve courses")
		return
	}

	if isHTMX(c) {
		h.fragment(c, http.StatusOK, func(w io.Writer) error {
			return h.renderer.RenderCourses(w, courses)
		})
		return
	}
	h.full(c, http.StatusOK, render.PageCourses, "Courses", render.NewCoursesView(q, courses))
}
