package api

import (
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/repository"
	"alcyxob/student-portal/internal/service"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AssignmentHandler struct {
	*pages
	assignmentService service.AssignmentService
}

func NewAssignmentHandler(p *pages, assignmentService service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{pages: p, assignmentService: assignmentService}
}

// List godoc
// @Summary Assignments page, or the list fragment for htmx requests
// @Tags Assignments
// @Produce html
// @Param filter query string false "all, pending, submitted or late"
// @Param sort query string false "dueDate, course or status"
// @Param course query int false "Only assignments of this course"
// @Failure 400 {object} gin.H "Unknown filter, sort key or course id"
// @Router /assignments [get]
func (h *AssignmentHandler) List(c *gin.Context) {
	courseID := 0
	if raw := c.Query("course"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id < 0 {
			abortWithError(c, http.StatusBadRequest, "Invalid course ID format")
			return
		}
		courseID = id
	}

	q, err := service.ParseAssignmentQuery(c.Query("filter"), c.Query("sort"), courseID)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.assignmentService.List(c.Request.Context(), q)
	if err != nil {
		h.log.Error("listing assignments failed", zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignments")
		return
	}

	if isHTMX(c) {
		h.fragment(c, http.StatusOK, h.withBadge(c, func(w io.Writer) error {
			return h.renderer.RenderAssignments(w, page.Items)
		}))
		return
	}
	h.full(c, http.StatusOK, render.PageAssignments, "Assignments", render.NewAssignmentsView(page))
}

// Get godoc
// @Summary One assignment item, used to patch the list after a submission
// @Tags Assignments
// @Produce html
// @Param id path int true "Assignment ID"
// @Failure 404 {object} gin.H "Unknown assignment"
// @Router /assignments/{id} [get]
func (h *AssignmentHandler) Get(c *gin.Context) {
	id, ok := assignmentID(c)
	if !ok {
		return
	}

	view, err := h.assignmentService.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			abortWithError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		h.log.Error("loading assignment failed", zap.Int("assignment_id", id), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve assignment")
		return
	}

	h.fragment(c, http.StatusOK, h.withBadge(c, func(w io.Writer) error {
		return h.renderer.RenderAssignment(w, *view)
	}))
}

// Submit godoc
// @Summary Start a simulated submission
// @Description Answers at once with the item in its Submitting state. The
// @Description item turns Submitted after the configured delay.
// @Tags Assignments
// @Produce html
// @Param id path int true "Assignment ID"
// @Success 202 "Item fragment"
// @Success 204 "Unknown or not pending assignment, nothing happened"
// @Router /assignments/{id}/submit [post]
func (h *AssignmentHandler) Submit(c *gin.Context) {
	id, ok := assignmentID(c)
	if !ok {
		return
	}

	view, found, err := h.assignmentService.Submit(c.Request.Context(), getSession(c).BrowserID, id)
	if err != nil {
		h.log.Error("submitting assignment failed", zap.Int("assignment_id", id), zap.Error(err))
		abortWithError(c, http.StatusInternalServerError, "Failed to submit assignment")
		return
	}
	if !found {
		h.log.Debug("submit ignored", zap.Int("assignment_id", id))
		c.Status(http.StatusNoContent)
		return
	}

	h.fragment(c, http.StatusAccepted, func(w io.Writer) error {
		return h.renderer.RenderAssignment(w, *view)
	})
}

func assignmentID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid assignment ID format")
		return 0, false
	}
	return id, true
}
