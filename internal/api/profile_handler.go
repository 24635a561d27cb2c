package api

import (
	"alcyxob/student-portal/internal/domain"
	"alcyxob/student-portal/internal/render"
	"alcyxob/student-portal/internal/service"
	"alcyxob/student-portal/internal/storage"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ProfileHandler struct {
	*pages
	profileService service.ProfileService
	avatars        *storage.AvatarResolver
}

func NewProfileHandler(p *pages, profileService service.ProfileService, avatars *storage.AvatarResolver) *ProfileHandler {
	return &ProfileHandler{pages: p, profileService: profileService, avatars: avatars}
}

func (h *ProfileHandler) view(c *gin.Context, form service.ProfileForm, errs map[string]string) render.ProfileView {
	p := form.Profile
	return render.ProfileView{
		Form:      form,
		AvatarURL: h.avatars.AvatarURL(c.Request.Context(), p.Avatar, p.FullName),
		Errors:    errs,
	}
}

func (h *ProfileHandler) respond(c *gin.Context, code int, form service.ProfileForm, errs map[string]string) {
	h.fragment(c, code, func(w io.Writer) error {
		return h.renderer.RenderProfile(w, h.view(c, form, errs))
	})
}

func (h *ProfileHandler) failed(c *gin.Context, op string, err error) {
	h.log.Error("profile "+op+" failed", zap.Error(err))
	abortWithError(c, http.StatusInternalServerError, "Failed to "+op+" profile")
}

// Show godoc
// @Summary Profile page
// @Tags Profile
// @Produce html
// @Router /profile [get]
func (h *ProfileHandler) Show(c *gin.Context) {
	form, err := h.profileService.Get(c.Request.Context())
	if err != nil {
		h.failed(c, "load", err)
		return
	}
	h.full(c, http.StatusOK, render.PageProfile, "Profile", h.view(c, form, nil))
}

// Edit godoc
// @Summary Switch the profile form to edit mode
// @Tags Profile
// @Produce html
// @Router /profile/edit [post]
func (h *ProfileHandler) Edit(c *gin.Context) {
	form, err := h.profileService.BeginEdit(c.Request.Context())
	if err != nil {
		h.failed(c, "edit", err)
		return
	}
	h.respond(c, http.StatusOK, form, nil)
}

// Cancel godoc
// @Summary Drop unsaved edits and restore the last saved profile
// @Tags Profile
// @Produce html
// @Router /profile/cancel [post]
func (h *ProfileHandler) Cancel(c *gin.Context) {
	form, err := h.profileService.Cancel(c.Request.Context(), getSession(c).BrowserID)
	if err != nil {
		h.failed(c, "cancel", err)
		return
	}
	h.respond(c, http.StatusOK, form, nil)
}

// Draft godoc
// @Summary Keep what is being typed while the form is in edit mode
// @Tags Profile
// @Accept x-www-form-urlencoded
// @Success 204 "Draft stored"
// @Failure 409 {object} gin.H "Profile is not in edit mode"
// @Router /profile/draft [post]
func (h *ProfileHandler) Draft(c *gin.Context) {
	var draft domain.Profile
	if err := c.ShouldBind(&draft); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid profile form")
		return
	}

	if _, err := h.profileService.UpdateDraft(c.Request.Context(), draft); err != nil {
		if errors.Is(err, service.ErrNotEditing) {
			abortWithError(c, http.StatusConflict, err.Error())
			return
		}
		h.failed(c, "update", err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Save godoc
// @Summary Validate and store the profile
// @Tags Profile
// @Accept x-www-form-urlencoded
// @Produce html
// @Success 200 "Profile form in view mode"
// @Failure 422 "Profile form in edit mode with inline errors"
// @Router /profile [post]
func (h *ProfileHandler) Save(c *gin.Context) {
	var fields domain.Profile
	if err := c.ShouldBind(&fields); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid profile form")
		return
	}

	form, err := h.profileService.Save(c.Request.Context(), getSession(c).BrowserID, fields)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			errs := make(map[string]string, len(verr.Fields))
			for _, f := range verr.Fields {
				errs[f.Field] = f.Error
			}
			h.respond(c, http.StatusUnprocessableEntity, form, errs)
			return
		}
		h.failed(c, "save", err)
		return
	}
	h.respond(c, http.StatusOK, form, nil)
}
