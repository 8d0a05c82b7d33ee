package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/models"
	"github.com/classboard/classboard-api/internal/service"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

type profileService interface {
	Get(ctx context.Context, teacherID int64) (*models.Teacher, error)
	Update(ctx context.Context, teacherID int64, req service.UpdateProfileRequest) (*models.Teacher, error)
	UploadAvatar(ctx context.Context, teacherID int64, filename string, size int64, file io.Reader) (*models.Teacher, error)
}

// ProfileHandler exposes the authenticated teacher's profile endpoints.
type ProfileHandler struct {
	service   profileService
	dashboard dashboardInvalidator
}

// NewProfileHandler constructs a profile handler.
func NewProfileHandler(svc profileService, dashboard dashboardInvalidator) *ProfileHandler {
	return &ProfileHandler{service: svc, dashboard: dashboard}
}

// Get godoc
// @Summary Get the teacher profile
// @Tags Profile
// @Produce json
// @Success 200 {object} models.Teacher
// @Router /teacher/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	teacher, err := h.service.Get(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Update godoc
// @Summary Update the teacher profile
// @Tags Profile
// @Accept json
// @Produce json
// @Param payload body service.UpdateProfileRequest true "Profile patch"
// @Success 200 {object} models.Teacher
// @Router /teacher/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	teacher, err := h.service.Update(c.Request.Context(), teacherID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context(), teacherID)
	}
	response.JSON(c, http.StatusOK, teacher)
}

// Upload godoc
// @Summary Upload a profile picture
// @Tags Profile
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.Teacher
// @Router /teacher/profile/upload [put]
func (h *ProfileHandler) Upload(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "file is required"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to read uploaded file"))
		return
	}
	defer file.Close() //nolint:errcheck

	teacher, err := h.service.UploadAvatar(c.Request.Context(), teacherID, fileHeader.Filename, fileHeader.Size, file)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context(), teacherID)
	}
	response.JSON(c, http.StatusOK, teacher)
}
