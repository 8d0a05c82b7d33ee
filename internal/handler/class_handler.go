package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/models"
	"github.com/classboard/classboard-api/internal/service"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

type classService interface {
	Get(ctx context.Context, teacherID, id int64) (*models.Class, error)
	Create(ctx context.Context, teacherID int64, req service.CreateClassRequest) (*models.Class, error)
	Delete(ctx context.Context, teacherID, id int64) error
}

type dashboardInvalidator interface {
	Invalidate(ctx context.Context, teacherID int64)
}

// ClassHandler exposes class CRUD endpoints.
type ClassHandler struct {
	service   classService
	dashboard dashboardInvalidator
}

// NewClassHandler constructs a class handler.
func NewClassHandler(svc classService, dashboard dashboardInvalidator) *ClassHandler {
	return &ClassHandler{service: svc, dashboard: dashboard}
}

// Get godoc
// @Summary Get class detail
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} models.Class
// @Router /teacher/class/{id} [get]
func (h *ClassHandler) Get(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid class id"))
		return
	}

	class, err := h.service.Get(c.Request.Context(), teacherID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, class)
}

// Create godoc
// @Summary Create class
// @Tags Classes
// @Accept json
// @Produce json
// @Param payload body service.CreateClassRequest true "Class payload"
// @Success 201 {object} models.Class
// @Router /teacher/class [post]
func (h *ClassHandler) Create(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req service.CreateClassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	class, err := h.service.Create(c.Request.Context(), teacherID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context(), teacherID)
	}
	response.Created(c, class)
}

// Delete godoc
// @Summary Delete class
// @Tags Classes
// @Produce json
// @Param id path int true "Class ID"
// @Success 200 {object} response.MessageBody
// @Router /teacher/class/{id} [delete]
func (h *ClassHandler) Delete(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid class id"))
		return
	}

	if err := h.service.Delete(c.Request.Context(), teacherID, id); err != nil {
		response.Error(c, err)
		return
	}

	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context(), teacherID)
	}
	response.Message(c, http.StatusOK, "class deleted")
}

func parseID(raw string) (int64, error) {
	return strconv.ParseInt(raw, 10, 64)
}
