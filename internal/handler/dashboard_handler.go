package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/dto"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

type dashboardService interface {
	Overview(ctx context.Context, teacherID int64) (*dto.DashboardResponse, bool, error)
}

// DashboardHandler serves the composed teacher dashboard.
type DashboardHandler struct {
	service dashboardService
}

// NewDashboardHandler constructs a dashboard handler.
func NewDashboardHandler(svc dashboardService) *DashboardHandler {
	return &DashboardHandler{service: svc}
}

// Overview godoc
// @Summary Teacher dashboard overview
// @Tags Dashboard
// @Produce json
// @Success 200 {object} dto.DashboardResponse
// @Router /teacher/dashboard [get]
func (h *DashboardHandler) Overview(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	overview, cacheHit, err := h.service.Overview(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	if cacheHit {
		c.Header("X-Cache", "hit")
	}
	response.JSON(c, http.StatusOK, overview)
}
