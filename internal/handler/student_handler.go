package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

type studentService interface {
	List(ctx context.Context, teacherID int64) ([]models.Student, error)
	ExportCSV(ctx context.Context, teacherID int64) ([]byte, error)
}

// StudentHandler exposes the read-only roster endpoints.
type StudentHandler struct {
	service studentService
}

// NewStudentHandler constructs a student handler.
func NewStudentHandler(svc studentService) *StudentHandler {
	return &StudentHandler{service: svc}
}

// List godoc
// @Summary List all students across the teacher's classes
// @Tags Students
// @Produce json
// @Success 200 {array} models.Student
// @Router /teacher/students [get]
func (h *StudentHandler) List(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	students, err := h.service.List(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, students)
}

// Export godoc
// @Summary Export the student roster as CSV
// @Tags Students
// @Produce text/csv
// @Success 200
// @Router /teacher/students/export [get]
func (h *StudentHandler) Export(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	data, err := h.service.ExportCSV(c.Request.Context(), teacherID)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="students.csv"`)
	c.Data(http.StatusOK, "text/csv", data)
}
