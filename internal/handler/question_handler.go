package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/classboard/classboard-api/internal/dto"
	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/response"
)

type questionService interface {
	Submit(ctx context.Context, teacherID int64, req dto.SubmitQuestionPaperRequest) (*models.QuestionPaper, error)
	ExportPDF(ctx context.Context, teacherID, paperID int64) ([]byte, error)
}

// QuestionHandler exposes question paper endpoints.
type QuestionHandler struct {
	service questionService
}

// NewQuestionHandler constructs a question handler.
func NewQuestionHandler(svc questionService) *QuestionHandler {
	return &QuestionHandler{service: svc}
}

// Submit godoc
// @Summary Submit a question paper
// @Tags Questions
// @Accept json
// @Produce json
// @Param payload body dto.SubmitQuestionPaperRequest true "Flattened question paper"
// @Success 201 {object} dto.SubmitQuestionPaperResponse
// @Router /teacher/question-paper [post]
func (h *QuestionHandler) Submit(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req dto.SubmitQuestionPaperRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	paper, err := h.service.Submit(c.Request.Context(), teacherID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.SubmitQuestionPaperResponse{Message: "question paper created", ID: paper.ID})
}

// Export godoc
// @Summary Export a question paper as PDF
// @Tags Questions
// @Produce application/pdf
// @Param id path int true "Paper ID"
// @Success 200
// @Router /teacher/question-paper/{id}/export [get]
func (h *QuestionHandler) Export(c *gin.Context) {
	teacherID, ok := currentTeacherID(c)
	if !ok {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	id, err := parseID(c.Param("id"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid paper id"))
		return
	}

	data, err := h.service.ExportPDF(c.Request.Context(), teacherID, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="question-paper.pdf"`)
	c.Data(http.StatusOK, "application/pdf", data)
}
