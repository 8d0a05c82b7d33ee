package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/dto"
	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/export"
)

type questionRepository interface {
	CreatePaper(ctx context.Context, paper *models.QuestionPaper, questions []models.Question) error
	FindPaper(ctx context.Context, id int64) (*models.QuestionPaper, error)
	ListQuestions(ctx context.Context, paperID int64) ([]models.Question, error)
}

type paperExporter interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// QuestionService stores submitted question papers and renders exports.
type QuestionService struct {
	repo   questionRepository
	pdf    paperExporter
	logger *zap.Logger
}

// NewQuestionService constructs a QuestionService.
func NewQuestionService(repo questionRepository, pdf paperExporter, logger *zap.Logger) *QuestionService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &QuestionService{repo: repo, pdf: pdf, logger: logger}
}

// Submit validates and persists a flattened question paper. Every question
// must carry exactly four options and a correct answer from {A,B,C,D}.
// Blank option text is accepted; see the authoring screen for the rationale.
func (s *QuestionService) Submit(ctx context.Context, teacherID int64, req dto.SubmitQuestionPaperRequest) (*models.QuestionPaper, error) {
	if len(req.Questions) == 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "question paper has no questions")
	}

	questions := make([]models.Question, 0, len(req.Questions))
	for i, input := range req.Questions {
		if len(input.Options) != 4 {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("question %d must have exactly 4 options", i+1))
		}
		if !models.ValidAnswer(input.CorrectAnswer) {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("question %d has an invalid correct answer", i+1))
		}
		questions = append(questions, models.Question{
			Section:       input.Section,
			Text:          input.Text,
			OptionA:       input.Options[0],
			OptionB:       input.Options[1],
			OptionC:       input.Options[2],
			OptionD:       input.Options[3],
			CorrectAnswer: input.CorrectAnswer,
		})
	}

	paper := &models.QuestionPaper{TeacherID: teacherID}
	if err := s.repo.CreatePaper(ctx, paper, questions); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store question paper")
	}

	s.logger.Info("question paper stored",
		zap.Int64("paper_id", paper.ID),
		zap.Int64("teacher_id", teacherID),
		zap.Int("questions", len(questions)),
	)
	return paper, nil
}

// ExportPDF renders one of the teacher's papers as a tabular PDF.
func (s *QuestionService) ExportPDF(ctx context.Context, teacherID, paperID int64) ([]byte, error) {
	paper, err := s.repo.FindPaper(ctx, paperID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "question paper not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load question paper")
	}
	if paper.TeacherID != teacherID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "question paper not found")
	}

	questions, err := s.repo.ListQuestions(ctx, paperID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load questions")
	}

	dataset := export.Dataset{
		Headers: []string{"No", "Section", "Question", "A", "B", "C", "D", "Answer"},
		Rows:    make([]map[string]string, 0, len(questions)),
	}
	for i, q := range questions {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"No":       fmt.Sprintf("%d", i+1),
			"Section":  q.Section,
			"Question": q.Text,
			"A":        q.OptionA,
			"B":        q.OptionB,
			"C":        q.OptionC,
			"D":        q.OptionD,
			"Answer":   q.CorrectAnswer,
		})
	}

	data, err := s.pdf.Render(dataset, fmt.Sprintf("Question Paper %d", paper.ID))
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render question paper export")
	}
	return data, nil
}
