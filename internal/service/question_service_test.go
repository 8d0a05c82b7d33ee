package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/dto"
	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/export"
)

type mockQuestionRepo struct {
	papers    map[int64]*models.QuestionPaper
	questions map[int64][]models.Question
	nextID    int64
	createErr error
}

func (m *mockQuestionRepo) CreatePaper(ctx context.Context, paper *models.QuestionPaper, questions []models.Question) error {
	if m.createErr != nil {
		return m.createErr
	}
	if m.papers == nil {
		m.papers = make(map[int64]*models.QuestionPaper)
		m.questions = make(map[int64][]models.Question)
	}
	m.nextID++
	paper.ID = m.nextID
	cp := *paper
	m.papers[paper.ID] = &cp
	for i := range questions {
		questions[i].PaperID = paper.ID
		questions[i].Position = i + 1
	}
	m.questions[paper.ID] = questions
	return nil
}

func (m *mockQuestionRepo) FindPaper(ctx context.Context, id int64) (*models.QuestionPaper, error) {
	if paper, ok := m.papers[id]; ok {
		cp := *paper
		return &cp, nil
	}
	return nil, sql.ErrNoRows
}

func (m *mockQuestionRepo) ListQuestions(ctx context.Context, paperID int64) ([]models.Question, error) {
	return m.questions[paperID], nil
}

type mockPDFExporter struct {
	rendered *export.Dataset
	title    string
}

func (m *mockPDFExporter) Render(data export.Dataset, title string) ([]byte, error) {
	m.rendered = &data
	m.title = title
	return []byte("%PDF-fake"), nil
}

func validSubmission() dto.SubmitQuestionPaperRequest {
	return dto.SubmitQuestionPaperRequest{Questions: []dto.QuestionInput{
		{Text: "What is 2+2?", Options: []string{"3", "4", "5", "6"}, CorrectAnswer: "B", Section: "Basic"},
		{Text: "Integrate x", Options: []string{"x", "x^2/2", "1", "0"}, CorrectAnswer: "B", Section: "Hard"},
	}}
}

func TestQuestionServiceSubmit(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := NewQuestionService(repo, &mockPDFExporter{}, zap.NewNop())

	paper, err := svc.Submit(context.Background(), 5, validSubmission())
	require.NoError(t, err)
	assert.Equal(t, int64(1), paper.ID)
	assert.Equal(t, int64(5), paper.TeacherID)

	stored := repo.questions[paper.ID]
	require.Len(t, stored, 2)
	assert.Equal(t, 1, stored[0].Position)
	assert.Equal(t, 2, stored[1].Position)
	assert.Equal(t, "Basic", stored[0].Section)
	assert.Equal(t, "x^2/2", stored[1].OptionB)
}

func TestQuestionServiceSubmitAllowsBlankOptionText(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := NewQuestionService(repo, &mockPDFExporter{}, zap.NewNop())

	req := dto.SubmitQuestionPaperRequest{Questions: []dto.QuestionInput{
		{Text: "", Options: []string{"", "", "", ""}, CorrectAnswer: "A", Section: "Basic"},
	}}
	_, err := svc.Submit(context.Background(), 5, req)
	require.NoError(t, err)
}

func TestQuestionServiceSubmitEmptyPaper(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{}, &mockPDFExporter{}, zap.NewNop())

	_, err := svc.Submit(context.Background(), 5, dto.SubmitQuestionPaperRequest{})
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Status, appErr.Status)
}

func TestQuestionServiceSubmitWrongOptionCount(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{}, &mockPDFExporter{}, zap.NewNop())

	req := dto.SubmitQuestionPaperRequest{Questions: []dto.QuestionInput{
		{Text: "q", Options: []string{"a", "b"}, CorrectAnswer: "A", Section: "Basic"},
	}}
	_, err := svc.Submit(context.Background(), 5, req)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "question 1 must have exactly 4 options", appErr.Message)
}

func TestQuestionServiceSubmitInvalidAnswerKey(t *testing.T) {
	svc := NewQuestionService(&mockQuestionRepo{}, &mockPDFExporter{}, zap.NewNop())

	req := dto.SubmitQuestionPaperRequest{Questions: []dto.QuestionInput{
		{Text: "q", Options: []string{"a", "b", "c", "d"}, CorrectAnswer: "E", Section: "Basic"},
	}}
	_, err := svc.Submit(context.Background(), 5, req)
	require.Error(t, err)
}

func TestQuestionServiceExportPDF(t *testing.T) {
	repo := &mockQuestionRepo{}
	pdf := &mockPDFExporter{}
	svc := NewQuestionService(repo, pdf, zap.NewNop())

	paper, err := svc.Submit(context.Background(), 5, validSubmission())
	require.NoError(t, err)

	data, err := svc.ExportPDF(context.Background(), 5, paper.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	require.NotNil(t, pdf.rendered)
	assert.Equal(t, "Question Paper 1", pdf.title)
	require.Len(t, pdf.rendered.Rows, 2)
	assert.Equal(t, "1", pdf.rendered.Rows[0]["No"])
	assert.Equal(t, "B", pdf.rendered.Rows[0]["Answer"])
}

func TestQuestionServiceExportForeignPaperIsNotFound(t *testing.T) {
	repo := &mockQuestionRepo{}
	svc := NewQuestionService(repo, &mockPDFExporter{}, zap.NewNop())

	paper, err := svc.Submit(context.Background(), 5, validSubmission())
	require.NoError(t, err)

	_, err = svc.ExportPDF(context.Background(), 6, paper.ID)
	require.Error(t, err)

	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrNotFound.Status, appErr.Status)
}
