package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
	"github.com/classboard/classboard-api/pkg/export"
)

type rosterExporter interface {
	Render(data export.Dataset) ([]byte, error)
}

// StudentService exposes the read-only student roster.
type StudentService struct {
	repo   studentReader
	csv    rosterExporter
	logger *zap.Logger
}

// NewStudentService constructs a StudentService.
func NewStudentService(repo studentReader, csv rosterExporter, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, csv: csv, logger: logger}
}

// List returns every student across the teacher's classes.
func (s *StudentService) List(ctx context.Context, teacherID int64) ([]models.Student, error) {
	students, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}
	return students, nil
}

// ExportCSV renders the roster as a CSV document.
func (s *StudentService) ExportCSV(ctx context.Context, teacherID int64) ([]byte, error) {
	students, err := s.List(ctx, teacherID)
	if err != nil {
		return nil, err
	}

	dataset := export.Dataset{
		Headers: []string{"ID", "Name", "Email", "Age", "Average Score", "Class ID"},
		Rows:    make([]map[string]string, 0, len(students)),
	}
	for _, student := range students {
		dataset.Rows = append(dataset.Rows, map[string]string{
			"ID":            fmt.Sprintf("%d", student.ID),
			"Name":          student.Name,
			"Email":         student.Email,
			"Age":           fmt.Sprintf("%d", student.Age),
			"Average Score": fmt.Sprintf("%.2f", student.AverageScore),
			"Class ID":      fmt.Sprintf("%d", student.ClassID),
		})
	}

	data, err := s.csv.Render(dataset)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render roster export")
	}
	return data, nil
}
