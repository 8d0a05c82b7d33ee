package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/models"
	appErrors "github.com/classboard/classboard-api/pkg/errors"
)

type classRepository interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Class, error)
	FindByID(ctx context.Context, id int64) (*models.Class, error)
	Create(ctx context.Context, class *models.Class) error
	Delete(ctx context.Context, id int64) error
}

type studentReader interface {
	ListByTeacher(ctx context.Context, teacherID int64) ([]models.Student, error)
	ListByClass(ctx context.Context, classID int64) ([]models.Student, error)
}

// CreateClassRequest captures the creation payload. Title is the one hard
// business rule the dashboard enforces.
type CreateClassRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

// ClassService coordinates class CRUD for the owning teacher.
type ClassService struct {
	repo      classRepository
	students  studentReader
	validator *validator.Validate
	logger    *zap.Logger
}

// NewClassService constructs ClassService.
func NewClassService(repo classRepository, students studentReader, validate *validator.Validate, logger *zap.Logger) *ClassService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClassService{repo: repo, students: students, validator: validate, logger: logger}
}

// ListWithStudents returns the teacher's classes populated with students
// and the derived per-class average score.
func (s *ClassService) ListWithStudents(ctx context.Context, teacherID int64) ([]models.Class, error) {
	classes, err := s.repo.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list classes")
	}

	students, err := s.students.ListByTeacher(ctx, teacherID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	byClass := make(map[int64][]models.Student, len(classes))
	for _, student := range students {
		byClass[student.ClassID] = append(byClass[student.ClassID], student)
	}

	for i := range classes {
		populate(&classes[i], byClass[classes[i].ID])
	}
	return classes, nil
}

// Get returns one of the teacher's classes with its students. A class owned
// by someone else is reported as not found, not forbidden.
func (s *ClassService) Get(ctx context.Context, teacherID, id int64) (*models.Class, error) {
	class, err := s.findOwned(ctx, teacherID, id)
	if err != nil {
		return nil, err
	}

	students, err := s.students.ListByClass(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list students")
	}

	populate(class, students)
	return class, nil
}

// Create adds a new class for the teacher. The returned entity is the
// canonical server state: empty roster, zero average.
func (s *ClassService) Create(ctx context.Context, teacherID int64, req CreateClassRequest) (*models.Class, error) {
	req.Title = strings.TrimSpace(req.Title)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Clone(appErrors.ErrValidation, "title is required")
	}

	class := &models.Class{
		TeacherID:   teacherID,
		Title:       req.Title,
		Description: req.Description,
	}
	if err := s.repo.Create(ctx, class); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create class")
	}

	populate(class, nil)
	return class, nil
}

// Delete removes one of the teacher's classes.
func (s *ClassService) Delete(ctx context.Context, teacherID, id int64) error {
	if _, err := s.findOwned(ctx, teacherID, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete class")
	}
	return nil
}

func (s *ClassService) findOwned(ctx context.Context, teacherID, id int64) (*models.Class, error) {
	class, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load class")
	}
	if class.TeacherID != teacherID {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "class not found")
	}
	return class, nil
}

// populate attaches the roster and derives the class average. Students is
// always non-nil in responses so clients can take its length directly.
func populate(class *models.Class, students []models.Student) {
	if students == nil {
		students = []models.Student{}
	}
	class.Students = students

	var sum float64
	for _, student := range students {
		sum += student.AverageScore
	}
	if len(students) > 0 {
		class.AvgScore = sum / float64(len(students))
	} else {
		class.AvgScore = 0
	}
}
