package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/classboard/classboard-api/internal/models"
)

const studentColumns = "id, name, email, age, average_score, class_id, created_at, updated_at"

// StudentRepository reads student records. The dashboard never writes
// students; enrollment is owned by another system.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a new student repository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// ListByTeacher returns every student enrolled in one of the teacher's classes.
func (r *StudentRepository) ListByTeacher(ctx context.Context, teacherID int64) ([]models.Student, error) {
	const query = `SELECT s.id, s.name, s.email, s.age, s.average_score, s.class_id, s.created_at, s.updated_at
		FROM students s JOIN classes c ON c.id = s.class_id
		WHERE c.teacher_id = $1 ORDER BY s.class_id, s.id`
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, teacherID); err != nil {
		return nil, fmt.Errorf("list students by teacher: %w", err)
	}
	return students, nil
}

// ListByClass returns the students of a single class in enrollment order.
func (r *StudentRepository) ListByClass(ctx context.Context, classID int64) ([]models.Student, error) {
	query := fmt.Sprintf("SELECT %s FROM students WHERE class_id = $1 ORDER BY id", studentColumns)
	students := []models.Student{}
	if err := r.db.SelectContext(ctx, &students, query, classID); err != nil {
		return nil, fmt.Errorf("list students by class: %w", err)
	}
	return students, nil
}
