package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/classboard/classboard-api/internal/models"
)

// QuestionRepository persists submitted question papers.
type QuestionRepository struct {
	db *sqlx.DB
}

// NewQuestionRepository constructs a new question repository.
func NewQuestionRepository(db *sqlx.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// CreatePaper stores the paper and its questions in a single transaction.
// Positions are assigned from slice order.
func (r *QuestionRepository) CreatePaper(ctx context.Context, paper *models.QuestionPaper, questions []models.Question) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin paper tx: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	paper.CreatedAt = time.Now().UTC()
	const paperQuery = `INSERT INTO question_papers (teacher_id, created_at) VALUES ($1, $2) RETURNING id`
	if err := tx.GetContext(ctx, &paper.ID, paperQuery, paper.TeacherID, paper.CreatedAt); err != nil {
		return fmt.Errorf("create question paper: %w", err)
	}

	const questionQuery = `INSERT INTO questions (paper_id, section, position, text, option_a, option_b, option_c, option_d, correct_answer)
		VALUES (:paper_id, :section, :position, :text, :option_a, :option_b, :option_c, :option_d, :correct_answer)`
	for i := range questions {
		questions[i].PaperID = paper.ID
		questions[i].Position = i + 1
		if _, err := tx.NamedExecContext(ctx, questionQuery, questions[i]); err != nil {
			return fmt.Errorf("create question %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit paper tx: %w", err)
	}
	return nil
}

// FindPaper returns the paper header by ID.
func (r *QuestionRepository) FindPaper(ctx context.Context, id int64) (*models.QuestionPaper, error) {
	const query = `SELECT id, teacher_id, created_at FROM question_papers WHERE id = $1`
	var paper models.QuestionPaper
	if err := r.db.GetContext(ctx, &paper, query, id); err != nil {
		return nil, err
	}
	return &paper, nil
}

// ListQuestions returns the paper's questions in submission order.
func (r *QuestionRepository) ListQuestions(ctx context.Context, paperID int64) ([]models.Question, error) {
	const query = `SELECT id, paper_id, section, position, text, option_a, option_b, option_c, option_d, correct_answer
		FROM questions WHERE paper_id = $1 ORDER BY position`
	questions := []models.Question{}
	if err := r.db.SelectContext(ctx, &questions, query, paperID); err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return questions, nil
}
