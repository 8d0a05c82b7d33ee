package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classboard/classboard-api/internal/models"
)

func classRows() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "teacher_id", "title", "description", "created_at", "updated_at"}).
		AddRow(int64(1), int64(5), "Physics", "intro", now, now).
		AddRow(int64(2), int64(5), "Chemistry", "", now, now)
}

func TestClassRepositoryListByTeacher(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE teacher_id = $1 ORDER BY created_at, id")).
		WithArgs(int64(5)).
		WillReturnRows(classRows())

	classes, err := repo.ListByTeacher(context.Background(), 5)
	require.NoError(t, err)
	require.Len(t, classes, 2)
	assert.Equal(t, "Physics", classes[0].Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryListByTeacherEmpty(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM classes WHERE teacher_id = $1")).
		WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "teacher_id", "title", "description", "created_at", "updated_at"}))

	classes, err := repo.ListByTeacher(context.Background(), 9)
	require.NoError(t, err)
	assert.NotNil(t, classes)
	assert.Empty(t, classes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryCreateReturnsID(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectQuery("INSERT INTO classes").
		WithArgs(int64(5), "Algebra", "linear equations", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	class := &models.Class{TeacherID: 5, Title: "Algebra", Description: "linear equations"}
	require.NoError(t, repo.Create(context.Background(), class))
	assert.Equal(t, int64(7), class.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestClassRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newRepoMock(t)
	defer cleanup()
	repo := NewClassRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM classes WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}
