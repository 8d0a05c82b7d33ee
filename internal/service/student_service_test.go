package service

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/classboard/classboard-api/internal/models"
	"github.com/classboard/classboard-api/pkg/export"
)

func TestStudentServiceList(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{ID: 10, Name: "Ada", Email: "ada@example.com", Age: 16, AverageScore: 80, ClassID: 1},
		{ID: 11, Name: "Grace", Email: "grace@example.com", Age: 17, AverageScore: 90, ClassID: 2},
	}}
	svc := NewStudentService(repo, export.NewCSVExporter(), zap.NewNop())

	students, err := svc.List(context.Background(), 5)
	require.NoError(t, err)
	assert.Len(t, students, 2)
}

func TestStudentServiceExportCSV(t *testing.T) {
	repo := &mockStudentRepo{students: []models.Student{
		{ID: 10, Name: "Ada", Email: "ada@example.com", Age: 16, AverageScore: 80.5, ClassID: 1},
	}}
	svc := NewStudentService(repo, export.NewCSVExporter(), zap.NewNop())

	data, err := svc.ExportCSV(context.Background(), 5)
	require.NoError(t, err)

	content := string(data)
	lines := strings.Split(strings.TrimSpace(content), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "ID,Name,Email,Age,Average Score,Class ID", strings.TrimSpace(lines[0]))
	assert.Contains(t, lines[1], "Ada")
	assert.Contains(t, lines[1], "80.50")
}
