package dto

import "github.com/classboard/classboard-api/internal/models"

// DashboardResponse is the composed payload behind GET /teacher/dashboard.
// TotalStudents is precomputed server-side so the client can render the
// headline counters without walking the class list.
type DashboardResponse struct {
	Teacher       models.Teacher `json:"teacher"`
	Classes       []models.Class `json:"classes"`
	TotalStudents int            `json:"totalStudents"`
}
