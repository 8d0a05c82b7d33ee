package models

import "time"

// Class is a class owned by a teacher. Students and AvgScore are derived
// when the class is read; AvgScore is the mean of the enrolled students'
// average scores, 0 when the class has no students.
type Class struct {
	ID          int64     `db:"id" json:"id"`
	TeacherID   int64     `db:"teacher_id" json:"-"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description,omitempty"`
	Students    []Student `db:"-" json:"students"`
	AvgScore    float64   `db:"-" json:"avgScore"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
	UpdatedAt   time.Time `db:"updated_at" json:"-"`
}
