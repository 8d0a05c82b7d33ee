package models

import "time"

// Student is a learner enrolled in exactly one class. The dashboard reads
// students but never mutates them; enrollment is managed elsewhere.
type Student struct {
	ID           int64     `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Email        string    `db:"email" json:"email"`
	Age          int       `db:"age" json:"age"`
	AverageScore float64   `db:"average_score" json:"averageScore"`
	ClassID      int64     `db:"class_id" json:"classId"`
	CreatedAt    time.Time `db:"created_at" json:"-"`
	UpdatedAt    time.Time `db:"updated_at" json:"-"`
}
