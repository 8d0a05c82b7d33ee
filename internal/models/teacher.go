package models

import "time"

// Teacher is the authenticated account and its public profile. Email is
// immutable after registration; profile fields are free-form text edited
// from the profile screen.
type Teacher struct {
	ID             int64  `db:"id" json:"id"`
	Name           string `db:"name" json:"name"`
	Email          string `db:"email" json:"email"`
	PasswordHash   string `db:"password_hash" json:"-"`
	Country        string `db:"country" json:"country,omitempty"`
	Age            int    `db:"age" json:"age,omitempty"`
	Gender         string `db:"gender" json:"gender,omitempty"`
	ProfilePicture string `db:"profile_picture" json:"profilePicture,omitempty"`
	Bio            string `db:"bio" json:"bio,omitempty"`
	Phone          string `db:"phone" json:"phone,omitempty"`
	Room           string `db:"room" json:"room,omitempty"`
	Achievements   string `db:"achievements" json:"achievements,omitempty"`
	Awards         string `db:"awards" json:"awards,omitempty"`
	Certifications string `db:"certifications" json:"certifications,omitempty"`
	School         string `db:"school" json:"school,omitempty"`
	College        string `db:"college" json:"college,omitempty"`
	University     string `db:"university" json:"university,omitempty"`
	Degree         string `db:"degree" json:"degree,omitempty"`
	Publications   string `db:"publications" json:"publications,omitempty"`

	CreatedAt time.Time `db:"created_at" json:"-"`
	UpdatedAt time.Time `db:"updated_at" json:"-"`
}
