package models

import "time"

// Answer keys for the fixed four option slots.
const (
	AnswerA = "A"
	AnswerB = "B"
	AnswerC = "C"
	AnswerD = "D"
)

// ValidAnswer reports whether the key belongs to the closed {A,B,C,D} set.
func ValidAnswer(key string) bool {
	switch key {
	case AnswerA, AnswerB, AnswerC, AnswerD:
		return true
	}
	return false
}

// QuestionPaper is a submitted paper. Drafts live purely on the client;
// a paper only gains identity here, at submission time.
type QuestionPaper struct {
	ID        int64     `db:"id" json:"id"`
	TeacherID int64     `db:"teacher_id" json:"-"`
	CreatedAt time.Time `db:"created_at" json:"createdAt"`
}

// Question is one entry of a submitted paper. Options occupy four fixed
// slots; Position preserves submission order within the paper.
type Question struct {
	ID            int64  `db:"id" json:"id"`
	PaperID       int64  `db:"paper_id" json:"-"`
	Section       string `db:"section" json:"section"`
	Position      int    `db:"position" json:"-"`
	Text          string `db:"text" json:"text"`
	OptionA       string `db:"option_a" json:"-"`
	OptionB       string `db:"option_b" json:"-"`
	OptionC       string `db:"option_c" json:"-"`
	OptionD       string `db:"option_d" json:"-"`
	CorrectAnswer string `db:"correct_answer" json:"correctAnswer"`
}

// Options returns the four option slots in order.
func (q Question) Options() [4]string {
	return [4]string{q.OptionA, q.OptionB, q.OptionC, q.OptionD}
}
