package client

// TeacherProfile is the authenticated teacher as seen by the dashboard.
// Email is immutable after registration.
type TeacherProfile struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
	Bio            string `json:"bio,omitempty"`
	Phone          string `json:"phone,omitempty"`
	Room           string `json:"room,omitempty"`
	Achievements   string `json:"achievements,omitempty"`
	Awards         string `json:"awards,omitempty"`
	Certifications string `json:"certifications,omitempty"`
	School         string `json:"school,omitempty"`
	College        string `json:"college,omitempty"`
	University     string `json:"university,omitempty"`
	Degree         string `json:"degree,omitempty"`
	Publications   string `json:"publications,omitempty"`
}

// ClassItem is one class of the dashboard collection. Students may be
// partially populated; AvgScore is server-derived and treated as opaque.
type ClassItem struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Students    []StudentItem `json:"students"`
	AvgScore    float64       `json:"avgScore"`
}

// StudentItem is read-only from the dashboard's perspective.
type StudentItem struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Email        string  `json:"email"`
	Age          int     `json:"age"`
	AverageScore float64 `json:"averageScore"`
	ClassID      int64   `json:"classId"`
}

// Dashboard is the composed payload behind GET /teacher/dashboard.
type Dashboard struct {
	Teacher       TeacherProfile `json:"teacher"`
	Classes       []ClassItem    `json:"classes"`
	TotalStudents int            `json:"totalStudents"`
}

// CreateClassInput is the class creation draft.
type CreateClassInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ProfilePatch is a partial profile update; nil fields are left untouched
// server-side. There is deliberately no email field.
type ProfilePatch struct {
	Name           *string `json:"name,omitempty"`
	Bio            *string `json:"bio,omitempty"`
	Phone          *string `json:"phone,omitempty"`
	Room           *string `json:"room,omitempty"`
	Achievements   *string `json:"achievements,omitempty"`
	Awards         *string `json:"awards,omitempty"`
	Certifications *string `json:"certifications,omitempty"`
	School         *string `json:"school,omitempty"`
	College        *string `json:"college,omitempty"`
	University     *string `json:"university,omitempty"`
	Degree         *string `json:"degree,omitempty"`
	Publications   *string `json:"publications,omitempty"`
}

// QuestionInput is one flattened draft question.
type QuestionInput struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Section       string   `json:"section"`
}

// QuestionPaperSubmission is the body of POST /teacher/question-paper.
type QuestionPaperSubmission struct {
	Questions []QuestionInput `json:"questions"`
}

// Credentials authenticates a teacher. Remember requests a persistent
// session backed by a server-side token.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Remember bool   `json:"remember"`
}

// Registration is the sign-up payload.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Country  string `json:"country"`
	Age      int    `json:"age"`
	Gender   string `json:"gender"`
	Password string `json:"password"`
}
