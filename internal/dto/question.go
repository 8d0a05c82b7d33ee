package dto

// QuestionInput is one flattened draft question as submitted by the
// authoring screen: section name alongside the question fields.
type QuestionInput struct {
	Text          string   `json:"text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
	Section       string   `json:"section"`
}

// SubmitQuestionPaperRequest is the body of POST /teacher/question-paper.
type SubmitQuestionPaperRequest struct {
	Questions []QuestionInput `json:"questions"`
}

// SubmitQuestionPaperResponse acknowledges a stored paper.
type SubmitQuestionPaperResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}
