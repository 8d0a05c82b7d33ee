package syncstore

import (
	"context"
	"fmt"

	"github.com/classboard/classboard-api/pkg/client"
)

// DraftState tracks where a question paper draft is in its lifecycle.
type DraftState int

const (
	// DraftEditing means the draft is mutable.
	DraftEditing DraftState = iota
	// DraftSubmitting means a submit call is in flight; the draft is frozen.
	DraftSubmitting
	// DraftSubmitted means the server accepted the paper; the draft is spent.
	DraftSubmitted
)

func (s DraftState) String() string {
	switch s {
	case DraftEditing:
		return "editing"
	case DraftSubmitting:
		return "submitting"
	case DraftSubmitted:
		return "submitted"
	default:
		return "unknown"
	}
}

// DraftQuestion is one question being authored. Options always has four
// slots; blank option text is allowed while drafting.
type DraftQuestion struct {
	Text          string
	Options       [4]string
	CorrectAnswer string
}

// DraftSection is a named group of questions, such as a difficulty tier.
type DraftSection struct {
	Name      string
	Questions []DraftQuestion
}

// PaperSubmitter dispatches a finished paper to the server.
type PaperSubmitter interface {
	SubmitQuestionPaper(ctx context.Context, submission client.QuestionPaperSubmission) error
}

// QuestionPaperDraft holds an in-progress paper. Question numbering is
// global across sections and derived on demand, so inserting into an
// early section renumbers everything after it automatically.
type QuestionPaperDraft struct {
	sections []DraftSection
	state    DraftState
}

// DefaultSections are the section names a fresh draft starts with.
var DefaultSections = []string{"Basic", "Moderate", "Hard"}

// NewQuestionPaperDraft starts an empty draft with the given section
// names, defaulting to Basic, Moderate and Hard.
func NewQuestionPaperDraft(sectionNames ...string) *QuestionPaperDraft {
	if len(sectionNames) == 0 {
		sectionNames = DefaultSections
	}
	sections := make([]DraftSection, len(sectionNames))
	for i, name := range sectionNames {
		sections[i] = DraftSection{Name: name, Questions: []DraftQuestion{}}
	}
	return &QuestionPaperDraft{sections: sections, state: DraftEditing}
}

// State reports the draft's lifecycle state.
func (d *QuestionPaperDraft) State() DraftState {
	return d.state
}

// Sections returns a copy of the draft's sections.
func (d *QuestionPaperDraft) Sections() []DraftSection {
	out := make([]DraftSection, len(d.sections))
	for i, sec := range d.sections {
		qs := make([]DraftQuestion, len(sec.Questions))
		copy(qs, sec.Questions)
		out[i] = DraftSection{Name: sec.Name, Questions: qs}
	}
	return out
}

// AddQuestion appends a blank question to the given section and returns
// its index within that section. New questions default to answer A.
func (d *QuestionPaperDraft) AddQuestion(section int) (int, error) {
	if err := d.editable(); err != nil {
		return 0, err
	}
	if err := d.checkSection(section); err != nil {
		return 0, err
	}
	d.sections[section].Questions = append(d.sections[section].Questions, DraftQuestion{CorrectAnswer: "A"})
	return len(d.sections[section].Questions) - 1, nil
}

// RemoveQuestion drops a question from a section.
func (d *QuestionPaperDraft) RemoveQuestion(section, index int) error {
	if err := d.editable(); err != nil {
		return err
	}
	if err := d.checkQuestion(section, index); err != nil {
		return err
	}
	qs := d.sections[section].Questions
	d.sections[section].Questions = append(qs[:index], qs[index+1:]...)
	return nil
}

// SetQuestionText updates a question's prompt.
func (d *QuestionPaperDraft) SetQuestionText(section, index int, text string) error {
	if err := d.editable(); err != nil {
		return err
	}
	if err := d.checkQuestion(section, index); err != nil {
		return err
	}
	d.sections[section].Questions[index].Text = text
	return nil
}

// SetOption updates one of a question's four options.
func (d *QuestionPaperDraft) SetOption(section, index, option int, text string) error {
	if err := d.editable(); err != nil {
		return err
	}
	if err := d.checkQuestion(section, index); err != nil {
		return err
	}
	if option < 0 || option > 3 {
		return client.NewClientValidation("option index out of range")
	}
	d.sections[section].Questions[index].Options[option] = text
	return nil
}

// SetCorrectAnswer records which option key is correct. Only A through D
// are accepted.
func (d *QuestionPaperDraft) SetCorrectAnswer(section, index int, answer string) error {
	if err := d.editable(); err != nil {
		return err
	}
	if err := d.checkQuestion(section, index); err != nil {
		return err
	}
	switch answer {
	case "A", "B", "C", "D":
	default:
		return client.NewClientValidation("answer must be one of A, B, C or D")
	}
	d.sections[section].Questions[index].CorrectAnswer = answer
	return nil
}

// QuestionNumber returns the global, 1-based number shown next to a
// question: the count of all questions in earlier sections plus its
// position in its own.
func (d *QuestionPaperDraft) QuestionNumber(section, index int) (int, error) {
	if err := d.checkQuestion(section, index); err != nil {
		return 0, err
	}
	n := index + 1
	for i := 0; i < section; i++ {
		n += len(d.sections[i].Questions)
	}
	return n, nil
}

// QuestionCount returns the total number of questions across sections.
func (d *QuestionPaperDraft) QuestionCount() int {
	n := 0
	for _, sec := range d.sections {
		n += len(sec.Questions)
	}
	return n
}

// Payload flattens the draft into the wire submission, walking sections
// in order so global numbering matches what the author saw.
func (d *QuestionPaperDraft) Payload() client.QuestionPaperSubmission {
	questions := []client.QuestionInput{}
	for _, sec := range d.sections {
		for _, q := range sec.Questions {
			questions = append(questions, client.QuestionInput{
				Text:          q.Text,
				Options:       []string{q.Options[0], q.Options[1], q.Options[2], q.Options[3]},
				CorrectAnswer: q.CorrectAnswer,
				Section:       sec.Name,
			})
		}
	}
	return client.QuestionPaperSubmission{Questions: questions}
}

// Submit dispatches the paper. While the call is in flight the draft is
// frozen; on failure it returns to editing with its contents intact, and
// on success it becomes submitted and can no longer change.
func (d *QuestionPaperDraft) Submit(ctx context.Context, submitter PaperSubmitter) error {
	if err := d.editable(); err != nil {
		return err
	}
	if d.QuestionCount() == 0 {
		return client.NewClientValidation("question paper has no questions")
	}
	d.state = DraftSubmitting
	if err := submitter.SubmitQuestionPaper(ctx, d.Payload()); err != nil {
		d.state = DraftEditing
		return err
	}
	d.state = DraftSubmitted
	return nil
}

func (d *QuestionPaperDraft) editable() error {
	if d.state != DraftEditing {
		return client.NewClientValidation(fmt.Sprintf("draft is %s", d.state))
	}
	return nil
}

func (d *QuestionPaperDraft) checkSection(section int) error {
	if section < 0 || section >= len(d.sections) {
		return client.NewClientValidation("section index out of range")
	}
	return nil
}

func (d *QuestionPaperDraft) checkQuestion(section, index int) error {
	if err := d.checkSection(section); err != nil {
		return err
	}
	if index < 0 || index >= len(d.sections[section].Questions) {
		return client.NewClientValidation("question index out of range")
	}
	return nil
}
