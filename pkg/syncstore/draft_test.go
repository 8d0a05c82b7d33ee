package syncstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classboard/classboard-api/pkg/client"
)

type fakeSubmitter struct {
	err         error
	submissions []client.QuestionPaperSubmission
}

func (f *fakeSubmitter) SubmitQuestionPaper(ctx context.Context, submission client.QuestionPaperSubmission) error {
	f.submissions = append(f.submissions, submission)
	return f.err
}

func TestDraftStartsWithDefaultSections(t *testing.T) {
	draft := NewQuestionPaperDraft()
	sections := draft.Sections()
	require.Len(t, sections, 3)
	assert.Equal(t, "Basic", sections[0].Name)
	assert.Equal(t, "Moderate", sections[1].Name)
	assert.Equal(t, "Hard", sections[2].Name)
	assert.Equal(t, DraftEditing, draft.State())
	assert.Equal(t, 0, draft.QuestionCount())
}

func TestDraftAddQuestionDefaults(t *testing.T) {
	draft := NewQuestionPaperDraft()
	idx, err := draft.AddQuestion(0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	q := draft.Sections()[0].Questions[0]
	assert.Equal(t, "", q.Text)
	assert.Equal(t, [4]string{"", "", "", ""}, q.Options)
	assert.Equal(t, "A", q.CorrectAnswer)
}

func TestDraftGlobalQuestionNumbering(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(0)
	require.NoError(t, err)
	_, err = draft.AddQuestion(0)
	require.NoError(t, err)
	_, err = draft.AddQuestion(2)
	require.NoError(t, err)

	n, err := draft.QuestionNumber(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	// Adding to the middle section renumbers everything after it.
	_, err = draft.AddQuestion(1)
	require.NoError(t, err)
	_, err = draft.AddQuestion(1)
	require.NoError(t, err)

	n, err = draft.QuestionNumber(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	n, err = draft.QuestionNumber(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
	n, err = draft.QuestionNumber(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Equal(t, 5, draft.QuestionCount())
}

func TestDraftEditQuestion(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(0)
	require.NoError(t, err)

	require.NoError(t, draft.SetQuestionText(0, 0, "What is 2+2?"))
	require.NoError(t, draft.SetOption(0, 0, 0, "3"))
	require.NoError(t, draft.SetOption(0, 0, 1, "4"))
	require.NoError(t, draft.SetCorrectAnswer(0, 0, "B"))

	q := draft.Sections()[0].Questions[0]
	assert.Equal(t, "What is 2+2?", q.Text)
	assert.Equal(t, "4", q.Options[1])
	assert.Equal(t, "B", q.CorrectAnswer)
}

func TestDraftRejectsInvalidAnswerKey(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(0)
	require.NoError(t, err)

	err = draft.SetCorrectAnswer(0, 0, "E")
	require.Error(t, err)
	assert.True(t, client.IsClientValidation(err))
	assert.Equal(t, "A", draft.Sections()[0].Questions[0].CorrectAnswer)
}

func TestDraftRemoveQuestionShiftsNumbering(t *testing.T) {
	draft := NewQuestionPaperDraft()
	for i := 0; i < 3; i++ {
		_, err := draft.AddQuestion(0)
		require.NoError(t, err)
	}
	require.NoError(t, draft.SetQuestionText(0, 2, "last"))

	require.NoError(t, draft.RemoveQuestion(0, 0))
	assert.Equal(t, 2, draft.QuestionCount())
	assert.Equal(t, "last", draft.Sections()[0].Questions[1].Text)
}

func TestDraftPayloadFlattensSectionsInOrder(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(1)
	require.NoError(t, err)
	require.NoError(t, draft.SetQuestionText(1, 0, "moderate one"))
	_, err = draft.AddQuestion(0)
	require.NoError(t, err)
	require.NoError(t, draft.SetQuestionText(0, 0, "basic one"))

	payload := draft.Payload()
	require.Len(t, payload.Questions, 2)
	assert.Equal(t, "basic one", payload.Questions[0].Text)
	assert.Equal(t, "Basic", payload.Questions[0].Section)
	assert.Equal(t, "moderate one", payload.Questions[1].Text)
	assert.Equal(t, "Moderate", payload.Questions[1].Section)
	require.Len(t, payload.Questions[0].Options, 4)
}

func TestDraftSubmitSuccess(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(0)
	require.NoError(t, err)
	require.NoError(t, draft.SetQuestionText(0, 0, "q"))

	submitter := &fakeSubmitter{}
	require.NoError(t, draft.Submit(context.Background(), submitter))
	assert.Equal(t, DraftSubmitted, draft.State())
	require.Len(t, submitter.submissions, 1)

	// Submitted drafts are frozen.
	_, err = draft.AddQuestion(0)
	require.Error(t, err)
	err = draft.Submit(context.Background(), submitter)
	require.Error(t, err)
	assert.Len(t, submitter.submissions, 1)
}

func TestDraftSubmitFailureReturnsToEditing(t *testing.T) {
	draft := NewQuestionPaperDraft()
	_, err := draft.AddQuestion(0)
	require.NoError(t, err)
	require.NoError(t, draft.SetQuestionText(0, 0, "kept"))

	submitter := &fakeSubmitter{err: &client.Error{Kind: client.KindNetwork, Message: "unable to reach server"}}
	err = draft.Submit(context.Background(), submitter)
	require.Error(t, err)
	assert.True(t, client.IsNetwork(err))
	assert.Equal(t, DraftEditing, draft.State())
	assert.Equal(t, "kept", draft.Sections()[0].Questions[0].Text)

	// The draft stays editable after a failed submit.
	require.NoError(t, draft.SetQuestionText(0, 0, "edited again"))
}

func TestDraftSubmitEmptyRejected(t *testing.T) {
	draft := NewQuestionPaperDraft()
	submitter := &fakeSubmitter{}
	err := draft.Submit(context.Background(), submitter)
	require.Error(t, err)
	assert.True(t, client.IsClientValidation(err))
	assert.Empty(t, submitter.submissions)
	assert.Equal(t, DraftEditing, draft.State())
}
