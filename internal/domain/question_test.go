package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validQuestion() *Question {
	return NewQuestion("lr-assum-001", "Logical Reasoning", "Assumption", 5,
		QuestionContent{
			QuestionText:  "Which one of the following is an assumption?",
			AnswerChoices: []AnswerChoice{{Label: "A", Text: "First"}},
			CorrectAnswer: "A",
		},
		[]string{"assumption"},
	)
}

func TestQuestionValidate(t *testing.T) {
	t.Run("valid question", func(t *testing.T) {
		assert.NoError(t, validQuestion().Validate())
	})

	t.Run("missing question_id", func(t *testing.T) {
		q := validQuestion()
		q.QuestionID = ""
		assert.Error(t, q.Validate())
	})

	t.Run("missing section", func(t *testing.T) {
		q := validQuestion()
		q.Section = ""
		assert.Error(t, q.Validate())
	})

	t.Run("difficulty below range", func(t *testing.T) {
		q := validQuestion()
		q.Difficulty = 0
		err := q.Validate()
		assert.True(t, IsCode(err, ErrInvalidQuestion))
	})

	t.Run("difficulty above range", func(t *testing.T) {
		q := validQuestion()
		q.Difficulty = 11
		assert.Error(t, q.Validate())
	})

	t.Run("essay without question text is valid", func(t *testing.T) {
		q := NewQuestion("ws-essay-001", "Writing Sample", "Decision Prompt", 5,
			QuestionContent{Prompt: "Choose one proposal.", Instructions: "Argue for it.", ResponseType: "essay"},
			nil,
		)
		assert.NoError(t, q.Validate())
		assert.True(t, q.Content.IsEssay())
	})
}

func TestNewQuestionStampsMetadataVersion(t *testing.T) {
	q := validQuestion()
	assert.Equal(t, MetadataVersion, q.Metadata.Version)
	assert.Equal(t, []string{"assumption"}, q.Metadata.Tags)
}
