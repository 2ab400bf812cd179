package domain

import (
	"fmt"
	"time"
)

// Difficulty bounds for question ratings.
const (
	MinDifficulty     = 1
	MaxDifficulty     = 10
	DefaultDifficulty = 5
)

// MetadataVersion is the format version stamped into every question's
// provenance metadata on insert.
const MetadataVersion = "1.0"

// AnswerChoice is one labelled option of a multiple-choice question.
type AnswerChoice struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionContent is the structured body of a question. Multiple-choice
// questions carry answer choices and a correct answer; writing-sample
// questions carry a prompt and instructions with ResponseType "essay".
type QuestionContent struct {
	QuestionText  string         `json:"question_text"`
	AnswerChoices []AnswerChoice `json:"answer_choices,omitempty"`
	CorrectAnswer string         `json:"correct_answer,omitempty"`
	Explanation   string         `json:"explanation,omitempty"`
	Prompt        string         `json:"prompt,omitempty"`
	Instructions  string         `json:"instructions,omitempty"`
	ResponseType  string         `json:"response_type,omitempty"`
}

// IsEssay reports whether the content is a writing-sample prompt rather
// than a multiple-choice question.
func (c QuestionContent) IsEssay() bool {
	return c.ResponseType == "essay"
}

// QuestionMetadata is the provenance blob stored alongside each question.
type QuestionMetadata struct {
	Tags    []string `json:"tags"`
	Source  string   `json:"source"`
	Version string   `json:"version"`
}

// Question is one unit of loaded content. QuestionID is the natural key,
// unique within a tenant; ID is the surrogate key assigned on insert.
type Question struct {
	ID         string
	TenantID   string
	ExamTypeID string
	QuestionID string
	Section    string
	Subsection string
	Difficulty int
	Content    QuestionContent
	Metadata   QuestionMetadata
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewQuestion creates a Question from source fields. Tenant and exam type
// references are attached later by the loader.
func NewQuestion(questionID, section, subsection string, difficulty int, content QuestionContent, tags []string) *Question {
	return &Question{
		QuestionID: questionID,
		Section:    section,
		Subsection: subsection,
		Difficulty: difficulty,
		Content:    content,
		Metadata: QuestionMetadata{
			Tags:    tags,
			Version: MetadataVersion,
		},
	}
}

// Validate checks the required fields and the difficulty bound.
func (q *Question) Validate() error {
	if q.QuestionID == "" {
		return NewInvalidQuestionError("(unknown)", "question_id is required")
	}
	if q.Section == "" {
		return NewInvalidQuestionError(q.QuestionID, "section is required")
	}
	if q.Subsection == "" {
		return NewInvalidQuestionError(q.QuestionID, "subsection is required")
	}
	if q.Difficulty < MinDifficulty || q.Difficulty > MaxDifficulty {
		return NewInvalidQuestionError(q.QuestionID,
			fmt.Sprintf("difficulty %d out of range [%d, %d]", q.Difficulty, MinDifficulty, MaxDifficulty))
	}
	if q.Content.QuestionText == "" && !q.Content.IsEssay() {
		return NewInvalidQuestionError(q.QuestionID, "question_text is required")
	}
	return nil
}
