// Package source reads pre-authored question corpora from JSON files on
// disk and normalizes them into domain questions.
package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"mellowise-loader/internal/domain"

	"go.uber.org/zap"
)

// rawDifficulty tolerates the two shapes the corpus uses: a plain integer,
// or an object carrying an initial_estimate.
type rawDifficulty int

func (d *rawDifficulty) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*d = rawDifficulty(n)
		return nil
	}
	var obj struct {
		InitialEstimate int `json:"initial_estimate"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("difficulty is neither an integer nor an object: %w", err)
	}
	if obj.InitialEstimate == 0 {
		*d = rawDifficulty(domain.DefaultDifficulty)
		return nil
	}
	*d = rawDifficulty(obj.InitialEstimate)
	return nil
}

type rawChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type rawResponse struct {
	AnswerKey struct {
		CorrectChoiceID string `json:"correct_choice_id"`
	} `json:"answer_key"`
	Explanations struct {
		General string `json:"general"`
	} `json:"explanations"`
}

type rawQuestion struct {
	QuestionID   string        `json:"question_id"`
	Section      string        `json:"section"`
	Subsection   string        `json:"subsection"`
	Difficulty   rawDifficulty `json:"difficulty"`
	QuestionText string        `json:"question_text"`
	Choices      []rawChoice   `json:"choices"`
	Response     *rawResponse  `json:"response"`
	Prompt       string        `json:"prompt"`
	Instructions string        `json:"instructions"`
	Tags         []string      `json:"tags"`
	Metadata     *struct {
		Tags []string `json:"tags"`
	} `json:"metadata"`
}

// questionFile tolerates both corpus file shapes: a bare JSON array of
// questions, or an object {"questions": [...]}.
type questionFile struct {
	Questions []rawQuestion
}

func (f *questionFile) UnmarshalJSON(data []byte) error {
	var list []rawQuestion
	if err := json.Unmarshal(data, &list); err == nil {
		f.Questions = list
		return nil
	}
	var obj struct {
		Questions []rawQuestion `json:"questions"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	f.Questions = obj.Questions
	return nil
}

// Result is the outcome of reading a corpus directory. File-level parse
// failures are counted, not fatal.
type Result struct {
	Questions      []*domain.Question
	FilesProcessed int
	FileErrors     int
}

// Reader loads question corpora from disk.
type Reader struct {
	logger *zap.Logger
}

// NewReader creates a new Reader
func NewReader(logger *zap.Logger) *Reader {
	return &Reader{logger: logger}
}

// ReadDir reads every .json file in dir in sorted filename order. It
// returns an error only when the directory itself cannot be read; a file
// that fails to parse is logged, counted, and skipped.
func (r *Reader) ReadDir(dir string) (*Result, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read questions directory %s: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	result := &Result{}
	for _, name := range names {
		path := filepath.Join(dir, name)
		questions, err := r.readFile(path)
		if err != nil {
			r.logger.Error("Failed to read question file",
				zap.String("file", name),
				zap.Error(err),
			)
			result.FileErrors++
			continue
		}
		r.logger.Info("Read question file",
			zap.String("file", name),
			zap.Int("questions", len(questions)),
		)
		result.Questions = append(result.Questions, questions...)
		result.FilesProcessed++
	}
	return result, nil
}

func (r *Reader) readFile(path string) ([]*domain.Question, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file questionFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s: %w", filepath.Base(path), err)
	}

	questions := make([]*domain.Question, 0, len(file.Questions))
	for i := range file.Questions {
		questions = append(questions, toDomainQuestion(&file.Questions[i]))
	}
	return questions, nil
}

func toDomainQuestion(raw *rawQuestion) *domain.Question {
	var content domain.QuestionContent
	if len(raw.Choices) > 0 && raw.Response != nil {
		// Multiple choice format (LR and RC)
		choices := make([]domain.AnswerChoice, len(raw.Choices))
		for i, c := range raw.Choices {
			choices[i] = domain.AnswerChoice{Label: c.ID, Text: c.Text}
		}
		content = domain.QuestionContent{
			QuestionText:  raw.QuestionText,
			AnswerChoices: choices,
			CorrectAnswer: raw.Response.AnswerKey.CorrectChoiceID,
			Explanation:   raw.Response.Explanations.General,
		}
	} else {
		// Writing Sample format (no multiple choice)
		content = domain.QuestionContent{
			QuestionText: raw.QuestionText,
			Prompt:       raw.Prompt,
			Instructions: raw.Instructions,
			ResponseType: "essay",
		}
	}

	tags := raw.Tags
	if raw.Metadata != nil && len(raw.Metadata.Tags) > 0 {
		tags = raw.Metadata.Tags
	}

	difficulty := int(raw.Difficulty)
	if difficulty == 0 {
		difficulty = domain.DefaultDifficulty
	}

	return domain.NewQuestion(raw.QuestionID, raw.Section, raw.Subsection, difficulty, content, tags)
}
