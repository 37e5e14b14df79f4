// Package ai is the boundary to the hosted language model. It exposes exactly
// three request/response operations; each either returns a result that
// matches its schema or fails. There is no streaming and no partial success.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	MinSummaryTextLength = 50
	MinTopicLength       = 3
	MinQuestions         = 1
	MaxQuestions         = 10
	OptionsPerQuestion   = 4
)

var (
	ErrNotConfigured   = errors.New("ai service not configured")
	ErrInputTooShort   = errors.New("input too short")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInvalidResponse = errors.New("invalid model response")
)

// Service is implemented by any hosted-model client.
type Service interface {
	Summarize(ctx context.Context, text string) (Summary, error)
	ScheduleBreaks(ctx context.Context, studyDurationMinutes int) (BreakSchedule, error)
	GenerateQuiz(ctx context.Context, topic string, numQuestions int) (Quiz, error)
}

type Summary struct {
	Summary    string `json:"summary"`
	Flashcards string `json:"flashcards"`
	Progress   string `json:"progress"`
}

type BreakSchedule struct {
	BreakSuggestions []string `json:"breakSuggestions"`
}

type Question struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
}

type Quiz struct {
	Questions []Question `json:"questions"`
}

func CheckSummaryInput(text string) error {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinSummaryTextLength {
		return fmt.Errorf("%w: text must be at least %d characters", ErrInputTooShort, MinSummaryTextLength)
	}
	return nil
}

func CheckBreaksInput(studyDurationMinutes int) error {
	if studyDurationMinutes < 1 {
		return fmt.Errorf("%w: study duration must be at least 1 minute", ErrInvalidInput)
	}
	return nil
}

func CheckQuizInput(topic string, numQuestions int) error {
	if utf8.RuneCountInString(strings.TrimSpace(topic)) < MinTopicLength {
		return fmt.Errorf("%w: topic must be at least %d characters", ErrInputTooShort, MinTopicLength)
	}
	if numQuestions < MinQuestions || numQuestions > MaxQuestions {
		return fmt.Errorf("%w: number of questions must be between %d and %d", ErrInvalidInput, MinQuestions, MaxQuestions)
	}
	return nil
}

func (s Summary) Validate() error {
	if strings.TrimSpace(s.Summary) == "" {
		return fmt.Errorf("%w: empty summary", ErrInvalidResponse)
	}
	if strings.TrimSpace(s.Flashcards) == "" {
		return fmt.Errorf("%w: empty flashcards", ErrInvalidResponse)
	}
	return nil
}

func (b BreakSchedule) Validate() error {
	if len(b.BreakSuggestions) == 0 {
		return fmt.Errorf("%w: no break suggestions", ErrInvalidResponse)
	}
	for i, s := range b.BreakSuggestions {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%w: break suggestion %d is empty", ErrInvalidResponse, i)
		}
	}
	return nil
}

// Validate checks the quiz against the requested question count.
func (q Quiz) Validate(numQuestions int) error {
	if len(q.Questions) != numQuestions {
		return fmt.Errorf("%w: got %d questions, want %d", ErrInvalidResponse, len(q.Questions), numQuestions)
	}
	for i, question := range q.Questions {
		if strings.TrimSpace(question.QuestionText) == "" {
			return fmt.Errorf("%w: question %d has no text", ErrInvalidResponse, i)
		}
		if len(question.Options) != OptionsPerQuestion {
			return fmt.Errorf("%w: question %d has %d options, want %d", ErrInvalidResponse, i, len(question.Options), OptionsPerQuestion)
		}
		if question.CorrectAnswerIndex < 0 || question.CorrectAnswerIndex >= OptionsPerQuestion {
			return fmt.Errorf("%w: question %d answer index %d out of range", ErrInvalidResponse, i, question.CorrectAnswerIndex)
		}
	}
	return nil
}
