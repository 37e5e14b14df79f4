package ai

import (
	"strings"
	"text/template"
)

var (
	summaryPrompt = template.Must(template.New("summary").Parse(
		`Please generate a concise summary and flashcards from the following text, and a one-sentence progress summary of what you have generated.

Text: {{.Text}}`))

	breaksPrompt = template.Must(template.New("breaks").Parse(
		`Given a study duration, calculate the optimal break schedule considering cognitive load and the need for regular breaks. The break suggestions should be formatted as sentences, for example "Take a 5-minute break at the 25-minute mark."

Study Duration: {{.Minutes}} minutes`))

	quizPrompt = template.Must(template.New("quiz").Parse(
		`Generate a multiple-choice quiz about the following topic.

Topic: {{.Topic}}
Number of Questions: {{.NumQuestions}}

Please generate exactly {{.NumQuestions}} questions with {{.Options}} options each, give the zero-based index of the correct option, and provide an explanation for the correct answer.`))
)

const (
	summarySystem = "You are an expert summarizer and flashcard generator."
	breaksSystem  = "You are an AI study assistant that suggests optimal break times during study sessions to maximize focus and minimize burnout."
	quizSystem    = "You are an expert educator creating a practice quiz."
)

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}
