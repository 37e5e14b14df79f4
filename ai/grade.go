package ai

// Unanswered marks a question the learner skipped.
const Unanswered = -1

type QuestionResult struct {
	IsCorrect           bool `json:"isCorrect"`
	CorrectAnswerIndex  int  `json:"correctAnswerIndex"`
	SelectedAnswerIndex int  `json:"selectedAnswerIndex"`
}

type Grade struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Results    []QuestionResult `json:"results"`
}

// GradeQuiz scores answers against the quiz. Missing answers count as
// Unanswered and are wrong; extra answers are ignored.
func GradeQuiz(quiz Quiz, answers []int) Grade {
	g := Grade{Total: len(quiz.Questions), Results: make([]QuestionResult, len(quiz.Questions))}
	for i, question := range quiz.Questions {
		selected := Unanswered
		if i < len(answers) {
			selected = answers[i]
		}
		correct := selected != Unanswered && selected == question.CorrectAnswerIndex
		if correct {
			g.Score++
		}
		g.Results[i] = QuestionResult{
			IsCorrect:           correct,
			CorrectAnswerIndex:  question.CorrectAnswerIndex,
			SelectedAnswerIndex: selected,
		}
	}
	if g.Total > 0 {
		g.Percentage = float64(g.Score) / float64(g.Total) * 100
	}
	return g
}
