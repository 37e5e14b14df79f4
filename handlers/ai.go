package handlers

import (
	"fmt"
	"net/http"

	"github.com/andrewpaige1/studysync-api/ai"
	"github.com/andrewpaige1/studysync-api/utils"
)

// Bounds of the study-duration form field.
const (
	MinStudyMinutes = 10
	MaxStudyMinutes = 360
)

func (h *Handler) aiAvailable(w http.ResponseWriter) bool {
	if h.AI == nil {
		utils.WriteError(w, http.StatusServiceUnavailable, "AI features are not configured")
		return false
	}
	return true
}

// POST /api/ai/summary
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if !h.aiAvailable(w) || !h.decode(w, r, &req) {
		return
	}

	summary, err := h.AI.Summarize(r.Context(), req.Text)
	if err != nil {
		h.writeAIError(w, "summarize", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, summary)
}

// POST /api/ai/breaks
func (h *Handler) ScheduleBreaks(w http.ResponseWriter, r *http.Request) {
	var req struct {
		StudyDuration int `json:"studyDuration"`
	}
	if !h.aiAvailable(w) || !h.decode(w, r, &req) {
		return
	}
	if req.StudyDuration < MinStudyMinutes || req.StudyDuration > MaxStudyMinutes {
		utils.WriteError(w, http.StatusBadRequest,
			fmt.Sprintf("studyDuration must be between %d and %d minutes", MinStudyMinutes, MaxStudyMinutes))
		return
	}

	schedule, err := h.AI.ScheduleBreaks(r.Context(), req.StudyDuration)
	if err != nil {
		h.writeAIError(w, "schedule_breaks", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, schedule)
}

// POST /api/ai/quiz
func (h *Handler) GenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Topic        string `json:"topic"`
		NumQuestions int    `json:"numQuestions"`
	}
	if !h.aiAvailable(w) || !h.decode(w, r, &req) {
		return
	}

	quiz, err := h.AI.GenerateQuiz(r.Context(), req.Topic, req.NumQuestions)
	if err != nil {
		h.writeAIError(w, "generate_quiz", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, quiz)
}

// POST /api/ai/quiz/grade scores a quiz locally; no model call is made.
func (h *Handler) GradeQuiz(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quiz    ai.Quiz `json:"quiz"`
		Answers []int   `json:"answers"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	if err := req.Quiz.Validate(len(req.Quiz.Questions)); err != nil || len(req.Quiz.Questions) == 0 {
		utils.WriteError(w, http.StatusBadRequest, "quiz is not valid")
		return
	}
	for _, a := range req.Answers {
		if a < ai.Unanswered || a >= ai.OptionsPerQuestion {
			utils.WriteError(w, http.StatusBadRequest,
				fmt.Sprintf("answers must be between %d and %d", ai.Unanswered, ai.OptionsPerQuestion-1))
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, ai.GradeQuiz(req.Quiz, req.Answers))
}
