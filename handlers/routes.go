package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studysync-api/middleware"
)

// Routes registers every endpoint on a new ServeMux.
func (h *Handler) Routes() *http.ServeMux {
	loaded := middleware.RequireLoaded(h.Store)
	mux := http.NewServeMux()

	mux.HandleFunc("GET /api/health", h.Health)
	mux.HandleFunc("GET /api/overview", loaded(h.GetOverview))

	// Subjects
	mux.HandleFunc("GET /api/subjects", loaded(h.GetSubjects))
	mux.HandleFunc("POST /api/subjects", loaded(h.CreateSubject))
	mux.HandleFunc("PUT /api/subjects", loaded(h.ReplaceSubjects))
	mux.HandleFunc("GET /api/subjects/{subjectID}", loaded(h.GetSubjectByID))
	mux.HandleFunc("PATCH /api/subjects/{subjectID}", loaded(h.UpdateSubjectByID))
	mux.HandleFunc("DELETE /api/subjects/{subjectID}", loaded(h.DeleteSubjectByID))

	// Chapters
	mux.HandleFunc("POST /api/subjects/{subjectID}/chapters", loaded(h.CreateChapter))
	mux.HandleFunc("GET /api/subjects/{subjectID}/chapters/{chapterID}", loaded(h.GetChapterByID))
	mux.HandleFunc("PATCH /api/subjects/{subjectID}/chapters/{chapterID}", loaded(h.UpdateChapterByID))
	mux.HandleFunc("DELETE /api/subjects/{subjectID}/chapters/{chapterID}", loaded(h.DeleteChapterByID))

	// Sub-topics
	mux.HandleFunc("POST /api/subjects/{subjectID}/chapters/{chapterID}/subtopics", loaded(h.CreateSubTopic))
	mux.HandleFunc("PATCH /api/subjects/{subjectID}/chapters/{chapterID}/subtopics/{subTopicID}", loaded(h.UpdateSubTopicByID))
	mux.HandleFunc("DELETE /api/subjects/{subjectID}/chapters/{chapterID}/subtopics/{subTopicID}", loaded(h.DeleteSubTopicByID))

	// References
	mux.HandleFunc("POST /api/subjects/{subjectID}/chapters/{chapterID}/references", loaded(h.CreateReference))
	mux.HandleFunc("PATCH /api/subjects/{subjectID}/chapters/{chapterID}/references/{referenceID}", loaded(h.UpdateReferenceByID))
	mux.HandleFunc("DELETE /api/subjects/{subjectID}/chapters/{chapterID}/references/{referenceID}", loaded(h.DeleteReferenceByID))

	// AI
	mux.HandleFunc("POST /api/ai/summary", h.Summarize)
	mux.HandleFunc("POST /api/ai/breaks", h.ScheduleBreaks)
	mux.HandleFunc("POST /api/ai/quiz", h.GenerateQuiz)
	mux.HandleFunc("POST /api/ai/quiz/grade", h.GradeQuiz)

	return mux
}
