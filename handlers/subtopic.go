package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/utils"
)

// POST /api/subjects/{subjectID}/chapters/{chapterID}/subtopics
func (h *Handler) CreateSubTopic(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID := r.PathValue("subjectID"), r.PathValue("chapterID")
	var req struct {
		Title    string          `json:"title"`
		Priority models.Priority `json:"priority"`
	}
	if !h.decode(w, r, &req) || !requireTitle(w, req.Title) {
		return
	}
	if req.Priority == "" {
		req.Priority = models.PriorityMedium
	}
	if !validPriority(w, req.Priority) {
		return
	}

	subTopic, ok := h.Store.AddSubTopic(r.Context(), subjectID, chapterID, req.Title, req.Priority)
	if !ok {
		notFound(w, "Chapter", chapterID)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, subTopic)
}

// PATCH .../subtopics/{subTopicID}, most often {"completed": true}.
func (h *Handler) UpdateSubTopicByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID, subTopicID := r.PathValue("subjectID"), r.PathValue("chapterID"), r.PathValue("subTopicID")
	var update models.SubTopicUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if update.Title != nil && !requireTitle(w, *update.Title) {
		return
	}
	if update.Priority != nil && !validPriority(w, *update.Priority) {
		return
	}

	subTopic, ok := h.Store.UpdateSubTopic(r.Context(), subjectID, chapterID, subTopicID, update)
	if !ok {
		notFound(w, "Sub-topic", subTopicID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, subTopic)
}

func (h *Handler) DeleteSubTopicByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID, subTopicID := r.PathValue("subjectID"), r.PathValue("chapterID"), r.PathValue("subTopicID")
	if !h.Store.DeleteSubTopic(r.Context(), subjectID, chapterID, subTopicID) {
		notFound(w, "Sub-topic", subTopicID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
