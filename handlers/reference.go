package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/utils"
)

// POST /api/subjects/{subjectID}/chapters/{chapterID}/references
func (h *Handler) CreateReference(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID := r.PathValue("subjectID"), r.PathValue("chapterID")
	var req struct {
		Title   string               `json:"title"`
		Type    models.ReferenceType `json:"type"`
		Content string               `json:"content"`
	}
	if !h.decode(w, r, &req) || !requireTitle(w, req.Title) || !validReferenceType(w, req.Type) {
		return
	}

	ref, ok := h.Store.AddReference(r.Context(), subjectID, chapterID, req.Title, req.Type, req.Content)
	if !ok {
		notFound(w, "Chapter", chapterID)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, ref)
}

func (h *Handler) UpdateReferenceByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID, referenceID := r.PathValue("subjectID"), r.PathValue("chapterID"), r.PathValue("referenceID")
	var update models.ReferenceUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if update.Title != nil && !requireTitle(w, *update.Title) {
		return
	}
	if update.Type != nil && !validReferenceType(w, *update.Type) {
		return
	}

	ref, ok := h.Store.UpdateReference(r.Context(), subjectID, chapterID, referenceID, update)
	if !ok {
		notFound(w, "Reference", referenceID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ref)
}

func (h *Handler) DeleteReferenceByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID, referenceID := r.PathValue("subjectID"), r.PathValue("chapterID"), r.PathValue("referenceID")
	if !h.Store.DeleteReference(r.Context(), subjectID, chapterID, referenceID) {
		notFound(w, "Reference", referenceID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
