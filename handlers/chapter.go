package handlers

import (
	"net/http"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/utils"
)

// POST /api/subjects/{subjectID}/chapters
func (h *Handler) CreateChapter(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectID")
	var req struct {
		Title string `json:"title"`
	}
	if !h.decode(w, r, &req) || !requireTitle(w, req.Title) {
		return
	}

	chapter, ok := h.Store.AddChapter(r.Context(), subjectID, req.Title)
	if !ok {
		notFound(w, "Subject", subjectID)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, chapter)
}

func (h *Handler) GetChapterByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID := r.PathValue("subjectID"), r.PathValue("chapterID")
	chapter, ok := h.Store.GetChapter(subjectID, chapterID)
	if !ok {
		notFound(w, "Chapter", chapterID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, chapter)
}

func (h *Handler) UpdateChapterByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID := r.PathValue("subjectID"), r.PathValue("chapterID")
	var update models.ChapterUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if update.Title != nil && !requireTitle(w, *update.Title) {
		return
	}

	chapter, ok := h.Store.UpdateChapter(r.Context(), subjectID, chapterID, update)
	if !ok {
		notFound(w, "Chapter", chapterID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, chapter)
}

// DELETE removes the chapter with all of its sub-topics and references.
func (h *Handler) DeleteChapterByID(w http.ResponseWriter, r *http.Request) {
	subjectID, chapterID := r.PathValue("subjectID"), r.PathValue("chapterID")
	if !h.Store.DeleteChapter(r.Context(), subjectID, chapterID) {
		notFound(w, "Chapter", chapterID)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
