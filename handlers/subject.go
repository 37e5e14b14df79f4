package handlers

import (
	"io"
	"net/http"

	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/utils"
)

type subjectResponse struct {
	models.Subject
	Progress float64 `json:"progress"`
}

// GET /api/health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"loaded": h.Store.Loaded(),
	})
}

// GET /api/overview
func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, h.Store.Overview())
}

// GET /api/subjects
func (h *Handler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, models.StudyData{Subjects: h.Store.Subjects()})
}

// POST /api/subjects
func (h *Handler) CreateSubject(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title string `json:"title"`
		Color string `json:"color"`
	}
	if !h.decode(w, r, &req) || !requireTitle(w, req.Title) {
		return
	}

	subject := h.Store.AddSubject(r.Context(), req.Title, req.Color)
	h.log().Info("Created subject", "subject_id", subject.ID)
	utils.WriteJSON(w, http.StatusCreated, subject)
}

// PUT /api/subjects replaces the whole tree. The body has the same
// {"subjects": [...]} shape as the stored record.
func (h *Handler) ReplaceSubjects(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	data, err := models.DecodeStudyData(body)
	if err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := models.CheckIDs(data.Subjects); err != nil {
		utils.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	for _, s := range data.Subjects {
		for _, c := range s.Chapters {
			for _, st := range c.SubTopics {
				if !validPriority(w, st.Priority) {
					return
				}
			}
			for _, ref := range c.References {
				if !validReferenceType(w, ref.Type) {
					return
				}
			}
		}
	}

	h.Store.ReplaceSubjects(r.Context(), data.Subjects)
	h.log().Info("Replaced study data", "subjects", len(data.Subjects))
	utils.WriteJSON(w, http.StatusOK, data)
}

// GET /api/subjects/{subjectID}
func (h *Handler) GetSubjectByID(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectID")
	subject, ok := h.Store.GetSubject(subjectID)
	if !ok {
		notFound(w, "Subject", subjectID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, subjectResponse{Subject: subject, Progress: subject.Progress()})
}

// PATCH /api/subjects/{subjectID}
func (h *Handler) UpdateSubjectByID(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectID")
	var update models.SubjectUpdate
	if !h.decode(w, r, &update) {
		return
	}
	if update.Title != nil && !requireTitle(w, *update.Title) {
		return
	}

	subject, ok := h.Store.UpdateSubject(r.Context(), subjectID, update)
	if !ok {
		notFound(w, "Subject", subjectID)
		return
	}
	utils.WriteJSON(w, http.StatusOK, subject)
}

// DELETE /api/subjects/{subjectID}
func (h *Handler) DeleteSubjectByID(w http.ResponseWriter, r *http.Request) {
	subjectID := r.PathValue("subjectID")
	if !h.Store.DeleteSubject(r.Context(), subjectID) {
		notFound(w, "Subject", subjectID)
		return
	}
	h.log().Info("Deleted subject", "subject_id", subjectID)
	w.WriteHeader(http.StatusNoContent)
}
