package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/andrewpaige1/studysync-api/ai"
	"github.com/andrewpaige1/studysync-api/logger"
	"github.com/andrewpaige1/studysync-api/models"
	"github.com/andrewpaige1/studysync-api/store"
	"github.com/andrewpaige1/studysync-api/utils"
)

// maxBodyBytes caps request bodies; a full-tree PUT is the largest payload.
const maxBodyBytes = 4 << 20

// Handler serves the study API. AI may be nil, in which case the AI
// endpoints answer 503 and everything else keeps working.
type Handler struct {
	Store *store.Store
	AI    ai.Service
	Log   *logger.Logger
}

func (h *Handler) log() *logger.Logger {
	if h.Log == nil {
		return logger.NewNop()
	}
	return h.Log
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := utils.DecodeJSON(r, v); err != nil {
		h.log().Debug("Invalid request body", "path", r.URL.Path, "error", err)
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	return true
}

func notFound(w http.ResponseWriter, what, id string) {
	utils.WriteError(w, http.StatusNotFound, what+" with ID "+id+" not found")
}

func requireTitle(w http.ResponseWriter, title string) bool {
	if strings.TrimSpace(title) == "" {
		utils.WriteError(w, http.StatusBadRequest, "title is required")
		return false
	}
	return true
}

func validPriority(w http.ResponseWriter, p models.Priority) bool {
	if !p.Valid() {
		utils.WriteError(w, http.StatusBadRequest, "priority must be one of low, medium, high")
		return false
	}
	return true
}

func validReferenceType(w http.ResponseWriter, t models.ReferenceType) bool {
	if !t.Valid() {
		utils.WriteError(w, http.StatusBadRequest, "type must be link or note")
		return false
	}
	return true
}

// writeAIError maps AI failures onto HTTP statuses.
func (h *Handler) writeAIError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ai.ErrNotConfigured):
		utils.WriteError(w, http.StatusServiceUnavailable, "AI features are not configured")
	case errors.Is(err, ai.ErrInputTooShort), errors.Is(err, ai.ErrInvalidInput):
		utils.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		h.log().Error("AI request failed", "operation", op, "error", err)
		utils.WriteError(w, http.StatusBadGateway, "AI request failed")
	}
}
