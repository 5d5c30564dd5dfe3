package practice

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pattern-mastery/backend/internal/mastery"
	"github.com/pattern-mastery/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers practice endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/practice/generate", h.Generate).Methods("GET")
	protected.HandleFunc("/practice/submit", h.Submit).Methods("POST")
	protected.HandleFunc("/practice/sessions", h.SaveSession).Methods("POST")
	protected.HandleFunc("/practice/sessions", h.ListSessions).Methods("GET")
}

func (h *Handler) ListSessions(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := 20
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 100 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = n
	}

	sessions, err := h.service.RecentSessions(userID, limit)
	if err != nil {
		log.Printf("[practice] list sessions error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch sessions"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"sessions": sessions,
		"count":    len(sessions),
	})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	mode := models.PracticeMode(r.URL.Query().Get("mode"))
	if mode == "" {
		mode = models.ModeEndless
	}
	if !models.ValidPracticeModes[mode] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid practice mode"})
		return
	}

	count := 0
	if v := r.URL.Query().Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid count"})
			return
		}
		count = n
	}

	patterns, err := h.service.Generate(userID, mode, count)
	if err != nil {
		log.Printf("[practice] generate error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate practice set"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"mode":     mode,
		"patterns": patterns,
		"count":    len(patterns),
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.PracticeSubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if req.PatternID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "pattern_id is required"})
		return
	}
	if req.SelectedAnswer == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "selected_answer is required"})
		return
	}
	if req.TimeTakenSeconds <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_taken_seconds must be positive"})
		return
	}

	resp, err := h.service.Submit(userID, req)
	switch {
	case errors.Is(err, ErrPatternNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Pattern not found"})
	case errors.Is(err, mastery.ErrConflict):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Concurrent update, please retry"})
	case err != nil:
		log.Printf("[practice] submit error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit answer"})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func (h *Handler) SaveSession(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SaveSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}
	if !models.ValidPracticeModes[models.PracticeMode(req.Mode)] {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid practice mode"})
		return
	}
	if req.PatternsAttempted < 0 || req.CorrectCount < 0 || req.IncorrectCount < 0 || req.DurationSeconds < 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Session counts must be non-negative"})
		return
	}
	if req.CorrectCount+req.IncorrectCount > req.PatternsAttempted {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Correct and incorrect counts exceed patterns attempted"})
		return
	}

	sess, err := h.service.SaveSession(userID, req)
	if err != nil {
		log.Printf("[practice] save session error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to save session"})
		return
	}

	writeJSON(w, http.StatusCreated, models.SaveSessionResponse{Success: true, Session: *sess})
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[practice] failed to encode response: %v", err)
	}
}
