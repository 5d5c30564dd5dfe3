package quiz

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

// RegisterRoutes registers quiz endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/quiz/generate", h.Generate).Methods("GET")
	protected.HandleFunc("/quiz/submit", h.Submit).Methods("POST")
	protected.HandleFunc("/quiz/history", h.History).Methods("GET")
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	limit := 50
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 200 {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		limit = n
	}

	attempts, err := h.service.History(userID, limit)
	if err != nil {
		log.Printf("[quiz] history error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch history"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"attempts": attempts,
		"count":    len(attempts),
	})
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var difficulty *string
	if v := q.Get("difficulty"); v != "" {
		if !models.ValidDifficulties[models.Difficulty(v)] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid difficulty"})
			return
		}
		difficulty = &v
	}

	count := 0
	if v := q.Get("count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid count"})
			return
		}
		count = n
	}

	questions, err := h.service.Generate(difficulty, count)
	if err != nil {
		log.Printf("[quiz] generate error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to generate quiz"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"questions": questions,
		"count":     len(questions),
	})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	userID, ok := r.Context().Value("user_id").(int64)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.QuizSubmitRequest
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
	case errors.Is(err, ErrNoQuestion):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Pattern has no quiz question"})
	case errors.Is(err, mastery.ErrConflict):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Concurrent update, please retry"})
	case err != nil:
		log.Printf("[quiz] submit error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to submit answer"})
	default:
		writeJSON(w, http.StatusOK, resp)
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[quiz] failed to encode response: %v", err)
	}
}
