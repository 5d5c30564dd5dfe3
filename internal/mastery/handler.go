package mastery

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/pattern-mastery/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers mastery endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/mastery/overview", h.GetOverview).Methods("GET")
	protected.HandleFunc("/mastery/due", h.GetDueItems).Methods("GET")
	protected.HandleFunc("/mastery/submit", h.SubmitAnswer).Methods("POST")
	protected.HandleFunc("/mastery/pattern/{patternID}", h.GetRecord).Methods("GET")
}

// getUserID extracts the authenticated user ID from the request context.
func getUserID(r *http.Request) (int64, bool) {
	uid, ok := r.Context().Value("user_id").(int64)
	return uid, ok
}

func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	var req models.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	if req.PatternID == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "pattern_id is required"})
		return
	}
	if req.IsCorrect == nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "is_correct is required"})
		return
	}
	if req.TimeTakenSeconds <= 0 {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "time_taken_seconds must be positive"})
		return
	}

	record, err := h.service.SubmitAnswer(models.AnswerOutcome{
		UserID:           userID,
		PatternID:        req.PatternID,
		IsCorrect:        *req.IsCorrect,
		TimeTakenSeconds: req.TimeTakenSeconds,
		HintsUsed:        req.HintsUsed,
	})
	if err != nil {
		writeError(w, err, "Failed to submit answer")
		return
	}

	writeJSON(w, http.StatusOK, models.SubmitAnswerResponse{Success: true, Mastery: *record})
}

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	overview, err := h.service.GetOverview(userID)
	if err != nil {
		log.Printf("[mastery] GetOverview error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get overview"})
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

func (h *Handler) GetDueItems(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	due, err := h.service.GetDueItems(userID, time.Now().UTC())
	if err != nil {
		log.Printf("[mastery] GetDueItems error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to get due items"})
		return
	}

	writeJSON(w, http.StatusOK, models.DueItemsResponse{PatternIDs: due})
}

func (h *Handler) GetRecord(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserID(r)
	if !ok {
		writeJSON(w, http.StatusUnauthorized, models.ErrorResponse{Error: "Authentication required"})
		return
	}

	patternID := mux.Vars(r)["patternID"]

	record, err := h.service.GetRecord(userID, patternID)
	if err != nil {
		writeError(w, err, "Failed to get mastery record")
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrInvalidInput):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	case errors.Is(err, ErrConflict):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Concurrent update, please retry"})
	default:
		log.Printf("[mastery] %s: %v", fallback, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}
