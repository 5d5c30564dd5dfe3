package catalog

import (
	"database/sql"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/pattern-mastery/backend/internal/models"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers catalog endpoints on the protected subrouter.
func (h *Handler) RegisterRoutes(protected *mux.Router) {
	protected.HandleFunc("/patterns", h.ListPatterns).Methods("GET")
	protected.HandleFunc("/patterns/{patternID}", h.GetPattern).Methods("GET")
}

func (h *Handler) ListPatterns(w http.ResponseWriter, r *http.Request) {
	var req models.PatternListRequest

	q := r.URL.Query()
	if v := q.Get("difficulty"); v != "" {
		if !models.ValidDifficulties[models.Difficulty(v)] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid difficulty"})
			return
		}
		req.Difficulty = &v
	}
	if v := q.Get("category"); v != "" {
		if !models.ValidCategories[models.Category(v)] {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid category"})
			return
		}
		req.Category = &v
	}
	if v := q.Get("search"); v != "" {
		req.Search = &v
	}
	if v := q.Get("limit"); v != "" {
		limit, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid limit"})
			return
		}
		req.Limit = limit
	}
	if v := q.Get("offset"); v != "" {
		offset, err := strconv.Atoi(v)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid offset"})
			return
		}
		req.Offset = offset
	}

	patterns, err := h.service.List(req)
	if err != nil {
		log.Printf("[catalog] list patterns error: %v", err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to list patterns"})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"patterns": patterns,
		"count":    len(patterns),
	})
}

func (h *Handler) GetPattern(w http.ResponseWriter, r *http.Request) {
	userID, _ := r.Context().Value("user_id").(int64)
	patternID := mux.Vars(r)["patternID"]

	resp, err := h.service.Get(userID, patternID)
	if errors.Is(err, sql.ErrNoRows) {
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Pattern not found"})
		return
	}
	if err != nil {
		log.Printf("[catalog] get pattern %s error: %v", patternID, err)
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: "Failed to fetch pattern"})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("[catalog] failed to encode response: %v", err)
	}
}
