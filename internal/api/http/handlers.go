package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"platefeed/internal/domain"
	"platefeed/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Feed service.FeedServiceInterface
}

func NewHandler(feedSvc service.FeedServiceInterface) *Handler {
	return &Handler{Feed: feedSvc}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/feed/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/api/feed", h.buildFeed).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "feed-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}

func (h *Handler) buildFeed(w http.ResponseWriter, r *http.Request) {
	var req domain.FeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.Feed.BuildFeed(r.Context(), &req)
	if err != nil {
		switch {
		case domain.IsValidation(err):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, context.DeadlineExceeded):
			http.Error(w, "feed request timed out", http.StatusGatewayTimeout)
		default:
			// Full detail stays server-side.
			log.Printf("[feed-svc] feed request failed: %v", err)
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
