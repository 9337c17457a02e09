package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agarcia/secfund/internal/fundamentals"
	"github.com/agarcia/secfund/pkg/logger"
)

// FundamentalsProvider builds the full report for a ticker.
type FundamentalsProvider interface {
	Fundamentals(ctx context.Context, ticker string) (*fundamentals.Report, error)
}

// FundamentalsHandler handles fundamentals API endpoints.
type FundamentalsHandler struct {
	service FundamentalsProvider
	logger  *logger.Logger
}

// NewFundamentalsHandler creates a new fundamentals handler.
func NewFundamentalsHandler(service FundamentalsProvider, log *logger.Logger) *FundamentalsHandler {
	return &FundamentalsHandler{
		service: service,
		logger:  log,
	}
}

// Get returns the full fundamentals report.
// GET /api/fundamentals/{ticker}
func (h *FundamentalsHandler) Get(w http.ResponseWriter, r *http.Request) {
	ticker := mux.Vars(r)["ticker"]

	report, err := h.service.Fundamentals(r.Context(), ticker)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Error("Failed to build fundamentals")
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, report)
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{
		"error": message,
	})
}
