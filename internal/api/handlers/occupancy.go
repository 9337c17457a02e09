package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/agarcia/secfund/internal/occupancy"
	"github.com/agarcia/secfund/pkg/logger"
)

// OccupancyProvider extracts an occupancy rate from a company's filings.
type OccupancyProvider interface {
	Extract(ctx context.Context, ticker string) (*occupancy.Result, error)
}

// OccupancyHandler handles occupancy API endpoints.
type OccupancyHandler struct {
	miner  OccupancyProvider
	logger *logger.Logger
}

// NewOccupancyHandler creates a new occupancy handler.
func NewOccupancyHandler(miner OccupancyProvider, log *logger.Logger) *OccupancyHandler {
	return &OccupancyHandler{
		miner:  miner,
		logger: log,
	}
}

// Get extracts the occupancy rate for a ticker.
// GET /api/occupancy/{ticker}
func (h *OccupancyHandler) Get(w http.ResponseWriter, r *http.Request) {
	h.extract(w, r, mux.Vars(r)["ticker"])
}

// Post extracts the occupancy rate for the ticker in the request body.
// POST /api/occupancy {"ticker": "STAG"}
func (h *OccupancyHandler) Post(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Ticker string `json:"ticker"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Ticker == "" {
		respondError(w, http.StatusBadRequest, "Missing 'ticker'")
		return
	}
	h.extract(w, r, body.Ticker)
}

func (h *OccupancyHandler) extract(w http.ResponseWriter, r *http.Request, ticker string) {
	result, err := h.miner.Extract(r.Context(), ticker)
	if err != nil {
		h.logger.WithError(err).WithField("ticker", ticker).Warn("Occupancy extraction failed")
		respondError(w, http.StatusNotFound, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}
