package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/agarcia/secfund/internal/api/handlers"
	"github.com/agarcia/secfund/pkg/logger"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(fundamentalsHandler *handlers.FundamentalsHandler, occupancyHandler *handlers.OccupancyHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check and service metadata
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")
	r.HandleFunc("/", homeHandler).Methods("GET")

	// API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/fundamentals/{ticker}", fundamentalsHandler.Get).Methods("GET")
	api.HandleFunc("/occupancy/{ticker}", occupancyHandler.Get).Methods("GET")
	api.HandleFunc("/occupancy", occupancyHandler.Post).Methods("POST")

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "secfund-api",
	})
}

// homeHandler describes the service and its endpoints.
func homeHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message":     "SEC Financial Data API",
		"version":     "2.2",
		"data_source": "SEC EDGAR (Annual 10-K Reports)",
		"endpoints": map[string]string{
			"GET /api/fundamentals/{ticker}": "Get comprehensive financial fundamentals with industry-specific metrics",
			"GET /api/occupancy/{ticker}":    "Get REIT occupancy rate (also included in fundamentals for REITs)",
			"POST /api/occupancy":            "Post {'ticker': 'STAG'} for occupancy",
		},
		"features": []string{
			"100% SEC EDGAR data (no third-party APIs for fundamentals)",
			"Consistent annual (10-K) period data to prevent metric mixing",
			"Data validation to catch impossible values and missing critical fields",
			"Comprehensive balance sheet, income statement, cash flow",
			"Industry-specific metrics (Banks, REITs, Insurance, etc.)",
			"Automatic industry detection via SIC codes",
			"Market data (best-effort) to compute PE/EV where available",
			"One-off detection flags to avoid misleading trend analysis",
			"Standardized schema for consistent downstream processing",
			"30+ calculated ratios with validation",
		},
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
