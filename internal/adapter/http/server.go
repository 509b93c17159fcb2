package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// QueryAPI is the query surface the HTTP layer exposes.
type QueryAPI interface {
	FetchByMagnitude(ctx context.Context, q domain.MagnitudeQuery) (domain.ResultTable, error)
	FetchByLocation(ctx context.Context, q domain.LocationQuery) (domain.ResultTable, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the catalog query endpoints plus health, readiness, and
// metrics routes.
type Server struct {
	httpServer *http.Server
	api        QueryAPI
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /v1/earthquakes, /v1/earthquakes/nearby,
// /healthz, /readyz, and /metrics routes.
func NewServer(addr string, api QueryAPI, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		api:    api,
		logger: logger,
	}

	mux.HandleFunc("GET /v1/earthquakes", s.handleMagnitudeQuery)
	mux.HandleFunc("GET /v1/earthquakes/nearby", s.handleLocationQuery)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

func (s *Server) handleMagnitudeQuery(w http.ResponseWriter, r *http.Request) {
	q := domain.NewMagnitudeQuery()

	var err error
	if q.MinMagnitude, err = floatParam(r, "min_magnitude", q.MinMagnitude); err != nil {
		writeQueryError(w, err)
		return
	}
	if q.MaxMagnitude, err = floatParam(r, "max_magnitude", q.MaxMagnitude); err != nil {
		writeQueryError(w, err)
		return
	}
	if q.MaxGap, err = floatParam(r, "max_gap", q.MaxGap); err != nil {
		writeQueryError(w, err)
		return
	}
	if v := r.URL.Query().Get("event_type"); v != "" {
		q.EventType = v
	}

	table, err := s.api.FetchByMagnitude(r.Context(), q)
	if err != nil {
		s.logger.Warn("magnitude query failed", "error", err)
		writeQueryError(w, err)
		return
	}
	writeTable(w, r, table)
}

func (s *Server) handleLocationQuery(w http.ResponseWriter, r *http.Request) {
	lat, err := requiredFloatParam(r, "latitude")
	if err != nil {
		writeQueryError(w, err)
		return
	}
	lon, err := requiredFloatParam(r, "longitude")
	if err != nil {
		writeQueryError(w, err)
		return
	}

	q := domain.NewLocationQuery(lat, lon)
	if q.MaxRadiusKM, err = floatParam(r, "max_radius_km", q.MaxRadiusKM); err != nil {
		writeQueryError(w, err)
		return
	}
	if v := r.URL.Query().Get("event_type"); v != "" {
		q.EventType = v
	}

	table, err := s.api.FetchByLocation(r.Context(), q)
	if err != nil {
		s.logger.Warn("location query failed", "error", err)
		writeQueryError(w, err)
		return
	}
	writeTable(w, r, table)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

// writeTable responds with the full table, or its summary when ?summary=1.
func writeTable(w http.ResponseWriter, r *http.Request, table domain.ResultTable) {
	if v := r.URL.Query().Get("summary"); v == "1" || v == "true" {
		writeJSON(w, http.StatusOK, domain.Summarize(table))
		return
	}
	writeJSON(w, http.StatusOK, table)
}

// floatParam parses an optional float query parameter, returning def when absent.
func floatParam(r *http.Request, name string, def float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, &domain.InvalidParameterError{Param: name, Reason: "not a number"}
	}
	return v, nil
}

func requiredFloatParam(r *http.Request, name string) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, &domain.InvalidParameterError{Param: name, Reason: "required"}
	}
	return floatParam(r, name, 0)
}

// writeQueryError maps the domain error taxonomy onto HTTP status codes:
// caller mistakes are 400, upstream failures are 502.
func writeQueryError(w http.ResponseWriter, err error) {
	var invalid *domain.InvalidParameterError
	if errors.As(err, &invalid) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
