package query

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
)

// Service ties the catalog client and the flattener together: validate
// parameters, fetch, flatten, return a table. It holds no per-call state;
// every call builds a fresh table.
type Service struct {
	catalog domain.Catalog
	logger  *slog.Logger
	metrics *observability.Metrics
	ready   atomic.Bool
}

// NewService creates a query service over the given catalog.
func NewService(catalog domain.Catalog, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		catalog: catalog,
		logger:  logger,
		metrics: metrics,
	}
}

// CheckReadiness returns nil once at least one catalog query has succeeded,
// or an error describing why the service is not yet ready.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no successful catalog query yet")
	}
	return nil
}

// FetchByMagnitude runs a magnitude-bounded query and returns the flattened
// table. Parameter validation happens before any network call.
func (s *Service) FetchByMagnitude(ctx context.Context, q domain.MagnitudeQuery) (domain.ResultTable, error) {
	if err := q.Validate(); err != nil {
		s.metrics.Queries.WithLabelValues("magnitude", "invalid").Inc()
		return domain.ResultTable{}, err
	}

	fc, err := s.catalog.FetchByMagnitude(ctx, q)
	if err != nil {
		s.metrics.Queries.WithLabelValues("magnitude", outcome(err)).Inc()
		return domain.ResultTable{}, err
	}

	table := domain.FlattenMagnitude(fc)
	s.recordSuccess("magnitude", table)
	return table, nil
}

// FetchByLocation runs a point-radius query and returns the flattened table,
// with longitude/latitude/depth columns taken from each feature's geometry.
func (s *Service) FetchByLocation(ctx context.Context, q domain.LocationQuery) (domain.ResultTable, error) {
	if err := q.Validate(); err != nil {
		s.metrics.Queries.WithLabelValues("location", "invalid").Inc()
		return domain.ResultTable{}, err
	}

	fc, err := s.catalog.FetchByLocation(ctx, q)
	if err != nil {
		s.metrics.Queries.WithLabelValues("location", outcome(err)).Inc()
		return domain.ResultTable{}, err
	}

	table, err := domain.FlattenLocation(fc)
	if err != nil {
		s.logger.Warn("discarding structurally damaged response", "error", err)
		s.metrics.Queries.WithLabelValues("location", "malformed").Inc()
		return domain.ResultTable{}, err
	}

	s.recordSuccess("location", table)
	return table, nil
}

func (s *Service) recordSuccess(kind string, table domain.ResultTable) {
	s.metrics.Queries.WithLabelValues(kind, "success").Inc()
	s.metrics.RowsFlattened.Add(float64(table.Len()))
	s.ready.Store(true)
	s.logger.Debug("catalog query flattened", "kind", kind, "rows", table.Len())
}

// outcome maps a fetch error onto a metrics label.
func outcome(err error) string {
	var invalid *domain.InvalidParameterError
	var transport *domain.TransportError
	var decode *domain.DecodeError
	switch {
	case errors.As(err, &invalid):
		return "invalid"
	case errors.As(err, &transport):
		return "transport"
	case errors.As(err, &decode):
		return "decode"
	default:
		return "error"
	}
}
