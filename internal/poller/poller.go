package poller

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
)

// TableFetcher runs a magnitude query and returns the flattened table.
type TableFetcher interface {
	FetchByMagnitude(ctx context.Context, q domain.MagnitudeQuery) (domain.ResultTable, error)
}

// RowPublisher writes a table's rows to the destination.
type RowPublisher interface {
	PublishRows(ctx context.Context, table domain.ResultTable) error
}

// Poller periodically runs a fixed magnitude query against the catalog and
// publishes the flattened rows. The catalog returns the current result set on
// each cycle, so downstream consumers rely on the keyed messages for
// deduplication; the poller itself never retries a query mid-cycle.
type Poller struct {
	fetcher   TableFetcher
	publisher RowPublisher
	query     domain.MagnitudeQuery
	interval  time.Duration
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a Poller running the given query every interval.
func New(fetcher TableFetcher, publisher RowPublisher, q domain.MagnitudeQuery, interval time.Duration, logger *slog.Logger, metrics *observability.Metrics) *Poller {
	return &Poller{
		fetcher:   fetcher,
		publisher: publisher,
		query:     q,
		interval:  interval,
		logger:    logger,
		metrics:   metrics,
	}
}

// Run executes the poll loop until the context is cancelled.
func (p *Poller) Run(ctx context.Context) error {
	p.logger.Info("poller started", "interval", p.interval, "min_magnitude", p.query.MinMagnitude)
	p.metrics.PollerRunning.Set(1)
	defer p.metrics.PollerRunning.Set(0)

	// Failed cycles retry sooner than the poll interval: start at 5s, double
	// each consecutive failure, never beyond the interval itself.
	const (
		baseBackoff = 5 * time.Second
		maxBackoff  = 5 * time.Minute
	)
	backoff := baseBackoff

	for {
		wait := p.interval
		if err := p.runCycle(ctx); err != nil {
			if ctx.Err() != nil {
				p.logger.Info("poller stopping", "reason", ctx.Err())
				return nil
			}
			p.metrics.PollErrors.Inc()
			p.logger.Error("poll cycle failed", "error", err)
			wait = min(backoff, p.interval)
			backoff = min(backoff*2, maxBackoff)
		} else {
			backoff = baseBackoff
		}

		select {
		case <-ctx.Done():
			p.logger.Info("poller stopping", "reason", ctx.Err())
			return nil
		case <-time.After(wait):
		}
	}
}

func (p *Poller) runCycle(ctx context.Context) error {
	table, err := p.fetcher.FetchByMagnitude(ctx, p.query)
	if err != nil {
		return err
	}
	if table.Len() == 0 {
		p.logger.Debug("no events this cycle")
		return nil
	}

	if err := p.publisher.PublishRows(ctx, table); err != nil {
		return fmt.Errorf("publish rows: %w", err)
	}
	p.metrics.RowsPublished.Add(float64(table.Len()))
	p.logger.Info("published event rows", "rows", table.Len())
	return nil
}
