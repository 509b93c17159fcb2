package usgs

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
)

// Client implements domain.Catalog against the USGS fdsnws event service.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a catalog client. baseURL is the full query endpoint,
// e.g. https://earthquake.usgs.gov/fdsnws/event/1/query.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// FetchByMagnitude runs a magnitude-bounded query against the catalog.
func (c *Client) FetchByMagnitude(ctx context.Context, q domain.MagnitudeQuery) (domain.FeatureCollection, error) {
	u, err := BuildMagnitudeURL(c.baseURL, q)
	if err != nil {
		return domain.FeatureCollection{}, err
	}
	return c.doRequest(ctx, u, "magnitude")
}

// FetchByLocation runs a point-radius query against the catalog.
func (c *Client) FetchByLocation(ctx context.Context, q domain.LocationQuery) (domain.FeatureCollection, error) {
	u, err := BuildLocationURL(c.baseURL, q)
	if err != nil {
		return domain.FeatureCollection{}, err
	}
	return c.doRequest(ctx, u, "location")
}

func (c *Client) doRequest(ctx context.Context, fullURL, kind string) (domain.FeatureCollection, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.FeatureCollection{}, &domain.TransportError{URL: fullURL, Err: err}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.UpstreamDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	if err != nil {
		return domain.FeatureCollection{}, &domain.TransportError{URL: fullURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("catalog returned non-success status", "status", resp.StatusCode, "url", fullURL)
		return domain.FeatureCollection{}, &domain.TransportError{URL: fullURL, StatusCode: resp.StatusCode}
	}

	var fc domain.FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		return domain.FeatureCollection{}, &domain.DecodeError{Reason: "invalid JSON", Err: err}
	}

	// A document without a "features" member is not a feature collection,
	// even if it parsed as JSON. An empty catalog returns "features": [].
	if fc.Features == nil {
		return domain.FeatureCollection{}, &domain.DecodeError{Reason: "missing features member"}
	}

	return fc, nil
}
