package usgs

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/couchcryptid/quake-data-service/internal/domain"
	"github.com/couchcryptid/quake-data-service/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleFeature = `{
	"type": "FeatureCollection",
	"features": [{
		"type": "Feature",
		"id": "us7000abcd",
		"properties": {"mag": 5.2, "place": "35 km W of Anchorage, Alaska", "time": 1741943213000,
			"sig": 416, "net": "us", "code": "7000abcd", "dmin": 0.52, "nst": 23, "rms": 0.81,
			"gap": 45, "magType": "mb", "type": "earthquake"},
		"geometry": {"type": "Point", "coordinates": [-150.1, 61.2, 40.0]}
	}]
}`

func testClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		baseURL:    baseURL,
		metrics:    observability.NewMetricsForTesting(),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestClient_FetchByMagnitude_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "geojson", r.URL.Query().Get("format"))
		assert.Equal(t, "4.5", r.URL.Query().Get("minmagnitude"))
		assert.Equal(t, "earthquake", r.URL.Query().Get("eventtype"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeature))
	}))
	defer srv.Close()

	q := domain.NewMagnitudeQuery()
	q.MinMagnitude = 4.5

	fc, err := testClient(srv.URL).FetchByMagnitude(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, fc.Features, 1)

	f := fc.Features[0]
	assert.Equal(t, "us7000abcd", f.ID)
	assert.Equal(t, 5.2, *f.Properties.Mag)
	assert.Equal(t, "us", *f.Properties.Net)
	require.NotNil(t, f.Geometry)
	assert.Equal(t, []float64{-150.1, 61.2, 40.0}, f.Geometry.Coordinates)
}

func TestClient_FetchByLocation_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "61.2", r.URL.Query().Get("latitude"))
		assert.Equal(t, "-149.9", r.URL.Query().Get("longitude"))
		assert.Equal(t, "100", r.URL.Query().Get("maxradiuskm"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(sampleFeature))
	}))
	defer srv.Close()

	fc, err := testClient(srv.URL).FetchByLocation(context.Background(), domain.NewLocationQuery(61.2, -149.9))
	require.NoError(t, err)
	assert.Len(t, fc.Features, 1)
}

func TestClient_InvalidParamsSkipNetwork(t *testing.T) {
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	q := domain.NewMagnitudeQuery()
	q.MaxGap = 999

	_, err := testClient(srv.URL).FetchByMagnitude(context.Background(), q)
	var invalid *domain.InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, 0, hits, "validation failures must not reach the network")
}

func TestClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchByMagnitude(context.Background(), domain.NewMagnitudeQuery())
	var transport *domain.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, http.StatusBadGateway, transport.StatusCode)
}

func TestClient_ConnectionFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // server is already down

	_, err := testClient(srv.URL).FetchByMagnitude(context.Background(), domain.NewMagnitudeQuery())
	var transport *domain.TransportError
	require.ErrorAs(t, err, &transport)
	assert.Equal(t, 0, transport.StatusCode)
}

func TestClient_MalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features": [`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchByMagnitude(context.Background(), domain.NewMagnitudeQuery())
	var decode *domain.DecodeError
	require.ErrorAs(t, err, &decode)
}

func TestClient_MissingFeaturesMember(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "FeatureCollection", "metadata": {}}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).FetchByMagnitude(context.Background(), domain.NewMagnitudeQuery())
	var decode *domain.DecodeError
	require.ErrorAs(t, err, &decode)
	assert.Contains(t, err.Error(), "features")
}

func TestClient_EmptyFeaturesIsNotAnError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
	}))
	defer srv.Close()

	fc, err := testClient(srv.URL).FetchByMagnitude(context.Background(), domain.NewMagnitudeQuery())
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
	assert.NotNil(t, fc.Features)
}
