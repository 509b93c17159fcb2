package usgs

import (
	"net/url"
	"strconv"

	"github.com/couchcryptid/quake-data-service/internal/domain"
)

// BuildMagnitudeURL serializes a magnitude query into a catalog request URL.
// The query is validated first; no URL is produced for invalid parameters.
// Emits exactly format, minmagnitude, maxmagnitude, maxgap, and eventtype.
func BuildMagnitudeURL(baseURL string, q domain.MagnitudeQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	params := url.Values{
		"format":       {"geojson"},
		"minmagnitude": {formatFloat(q.MinMagnitude)},
		"maxmagnitude": {formatFloat(q.MaxMagnitude)},
		"maxgap":       {formatFloat(q.MaxGap)},
		"eventtype":    {q.EventType},
	}
	return baseURL + "?" + params.Encode(), nil
}

// BuildLocationURL serializes a location query into a catalog request URL.
// Emits exactly format, latitude, longitude, maxradiuskm, and eventtype.
func BuildLocationURL(baseURL string, q domain.LocationQuery) (string, error) {
	if err := q.Validate(); err != nil {
		return "", err
	}
	params := url.Values{
		"format":      {"geojson"},
		"latitude":    {formatFloat(q.Latitude)},
		"longitude":   {formatFloat(q.Longitude)},
		"maxradiuskm": {formatFloat(q.MaxRadiusKM)},
		"eventtype":   {q.EventType},
	}
	return baseURL + "?" + params.Encode(), nil
}

// formatFloat renders the shortest decimal representation that round-trips,
// so "90" stays "90" rather than "90.000000".
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
