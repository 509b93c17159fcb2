package domain

import "context"

// Catalog retrieves decoded GeoJSON documents from the earthquake catalog.
type Catalog interface {
	// FetchByMagnitude runs a magnitude-bounded query.
	FetchByMagnitude(ctx context.Context, q MagnitudeQuery) (FeatureCollection, error)

	// FetchByLocation runs a point-radius query.
	FetchByLocation(ctx context.Context, q LocationQuery) (FeatureCollection, error)
}
