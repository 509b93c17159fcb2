package domain

import "time"

// FeatureCollection is the decoded top-level GeoJSON document returned by the
// catalog. Features is nil when the document has no "features" member at all,
// which callers treat as a decode failure; an empty catalog returns [].
type FeatureCollection struct {
	Features []Feature `json:"features"`
}

// Feature is one catalog event: a properties bag plus a Point geometry.
type Feature struct {
	ID         string     `json:"id"`
	Properties Properties `json:"properties"`
	Geometry   *Geometry  `json:"geometry"`
}

// Properties is the raw per-event bag with the catalog's terse key names.
// Pointer fields distinguish "absent from the response" from zero values.
type Properties struct {
	Mag     *float64 `json:"mag"`
	Place   *string  `json:"place"`
	Time    *int64   `json:"time"` // epoch milliseconds
	Sig     *int     `json:"sig"`
	Net     *string  `json:"net"`
	Code    *string  `json:"code"`
	Dmin    *float64 `json:"dmin"`
	Nst     *int     `json:"nst"`
	RMS     *float64 `json:"rms"`
	Gap     *float64 `json:"gap"`
	MagType *string  `json:"magType"`
	Type    *string  `json:"type"`
}

// Geometry holds a GeoJSON Point: coordinates are [lon, lat, depth].
type Geometry struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

// EventRow is the flattened, renamed projection of one catalog feature.
// Nil means the catalog omitted the property for this event.
type EventRow struct {
	Magnitude         *float64 `json:"magnitude"`
	Place             *string  `json:"place"`
	Time              *int64   `json:"time"`
	Significance      *int     `json:"significance"`
	Network           *string  `json:"network"`
	Code              *string  `json:"code"`
	StationDistance   *float64 `json:"station_distance"`
	NumOfStations     *int     `json:"num_of_stations"`
	RMS               *float64 `json:"rms"`
	Gap               *float64 `json:"gap"`
	MeasurementMethod *string  `json:"measurement_method"`
	EventType         *string  `json:"event_type"`

	// Geometry-derived columns, set only on rows built from a location query.
	Longitude *float64 `json:"longitude,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Depth     *float64 `json:"depth,omitempty"`
}

// ResultTable is an ordered set of flattened rows. Row order matches the
// catalog's returned feature order. Tables never mutate after creation.
type ResultTable struct {
	Rows        []EventRow `json:"rows"`
	RetrievedAt time.Time  `json:"retrieved_at"`
}

// Len returns the number of rows.
func (t ResultTable) Len() int { return len(t.Rows) }
