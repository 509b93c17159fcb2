package domain

import "fmt"

// DefaultEventType restricts results to tectonic events, excluding quarry
// blasts, explosions, and other catalog event types.
const DefaultEventType = "earthquake"

// Documented parameter ranges for the fdsnws event service. The service
// itself accepts maxgap up to 360, but locations with a gap above 180 are
// unreliable, so queries here cap at 180. MaxRadiusCeilKM is half the Earth's
// circumference, the largest radius the service accepts.
const (
	MagnitudeFloor  = -1.0
	MagnitudeCeil   = 10.0
	MaxGapCeil      = 180.0
	MaxRadiusCeilKM = 20001.6
)

// MagnitudeQuery selects events by magnitude bounds and azimuthal gap.
type MagnitudeQuery struct {
	MinMagnitude float64
	MaxMagnitude float64
	MaxGap       float64
	EventType    string
}

// NewMagnitudeQuery returns a query with the service defaults: magnitude
// 0–10, maxgap 90, event type "earthquake".
func NewMagnitudeQuery() MagnitudeQuery {
	return MagnitudeQuery{
		MinMagnitude: 0,
		MaxMagnitude: 10,
		MaxGap:       90,
		EventType:    DefaultEventType,
	}
}

// Validate checks every field against its documented range.
func (q MagnitudeQuery) Validate() error {
	if q.MinMagnitude < MagnitudeFloor || q.MinMagnitude > MagnitudeCeil {
		return outOfRange("min_magnitude", q.MinMagnitude, MagnitudeFloor, MagnitudeCeil)
	}
	if q.MaxMagnitude < MagnitudeFloor || q.MaxMagnitude > MagnitudeCeil {
		return outOfRange("max_magnitude", q.MaxMagnitude, MagnitudeFloor, MagnitudeCeil)
	}
	if q.MinMagnitude > q.MaxMagnitude {
		return &InvalidParameterError{
			Param:  "min_magnitude",
			Reason: fmt.Sprintf("%g exceeds max_magnitude %g", q.MinMagnitude, q.MaxMagnitude),
		}
	}
	if q.MaxGap < 0 || q.MaxGap > MaxGapCeil {
		return outOfRange("max_gap", q.MaxGap, 0, MaxGapCeil)
	}
	if q.EventType == "" {
		return &InvalidParameterError{Param: "event_type", Reason: "must not be empty"}
	}
	return nil
}

// LocationQuery selects events within a radius of a geographic point.
type LocationQuery struct {
	Latitude    float64
	Longitude   float64
	MaxRadiusKM float64
	EventType   string
}

// NewLocationQuery returns a query centered on the given point with the
// service defaults: 100 km radius, event type "earthquake".
func NewLocationQuery(lat, lon float64) LocationQuery {
	return LocationQuery{
		Latitude:    lat,
		Longitude:   lon,
		MaxRadiusKM: 100,
		EventType:   DefaultEventType,
	}
}

// Validate checks every field against its documented range.
func (q LocationQuery) Validate() error {
	if q.Latitude < -90 || q.Latitude > 90 {
		return outOfRange("latitude", q.Latitude, -90, 90)
	}
	if q.Longitude < -180 || q.Longitude > 180 {
		return outOfRange("longitude", q.Longitude, -180, 180)
	}
	if q.MaxRadiusKM < 0 || q.MaxRadiusKM > MaxRadiusCeilKM {
		return outOfRange("max_radius_km", q.MaxRadiusKM, 0, MaxRadiusCeilKM)
	}
	if q.EventType == "" {
		return &InvalidParameterError{Param: "event_type", Reason: "must not be empty"}
	}
	return nil
}

func outOfRange(param string, value, lo, hi float64) error {
	return &InvalidParameterError{
		Param:  param,
		Reason: fmt.Sprintf("%g outside [%g, %g]", value, lo, hi),
	}
}
