// Package domain models USGS Earthquake Catalog (ComCat) event data.
//
// # Data Source
//
// Events come from the USGS fdsnws event web service at
// https://earthquake.usgs.gov/fdsnws/event/1/query, requested in GeoJSON
// format. Each feature carries a properties bag (magnitude, place, timing,
// station metrics) and a Point geometry whose coordinates are ordered
// [longitude, latitude, depth-in-km] per the GeoJSON convention.
//
// # Field Conventions
//
// Time values:
//
//	Milliseconds since the Unix epoch, as published by the catalog.
//	Values are passed through unconverted; callers needing a time.Time
//	use time.UnixMilli.
//
// Magnitude:
//
//	The catalog accepts queries from -1 (micro events have negative
//	magnitudes) up to 10. The magType property names the measurement
//	method, e.g. "ml" (local), "md" (duration), "mb" (body wave).
//
// Azimuthal gap:
//
//	The largest angular gap, in degrees, between adjacent seismic stations
//	used to locate the event. Queries here cap maxgap at 180 because above
//	that the epicenter estimate degrades beyond usefulness; lower is better.
//
// Station metrics:
//
//	dmin — horizontal distance from the epicenter to the nearest station,
//	in degrees. nst — number of stations used to determine the location.
//	rms — root-mean-square travel time residual in seconds.
//
// Missing properties:
//
//	The catalog omits properties it has no value for (nst and dmin are
//	frequently absent on automatic solutions). A missing property becomes
//	a nil field on the flattened row; it never fails the row or the batch.
//	Structural damage — a feature without usable Point coordinates on a
//	location query — is fatal, because positional longitude/latitude
//	columns cannot be built from it.
//
// # Column Renames
//
// Flattening projects the properties bag onto a fixed column set and renames
// the catalog's terse keys to readable ones:
//
//	mag → magnitude    sig → significance    net → network
//	magType → measurement_method    dmin → station_distance
//	nst → num_of_stations    type → event_type
//
// place, time, code, rms and gap keep their names. Location-query rows
// additionally carry longitude, latitude and depth taken from the geometry;
// magnitude-query rows carry no geometry-derived columns. The asymmetry is
// deliberate and mirrors the two query shapes.
package domain
