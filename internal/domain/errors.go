package domain

import "fmt"

// InvalidParameterError reports a caller-supplied query parameter outside its
// documented range. Raised before any network access.
type InvalidParameterError struct {
	Param  string
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Param, e.Reason)
}

// TransportError reports an HTTP request that could not be completed:
// connection failure, timeout, or a non-success status from the catalog.
type TransportError struct {
	URL        string
	StatusCode int // 0 when no response was received
	Err        error
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("usgs request failed: status %d: %s", e.StatusCode, e.URL)
	}
	return fmt.Sprintf("usgs request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// DecodeError reports a response body that is not valid JSON or lacks the
// expected top-level GeoJSON structure.
type DecodeError struct {
	Reason string
	Err    error
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("decode response: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("decode response: %s", e.Reason)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// MalformedResponseError reports a per-feature structural inconsistency that
// prevents row construction, such as a feature with no usable Point geometry
// on a location query. Unlike a missing optional property, this voids the
// whole batch: positional columns cannot be aligned past the damaged feature.
type MalformedResponseError struct {
	FeatureIndex int
	Reason       string
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("malformed response: feature %d: %s", e.FeatureIndex, e.Reason)
}
