package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMagnitudeQueryValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, NewMagnitudeQuery().Validate())
	})

	t.Run("range edges are accepted", func(t *testing.T) {
		q := MagnitudeQuery{MinMagnitude: -1, MaxMagnitude: 10, MaxGap: 180, EventType: DefaultEventType}
		assert.NoError(t, q.Validate())
	})

	t.Run("max_gap just past the edge is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.MaxGap = 180.01
		err := q.Validate()
		var invalid *InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "max_gap", invalid.Param)
	})

	t.Run("min above max is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.MinMagnitude = 6
		q.MaxMagnitude = 5
		err := q.Validate()
		var invalid *InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "min_magnitude", invalid.Param)
		assert.Contains(t, invalid.Reason, "exceeds max_magnitude")
	})

	t.Run("magnitude below floor is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.MinMagnitude = -1.5
		err := q.Validate()
		var invalid *InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "min_magnitude", invalid.Param)
	})

	t.Run("magnitude above ceiling is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.MaxMagnitude = 10.1
		assert.Error(t, q.Validate())
	})

	t.Run("negative gap is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.MaxGap = -0.1
		assert.Error(t, q.Validate())
	})

	t.Run("empty event type is rejected", func(t *testing.T) {
		q := NewMagnitudeQuery()
		q.EventType = ""
		assert.Error(t, q.Validate())
	})
}

func TestLocationQueryValidate(t *testing.T) {
	t.Run("defaults are valid", func(t *testing.T) {
		q := NewLocationQuery(61.2, -149.9)
		assert.NoError(t, q.Validate())
		assert.Equal(t, 100.0, q.MaxRadiusKM)
		assert.Equal(t, DefaultEventType, q.EventType)
	})

	t.Run("range edges are accepted", func(t *testing.T) {
		q := LocationQuery{Latitude: -90, Longitude: 180, MaxRadiusKM: MaxRadiusCeilKM, EventType: DefaultEventType}
		assert.NoError(t, q.Validate())
	})

	t.Run("latitude out of range", func(t *testing.T) {
		q := NewLocationQuery(90.5, 0)
		err := q.Validate()
		var invalid *InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "latitude", invalid.Param)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		q := NewLocationQuery(0, -180.5)
		assert.Error(t, q.Validate())
	})

	t.Run("radius past the antipode is rejected", func(t *testing.T) {
		q := NewLocationQuery(0, 0)
		q.MaxRadiusKM = 20001.7
		err := q.Validate()
		var invalid *InvalidParameterError
		require.ErrorAs(t, err, &invalid)
		assert.Equal(t, "max_radius_km", invalid.Param)
	})

	t.Run("negative radius is rejected", func(t *testing.T) {
		q := NewLocationQuery(0, 0)
		q.MaxRadiusKM = -1
		assert.Error(t, q.Validate())
	})
}
