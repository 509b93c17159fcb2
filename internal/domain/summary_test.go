package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("empty table", func(t *testing.T) {
		s := Summarize(ResultTable{})
		assert.Equal(t, 0, s.Count)
		assert.Nil(t, s.MinMagnitude)
		assert.Nil(t, s.MaxMagnitude)
		assert.Nil(t, s.MeanMagnitude)
		assert.Nil(t, s.ByNetwork)
	})

	t.Run("aggregates magnitudes and networks", func(t *testing.T) {
		table := ResultTable{Rows: []EventRow{
			{Magnitude: ptrF(2.0), Network: ptrS("us")},
			{Magnitude: ptrF(4.0), Network: ptrS("ak")},
			{Magnitude: ptrF(6.0), Network: ptrS("us")},
		}}

		s := Summarize(table)
		assert.Equal(t, 3, s.Count)
		require.NotNil(t, s.MeanMagnitude)
		assert.Equal(t, 2.0, *s.MinMagnitude)
		assert.Equal(t, 6.0, *s.MaxMagnitude)
		assert.Equal(t, 4.0, *s.MeanMagnitude)
		assert.Equal(t, map[string]int{"us": 2, "ak": 1}, s.ByNetwork)
	})

	t.Run("nil magnitudes count rows but not aggregates", func(t *testing.T) {
		table := ResultTable{Rows: []EventRow{
			{Magnitude: ptrF(3.0), Network: ptrS("nc")},
			{Magnitude: nil, Network: ptrS("nc")},
		}}

		s := Summarize(table)
		assert.Equal(t, 2, s.Count)
		assert.Equal(t, 3.0, *s.MeanMagnitude)
		assert.Equal(t, 2, s.ByNetwork["nc"])
	})
}
