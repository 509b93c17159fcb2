package domain

// FlattenMagnitude projects a decoded feature collection into a result table
// for a magnitude query. Rows keep the catalog's feature order. A missing
// property becomes a nil field; no per-feature condition is fatal because
// magnitude rows carry no positional columns.
func FlattenMagnitude(fc FeatureCollection) ResultTable {
	rows := make([]EventRow, 0, len(fc.Features))
	for _, f := range fc.Features {
		rows = append(rows, projectProperties(f.Properties))
	}
	return ResultTable{Rows: rows, RetrievedAt: clock.Now()}
}

// FlattenLocation projects a decoded feature collection into a result table
// for a location query, joining each feature's Point coordinates with its
// properties by position. A feature whose geometry cannot supply longitude
// and latitude fails the whole batch with MalformedResponseError: the
// positional join cannot skip a feature without misaligning every row after
// it.
func FlattenLocation(fc FeatureCollection) (ResultTable, error) {
	rows := make([]EventRow, 0, len(fc.Features))
	for i, f := range fc.Features {
		if f.Geometry == nil {
			return ResultTable{}, &MalformedResponseError{FeatureIndex: i, Reason: "missing geometry"}
		}
		if len(f.Geometry.Coordinates) < 2 {
			return ResultTable{}, &MalformedResponseError{
				FeatureIndex: i,
				Reason:       "geometry has fewer than 2 coordinates",
			}
		}

		row := projectProperties(f.Properties)
		row.Longitude = &f.Geometry.Coordinates[0]
		row.Latitude = &f.Geometry.Coordinates[1]
		if len(f.Geometry.Coordinates) >= 3 {
			row.Depth = &f.Geometry.Coordinates[2]
		}
		rows = append(rows, row)
	}
	return ResultTable{Rows: rows, RetrievedAt: clock.Now()}, nil
}

// projectProperties applies the fixed rename table from the catalog's terse
// property keys to the row's column names. Unselected properties are dropped.
func projectProperties(p Properties) EventRow {
	return EventRow{
		Magnitude:         p.Mag,
		Place:             p.Place,
		Time:              p.Time,
		Significance:      p.Sig,
		Network:           p.Net,
		Code:              p.Code,
		StationDistance:   p.Dmin,
		NumOfStations:     p.Nst,
		RMS:               p.RMS,
		Gap:               p.Gap,
		MeasurementMethod: p.MagType,
		EventType:         p.Type,
	}
}
