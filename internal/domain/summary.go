package domain

// Summary holds descriptive statistics over a result table. Magnitude
// aggregates are nil when no row carries a magnitude.
type Summary struct {
	Count         int            `json:"count"`
	MinMagnitude  *float64       `json:"min_magnitude,omitempty"`
	MaxMagnitude  *float64       `json:"max_magnitude,omitempty"`
	MeanMagnitude *float64       `json:"mean_magnitude,omitempty"`
	ByNetwork     map[string]int `json:"by_network,omitempty"`
}

// Summarize computes row count, magnitude extrema and mean, and per-network
// event counts. Rows with a nil magnitude count toward Count and ByNetwork
// but not toward the magnitude aggregates.
func Summarize(table ResultTable) Summary {
	s := Summary{Count: len(table.Rows)}

	var sum float64
	var measured int
	for _, row := range table.Rows {
		if row.Network != nil && *row.Network != "" {
			if s.ByNetwork == nil {
				s.ByNetwork = make(map[string]int)
			}
			s.ByNetwork[*row.Network]++
		}
		if row.Magnitude == nil {
			continue
		}
		m := *row.Magnitude
		if s.MinMagnitude == nil || m < *s.MinMagnitude {
			s.MinMagnitude = &m
		}
		if s.MaxMagnitude == nil || m > *s.MaxMagnitude {
			s.MaxMagnitude = &m
		}
		sum += m
		measured++
	}

	if measured > 0 {
		mean := sum / float64(measured)
		s.MeanMagnitude = &mean
	}
	return s
}
