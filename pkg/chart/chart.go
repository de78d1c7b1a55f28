package chart

import (
	"sort"

	"engineview/entities"
)

// labelLayout is how timestamps appear on chart axes.
const labelLayout = "02.01.2006 15:04"

// Series is a pair of parallel, timestamp-aligned sequences for plotting one
// parameter. Measurements without a value for the parameter are omitted from
// both sequences.
type Series struct {
	Labels        []string  `json:"labels"`
	Values        []float64 `json:"values"`
	ParameterName string    `json:"parameter_name"`
	ParameterUnit string    `json:"parameter_unit"`
}

// BuildSeries shapes a measurement set into an ascending-by-timestamp series
// for the given parameter, taking at most one value per measurement.
func BuildSeries(measurements []entities.Measurement, parameter *entities.ParameterType) Series {
	ordered := make([]entities.Measurement, len(measurements))
	copy(ordered, measurements)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	s := Series{
		Labels:        []string{},
		Values:        []float64{},
		ParameterName: parameter.Name,
		ParameterUnit: parameter.Unit,
	}
	for _, m := range ordered {
		for _, pv := range m.ParameterValues {
			if pv.ParameterTypeID == parameter.ParameterTypeID {
				s.Labels = append(s.Labels, m.Timestamp.Format(labelLayout))
				s.Values = append(s.Values, pv.Value)
				break
			}
		}
	}
	return s
}
