package app

import "dosetrack/internal/domain"

// WeightPoint is a single data point of the weight chart.
type WeightPoint struct {
	Day   string  `json:"day"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// WeightSeries returns every weight entry, oldest first, converted from
// pounds to unit.
func (t *Tracker) WeightSeries(unit string) ([]WeightPoint, error) {
	if !domain.ValidUnit(unit) {
		return nil, ErrInvalidUnit
	}

	entries := t.Snapshot().WeightEntries
	points := make([]WeightPoint, 0, len(entries))
	for _, e := range entries {
		points = append(points, WeightPoint{
			Day:   e.Date.String(),
			Value: domain.ConvertWeight(e.Weight, domain.UnitLb, unit),
			Unit:  unit,
		})
	}
	return points, nil
}
