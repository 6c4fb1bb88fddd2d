package app

import (
	"context"
	"fmt"
	"math"

	"dosetrack/internal/domain"
)

// Calculation is the calculator's current inputs and, when they are all
// positive, the resulting dose.
type Calculation struct {
	Inputs       domain.CalculatorInputs `json:"inputs"`
	Valid        bool                    `json:"valid"`
	Result       *domain.DoseResult      `json:"result"`
	SyringeUnits float64                 `json:"syringeUnits"`
	Presets      []domain.DilutionPreset `json:"presets"`
}

func calculate(in domain.CalculatorInputs) Calculation {
	c := Calculation{Inputs: in, Presets: domain.DilutionPresets}
	if res, ok := in.Compute(); ok {
		c.Valid = true
		c.Result = &res
		c.SyringeUnits = res.SyringeUnits()
	}
	return c
}

// Calculator evaluates the last stored calculator inputs.
func (t *Tracker) Calculator() Calculation {
	return calculate(t.Snapshot().LastCalculation)
}

// SetCalculator stores new calculator inputs and evaluates them. Inputs that
// do not yield a dose are still stored, like a half-filled form.
func (t *Tracker) SetCalculator(ctx context.Context, in domain.CalculatorInputs) (Calculation, error) {
	for _, v := range []float64{in.DilutionVolume, in.TotalMg, in.DesiredDose} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Calculation{}, fmt.Errorf("%w: calculator inputs must be finite", ErrInvalidInput)
		}
	}
	if _, err := t.update(ctx, func(s *domain.Snapshot) (bool, error) {
		if s.LastCalculation == in {
			return false, nil
		}
		s.LastCalculation = in
		return true, nil
	}); err != nil {
		return Calculation{}, fmt.Errorf("set calculator: %w", err)
	}
	return calculate(in), nil
}
