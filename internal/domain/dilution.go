package domain

import "math"

// CalculatorInputs are the last values entered in the dilution calculator.
type CalculatorInputs struct {
	DilutionVolume float64 `json:"dilutionVolume"`
	TotalMg        float64 `json:"totalMg"`
	DesiredDose    float64 `json:"desiredDose"`
}

// DefaultCalculatorInputs is 20 mg reconstituted in 1 mL, 2 mg dose.
func DefaultCalculatorInputs() CalculatorInputs {
	return CalculatorInputs{DilutionVolume: 1, TotalMg: 20, DesiredDose: 2}
}

// DilutionPreset is a common vial/diluent combination.
type DilutionPreset struct {
	Label          string  `json:"label"`
	DilutionVolume float64 `json:"dilutionVolume"`
	TotalMg        float64 `json:"totalMg"`
}

// DilutionPresets lists the quick-pick combinations offered by the calculator.
var DilutionPresets = []DilutionPreset{
	{Label: "1mL / 10mg", DilutionVolume: 1, TotalMg: 10},
	{Label: "1mL / 20mg", DilutionVolume: 1, TotalMg: 20},
	{Label: "1mL / 30mg", DilutionVolume: 1, TotalMg: 30},
}

// DoseResult holds the concentration in mg/mL and the injection volume in mL.
type DoseResult struct {
	Concentration float64 `json:"concentration"`
	Volume        float64 `json:"volume"`
}

// SyringeUnits is the volume expressed in U-100 insulin syringe units.
func (r DoseResult) SyringeUnits() float64 {
	return r.Volume * 100
}

// ComputeDose derives concentration and volume from the dilution inputs.
// ok is false, and the result zero, when any input is not positive or the
// quotients overflow or underflow.
func ComputeDose(dilutionVolume, totalMg, desiredDose float64) (DoseResult, bool) {
	// NaN fails every comparison, so !(x > 0) also rejects it.
	if !(dilutionVolume > 0) || !(totalMg > 0) || !(desiredDose > 0) {
		return DoseResult{}, false
	}
	conc := totalMg / dilutionVolume
	volume := desiredDose / conc
	if !usable(conc) || !usable(volume) {
		return DoseResult{}, false
	}
	return DoseResult{Concentration: conc, Volume: volume}, true
}

func usable(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

// Compute runs ComputeDose on the stored inputs.
func (in CalculatorInputs) Compute() (DoseResult, bool) {
	return ComputeDose(in.DilutionVolume, in.TotalMg, in.DesiredDose)
}
