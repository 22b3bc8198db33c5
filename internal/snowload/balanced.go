// Package snowload implements the ASCE 7-22 Chapter 7 snow-load chain for a
// valley roof: flat and balanced roof loads, the low-slope minimum, slope
// reduction factors, and the drift surcharge profile along the valley.
//
// Loads are in psf, lengths in feet, angles in degrees. Values the standard
// reports to one decimal (pf, ps, pm, pd) are rounded at the point they are
// produced; downstream formulas consume the rounded values.
package snowload

import "math"

// LoadSet collects the snow loads governing one side of the valley. Pf, Ps
// and Pm are shared between sides; the drift fields depend on the side's own
// slope angle and upwind geometry.
type LoadSet struct {
	Pf    float64 `json:"pf"`    // flat-roof snow load, psf
	Ps    float64 `json:"ps"`    // sloped (balanced) snow load, psf
	Pm    float64 `json:"pm"`    // low-slope minimum snow load, psf
	Gamma float64 `json:"gamma"` // snow density, pcf
	Hd    float64 `json:"hd"`    // drift height, ft (0 when drift does not apply)
	W     float64 `json:"w"`     // drift width, ft
	Pd    float64 `json:"pd"`    // peak drift surcharge, psf
}

// FlatRoofLoad computes pf = 0.7*Ce*Ct*Is*pg, rounded to one decimal.
func FlatRoofLoad(pg, ce, ct, is float64) float64 {
	return round1(0.7 * ce * ct * is * pg)
}

// BalancedLoad reduces pf by the lesser of the two adjoining planes' slope
// factors. The valley members see snow from both planes, so the smaller
// reduction governs.
func BalancedLoad(pf, csNorth, csWest float64) float64 {
	return round1(pf * math.Min(csNorth, csWest))
}

// MinimumLoad computes the low-slope minimum pm. The floor is Is*20 when pf
// is under 20 psf, Is*pf otherwise, and never less than the balanced load.
func MinimumLoad(pf, ps, is float64) float64 {
	pm := is * pf
	if pf < 20 {
		pm = is * 20
	}
	pm = round1(pm)
	if pm < ps {
		pm = ps
	}
	return pm
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
