package snowload

import "math"

// Drift provisions apply only within this slope band. Below it the roof is
// effectively flat and sheds no windward snow into the valley; above it the
// snow slides before a drift can form.
const (
	driftMinAngleDeg = 2.38
	driftMaxAngleDeg = 30.2
)

// Upwind fetch is capped per the standard.
const maxFetchFt = 500.0

// SnowDensity returns the snow unit weight gamma = 0.13*pg + 14, capped at
// 30 pcf.
func SnowDensity(pg float64) float64 {
	return math.Min(0.13*pg+14.0, 30.0)
}

// DriftEligible reports whether the unbalanced/drift provisions apply for a
// roof plane at the given slope angle. It must be checked before any drift
// quantity is computed; outside the band the valley carries the uniform
// balanced load only.
func DriftEligible(angleDeg float64) bool {
	return angleDeg >= driftMinAngleDeg && angleDeg <= driftMaxAngleDeg
}

// DriftParams computes the drift height hd, width w, and peak surcharge pd
// for an eligible plane. pitch is the plane's rise per 12 and availLen the
// horizontal length available for the drift to occupy (the valley line the
// surcharge profile lives on). The width is 4*hd, truncated to the available
// length; the peak intensity is hd*gamma/sqrt(S) with S the plane's run per
// unit rise.
func DriftParams(pg, lu, w2, gamma, pitch, availLen float64) (hd, w, pd float64) {
	if gamma <= 0 || pitch <= 0 || pg <= 0 {
		return 0, 0, 0
	}
	if lu > maxFetchFt {
		lu = maxFetchFt
	}

	hd = 1.5 * math.Sqrt(math.Pow(pg, 0.74)*math.Pow(lu, 0.70)*math.Pow(w2, 1.7)/gamma)
	if hd <= 0 {
		return 0, 0, 0
	}

	// Governing width: 4*hd or the available length, whichever is less. The
	// code rule also caps the width at 8*hd, but starting from 4*hd that
	// ceiling can never bind.
	w = 4.0 * hd
	if w > availLen {
		w = availLen
	}
	if w <= 0 {
		return 0, 0, 0
	}

	s := 12.0 / pitch // run per unit rise
	pd = round1(hd * gamma / math.Sqrt(s))
	return hd, w, pd
}

// DriftLoads evaluates eligibility for the plane and returns its drift
// parameters, or zeroes when the slope angle is outside the eligible band.
func DriftLoads(angleDeg, pg, lu, w2, gamma, pitch, availLen float64) (hd, w, pd float64) {
	if !DriftEligible(angleDeg) {
		return 0, 0, 0
	}
	return DriftParams(pg, lu, w2, gamma, pitch, availLen)
}

// AverageSurcharge returns the mean drift pressure over the horizontal span
// [start, end], measured from the ridge end of the valley. The profile is
// triangular: pd at the ridge, zero at distance w and beyond. The mean is
// the closed-form trapezoid integral over the overlap with the drift zone,
// prorated across the full span.
func AverageSurcharge(pd, w, start, end float64) float64 {
	if pd <= 0 || w <= 0 {
		return 0
	}
	if start < 0 {
		start = 0
	}
	if end <= start {
		return 0
	}

	switch {
	case start >= w:
		// Entirely outside the drift zone.
		return 0
	case end <= w:
		// Entirely inside: mean of a linear profile is its midpoint value.
		return pd * (1.0 - (start+end)/(2.0*w))
	default:
		// Straddles the drift edge: integrate the triangle from start to w,
		// then spread over the whole span.
		tri := pd * (w - start) * (w - start) / (2.0 * w)
		return tri / (end - start)
	}
}
