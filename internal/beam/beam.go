// Package beam performs the ASD capacity checks for the valley beam: bending
// and shear stress under the required load combinations, plus deflection
// against the span-ratio limits.
//
// Spans and load positions are in feet, loads in pounds, section dimensions
// in inches, stresses in psi.
package beam

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Section describes the rectangular valley-beam section and its material.
type Section struct {
	BreadthIn       float64 `json:"breadth_in"`
	DepthIn         float64 `json:"depth_in"`
	ModulusPSI      float64 `json:"modulus_psi"`       // E
	AllowBendingPSI float64 `json:"allow_bending_psi"` // Fb'
	AllowShearPSI   float64 `json:"allow_shear_psi"`   // Fv'
}

// Area returns the section area in square inches.
func (s Section) Area() float64 { return s.BreadthIn * s.DepthIn }

// SectionModulus returns S = b*d^2/6 in cubic inches.
func (s Section) SectionModulus() float64 {
	return s.BreadthIn * s.DepthIn * s.DepthIn / 6.0
}

// MomentOfInertia returns I = b*d^3/12 in inches^4.
func (s Section) MomentOfInertia() float64 {
	return s.BreadthIn * math.Pow(s.DepthIn, 3) / 12.0
}

// PointLoad is one jack reaction on the beam, split into its snow and dead
// portions so each combination can factor them independently.
type PointLoad struct {
	Pos  float64 // ft from the left (ridge) support
	Snow float64 // lb
	Dead float64 // lb
}

// Combination is one required ASD load combination.
type Combination struct {
	Name       string
	DeadFactor float64
	SnowFactor float64
}

// Combinations is the required check set: dead only, dead plus full snow,
// and dead plus reduced snow.
var Combinations = []Combination{
	{Name: "D", DeadFactor: 1.0, SnowFactor: 0.0},
	{Name: "D + S", DeadFactor: 1.0, SnowFactor: 1.0},
	{Name: "D + 0.7S", DeadFactor: 1.0, SnowFactor: 0.7},
}

// DeflectionLimits holds the span-ratio denominators for the two deflection
// checks (e.g. 240 for snow-only, 180 for total load).
type DeflectionLimits struct {
	SnowRatio  float64
	TotalRatio float64
}

// CombinationResult reports demand and demand/capacity for one combination.
type CombinationResult struct {
	Name          string  `json:"name"`
	ReactionLeft  float64 `json:"reaction_left"`  // lb
	ReactionRight float64 `json:"reaction_right"` // lb
	MaxMomentLbFt float64 `json:"max_moment_lbft"`
	MaxShearLb    float64 `json:"max_shear_lb"`
	BendingPSI    float64 `json:"bending_psi"`
	ShearPSI      float64 `json:"shear_psi"`
	BendingRatio  float64 `json:"bending_ratio"` // fb / Fb'
	ShearRatio    float64 `json:"shear_ratio"`   // fv / Fv'
	OKBending     bool    `json:"ok_bending"`
	OKShear       bool    `json:"ok_shear"`
}

// Result is the full beam check: every combination plus the two deflection
// checks and an overall verdict.
type Result struct {
	SpanFt        float64             `json:"span_ft"`
	Combinations  []CombinationResult `json:"combinations"`
	SnowDeflIn    float64             `json:"snow_defl_in"`
	SnowLimitIn   float64             `json:"snow_limit_in"`
	OKSnowDefl    bool                `json:"ok_snow_defl"`
	TotalDeflIn   float64             `json:"total_defl_in"`
	TotalLimitIn  float64             `json:"total_limit_in"`
	OKTotalDefl   bool                `json:"ok_total_defl"`
	GoverningName string              `json:"governing"` // combination with highest bending ratio
	Pass          bool                `json:"pass"`
}

// Analyze checks a simply supported beam carrying the jack point loads plus
// a distributed dead load (self weight etc.) along its span.
func Analyze(spanFt float64, sec Section, loads []PointLoad, udlDeadPLF float64, limits DeflectionLimits) (Result, error) {
	if spanFt <= 0 {
		return Result{}, fmt.Errorf("beam span must be positive, got %.3f", spanFt)
	}
	if sec.BreadthIn <= 0 || sec.DepthIn <= 0 {
		return Result{}, fmt.Errorf("beam section dimensions must be positive")
	}
	if sec.ModulusPSI <= 0 || sec.AllowBendingPSI <= 0 || sec.AllowShearPSI <= 0 {
		return Result{}, fmt.Errorf("beam material properties must be positive")
	}

	sorted := make([]PointLoad, len(loads))
	copy(sorted, loads)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Pos < sorted[j].Pos })

	res := Result{SpanFt: spanFt}

	worstBending := -1.0
	for _, combo := range Combinations {
		cr := analyzeCombination(spanFt, sec, sorted, udlDeadPLF, combo)
		if !isFinite(cr.BendingPSI) || !isFinite(cr.ShearPSI) {
			return Result{}, fmt.Errorf("combination %s produced a non-finite stress", combo.Name)
		}
		if cr.BendingRatio > worstBending {
			worstBending = cr.BendingRatio
			res.GoverningName = cr.Name
		}
		res.Combinations = append(res.Combinations, cr)
	}

	spanIn := spanFt * 12.0
	ei := sec.ModulusPSI * sec.MomentOfInertia()

	res.SnowDeflIn = midspanDeflection(spanIn, ei, sorted, 0, 0, 1)
	res.TotalDeflIn = midspanDeflection(spanIn, ei, sorted, udlDeadPLF, 1, 1)
	res.SnowLimitIn = spanIn / limits.SnowRatio
	res.TotalLimitIn = spanIn / limits.TotalRatio
	res.OKSnowDefl = res.SnowDeflIn <= res.SnowLimitIn
	res.OKTotalDefl = res.TotalDeflIn <= res.TotalLimitIn

	res.Pass = res.OKSnowDefl && res.OKTotalDefl
	for _, cr := range res.Combinations {
		if !cr.OKBending || !cr.OKShear {
			res.Pass = false
		}
	}
	return res, nil
}

func analyzeCombination(spanFt float64, sec Section, sorted []PointLoad, udlDeadPLF float64, combo Combination) CombinationResult {
	w := udlDeadPLF * combo.DeadFactor // plf along the beam

	mags := make([]float64, len(sorted))
	moments := make([]float64, len(sorted)) // static moments about the left support
	for i, l := range sorted {
		mags[i] = combo.DeadFactor*l.Dead + combo.SnowFactor*l.Snow
		moments[i] = mags[i] * l.Pos
	}

	totalP := floats.Sum(mags)
	rl := (totalP*spanFt-floats.Sum(moments))/spanFt + w*spanFt/2.0
	rr := totalP + w*spanFt - rl

	maxM := maxMoment(spanFt, sorted, mags, w, rl)
	maxV := math.Max(rl, rr)

	fb := maxM * 12.0 / sec.SectionModulus()
	fv := 1.5 * maxV / sec.Area()

	return CombinationResult{
		Name:          combo.Name,
		ReactionLeft:  rl,
		ReactionRight: rr,
		MaxMomentLbFt: maxM,
		MaxShearLb:    maxV,
		BendingPSI:    fb,
		ShearPSI:      fv,
		BendingRatio:  fb / sec.AllowBendingPSI,
		ShearRatio:    fv / sec.AllowShearPSI,
		OKBending:     fb <= sec.AllowBendingPSI,
		OKShear:       fv <= sec.AllowShearPSI,
	}
}

// maxMoment scans the moment diagram of the simply supported beam. The
// moment is piecewise quadratic; its maximum sits either at a load point or
// where the shear crosses zero within a segment.
func maxMoment(spanFt float64, sorted []PointLoad, mags []float64, w, rl float64) float64 {
	momentAt := func(x float64) float64 {
		m := rl*x - w*x*x/2.0
		for i, l := range sorted {
			if l.Pos < x {
				m -= mags[i] * (x - l.Pos)
			}
		}
		return m
	}

	maxM := 0.0
	consider := func(x float64) {
		if x < 0 || x > spanFt {
			return
		}
		if m := momentAt(x); m > maxM {
			maxM = m
		}
	}

	cum := 0.0
	prev := 0.0
	for i := 0; i <= len(sorted); i++ {
		segEnd := spanFt
		if i < len(sorted) {
			segEnd = sorted[i].Pos
		}
		// Zero-shear point inside [prev, segEnd] when the UDL is present.
		if w > 0 {
			x0 := (rl - cum) / w
			if x0 >= prev && x0 <= segEnd {
				consider(x0)
			}
		}
		consider(segEnd)
		if i < len(sorted) {
			cum += mags[i]
			prev = sorted[i].Pos
		}
	}
	consider(spanFt / 2.0)
	return maxM
}

// midspanDeflection superposes the closed-form midspan ordinates: for a
// point load P at distance a, delta = P*b*(3L^2-4b^2)/(48EI) with b the
// distance to the nearer support; for the UDL, 5wL^4/(384EI). All in inches.
func midspanDeflection(spanIn, ei float64, sorted []PointLoad, udlDeadPLF, deadFactor, snowFactor float64) float64 {
	defl := 0.0
	for _, l := range sorted {
		p := deadFactor*l.Dead + snowFactor*l.Snow
		if p == 0 {
			continue
		}
		aIn := l.Pos * 12.0
		bIn := math.Min(aIn, spanIn-aIn)
		if bIn < 0 {
			bIn = 0
		}
		defl += p * bIn * (3.0*spanIn*spanIn - 4.0*bIn*bIn) / (48.0 * ei)
	}
	if udlDeadPLF > 0 {
		wIn := udlDeadPLF * deadFactor / 12.0 // lb per inch
		defl += 5.0 * wIn * math.Pow(spanIn, 4) / (384.0 * ei)
	}
	return defl
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
