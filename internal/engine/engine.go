// Package engine validates a complete input record, sequences the snow-load
// and beam calculations, and assembles one structured result record. Every
// call is independent: no state survives between calls and the same input
// always produces the same result.
package engine

import (
	"math"

	"go.uber.org/zap"

	"github.com/valleysnow/valleysnow/internal/beam"
	"github.com/valleysnow/valleysnow/internal/geometry"
	"github.com/valleysnow/valleysnow/internal/jackrafter"
	"github.com/valleysnow/valleysnow/internal/snowload"
)

// Input is the flat record callers hand to Analyze. Loads are psf, lengths
// feet, spacing and section dimensions inches, stresses psi.
type Input struct {
	GroundSnowLoad   float64 `json:"ground_snow_load"`  // pg
	ExposureFactor   float64 `json:"exposure_factor"`   // Ce
	ThermalFactor    float64 `json:"thermal_factor"`    // Ct
	ImportanceFactor float64 `json:"importance_factor"` // Is
	WinterWindParam  float64 `json:"winter_wind_param"` // W2, 0-1
	FetchLength      float64 `json:"fetch_length"`      // lu, ft

	NorthPitch        float64 `json:"north_pitch"` // rise per 12
	WestPitch         float64 `json:"west_pitch"`
	NorthEaveDist     float64 `json:"north_eave_dist"` // ft
	WestEaveDist      float64 `json:"west_eave_dist"`
	IntersectionAngle float64 `json:"intersection_angle"` // degrees
	Slippery          bool    `json:"slippery"`
	WarmRoof          bool    `json:"warm_roof"`

	DeadLoad      float64 `json:"dead_load"`       // psf on the roof
	JackSpacingIn float64 `json:"jack_spacing_in"` // along the ridge

	BeamBreadthIn   float64 `json:"beam_breadth_in"`
	BeamDepthIn     float64 `json:"beam_depth_in"`
	BeamModulusPSI  float64 `json:"beam_modulus_psi"`
	AllowBendingPSI float64 `json:"allow_bending_psi"`
	AllowShearPSI   float64 `json:"allow_shear_psi"`
	BeamDeadPLF     float64 `json:"beam_dead_plf"` // beam self weight

	SnowDeflRatio  float64 `json:"snow_defl_ratio"`  // default 240
	TotalDeflRatio float64 `json:"total_defl_ratio"` // default 180
}

// GeometryResult reports the derived valley dimensions.
type GeometryResult struct {
	NorthAngle float64 `json:"north_angle"`
	WestAngle  float64 `json:"west_angle"`
	ValleyLen  float64 `json:"valley_len"`
	BeamLen    float64 `json:"beam_len"`
}

// SideResult carries the per-side slope factor and drift quantities.
type SideResult struct {
	Cs            float64 `json:"cs"`
	DriftEligible bool    `json:"drift_eligible"`
	Hd            float64 `json:"hd"`
	W             float64 `json:"w"`
	Pd            float64 `json:"pd"`
}

// SnowLoadsResult groups the computed loads. Pf, Ps, Pm and Gamma are common
// to both sides; drift is evaluated per side.
type SnowLoadsResult struct {
	Pf    float64    `json:"pf"`
	Ps    float64    `json:"ps"`
	Pm    float64    `json:"pm"`
	Gamma float64    `json:"gamma"`
	North SideResult `json:"north"`
	West  SideResult `json:"west"`
}

// JacksResult holds the per-side station arrays, ridge-first.
type JacksResult struct {
	North []jackrafter.Station `json:"north"`
	West  []jackrafter.Station `json:"west"`
}

// Result is the full output record. It is only ever returned complete; on
// any failure the caller receives an error and no partial result.
type Result struct {
	Geometry  GeometryResult  `json:"geometry"`
	SnowLoads SnowLoadsResult `json:"snow_loads"`
	Jacks     JacksResult     `json:"jacks"`
	Beam      beam.Result     `json:"beam_analysis"`
	Status    string          `json:"status"` // "pass" or "fail" from the beam checks
}

// Analyze runs the full calculation chain for one input record.
func Analyze(in Input) (*Result, error) {
	return AnalyzeWithLogger(in, nil)
}

// AnalyzeWithLogger is Analyze with debug diagnostics on the supplied
// logger. A nil logger disables logging.
func AnalyzeWithLogger(in Input, logger *zap.SugaredLogger) (*Result, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	if err := validate(in); err != nil {
		return nil, err
	}

	// Eave distances are left to the geometry module so degenerate valleys
	// surface as geometry errors rather than plain range failures.

	north := geometry.RoofPlane{
		Pitch:         in.NorthPitch,
		EaveDistance:  in.NorthEaveDist,
		ThermalFactor: in.ThermalFactor,
		Slippery:      in.Slippery,
	}
	west := geometry.RoofPlane{
		Pitch:         in.WestPitch,
		EaveDistance:  in.WestEaveDist,
		ThermalFactor: in.ThermalFactor,
		Slippery:      in.Slippery,
	}

	valley, err := geometry.NewValleyGeometry(north, west, in.IntersectionAngle)
	if err != nil {
		return nil, err
	}
	logger.Debugw("valley geometry", "valley_len", valley.ValleyLen, "beam_len", valley.BeamLen)

	csNorth := snowload.SlopeFactor(north.Angle(), in.ThermalFactor, in.Slippery, in.WarmRoof)
	csWest := snowload.SlopeFactor(west.Angle(), in.ThermalFactor, in.Slippery, in.WarmRoof)

	pf := snowload.FlatRoofLoad(in.GroundSnowLoad, in.ExposureFactor, in.ThermalFactor, in.ImportanceFactor)
	ps := snowload.BalancedLoad(pf, csNorth, csWest)
	pm := snowload.MinimumLoad(pf, ps, in.ImportanceFactor)
	gamma := snowload.SnowDensity(in.GroundSnowLoad)
	logger.Debugw("balanced loads", "pf", pf, "ps", ps, "pm", pm, "gamma", gamma)

	sides := SnowLoadsResult{Pf: pf, Ps: ps, Pm: pm, Gamma: gamma}
	sides.North = sideDrift(north, in, gamma, valley.ValleyLen, csNorth)
	sides.West = sideDrift(west, in, gamma, valley.ValleyLen, csWest)

	if !finite(pf, ps, pm, gamma, sides.North.Hd, sides.West.Hd) {
		return nil, &ComputationError{Field: "snow_loads", Reason: "non-finite intermediate load"}
	}

	loadSet := func(s SideResult) snowload.LoadSet {
		return snowload.LoadSet{Pf: pf, Ps: ps, Pm: pm, Gamma: gamma, Hd: s.Hd, W: s.W, Pd: s.Pd}
	}
	northStations, westStations := jackrafter.Stations(jackrafter.Params{
		Valley:      valley,
		North:       north,
		West:        west,
		SpacingIn:   in.JackSpacingIn,
		DeadLoadPSF: in.DeadLoad,
		NorthLoads:  loadSet(sides.North),
		WestLoads:   loadSet(sides.West),
	})
	logger.Debugw("stations generated", "count", len(northStations))

	section := beam.Section{
		BreadthIn:       in.BeamBreadthIn,
		DepthIn:         in.BeamDepthIn,
		ModulusPSI:      in.BeamModulusPSI,
		AllowBendingPSI: in.AllowBendingPSI,
		AllowShearPSI:   in.AllowShearPSI,
	}
	limits := beam.DeflectionLimits{SnowRatio: in.SnowDeflRatio, TotalRatio: in.TotalDeflRatio}
	if limits.SnowRatio <= 0 {
		limits.SnowRatio = 240
	}
	if limits.TotalRatio <= 0 {
		limits.TotalRatio = 180
	}

	beamResult, err := beam.Analyze(valley.BeamLen, section, beamLoads(valley, northStations, westStations), in.BeamDeadPLF, limits)
	if err != nil {
		return nil, &ComputationError{Field: "beam_analysis", Reason: err.Error()}
	}

	status := "pass"
	if !beamResult.Pass {
		status = "fail"
	}

	return &Result{
		Geometry: GeometryResult{
			NorthAngle: north.Angle(),
			WestAngle:  west.Angle(),
			ValleyLen:  valley.ValleyLen,
			BeamLen:    valley.BeamLen,
		},
		SnowLoads: sides,
		Jacks:     JacksResult{North: northStations, West: westStations},
		Beam:      beamResult,
		Status:    status,
	}, nil
}

// sideDrift evaluates the drift chain for one plane. The drift profile lives
// on the valley line, so its width is bounded by the horizontal valley
// length.
func sideDrift(plane geometry.RoofPlane, in Input, gamma, valleyLen, cs float64) SideResult {
	eligible := snowload.DriftEligible(plane.Angle())
	hd, w, pd := snowload.DriftLoads(plane.Angle(), in.GroundSnowLoad, in.FetchLength, in.WinterWindParam, gamma, plane.Pitch, valleyLen)
	return SideResult{Cs: cs, DriftEligible: eligible, Hd: hd, W: w, Pd: pd}
}

// beamLoads zips the two station lists into combined point loads on the
// beam. Both sides share station positions; ridge distances are scaled from
// the horizontal valley to the sloped beam length.
func beamLoads(valley geometry.ValleyGeometry, north, west []jackrafter.Station) []beam.PointLoad {
	scale := valley.BeamLen / valley.ValleyLen
	loads := make([]beam.PointLoad, 0, len(north))
	for i, n := range north {
		load := beam.PointLoad{
			Pos:  n.RidgeDist * scale,
			Snow: jackrafter.SnowReaction(n),
			Dead: jackrafter.DeadReaction(n),
		}
		if i < len(west) {
			load.Snow += jackrafter.SnowReaction(west[i])
			load.Dead += jackrafter.DeadReaction(west[i])
		}
		loads = append(loads, load)
	}
	return loads
}

func validate(in Input) error {
	type check struct {
		ok     bool
		field  string
		reason string
	}
	checks := []check{
		{in.GroundSnowLoad > 0, "ground_snow_load", "must be positive"},
		{in.ExposureFactor > 0, "exposure_factor", "must be positive"},
		{in.ThermalFactor > 0, "thermal_factor", "must be positive"},
		{in.ImportanceFactor > 0, "importance_factor", "must be positive"},
		{in.WinterWindParam >= 0 && in.WinterWindParam <= 1, "winter_wind_param", "must be within [0, 1]"},
		{in.FetchLength > 0, "fetch_length", "must be positive"},
		{in.NorthPitch >= 0, "north_pitch", "must be non-negative"},
		{in.WestPitch >= 0, "west_pitch", "must be non-negative"},
		{in.IntersectionAngle >= 1 && in.IntersectionAngle <= 179, "intersection_angle", "must be within [1, 179] degrees"},
		{in.DeadLoad >= 0, "dead_load", "must be non-negative"},
		{in.JackSpacingIn > 0, "jack_spacing_in", "must be positive"},
		{in.BeamBreadthIn > 0, "beam_breadth_in", "must be positive"},
		{in.BeamDepthIn > 0, "beam_depth_in", "must be positive"},
		{in.BeamModulusPSI > 0, "beam_modulus_psi", "must be positive"},
		{in.AllowBendingPSI > 0, "allow_bending_psi", "must be positive"},
		{in.AllowShearPSI > 0, "allow_shear_psi", "must be positive"},
		{in.BeamDeadPLF >= 0, "beam_dead_plf", "must be non-negative"},
	}
	for _, c := range checks {
		if !c.ok {
			return &ValidationError{Field: c.field, Reason: c.reason}
		}
	}
	return nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
