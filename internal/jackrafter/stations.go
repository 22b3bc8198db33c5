// Package jackrafter discretizes the valley into jack-rafter stations and
// computes the point load each jack delivers to the valley beam.
package jackrafter

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/valleysnow/valleysnow/internal/geometry"
	"github.com/valleysnow/valleysnow/internal/snowload"
)

// Station is one discretized tributary point along the valley. Distances are
// horizontal feet measured along the valley; loads are pounds.
type Station struct {
	Index     int     `json:"index"`      // 1-based, counted from the ridge
	RidgeDist float64 `json:"ridge_dist"` // ft from the ridge end of the valley
	EaveDist  float64 `json:"eave_dist"`  // ft from the eave end
	TribWidth float64 `json:"trib_width"` // ft, along-valley strip width
	HorizLen  float64 `json:"horiz_len"`  // ft, horizontal jack run at this station
	SlopedLen float64 `json:"sloped_len"` // ft, sloped jack length
	Balanced  float64 `json:"balanced"`   // lb, balanced snow on the jack
	Drift     float64 `json:"drift"`      // lb, drift surcharge on the jack
	Dead      float64 `json:"dead"`       // lb, dead load on the jack
	Total     float64 `json:"total"`      // lb, sum carried by the jack
	Reaction  float64 `json:"reaction"`   // lb delivered to the valley beam
}

// Params carries everything station generation needs for both roof sides.
type Params struct {
	Valley      geometry.ValleyGeometry
	North, West geometry.RoofPlane
	SpacingIn   float64 // jack spacing measured along the ridge, inches
	DeadLoadPSF float64
	NorthLoads  snowload.LoadSet
	WestLoads   snowload.LoadSet
}

// Stations generates the per-side station lists, ridge-first. Jacks meet the
// valley obliquely, so the ridge-measured spacing is stretched along the
// valley by the bisector correction 1/cos(angle/2). When the corrected
// spacing exceeds the valley length the whole side collapses to a single
// station spanning the full valley.
func Stations(p Params) (north, west []Station) {
	spacingFt := p.SpacingIn / 12.0
	halfRad := p.Valley.IntersectionDeg / 2.0 * math.Pi / 180.0
	along := spacingFt / math.Cos(halfRad)

	count := int(math.Floor(p.Valley.ValleyLen / along))
	fallback := count < 1
	if fallback {
		along = p.Valley.ValleyLen
		count = 1
	}

	north = sideStations(p.North, p.NorthLoads, p.Valley.ValleyLen, along, p.DeadLoadPSF, count, fallback)
	west = sideStations(p.West, p.WestLoads, p.Valley.ValleyLen, along, p.DeadLoadPSF, count, fallback)
	return north, west
}

// sideStations walks the valley ridge-first. Each station's tributary strip
// is one along-valley spacing wide; integrating horiz over those strips
// recovers the full triangular roof half as the spacing shrinks.
func sideStations(plane geometry.RoofPlane, loads snowload.LoadSet, valleyLen, along, deadPSF float64, count int, fallback bool) []Station {
	tribWidth := along
	slopeCos := math.Cos(math.Atan(plane.Pitch / 12.0))

	stations := make([]Station, 0, count)
	for i := 1; i <= count; i++ {
		ridge := float64(i) * along
		if ridge > valleyLen {
			ridge = valleyLen
		}

		horiz := ridge * plane.EaveDistance / valleyLen
		sloped := horiz / slopeCos

		// Tributary span along the valley, for averaging the drift profile.
		start := ridge - along/2.0
		end := ridge + along/2.0
		if fallback {
			start, end = 0, valleyLen
		}
		if start < 0 {
			start = 0
		}
		if end > valleyLen {
			end = valleyLen
		}
		avgPd := snowload.AverageSurcharge(loads.Pd, loads.W, start, end)

		balanced := loads.Ps * horiz * tribWidth
		drift := avgPd * horiz * tribWidth
		dead := deadPSF * horiz * tribWidth
		total := balanced + drift + dead

		stations = append(stations, Station{
			Index:     i,
			RidgeDist: ridge,
			EaveDist:  valleyLen - ridge,
			TribWidth: tribWidth,
			HorizLen:  horiz,
			SlopedLen: sloped,
			Balanced:  balanced,
			Drift:     drift,
			Dead:      dead,
			Total:     total,
			Reaction:  total / 2.0, // jack simply supported between ridge and valley beam
		})
	}
	return stations
}

// EaveFirst returns a copy of the station list ordered eave to ridge.
func EaveFirst(stations []Station) []Station {
	out := make([]Station, len(stations))
	for i, s := range stations {
		out[len(stations)-1-i] = s
	}
	return out
}

// TotalReaction sums the beam reactions of a station list.
func TotalReaction(stations []Station) float64 {
	reactions := make([]float64, len(stations))
	for i, s := range stations {
		reactions[i] = s.Reaction
	}
	return floats.Sum(reactions)
}

// SnowReaction sums only the snow portion (balanced + drift) of the beam
// reactions, for the snow-only load combinations.
func SnowReaction(s Station) float64 {
	return (s.Balanced + s.Drift) / 2.0
}

// DeadReaction returns the dead-load portion of the station's beam reaction.
func DeadReaction(s Station) float64 {
	return s.Dead / 2.0
}
