// Package geometry derives valley-beam geometry from two intersecting roof
// planes. All lengths are in feet and all angles in degrees.
package geometry

import (
	"fmt"
	"math"
)

// RoofPlane is one of the two intersecting roof surfaces. Pitch is expressed
// as rise per 12 units of horizontal run; EaveDistance is the horizontal
// distance from eave to ridge. Planes are immutable once built from input.
type RoofPlane struct {
	Pitch         float64 // rise per 12
	EaveDistance  float64 // ft, eave to ridge
	ThermalFactor float64 // Ct
	Slippery      bool    // slippery surface (metal, slate, membrane)
}

// Angle returns the plane's slope angle in degrees.
func (p RoofPlane) Angle() float64 {
	return math.Atan(p.Pitch/12.0) * 180.0 / math.Pi
}

// Rise returns the vertical rise from eave to ridge in feet.
func (p RoofPlane) Rise() float64 {
	return p.EaveDistance * p.Pitch / 12.0
}

// ValleyGeometry holds the derived valley dimensions for one calculation.
type ValleyGeometry struct {
	IntersectionDeg float64 // angle between the two ridges
	ValleyLen       float64 // ft, horizontal projection of the valley
	BeamLen         float64 // ft, sloped length of the valley beam
}

// GeometryError reports degenerate valley geometry.
type GeometryError struct {
	Field  string
	Reason string
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry: %s: %s", e.Field, e.Reason)
}

// NewValleyGeometry computes the valley dimensions from the two adjoining
// planes and the intersection angle between their ridges. The horizontal
// valley length follows from the law of cosines over the two eave distances;
// the sloped beam length adds the average rise of the two sides.
func NewValleyGeometry(north, west RoofPlane, intersectionDeg float64) (ValleyGeometry, error) {
	if north.EaveDistance <= 0 {
		return ValleyGeometry{}, &GeometryError{Field: "de_north", Reason: "eave distance must be positive"}
	}
	if west.EaveDistance <= 0 {
		return ValleyGeometry{}, &GeometryError{Field: "de_west", Reason: "eave distance must be positive"}
	}

	rad := intersectionDeg * math.Pi / 180.0
	dn := north.EaveDistance
	dw := west.EaveDistance
	sq := dn*dn + dw*dw - 2.0*dn*dw*math.Cos(rad)
	if sq <= 0 {
		return ValleyGeometry{}, &GeometryError{Field: "intersection_angle", Reason: "roof planes produce a zero-length valley"}
	}
	lv := math.Sqrt(sq)

	avgRise := (north.Rise() + west.Rise()) / 2.0
	beamLen := math.Sqrt(lv*lv + avgRise*avgRise)

	return ValleyGeometry{
		IntersectionDeg: intersectionDeg,
		ValleyLen:       lv,
		BeamLen:         beamLen,
	}, nil
}
