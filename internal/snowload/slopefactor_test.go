package snowload

import (
	"math"
	"testing"
)

func TestSlopeFactor(t *testing.T) {
	tests := []struct {
		name     string
		angle    float64
		ct       float64
		slippery bool
		warmRoof bool
		expected float64
		epsilon  float64
	}{
		// Warm curves (Ct <= 1.1)
		{name: "warm slippery below breakpoint", angle: 5, ct: 1.0, slippery: true, expected: 1.0, epsilon: 1e-9},
		{name: "warm slippery mid-curve", angle: 37.5, ct: 1.0, slippery: true, expected: 0.5, epsilon: 1e-9},
		{name: "warm non-slippery below breakpoint", angle: 30, ct: 1.0, expected: 1.0, epsilon: 1e-9},
		{name: "warm non-slippery mid-curve", angle: 50, ct: 1.0, expected: 0.5, epsilon: 1e-9},
		// Cold curves (Ct >= 1.2)
		{name: "cold slippery mid-curve", angle: 42.5, ct: 1.2, slippery: true, expected: 0.5, epsilon: 1e-9},
		{name: "cold non-slippery at breakpoint", angle: 45, ct: 1.2, expected: 1.0, epsilon: 1e-9},
		{name: "cold non-slippery mid-curve", angle: 57.5, ct: 1.2, expected: 0.5, epsilon: 1e-9},
		{name: "cold non-slippery at terminus", angle: 70, ct: 1.2, expected: 0.0, epsilon: 1e-9},
		// Warm-roof override forces the warm curve even for cold Ct
		{name: "override picks warm curve", angle: 35, ct: 1.2, warmRoof: true, expected: 0.875, epsilon: 1e-9},
		// Clamping
		{name: "negative angle clamps to one", angle: -10, ct: 1.2, expected: 1.0, epsilon: 1e-9},
		{name: "angle above 90 clamps to zero", angle: 120, ct: 1.2, expected: 0.0, epsilon: 1e-9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SlopeFactor(tt.angle, tt.ct, tt.slippery, tt.warmRoof)
			if math.Abs(got-tt.expected) > tt.epsilon {
				t.Errorf("Cs(%.1f°): expected %.4f, got %.4f", tt.angle, tt.expected, got)
			}
		})
	}
}

// Cs must stay within [0, 1] and never increase with slope angle, for every
// curve variant.
func TestSlopeFactorMonotonicInRange(t *testing.T) {
	variants := []struct {
		name     string
		ct       float64
		slippery bool
		warmRoof bool
	}{
		{name: "warm slippery", ct: 1.0, slippery: true},
		{name: "warm non-slippery", ct: 1.0},
		{name: "cold slippery", ct: 1.2, slippery: true},
		{name: "cold non-slippery", ct: 1.2},
		{name: "override slippery", ct: 1.3, slippery: true, warmRoof: true},
	}

	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			prev := math.Inf(1)
			for theta := 0.0; theta <= 90.0; theta += 0.25 {
				cs := SlopeFactor(theta, v.ct, v.slippery, v.warmRoof)
				if cs < 0 || cs > 1 {
					t.Fatalf("Cs(%.2f°) = %.4f outside [0, 1]", theta, cs)
				}
				if cs > prev {
					t.Fatalf("Cs increased from %.4f to %.4f at %.2f°", prev, cs, theta)
				}
				prev = cs
			}
		})
	}
}
