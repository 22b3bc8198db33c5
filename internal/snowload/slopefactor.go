package snowload

// Slope-factor curves from ASCE 7-22 Figure 7.4-1. Each curve holds Cs = 1.0
// up to a breakpoint angle, then decreases linearly to zero at 70 degrees.
// Warm-roof curves apply when Ct <= 1.1 or the warm-roof override is set.
const (
	warmSlipperyBreak = 5.0
	warmSlipperySpan  = 65.0
	warmBreak         = 30.0
	warmSpan          = 40.0
	coldSlipperyBreak = 15.0
	coldSlipperySpan  = 55.0
	coldBreak         = 45.0
	coldSpan          = 25.0
)

// SlopeFactor evaluates the slope-reduction factor Cs for a roof plane.
// Out-of-range angles are clamped to [0, 90] rather than rejected; the
// result is always within [0, 1].
func SlopeFactor(angleDeg, ct float64, slippery, warmRoof bool) float64 {
	theta := angleDeg
	if theta < 0 {
		theta = 0
	} else if theta > 90 {
		theta = 90
	}

	warm := ct <= 1.1 || warmRoof

	var breakAngle, span float64
	switch {
	case warm && slippery:
		breakAngle, span = warmSlipperyBreak, warmSlipperySpan
	case warm:
		breakAngle, span = warmBreak, warmSpan
	case slippery:
		breakAngle, span = coldSlipperyBreak, coldSlipperySpan
	default:
		breakAngle, span = coldBreak, coldSpan
	}

	if theta <= breakAngle {
		return 1.0
	}

	cs := 1.0 - (theta-breakAngle)/span
	if cs < 0 {
		cs = 0
	}
	return cs
}
