package beam

import (
	"math"
	"testing"
)

func testSection() Section {
	return Section{
		BreadthIn:       3.5,
		DepthIn:         9.25,
		ModulusPSI:      1.6e6,
		AllowBendingPSI: 1200,
		AllowShearPSI:   180,
	}
}

func TestSectionProperties(t *testing.T) {
	sec := testSection()

	if got := sec.Area(); math.Abs(got-32.375) > 1e-9 {
		t.Errorf("area: expected 32.375 in², got %.4f", got)
	}
	if got := sec.SectionModulus(); math.Abs(got-49.9115) > 0.001 {
		t.Errorf("section modulus: expected 49.9115 in³, got %.4f", got)
	}
	if got := sec.MomentOfInertia(); math.Abs(got-230.8405) > 0.001 {
		t.Errorf("moment of inertia: expected 230.8405 in⁴, got %.4f", got)
	}
}

// A bare UDL must reproduce the closed-form simply-supported answers:
// M = wL²/8, V = wL/2, delta = 5wL⁴/384EI.
func TestAnalyzeUniformLoadOnly(t *testing.T) {
	sec := testSection()
	res, err := Analyze(10, sec, nil, 100, DeflectionLimits{SnowRatio: 240, TotalRatio: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var deadOnly *CombinationResult
	for i := range res.Combinations {
		if res.Combinations[i].Name == "D" {
			deadOnly = &res.Combinations[i]
		}
	}
	if deadOnly == nil {
		t.Fatal("missing dead-only combination")
	}

	if math.Abs(deadOnly.MaxMomentLbFt-1250) > 0.01 {
		t.Errorf("max moment: expected wL²/8 = 1250 lb-ft, got %.2f", deadOnly.MaxMomentLbFt)
	}
	if math.Abs(deadOnly.MaxShearLb-500) > 0.01 {
		t.Errorf("max shear: expected wL/2 = 500 lb, got %.2f", deadOnly.MaxShearLb)
	}
	if math.Abs(deadOnly.ReactionLeft-500) > 0.01 || math.Abs(deadOnly.ReactionRight-500) > 0.01 {
		t.Errorf("reactions: expected 500/500, got %.2f/%.2f", deadOnly.ReactionLeft, deadOnly.ReactionRight)
	}
	if math.Abs(deadOnly.BendingPSI-300.53) > 0.01 {
		t.Errorf("bending stress: expected 300.53 psi, got %.2f", deadOnly.BendingPSI)
	}

	// All three combinations see the same dead load; snow-only deflection is
	// zero and total deflection is the UDL closed form.
	if res.SnowDeflIn != 0 {
		t.Errorf("snow deflection: expected 0, got %.4f", res.SnowDeflIn)
	}
	if math.Abs(res.TotalDeflIn-0.06092) > 0.0001 {
		t.Errorf("total deflection: expected 0.06092 in, got %.5f", res.TotalDeflIn)
	}
	if !res.Pass {
		t.Error("lightly loaded beam should pass every check")
	}
}

// A single centered point load must reproduce M = PL/4 and delta = PL³/48EI.
func TestAnalyzeCenterPointLoad(t *testing.T) {
	sec := testSection()
	loads := []PointLoad{{Pos: 5, Snow: 1000}}
	res, err := Analyze(10, sec, loads, 0, DeflectionLimits{SnowRatio: 240, TotalRatio: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var full *CombinationResult
	for i := range res.Combinations {
		if res.Combinations[i].Name == "D + S" {
			full = &res.Combinations[i]
		}
	}
	if full == nil {
		t.Fatal("missing D + S combination")
	}

	if math.Abs(full.MaxMomentLbFt-2500) > 0.01 {
		t.Errorf("max moment: expected PL/4 = 2500 lb-ft, got %.2f", full.MaxMomentLbFt)
	}
	if math.Abs(full.ReactionLeft-500) > 0.01 || math.Abs(full.ReactionRight-500) > 0.01 {
		t.Errorf("reactions: expected 500/500, got %.2f/%.2f", full.ReactionLeft, full.ReactionRight)
	}
	if math.Abs(res.SnowDeflIn-0.09747) > 0.0001 {
		t.Errorf("snow deflection: expected PL³/48EI = 0.09747 in, got %.5f", res.SnowDeflIn)
	}
	if math.Abs(res.TotalDeflIn-res.SnowDeflIn) > 1e-9 {
		t.Errorf("no dead load: total deflection should equal snow deflection")
	}
}

func TestAnalyzeCombinationFactors(t *testing.T) {
	sec := testSection()
	loads := []PointLoad{{Pos: 5, Snow: 1000, Dead: 400}}
	res, err := Analyze(10, sec, loads, 0, DeflectionLimits{SnowRatio: 240, TotalRatio: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	byName := map[string]CombinationResult{}
	for _, c := range res.Combinations {
		byName[c.Name] = c
	}

	// Centered load: M = PL/4 with P factored per combination.
	cases := map[string]float64{
		"D":        400 * 10 / 4,
		"D + S":    1400 * 10 / 4,
		"D + 0.7S": (400 + 700) * 10.0 / 4,
	}
	for name, want := range cases {
		c, ok := byName[name]
		if !ok {
			t.Fatalf("missing combination %q", name)
		}
		if math.Abs(c.MaxMomentLbFt-want) > 0.01 {
			t.Errorf("%s: expected moment %.1f lb-ft, got %.2f", name, want, c.MaxMomentLbFt)
		}
	}

	if res.GoverningName != "D + S" {
		t.Errorf("expected D + S to govern, got %q", res.GoverningName)
	}
}

func TestAnalyzeAsymmetricLoads(t *testing.T) {
	sec := testSection()
	// Load at the quarter point: Rl = 3P/4, Rr = P/4, Mmax = 3PL/16 at the
	// load.
	loads := []PointLoad{{Pos: 2.5, Snow: 1000}}
	res, err := Analyze(10, sec, loads, 0, DeflectionLimits{SnowRatio: 240, TotalRatio: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, c := range res.Combinations {
		if c.Name != "D + S" {
			continue
		}
		if math.Abs(c.ReactionLeft-750) > 0.01 {
			t.Errorf("left reaction: expected 750 lb, got %.2f", c.ReactionLeft)
		}
		if math.Abs(c.ReactionRight-250) > 0.01 {
			t.Errorf("right reaction: expected 250 lb, got %.2f", c.ReactionRight)
		}
		if math.Abs(c.MaxMomentLbFt-1875) > 0.01 {
			t.Errorf("max moment: expected 3PL/16 = 1875 lb-ft, got %.2f", c.MaxMomentLbFt)
		}
		if math.Abs(c.MaxShearLb-750) > 0.01 {
			t.Errorf("max shear: expected 750 lb, got %.2f", c.MaxShearLb)
		}
	}
}

func TestAnalyzeOverstressedBeamFails(t *testing.T) {
	sec := testSection()
	loads := []PointLoad{{Pos: 10, Snow: 50000}}
	res, err := Analyze(20, sec, loads, 50, DeflectionLimits{SnowRatio: 240, TotalRatio: 180})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Pass {
		t.Error("grossly overloaded beam must fail its checks")
	}
}

func TestAnalyzeInvalidInputs(t *testing.T) {
	sec := testSection()
	limits := DeflectionLimits{SnowRatio: 240, TotalRatio: 180}

	if _, err := Analyze(0, sec, nil, 10, limits); err == nil {
		t.Error("zero span must error")
	}

	bad := sec
	bad.DepthIn = 0
	if _, err := Analyze(10, bad, nil, 10, limits); err == nil {
		t.Error("zero depth must error")
	}

	bad = sec
	bad.AllowBendingPSI = 0
	if _, err := Analyze(10, bad, nil, 10, limits); err == nil {
		t.Error("zero allowable stress must error")
	}
}
