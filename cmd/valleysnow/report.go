package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/valleysnow/valleysnow/internal/engine"
	"github.com/valleysnow/valleysnow/internal/jackrafter"
)

const rule = "───────────────────────────────────────────────────────────────"

// printReport renders the result record as a plain-text engineering report.
func printReport(out io.Writer, r *engine.Result) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "     VALLEY ROOF SNOW LOAD AND BEAM ANALYSIS - ASCE 7-22")
	fmt.Fprintln(out, rule)

	fmt.Fprintln(out, "GEOMETRY:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  North slope angle:\t%.2f°\n", r.Geometry.NorthAngle)
	fmt.Fprintf(w, "  West slope angle:\t%.2f°\n", r.Geometry.WestAngle)
	fmt.Fprintf(w, "  Valley length (horiz):\t%.2f ft\n", r.Geometry.ValleyLen)
	fmt.Fprintf(w, "  Valley beam length:\t%.2f ft\n", r.Geometry.BeamLen)
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "SNOW LOADS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Flat roof load (pf):\t%.1f psf\n", r.SnowLoads.Pf)
	fmt.Fprintf(w, "  Balanced load (ps):\t%.1f psf\n", r.SnowLoads.Ps)
	fmt.Fprintf(w, "  Minimum load (pm):\t%.1f psf\n", r.SnowLoads.Pm)
	fmt.Fprintf(w, "  Snow density:\t%.1f pcf\n", r.SnowLoads.Gamma)
	w.Flush()
	printDrift(out, "North", r.SnowLoads.North)
	printDrift(out, "West", r.SnowLoads.West)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "JACK STATIONS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Stations per side:\t%d\n", len(r.Jacks.North))
	fmt.Fprintf(w, "  North side total reaction:\t%.0f lb\n", jackrafter.TotalReaction(r.Jacks.North))
	fmt.Fprintf(w, "  West side total reaction:\t%.0f lb\n", jackrafter.TotalReaction(r.Jacks.West))
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprintln(out, "BEAM ANALYSIS:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Combination\tM (lb-ft)\tV (lb)\tfb/Fb'\tfv/Fv'\t\n")
	for _, c := range r.Beam.Combinations {
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.2f %s\t%.2f %s\t\n",
			c.Name, c.MaxMomentLbFt, c.MaxShearLb,
			c.BendingRatio, verdict(c.OKBending),
			c.ShearRatio, verdict(c.OKShear))
	}
	w.Flush()
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Snow deflection:\t%.3f in (limit %.3f in) %s\n",
		r.Beam.SnowDeflIn, r.Beam.SnowLimitIn, verdict(r.Beam.OKSnowDefl))
	fmt.Fprintf(w, "  Total deflection:\t%.3f in (limit %.3f in) %s\n",
		r.Beam.TotalDeflIn, r.Beam.TotalLimitIn, verdict(r.Beam.OKTotalDefl))
	fmt.Fprintf(w, "  Governing combination:\t%s\n", r.Beam.GoverningName)
	w.Flush()

	fmt.Fprintln(out, rule)
	fmt.Fprintf(out, "RESULT: %s\n", verdictStatus(r.Status))
}

func printDrift(out io.Writer, side string, s engine.SideResult) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	if !s.DriftEligible {
		fmt.Fprintf(w, "  %s drift:\tnot applicable (Cs %.2f)\n", side, s.Cs)
	} else {
		fmt.Fprintf(w, "  %s drift:\thd %.2f ft, w %.2f ft, pd %.1f psf (Cs %.2f)\n", side, s.Hd, s.W, s.Pd, s.Cs)
	}
	w.Flush()
}

func verdict(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

func verdictStatus(status string) string {
	if status == "pass" {
		return "PASS"
	}
	return "FAIL"
}
