package pareto

import (
	"math"
	"testing"

	"pgregory.net/rapid"
)

// Property-based checks of the distribution laws across randomly drawn
// parameters. Ranges are kept inside the comfortably finite regime so the
// laws are about the math, not about float overflow at the extremes.

func TestProperty_TailsSumToOne(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loc := rapid.Float64Range(1e-3, 1e3).Draw(t, "location")
		shape := rapid.Float64Range(0.1, 30).Draw(t, "shape")
		mult := rapid.Float64Range(1, 100).Draw(t, "mult")

		d, err := New(loc, shape)
		if err != nil {
			t.Fatalf("New(%v, %v) failed: %v", loc, shape, err)
		}

		x := loc * mult
		cdf, err := d.CDF(x)
		if err != nil {
			t.Fatalf("CDF(%v) failed: %v", x, err)
		}
		comp, err := d.CDFComplement(x)
		if err != nil {
			t.Fatalf("CDFComplement(%v) failed: %v", x, err)
		}

		if math.Abs(cdf+comp-1) > 1e-12 {
			t.Fatalf("CDF + CDFComplement = %v at x=%v, want 1", cdf+comp, x)
		}
	})
}

func TestProperty_QuantileInvertsCDF(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loc := rapid.Float64Range(1e-2, 1e3).Draw(t, "location")
		shape := rapid.Float64Range(0.5, 20).Draw(t, "shape")
		p := rapid.Float64Range(1e-6, 0.999).Draw(t, "p")

		d, err := New(loc, shape)
		if err != nil {
			t.Fatalf("New(%v, %v) failed: %v", loc, shape, err)
		}

		x, err := d.Quantile(p)
		if err != nil {
			t.Fatalf("Quantile(%v) failed: %v", p, err)
		}
		back, err := d.CDF(x)
		if err != nil {
			t.Fatalf("CDF(%v) failed: %v", x, err)
		}

		if math.Abs(back-p) > 1e-9 {
			t.Fatalf("CDF(Quantile(%v)) = %v, drift %v", p, back, back-p)
		}
	})
}

func TestProperty_DensityNonNegativeAndZeroBelowSupport(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loc := rapid.Float64Range(1e-3, 1e3).Draw(t, "location")
		shape := rapid.Float64Range(0.1, 30).Draw(t, "shape")
		x := rapid.Float64Range(1e-6, 1e6).Draw(t, "x")

		d, err := New(loc, shape)
		if err != nil {
			t.Fatalf("New(%v, %v) failed: %v", loc, shape, err)
		}

		pdf, err := d.PDF(x)
		if err != nil {
			t.Fatalf("PDF(%v) failed: %v", x, err)
		}

		switch {
		case x < loc && pdf != 0:
			t.Fatalf("PDF(%v) = %v below the support, want 0", x, pdf)
		case x >= loc && pdf <= 0:
			t.Fatalf("PDF(%v) = %v on the support, want > 0", x, pdf)
		}
	})
}

func TestProperty_CDFMonotone(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		loc := rapid.Float64Range(1e-2, 1e2).Draw(t, "location")
		shape := rapid.Float64Range(0.5, 10).Draw(t, "shape")
		a := rapid.Float64Range(1, 50).Draw(t, "a")
		b := rapid.Float64Range(1, 50).Draw(t, "b")

		d, err := New(loc, shape)
		if err != nil {
			t.Fatalf("New(%v, %v) failed: %v", loc, shape, err)
		}

		lo, hi := loc*a, loc*b
		if lo > hi {
			lo, hi = hi, lo
		}

		flo, err := d.CDF(lo)
		if err != nil {
			t.Fatalf("CDF(%v) failed: %v", lo, err)
		}
		fhi, err := d.CDF(hi)
		if err != nil {
			t.Fatalf("CDF(%v) failed: %v", hi, err)
		}

		if flo > fhi {
			t.Fatalf("CDF not monotone: F(%v)=%v > F(%v)=%v", lo, flo, hi, fhi)
		}
		if flo < 0 || fhi > 1 {
			t.Fatalf("CDF out of [0,1]: F(%v)=%v, F(%v)=%v", lo, flo, hi, fhi)
		}
	})
}
