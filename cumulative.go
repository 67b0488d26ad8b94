package pareto

import "math"

// CDF returns the lower-tail probability P(X ≤ x):
//
//	F(x) = 1 - (Xm/x)^k   for x > Xm
//	F(x) = 0              for x ≤ Xm
//
// The general branch is evaluated as -powm1(Xm/x, k) rather than the
// naive 1 - Pow(Xm/x, k): for x close to Xm the ratio's power is close
// to 1 and the naive difference cancels away most significant digits.
func (d Distribution) CDF(x float64) (float64, error) {
	const op = "pareto.CDF"
	pol := d.pol()

	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}
	if res, ok, err := checkX(op, x, pol); !ok {
		return res, err
	}

	if x <= d.location {
		return 0, nil
	}
	return -powm1(d.location/x, d.shape), nil
}

// CDFComplement returns the upper-tail probability P(X > x):
//
//	S(x) = (Xm/x)^k   for x > Xm
//	S(x) = 1          for x ≤ Xm
//
// Prefer this over 1 - CDF(x) when the lower-tail probability is close
// to 1. The direct power carries no cancellation risk, so math.Pow is
// used as-is.
func (d Distribution) CDFComplement(x float64) (float64, error) {
	const op = "pareto.CDFComplement"
	pol := d.pol()

	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}
	if res, ok, err := checkX(op, x, pol); !ok {
		return res, err
	}

	if x <= d.location {
		return 1, nil
	}
	return math.Pow(d.location/x, d.shape), nil
}

// powm1 computes a^b - 1 without cancellation when a^b is close to 1.
//
// For a > 0, a^b - 1 = expm1(b·ln a); Expm1 keeps full precision where
// Pow(a, b) - 1 would subtract two nearly equal quantities. Outside that
// regime the direct form is already accurate.
func powm1(a, b float64) float64 {
	if a > 0 {
		if y := b * math.Log(a); math.Abs(y) < 1 {
			return math.Expm1(y)
		}
	}
	return math.Pow(a, b) - 1
}
