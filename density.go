package pareto

import "math"

// PDF returns the probability density at x:
//
//	f(x) = k·Xm^k / x^(k+1)   for x ≥ Xm
//	f(x) = 0                  for x < Xm
//
// x must be finite and > 0; violations are reported through the configured
// policy. Below the support's lower bound the density is exactly zero
// regardless of shape — that is a value, not an error.
func (d Distribution) PDF(x float64) (float64, error) {
	const op = "pareto.PDF"
	pol := d.pol()

	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}
	if res, ok, err := checkX(op, x, pol); !ok {
		return res, err
	}

	if x < d.location {
		return 0, nil
	}
	return d.shape * math.Pow(d.location, d.shape) / math.Pow(x, d.shape+1), nil
}
