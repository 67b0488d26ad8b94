package pareto

import "math"

// Quantile returns the inverse cdf: the x for which P(X ≤ x) = p.
//
//	x = Xm / (1-p)^(1/k)
//
// p must be finite and within [0, 1]. The boundaries are handled exactly
// rather than through the general formula, which is singular there:
// p = 0 yields Xm and p = 1 yields math.MaxFloat64 (the stand-in for
// +infinity).
func (d Distribution) Quantile(p float64) (float64, error) {
	const op = "pareto.Quantile"
	pol := d.pol()

	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}
	if res, ok, err := checkProbability(op, p, pol); !ok {
		return res, err
	}

	if p == 0 {
		return d.location, nil
	}
	if p == 1 {
		return math.MaxFloat64, nil
	}
	return d.location / math.Pow(1-p, 1/d.shape), nil
}

// QuantileComplement returns the x for which P(X > x) = q, the algebraic
// inverse of CDFComplement:
//
//	x = Xm / q^(1/k)
//
// q = 1 yields Xm exactly and q = 0 yields math.MaxFloat64, mirroring
// Quantile's boundary handling on the opposite ends.
func (d Distribution) QuantileComplement(q float64) (float64, error) {
	const op = "pareto.QuantileComplement"
	pol := d.pol()

	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}
	if res, ok, err := checkProbability(op, q, pol); !ok {
		return res, err
	}

	if q == 1 {
		return d.location, nil
	}
	if q == 0 {
		return math.MaxFloat64, nil
	}
	return d.location / math.Pow(q, 1/d.shape), nil
}
