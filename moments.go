package pareto

import "math"

// Moments exist only above shape thresholds: the k-th raw moment of a
// Pareto distribution is finite only for shape > k. Mean is the one
// deliberate exception to the error policy below — an infinite mean is
// reported as math.MaxFloat64, not as an error, while variance, skewness
// and the kurtosis pair treat their undefined regions as domain errors.

const (
	msgVarianceUndefined       = "variance is undefined for shape <= 2, but got %v."
	msgSkewnessUndefined       = "skewness is undefined for shape <= 3, but got %v."
	msgKurtosisUndefined       = "kurtosis is undefined for shape <= 4, but got %v."
	msgKurtosisExcessUndefined = "kurtosis_excess is undefined for shape <= 4, but got %v."
)

// Mean returns k·Xm/(k-1) for shape > 1. For shape ≤ 1 the mean is
// infinite and math.MaxFloat64 is returned with a nil error.
func (d Distribution) Mean() (float64, error) {
	const op = "pareto.Mean"
	if res, ok, err := checkParameters(op, d.location, d.shape, d.pol()); !ok {
		return res, err
	}

	if d.shape > 1 {
		return d.shape * d.location / (d.shape - 1), nil
	}
	return math.MaxFloat64, nil
}

// Mode returns the most probable value, which for a Pareto distribution
// is always the location parameter Xm.
func (d Distribution) Mode() (float64, error) {
	const op = "pareto.Mode"
	if res, ok, err := checkParameters(op, d.location, d.shape, d.pol()); !ok {
		return res, err
	}
	return d.location, nil
}

// Median returns Xm·2^(1/k), defined for every valid shape.
func (d Distribution) Median() (float64, error) {
	const op = "pareto.Median"
	if res, ok, err := checkParameters(op, d.location, d.shape, d.pol()); !ok {
		return res, err
	}
	return d.location * math.Pow(2, 1/d.shape), nil
}

// Variance returns Xm²·k / ((k-1)²·(k-2)) for shape > 2. Below that
// threshold the variance is infinite or undefined and a domain error is
// raised through the policy.
func (d Distribution) Variance() (float64, error) {
	const op = "pareto.Variance"
	pol := d.pol()
	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}

	if d.shape > 2 {
		return (d.location * d.location * d.shape) /
			((d.shape - 1) * (d.shape - 1) * (d.shape - 2)), nil
	}
	return pol.RaiseDomainError(op, msgVarianceUndefined, d.shape)
}

// Skewness returns sqrt((k-2)/k)·2(k+1)/(k-3) for shape > 3, and raises
// a domain error below that threshold.
func (d Distribution) Skewness() (float64, error) {
	const op = "pareto.Skewness"
	pol := d.pol()
	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}

	if d.shape > 3 {
		return math.Sqrt((d.shape-2)/d.shape) * 2 * (d.shape + 1) / (d.shape - 3), nil
	}
	return pol.RaiseDomainError(op, msgSkewnessUndefined, d.shape)
}

// Kurtosis returns 3(k-2)(3k²+k+2) / (k(k-3)(k-4)) for shape > 4, and
// raises a domain error below that threshold.
func (d Distribution) Kurtosis() (float64, error) {
	const op = "pareto.Kurtosis"
	pol := d.pol()
	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}

	if d.shape > 4 {
		return 3 * (d.shape - 2) * (3*d.shape*d.shape + d.shape + 2) /
			(d.shape * (d.shape - 3) * (d.shape - 4)), nil
	}
	return pol.RaiseDomainError(op, msgKurtosisUndefined, d.shape)
}

// KurtosisExcess returns 6(k³+k²-6k-2) / (k(k-3)(k-4)) for shape > 4,
// i.e. Kurtosis - 3, and raises a domain error below that threshold.
func (d Distribution) KurtosisExcess() (float64, error) {
	const op = "pareto.KurtosisExcess"
	pol := d.pol()
	if res, ok, err := checkParameters(op, d.location, d.shape, pol); !ok {
		return res, err
	}

	if d.shape > 4 {
		return 6 * (d.shape*d.shape*d.shape + d.shape*d.shape - 6*d.shape - 2) /
			(d.shape * (d.shape - 3) * (d.shape - 4)), nil
	}
	return pol.RaiseDomainError(op, msgKurtosisExcessUndefined, d.shape)
}
