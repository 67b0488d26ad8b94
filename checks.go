package pareto

import "math"

// Domain error message texts. The offending value is interpolated where
// %v appears.
const (
	msgLocationPositive = "Location parameter is %v, but must be > 0!"
	msgLocationFinite   = "Location parameter is %v, but must be finite!"
	msgShapePositive    = "Shape parameter is %v, but must be > 0!"
	msgShapeFinite      = "Shape parameter is %v, but must be finite!"
	msgXPositive        = "x parameter is %v, but must be > 0!"
	msgXFinite          = "x parameter is %v, but must be finite!"
	msgProbabilityRange = "Probability argument is %v, but must be >= 0 and <= 1!"
)

// isFinite reports whether v is neither NaN nor an infinity.
func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validation helpers. Each returns ok=true when the value passes. On a
// violation the helper routes through pol exactly once and hands back the
// (result, error) pair the failing entry point must return as-is: under
// RaisePolicy that is (NaN, *DomainError), under QuietPolicy (NaN, nil)
// with the detail recorded on the policy.

func checkLocation(op string, location float64, pol Policy) (float64, bool, error) {
	if !isFinite(location) {
		res, err := pol.RaiseDomainError(op, msgLocationFinite, location)
		return res, false, err
	}
	if location <= 0 {
		res, err := pol.RaiseDomainError(op, msgLocationPositive, location)
		return res, false, err
	}
	return 0, true, nil
}

func checkShape(op string, shape float64, pol Policy) (float64, bool, error) {
	if !isFinite(shape) {
		res, err := pol.RaiseDomainError(op, msgShapeFinite, shape)
		return res, false, err
	}
	if shape <= 0 {
		res, err := pol.RaiseDomainError(op, msgShapePositive, shape)
		return res, false, err
	}
	return 0, true, nil
}

// checkParameters validates the distribution parameters, location first.
func checkParameters(op string, location, shape float64, pol Policy) (float64, bool, error) {
	if res, ok, err := checkLocation(op, location, pol); !ok {
		return res, false, err
	}
	return checkShape(op, shape, pol)
}

// checkX validates the point at which a density or cumulative probability
// is evaluated: finite and strictly positive.
func checkX(op string, x float64, pol Policy) (float64, bool, error) {
	if !isFinite(x) {
		res, err := pol.RaiseDomainError(op, msgXFinite, x)
		return res, false, err
	}
	if x <= 0 {
		res, err := pol.RaiseDomainError(op, msgXPositive, x)
		return res, false, err
	}
	return 0, true, nil
}

// checkProbability validates a quantile argument: finite and within [0, 1].
// Shared by the lower-tail and complemented quantile forms.
func checkProbability(op string, p float64, pol Policy) (float64, bool, error) {
	if !isFinite(p) || p < 0 || p > 1 {
		res, err := pol.RaiseDomainError(op, msgProbabilityRange, p)
		return res, false, err
	}
	return 0, true, nil
}
