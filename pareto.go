package pareto

import "math"

// Distribution is one fully specified Pareto(location, shape) distribution.
//
// Both parameters are fixed at construction; a Distribution is an immutable
// value and safe for concurrent use from any number of goroutines.
//
//   - location (Xm): the scale parameter, the minimum of the support.
//     Must be finite and > 0.
//   - shape (k, α): the tail index. Larger values mean lighter tails and
//     more finite moments. Must be finite and > 0.
type Distribution struct {
	location float64
	shape    float64
	policy   Policy
}

// Option configures a Distribution at construction.
type Option func(*Distribution)

// WithPolicy installs the error policy every entry point on the returned
// Distribution validates through. The default is RaisePolicy.
func WithPolicy(p Policy) Option {
	return func(d *Distribution) { d.policy = p }
}

// New constructs a Pareto(location, shape) distribution, validating both
// parameters immediately through the configured policy. Under the default
// RaisePolicy an invalid parameter is reported as a *DomainError; under a
// QuietPolicy the detail is recorded on the policy and New returns a nil
// error.
func New(location, shape float64, opts ...Option) (Distribution, error) {
	d := Distribution{location: location, shape: shape}
	for _, opt := range opts {
		opt(&d)
	}

	const op = "pareto.New"
	if _, ok, err := checkParameters(op, location, shape, d.pol()); !ok {
		return d, err
	}
	return d, nil
}

// Default returns the Pareto(1, 1) distribution.
func Default() Distribution {
	return Distribution{location: 1, shape: 1}
}

// Location returns the scale parameter Xm.
func (d Distribution) Location() float64 { return d.location }

// Shape returns the tail index k.
func (d Distribution) Shape() float64 { return d.shape }

// pol returns the configured policy, defaulting to RaisePolicy.
func (d Distribution) pol() Policy {
	if d.policy != nil {
		return d.policy
	}
	return RaisePolicy{}
}

// Interval is a pair of bounds on the random variable. math.MaxFloat64
// stands in for +infinity.
type Interval struct {
	Lower float64
	Upper float64
}

// Range returns the permissible values for the random variable,
// independent of the parameters: (0, max).
func (d Distribution) Range() Interval {
	return Interval{Lower: 0, Upper: math.MaxFloat64}
}

// Support returns the interval where the density is strictly positive and
// the cdf strictly increases: (location, max).
func (d Distribution) Support() Interval {
	return Interval{Lower: d.location, Upper: math.MaxFloat64}
}
