package pareto

import "math"

// Derived accessors composed from the primitive functions. Each inherits
// the validation and error policy of the primitives it calls.

// StdDev returns sqrt(Variance), defined for shape > 2.
func (d Distribution) StdDev() (float64, error) {
	v, err := d.Variance()
	if err != nil {
		return v, err
	}
	return math.Sqrt(v), nil
}

// CoefficientOfVariation returns StdDev/Mean, defined for shape > 2.
func (d Distribution) CoefficientOfVariation() (float64, error) {
	sd, err := d.StdDev()
	if err != nil {
		return sd, err
	}
	m, err := d.Mean()
	if err != nil {
		return m, err
	}
	return sd / m, nil
}

// Hazard returns the hazard rate PDF(x)/CDFComplement(x). For a Pareto
// distribution this is k/x on the support. A zero upper-tail probability
// yields +Inf.
func (d Distribution) Hazard(x float64) (float64, error) {
	p, err := d.PDF(x)
	if err != nil {
		return p, err
	}
	q, err := d.CDFComplement(x)
	if err != nil {
		return q, err
	}
	if q == 0 {
		return math.Inf(1), nil
	}
	return p / q, nil
}

// CHF returns the cumulative hazard -ln(CDFComplement(x)).
func (d Distribution) CHF(x float64) (float64, error) {
	q, err := d.CDFComplement(x)
	if err != nil {
		return q, err
	}
	return -math.Log(q), nil
}
