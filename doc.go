// Package pareto implements the Pareto probability distribution.
//
// # Overview
//
// A Pareto(Xm, k) distribution models heavy-tailed quantities: wealth,
// file sizes, request latencies in the power-law regime. The package
// provides the closed-form density, cumulative probability, quantile and
// moment functions for one fully specified distribution:
//
//	f(x) = k·Xm^k / x^(k+1)     (density, x ≥ Xm)
//	F(x) = 1 - (Xm/x)^k         (cumulative, x > Xm)
//
// Where:
//   - Xm (location): the scale parameter, the minimum of the support
//   - k (shape): the tail index — larger k, lighter tail, more finite moments
//
// Every function is a pure O(1) evaluation with no shared state, so a
// Distribution may be used from any number of goroutines without
// coordination.
//
// # Quick Start
//
//	d, err := pareto.New(2, 3)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	density, _ := d.PDF(4)      // 0.09375
//	prob, _ := d.CDF(4)         // 0.875
//	p99, _ := d.Quantile(0.99)  // value below which 99% of the mass sits
//	mean, _ := d.Mean()         // 3
//
// # Upper-Tail Forms
//
// When the lower-tail probability is close to 1, compute the complement
// directly instead of subtracting:
//
//	tail, _ := d.CDFComplement(x)       // P(X > x), no cancellation
//	x, _ := d.QuantileComplement(1e-9)  // the 1-in-a-billion threshold
//
// The lower-tail CDF itself is evaluated through a stabilized
// power-minus-one primitive, so it keeps full precision for x close to
// the location where the naive 1 - (Xm/x)^k form cancels.
//
// # Moments and Tail Heaviness
//
// Heavy tails erase moments from the bottom up: the mean needs k > 1,
// the variance k > 2, skewness k > 3, kurtosis k > 4. Variance, skewness
// and kurtosis report a domain error in their undefined regions. The mean
// instead returns math.MaxFloat64 (the stand-in for +infinity) — an
// infinite mean is still a meaningful answer for a Pareto distribution,
// matching the classical treatment.
//
// The famous 80/20 rule is this distribution with k = log₄5 ≈ 1.16: a
// finite-mean, infinite-variance regime where averages exist but are
// dominated by outliers.
//
// # Error Policies
//
// All validation runs through a single Policy seam. The default
// RaisePolicy reports violations as *DomainError values matchable with
// errors.Is(err, ErrDomain):
//
//	if _, err := d.PDF(-1); errors.Is(err, pareto.ErrDomain) {
//	    // "pareto.PDF: x parameter is -1, but must be > 0!"
//	}
//
// Numeric pipelines that prefer NaN propagation over error plumbing can
// install a QuietPolicy, which makes every failing entry point return
// quiet NaN with a nil error while recording (and optionally logging)
// the detail:
//
//	quiet := &pareto.QuietPolicy{Logger: slog.Default()}
//	d, _ := pareto.New(2, 3, pareto.WithPolicy(quiet))
//
//	v, _ := d.Quantile(1.5) // NaN, nil
//	if e := quiet.LastError(); e != nil {
//	    // "Probability argument is 1.5, but must be >= 0 and <= 1!"
//	}
//
// # Scope
//
// This package models exactly one distribution family and only its
// closed forms: no random variate generation, no parameter fitting from
// data, no generic distribution framework.
//
// # See Also
//
//   - examples/tailmodel - modeling a latency tail with a Pareto fit
package pareto
