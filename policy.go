package pareto

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sync"
)

// ErrDomain is the sentinel matched by errors.Is for every domain error
// produced by this package, whichever entry point raised it.
var ErrDomain = errors.New("pareto: domain error")

// DomainError reports an input outside the mathematically valid domain of
// an operation. Op names the rejecting entry point ("pareto.CDF"), Message
// carries the human-readable detail with the offending value interpolated.
type DomainError struct {
	Op      string
	Message string
}

func (e *DomainError) Error() string { return e.Op + ": " + e.Message }

// Is reports ErrDomain as a match, so callers can classify without
// depending on the concrete type.
func (e *DomainError) Is(target error) bool { return target == ErrDomain }

// Policy decides what a formula function does when validation fails.
//
// Every entry point validates through one shared helper, and that helper
// reports violations through exactly one Policy call. The policy is the
// only axis of variation between the raising and the quiet numeric modes;
// the formulas themselves never branch on it.
type Policy interface {
	// RaiseDomainError reports a violation discovered by op. It returns
	// the value the failing entry point hands back to its caller and the
	// error to surface alongside it (nil when the policy suppresses
	// errors in favor of a quiet NaN result).
	RaiseDomainError(op, format string, value float64) (float64, error)
}

// RaisePolicy is the default policy: a validation failure surfaces as a
// *DomainError and the numeric result is quiet NaN.
type RaisePolicy struct{}

func (RaisePolicy) RaiseDomainError(op, format string, value float64) (float64, error) {
	return math.NaN(), &DomainError{Op: op, Message: fmt.Sprintf(format, value)}
}

// QuietPolicy suppresses domain errors: the failing entry point returns
// quiet NaN with a nil error, and the detail is recorded on the policy
// (and logged, when a Logger is attached) instead of unwinding the caller.
// Intended for numeric pipelines that prefer NaN propagation over error
// plumbing.
//
// A QuietPolicy must not be copied after first use. The zero value is
// ready to use.
type QuietPolicy struct {
	// Logger, when non-nil, receives a warning record for every
	// suppressed domain error.
	Logger *slog.Logger

	mu   sync.Mutex
	last *DomainError
}

func (q *QuietPolicy) RaiseDomainError(op, format string, value float64) (float64, error) {
	e := &DomainError{Op: op, Message: fmt.Sprintf(format, value)}

	q.mu.Lock()
	q.last = e
	q.mu.Unlock()

	if q.Logger != nil {
		q.Logger.Warn("domain error suppressed", "op", op, "detail", e.Message)
	}

	return math.NaN(), nil
}

// LastError returns the most recently suppressed domain error, or nil if
// no violation has been reported through this policy yet.
func (q *QuietPolicy) LastError() *DomainError {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.last
}
