// Package failure turns failed assertions into test outcomes.
//
// A Reporter receives the exact failure message of an assertion. What it does
// with the message is the caller's choice: fail the test (Fatal), skip it
// (Skip), panic (Panic, PanicAssumption), collect it for the end of the test
// (Expect), or simply remember it (Capture). Reporters never see successful
// assertions.
package failure

import (
	"context"
	"errors"
	"log/slog"

	commonerrors "github.com/amp-labs/amp-truth/errors"
	"github.com/amp-labs/amp-truth/logger"
)

// Reporter receives failure messages. Implementations must keep the message
// verbatim.
type Reporter interface {
	Fail(message string)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(message string)

// Fail calls f(message).
func (f ReporterFunc) Fail(message string) {
	f(message)
}

// TB is the subset of testing.TB used by the test-bound reporters.
type TB interface {
	Helper()
	Fatal(args ...any)
	Skip(args ...any)
	Error(args ...any)
	Cleanup(fn func())
}

// Fatal returns a Reporter that fails and stops the test.
func Fatal(t TB) Reporter {
	return ReporterFunc(func(message string) {
		t.Helper()
		t.Fatal(message)
	})
}

// Skip returns a Reporter that skips the test. This is assumption mode: a
// failed assumption means the test does not apply, not that it is broken.
func Skip(t TB) Reporter {
	return ReporterFunc(func(message string) {
		t.Helper()
		t.Skip(message)
	})
}

// AssertionError carries the message of a failed assertion or assumption.
type AssertionError struct {
	message string
	kind    error
}

// Message returns the failure message, exactly as produced by the assertion.
func (e *AssertionError) Message() string {
	return e.message
}

func (e *AssertionError) Error() string {
	return e.message
}

// Unwrap returns ErrAssertionFailed or ErrAssumptionViolated.
func (e *AssertionError) Unwrap() error {
	return e.kind
}

// IsAssumption reports whether the error came from an assumption.
func (e *AssertionError) IsAssumption() bool {
	return errors.Is(e.kind, commonerrors.ErrAssumptionViolated)
}

// NewAssertionError returns an AssertionError for a failed assertion.
func NewAssertionError(message string) *AssertionError {
	return &AssertionError{message: message, kind: commonerrors.ErrAssertionFailed}
}

// NewAssumptionError returns an AssertionError for a failed assumption.
func NewAssumptionError(message string) *AssertionError {
	return &AssertionError{message: message, kind: commonerrors.ErrAssumptionViolated}
}

// Panic returns a Reporter that panics with an *AssertionError.
func Panic() Reporter {
	return ReporterFunc(func(message string) {
		panic(NewAssertionError(message))
	})
}

// PanicAssumption returns a Reporter that panics with an *AssertionError
// wrapping ErrAssumptionViolated.
func PanicAssumption() Reporter {
	return ReporterFunc(func(message string) {
		panic(NewAssumptionError(message))
	})
}

// Catch runs fn and recovers an *AssertionError panic. Any other panic is
// propagated.
func Catch(fn func()) (caught *AssertionError, ok bool) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		ae, isAssertion := r.(*AssertionError)
		if !isAssertion {
			panic(r)
		}

		caught, ok = ae, true
	}()

	fn()

	return nil, false
}

// Logged wraps a Reporter so that every failure is logged at the given level
// before being delegated.
func Logged(ctx context.Context, level slog.Level, next Reporter) Reporter {
	return ReporterFunc(func(message string) {
		logger.Get(ctx).Log(ctx, level, "assertion failed", "message", message)

		next.Fail(message)
	})
}
