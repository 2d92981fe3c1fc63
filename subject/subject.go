// Package subject is the fluent front end for integral equality assertions:
//
//	subject.AssertThat(t, int32(4)).IsEqualTo(int64(4))
//	subject.Assume(t).That(got).IsNotEqualTo(nil)
//
// Actual and expected may be any mix of signed integers, small unsigned
// integers, integral.Char, pointers to those, or nil. They are compared by
// numeric value after widening to int64, so int32(4), int64(4) and a *int64
// pointing at 4 are all equal. Failures are handed to a failure.Reporter
// with messages such as "Not true that <4> is equal to <5>".
package subject

import (
	"context"

	"github.com/amp-labs/amp-truth/failure"
	"github.com/amp-labs/amp-truth/integral"
	"github.com/amp-labs/amp-truth/logger"
)

// TB is the part of testing.TB the verbs need.
type TB interface {
	failure.TB
	Context() context.Context
}

// Verb binds assertions to a failure strategy.
type Verb struct {
	ctx      context.Context //nolint:containedctx
	reporter failure.Reporter
}

// Using returns a Verb that reports failures to r.
func Using(r failure.Reporter) Verb {
	return Verb{ctx: context.Background(), reporter: r}
}

// Assert returns a Verb whose failures fail and stop the test.
func Assert(t TB) Verb {
	t.Helper()

	return Using(failure.Fatal(t)).WithContext(t.Context())
}

// Assume returns a Verb whose failures skip the test.
func Assume(t TB) Verb {
	t.Helper()

	return Using(failure.Skip(t)).WithContext(t.Context())
}

// Expect returns a Verb whose failures are collected and reported when the
// test finishes, along with the collector for inspection.
func Expect(t TB) (Verb, *failure.Collector) {
	t.Helper()

	collector := failure.Expect(t)

	return Using(collector).WithContext(t.Context()), collector
}

// AssertThat is shorthand for Assert(t).That(actual).
func AssertThat(t TB, actual any) *Integral {
	t.Helper()

	return Assert(t).That(actual)
}

// WithContext returns a copy of the Verb that logs through ctx.
func (v Verb) WithContext(ctx context.Context) Verb {
	if ctx == nil {
		ctx = context.Background()
	}

	v.ctx = ctx

	return v
}

// That starts an assertion about actual.
func (v Verb) That(actual any) *Integral {
	return &Integral{verb: v, actual: actual}
}

// Integral is the subject of an integral equality assertion.
type Integral struct {
	verb   Verb
	actual any
}

// IsEqualTo fails unless actual and expected have the same numeric value,
// or are both nil.
func (s *Integral) IsEqualTo(expected any) {
	s.check(integral.OpEqual, expected)
}

// IsNotEqualTo fails if actual and expected have the same numeric value,
// or are both nil.
func (s *Integral) IsNotEqualTo(expected any) {
	s.check(integral.OpNotEqual, expected)
}

func (s *Integral) check(op integral.Operation, expected any) {
	ctx := s.verb.ctx

	holds, message, err := integral.Check(op, s.actual, expected)

	switch {
	case err != nil:
		assertionsTotal.WithLabelValues(op.String(), outcomeInvalid).Inc()

		message = err.Error()
	case holds:
		assertionsTotal.WithLabelValues(op.String(), outcomePass).Inc()

		return
	default:
		assertionsTotal.WithLabelValues(op.String(), outcomeFail).Inc()
	}

	cfg := LoadConfig(ctx)
	ctx = logger.With(ctx, "operation", op.String())

	failure.Logged(ctx, cfg.FailureLevel, s.verb.reporter).Fail(message)
}
