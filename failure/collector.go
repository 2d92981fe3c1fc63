package failure

import (
	commonerrors "github.com/amp-labs/amp-truth/errors"
	"go.uber.org/atomic"
)

// Collector is a soft-assertion Reporter: failures do not stop the test, they
// are collected and reported together with t.Error when the test finishes.
// It is safe for concurrent use.
type Collector struct {
	t        TB
	errs     commonerrors.Collection
	reported *atomic.Bool
}

var _ Reporter = (*Collector)(nil)

// Expect returns a Collector bound to t.
func Expect(t TB) *Collector {
	t.Helper()

	c := &Collector{
		t:        t,
		reported: atomic.NewBool(false),
	}

	t.Cleanup(c.Report)

	return c
}

// Fail records the message.
func (c *Collector) Fail(message string) {
	c.errs.Add(NewAssertionError(message))
}

// HasFailures reports whether any failure has been collected.
func (c *Collector) HasFailures() bool {
	return c.errs.HasError()
}

// Failures returns the collected messages in the order they were reported.
func (c *Collector) Failures() []string {
	errs := c.errs.Errors()
	out := make([]string, 0, len(errs))

	for _, err := range errs {
		out = append(out, err.Error())
	}

	return out
}

// Report fails the test with every collected failure. It runs automatically
// at cleanup and only reports once.
func (c *Collector) Report() {
	if !c.HasFailures() || !c.reported.CompareAndSwap(false, true) {
		return
	}

	c.t.Helper()
	c.t.Error(c.errs.GetError())
}
