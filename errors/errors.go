// Package errors holds the sentinel errors shared by the truth packages,
// plus a small accumulator for reporting several failures at once.
package errors

import (
	"errors"
	"sync"
)

var (
	// ErrWrongType is returned when a value is not an integral type (or a pointer to one).
	ErrWrongType = errors.New("wrong type")

	// ErrOutOfRange is returned when an unsigned value does not fit in an int64.
	ErrOutOfRange = errors.New("value out of range")

	// ErrAssertionFailed marks a failed assertion.
	ErrAssertionFailed = errors.New("assertion failed")

	// ErrAssumptionViolated marks a failed assumption. Test runners treat it as a skip.
	ErrAssumptionViolated = errors.New("assumption violated")
)

// Collection accumulates errors so they can be returned together.
// It is safe for concurrent use.
type Collection struct {
	mu     sync.Mutex
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = append(c.errors, err)
}

// Clear removes all errors from the collection.
func (c *Collection) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.errors = nil
}

// HasError returns true if the collection contains at least one error.
func (c *Collection) HasError() bool {
	return c.Len() > 0
}

// Len returns the number of collected errors.
func (c *Collection) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.errors)
}

// Errors returns a copy of the collected errors, in insertion order.
func (c *Collection) Errors() []error {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]error, len(c.errors))
	copy(out, c.errors)

	return out
}

// GetError returns the collected errors as a single error.
// Returns nil if the collection is empty, the single error if there's only one,
// or a joined error (using errors.Join) if there are multiple errors.
func (c *Collection) GetError() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
