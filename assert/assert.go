// Package assert provides runtime integral equality checks for production
// code. A failed check panics with a *failure.AssertionError carrying the
// usual "Not true that <A> is equal to <E>" message.
//
// Building with the assertions_disabled tag turns every check into a no-op.
package assert

import (
	"github.com/amp-labs/amp-truth/failure"
	"github.com/amp-labs/amp-truth/subject"
)

func verb() subject.Verb {
	return subject.Using(failure.Panic())
}
