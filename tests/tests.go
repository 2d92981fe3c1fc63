// Package tests builds per-test contexts. The context carries a unique test
// identifier and the test name, and routes everything logged through the
// logger package into the test's own output.
//
// Example usage:
//
//	func TestMyFeature(t *testing.T) {
//	    ctx := tests.GetUniqueContext(t)
//	    subject.Using(failure.Capture()).WithContext(ctx).That(got).IsEqualTo(want)
//	}
package tests

import (
	"context"
	"testing"

	"github.com/amp-labs/amp-truth/logger"
	"github.com/google/uuid"
	"github.com/neilotoole/slogt"
)

type contextKey string

const (
	// testIdKey holds a UUID prefixed with "test-".
	testIdKey contextKey = "testId"

	// testNameKey holds t.Name(), including the subtest path.
	testNameKey contextKey = "testName"
)

// GetUniqueContext returns a context derived from t.Context() with a unique
// test ID, the test name, and a logger that writes to t.Log. The ID and name
// are also attached to every log line.
func GetUniqueContext(t *testing.T) context.Context {
	t.Helper()

	id := "test-" + uuid.New().String()

	ctx := context.WithValue(t.Context(), testIdKey, id)
	ctx = context.WithValue(ctx, testNameKey, t.Name())
	ctx = logger.WithLogger(ctx, slogt.New(t))

	return logger.With(ctx, "test_id", id, "test_name", t.Name())
}

// Info is the test metadata stored by GetUniqueContext.
type Info struct {
	Id   string `json:"id"`
	Name string `json:"name"`
}

// GetTestInfo returns the test metadata from ctx, and false when ctx was not
// made by GetUniqueContext.
func GetTestInfo(ctx context.Context) (Info, bool) {
	if ctx == nil {
		return Info{}, false
	}

	id, idOk := ctx.Value(testIdKey).(string)
	name, nameOk := ctx.Value(testNameKey).(string)

	if !idOk && !nameOk {
		return Info{}, false
	}

	return Info{Id: id, Name: name}, true
}
