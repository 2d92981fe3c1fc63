//go:build !assertions_disabled

package assert_test

import (
	"math"
	"testing"

	"github.com/amp-labs/amp-truth/assert"
	commonerrors "github.com/amp-labs/amp-truth/errors"
	"github.com/amp-labs/amp-truth/failure"
	"github.com/stretchr/testify/require"
)

func TestEqual(t *testing.T) {
	t.Parallel()

	t.Run("does not panic on equal values", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.Equal(int32(4), int64(4))
			assert.Equal(nil, (*int64)(nil))
		})
	})

	t.Run("panics with the failure message", func(t *testing.T) {
		t.Parallel()

		caught, ok := failure.Catch(func() {
			assert.Equal(int32(math.MinInt32), int64(math.MinInt64))
		})

		require.True(t, ok)
		require.Equal(t, "Not true that <-2147483648> is equal to <-9223372036854775808>", caught.Message())
		require.ErrorIs(t, caught, commonerrors.ErrAssertionFailed)
	})
}

func TestNotEqual(t *testing.T) {
	t.Parallel()

	t.Run("does not panic on different values", func(t *testing.T) {
		t.Parallel()

		require.NotPanics(t, func() {
			assert.NotEqual(4, 5)
			assert.NotEqual(0, nil)
		})
	})

	t.Run("panics with the failure message", func(t *testing.T) {
		t.Parallel()

		caught, ok := failure.Catch(func() {
			assert.NotEqual(int16(42), int8(42))
		})

		require.True(t, ok)
		require.Equal(t, "Not true that <42> is not equal to <42>", caught.Message())
	})

	t.Run("non-integral input panics", func(t *testing.T) {
		t.Parallel()

		caught, ok := failure.Catch(func() {
			assert.NotEqual(4, 4.5)
		})

		require.True(t, ok)
		require.Contains(t, caught.Message(), "wrong type")
	})
}
