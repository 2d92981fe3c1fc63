package errors

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinels(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("%w: float64", ErrWrongType)

	require.ErrorIs(t, wrapped, ErrWrongType)
	require.NotErrorIs(t, wrapped, ErrOutOfRange)
	assert.Equal(t, "wrong type: float64", wrapped.Error())
	assert.NotErrorIs(t, ErrAssertionFailed, ErrAssumptionViolated)
}

func TestCollection_Add(t *testing.T) {
	t.Parallel()

	t.Run("adds non-nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(errors.New("error 1")) //nolint:err113
		c.Add(errors.New("error 2")) //nolint:err113

		assert.True(t, c.HasError())
		assert.Equal(t, 2, c.Len())
	})

	t.Run("ignores nil errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		c.Add(nil)

		assert.False(t, c.HasError())
		assert.Empty(t, c.Errors())
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		var wg sync.WaitGroup

		for i := range 50 {
			wg.Add(1)

			go func() {
				defer wg.Done()

				c.Add(fmt.Errorf("%w: %d", ErrAssertionFailed, i))
			}()
		}

		wg.Wait()

		assert.Equal(t, 50, c.Len())
	})
}

func TestCollection_Clear(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	c.Add(errors.New("error 1")) //nolint:err113
	c.Clear()

	assert.False(t, c.HasError())
	assert.NoError(t, c.GetError())
}

func TestCollection_Errors(t *testing.T) {
	t.Parallel()

	c := &Collection{}
	err1 := errors.New("error 1") //nolint:err113
	err2 := errors.New("error 2") //nolint:err113

	c.Add(err1)
	c.Add(err2)

	got := c.Errors()
	require.Equal(t, []error{err1, err2}, got)

	// The returned slice is a copy.
	got[0] = nil

	assert.Equal(t, err1, c.Errors()[0])
}

func TestCollection_GetError(t *testing.T) {
	t.Parallel()

	t.Run("returns nil when empty", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}

		assert.NoError(t, c.GetError())
	})

	t.Run("returns single error", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		c.Add(err1)

		assert.Equal(t, err1, c.GetError())
	})

	t.Run("returns joined errors for multiple errors", func(t *testing.T) {
		t.Parallel()

		c := &Collection{}
		err1 := errors.New("error 1") //nolint:err113
		err2 := errors.New("error 2") //nolint:err113

		c.Add(err1)
		c.Add(err2)

		err := c.GetError()

		require.Error(t, err)
		require.ErrorIs(t, err, err1)
		require.ErrorIs(t, err, err2)
		assert.Equal(t, "error 1\nerror 2", err.Error())
	})
}
