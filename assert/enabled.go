//go:build !assertions_disabled

package assert

// Equal panics unless actual and expected have the same integral value, or
// are both nil.
func Equal(actual, expected any) {
	verb().That(actual).IsEqualTo(expected)
}

// NotEqual panics if actual and expected have the same integral value, or
// are both nil.
func NotEqual(actual, expected any) {
	verb().That(actual).IsNotEqualTo(expected)
}
