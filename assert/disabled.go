//go:build assertions_disabled

package assert

var _ = verb

// Equal is a no-op when assertions are disabled.
func Equal(actual, expected any) {
	// Intentionally left blank
}

// NotEqual is a no-op when assertions are disabled.
func NotEqual(actual, expected any) {
	// Intentionally left blank
}
