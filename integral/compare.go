package integral

import "fmt"

// Operation names the assertion being evaluated.
type Operation int

const (
	// OpEqual asserts that actual and expected are equal.
	OpEqual Operation = iota
	// OpNotEqual asserts that actual and expected are not equal.
	OpNotEqual
)

const (
	equalTemplate    = "Not true that <%s> is equal to <%s>"
	notEqualTemplate = "Not true that <%s> is not equal to <%s>"
)

func (o Operation) String() string {
	switch o {
	case OpEqual:
		return "is_equal_to"
	case OpNotEqual:
		return "is_not_equal_to"
	default:
		return fmt.Sprintf("operation(%d)", int(o))
	}
}

// Verdict is the outcome of comparing two normalized values.
type Verdict struct {
	equal    bool
	actual   Value
	expected Value
}

// Compare decides whether actual and expected are equal. It is symmetric.
func Compare(actual, expected Value) Verdict {
	return Verdict{
		equal:    actual.Equals(expected),
		actual:   actual,
		expected: expected,
	}
}

// CompareAny normalizes both inputs and compares them. An input that cannot
// be normalized is returned as an error.
func CompareAny(actual, expected any) (Verdict, error) {
	act, err := Normalize(actual)
	if err != nil {
		return Verdict{}, fmt.Errorf("actual: %w", err)
	}

	exp, err := Normalize(expected)
	if err != nil {
		return Verdict{}, fmt.Errorf("expected: %w", err)
	}

	return Compare(act, exp), nil
}

// Equal returns true when the two values compared equal.
func (v Verdict) Equal() bool {
	return v.equal
}

// Actual returns the normalized actual value.
func (v Verdict) Actual() Value {
	return v.actual
}

// Expected returns the normalized expected value.
func (v Verdict) Expected() Value {
	return v.expected
}

// RenderedActual returns the actual value as shown in failure messages.
func (v Verdict) RenderedActual() string {
	return v.actual.String()
}

// RenderedExpected returns the expected value as shown in failure messages.
func (v Verdict) RenderedExpected() string {
	return v.expected.String()
}

// Holds reports whether the operation succeeds for this verdict.
func (v Verdict) Holds(op Operation) bool {
	if op == OpNotEqual {
		return !v.equal
	}

	return v.equal
}

// Message renders the failure message for op. Each side is rendered from its
// own value only.
func Message(op Operation, v Verdict) string {
	tmpl := equalTemplate
	if op == OpNotEqual {
		tmpl = notEqualTemplate
	}

	return fmt.Sprintf(tmpl, v.RenderedActual(), v.RenderedExpected())
}

// Check evaluates op against the two inputs. It returns whether the
// assertion holds and, when it does not, the failure message. Inputs that
// cannot be normalized are returned as an error and never compared.
func Check(op Operation, actual, expected any) (bool, string, error) {
	verdict, err := CompareAny(actual, expected)
	if err != nil {
		return false, "", err
	}

	if verdict.Holds(op) {
		return true, "", nil
	}

	return false, Message(op, verdict), nil
}
