package subject

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomePass    = "pass"
	outcomeFail    = "fail"
	outcomeInvalid = "invalid"
)

// assertionsTotal counts integral assertions by operation and outcome.
//
// Labels:
//   - operation: "is_equal_to" or "is_not_equal_to".
//   - outcome: "pass", "fail", or "invalid" when an input was not integral.
//
// Usage example in dashboards:
//   - sum(rate(truth_integral_assertions_total{outcome="fail"}[5m])) by (operation)
var assertionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{ //nolint:gochecknoglobals
	Name: "truth_integral_assertions_total",
	Help: "The total number of integral equality assertions evaluated",
}, []string{"operation", "outcome"})

// init pre-initializes every label combination so that rates start at zero
// instead of appearing on first use.
func init() {
	for _, op := range []string{"is_equal_to", "is_not_equal_to"} {
		for _, outcome := range []string{outcomePass, outcomeFail, outcomeInvalid} {
			assertionsTotal.WithLabelValues(op, outcome).Add(0)
		}
	}
}
