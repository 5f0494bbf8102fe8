package order

import (
	"math"
	"strconv"
	"strings"

	"creational/internal/pkg/errs"
)

// ValidateAmount accepts finite, non-negative amounts. Anything else is a
// *errs.ValueIsOutOfRangeError naming the amount.
func ValidateAmount(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return errs.NewValueIsOutOfRangeError(name, v, 0, math.MaxFloat64)
	}
	return nil
}

// formatAmount renders an amount with at least one fractional digit,
// e.g. 10 -> "10.0", 12.5 -> "12.5".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}
