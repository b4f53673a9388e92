// Package testutil provides reusable test helper functions for transform tests.
package testutil

import (
	"fmt"
	"math"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	ClosedFormTolerance = 1e-9
	SymmetryTolerance   = 1e-12
)

type tHelper interface {
	Helper()
}

func helper(t assert.TestingT) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, fmt.Sprintf("found NaN: s[%d] is NaN", i), msgAndArgs...)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, fmt.Sprintf("found Inf: s[%d] is Inf", i), msgAndArgs...)
		}
	}
	return true
}

// AssertAllNonNegative verifies that every element is >= 0.
func AssertAllNonNegative(t assert.TestingT, s []float64, msgAndArgs ...any) bool {
	helper(t)
	for i, v := range s {
		if v < 0 {
			return assert.Fail(t, fmt.Sprintf("negative value: s[%d]=%e", i, v), msgAndArgs...)
		}
	}
	return true
}

// AssertAllEqual verifies that every element equals the first within tolerance.
func AssertAllEqual(t assert.TestingT, s []float64, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	for i := 1; i < len(s); i++ {
		if !assert.InDelta(t, s[0], s[i], tolerance, msgAndArgs...) {
			return false
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t assert.TestingT, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	if relError > tolerance {
		return assert.Fail(t, fmt.Sprintf("relative error %e exceeds tolerance %e (expected=%e, actual=%e)",
			relError, tolerance, expected, actual), msgAndArgs...)
	}
	return true
}

// AssertScaledError verifies |actual-expected| <= tolerance·scale.
// Used where expected may be near zero but the natural magnitude of the
// quantity is known.
func AssertScaledError(t assert.TestingT, expected, actual, scale, tolerance float64, msgAndArgs ...any) bool {
	helper(t)
	return assert.InDelta(t, expected, actual, math.Abs(scale)*tolerance, msgAndArgs...)
}

// AssertInRange verifies that a value is within [min, max].
func AssertInRange(t assert.TestingT, value, minVal, maxVal float64, msgAndArgs ...any) bool {
	helper(t)
	if value < minVal || value > maxVal {
		return assert.Fail(t, fmt.Sprintf("value %f is outside range [%f, %f]", value, minVal, maxVal),
			msgAndArgs...)
	}
	return true
}
