// Package testutil provides reusable test helpers and reference
// implementations for the convolution and interpolation tests.
package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Tolerances shared by the package tests.
const (
	DefaultTolerance = 1e-10
	FFTTolerance     = 1e-8
	WindowTolerance  = 1e-10
)

// AssertSymmetric checks s[i] == s[len(s)-1-i] for every i.
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if !assert.InDelta(t, s[i], s[j], tolerance, "asymmetric at %d/%d", i, j) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf checks every element is finite.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return assert.Fail(t, "non-finite value", "s[%d] = %v", i, v)
		}
	}
	return true
}

// AssertAllInRange checks every element lies in [lo, hi].
func AssertAllInRange(t *testing.T, s []float64, lo, hi float64) bool {
	t.Helper()
	for i, v := range s {
		if v < lo || v > hi {
			return assert.Fail(t, "value out of range", "s[%d] = %v, want [%v, %v]", i, v, lo, hi)
		}
	}
	return true
}

// AssertDCGain checks the taps sum to gain.
func AssertDCGain(t *testing.T, taps []float64, gain, tolerance float64) bool {
	t.Helper()
	return assert.InDelta(t, gain, floats.Sum(taps), tolerance, "DC gain")
}

// AssertCenterIsMax checks no element exceeds the middle one.
func AssertCenterIsMax(t *testing.T, s []float64) bool {
	t.Helper()
	if len(s) == 0 {
		return assert.Fail(t, "empty slice")
	}
	mid := len(s) / 2
	if peak := floats.MaxIdx(s); s[peak] > s[mid] {
		return assert.Fail(t, "center is not the maximum", "s[%d] = %v > s[%d] = %v", peak, s[peak], mid, s[mid])
	}
	return true
}

// AssertOddLength checks len(s) is odd.
func AssertOddLength(t *testing.T, s []float64) bool {
	t.Helper()
	return assert.Equal(t, 1, len(s)%2, "length %d is not odd", len(s))
}

// AssertSlicesInDelta compares two slices element by element and stops at
// the first mismatch.
func AssertSlicesInDelta(t *testing.T, expected, actual []float64, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected), msgAndArgs...) {
		return false
	}
	for i := range expected {
		if !assert.InDelta(t, expected[i], actual[i], tolerance, "index %d", i) {
			return false
		}
	}
	return true
}

// AssertMatrixInDelta compares two matrices element by element and stops at
// the first mismatch.
func AssertMatrixInDelta(t *testing.T, expected, actual mat.Matrix, tolerance float64) bool {
	t.Helper()
	er, ec := expected.Dims()
	ar, ac := actual.Dims()
	if !assert.Equal(t, []int{er, ec}, []int{ar, ac}, "shape mismatch") {
		return false
	}
	for i := range er {
		for j := range ec {
			if !assert.InDelta(t, expected.At(i, j), actual.At(i, j), tolerance, "element (%d,%d)", i, j) {
				return false
			}
		}
	}
	return true
}
