// SPDX-License-Identifier: MIT

package matrix

import "math"

// Fill sets every element to v.
// Complexity: O(r*c).
func (m *Dense) Fill(v float64) {
	var idx int
	for idx = range m.data {
		m.data[idx] = v
	}
}

// Scale multiplies every element by alpha in place.
// Unlike an allocating Scale, this is safe to call once per iteration on hot paths.
// Complexity: O(r*c).
func (m *Dense) Scale(alpha float64) {
	var idx int
	for idx = range m.data {
		m.data[idx] *= alpha
	}
}

// ReplaceNonFinite replaces any {±Inf, NaN} entry by val in place and
// reports how many entries were replaced. val must be finite.
// Complexity: O(r*c).
func (m *Dense) ReplaceNonFinite(val float64) (int, error) {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return 0, ErrNaNInf
	}
	var (
		idx      int
		v        float64
		replaced int
	)
	for idx, v = range m.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			m.data[idx] = val
			replaced++
		}
	}

	return replaced, nil
}

// Sum returns the sum of all elements.
// Complexity: O(r*c).
func (m *Dense) Sum() float64 {
	var (
		s float64
		v float64
	)
	for _, v = range m.data {
		s += v
	}

	return s
}

// Min returns the smallest element.
// Complexity: O(r*c).
func (m *Dense) Min() float64 {
	var (
		lo = math.Inf(1)
		v  float64
	)
	for _, v = range m.data {
		if v < lo {
			lo = v
		}
	}

	return lo
}
