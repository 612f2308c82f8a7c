// Copyright 2025 Sonic Labs
// This file is part of Aida Testing Infrastructure for Sonic
//
// Aida is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Aida is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Aida. If not, see <http://www.gnu.org/licenses/>.

package discrete

import (
	"math"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Check checks if the given probability mass function (pmf) of a
// discrete finite random variable is valid. A valid pmf has all
// probabilities in the range [0,1], and the sum of all probabilities
// must be one.
func Check(f []float64) error {
	total := 0.0
	for _, x := range f {
		if x < 0.0 || x > 1.0 || math.IsNaN(x) {
			return tracegen.ConfigErrorf("invalid probability (%v) in the pmf", x)
		}
		total += x
	}
	if math.Abs(total-1.0) > tracegen.WeightTolerance {
		return tracegen.ConfigErrorf("total is not one (%v)", total)
	}
	return nil
}

// Normalize scales a copy of the non-negative weights so that they form a pmf.
// A weight vector that is empty, has negative or non-finite entries, or sums
// up to zero cannot be normalized.
func Normalize(weights []float64) ([]float64, error) {
	if len(weights) == 0 {
		return nil, tracegen.ConfigErrorf("empty weight vector")
	}
	for _, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, tracegen.ConfigErrorf("invalid weight (%v) in %v", w, weights)
		}
	}
	total := floats.Sum(weights)
	if total <= 0 || math.IsInf(total, 0) {
		return nil, tracegen.ConfigErrorf("weights %v sum up to %v", weights, total)
	}
	pmf := make([]float64, len(weights))
	copy(pmf, weights)
	floats.Scale(1/total, pmf)
	if err := Check(pmf); err != nil {
		return nil, tracegen.WrapConfig(err, "cannot normalize weights %v", weights)
	}
	return pmf, nil
}

// Quantile computes the quantile (inverse CDF) for a discrete finite random variable
// given by its pmf. For a probability u in [0,1], it returns the index i such that
// the cumulative probability up to and including i is at least u. If u exceeds the
// total due to rounding, the last index with a positive probability is returned.
func Quantile(f []float64, u float64) int {
	sum := 0.0 // Kahan's summation for the probability sum
	c := 0.0   // compensation term
	lastPositive := -1
	for i, p := range f {
		y := p - c
		t := sum + y
		c = (t - sum) - y
		sum = t
		if p > 0.0 {
			if u <= sum {
				return i
			}
			lastPositive = i
		}
	}
	if lastPositive != -1 {
		return lastPositive
	}
	return 0
}

// Sample draws an index of the discrete finite random variable defined by the pmf.
func Sample(rg *rand.Rand, f []float64) int {
	return Quantile(f, rg.Float64())
}
