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

package partition

import (
	"fmt"
	"math"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
)

// Interval is a closed integer range [Lower, Upper].
type Interval struct {
	Lower int64
	Upper int64
}

// Width returns the number of integers in the interval.
func (iv Interval) Width() int64 {
	return iv.Upper - iv.Lower + 1
}

// Contains checks whether x lies in the interval.
func (iv Interval) Contains(x int64) bool {
	return iv.Lower <= x && x <= iv.Upper
}

// Sample draws an integer uniformly from the interval.
func (iv Interval) Sample(rg *rand.Rand) int64 {
	return iv.Lower + rg.Int63n(iv.Width())
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Lower, iv.Upper)
}

// Intervals splits [0,max) into classes intervals of width max/classes.
// The remainder of the division is folded into the last interval whose
// upper bound is max-1.
func Intervals(classes int64, max int64) ([]Interval, error) {
	if classes <= 0 || max <= 0 {
		return nil, tracegen.ConfigErrorf("classes (%d) and address space (%d) must be positive", classes, max)
	}
	if classes > max {
		return nil, tracegen.ConfigErrorf("number of classes (%d) exceeds address space (%d)", classes, max)
	}
	width := max / classes
	intervals := make([]Interval, classes)
	for i := int64(1); i <= classes; i++ {
		intervals[i-1] = Interval{
			Lower: (i - 1) * width,
			Upper: i*width - 1,
		}
	}
	intervals[classes-1].Upper = max - 1
	return intervals, nil
}

// Boundaries computes the bin boundaries of a normalized weight vector over
// [0,max). Bin i covers [b[i], b[i+1]-1]; b[0] is zero and b[len(pmf)] is max.
func Boundaries(pmf []float64, max int64) []int64 {
	cum := floats.CumSum(make([]float64, len(pmf)), pmf)
	b := make([]int64, len(pmf)+1)
	for i, c := range cum {
		b[i+1] = int64(math.Floor(c * float64(max)))
		if b[i+1] > max {
			b[i+1] = max
		}
	}
	b[len(pmf)] = max
	return b
}

// Bins converts the boundaries of a weight vector into intervals. Bins
// without addresses are reported as error if they carry positive weight.
func Bins(pmf []float64, max int64) ([]Interval, error) {
	if max <= 0 {
		return nil, tracegen.ConfigErrorf("address space (%d) must be positive", max)
	}
	b := Boundaries(pmf, max)
	bins := make([]Interval, len(pmf))
	for i := range pmf {
		bins[i] = Interval{Lower: b[i], Upper: b[i+1] - 1}
		if pmf[i] > 0 && bins[i].Width() <= 0 {
			return nil, tracegen.ConfigErrorf("bin %d with weight %v covers no address of [0,%d)", i, pmf[i], max)
		}
	}
	return bins, nil
}
