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

package distribution

import (
	"fmt"
	"math"
	"strings"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/statistics/discrete"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/statistics/partition"
	"golang.org/x/exp/rand"
)

// IntervalWeighted picks an interval of the address space by weighted
// discrete choice and then an address uniformly inside that interval.
// It backs the zipf, pareto and explicit-bin address distributions.
type IntervalWeighted struct {
	name      string
	pmf       []float64
	intervals []partition.Interval
}

// NewZipf creates a zipf sampler: interval i (1-indexed) of classes equal
// intervals over [0,max) has weight 1/i^alpha.
func NewZipf(alpha float64, classes int64, max int64) (*IntervalWeighted, error) {
	if !(alpha > 0) {
		return nil, tracegen.ConfigErrorf("zipf: alpha (%v) must be positive", alpha)
	}
	return newClassWeighted(fmt.Sprintf("zipf(alpha=%v, classes=%d)", alpha, classes), classes, max,
		func(i float64) float64 { return 1.0 / math.Pow(i, alpha) })
}

// NewPareto creates a pareto sampler: interval i (1-indexed) of classes equal
// intervals over [0,max) has weight (xm/i)^alpha.
func NewPareto(xm, alpha float64, classes int64, max int64) (*IntervalWeighted, error) {
	if !(xm > 0) || !(alpha > 0) {
		return nil, tracegen.ConfigErrorf("pareto: xm (%v) and alpha (%v) must be positive", xm, alpha)
	}
	return newClassWeighted(fmt.Sprintf("pareto(xm=%v, alpha=%v, classes=%d)", xm, alpha, classes), classes, max,
		func(i float64) float64 { return math.Pow(xm/i, alpha) })
}

func newClassWeighted(name string, classes int64, max int64, weight func(float64) float64) (*IntervalWeighted, error) {
	intervals, err := partition.Intervals(classes, max)
	if err != nil {
		return nil, err
	}
	weights := make([]float64, classes)
	for i := range weights {
		weights[i] = weight(float64(i + 1))
	}
	pmf, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	return &IntervalWeighted{name: name, pmf: pmf, intervals: intervals}, nil
}

// NewBinned creates a sampler over explicit per-bin weights. The bins
// split [0,max) at the cumulative weight fractions.
func NewBinned(weights []float64, max int64) (*IntervalWeighted, error) {
	pmf, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	bins, err := partition.Bins(pmf, max)
	if err != nil {
		return nil, err
	}
	return &IntervalWeighted{name: fmt.Sprintf("bins(weights=%v, max=%d)", weights, max), pmf: pmf, intervals: bins}, nil
}

func (w *IntervalWeighted) Sample(rg *rand.Rand) int64 {
	return w.intervals[discrete.Sample(rg, w.pmf)].Sample(rg)
}

// PMF returns the normalized interval weights.
func (w *IntervalWeighted) PMF() []float64 {
	return clone(w.pmf)
}

// Intervals returns the address intervals the weights refer to.
func (w *IntervalWeighted) Intervals() []partition.Interval {
	out := make([]partition.Interval, len(w.intervals))
	copy(out, w.intervals)
	return out
}

func (w *IntervalWeighted) String() string {
	return w.name
}

// SpikeMixture is a distribution over k classes where all classes have
// the flat weight epsilon except the spikes which weigh 1-epsilon.
// It returns the class index, i.e. an inter-reference distance.
type SpikeMixture struct {
	k       int64
	epsilon float64
	spikes  []int64
	pmf     []float64
}

// NewSpikeMixture creates a spike mixture with k classes.
func NewSpikeMixture(k int64, epsilon float64, spikes []int64) (*SpikeMixture, error) {
	if k <= 0 {
		return nil, tracegen.ConfigErrorf("spike mixture: number of classes (%d) must be positive", k)
	}
	if math.IsNaN(epsilon) || epsilon < 0 || epsilon > 1 {
		return nil, tracegen.ConfigErrorf("spike mixture: epsilon (%v) must be in [0,1]", epsilon)
	}
	if len(spikes) == 0 {
		return nil, tracegen.ConfigErrorf("spike mixture: no spikes given")
	}
	weights := make([]float64, k)
	for i := range weights {
		weights[i] = epsilon
	}
	for _, s := range spikes {
		if s < 0 || s >= k {
			return nil, tracegen.ConfigErrorf("spike mixture: spike %d out of range [0,%d)", s, k)
		}
		weights[s] = 1 - epsilon
	}
	pmf, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	return &SpikeMixture{k: k, epsilon: epsilon, spikes: spikes, pmf: pmf}, nil
}

func (m *SpikeMixture) Sample(rg *rand.Rand) int64 {
	return int64(discrete.Sample(rg, m.pmf))
}

// PMF returns the normalized class weights.
func (m *SpikeMixture) PMF() []float64 {
	return clone(m.pmf)
}

func (m *SpikeMixture) String() string {
	spikes := make([]string, len(m.spikes))
	for i, s := range m.spikes {
		spikes[i] = fmt.Sprint(s)
	}
	return fmt.Sprintf("fgen(k=%d, epsilon=%v, spikes=%s)", m.k, m.epsilon, strings.Join(spikes, ","))
}

// Popularity picks one of the normalized weights and returns it in
// fixed-point representation (scaled by tracegen.PopularityScale).
type Popularity struct {
	pmf []float64
}

// NewPopularity creates a quantized popularity sampler.
func NewPopularity(weights []float64) (*Popularity, error) {
	pmf, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	return &Popularity{pmf: pmf}, nil
}

func (p *Popularity) Sample(rg *rand.Rand) int64 {
	return int64(math.Round(p.pmf[discrete.Sample(rg, p.pmf)] * tracegen.PopularityScale))
}

// PMF returns the normalized weights.
func (p *Popularity) PMF() []float64 {
	return clone(p.pmf)
}

func (p *Popularity) String() string {
	return fmt.Sprintf("popularity(weights=%v)", p.pmf)
}

// SizeList returns one of a list of literal values by weighted choice.
type SizeList struct {
	pmf   []float64
	sizes []int64
}

// NewSizeList creates a sampler over literal sizes.
func NewSizeList(weights []float64, sizes []int64) (*SizeList, error) {
	if len(weights) != len(sizes) {
		return nil, tracegen.ConfigErrorf("unequal number of weights (%d) and sizes (%d)", len(weights), len(sizes))
	}
	for _, s := range sizes {
		if s <= 0 {
			return nil, tracegen.ConfigErrorf("request size (%d) must be positive", s)
		}
	}
	pmf, err := discrete.Normalize(weights)
	if err != nil {
		return nil, err
	}
	cp := make([]int64, len(sizes))
	copy(cp, sizes)
	return &SizeList{pmf: pmf, sizes: cp}, nil
}

func (s *SizeList) Sample(rg *rand.Rand) int64 {
	return s.sizes[discrete.Sample(rg, s.pmf)]
}

// PMF returns the normalized size weights.
func (s *SizeList) PMF() []float64 {
	return clone(s.pmf)
}

func (s *SizeList) String() string {
	return fmt.Sprintf("sizes(weights=%v, sizes=%v)", s.pmf, s.sizes)
}

func clone(f []float64) []float64 {
	out := make([]float64, len(f))
	copy(out, f)
	return out
}
