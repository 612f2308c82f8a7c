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

// Package analysis computes locality statistics of address traces.
package analysis

import (
	"cmp"
	"slices"

	"github.com/HdrHistogram/hdrhistogram-go"
)

const (
	// maxReuseDistance is the largest reuse distance tracked exactly;
	// longer distances are recorded as maxReuseDistance.
	maxReuseDistance = 1 << 40
	// significantDigits of the reuse distance histogram
	significantDigits = 3
	// topAddresses is the number of most frequent addresses reported.
	topAddresses = 20
)

// Percentiles reported for reuse distances.
var Percentiles = []float64{50, 90, 99, 99.9, 100}

// Collector accumulates statistics of an address sequence.
type Collector struct {
	groupOf    func(int64) int
	refs       int64
	counts     map[int64]int64 // references per address
	last       map[int64]int64 // position of the last reference per address
	reuse      *hdrhistogram.Histogram
	groupRefs  map[int]int64
	groupAddrs map[int]int64 // distinct addresses per group
}

// NewCollector creates an empty collector. If groupOf is nil, all
// addresses belong to group 0.
func NewCollector(groupOf func(int64) int) *Collector {
	if groupOf == nil {
		groupOf = func(int64) int { return 0 }
	}
	return &Collector{
		groupOf:    groupOf,
		counts:     make(map[int64]int64),
		last:       make(map[int64]int64),
		reuse:      hdrhistogram.New(1, maxReuseDistance, significantDigits),
		groupRefs:  make(map[int]int64),
		groupAddrs: make(map[int]int64),
	}
}

// Add records the next reference of the sequence.
func (c *Collector) Add(addr int64) {
	pos := c.refs
	c.refs++
	group := c.groupOf(addr)
	c.groupRefs[group]++
	if prev, found := c.last[addr]; found {
		_ = c.reuse.RecordValue(min(pos-prev-1, maxReuseDistance))
	} else {
		c.groupAddrs[group]++
	}
	c.last[addr] = pos
	c.counts[addr]++
}

// Percentile is the reuse distance at a given percentile.
type Percentile struct {
	Percentile float64
	Distance   int64
}

// GroupSummary describes the references of one address group.
type GroupSummary struct {
	Group       int
	References  int64
	Addresses   int64   // distinct referenced addresses
	RevisitRate float64 // references per distinct address
}

// AddressCount is the number of references of an address.
type AddressCount struct {
	Address    int64
	References int64
}

// Summary is a snapshot of the collected statistics.
type Summary struct {
	References       int64
	Unique           int64
	Reuses           int64 // references to an address seen before
	MeanReuse        float64
	ReusePercentiles []Percentile
	Groups           []GroupSummary
	Top              []AddressCount // most frequent addresses, in descending order
}

// Summary computes the statistics of all references added so far.
func (c *Collector) Summary() Summary {
	s := Summary{
		References: c.refs,
		Unique:     int64(len(c.counts)),
		Reuses:     c.reuse.TotalCount(),
	}
	if s.Reuses > 0 {
		s.MeanReuse = c.reuse.Mean()
		for _, p := range Percentiles {
			s.ReusePercentiles = append(s.ReusePercentiles, Percentile{p, c.reuse.ValueAtQuantile(p)})
		}
	}

	for group, refs := range c.groupRefs {
		addrs := c.groupAddrs[group]
		s.Groups = append(s.Groups, GroupSummary{
			Group:       group,
			References:  refs,
			Addresses:   addrs,
			RevisitRate: float64(refs) / float64(addrs),
		})
	}
	slices.SortFunc(s.Groups, func(a, b GroupSummary) int {
		return cmp.Compare(a.Group, b.Group)
	})

	for addr, refs := range c.counts {
		s.Top = append(s.Top, AddressCount{addr, refs})
	}
	slices.SortFunc(s.Top, func(a, b AddressCount) int {
		if d := cmp.Compare(b.References, a.References); d != 0 {
			return d
		}
		return cmp.Compare(a.Address, b.Address)
	})
	if len(s.Top) > topAddresses {
		s.Top = s.Top[:topAddresses]
	}
	return s
}
