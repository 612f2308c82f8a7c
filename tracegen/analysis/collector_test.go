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

package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(groupOf func(int64) int, addrs ...int64) Summary {
	c := NewCollector(groupOf)
	for _, a := range addrs {
		c.Add(a)
	}
	return c.Summary()
}

func TestCollector_EmptySequence(t *testing.T) {
	s := collect(nil)
	assert.Equal(t, int64(0), s.References)
	assert.Equal(t, int64(0), s.Unique)
	assert.Empty(t, s.ReusePercentiles)
	assert.Empty(t, s.Groups)
	assert.Empty(t, s.Top)
}

func TestCollector_ReuseDistances(t *testing.T) {
	s := collect(nil, 1, 2, 3, 1, 2, 1, 1, 3)
	assert.Equal(t, int64(8), s.References)
	assert.Equal(t, int64(3), s.Unique)
	assert.Equal(t, int64(5), s.Reuses)
	// distances 2, 2, 1, 0, 4
	assert.InDelta(t, 1.8, s.MeanReuse, 1e-9)
	require.Len(t, s.ReusePercentiles, len(Percentiles))
	assert.Equal(t, Percentile{50, 2}, s.ReusePercentiles[0])
	assert.Equal(t, Percentile{100, 4}, s.ReusePercentiles[len(Percentiles)-1])
}

func TestCollector_ImmediateRepeatsHaveDistanceZero(t *testing.T) {
	s := collect(nil, 5, 5, 5, 5)
	assert.Equal(t, int64(3), s.Reuses)
	assert.Equal(t, 0.0, s.MeanReuse)
	for _, p := range s.ReusePercentiles {
		assert.Equal(t, int64(0), p.Distance)
	}
}

func TestCollector_TopAddresses(t *testing.T) {
	s := collect(nil, 3, 1, 3, 2, 1, 3)
	assert.Equal(t, []AddressCount{{3, 3}, {1, 2}, {2, 1}}, s.Top)

	c := NewCollector(nil)
	for a := range int64(100) {
		c.Add(a)
	}
	top := c.Summary().Top
	require.Len(t, top, topAddresses)
	assert.Equal(t, AddressCount{0, 1}, top[0])
}

func TestCollector_GroupRevisitRates(t *testing.T) {
	groupOf := func(a int64) int { return int(a / 10) }
	s := collect(groupOf, 1, 1, 1, 2, 2, 15, 1, 12)
	assert.Equal(t, []GroupSummary{
		{Group: 0, References: 6, Addresses: 2, RevisitRate: 3},
		{Group: 1, References: 2, Addresses: 2, RevisitRate: 1},
	}, s.Groups)
}
