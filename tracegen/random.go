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

package tracegen

import (
	"hash/fnv"

	"golang.org/x/exp/rand"
)

// Names of the random streams used by the trace generator.
const (
	StreamAddresses  = "addresses"
	StreamAnnotation = "annotation"
)

// NewRandom returns the random stream with the given name for a seed.
// The address stream is seeded with the seed itself, all other streams
// use a seed derived from the seed and the stream name. Streams are
// therefore independent of each other and of the order of their creation.
func NewRandom(seed uint64, stream string) *rand.Rand {
	if stream != StreamAddresses {
		seed = deriveSeed(seed, stream)
	}
	return rand.New(rand.NewSource(seed))
}

func deriveSeed(seed uint64, stream string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(stream))
	return seed ^ h.Sum64()
}
