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

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler is a stateful random variable producing one value per draw
// from the shared random source.
//
//go:generate mockgen -source sampler.go -destination sampler_mock.go -package distribution
type Sampler interface {
	Sample(rg *rand.Rand) int64
}

// Uniform draws addresses uniformly from [0,max).
type Uniform struct {
	max int64
}

// NewUniform creates a uniform sampler over [0,max).
func NewUniform(max int64) *Uniform {
	return &Uniform{max: max}
}

func (u *Uniform) Sample(rg *rand.Rand) int64 {
	return rg.Int63n(u.max)
}

func (u *Uniform) String() string {
	return fmt.Sprintf("uniform(max=%d)", u.max)
}

// Normal draws from a normal distribution, rounds to the nearest integer
// and clamps the result to [0,max].
type Normal struct {
	mu    float64
	sigma float64
	max   int64
}

// NewNormal creates a clamped normal sampler.
func NewNormal(mu, sigma float64, max int64) *Normal {
	return &Normal{mu: mu, sigma: sigma, max: max}
}

func (n *Normal) Sample(rg *rand.Rand) int64 {
	x := distuv.Normal{Mu: n.mu, Sigma: n.sigma, Src: rg}.Rand()
	if x < 0 {
		return 0
	}
	if x > float64(n.max) {
		return n.max
	}
	return int64(math.Round(x))
}

func (n *Normal) String() string {
	return fmt.Sprintf("normal(mu=%v, sigma=%v, max=%d)", n.mu, n.sigma, n.max)
}

// Sequential ignores the random source and returns 0, 1, 2, ...
type Sequential struct {
	next int64
}

// NewSequential creates a sequential sampler starting at zero.
func NewSequential() *Sequential {
	return &Sequential{}
}

func (s *Sequential) Sample(*rand.Rand) int64 {
	v := s.next
	s.next++
	return v
}

func (s *Sequential) String() string {
	return "sequential"
}
