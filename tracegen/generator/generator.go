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

package generator

import (
	"iter"
	"math"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/distribution"
	"github.com/0xsoniclabs/aida-tracegen/tracegen/scheduler"
	"golang.org/x/exp/rand"
)

// maxDistance caps scaled distances so that due distances cannot overflow.
const maxDistance = 1 << 53

// Group is a set of addresses sharing one inter-reference distance
// distribution. Sampled distances are divided by the popularity of the
// group, so that unpopular groups are referenced less often.
type Group struct {
	IRD        distribution.Sampler
	Popularity float64
}

// Mixture routes a fraction of all references to an independent
// address distribution which bypasses the schedule.
type Mixture struct {
	IRM         distribution.Sampler
	Probability float64
}

// Config describes a generator over the address space [0,Addresses).
type Config struct {
	Addresses int64
	Groups    []Group
	Mixture   *Mixture // optional

	// BoundedDistances requires every sampled distance of the generation
	// loop to lie in [0,Addresses).
	BoundedDistances bool
}

// Stats counts the decisions taken by a generator.
type Stats struct {
	Emitted  int64 // number of emitted addresses
	IRMDraws int64 // references drawn from the mixture distribution
	Pops     int64 // references taken from the schedule
}

// Generator produces an address sequence with controlled locality. Each
// address is tracked by the scheduler with the distance at which it is due
// next; the address with the smallest due distance is referenced and then
// rescheduled with a freshly sampled distance.
type Generator struct {
	cfg       Config
	rg        *rand.Rand
	groupSize int64
	sched     *scheduler.Scheduler
	stats     Stats
	err       error
}

// New validates the configuration and schedules all addresses with their
// initial distances drawn from the distributions of their groups.
func New(cfg Config, rg *rand.Rand) (*Generator, error) {
	if err := validate(cfg); err != nil {
		return nil, err
	}
	g := &Generator{
		cfg:       cfg,
		rg:        rg,
		groupSize: cfg.Addresses / int64(len(cfg.Groups)),
	}
	initial := make([]scheduler.Entry, cfg.Addresses)
	for a := range cfg.Addresses {
		group := g.Group(a)
		initial[a] = scheduler.Entry{
			Due:     g.distance(group),
			Address: a,
			Group:   group,
		}
	}
	g.sched = scheduler.New(initial)
	return g, nil
}

func validate(cfg Config) error {
	if cfg.Addresses <= 0 {
		return tracegen.ConfigErrorf("number of addresses (%d) must be positive", cfg.Addresses)
	}
	if len(cfg.Groups) == 0 {
		return tracegen.ConfigErrorf("at least one group is required")
	}
	if int64(len(cfg.Groups)) > cfg.Addresses {
		return tracegen.ConfigErrorf("number of groups (%d) exceeds number of addresses (%d)", len(cfg.Groups), cfg.Addresses)
	}
	for i, grp := range cfg.Groups {
		if grp.IRD == nil {
			return tracegen.ConfigErrorf("group %d has no IRD distribution", i)
		}
		if math.IsNaN(grp.Popularity) || grp.Popularity < 0 || grp.Popularity > 1 {
			return tracegen.ConfigErrorf("popularity (%v) of group %d is not in [0,1]", grp.Popularity, i)
		}
	}
	if m := cfg.Mixture; m != nil {
		if m.IRM == nil {
			return tracegen.ConfigErrorf("mixture has no IRM distribution")
		}
		if math.IsNaN(m.Probability) || m.Probability < 0 || m.Probability > 1 {
			return tracegen.ConfigErrorf("IRM probability (%v) is not in [0,1]", m.Probability)
		}
	}
	return nil
}

// NewSingleStream creates a generator mixing one IRD distribution over all
// addresses with an IRM distribution which is chosen with probability pIRM.
func NewSingleStream(addresses int64, pIRM float64, ird, irm distribution.Sampler, rg *rand.Rand) (*Generator, error) {
	return New(Config{
		Addresses:        addresses,
		Groups:           []Group{{IRD: ird, Popularity: 1}},
		Mixture:          &Mixture{IRM: irm, Probability: pIRM},
		BoundedDistances: true,
	}, rg)
}

// NewMultiGroup creates a generator splitting the addresses into one group
// per IRD distribution, weighted by the popularity of each group.
func NewMultiGroup(addresses int64, irds []distribution.Sampler, popularity []float64, rg *rand.Rand) (*Generator, error) {
	if len(irds) != len(popularity) {
		return nil, tracegen.ConfigErrorf("number of IRD distributions (%d) and popularity weights (%d) differ", len(irds), len(popularity))
	}
	groups := make([]Group, len(irds))
	for i := range irds {
		groups[i] = Group{IRD: irds[i], Popularity: popularity[i]}
	}
	return New(Config{Addresses: addresses, Groups: groups}, rg)
}

// Popularity draws one popularity weight per group from a quantized
// popularity distribution.
func Popularity(s distribution.Sampler, groups int, rg *rand.Rand) ([]float64, error) {
	if groups <= 0 {
		return nil, tracegen.ConfigErrorf("number of groups (%d) must be positive", groups)
	}
	weights := make([]float64, groups)
	for i := range weights {
		w := float64(s.Sample(rg)) / tracegen.PopularityScale
		if w < 0 || w > 1 {
			return nil, tracegen.ConfigErrorf("popularity weight %v of group %d is not in [0,1]", w, i)
		}
		weights[i] = w
	}
	return weights, nil
}

// groupOf returns the group of an address when the address space is split
// into groups of the given size. The last group absorbs the remainder.
func groupOf(address int64, size int64, groups int) int {
	g := address / size
	if g >= int64(groups) {
		return groups - 1
	}
	return int(g)
}

// Group returns the group of an address.
func (g *Generator) Group(address int64) int {
	return groupOf(address, g.groupSize, len(g.cfg.Groups))
}

// Addresses returns the size of the address space.
func (g *Generator) Addresses() int64 {
	return g.cfg.Addresses
}

// Groups returns the number of groups.
func (g *Generator) Groups() int {
	return len(g.cfg.Groups)
}

// Scheduled returns the number of addresses tracked by the schedule.
func (g *Generator) Scheduled() int {
	return g.sched.Len()
}

// Stats returns the decision counters of the generator.
func (g *Generator) Stats() Stats {
	return g.stats
}

// Next produces the next address of the trace. After the first error
// the generator is broken and returns that error for all further calls.
func (g *Generator) Next() (int64, error) {
	if g.err != nil {
		return 0, g.err
	}
	if m := g.cfg.Mixture; m != nil && g.rg.Float64() < m.Probability {
		addr := m.IRM.Sample(g.rg)
		if addr < 0 || addr >= g.cfg.Addresses {
			g.err = tracegen.InvariantErrorf("IRM address %d out of range [0,%d)", addr, g.cfg.Addresses)
			return 0, g.err
		}
		g.stats.IRMDraws++
		g.stats.Emitted++
		return addr, nil
	}

	e := g.sched.Pop()
	raw := g.cfg.Groups[e.Group].IRD.Sample(g.rg)
	if g.cfg.BoundedDistances && (raw < 0 || raw >= g.cfg.Addresses) {
		g.sched.Push(e)
		g.err = tracegen.InvariantErrorf("IRD sample %d out of range [0,%d)", raw, g.cfg.Addresses)
		return 0, g.err
	}
	e.Due += scale(raw, g.cfg.Groups[e.Group].Popularity)
	g.sched.Push(e)
	g.stats.Pops++
	g.stats.Emitted++
	return e.Address, nil
}

// Stream returns a lazy sequence of the next n addresses. The sequence
// stops after the first error.
func (g *Generator) Stream(n int64) iter.Seq2[int64, error] {
	return func(yield func(int64, error) bool) {
		for range n {
			addr, err := g.Next()
			if !yield(addr, err) || err != nil {
				return
			}
		}
	}
}

// Generate materializes the next n addresses.
func (g *Generator) Generate(n int64) ([]int64, error) {
	if n < 0 {
		return nil, tracegen.ConfigErrorf("trace length (%d) must not be negative", n)
	}
	trace := make([]int64, 0, n)
	for addr, err := range g.Stream(n) {
		if err != nil {
			return nil, err
		}
		trace = append(trace, addr)
	}
	return trace, nil
}

// distance samples a scaled distance for the given group.
func (g *Generator) distance(group int) int64 {
	grp := g.cfg.Groups[group]
	return scale(grp.IRD.Sample(g.rg), grp.Popularity)
}

// scale divides a raw distance by the popularity (unless it is zero),
// rounds it and floors it at zero.
func scale(raw int64, popularity float64) int64 {
	scaled := float64(raw)
	if popularity != 0 {
		scaled /= popularity
	}
	d := math.Round(scaled)
	switch {
	case d < 0:
		return 0
	case d > maxDistance:
		return maxDistance
	}
	return int64(d)
}
