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
	"math"
	"strconv"
	"strings"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
)

// Separators of the distribution spec language: name:arg,arg,...
const (
	nameSeparator = ":"
	argSeparator  = ","
)

// SpikeConfig is the parameter triple of a spike mixture.
type SpikeConfig struct {
	K       int64
	Epsilon float64
	Spikes  []int64
}

// Preset returns the spike mixture configuration of the named IRD preset.
func Preset(name string) (SpikeConfig, bool) {
	switch name {
	case "b":
		return SpikeConfig{K: 20, Epsilon: 0.005, Spikes: []int64{0, 3}}, true
	case "c":
		return SpikeConfig{K: 20, Epsilon: 0.005, Spikes: []int64{2, 9}}, true
	case "d":
		return SpikeConfig{K: 5, Epsilon: 0.01, Spikes: []int64{0, 4}}, true
	case "e":
		return SpikeConfig{K: 20, Epsilon: 0.005, Spikes: []int64{1}}, true
	case "f":
		return SpikeConfig{K: 20, Epsilon: 0.01, Spikes: []int64{2}}, true
	}
	return SpikeConfig{}, false
}

// ParseIRD parses an inter-reference distance distribution. Accepted are the
// presets b to f and spike mixtures in the form fgen:k,epsilon,spike,... (or
// the legacy form fgen:k:epsilon:spike,...).
func ParseIRD(spec string) (Sampler, error) {
	spec = strings.TrimSpace(spec)
	if cfg, ok := Preset(spec); ok {
		return NewSpikeMixture(cfg.K, cfg.Epsilon, cfg.Spikes)
	}
	parts := strings.Split(spec, nameSeparator)
	if parts[0] != "fgen" {
		return nil, tracegen.ConfigErrorf("invalid IRD distribution %q", spec)
	}
	var args []string
	switch len(parts) {
	case 2:
		args = splitArgs(parts[1])
	case 4:
		args = append([]string{parts[1], parts[2]}, splitArgs(parts[3])...)
	default:
		return nil, tracegen.ConfigErrorf("fgen requires the form fgen:k,epsilon,spikes; got %q", spec)
	}
	if len(args) < 3 {
		return nil, tracegen.ConfigErrorf("fgen requires at least 3 arguments (k, epsilon, spikes); got %q", spec)
	}
	k, err := parseInt(args[0])
	if err != nil {
		return nil, err
	}
	epsilon, err := parseFloat(args[1])
	if err != nil {
		return nil, err
	}
	spikes, err := parseInts(args[2:])
	if err != nil {
		return nil, err
	}
	return NewSpikeMixture(k, epsilon, spikes)
}

// ParseIRM parses an address (or popularity) distribution over [0,max).
// Canonical specs name a distribution (uniform, sequential, normal:mu,sigma,
// zipf:alpha,classes, pareto:xm,alpha,classes). A bare list of weights is
// the shorthand form: in address mode it describes address bins, in
// popularity mode it describes the popularity values to draw from.
func ParseIRM(spec string, max int64, popularityMode bool) (Sampler, error) {
	if max <= 0 {
		return nil, tracegen.ConfigErrorf("address space (%d) must be positive", max)
	}
	spec = strings.TrimSpace(spec)
	name, rest, canonical := strings.Cut(spec, nameSeparator)
	if !canonical && name != "uniform" && name != "sequential" {
		weights, err := parseFloats(splitArgs(spec))
		if err != nil {
			return nil, tracegen.WrapConfig(err, "invalid IRM distribution %q", spec)
		}
		if popularityMode {
			return NewPopularity(weights)
		}
		return NewBinned(weights, max)
	}
	if strings.Contains(rest, nameSeparator) {
		return nil, tracegen.ConfigErrorf("invalid IRM distribution %q", spec)
	}
	args := splitArgs(rest)
	switch name {
	case "uniform":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return NewUniform(max), nil

	case "sequential":
		if err := arity(name, args, 0); err != nil {
			return nil, err
		}
		return NewSequential(), nil

	case "normal":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		v, err := parseFloats(args)
		if err != nil {
			return nil, err
		}
		if v[1] < 0 || math.IsInf(v[0], 0) || math.IsInf(v[1], 0) {
			return nil, tracegen.ConfigErrorf("normal: invalid parameters mu=%v sigma=%v", v[0], v[1])
		}
		return NewNormal(v[0], v[1], max), nil

	case "zipf":
		if err := arity(name, args, 2); err != nil {
			return nil, err
		}
		alpha, err := parseFloat(args[0])
		if err != nil {
			return nil, err
		}
		classes, err := parseInt(args[1])
		if err != nil {
			return nil, err
		}
		return NewZipf(alpha, classes, max)

	case "pareto":
		if err := arity(name, args, 3); err != nil {
			return nil, err
		}
		xm, err := parseFloat(args[0])
		if err != nil {
			return nil, err
		}
		alpha, err := parseFloat(args[1])
		if err != nil {
			return nil, err
		}
		classes, err := parseInt(args[2])
		if err != nil {
			return nil, err
		}
		return NewPareto(xm, alpha, classes, max)
	}
	return nil, tracegen.ConfigErrorf("invalid IRM distribution type %q", name)
}

// ParseSizes parses a request size distribution of the form
// weight,weight,...:size,size,... (e.g. 1,1,2:1,3,4).
func ParseSizes(spec string) (Sampler, error) {
	parts := strings.Split(strings.TrimSpace(spec), nameSeparator)
	if len(parts) != 2 {
		return nil, tracegen.ConfigErrorf("invalid size distribution %q", spec)
	}
	weights, err := parseFloats(splitArgs(parts[0]))
	if err != nil {
		return nil, tracegen.WrapConfig(err, "invalid size distribution %q", spec)
	}
	sizes, err := parseInts(splitArgs(parts[1]))
	if err != nil {
		return nil, tracegen.WrapConfig(err, "invalid size distribution %q", spec)
	}
	return NewSizeList(weights, sizes)
}

// splitArgs splits a comma-separated argument list; an empty list has no arguments.
func splitArgs(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, argSeparator)
}

func arity(name string, args []string, n int) error {
	if len(args) != n {
		return tracegen.ConfigErrorf("%s requires %d arguments, got %d", name, n, len(args))
	}
	return nil
}

func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) {
		return 0, tracegen.ConfigErrorf("invalid number %q", s)
	}
	return v, nil
}

func parseInt(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, tracegen.ConfigErrorf("invalid integer %q", s)
	}
	return v, nil
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, a := range args {
		v, err := parseFloat(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func parseInts(args []string) ([]int64, error) {
	out := make([]int64, len(args))
	for i, a := range args {
		v, err := parseInt(a)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
