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

package config

import (
	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/urfave/cli/v2"
)

var (
	AddressesFlag = cli.Int64Flag{
		Name:     "addresses",
		Aliases:  []string{"m"},
		Usage:    "footprint size (number of unique addresses)",
		Required: true,
		EnvVars:  []string{"TRACEGEN_ADDRESSES"},
	}
	LengthFlag = cli.Int64Flag{
		Name:     "length",
		Aliases:  []string{"n"},
		Usage:    "length of the trace (in addresses)",
		Required: true,
		EnvVars:  []string{"TRACEGEN_LENGTH"},
	}
	IRMProbabilityFlag = cli.Float64Flag{
		Name:     "pirm",
		Aliases:  []string{"p"},
		Usage:    "probability of drawing an address from the IRM distribution",
		Required: true,
		EnvVars:  []string{"TRACEGEN_PIRM"},
	}
	SeedFlag = cli.Int64Flag{
		Name:    "seed",
		Aliases: []string{"s"},
		Usage:   "seed of the random number generator (negative seeds are taken modulo 2^64)",
		Value:   tracegen.DefaultSeed,
		EnvVars: []string{"TRACEGEN_SEED"},
	}
	BlockSizeFlag = cli.Int64Flag{
		Name:    "blocksize",
		Aliases: []string{"b"},
		Usage:   "size of a block in bytes",
		Value:   tracegen.DefaultBlockSize,
		EnvVars: []string{"TRACEGEN_BLOCKSIZE"},
	}
	IRDFlag = cli.StringFlag{
		Name:    "ird",
		Aliases: []string{"f"},
		Usage:   "IRD distribution (b, c, d, e, f or fgen:k,epsilon,spike,...)",
		Value:   tracegen.DefaultIRD,
		EnvVars: []string{"TRACEGEN_IRD"},
	}
	IRMFlag = cli.StringFlag{
		Name:    "irm",
		Aliases: []string{"g"},
		Usage:   "IRM distribution (uniform, sequential, normal:mu,sigma, zipf:alpha,classes, pareto:xm,alpha,classes or a list of bin weights)",
		Value:   tracegen.DefaultIRM,
		EnvVars: []string{"TRACEGEN_IRM"},
	}
	GroupsFlag = cli.IntFlag{
		Name:     "groups",
		Aliases:  []string{"k"},
		Usage:    "number of address groups",
		Required: true,
		EnvVars:  []string{"TRACEGEN_GROUPS"},
	}
	GroupIRDFlag = cli.StringFlag{
		Name:     "ird",
		Aliases:  []string{"f"},
		Usage:    "semicolon-separated IRD distributions, one per group (e.g. \"fgen:10000,0.00001,3,5,10,20;b\")",
		Required: true,
		EnvVars:  []string{"TRACEGEN_IRD"},
	}
	PopularityFlag = cli.StringFlag{
		Name:     "irm",
		Aliases:  []string{"g"},
		Usage:    "popularity distribution for all groups; a canonical spec (e.g. \"zipf:1.2,2\") or a list of weights (e.g. \"2,8\")",
		Required: true,
		EnvVars:  []string{"TRACEGEN_IRM"},
	}
	ReadFractionFlag = cli.Float64Flag{
		Name:    "rwratio",
		Aliases: []string{"r"},
		Usage:   "fraction of requests that are reads",
		Value:   1,
		EnvVars: []string{"TRACEGEN_RWRATIO"},
	}
	SizesFlag = cli.StringFlag{
		Name:    "sizedist",
		Aliases: []string{"z"},
		Usage:   "request size distribution in blocks (weights:sizes, e.g. 1,1,2:1,3,4)",
		Value:   tracegen.DefaultSizes,
		EnvVars: []string{"TRACEGEN_SIZEDIST"},
	}
	OutputFlag = cli.PathFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "trace file; a .gz suffix compresses the trace (default: stdout)",
		EnvVars: []string{"TRACEGEN_OUTPUT"},
	}
	SqliteFlag = cli.PathFlag{
		Name:    "sqlite",
		Usage:   "additionally store requests in the given sqlite3 database",
		EnvVars: []string{"TRACEGEN_SQLITE"},
	}
	SummaryFlag = cli.BoolFlag{
		Name:    "summary",
		Usage:   "print locality statistics of the trace to stderr",
		EnvVars: []string{"TRACEGEN_SUMMARY"},
	}
	ChartFlag = cli.PathFlag{
		Name:    "chart",
		Usage:   "write charts of the locality statistics into the given HTML file",
		EnvVars: []string{"TRACEGEN_CHART"},
	}
	EnvFileFlag = cli.PathFlag{
		Name:  "env-file",
		Usage: "load TRACEGEN_* defaults from the given .env file",
	}
)
