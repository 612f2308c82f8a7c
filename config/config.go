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
	"math"
	"strings"

	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

// Command names of the trace generator.
const (
	SingleCommand = "single"
	MultiCommand  = "multi"
	StatsCommand  = "stats"
)

// irdSeparator separates the IRD distributions of multiple groups.
const irdSeparator = ";"

// Config summarizes the parameters of a trace generator run.
type Config struct {
	AppName     string
	CommandName string

	Addresses      int64   // number of unique addresses
	Length         int64   // number of generated requests
	IRMProbability float64 // probability of an IRM draw (single stream only)
	Seed           uint64
	BlockSize      int64  // bytes per address
	IRD            string // IRD distribution; one per group separated by ';' for multi
	IRM            string // IRM distribution, or the popularity distribution for multi
	Groups         int
	ReadFraction   float64
	Sizes          string // request size distribution

	Output    string // trace file; empty for stdout
	Sqlite    string // sqlite3 database receiving the requests
	Summary   bool
	Chart     string // HTML file receiving the charts
	LogLevel  string
	TraceFile string // trace analysed by the stats command
}

// NewConfig collects and validates the configuration of the current command.
func NewConfig(ctx *cli.Context) (*Config, error) {
	cfg := createConfigFromFlags(ctx)
	if cfg.CommandName == StatsCommand {
		cfg.TraceFile = ctx.Args().First()
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnvFile loads TRACEGEN_* defaults from the file given by the
// env-file flag. It must run before the flags of a command are parsed.
func LoadEnvFile(ctx *cli.Context) error {
	path := ctx.Path(EnvFileFlag.Name)
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return tracegen.WrapConfig(err, "cannot load env file %s", path)
	}
	return nil
}

// GroupIRDs returns the IRD distributions of all groups.
func (cfg *Config) GroupIRDs() []string {
	specs := strings.Split(cfg.IRD, irdSeparator)
	for i := range specs {
		specs[i] = strings.TrimSpace(specs[i])
	}
	return specs
}

func (cfg *Config) validate() error {
	if cfg.BlockSize <= 0 {
		return tracegen.ConfigErrorf("block size (%d) must be positive", cfg.BlockSize)
	}

	switch cfg.CommandName {
	case StatsCommand:
		if cfg.TraceFile == "" {
			return tracegen.ConfigErrorf("trace file is required")
		}
		return nil

	case SingleCommand:
		if !isProbability(cfg.IRMProbability) {
			return tracegen.ConfigErrorf("IRM probability (%v) is not in [0,1]", cfg.IRMProbability)
		}

	case MultiCommand:
		if cfg.Groups <= 0 {
			return tracegen.ConfigErrorf("number of groups (%d) must be positive", cfg.Groups)
		}
		if int64(cfg.Groups) > cfg.Addresses {
			return tracegen.ConfigErrorf("number of groups (%d) exceeds number of addresses (%d)", cfg.Groups, cfg.Addresses)
		}
		if n := len(cfg.GroupIRDs()); n != cfg.Groups {
			return tracegen.ConfigErrorf("expected %d IRD distributions, got %d", cfg.Groups, n)
		}
	}

	if cfg.Addresses <= 0 {
		return tracegen.ConfigErrorf("number of addresses (%d) must be positive", cfg.Addresses)
	}
	if cfg.Length < 0 {
		return tracegen.ConfigErrorf("trace length (%d) must not be negative", cfg.Length)
	}
	if !isProbability(cfg.ReadFraction) {
		return tracegen.ConfigErrorf("read fraction (%v) is not in [0,1]", cfg.ReadFraction)
	}
	return nil
}

func isProbability(p float64) bool {
	return !math.IsNaN(p) && p >= 0 && p <= 1
}
