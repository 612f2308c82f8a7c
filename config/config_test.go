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
	"os"
	"path/filepath"
	"testing"

	"github.com/0xsoniclabs/aida-tracegen/logger"
	"github.com/0xsoniclabs/aida-tracegen/tracegen"
	"github.com/0xsoniclabs/aida-tracegen/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

// singleFlags returns copies of the flags of the single command; values
// loaded from the environment are stored in the flags themselves.
func singleFlags() []cli.Flag {
	addresses, length, pirm, seed, blockSize := AddressesFlag, LengthFlag, IRMProbabilityFlag, SeedFlag, BlockSizeFlag
	ird, irm, readFraction, sizes, output, log := IRDFlag, IRMFlag, ReadFractionFlag, SizesFlag, OutputFlag, logger.LogLevelFlag
	return []cli.Flag{&addresses, &length, &pirm, &seed, &blockSize, &ird, &irm, &readFraction, &sizes, &output, &log}
}

func multiFlags() []cli.Flag {
	addresses, length, groups, ird, popularity := AddressesFlag, LengthFlag, GroupsFlag, GroupIRDFlag, PopularityFlag
	seed, blockSize, readFraction, sizes, log := SeedFlag, BlockSizeFlag, ReadFractionFlag, SizesFlag, logger.LogLevelFlag
	return []cli.Flag{&addresses, &length, &groups, &ird, &popularity, &seed, &blockSize, &readFraction, &sizes, &log}
}

// runConfig parses the arguments with a single command and returns its configuration.
func runConfig(t *testing.T, name string, flags []cli.Flag, args []string) (*Config, error) {
	t.Helper()
	var (
		cfg    *Config
		cfgErr error
	)
	app := cli.NewApp()
	envFile := EnvFileFlag
	app.Flags = []cli.Flag{&envFile}
	app.Before = LoadEnvFile
	app.Commands = []*cli.Command{{
		Name:  name,
		Flags: flags,
		Action: func(ctx *cli.Context) error {
			cfg, cfgErr = NewConfig(ctx)
			return nil
		},
	}}
	if err := app.Run(args); err != nil {
		return nil, err
	}
	return cfg, cfgErr
}

func TestConfig_SingleDefaults(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(SingleCommand).
		Flag(AddressesFlag.Name, 10000).
		Flag(LengthFlag.Name, 100).
		Flag(IRMProbabilityFlag.Name, 0.5).
		Build()
	cfg, err := runConfig(t, SingleCommand, singleFlags(), args)
	require.NoError(t, err)

	assert.Equal(t, SingleCommand, cfg.CommandName)
	assert.Equal(t, int64(10000), cfg.Addresses)
	assert.Equal(t, int64(100), cfg.Length)
	assert.Equal(t, 0.5, cfg.IRMProbability)
	assert.Equal(t, uint64(tracegen.DefaultSeed), cfg.Seed)
	assert.Equal(t, int64(tracegen.DefaultBlockSize), cfg.BlockSize)
	assert.Equal(t, tracegen.DefaultIRD, cfg.IRD)
	assert.Equal(t, tracegen.DefaultIRM, cfg.IRM)
	assert.Equal(t, 1.0, cfg.ReadFraction)
	assert.Equal(t, tracegen.DefaultSizes, cfg.Sizes)
	assert.Equal(t, "", cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestConfig_ShortFlags(t *testing.T) {
	args := []string{"test", SingleCommand, "-m", "50", "-n", "7", "-p", "0.1", "-s", "3", "-b", "512", "-f", "c", "-g", "uniform", "-r", "0.5", "-z", "1,1:1,2"}
	cfg, err := runConfig(t, SingleCommand, singleFlags(), args)
	require.NoError(t, err)
	assert.Equal(t, &Config{
		AppName:        cfg.AppName,
		CommandName:    SingleCommand,
		Addresses:      50,
		Length:         7,
		IRMProbability: 0.1,
		Seed:           3,
		BlockSize:      512,
		IRD:            "c",
		IRM:            "uniform",
		ReadFraction:   0.5,
		Sizes:          "1,1:1,2",
		LogLevel:       "info",
	}, cfg)
}

func TestConfig_NegativeSeedWrapsAround(t *testing.T) {
	args := []string{"test", SingleCommand, "-m", "50", "-n", "7", "-p", "0.1", "--seed=-1"}
	cfg, err := runConfig(t, SingleCommand, singleFlags(), args)
	require.NoError(t, err)
	assert.Equal(t, uint64(math.MaxUint64), cfg.Seed)
}

func TestConfig_MissingRequiredFlag(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(SingleCommand).
		Flag(AddressesFlag.Name, 10).
		Build()
	_, err := runConfig(t, SingleCommand, singleFlags(), args)
	assert.ErrorContains(t, err, "Required flag")
}

func TestConfig_InvalidSingleParameters(t *testing.T) {
	tests := map[string][]string{
		"no addresses":      {"-m", "0", "-n", "10", "-p", "0.5"},
		"negative length":   {"-m", "10", "-n", "-1", "-p", "0.5"},
		"probability":       {"-m", "10", "-n", "10", "-p", "1.5"},
		"read fraction":     {"-m", "10", "-n", "10", "-p", "0.5", "-r", "2"},
		"no block size":     {"-m", "10", "-n", "10", "-p", "0.5", "-b", "0"},
		"negative probabil": {"-m", "10", "-n", "10", "-p", "-0.5"},
	}
	for name, flags := range tests {
		t.Run(name, func(t *testing.T) {
			args := append([]string{"test", SingleCommand}, flags...)
			_, err := runConfig(t, SingleCommand, singleFlags(), args)
			require.Error(t, err)
			assert.Equal(t, tracegen.KindConfiguration, tracegen.KindOf(err))
		})
	}
}

func TestConfig_MultiGroupIRDs(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(MultiCommand).
		Flag(AddressesFlag.Name, 10).
		Flag(LengthFlag.Name, 100).
		Flag(GroupsFlag.Name, 2).
		Flag(GroupIRDFlag.Name, "d; fgen:10,0.1,2").
		Flag(PopularityFlag.Name, "9,1").
		Build()
	cfg, err := runConfig(t, MultiCommand, multiFlags(), args)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Groups)
	assert.Equal(t, []string{"d", "fgen:10,0.1,2"}, cfg.GroupIRDs())
	assert.Equal(t, "9,1", cfg.IRM)
}

func TestConfig_MultiRequiresOneIRDPerGroup(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(MultiCommand).
		Flag(AddressesFlag.Name, 10).
		Flag(LengthFlag.Name, 100).
		Flag(GroupsFlag.Name, 3).
		Flag(GroupIRDFlag.Name, "b;c").
		Flag(PopularityFlag.Name, "9,1").
		Build()
	_, err := runConfig(t, MultiCommand, multiFlags(), args)
	assert.ErrorContains(t, err, "expected 3 IRD distributions, got 2")
	assert.Equal(t, tracegen.KindConfiguration, tracegen.KindOf(err))
}

func TestConfig_MultiTooManyGroups(t *testing.T) {
	args := utils.NewArgs("test").
		Arg(MultiCommand).
		Flag(AddressesFlag.Name, 2).
		Flag(LengthFlag.Name, 100).
		Flag(GroupsFlag.Name, 3).
		Flag(GroupIRDFlag.Name, "b;c;d").
		Flag(PopularityFlag.Name, "9,1").
		Build()
	_, err := runConfig(t, MultiCommand, multiFlags(), args)
	assert.Equal(t, tracegen.KindConfiguration, tracegen.KindOf(err))
}

func TestConfig_StatsRequiresTraceFile(t *testing.T) {
	blockSize, chart := BlockSizeFlag, ChartFlag
	flags := []cli.Flag{&blockSize, &chart}
	_, err := runConfig(t, StatsCommand, flags, []string{"test", StatsCommand})
	assert.Equal(t, tracegen.KindConfiguration, tracegen.KindOf(err))

	cfg, err := runConfig(t, StatsCommand, flags, []string{"test", StatsCommand, "--chart", "out.html", "trace.txt"})
	require.NoError(t, err)
	assert.Equal(t, "trace.txt", cfg.TraceFile)
	assert.Equal(t, "out.html", cfg.Chart)
}

func TestConfig_EnvFileProvidesDefaults(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "tracegen.env")
	require.NoError(t, os.WriteFile(envFile, []byte("TRACEGEN_ADDRESSES=123\nTRACEGEN_LENGTH=45\nTRACEGEN_PIRM=0.25\n"), 0644))
	t.Cleanup(func() {
		for _, key := range []string{"TRACEGEN_ADDRESSES", "TRACEGEN_LENGTH", "TRACEGEN_PIRM"} {
			_ = os.Unsetenv(key)
		}
	})

	args := utils.NewArgs("test").
		Flag(EnvFileFlag.Name, envFile).
		Arg(SingleCommand).
		Flag(LengthFlag.Name, 99).
		Build()
	cfg, err := runConfig(t, SingleCommand, singleFlags(), args)
	require.NoError(t, err)
	assert.Equal(t, int64(123), cfg.Addresses)
	assert.Equal(t, int64(99), cfg.Length)
	assert.Equal(t, 0.25, cfg.IRMProbability)
}

func TestConfig_MissingEnvFile(t *testing.T) {
	args := utils.NewArgs("test").
		Flag(EnvFileFlag.Name, filepath.Join(t.TempDir(), "missing.env")).
		Arg(SingleCommand).
		Build()
	_, err := runConfig(t, SingleCommand, singleFlags(), args)
	assert.Equal(t, tracegen.KindConfiguration, tracegen.KindOf(err))
}
