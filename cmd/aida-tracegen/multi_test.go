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

package main

import (
	"bytes"
	"testing"

	"github.com/0xsoniclabs/aida-tracegen/config"
	"github.com/0xsoniclabs/aida-tracegen/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multiArgs(ird, popularity string) *utils.ArgsBuilder {
	return utils.NewArgs("test").
		Arg(MultiCommand.Name).
		Flag(config.AddressesFlag.Name, int64(10)).
		Flag(config.LengthFlag.Name, int64(2000)).
		Flag(config.GroupsFlag.Name, 2).
		Flag(config.GroupIRDFlag.Name, ird).
		Flag(config.PopularityFlag.Name, popularity).
		Flag("log", "critical")
}

func TestCmd_MultiWritesTrace(t *testing.T) {
	var stdout, stderr bytes.Buffer
	require.NoError(t, newTestApp(&stdout, &stderr).Run(multiArgs("d;d", "1").Build()))
	reqs := parseLines(t, stdout.String())
	require.Len(t, reqs, 2000)
	for _, r := range reqs {
		assert.Less(t, r.Block(4096), int64(10))
	}
}

func TestCmd_MultiIsReproducible(t *testing.T) {
	run := func() string {
		var stdout, stderr bytes.Buffer
		require.NoError(t, newTestApp(&stdout, &stderr).Run(multiArgs("b;fgen:10,0.1,2", "9,1").Build()))
		return stdout.String()
	}
	assert.Equal(t, run(), run())
}

func TestCmd_MultiSummaryReportsGroups(t *testing.T) {
	var stdout, stderr bytes.Buffer
	args := multiArgs("d;d", "9,1").Flag(config.SummaryFlag.Name, true).Build()
	require.NoError(t, newTestApp(&stdout, &stderr).Run(args))
	assert.Contains(t, stderr.String(), "group 0")
}

func TestCmd_MultiRejectsInvalidInput(t *testing.T) {
	tests := map[string]*utils.ArgsBuilder{
		"ird count":      multiArgs("d", "1"),
		"ird spec":       multiArgs("d;zz", "1"),
		"popularity":     multiArgs("d;d", "zipf:1.2"),
		"out of [0,1]":   multiArgs("d;d", "normal:15000,0").Flag(config.AddressesFlag.Name, int64(20_000)),
		"zero blocksize": multiArgs("d;d", "1").Flag(config.BlockSizeFlag.Name, int64(0)),
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := newTestApp(&stdout, &stderr).Run(args.Build())
			require.Error(t, err)
			assert.Equal(t, exitConfiguration, exitCode(err))
		})
	}
}
