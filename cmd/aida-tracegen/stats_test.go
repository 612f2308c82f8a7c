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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmd_StatsOfPlainTrace(t *testing.T) {
	traceFile := filepath.Join(t.TempDir(), "trace.txt")
	require.NoError(t, os.WriteFile(traceFile, []byte("0 4096 0\n0 4096 4096\n1 4096 0\n"), 0644))
	chartFile := filepath.Join(t.TempDir(), "chart.html")

	var stdout, stderr bytes.Buffer
	args := []string{"test", StatsCommand.Name, "--log", "critical", "--chart", chartFile, traceFile}
	require.NoError(t, newTestApp(&stdout, &stderr).Run(args))
	assert.Contains(t, stdout.String(), "unique addresses")
	_, err := os.Stat(chartFile)
	assert.NoError(t, err)
}

func TestCmd_StatsErrors(t *testing.T) {
	dir := t.TempDir()
	malformed := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(malformed, []byte("0 4096\n"), 0644))

	run := func(args ...string) error {
		var stdout, stderr bytes.Buffer
		return newTestApp(&stdout, &stderr).Run(append([]string{"test", StatsCommand.Name, "--log", "critical"}, args...))
	}

	err := run()
	assert.Equal(t, exitConfiguration, exitCode(err))

	err = run(filepath.Join(dir, "missing.txt"))
	assert.ErrorContains(t, err, "cannot open trace file")

	err = run(malformed)
	assert.ErrorContains(t, err, "line 1")
	assert.Equal(t, exitFailure, exitCode(err))
}
